package reader_db

import (
	"context"
	"fmt"
	"time"

	"folio/domain"
	"folio/utils/logger"
)

// ListArticlesForReadingList compiles the reading list's criteria into
// a predicate and returns the matching articles in display order.
func (r *ReaderDBRepository) ListArticlesForReadingList(ctx context.Context, readingList *domain.ReadingList, now time.Time) ([]*domain.Article, error) {
	predicate := domain.CompilePredicate(readingList, now)
	where, predicateArgs := predicate.SQL(2)

	query := `SELECT ` + articleColumns + ` FROM articles a WHERE a.user_id = $1 AND ` + where +
		` ORDER BY ` + domain.ArticleOrderClause(readingList.OrderDirection)

	args := append([]any{readingList.UserID}, predicateArgs...)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.SafeError("error listing articles for reading list", "error", err, "slug", readingList.Slug)
		return nil, fmt.Errorf("list articles for reading list %q: %w", readingList.Slug, err)
	}

	articles, err := collectArticles(rows)
	if err != nil {
		return nil, fmt.Errorf("scan articles for reading list %q: %w", readingList.Slug, err)
	}

	return articles, nil
}
