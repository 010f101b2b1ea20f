package reader_db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"folio/domain"
	"folio/utils/logger"
)

// FetchArticlesByLinks returns the user's stored articles whose link
// matches any of the given links, keyed by link, in a single query.
func (r *ReaderDBRepository) FetchArticlesByLinks(ctx context.Context, q Querier, userID uuid.UUID, links []string) (map[string]*domain.Article, error) {
	if len(links) == 0 {
		return map[string]*domain.Article{}, nil
	}

	query := `SELECT ` + articleColumns + ` FROM articles a WHERE a.user_id = $1 AND a.link = ANY($2)`

	rows, err := q.Query(ctx, query, userID, links)
	if err != nil {
		logger.SafeError("error fetching articles by links", "error", err, "user_id", userID)
		return nil, fmt.Errorf("fetch articles by links: %w", err)
	}

	articles, err := collectArticles(rows)
	if err != nil {
		return nil, fmt.Errorf("scan articles by links: %w", err)
	}

	byLink := make(map[string]*domain.Article, len(articles))
	for _, article := range articles {
		byLink[article.Link] = article
	}

	return byLink, nil
}

// GetArticleByLink fetches a single article by its owner and link.
// Returns domain.ErrArticleNotFound when no row exists.
func (r *ReaderDBRepository) GetArticleByLink(ctx context.Context, q Querier, userID uuid.UUID, link string) (*domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles a WHERE a.user_id = $1 AND a.link = $2`

	article, err := scanArticle(q.QueryRow(ctx, query, userID, link))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("get article by link: %w", err)
	}

	return article, nil
}
