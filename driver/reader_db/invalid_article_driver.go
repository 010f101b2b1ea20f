package reader_db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"folio/domain"
	"folio/utils/logger"
)

const insertPlaceholderArticleQuery = `
	INSERT INTO articles (
		id, user_id, title, slug, link,
		authors, contributors, external_tags, annotations,
		main_source_type, obj_created_at, obj_updated_at
	) VALUES ($1, $2, $3, $4, $5, '{}', '{}', '{}', '{}', $6, $7, $8)
	ON CONFLICT (user_id, link) DO UPDATE SET obj_updated_at = EXCLUDED.obj_updated_at
	RETURNING id
`

// InsertPlaceholderArticle stages the degraded-path article created
// when a manual add's content could not be fetched. On a concurrent
// insert of the same link the staged article adopts the surviving id,
// keeping the fetch-error row it anchors pointed at a real article.
func (r *ReaderDBRepository) InsertPlaceholderArticle(ctx context.Context, q Querier, article *domain.Article) error {
	err := q.QueryRow(ctx, insertPlaceholderArticleQuery,
		article.ID, article.UserID, article.Title, article.Slug, article.Link,
		article.MainSourceType, article.ObjCreatedAt, article.ObjUpdatedAt,
	).Scan(&article.ID)
	if err != nil {
		logger.SafeError("error inserting placeholder article", "error", err, "link", article.Link)
		return fmt.Errorf("insert placeholder article %q: %w", article.Link, err)
	}

	return nil
}

// InsertArticleFetchError appends a fetch-error entry for the article.
// History is preserved: every failed attempt adds a new row.
func (r *ReaderDBRepository) InsertArticleFetchError(ctx context.Context, q Querier, articleID uuid.UUID, message string) error {
	query := `INSERT INTO article_fetch_errors (id, article_id, message, created_at) VALUES ($1, $2, $3, $4)`

	if _, err := q.Exec(ctx, query, uuid.New(), articleID, message, time.Now().UTC()); err != nil {
		logger.SafeError("error inserting article fetch error", "error", err, "article_id", articleID)
		return fmt.Errorf("insert article fetch error: %w", err)
	}

	return nil
}
