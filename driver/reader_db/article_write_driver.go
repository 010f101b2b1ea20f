package reader_db

import (
	"context"
	"fmt"

	"folio/domain"
	"folio/utils/logger"
)

const insertArticleQuery = `
	INSERT INTO articles (
		id, user_id, external_article_id, title, slug, summary, content,
		reading_time, authors, contributors, external_tags, link,
		preview_picture_url, preview_picture_alt, annotations, language,
		read_at, opened_at, is_favorite, is_for_later,
		main_source_type, main_source_title, published_at, updated_at,
		obj_created_at, obj_updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26
	)
	ON CONFLICT (user_id, link) DO UPDATE SET
		title = EXCLUDED.title, slug = EXCLUDED.slug, summary = EXCLUDED.summary,
		content = EXCLUDED.content, reading_time = EXCLUDED.reading_time,
		authors = EXCLUDED.authors, contributors = EXCLUDED.contributors,
		external_tags = EXCLUDED.external_tags,
		preview_picture_url = EXCLUDED.preview_picture_url,
		preview_picture_alt = EXCLUDED.preview_picture_alt,
		main_source_type = EXCLUDED.main_source_type,
		published_at = EXCLUDED.published_at, updated_at = EXCLUDED.updated_at,
		obj_updated_at = EXCLUDED.obj_updated_at
	RETURNING id
`

const updateArticleQuery = `
	UPDATE articles SET
		title = $3, slug = $4, summary = $5, content = $6, reading_time = $7,
		authors = $8, contributors = $9, external_tags = $10,
		preview_picture_url = $11, preview_picture_alt = $12,
		read_at = $13, main_source_type = $14,
		published_at = $15, updated_at = $16, obj_updated_at = $17
	WHERE id = $1 AND user_id = $2
`

// BulkInsertArticles stages all new rows of a reconciliation batch.
// The unique constraint on (user_id, link) is the race backstop: when
// another process inserted the row first, the conflict clause refreshes
// it and the staged article adopts the surviving id, so later writes
// against article.ID keep a valid target.
func (r *ReaderDBRepository) BulkInsertArticles(ctx context.Context, q Querier, articles []*domain.Article) error {
	for _, a := range articles {
		err := q.QueryRow(ctx, insertArticleQuery,
			a.ID, a.UserID, a.ExternalArticleID, a.Title, a.Slug, a.Summary, a.Content,
			a.ReadingTime, a.Authors, a.Contributors, a.ExternalTags, a.Link,
			a.PreviewPictureURL, a.PreviewPictureAlt, a.Annotations, a.Language,
			a.ReadAt, a.OpenedAt, a.IsFavorite, a.IsForLater,
			a.MainSourceType, a.MainSourceTitle, a.PublishedAt, a.UpdatedAt,
			a.ObjCreatedAt, a.ObjUpdatedAt,
		).Scan(&a.ID)
		if err != nil {
			logger.SafeError("error inserting article", "error", err, "link", a.Link)
			return fmt.Errorf("insert article %q: %w", a.Link, err)
		}
	}

	return nil
}

// BulkUpdateArticles writes back the merged fields of updated rows.
func (r *ReaderDBRepository) BulkUpdateArticles(ctx context.Context, q Querier, articles []*domain.Article) error {
	for _, a := range articles {
		_, err := q.Exec(ctx, updateArticleQuery,
			a.ID, a.UserID,
			a.Title, a.Slug, a.Summary, a.Content, a.ReadingTime,
			a.Authors, a.Contributors, a.ExternalTags,
			a.PreviewPictureURL, a.PreviewPictureAlt,
			a.ReadAt, a.MainSourceType,
			a.PublishedAt, a.UpdatedAt, a.ObjUpdatedAt,
		)
		if err != nil {
			logger.SafeError("error updating article", "error", err, "article_id", a.ID)
			return fmt.Errorf("update article %s: %w", a.ID, err)
		}
	}

	return nil
}
