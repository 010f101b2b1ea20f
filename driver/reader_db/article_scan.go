package reader_db

import (
	"github.com/jackc/pgx/v5"

	"folio/domain"
)

// articleColumns is the canonical column list for scanning articles;
// keep in sync with scanArticle.
const articleColumns = `a.id, a.user_id, a.external_article_id, a.title, a.slug, a.summary, a.content,
	a.reading_time, a.authors, a.contributors, a.external_tags, a.link,
	a.preview_picture_url, a.preview_picture_alt, a.annotations, a.language,
	a.read_at, a.opened_at, a.is_favorite, a.is_for_later,
	a.main_source_type, a.main_source_title, a.published_at, a.updated_at,
	a.obj_created_at, a.obj_updated_at`

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var a domain.Article
	err := row.Scan(
		&a.ID, &a.UserID, &a.ExternalArticleID, &a.Title, &a.Slug, &a.Summary, &a.Content,
		&a.ReadingTime, &a.Authors, &a.Contributors, &a.ExternalTags, &a.Link,
		&a.PreviewPictureURL, &a.PreviewPictureAlt, &a.Annotations, &a.Language,
		&a.ReadAt, &a.OpenedAt, &a.IsFavorite, &a.IsForLater,
		&a.MainSourceType, &a.MainSourceTitle, &a.PublishedAt, &a.UpdatedAt,
		&a.ObjCreatedAt, &a.ObjUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func collectArticles(rows pgx.Rows) ([]*domain.Article, error) {
	defer rows.Close()

	var articles []*domain.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}
