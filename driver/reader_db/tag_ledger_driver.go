package reader_db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"folio/domain"
	"folio/utils/logger"
	"folio/utils/slugify"
)

const insertTagQuery = `
	INSERT INTO tags (id, user_id, title, slug, created_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (user_id, slug) DO NOTHING
`

// associateTagQuery mutates the reason in place. The WHERE clause on
// the conflict update keeps a DELETED association deleted: feed
// re-syncs must not resurrect a tag the user removed.
const associateTagQuery = `
	INSERT INTO article_tags (id, article_id, tag_id, tagging_reason)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (article_id, tag_id) DO UPDATE
	SET tagging_reason = EXCLUDED.tagging_reason
	WHERE article_tags.tagging_reason <> 'DELETED'
`

// associateTagReaddQuery is the explicit user action that restores a
// soft-deleted association.
const associateTagReaddQuery = `
	INSERT INTO article_tags (id, article_id, tag_id, tagging_reason)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (article_id, tag_id) DO UPDATE
	SET tagging_reason = EXCLUDED.tagging_reason
`

// GetOrCreateTags resolves tag titles to rows, creating missing tags
// keyed by their normalized slug. Titles normalizing to an empty slug
// are dropped.
func (r *ReaderDBRepository) GetOrCreateTags(ctx context.Context, q Querier, userID uuid.UUID, titles []string) ([]*domain.Tag, error) {
	slugs := make([]string, 0, len(titles))
	seen := make(map[string]struct{}, len(titles))
	now := time.Now().UTC()
	for _, title := range titles {
		slug := slugify.Slugify(title)
		if slug == "" {
			continue
		}
		if _, ok := seen[slug]; ok {
			continue
		}
		seen[slug] = struct{}{}
		slugs = append(slugs, slug)

		_, err := q.Exec(ctx, insertTagQuery, uuid.New(), userID, title, slug, now)
		if err != nil {
			logger.SafeError("error creating tag", "error", err, "slug", slug)
			return nil, fmt.Errorf("create tag %q: %w", slug, err)
		}
	}

	if len(slugs) == 0 {
		return []*domain.Tag{}, nil
	}

	return r.fetchTagsBySlugs(ctx, q, userID, slugs)
}

func (r *ReaderDBRepository) fetchTagsBySlugs(ctx context.Context, q Querier, userID uuid.UUID, slugs []string) ([]*domain.Tag, error) {
	query := `SELECT id, user_id, title, slug, created_at FROM tags WHERE user_id = $1 AND slug = ANY($2)`

	rows, err := q.Query(ctx, query, userID, slugs)
	if err != nil {
		return nil, fmt.Errorf("fetch tags by slugs: %w", err)
	}
	defer rows.Close()

	var tags []*domain.Tag
	for rows.Next() {
		var tag domain.Tag
		if err := rows.Scan(&tag.ID, &tag.UserID, &tag.Title, &tag.Slug, &tag.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, &tag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}

	return tags, nil
}

// AssociateTags attaches every tag to every article with the given
// reason. Existing rows change reason in place; soft-deleted rows are
// only revived when readdDeleted is set.
func (r *ReaderDBRepository) AssociateTags(ctx context.Context, q Querier, articleIDs []uuid.UUID, tags []*domain.Tag, reason domain.TaggingReason, readdDeleted bool) error {
	query := associateTagQuery
	if readdDeleted {
		query = associateTagReaddQuery
	}

	for _, articleID := range articleIDs {
		for _, tag := range tags {
			if _, err := q.Exec(ctx, query, uuid.New(), articleID, tag.ID, reason); err != nil {
				logger.SafeError("error associating tag", "error", err, "article_id", articleID, "tag_id", tag.ID)
				return fmt.Errorf("associate tag %s with article %s: %w", tag.ID, articleID, err)
			}
		}
	}

	return nil
}

// DissociateTags soft-deletes the associations between the articles
// and the tags identified by slug. The rows stay in place with reason
// DELETED.
func (r *ReaderDBRepository) DissociateTags(ctx context.Context, q Querier, userID uuid.UUID, articleIDs []uuid.UUID, slugs []string) error {
	query := `
		UPDATE article_tags SET tagging_reason = 'DELETED'
		WHERE article_id = ANY($1)
		AND tag_id IN (SELECT id FROM tags WHERE user_id = $2 AND slug = ANY($3))
	`

	if _, err := q.Exec(ctx, query, articleIDs, userID, slugs); err != nil {
		logger.SafeError("error dissociating tags", "error", err, "user_id", userID)
		return fmt.Errorf("dissociate tags: %w", err)
	}

	return nil
}

// DissociateTagsNotInList soft-deletes every association of the
// article whose tag slug is not in keepSlugs. An empty keep list
// soft-deletes all of them.
func (r *ReaderDBRepository) DissociateTagsNotInList(ctx context.Context, q Querier, userID uuid.UUID, articleID uuid.UUID, keepSlugs []string) error {
	query := `
		UPDATE article_tags SET tagging_reason = 'DELETED'
		WHERE article_id = $1
		AND tag_id NOT IN (SELECT id FROM tags WHERE user_id = $2 AND slug = ANY($3))
	`

	if _, err := q.Exec(ctx, query, articleID, userID, keepSlugs); err != nil {
		logger.SafeError("error dissociating tags not in list", "error", err, "article_id", articleID)
		return fmt.Errorf("dissociate tags not in list: %w", err)
	}

	return nil
}

// FetchActiveTagsForArticle lists the article's non-deleted tags
// ordered by title for display.
func (r *ReaderDBRepository) FetchActiveTagsForArticle(ctx context.Context, articleID uuid.UUID) ([]*domain.Tag, error) {
	query := `
		SELECT t.id, t.user_id, t.title, t.slug, t.created_at
		FROM tags t
		INNER JOIN article_tags at ON at.tag_id = t.id
		WHERE at.article_id = $1 AND at.tagging_reason <> 'DELETED'
		ORDER BY t.title ASC
	`

	rows, err := r.pool.Query(ctx, query, articleID)
	if err != nil {
		logger.SafeError("error fetching active tags", "error", err, "article_id", articleID)
		return nil, fmt.Errorf("fetch active tags: %w", err)
	}
	defer rows.Close()

	var tags []*domain.Tag
	for rows.Next() {
		var tag domain.Tag
		if err := rows.Scan(&tag.ID, &tag.UserID, &tag.Title, &tag.Slug, &tag.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan active tag: %w", err)
		}
		tags = append(tags, &tag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate active tags: %w", err)
	}

	return tags, nil
}
