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

const readingListColumns = `rl.id, rl.user_id, rl.name, rl.slug, rl.is_default, rl.display_order,
	rl.read_status, rl.favorite_status, rl.for_later_status,
	rl.articles_max_age_value, rl.articles_max_age_unit,
	rl.articles_reading_time, rl.articles_reading_time_operator,
	rl.include_tag_operator, rl.exclude_tag_operator, rl.order_direction, rl.created_at`

const insertReadingListQuery = `
	INSERT INTO reading_lists (
		id, user_id, name, slug, is_default, display_order,
		read_status, favorite_status, for_later_status,
		articles_max_age_value, articles_max_age_unit,
		articles_reading_time, articles_reading_time_operator,
		include_tag_operator, exclude_tag_operator, order_direction, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
`

const insertReadingListTagQuery = `
	INSERT INTO reading_list_tags (id, reading_list_id, tag_id, filter_type)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (reading_list_id, tag_id) DO UPDATE SET filter_type = EXCLUDED.filter_type
`

func scanReadingList(row pgx.Row) (*domain.ReadingList, error) {
	var rl domain.ReadingList
	err := row.Scan(
		&rl.ID, &rl.UserID, &rl.Name, &rl.Slug, &rl.IsDefault, &rl.Order,
		&rl.ReadStatus, &rl.FavoriteStatus, &rl.ForLaterStatus,
		&rl.ArticlesMaxAgeValue, &rl.ArticlesMaxAgeUnit,
		&rl.ArticlesReadingTime, &rl.ArticlesReadingTimeOperator,
		&rl.IncludeTagOperator, &rl.ExcludeTagOperator, &rl.OrderDirection, &rl.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rl, nil
}

// ListReadingLists returns the user's reading lists with their tag
// links preloaded, in display order.
func (r *ReaderDBRepository) ListReadingLists(ctx context.Context, userID uuid.UUID) ([]*domain.ReadingList, error) {
	query := `SELECT ` + readingListColumns + ` FROM reading_lists rl WHERE rl.user_id = $1 ORDER BY rl.display_order ASC, rl.created_at ASC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		logger.SafeError("error listing reading lists", "error", err, "user_id", userID)
		return nil, fmt.Errorf("list reading lists: %w", err)
	}
	defer rows.Close()

	var lists []*domain.ReadingList
	for rows.Next() {
		rl, err := scanReadingList(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reading list: %w", err)
		}
		lists = append(lists, rl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reading lists: %w", err)
	}

	if err := r.loadReadingListTags(ctx, lists); err != nil {
		return nil, err
	}

	return lists, nil
}

// GetReadingListBySlug fetches one list with tags preloaded. An empty
// slug resolves the user's default list.
func (r *ReaderDBRepository) GetReadingListBySlug(ctx context.Context, userID uuid.UUID, slug string) (*domain.ReadingList, error) {
	query := `SELECT ` + readingListColumns + ` FROM reading_lists rl WHERE rl.user_id = $1 AND rl.slug = $2`
	args := []any{userID, slug}
	if slug == "" {
		query = `SELECT ` + readingListColumns + ` FROM reading_lists rl WHERE rl.user_id = $1 AND rl.is_default = TRUE`
		args = []any{userID}
	}

	rl, err := scanReadingList(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReadingListNotFound
		}
		return nil, fmt.Errorf("get reading list %q: %w", slug, err)
	}

	if err := r.loadReadingListTags(ctx, []*domain.ReadingList{rl}); err != nil {
		return nil, err
	}

	return rl, nil
}

func (r *ReaderDBRepository) loadReadingListTags(ctx context.Context, lists []*domain.ReadingList) error {
	if len(lists) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(lists))
	byID := make(map[uuid.UUID]*domain.ReadingList, len(lists))
	for _, rl := range lists {
		ids = append(ids, rl.ID)
		byID[rl.ID] = rl
	}

	query := `
		SELECT rlt.reading_list_id, rlt.tag_id, t.slug, rlt.filter_type
		FROM reading_list_tags rlt
		INNER JOIN tags t ON t.id = rlt.tag_id
		WHERE rlt.reading_list_id = ANY($1)
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		logger.SafeError("error loading reading list tags", "error", err)
		return fmt.Errorf("load reading list tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var listID uuid.UUID
		var link domain.ReadingListTag
		if err := rows.Scan(&listID, &link.TagID, &link.TagSlug, &link.FilterType); err != nil {
			return fmt.Errorf("scan reading list tag: %w", err)
		}
		if rl, ok := byID[listID]; ok {
			rl.Tags = append(rl.Tags, link)
		}
	}

	return rows.Err()
}

// CreateReadingList inserts the list and its tag links atomically.
func (r *ReaderDBRepository) CreateReadingList(ctx context.Context, q Querier, readingList *domain.ReadingList) error {
	_, err := q.Exec(ctx, insertReadingListQuery,
		readingList.ID, readingList.UserID, readingList.Name, readingList.Slug,
		readingList.IsDefault, readingList.Order,
		readingList.ReadStatus, readingList.FavoriteStatus, readingList.ForLaterStatus,
		readingList.ArticlesMaxAgeValue, readingList.ArticlesMaxAgeUnit,
		readingList.ArticlesReadingTime, readingList.ArticlesReadingTimeOperator,
		readingList.IncludeTagOperator, readingList.ExcludeTagOperator,
		readingList.OrderDirection, readingList.CreatedAt,
	)
	if err != nil {
		logger.SafeError("error creating reading list", "error", err, "slug", readingList.Slug)
		return fmt.Errorf("create reading list %q: %w", readingList.Slug, err)
	}

	for _, link := range readingList.Tags {
		if _, err := q.Exec(ctx, insertReadingListTagQuery, uuid.New(), readingList.ID, link.TagID, link.FilterType); err != nil {
			return fmt.Errorf("link tag %s to reading list %q: %w", link.TagID, readingList.Slug, err)
		}
	}

	return nil
}

// DeleteReadingList removes a list. The default list is protected:
// the call fails with domain.ErrCannotDeleteDefaultList and the row
// stays intact.
func (r *ReaderDBRepository) DeleteReadingList(ctx context.Context, userID uuid.UUID, slug string) error {
	var id uuid.UUID
	var isDefault bool
	err := r.pool.QueryRow(ctx,
		`SELECT id, is_default FROM reading_lists WHERE user_id = $1 AND slug = $2`,
		userID, slug,
	).Scan(&id, &isDefault)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrReadingListNotFound
		}
		return fmt.Errorf("look up reading list %q: %w", slug, err)
	}

	if isDefault {
		return domain.ErrCannotDeleteDefaultList
	}

	if _, err := r.pool.Exec(ctx, `DELETE FROM reading_lists WHERE id = $1`, id); err != nil {
		logger.SafeError("error deleting reading list", "error", err, "slug", slug)
		return fmt.Errorf("delete reading list %q: %w", slug, err)
	}

	return nil
}
