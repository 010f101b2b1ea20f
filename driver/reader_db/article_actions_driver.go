package reader_db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"folio/domain"
	"folio/utils/logger"
)

// ApplyArticleAction runs a bulk state change over the user's
// articles. MARK_AS_READ and MARK_AS_OPENED only touch rows where the
// timestamp is still null so the first-read/first-open instant is
// preserved.
func (r *ReaderDBRepository) ApplyArticleAction(ctx context.Context, userID uuid.UUID, articleIDs []uuid.UUID, action domain.UpdateArticleAction) (int64, error) {
	var query string
	switch action {
	case domain.ActionDoNothing:
		return 0, nil
	case domain.ActionMarkAsRead:
		query = `UPDATE articles SET read_at = NOW(), obj_updated_at = NOW() WHERE user_id = $1 AND id = ANY($2) AND read_at IS NULL`
	case domain.ActionMarkAsUnread:
		query = `UPDATE articles SET read_at = NULL, obj_updated_at = NOW() WHERE user_id = $1 AND id = ANY($2)`
	case domain.ActionMarkAsFavorite:
		query = `UPDATE articles SET is_favorite = TRUE, obj_updated_at = NOW() WHERE user_id = $1 AND id = ANY($2)`
	case domain.ActionUnmarkAsFavorite:
		query = `UPDATE articles SET is_favorite = FALSE, obj_updated_at = NOW() WHERE user_id = $1 AND id = ANY($2)`
	case domain.ActionMarkAsForLater:
		query = `UPDATE articles SET is_for_later = TRUE, obj_updated_at = NOW() WHERE user_id = $1 AND id = ANY($2)`
	case domain.ActionUnmarkAsForLater:
		query = `UPDATE articles SET is_for_later = FALSE, obj_updated_at = NOW() WHERE user_id = $1 AND id = ANY($2)`
	case domain.ActionMarkAsOpened:
		query = `UPDATE articles SET opened_at = NOW(), obj_updated_at = NOW() WHERE user_id = $1 AND id = ANY($2) AND opened_at IS NULL`
	default:
		return 0, fmt.Errorf("unknown article action %q", action)
	}

	tag, err := r.pool.Exec(ctx, query, userID, articleIDs)
	if err != nil {
		logger.SafeError("error applying article action", "error", err, "action", action)
		return 0, fmt.Errorf("apply article action %q: %w", action, err)
	}

	return tag.RowsAffected(), nil
}
