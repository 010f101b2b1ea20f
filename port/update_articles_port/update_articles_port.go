package update_articles_port

import (
	"context"

	"github.com/google/uuid"

	"folio/domain"
)

// UpdateArticlesPort applies a bulk state change to a set of the
// user's articles and reports how many rows changed.
type UpdateArticlesPort interface {
	ApplyArticleAction(ctx context.Context, userID uuid.UUID, articleIDs []uuid.UUID, action domain.UpdateArticleAction) (int64, error)
}
