package update_articles_gateway

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"folio/domain"
	"folio/driver/reader_db"
	"folio/utils/logger"
)

type UpdateArticlesGateway struct {
	reader_db *reader_db.ReaderDBRepository
}

func NewUpdateArticlesGateway(pool reader_db.DBPool) *UpdateArticlesGateway {
	return &UpdateArticlesGateway{reader_db: reader_db.NewReaderDBRepository(pool)}
}

// ApplyArticleAction applies a read/favorite/for-later transition to
// the given articles and returns the number of rows affected.
func (g *UpdateArticlesGateway) ApplyArticleAction(ctx context.Context, userID uuid.UUID, articleIDs []uuid.UUID, action domain.UpdateArticleAction) (int64, error) {
	if g.reader_db == nil {
		return 0, errors.New("database connection not available")
	}
	if len(articleIDs) == 0 || action == domain.ActionDoNothing {
		return 0, nil
	}

	affected, err := g.reader_db.ApplyArticleAction(ctx, userID, articleIDs, action)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error applying article action", "error", err, "action", string(action))
		return 0, err
	}

	return affected, nil
}
