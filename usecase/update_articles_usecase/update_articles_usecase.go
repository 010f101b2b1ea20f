package update_articles_usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"folio/domain"
	"folio/port/update_articles_port"
	"folio/utils/logger"
)

type UpdateArticlesUsecase struct {
	updateGateway update_articles_port.UpdateArticlesPort
}

func NewUpdateArticlesUsecase(updateGateway update_articles_port.UpdateArticlesPort) *UpdateArticlesUsecase {
	return &UpdateArticlesUsecase{updateGateway: updateGateway}
}

// Execute applies a bulk state change to the caller's articles and
// returns how many rows changed.
func (u *UpdateArticlesUsecase) Execute(ctx context.Context, articleIDs []uuid.UUID, action domain.UpdateArticleAction) (int64, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return 0, err
	}

	if !action.Valid() {
		logger.Logger.ErrorContext(ctx, "unknown article action", "action", string(action))
		return 0, errors.New("unknown article action")
	}
	if len(articleIDs) == 0 {
		return 0, errors.New("article ids must not be empty")
	}

	affected, err := u.updateGateway.ApplyArticleAction(ctx, user.UserID, articleIDs, action)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to apply article action", "error", err, "action", string(action))
		return 0, err
	}

	return affected, nil
}
