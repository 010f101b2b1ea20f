package update_articles_usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/domain"
	"folio/utils/logger"
)

type fakeUpdateGateway struct {
	calls     int
	gotAction domain.UpdateArticleAction
	gotIDs    []uuid.UUID
	affected  int64
	err       error
}

func (f *fakeUpdateGateway) ApplyArticleAction(ctx context.Context, userID uuid.UUID, articleIDs []uuid.UUID, action domain.UpdateArticleAction) (int64, error) {
	f.calls++
	f.gotAction = action
	f.gotIDs = articleIDs
	return f.affected, f.err
}

func userCtx() context.Context {
	return domain.SetUserContext(context.Background(), &domain.UserContext{UserID: uuid.New()})
}

func TestExecute_AppliesAction(t *testing.T) {
	logger.InitLogger()
	gw := &fakeUpdateGateway{affected: 3}
	usecase := NewUpdateArticlesUsecase(gw)
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	affected, err := usecase.Execute(userCtx(), ids, domain.ActionMarkAsRead)

	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)
	assert.Equal(t, domain.ActionMarkAsRead, gw.gotAction)
	assert.Equal(t, ids, gw.gotIDs)
}

func TestExecute_RejectsUnknownAction(t *testing.T) {
	logger.InitLogger()
	gw := &fakeUpdateGateway{}
	usecase := NewUpdateArticlesUsecase(gw)

	_, err := usecase.Execute(userCtx(), []uuid.UUID{uuid.New()}, domain.UpdateArticleAction("ARCHIVE"))

	assert.Error(t, err)
	assert.Zero(t, gw.calls)
}

func TestExecute_RejectsEmptyIDs(t *testing.T) {
	logger.InitLogger()
	gw := &fakeUpdateGateway{}
	usecase := NewUpdateArticlesUsecase(gw)

	_, err := usecase.Execute(userCtx(), nil, domain.ActionMarkAsFavorite)

	assert.Error(t, err)
	assert.Zero(t, gw.calls)
}

func TestExecute_RequiresUserContext(t *testing.T) {
	logger.InitLogger()
	gw := &fakeUpdateGateway{}
	usecase := NewUpdateArticlesUsecase(gw)

	_, err := usecase.Execute(context.Background(), []uuid.UUID{uuid.New()}, domain.ActionMarkAsRead)

	assert.ErrorIs(t, err, domain.ErrInvalidUserContext)
	assert.Zero(t, gw.calls)
}
