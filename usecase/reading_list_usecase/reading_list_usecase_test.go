package reading_list_usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/domain"
	apperrors "folio/utils/errors"
	"folio/utils/logger"
)

type fakeReadingListGateway struct {
	lists          []*domain.ReadingList
	created        []*domain.ReadingList
	deletedSlugs   []string
	bootstrapCalls int
	err            error
}

func (f *fakeReadingListGateway) ListReadingLists(ctx context.Context, userID uuid.UUID) ([]*domain.ReadingList, error) {
	return f.lists, f.err
}

func (f *fakeReadingListGateway) GetReadingListBySlug(ctx context.Context, userID uuid.UUID, slug string) (*domain.ReadingList, error) {
	for _, rl := range f.lists {
		if rl.Slug == slug {
			return rl, nil
		}
	}
	return nil, domain.ErrReadingListNotFound
}

func (f *fakeReadingListGateway) CreateReadingList(ctx context.Context, readingList *domain.ReadingList) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, readingList)
	return nil
}

func (f *fakeReadingListGateway) DeleteReadingList(ctx context.Context, userID uuid.UUID, slug string) error {
	if f.err != nil {
		return f.err
	}
	f.deletedSlugs = append(f.deletedSlugs, slug)
	return nil
}

func (f *fakeReadingListGateway) CreateDefaultReadingLists(ctx context.Context, userID uuid.UUID) ([]*domain.ReadingList, error) {
	f.bootstrapCalls++
	return domain.DefaultReadingLists(userID, time.Now()), f.err
}

func userCtx() context.Context {
	return domain.SetUserContext(context.Background(), &domain.UserContext{UserID: uuid.New()})
}

func TestCreate_SlugsNameAndFillsDefaults(t *testing.T) {
	logger.InitLogger()
	gw := &fakeReadingListGateway{}
	usecase := NewReadingListUsecase(gw)

	created, err := usecase.Create(userCtx(), &domain.ReadingList{Name: "Deep Dives & Longreads"})

	require.NoError(t, err)
	assert.Equal(t, "deep-dives-longreads", created.Slug)
	assert.False(t, created.IsDefault)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, domain.ReadStatusAll, created.ReadStatus)
	assert.Equal(t, domain.ArticlesMaxAgeUnitUnset, created.ArticlesMaxAgeUnit)
	assert.Equal(t, domain.OrderDirectionDesc, created.OrderDirection)
	require.Len(t, gw.created, 1)
}

func TestCreate_RejectsBlankName(t *testing.T) {
	logger.InitLogger()
	gw := &fakeReadingListGateway{}
	usecase := NewReadingListUsecase(gw)

	_, err := usecase.Create(userCtx(), &domain.ReadingList{Name: "   "})

	assert.Error(t, err)
	assert.Empty(t, gw.created)
}

func TestCreate_RejectsUnknownFilterValues(t *testing.T) {
	logger.InitLogger()
	gw := &fakeReadingListGateway{}
	usecase := NewReadingListUsecase(gw)

	_, err := usecase.Create(userCtx(), &domain.ReadingList{
		Name:       "Broken",
		ReadStatus: domain.ReadStatus("BOGUS"),
	})

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus())
	assert.Empty(t, gw.created, "an invalid list must never reach storage")
}

func TestCreate_RejectsUnknownTagOperator(t *testing.T) {
	logger.InitLogger()
	gw := &fakeReadingListGateway{}
	usecase := NewReadingListUsecase(gw)

	_, err := usecase.Create(userCtx(), &domain.ReadingList{
		Name:               "Broken",
		IncludeTagOperator: domain.TagOperator("SOME"),
	})

	assert.Error(t, err)
	assert.Empty(t, gw.created)
}

func TestDelete_RequiresSlug(t *testing.T) {
	logger.InitLogger()
	gw := &fakeReadingListGateway{}
	usecase := NewReadingListUsecase(gw)

	assert.Error(t, usecase.Delete(userCtx(), ""))
	assert.Empty(t, gw.deletedSlugs)
}

func TestBootstrap_SkipsWhenListsExist(t *testing.T) {
	logger.InitLogger()
	existing := []*domain.ReadingList{{Slug: "unread", IsDefault: true}}
	gw := &fakeReadingListGateway{lists: existing}
	usecase := NewReadingListUsecase(gw)

	lists, err := usecase.Bootstrap(userCtx())

	require.NoError(t, err)
	assert.Equal(t, existing, lists)
	assert.Zero(t, gw.bootstrapCalls)
}

func TestBootstrap_CreatesStarterSet(t *testing.T) {
	logger.InitLogger()
	gw := &fakeReadingListGateway{}
	usecase := NewReadingListUsecase(gw)

	lists, err := usecase.Bootstrap(userCtx())

	require.NoError(t, err)
	assert.Equal(t, 1, gw.bootstrapCalls)
	require.Len(t, lists, 5)

	var defaultSlug string
	for _, rl := range lists {
		if rl.IsDefault {
			defaultSlug = rl.Slug
		}
	}
	assert.Equal(t, "unread", defaultSlug)
}
