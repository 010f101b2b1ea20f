package reconcile_articles_usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/domain"
	apperrors "folio/utils/errors"
	"folio/utils/logger"
)

type fakeReconcileGateway struct {
	calls         int
	gotRecords    []domain.ArticleRecord
	gotTags       []string
	gotSourceType domain.ArticleSourceType
	gotForce      bool
	result        []*domain.Article
	err           error
}

func (f *fakeReconcileGateway) ReconcileArticles(ctx context.Context, user *domain.UserContext, records []domain.ArticleRecord, tagTitles []string, sourceType domain.ArticleSourceType, forceUpdate bool) ([]*domain.Article, error) {
	f.calls++
	f.gotRecords = records
	f.gotTags = tagTitles
	f.gotSourceType = sourceType
	f.gotForce = forceUpdate
	return f.result, f.err
}

func (f *fakeReconcileGateway) CreateInvalidArticle(ctx context.Context, user *domain.UserContext, link string, tagTitles []string, errorMessage string) (*domain.Article, bool, error) {
	f.calls++
	if f.err != nil {
		return nil, false, f.err
	}
	return &domain.Article{Link: link}, true, nil
}

func userCtx() context.Context {
	return domain.SetUserContext(context.Background(), &domain.UserContext{UserID: uuid.New()})
}

func TestExecute_EmptyBatchIsNoOp(t *testing.T) {
	logger.InitLogger()
	gw := &fakeReconcileGateway{}
	usecase := NewReconcileArticlesUsecase(gw, 0)

	articles, err := usecase.Execute(userCtx(), nil, nil, domain.ArticleSourceFeed, false)

	require.NoError(t, err)
	assert.Empty(t, articles)
	assert.Zero(t, gw.calls, "empty batch must not reach the gateway")
}

func TestExecute_RequiresUserContext(t *testing.T) {
	logger.InitLogger()
	gw := &fakeReconcileGateway{}
	usecase := NewReconcileArticlesUsecase(gw, 0)

	_, err := usecase.Execute(context.Background(),
		[]domain.ArticleRecord{{Link: "https://example.com/a"}},
		nil, domain.ArticleSourceFeed, false)

	assert.ErrorIs(t, err, domain.ErrInvalidUserContext)
	assert.Zero(t, gw.calls)
}

func TestExecute_RejectsUnknownSourceType(t *testing.T) {
	logger.InitLogger()
	gw := &fakeReconcileGateway{}
	usecase := NewReconcileArticlesUsecase(gw, 0)

	_, err := usecase.Execute(userCtx(),
		[]domain.ArticleRecord{{Link: "https://example.com/a"}},
		nil, domain.ArticleSourceType("IMPORT"), false)

	assert.Error(t, err)
	assert.Zero(t, gw.calls)
}

func TestExecute_RejectsRecordWithoutLink(t *testing.T) {
	logger.InitLogger()
	gw := &fakeReconcileGateway{}
	usecase := NewReconcileArticlesUsecase(gw, 0)

	_, err := usecase.Execute(userCtx(),
		[]domain.ArticleRecord{{Link: "https://example.com/a"}, {Link: "  "}},
		nil, domain.ArticleSourceFeed, false)

	assert.Error(t, err)
	assert.Zero(t, gw.calls)
}

func TestExecute_RejectsBatchOverCap(t *testing.T) {
	logger.InitLogger()
	gw := &fakeReconcileGateway{}
	usecase := NewReconcileArticlesUsecase(gw, 2)

	records := []domain.ArticleRecord{
		{Link: "https://example.com/a"},
		{Link: "https://example.com/b"},
		{Link: "https://example.com/c"},
	}
	_, err := usecase.Execute(userCtx(), records, nil, domain.ArticleSourceFeed, false)

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus())
	assert.Zero(t, gw.calls, "an oversized batch must not reach the gateway")
}

func TestExecute_AllowsBatchAtCap(t *testing.T) {
	logger.InitLogger()
	gw := &fakeReconcileGateway{result: []*domain.Article{}}
	usecase := NewReconcileArticlesUsecase(gw, 2)

	records := []domain.ArticleRecord{
		{Link: "https://example.com/a"},
		{Link: "https://example.com/b"},
	}
	_, err := usecase.Execute(userCtx(), records, nil, domain.ArticleSourceFeed, false)

	require.NoError(t, err)
	assert.Equal(t, 1, gw.calls)
}

func TestExecute_ForwardsBatchToGateway(t *testing.T) {
	logger.InitLogger()
	want := []*domain.Article{{Link: "https://example.com/a"}}
	gw := &fakeReconcileGateway{result: want}
	usecase := NewReconcileArticlesUsecase(gw, 0)

	records := []domain.ArticleRecord{{Link: "https://example.com/a"}}
	articles, err := usecase.Execute(userCtx(), records, []string{"go"}, domain.ArticleSourceManual, true)

	require.NoError(t, err)
	assert.Equal(t, want, articles)
	assert.Equal(t, 1, gw.calls)
	assert.Equal(t, records, gw.gotRecords)
	assert.Equal(t, []string{"go"}, gw.gotTags)
	assert.Equal(t, domain.ArticleSourceManual, gw.gotSourceType)
	assert.True(t, gw.gotForce)
}

func TestCreateInvalidArticle_RequiresLink(t *testing.T) {
	logger.InitLogger()
	gw := &fakeReconcileGateway{}
	usecase := NewReconcileArticlesUsecase(gw, 0)

	_, _, err := usecase.CreateInvalidArticle(userCtx(), "   ", nil, "fetch failed")

	assert.Error(t, err)
	assert.Zero(t, gw.calls)
}

func TestCreateInvalidArticle_ReturnsPlaceholder(t *testing.T) {
	logger.InitLogger()
	gw := &fakeReconcileGateway{}
	usecase := NewReconcileArticlesUsecase(gw, 0)

	article, created, err := usecase.CreateInvalidArticle(userCtx(), "https://example.com/broken", []string{"later"}, "404")

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "https://example.com/broken", article.Link)
}
