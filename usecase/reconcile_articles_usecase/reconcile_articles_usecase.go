package reconcile_articles_usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"folio/domain"
	"folio/port/reconcile_articles_port"
	apperrors "folio/utils/errors"
	"folio/utils/logger"
)

type ReconcileArticlesUsecase struct {
	reconcileGateway reconcile_articles_port.ReconcileArticlesPort
	maxBatchSize     int
}

// NewReconcileArticlesUsecase builds the usecase. maxBatchSize caps how
// many records one call may carry; zero or negative disables the cap.
func NewReconcileArticlesUsecase(reconcileGateway reconcile_articles_port.ReconcileArticlesPort, maxBatchSize int) *ReconcileArticlesUsecase {
	return &ReconcileArticlesUsecase{reconcileGateway: reconcileGateway, maxBatchSize: maxBatchSize}
}

// Execute merges a batch of incoming records into the caller's
// collection and returns every article the batch named, created or
// matched. An empty batch is a no-op that touches nothing.
func (u *ReconcileArticlesUsecase) Execute(
	ctx context.Context,
	records []domain.ArticleRecord,
	tagTitles []string,
	sourceType domain.ArticleSourceType,
	forceUpdate bool,
) ([]*domain.Article, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if sourceType != domain.ArticleSourceFeed && sourceType != domain.ArticleSourceManual {
		logger.Logger.ErrorContext(ctx, "invalid source type", "sourceType", string(sourceType))
		return nil, errors.New("source type must be FEED or MANUAL")
	}

	if len(records) == 0 {
		return []*domain.Article{}, nil
	}

	if u.maxBatchSize > 0 && len(records) > u.maxBatchSize {
		logger.Logger.ErrorContext(ctx, "batch exceeds the configured cap",
			"records", len(records), "max", u.maxBatchSize)
		return nil, apperrors.ValidationError(
			fmt.Sprintf("batch of %d records exceeds the maximum of %d", len(records), u.maxBatchSize),
			map[string]interface{}{"max_batch_size": u.maxBatchSize},
		)
	}

	for _, record := range records {
		if strings.TrimSpace(record.Link) == "" {
			logger.Logger.ErrorContext(ctx, "record without link in batch")
			return nil, errors.New("every record must carry a link")
		}
	}

	articles, err := u.reconcileGateway.ReconcileArticles(ctx, user, records, tagTitles, sourceType, forceUpdate)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to reconcile articles", "error", err, "records", len(records))
		return nil, err
	}

	return articles, nil
}

// CreateInvalidArticle records a placeholder plus a fetch-error entry
// for a link that could not be retrieved.
func (u *ReconcileArticlesUsecase) CreateInvalidArticle(ctx context.Context, link string, tagTitles []string, errorMessage string) (*domain.Article, bool, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return nil, false, err
	}

	if strings.TrimSpace(link) == "" {
		return nil, false, errors.New("link must not be empty")
	}

	article, created, err := u.reconcileGateway.CreateInvalidArticle(ctx, user, link, tagTitles, errorMessage)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to record invalid article", "error", err, "link", link)
		return nil, false, err
	}

	return article, created, nil
}
