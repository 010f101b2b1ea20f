package ingest_feed_usecase

import (
	"context"
	"errors"
	"strings"

	"folio/domain"
	"folio/port/feed_ingestion_port"
	"folio/port/reconcile_articles_port"
	"folio/utils/logger"
)

type IngestFeedUsecase struct {
	feedGateway      feed_ingestion_port.FeedIngestionPort
	reconcileGateway reconcile_articles_port.ReconcileArticlesPort
}

func NewIngestFeedUsecase(feedGateway feed_ingestion_port.FeedIngestionPort, reconcileGateway reconcile_articles_port.ReconcileArticlesPort) *IngestFeedUsecase {
	return &IngestFeedUsecase{
		feedGateway:      feedGateway,
		reconcileGateway: reconcileGateway,
	}
}

// Execute parses a raw feed document and reconciles its entries into
// the caller's collection. tagTitles are attached to every touched
// article with the feed reason.
func (u *IngestFeedUsecase) Execute(ctx context.Context, payload string, tagTitles []string) ([]*domain.Article, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(payload) == "" {
		return nil, errors.New("feed payload must not be empty")
	}

	sourceTitle, records, err := u.feedGateway.ParseFeed(ctx, payload)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		logger.Logger.InfoContext(ctx, "feed contained no usable entries", "source", sourceTitle)
		return []*domain.Article{}, nil
	}

	articles, err := u.reconcileGateway.ReconcileArticles(ctx, user, records, tagTitles, domain.ArticleSourceFeed, false)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to reconcile feed entries", "error", err, "source", sourceTitle)
		return nil, err
	}

	return articles, nil
}
