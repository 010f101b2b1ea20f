package feed_ingestion_port

import (
	"context"

	"folio/domain"
)

// FeedIngestionPort turns a raw feed document into normalized article
// records. Returns the feed's title alongside the records so callers
// can attribute the batch to its source.
type FeedIngestionPort interface {
	ParseFeed(ctx context.Context, payload string) (string, []domain.ArticleRecord, error)
}
