package list_articles_gateway

import (
	"context"
	"errors"
	"time"

	"folio/domain"
	"folio/driver/reader_db"
	"folio/utils/logger"
)

type ListArticlesGateway struct {
	reader_db *reader_db.ReaderDBRepository
}

func NewListArticlesGateway(pool reader_db.DBPool) *ListArticlesGateway {
	return &ListArticlesGateway{reader_db: reader_db.NewReaderDBRepository(pool)}
}

// ListByReadingList returns the articles matching the list's filters
// in the list's order. now anchors the max-age window.
func (g *ListArticlesGateway) ListByReadingList(ctx context.Context, readingList *domain.ReadingList, now time.Time) ([]*domain.Article, error) {
	if g.reader_db == nil {
		return nil, errors.New("database connection not available")
	}

	articles, err := g.reader_db.ListArticlesForReadingList(ctx, readingList, now)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error listing articles for reading list", "error", err, "slug", readingList.Slug)
		return nil, err
	}

	return articles, nil
}
