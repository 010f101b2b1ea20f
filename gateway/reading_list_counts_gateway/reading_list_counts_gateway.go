package reading_list_counts_gateway

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"folio/domain"
	"folio/driver/reader_db"
	"folio/utils/logger"
)

type ReadingListCountsGateway struct {
	reader_db *reader_db.ReaderDBRepository
}

func NewReadingListCountsGateway(pool reader_db.DBPool) *ReadingListCountsGateway {
	return &ReadingListCountsGateway{reader_db: reader_db.NewReaderDBRepository(pool)}
}

// CountUnreadArticles computes the unread badge for every list in one
// round trip, keyed by list slug.
func (g *ReadingListCountsGateway) CountUnreadArticles(ctx context.Context, userID uuid.UUID, readingLists []*domain.ReadingList, now time.Time) (map[string]int, error) {
	if g.reader_db == nil {
		return nil, errors.New("database connection not available")
	}

	counts, err := g.reader_db.CountUnreadArticlesForReadingLists(ctx, userID, readingLists, now)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error counting unread articles", "error", err)
		return nil, err
	}

	return counts, nil
}
