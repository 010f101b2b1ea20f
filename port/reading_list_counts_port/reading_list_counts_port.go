package reading_list_counts_port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"folio/domain"
)

// ReadingListCountsPort computes per-list unread counts in a single
// round trip regardless of list count.
type ReadingListCountsPort interface {
	CountUnreadArticles(ctx context.Context, userID uuid.UUID, readingLists []*domain.ReadingList, now time.Time) (map[string]int, error)
}
