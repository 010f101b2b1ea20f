package reading_list_counts_usecase

import (
	"context"
	"time"

	"folio/domain"
	"folio/port/reading_list_counts_port"
	"folio/port/reading_list_port"
	"folio/utils/logger"
)

type ReadingListCountsUsecase struct {
	readingListGateway reading_list_port.ReadingListPort
	countsGateway      reading_list_counts_port.ReadingListCountsPort
}

func NewReadingListCountsUsecase(readingListGateway reading_list_port.ReadingListPort, countsGateway reading_list_counts_port.ReadingListCountsPort) *ReadingListCountsUsecase {
	return &ReadingListCountsUsecase{
		readingListGateway: readingListGateway,
		countsGateway:      countsGateway,
	}
}

// Execute returns the unread badge for each of the caller's reading
// lists, keyed by slug. All lists are counted in a single query.
func (u *ReadingListCountsUsecase) Execute(ctx context.Context) (map[string]int, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	readingLists, err := u.readingListGateway.ListReadingLists(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	if len(readingLists) == 0 {
		return map[string]int{}, nil
	}

	counts, err := u.countsGateway.CountUnreadArticles(ctx, user.UserID, readingLists, time.Now().UTC())
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to count unread articles", "error", err)
		return nil, err
	}

	return counts, nil
}
