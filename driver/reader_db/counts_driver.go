package reader_db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"folio/domain"
	"folio/utils/logger"
)

// CountUnreadArticlesForReadingLists computes the unread count of
// every reading list in exactly one query: each list's compiled
// predicate becomes a FILTER branch of a conditional aggregate over
// the user's unread articles.
func (r *ReaderDBRepository) CountUnreadArticlesForReadingLists(ctx context.Context, userID uuid.UUID, readingLists []*domain.ReadingList, now time.Time) (map[string]int, error) {
	if len(readingLists) == 0 {
		return map[string]int{}, nil
	}

	selects := make([]string, 0, len(readingLists))
	args := []any{userID}
	next := 2
	for _, readingList := range readingLists {
		predicate := domain.CompilePredicate(readingList, now)
		clause, predicateArgs := predicate.SQL(next)
		next += len(predicateArgs)
		args = append(args, predicateArgs...)
		selects = append(selects, fmt.Sprintf("COUNT(*) FILTER (WHERE %s)", clause))
	}

	query := `SELECT ` + strings.Join(selects, ", ") +
		` FROM articles a WHERE a.user_id = $1 AND a.read_at IS NULL`

	counts := make([]int64, len(readingLists))
	dests := make([]any, len(readingLists))
	for i := range counts {
		dests[i] = &counts[i]
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(dests...); err != nil {
		logger.SafeError("error counting unread articles", "error", err, "user_id", userID)
		return nil, fmt.Errorf("count unread articles: %w", err)
	}

	result := make(map[string]int, len(readingLists))
	for i, readingList := range readingLists {
		result[readingList.Slug] = int(counts[i])
	}

	return result, nil
}
