package list_articles_port

import (
	"context"
	"time"

	"folio/domain"
)

// ListArticlesPort returns the ordered articles matching a reading
// list's compiled predicate.
type ListArticlesPort interface {
	ListByReadingList(ctx context.Context, readingList *domain.ReadingList, now time.Time) ([]*domain.Article, error)
}
