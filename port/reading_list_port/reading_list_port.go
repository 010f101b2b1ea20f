package reading_list_port

import (
	"context"

	"github.com/google/uuid"

	"folio/domain"
)

// ReadingListPort persists reading lists and their tag links.
type ReadingListPort interface {
	ListReadingLists(ctx context.Context, userID uuid.UUID) ([]*domain.ReadingList, error)
	GetReadingListBySlug(ctx context.Context, userID uuid.UUID, slug string) (*domain.ReadingList, error)
	CreateReadingList(ctx context.Context, readingList *domain.ReadingList) error

	// DeleteReadingList rejects deletion of the default list with
	// domain.ErrCannotDeleteDefaultList.
	DeleteReadingList(ctx context.Context, userID uuid.UUID, slug string) error

	// CreateDefaultReadingLists bootstraps the initial list set for a
	// new user.
	CreateDefaultReadingLists(ctx context.Context, userID uuid.UUID) ([]*domain.ReadingList, error)
}
