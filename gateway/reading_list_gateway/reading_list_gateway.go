package reading_list_gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"folio/domain"
	"folio/driver/reader_db"
	"folio/utils/logger"
)

type ReadingListGateway struct {
	reader_db *reader_db.ReaderDBRepository
}

func NewReadingListGateway(pool reader_db.DBPool) *ReadingListGateway {
	return &ReadingListGateway{reader_db: reader_db.NewReaderDBRepository(pool)}
}

func (g *ReadingListGateway) ListReadingLists(ctx context.Context, userID uuid.UUID) ([]*domain.ReadingList, error) {
	if g.reader_db == nil {
		return nil, errors.New("database connection not available")
	}

	return g.reader_db.ListReadingLists(ctx, userID)
}

func (g *ReadingListGateway) GetReadingListBySlug(ctx context.Context, userID uuid.UUID, slug string) (*domain.ReadingList, error) {
	if g.reader_db == nil {
		return nil, errors.New("database connection not available")
	}

	return g.reader_db.GetReadingListBySlug(ctx, userID, slug)
}

// CreateReadingList stores the list together with its tag links in one
// transaction.
func (g *ReadingListGateway) CreateReadingList(ctx context.Context, readingList *domain.ReadingList) error {
	if g.reader_db == nil {
		return errors.New("database connection not available")
	}

	tx, err := g.reader_db.Pool().Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create reading list transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := g.reader_db.CreateReadingList(ctx, tx, readingList); err != nil {
		logger.SafeErrorContext(ctx, "Error creating reading list", "error", err, "slug", readingList.Slug)
		return err
	}

	return tx.Commit(ctx)
}

func (g *ReadingListGateway) DeleteReadingList(ctx context.Context, userID uuid.UUID, slug string) error {
	if g.reader_db == nil {
		return errors.New("database connection not available")
	}

	return g.reader_db.DeleteReadingList(ctx, userID, slug)
}

// CreateDefaultReadingLists bootstraps the starter lists for a new
// user, all of them or none.
func (g *ReadingListGateway) CreateDefaultReadingLists(ctx context.Context, userID uuid.UUID) ([]*domain.ReadingList, error) {
	if g.reader_db == nil {
		return nil, errors.New("database connection not available")
	}

	lists := domain.DefaultReadingLists(userID, time.Now().UTC())

	tx, err := g.reader_db.Pool().Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin default lists transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, rl := range lists {
		if err := g.reader_db.CreateReadingList(ctx, tx, rl); err != nil {
			logger.SafeErrorContext(ctx, "Error creating default reading list", "error", err, "slug", rl.Slug)
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit default lists transaction: %w", err)
	}

	logger.SafeInfoContext(ctx, "Default reading lists created", "count", len(lists))

	return lists, nil
}
