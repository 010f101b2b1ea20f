package reading_list_usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"folio/domain"
	"folio/port/reading_list_port"
	apperrors "folio/utils/errors"
	"folio/utils/logger"
	"folio/utils/slugify"
)

type ReadingListUsecase struct {
	readingListGateway reading_list_port.ReadingListPort
}

func NewReadingListUsecase(readingListGateway reading_list_port.ReadingListPort) *ReadingListUsecase {
	return &ReadingListUsecase{readingListGateway: readingListGateway}
}

func (u *ReadingListUsecase) List(ctx context.Context) ([]*domain.ReadingList, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return u.readingListGateway.ListReadingLists(ctx, user.UserID)
}

// Create stores a new list owned by the caller. The slug derives from
// the name; id, timestamps and ownership are assigned here.
func (u *ReadingListUsecase) Create(ctx context.Context, readingList *domain.ReadingList) (*domain.ReadingList, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(readingList.Name) == "" {
		return nil, errors.New("reading list name must not be empty")
	}
	slug := slugify.Slugify(readingList.Name)
	if slug == "" {
		return nil, errors.New("reading list name must contain letters or digits")
	}

	readingList.ID = uuid.New()
	readingList.UserID = user.UserID
	readingList.Slug = slug
	readingList.IsDefault = false
	readingList.CreatedAt = time.Now().UTC()
	applyFilterDefaults(readingList)

	if err := readingList.ValidateFilters(); err != nil {
		logger.Logger.ErrorContext(ctx, "rejected reading list with invalid filters", "error", err, "slug", slug)
		return nil, apperrors.ValidationError(err.Error(), map[string]interface{}{"slug": slug})
	}

	if err := u.readingListGateway.CreateReadingList(ctx, readingList); err != nil {
		logger.Logger.ErrorContext(ctx, "failed to create reading list", "error", err, "slug", slug)
		return nil, err
	}

	return readingList, nil
}

// Delete removes a list by slug. The default list cannot be removed.
func (u *ReadingListUsecase) Delete(ctx context.Context, slug string) error {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(slug) == "" {
		return errors.New("slug must not be empty")
	}

	return u.readingListGateway.DeleteReadingList(ctx, user.UserID, slug)
}

// Bootstrap creates the starter lists for a user that has none yet.
func (u *ReadingListUsecase) Bootstrap(ctx context.Context) ([]*domain.ReadingList, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := u.readingListGateway.ListReadingLists(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	return u.readingListGateway.CreateDefaultReadingLists(ctx, user.UserID)
}

// applyFilterDefaults fills the zero values of optional filters so the
// stored row always carries valid enum values.
func applyFilterDefaults(rl *domain.ReadingList) {
	if rl.ReadStatus == "" {
		rl.ReadStatus = domain.ReadStatusAll
	}
	if rl.FavoriteStatus == "" {
		rl.FavoriteStatus = domain.FavoriteStatusAll
	}
	if rl.ForLaterStatus == "" {
		rl.ForLaterStatus = domain.ForLaterStatusAll
	}
	if rl.ArticlesMaxAgeUnit == "" {
		rl.ArticlesMaxAgeUnit = domain.ArticlesMaxAgeUnitUnset
	}
	if rl.ArticlesReadingTimeOperator == "" {
		rl.ArticlesReadingTimeOperator = domain.ReadingTimeOperatorUnset
	}
	if rl.IncludeTagOperator == "" {
		rl.IncludeTagOperator = domain.TagOperatorAll
	}
	if rl.ExcludeTagOperator == "" {
		rl.ExcludeTagOperator = domain.TagOperatorAll
	}
	if rl.OrderDirection == "" {
		rl.OrderDirection = domain.OrderDirectionDesc
	}
}
