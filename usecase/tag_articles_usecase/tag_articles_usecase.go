package tag_articles_usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"folio/domain"
	"folio/port/tag_ledger_port"
	"folio/utils/logger"
)

type TagArticlesUsecase struct {
	tagLedgerGateway tag_ledger_port.TagLedgerPort
}

func NewTagArticlesUsecase(tagLedgerGateway tag_ledger_port.TagLedgerPort) *TagArticlesUsecase {
	return &TagArticlesUsecase{tagLedgerGateway: tagLedgerGateway}
}

// AddTags attaches tags the user picked by hand. Unlike feed-driven
// tagging this revives associations they deleted before, since an
// explicit re-add overrides the earlier removal.
func (u *TagArticlesUsecase) AddTags(ctx context.Context, articleIDs []uuid.UUID, tagTitles []string) error {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return err
	}
	if len(articleIDs) == 0 {
		return errors.New("article ids must not be empty")
	}
	if len(tagTitles) == 0 {
		return nil
	}

	if err := u.tagLedgerGateway.AssociateTags(ctx, user.UserID, articleIDs, tagTitles, domain.TaggingReasonAddedManually, true); err != nil {
		logger.Logger.ErrorContext(ctx, "failed to add tags", "error", err, "articles", len(articleIDs))
		return err
	}

	return nil
}

// RemoveTags soft-deletes the associations so a later feed refresh
// cannot bring them back.
func (u *TagArticlesUsecase) RemoveTags(ctx context.Context, articleIDs []uuid.UUID, tagTitles []string) error {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return err
	}
	if len(articleIDs) == 0 {
		return errors.New("article ids must not be empty")
	}
	if len(tagTitles) == 0 {
		return nil
	}

	if err := u.tagLedgerGateway.DissociateTags(ctx, user.UserID, articleIDs, tagTitles); err != nil {
		logger.Logger.ErrorContext(ctx, "failed to remove tags", "error", err, "articles", len(articleIDs))
		return err
	}

	return nil
}

// ReplaceTags makes tagTitles the article's exact active tag set:
// named tags are attached (reviving deleted ones), everything else is
// soft-deleted. An empty list clears all tags.
func (u *TagArticlesUsecase) ReplaceTags(ctx context.Context, articleID uuid.UUID, tagTitles []string) error {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return err
	}
	if articleID == uuid.Nil {
		return errors.New("article id must not be empty")
	}

	if len(tagTitles) > 0 {
		if err := u.tagLedgerGateway.AssociateTags(ctx, user.UserID, []uuid.UUID{articleID}, tagTitles, domain.TaggingReasonAddedManually, true); err != nil {
			logger.Logger.ErrorContext(ctx, "failed to replace tags", "error", err, "articleID", articleID)
			return err
		}
	}
	if err := u.tagLedgerGateway.DissociateTagsNotInList(ctx, user.UserID, articleID, tagTitles); err != nil {
		logger.Logger.ErrorContext(ctx, "failed to prune replaced tags", "error", err, "articleID", articleID)
		return err
	}

	return nil
}

// ActiveTags lists the article's non-deleted tags.
func (u *TagArticlesUsecase) ActiveTags(ctx context.Context, articleID uuid.UUID) ([]*domain.Tag, error) {
	if _, err := domain.GetUserFromContext(ctx); err != nil {
		return nil, err
	}
	if articleID == uuid.Nil {
		return nil, errors.New("article id must not be empty")
	}

	return u.tagLedgerGateway.ActiveTagsFor(ctx, articleID)
}
