package tag_ledger_port

import (
	"context"

	"github.com/google/uuid"

	"folio/domain"
)

// TagLedgerPort maintains article-tag associations with auditable
// reason codes and soft-delete semantics.
type TagLedgerPort interface {
	// AssociateTags attaches tags to articles, creating missing tags on
	// demand. An existing association keeps its DELETED reason unless
	// readdDeleted is set. An empty tag list is a no-op.
	AssociateTags(ctx context.Context, userID uuid.UUID, articleIDs []uuid.UUID, tagTitles []string, reason domain.TaggingReason, readdDeleted bool) error

	// DissociateTags soft-deletes matching associations; rows are kept.
	DissociateTags(ctx context.Context, userID uuid.UUID, articleIDs []uuid.UUID, tagTitles []string) error

	// DissociateTagsNotInList soft-deletes every association of the
	// article whose tag is outside keepTagTitles (replace semantics).
	DissociateTagsNotInList(ctx context.Context, userID uuid.UUID, articleID uuid.UUID, keepTagTitles []string) error

	// ActiveTagsFor lists the article's non-deleted tags ordered by
	// title.
	ActiveTagsFor(ctx context.Context, articleID uuid.UUID) ([]*domain.Tag, error)
}
