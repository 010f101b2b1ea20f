package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaggingReason records why a tag is attached to an article. DELETED
// is a soft-delete marker, not a row removal: it keeps a user-removed
// tag from being resurrected by the next feed sync while still letting
// the user re-add it explicitly.
type TaggingReason string

const (
	TaggingReasonAddedManually TaggingReason = "ADDED_MANUALLY"
	TaggingReasonFromFeed      TaggingReason = "FROM_FEED"
	TaggingReasonDeleted       TaggingReason = "DELETED"
)

// Tag is a user-owned label with a slug unique per owner.
type Tag struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// ArticleTag links an article to a tag. At most one row exists per
// (article, tag) pair; reason changes happen in place.
type ArticleTag struct {
	ID            uuid.UUID     `json:"id"`
	ArticleID     uuid.UUID     `json:"article_id"`
	TagID         uuid.UUID     `json:"tag_id"`
	TaggingReason TaggingReason `json:"tagging_reason"`
}

// IsActive reports whether the association counts for filtering and
// display.
func (at ArticleTag) IsActive() bool {
	return at.TaggingReason != TaggingReasonDeleted
}
