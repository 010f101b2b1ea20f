package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"folio/utils/slugify"
)

// ReadStatus narrows a reading list to read or unread articles.
type ReadStatus string

const (
	ReadStatusAll        ReadStatus = "ALL"
	ReadStatusOnlyUnread ReadStatus = "ONLY_UNREAD"
	ReadStatusOnlyRead   ReadStatus = "ONLY_READ"
)

// FavoriteStatus narrows a reading list on the favorite flag.
type FavoriteStatus string

const (
	FavoriteStatusAll             FavoriteStatus = "ALL"
	FavoriteStatusOnlyFavorite    FavoriteStatus = "ONLY_FAVORITE"
	FavoriteStatusOnlyNonFavorite FavoriteStatus = "ONLY_NON_FAVORITE"
)

// ForLaterStatus narrows a reading list on the for-later flag.
type ForLaterStatus string

const (
	ForLaterStatusAll          ForLaterStatus = "ALL"
	ForLaterStatusOnlyForLater ForLaterStatus = "ONLY_FOR_LATER"
	ForLaterStatusOnlyNotLater ForLaterStatus = "ONLY_NOT_FOR_LATER"
)

// ArticlesMaxAgeUnit is the calendar unit of the age window.
type ArticlesMaxAgeUnit string

const (
	ArticlesMaxAgeUnitUnset  ArticlesMaxAgeUnit = "UNSET"
	ArticlesMaxAgeUnitHours  ArticlesMaxAgeUnit = "HOURS"
	ArticlesMaxAgeUnitDays   ArticlesMaxAgeUnit = "DAYS"
	ArticlesMaxAgeUnitWeeks  ArticlesMaxAgeUnit = "WEEKS"
	ArticlesMaxAgeUnitMonths ArticlesMaxAgeUnit = "MONTHS"
)

// ArticlesReadingTimeOperator bounds reading time. Both operators are
// inclusive at the boundary.
type ArticlesReadingTimeOperator string

const (
	ReadingTimeOperatorUnset    ArticlesReadingTimeOperator = "UNSET"
	ReadingTimeOperatorMoreThan ArticlesReadingTimeOperator = "MORE_THAN"
	ReadingTimeOperatorLessThan ArticlesReadingTimeOperator = "LESS_THAN"
)

// TagOperator selects superset (ALL) or overlap (ANY) semantics for a
// tag include/exclude set.
type TagOperator string

const (
	TagOperatorAll TagOperator = "ALL"
	TagOperatorAny TagOperator = "ANY"
)

// TagFilterType marks a reading-list tag as included or excluded.
type TagFilterType string

const (
	TagFilterInclude TagFilterType = "INCLUDE"
	TagFilterExclude TagFilterType = "EXCLUDE"
)

// OrderDirection is the display order of a reading list's articles.
type OrderDirection string

const (
	OrderDirectionAsc  OrderDirection = "ASC"
	OrderDirectionDesc OrderDirection = "DESC"
)

// Valid reports whether s is one of the known read statuses.
func (s ReadStatus) Valid() bool {
	switch s {
	case ReadStatusAll, ReadStatusOnlyUnread, ReadStatusOnlyRead:
		return true
	}
	return false
}

// Valid reports whether s is one of the known favorite statuses.
func (s FavoriteStatus) Valid() bool {
	switch s {
	case FavoriteStatusAll, FavoriteStatusOnlyFavorite, FavoriteStatusOnlyNonFavorite:
		return true
	}
	return false
}

// Valid reports whether s is one of the known for-later statuses.
func (s ForLaterStatus) Valid() bool {
	switch s {
	case ForLaterStatusAll, ForLaterStatusOnlyForLater, ForLaterStatusOnlyNotLater:
		return true
	}
	return false
}

// Valid reports whether u is one of the known age units.
func (u ArticlesMaxAgeUnit) Valid() bool {
	switch u {
	case ArticlesMaxAgeUnitUnset, ArticlesMaxAgeUnitHours, ArticlesMaxAgeUnitDays,
		ArticlesMaxAgeUnitWeeks, ArticlesMaxAgeUnitMonths:
		return true
	}
	return false
}

// Valid reports whether o is one of the known reading-time operators.
func (o ArticlesReadingTimeOperator) Valid() bool {
	switch o {
	case ReadingTimeOperatorUnset, ReadingTimeOperatorMoreThan, ReadingTimeOperatorLessThan:
		return true
	}
	return false
}

// Valid reports whether o is ALL or ANY.
func (o TagOperator) Valid() bool {
	return o == TagOperatorAll || o == TagOperatorAny
}

// Valid reports whether t is INCLUDE or EXCLUDE.
func (t TagFilterType) Valid() bool {
	return t == TagFilterInclude || t == TagFilterExclude
}

// Valid reports whether d is ASC or DESC.
func (d OrderDirection) Valid() bool {
	return d == OrderDirectionAsc || d == OrderDirectionDesc
}

// ReadingListTag links a reading list to a tag with a filter type. At
// most one link exists per (reading list, tag).
type ReadingListTag struct {
	TagID      uuid.UUID     `json:"tag_id"`
	TagSlug    string        `json:"tag_slug"`
	FilterType TagFilterType `json:"filter_type"`
}

// ReadingList is a named, persisted filter over a user's articles.
// Exactly one list per user is the default and cannot be deleted.
type ReadingList struct {
	ID                          uuid.UUID                   `json:"id"`
	UserID                      uuid.UUID                   `json:"user_id"`
	Name                        string                      `json:"name"`
	Slug                        string                      `json:"slug"`
	IsDefault                   bool                        `json:"is_default"`
	Order                       int                         `json:"order"`
	ReadStatus                  ReadStatus                  `json:"read_status"`
	FavoriteStatus              FavoriteStatus              `json:"favorite_status"`
	ForLaterStatus              ForLaterStatus              `json:"for_later_status"`
	ArticlesMaxAgeValue         int                         `json:"articles_max_age_value"`
	ArticlesMaxAgeUnit          ArticlesMaxAgeUnit          `json:"articles_max_age_unit"`
	ArticlesReadingTime         int                         `json:"articles_reading_time"`
	ArticlesReadingTimeOperator ArticlesReadingTimeOperator `json:"articles_reading_time_operator"`
	IncludeTagOperator          TagOperator                 `json:"include_tag_operator"`
	ExcludeTagOperator          TagOperator                 `json:"exclude_tag_operator"`
	OrderDirection              OrderDirection              `json:"order_direction"`
	Tags                        []ReadingListTag            `json:"tags"`
	CreatedAt                   time.Time                   `json:"created_at"`
}

// ValidateFilters rejects filter values outside the known enum sets.
// Persisting an unknown value would make every query against the list
// unanswerable, so the check runs before any write.
func (rl *ReadingList) ValidateFilters() error {
	if !rl.ReadStatus.Valid() {
		return fmt.Errorf("unknown read status %q", rl.ReadStatus)
	}
	if !rl.FavoriteStatus.Valid() {
		return fmt.Errorf("unknown favorite status %q", rl.FavoriteStatus)
	}
	if !rl.ForLaterStatus.Valid() {
		return fmt.Errorf("unknown for-later status %q", rl.ForLaterStatus)
	}
	if !rl.ArticlesMaxAgeUnit.Valid() {
		return fmt.Errorf("unknown articles max age unit %q", rl.ArticlesMaxAgeUnit)
	}
	if !rl.ArticlesReadingTimeOperator.Valid() {
		return fmt.Errorf("unknown reading time operator %q", rl.ArticlesReadingTimeOperator)
	}
	if !rl.IncludeTagOperator.Valid() {
		return fmt.Errorf("unknown include tag operator %q", rl.IncludeTagOperator)
	}
	if !rl.ExcludeTagOperator.Valid() {
		return fmt.Errorf("unknown exclude tag operator %q", rl.ExcludeTagOperator)
	}
	if !rl.OrderDirection.Valid() {
		return fmt.Errorf("unknown order direction %q", rl.OrderDirection)
	}
	for _, tag := range rl.Tags {
		if !tag.FilterType.Valid() {
			return fmt.Errorf("unknown tag filter type %q", tag.FilterType)
		}
	}
	return nil
}

// IncludedTagIDs returns the tag ids marked INCLUDE.
func (rl *ReadingList) IncludedTagIDs() []uuid.UUID {
	return rl.tagIDsOf(TagFilterInclude)
}

// ExcludedTagIDs returns the tag ids marked EXCLUDE.
func (rl *ReadingList) ExcludedTagIDs() []uuid.UUID {
	return rl.tagIDsOf(TagFilterExclude)
}

func (rl *ReadingList) tagIDsOf(filterType TagFilterType) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(rl.Tags))
	for _, tag := range rl.Tags {
		if tag.FilterType == filterType {
			ids = append(ids, tag.TagID)
		}
	}
	return ids
}

// MaxAgeCutoff resolves the age window against now using calendar
// arithmetic. Months subtract calendar months, not a fixed 30 days.
func (rl *ReadingList) MaxAgeCutoff(now time.Time) (time.Time, bool) {
	switch rl.ArticlesMaxAgeUnit {
	case ArticlesMaxAgeUnitUnset:
		return time.Time{}, false
	case ArticlesMaxAgeUnitHours:
		return now.Add(-time.Duration(rl.ArticlesMaxAgeValue) * time.Hour), true
	case ArticlesMaxAgeUnitDays:
		return now.AddDate(0, 0, -rl.ArticlesMaxAgeValue), true
	case ArticlesMaxAgeUnitWeeks:
		return now.AddDate(0, 0, -7*rl.ArticlesMaxAgeValue), true
	case ArticlesMaxAgeUnitMonths:
		return now.AddDate(0, -rl.ArticlesMaxAgeValue, 0), true
	default:
		panic(fmt.Sprintf("unknown articles max age unit %q", rl.ArticlesMaxAgeUnit))
	}
}

// DefaultReadingLists returns the bootstrap set created for a new
// user. Slugs are stable; the unread list is the default one.
func DefaultReadingLists(userID uuid.UUID, now time.Time) []*ReadingList {
	build := func(name string, order int) *ReadingList {
		return &ReadingList{
			ID:                          uuid.New(),
			UserID:                      userID,
			Name:                        name,
			Slug:                        slugify.Slugify(name),
			Order:                       order,
			ReadStatus:                  ReadStatusAll,
			FavoriteStatus:              FavoriteStatusAll,
			ForLaterStatus:              ForLaterStatusAll,
			ArticlesMaxAgeUnit:          ArticlesMaxAgeUnitUnset,
			ArticlesReadingTimeOperator: ReadingTimeOperatorUnset,
			IncludeTagOperator:          TagOperatorAll,
			ExcludeTagOperator:          TagOperatorAll,
			OrderDirection:              OrderDirectionDesc,
			CreatedAt:                   now,
		}
	}

	all := build("All articles", 0)

	unread := build("Unread", 10)
	unread.IsDefault = true
	unread.ReadStatus = ReadStatusOnlyUnread

	recent := build("Recent", 20)
	recent.ArticlesMaxAgeValue = 2
	recent.ArticlesMaxAgeUnit = ArticlesMaxAgeUnitDays

	favorite := build("Favorite", 30)
	favorite.FavoriteStatus = FavoriteStatusOnlyFavorite

	archive := build("Archive", 40)
	archive.ReadStatus = ReadStatusOnlyRead

	return []*ReadingList{all, unread, recent, favorite, archive}
}
