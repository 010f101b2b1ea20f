package domain

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"folio/utils/htmltext"
	"folio/utils/slugify"
)

const ArticleTitleMaxLength = 255

// ArticleSourceType records how an article entered the collection.
type ArticleSourceType string

const (
	ArticleSourceFeed   ArticleSourceType = "FEED"
	ArticleSourceManual ArticleSourceType = "MANUAL"
)

// Article is a stored article owned by exactly one user. (user, link)
// is unique; everything else may repeat.
type Article struct {
	ID                uuid.UUID         `json:"id"`
	UserID            uuid.UUID         `json:"user_id"`
	ExternalArticleID string            `json:"external_article_id"`
	Title             string            `json:"title"`
	Slug              string            `json:"slug"`
	Summary           string            `json:"summary"`
	Content           string            `json:"content"`
	ReadingTime       int               `json:"reading_time"`
	Authors           []string          `json:"authors"`
	Contributors      []string          `json:"contributors"`
	ExternalTags      []string          `json:"external_tags"`
	Link              string            `json:"link"`
	PreviewPictureURL string            `json:"preview_picture_url"`
	PreviewPictureAlt string            `json:"preview_picture_alt"`
	Annotations       []string          `json:"annotations"`
	Language          string            `json:"language"`
	ReadAt            *time.Time        `json:"read_at"`
	OpenedAt          *time.Time        `json:"opened_at"`
	IsFavorite        bool              `json:"is_favorite"`
	IsForLater        bool              `json:"is_for_later"`
	MainSourceType    ArticleSourceType `json:"main_source_type"`
	MainSourceTitle   string            `json:"main_source_title"`
	PublishedAt       *time.Time        `json:"published_at"`
	UpdatedAt         *time.Time        `json:"updated_at"`
	ObjCreatedAt      time.Time         `json:"obj_created_at"`
	ObjUpdatedAt      time.Time         `json:"obj_updated_at"`
}

func (a *Article) IsRead() bool {
	return a.ReadAt != nil
}

func (a *Article) WasOpened() bool {
	return a.OpenedAt != nil
}

func (a *Article) IsFromFeed() bool {
	return a.MainSourceType == ArticleSourceFeed
}

// ArticleRecord is a normalized incoming article as produced by the
// feed-fetch collaborator or a manual add/import.
type ArticleRecord struct {
	ExternalArticleID string     `json:"external_article_id"`
	Title             string     `json:"title"`
	Summary           string     `json:"summary"`
	Content           string     `json:"content"`
	Authors           []string   `json:"authors"`
	Contributors      []string   `json:"contributors"`
	Tags              []string   `json:"tags"`
	Link              string     `json:"link"`
	PreviewPictureURL string     `json:"preview_picture_url"`
	PreviewPictureAlt string     `json:"preview_picture_alt"`
	PublishedAt       *time.Time `json:"published_at"`
	UpdatedAt         *time.Time `json:"updated_at"`
	SourceTitle       string     `json:"source_title"`
	Language          string     `json:"language"`
	Annotations       []string   `json:"annotations"`
	ReadAt            *time.Time `json:"read_at"`
	IsFavorite        bool       `json:"is_favorite"`
}

// NewArticleFromRecord stages a new article row for a record that has
// no stored counterpart yet.
func NewArticleFromRecord(userID uuid.UUID, record ArticleRecord, sourceType ArticleSourceType, wordsPerMinute int, now time.Time) *Article {
	title := truncateTitle(record.Title)
	return &Article{
		ID:                uuid.New(),
		UserID:            userID,
		ExternalArticleID: record.ExternalArticleID,
		Title:             title,
		Slug:              slugify.Slugify(title),
		Summary:           record.Summary,
		Content:           record.Content,
		ReadingTime:       htmltext.ReadingTime(record.Content, wordsPerMinute),
		Authors:           uniqueUnion(nil, record.Authors),
		Contributors:      uniqueUnion(nil, record.Contributors),
		ExternalTags:      uniqueUnion(nil, record.Tags),
		Link:              record.Link,
		PreviewPictureURL: record.PreviewPictureURL,
		PreviewPictureAlt: record.PreviewPictureAlt,
		Annotations:       record.Annotations,
		Language:          record.Language,
		ReadAt:            record.ReadAt,
		IsFavorite:        record.IsFavorite,
		MainSourceType:    sourceType,
		MainSourceTitle:   record.SourceTitle,
		PublishedAt:       record.PublishedAt,
		UpdatedAt:         record.UpdatedAt,
		ObjCreatedAt:      now,
		ObjUpdatedAt:      now,
	}
}

// UpdateFromRecord merges an incoming record into the stored article
// and reports whether the article changed.
//
// The record wins when it is more recent: the stored updated_at is
// null, the incoming one is null, or the incoming one is strictly
// greater. List fields merge as a duplicate-free union, published_at
// only ever moves backwards and updated_at only ever forwards. A
// record that is not more recent may still patch content into an
// article that has none; anything else is a silent no-op so noisy
// feeds do not cause write storms.
func (a *Article) UpdateFromRecord(record ArticleRecord, wordsPerMinute int, forceUpdate bool, now time.Time) bool {
	isMoreRecent := a.UpdatedAt == nil ||
		record.UpdatedAt == nil ||
		record.UpdatedAt.After(*a.UpdatedAt)
	hasContentUnlikeSaved := record.Content != "" && a.Content == ""

	if !isMoreRecent && !hasContentUnlikeSaved && !forceUpdate {
		return false
	}

	if isMoreRecent || forceUpdate {
		title := truncateTitle(record.Title)
		if title != "" {
			a.Title = title
			a.Slug = slugify.Slugify(title)
		}
		if record.Summary != "" {
			a.Summary = record.Summary
		}
		if record.Content != "" {
			a.Content = record.Content
		}
		if readingTime := htmltext.ReadingTime(a.Content, wordsPerMinute); readingTime > 0 {
			a.ReadingTime = readingTime
		}
		if record.PreviewPictureURL != "" {
			a.PreviewPictureURL = record.PreviewPictureURL
		}
		if record.PreviewPictureAlt != "" {
			a.PreviewPictureAlt = record.PreviewPictureAlt
		}
		a.Authors = uniqueUnion(a.Authors, record.Authors)
		a.Contributors = uniqueUnion(a.Contributors, record.Contributors)
		a.ExternalTags = uniqueUnion(a.ExternalTags, record.Tags)
		a.UpdatedAt = maxTime(record.UpdatedAt, a.UpdatedAt)
		a.PublishedAt = minTime(record.PublishedAt, a.PublishedAt)
	} else if hasContentUnlikeSaved {
		a.Content = record.Content
	}

	a.ObjUpdatedAt = now

	return true
}

// MarkManuallyAdded applies the manual re-add policy: the article
// stops being feed-owned and returns to the unread set.
func (a *Article) MarkManuallyAdded(now time.Time) {
	a.MainSourceType = ArticleSourceManual
	a.ReadAt = nil
	a.ObjUpdatedAt = now
}

// truncateTitle cuts overlong titles on a rune boundary so the stored
// value stays valid UTF-8.
func truncateTitle(title string) string {
	if len(title) <= ArticleTitleMaxLength {
		return title
	}
	cut := ArticleTitleMaxLength
	for cut > 0 && !utf8.RuneStart(title[cut]) {
		cut--
	}
	return title[:cut]
}

// uniqueUnion merges two string lists preserving first-seen order.
func uniqueUnion(existing, incoming []string) []string {
	merged := make([]string, 0, len(existing)+len(incoming))
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	for _, list := range [][]string{existing, incoming} {
		for _, value := range list {
			if _, ok := seen[value]; ok {
				continue
			}
			seen[value] = struct{}{}
			merged = append(merged, value)
		}
	}
	return merged
}

// minTime returns the earliest non-nil time, or nil when both are nil.
func minTime(a, b *time.Time) *time.Time {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a.Before(*b):
		return a
	default:
		return b
	}
}

// maxTime returns the latest non-nil time, or nil when both are nil.
func maxTime(a, b *time.Time) *time.Time {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a.After(*b):
		return a
	default:
		return b
	}
}
