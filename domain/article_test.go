package domain

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func baseRecord() ArticleRecord {
	published := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	return ArticleRecord{
		ExternalArticleID: "ext-1",
		Title:             "A Fine Article",
		Summary:           "summary",
		Content:           "<p>" + strings.Repeat("word ", 400) + "</p>",
		Authors:           []string{"Alice"},
		Contributors:      []string{"Bob"},
		Tags:              []string{"go"},
		Link:              "https://example.com/a-fine-article",
		PublishedAt:       timePtr(published),
		UpdatedAt:         timePtr(updated),
		SourceTitle:       "Example Feed",
		Language:          "en",
	}
}

func TestNewArticleFromRecord(t *testing.T) {
	now := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()
	record := baseRecord()

	article := NewArticleFromRecord(userID, record, ArticleSourceFeed, 200, now)

	assert.Equal(t, userID, article.UserID)
	assert.Equal(t, "A Fine Article", article.Title)
	assert.Equal(t, "a-fine-article", article.Slug)
	assert.Equal(t, 2, article.ReadingTime) // 400 words at 200 wpm
	assert.Equal(t, ArticleSourceFeed, article.MainSourceType)
	assert.Equal(t, record.PublishedAt, article.PublishedAt)
	assert.False(t, article.IsRead())
	assert.True(t, article.IsFromFeed())
}

func TestNewArticleFromRecord_EmptyContentHasZeroReadingTime(t *testing.T) {
	record := baseRecord()
	record.Content = ""

	article := NewArticleFromRecord(uuid.New(), record, ArticleSourceManual, 200, time.Now())

	assert.Equal(t, 0, article.ReadingTime)
	assert.False(t, article.IsFromFeed())
}

func TestUpdateFromRecord_NoOpWhenNotMoreRecent(t *testing.T) {
	now := time.Now().UTC()
	record := baseRecord()
	article := NewArticleFromRecord(uuid.New(), record, ArticleSourceFeed, 200, now)
	objUpdatedBefore := article.ObjUpdatedAt

	// Identical batch replayed: stored updated_at equals incoming, so
	// the record is not strictly more recent and content is already
	// set.
	changed := article.UpdateFromRecord(record, 200, false, now.Add(time.Hour))

	assert.False(t, changed)
	assert.Equal(t, objUpdatedBefore, article.ObjUpdatedAt)
}

func TestUpdateFromRecord_MoreRecentOverwrites(t *testing.T) {
	now := time.Now().UTC()
	article := NewArticleFromRecord(uuid.New(), baseRecord(), ArticleSourceFeed, 200, now)

	newer := baseRecord()
	newer.Title = "A Fine Article, Revised"
	newer.Summary = "new summary"
	newer.Authors = []string{"Alice", "Carol"}
	newer.UpdatedAt = timePtr(article.UpdatedAt.Add(48 * time.Hour))
	newer.PublishedAt = timePtr(article.PublishedAt.Add(-24 * time.Hour))

	changed := article.UpdateFromRecord(newer, 200, false, now)

	require.True(t, changed)
	assert.Equal(t, "A Fine Article, Revised", article.Title)
	assert.Equal(t, "a-fine-article-revised", article.Slug)
	assert.Equal(t, "new summary", article.Summary)
	// Duplicate-free union preserving first-seen order.
	assert.Equal(t, []string{"Alice", "Carol"}, article.Authors)
	// published_at only moves backwards, updated_at only forwards.
	assert.Equal(t, *newer.PublishedAt, *article.PublishedAt)
	assert.Equal(t, *newer.UpdatedAt, *article.UpdatedAt)
}

func TestUpdateFromRecord_PublishedAtNeverMovesForward(t *testing.T) {
	now := time.Now().UTC()
	article := NewArticleFromRecord(uuid.New(), baseRecord(), ArticleSourceFeed, 200, now)
	originalPublished := *article.PublishedAt

	newer := baseRecord()
	newer.UpdatedAt = timePtr(article.UpdatedAt.Add(time.Hour))
	newer.PublishedAt = timePtr(originalPublished.Add(72 * time.Hour))

	require.True(t, article.UpdateFromRecord(newer, 200, false, now))

	assert.Equal(t, originalPublished, *article.PublishedAt)
}

func TestUpdateFromRecord_ContentOnlyPatch(t *testing.T) {
	now := time.Now().UTC()
	record := baseRecord()
	record.Content = ""
	article := NewArticleFromRecord(uuid.New(), record, ArticleSourceFeed, 200, now)
	article.UpdatedAt = timePtr(now)

	older := baseRecord()
	older.Title = "Should Not Overwrite"
	older.UpdatedAt = timePtr(now.Add(-time.Hour))

	changed := article.UpdateFromRecord(older, 200, false, now)

	require.True(t, changed)
	assert.Equal(t, older.Content, article.Content)
	// Everything else stays untouched.
	assert.Equal(t, "A Fine Article", article.Title)
}

func TestUpdateFromRecord_BothNullUpdatedAtCountsAsMoreRecent(t *testing.T) {
	now := time.Now().UTC()
	record := baseRecord()
	record.UpdatedAt = nil
	article := NewArticleFromRecord(uuid.New(), record, ArticleSourceFeed, 200, now)

	incoming := baseRecord()
	incoming.Title = "Updated Title"
	incoming.UpdatedAt = nil

	changed := article.UpdateFromRecord(incoming, 200, false, now)

	require.True(t, changed)
	assert.Equal(t, "Updated Title", article.Title)
}

func TestUpdateFromRecord_ForceUpdate(t *testing.T) {
	now := time.Now().UTC()
	record := baseRecord()
	article := NewArticleFromRecord(uuid.New(), record, ArticleSourceFeed, 200, now)

	record.Title = "Forced"
	changed := article.UpdateFromRecord(record, 200, true, now)

	require.True(t, changed)
	assert.Equal(t, "Forced", article.Title)
}

func TestUpdateFromRecord_EmptyIncomingFieldsKeepStoredValues(t *testing.T) {
	now := time.Now().UTC()
	article := NewArticleFromRecord(uuid.New(), baseRecord(), ArticleSourceFeed, 200, now)

	newer := ArticleRecord{
		Link:      article.Link,
		UpdatedAt: timePtr(article.UpdatedAt.Add(time.Hour)),
	}

	require.True(t, article.UpdateFromRecord(newer, 200, false, now))

	assert.Equal(t, "A Fine Article", article.Title)
	assert.Equal(t, "summary", article.Summary)
	assert.NotEmpty(t, article.Content)
}

func TestMarkManuallyAdded(t *testing.T) {
	now := time.Now().UTC()
	article := NewArticleFromRecord(uuid.New(), baseRecord(), ArticleSourceFeed, 200, now)
	article.ReadAt = timePtr(now)

	article.MarkManuallyAdded(now.Add(time.Minute))

	assert.Equal(t, ArticleSourceManual, article.MainSourceType)
	assert.Nil(t, article.ReadAt)
	assert.False(t, article.IsRead())
}

func TestTruncateTitle(t *testing.T) {
	long := strings.Repeat("x", ArticleTitleMaxLength+50)
	assert.Len(t, truncateTitle(long), ArticleTitleMaxLength)
	assert.Equal(t, "short", truncateTitle("short"))
}

func TestTruncateTitle_CutsOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("é", 300)

	got := truncateTitle(long)

	assert.True(t, utf8.ValidString(got), "truncation must not split a rune")
	assert.LessOrEqual(t, len(got), ArticleTitleMaxLength)
	assert.Equal(t, strings.Repeat("é", len(got)/2), got)
}

func TestUniqueUnion(t *testing.T) {
	assert.Equal(t,
		[]string{"a", "b", "c"},
		uniqueUnion([]string{"a", "b"}, []string{"b", "c", "a"}),
	)
	assert.Empty(t, uniqueUnion(nil, nil))
}

func TestMinMaxTime(t *testing.T) {
	early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, &early, minTime(&early, &late))
	assert.Equal(t, &late, maxTime(&early, &late))
	assert.Equal(t, &early, minTime(&early, nil))
	assert.Equal(t, &early, maxTime(nil, &early))
	assert.Nil(t, minTime(nil, nil))
	assert.Nil(t, maxTime(nil, nil))
}
