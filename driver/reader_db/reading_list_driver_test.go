package reader_db

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/domain"
)

func TestDeleteReadingList_DefaultListIsProtected(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &ReaderDBRepository{pool: mock}
	userID := uuid.New()

	rows := pgxmock.NewRows([]string{"id", "is_default"}).AddRow(uuid.New(), true)
	mock.ExpectQuery("SELECT id, is_default FROM reading_lists").
		WithArgs(userID, "unread").
		WillReturnRows(rows)
	// No DELETE is expected: the row must stay intact.

	err = repo.DeleteReadingList(context.Background(), userID, "unread")

	assert.ErrorIs(t, err, domain.ErrCannotDeleteDefaultList)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteReadingList_NonDefault(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &ReaderDBRepository{pool: mock}
	userID := uuid.New()
	listID := uuid.New()

	rows := pgxmock.NewRows([]string{"id", "is_default"}).AddRow(listID, false)
	mock.ExpectQuery("SELECT id, is_default FROM reading_lists").
		WithArgs(userID, "archive").
		WillReturnRows(rows)
	mock.ExpectExec("DELETE FROM reading_lists").
		WithArgs(listID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err = repo.DeleteReadingList(context.Background(), userID, "archive")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteReadingList_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &ReaderDBRepository{pool: mock}

	mock.ExpectQuery("SELECT id, is_default FROM reading_lists").
		WithArgs(pgxmock.AnyArg(), "missing").
		WillReturnError(pgx.ErrNoRows)

	err = repo.DeleteReadingList(context.Background(), uuid.New(), "missing")

	assert.ErrorIs(t, err, domain.ErrReadingListNotFound)
}

func TestListReadingLists_LoadsTagLinks(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &ReaderDBRepository{pool: mock}
	userID := uuid.New()
	listID := uuid.New()
	tagID := uuid.New()
	now := time.Now()

	listRows := pgxmock.NewRows([]string{
		"id", "user_id", "name", "slug", "is_default", "display_order",
		"read_status", "favorite_status", "for_later_status",
		"articles_max_age_value", "articles_max_age_unit",
		"articles_reading_time", "articles_reading_time_operator",
		"include_tag_operator", "exclude_tag_operator", "order_direction", "created_at",
	}).AddRow(
		listID, userID, "Go stuff", "go-stuff", false, 50,
		domain.ReadStatusAll, domain.FavoriteStatusAll, domain.ForLaterStatusAll,
		0, domain.ArticlesMaxAgeUnitUnset,
		0, domain.ReadingTimeOperatorUnset,
		domain.TagOperatorAll, domain.TagOperatorAll, domain.OrderDirectionDesc, now,
	)
	mock.ExpectQuery("FROM reading_lists rl WHERE rl.user_id").
		WithArgs(userID).
		WillReturnRows(listRows)

	tagRows := pgxmock.NewRows([]string{"reading_list_id", "tag_id", "slug", "filter_type"}).
		AddRow(listID, tagID, "go", domain.TagFilterInclude)
	mock.ExpectQuery("FROM reading_list_tags rlt").
		WithArgs([]uuid.UUID{listID}).
		WillReturnRows(tagRows)

	lists, err := repo.ListReadingLists(context.Background(), userID)
	require.NoError(t, err)

	require.Len(t, lists, 1)
	require.Len(t, lists[0].Tags, 1)
	assert.Equal(t, tagID, lists[0].Tags[0].TagID)
	assert.Equal(t, domain.TagFilterInclude, lists[0].Tags[0].FilterType)
	require.NoError(t, mock.ExpectationsWereMet())
}
