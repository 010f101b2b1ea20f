package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/domain"
)

func TestUserContextMiddleware_SetsUserFromHeaders(t *testing.T) {
	e := echo.New()
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/v1/reading-lists", nil)
	req.Header.Set(UserHeader, userID.String())
	req.Header.Set(ReadingSpeedHeader, "320")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got *domain.UserContext
	handler := UserContextMiddleware(200)(func(c echo.Context) error {
		user, err := domain.GetUserFromContext(c.Request().Context())
		require.NoError(t, err)
		got = user
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	require.NotNil(t, got)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, 320, got.WordsPerMinute)
}

func TestUserContextMiddleware_DefaultsReadingSpeed(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/v1/reading-lists", nil)
	req.Header.Set(UserHeader, uuid.New().String())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got *domain.UserContext
	handler := UserContextMiddleware(250)(func(c echo.Context) error {
		got, _ = domain.GetUserFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	require.NotNil(t, got)
	assert.Equal(t, 250, got.WordsPerMinute)
}

func TestUserContextMiddleware_RejectsMissingHeader(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/v1/reading-lists", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := UserContextMiddleware(200)(func(c echo.Context) error {
		called = true
		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestUserContextMiddleware_RejectsGarbageUUID(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/v1/reading-lists", nil)
	req.Header.Set(UserHeader, "not-a-uuid")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := UserContextMiddleware(200)(func(c echo.Context) error { return nil })

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
