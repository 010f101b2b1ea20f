package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"folio/domain"
	"folio/utils/logger"
)

const (
	UserHeader         = "X-Folio-User"
	ReadingSpeedHeader = "X-Folio-Reading-Speed"
)

// UserContextMiddleware resolves the authenticated owner from the
// headers set by the auth proxy in front of this service. Requests
// without a valid user id are rejected before reaching any handler.
func UserContextMiddleware(defaultWordsPerMinute int) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawUserID := c.Request().Header.Get(UserHeader)
			userID, err := uuid.Parse(rawUserID)
			if err != nil || userID == uuid.Nil {
				logger.SafeWarn("request without valid user header", "path", c.Path())
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing or invalid user header"})
			}

			wordsPerMinute := defaultWordsPerMinute
			if raw := c.Request().Header.Get(ReadingSpeedHeader); raw != "" {
				if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
					wordsPerMinute = parsed
				}
			}

			user := &domain.UserContext{UserID: userID, WordsPerMinute: wordsPerMinute}

			ctx := domain.SetUserContext(c.Request().Context(), user)
			ctx = context.WithValue(ctx, logger.UserIDKey, userID.String())
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
