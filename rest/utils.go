package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"folio/domain"
	apperrors "folio/utils/errors"
	"folio/utils/logger"
)

// handleError maps domain and application errors to HTTP responses.
func handleError(c echo.Context, err error, operation string) error {
	ctx := c.Request().Context()

	status := http.StatusInternalServerError
	message := "internal server error"

	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, domain.ErrInvalidUserContext):
		status = http.StatusUnauthorized
		message = "missing or invalid user context"
	case errors.Is(err, domain.ErrArticleNotFound),
		errors.Is(err, domain.ErrReadingListNotFound),
		errors.Is(err, domain.ErrTagNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, domain.ErrCannotDeleteDefaultList):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, domain.ErrArticleAlreadyExists),
		errors.Is(err, domain.ErrReadingListAlreadyExists):
		status = http.StatusConflict
		message = err.Error()
	case errors.As(err, &appErr):
		status = appErr.HTTPStatus()
		message = appErr.Message
	}

	if status >= 500 {
		logger.SafeErrorContext(ctx, "request failed", "operation", operation, "error", err)
	} else {
		logger.SafeWarnContext(ctx, "request rejected", "operation", operation, "status", status, "error", err)
	}

	return c.JSON(status, map[string]string{"error": message})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}
