package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"folio/di"
)

func registerFeedRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.POST("/feeds/ingest", handleIngestFeed(container))
}

func handleIngestFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload IngestFeedPayload
		if err := c.Bind(&payload); err != nil {
			return badRequest(c, "invalid request body")
		}
		if payload.Payload == "" {
			return badRequest(c, "payload must not be empty")
		}

		articles, err := container.IngestFeedUsecase.Execute(c.Request().Context(), payload.Payload, payload.Tags)
		if err != nil {
			return handleError(c, err, "ingest_feed")
		}

		return c.JSON(http.StatusOK, articles)
	}
}
