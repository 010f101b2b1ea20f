package rest

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"folio/di"
)

var errInvalidArticleID = errors.New("article id must be a valid uuid")

func registerTagRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/articles/:id/tags", handleGetArticleTags(container))
	v1.PUT("/articles/:id/tags", handleReplaceArticleTags(container))
	v1.POST("/articles/tags", handleAddTags(container))
	v1.DELETE("/articles/tags", handleRemoveTags(container))
}

func handleGetArticleTags(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		articleID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return badRequest(c, errInvalidArticleID.Error())
		}

		tags, err := container.TagArticlesUsecase.ActiveTags(c.Request().Context(), articleID)
		if err != nil {
			return handleError(c, err, "get_article_tags")
		}

		return c.JSON(http.StatusOK, tags)
	}
}

func handleReplaceArticleTags(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		articleID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return badRequest(c, errInvalidArticleID.Error())
		}

		var payload ReplaceTagsPayload
		if err := c.Bind(&payload); err != nil {
			return badRequest(c, "invalid request body")
		}

		if err := container.TagArticlesUsecase.ReplaceTags(c.Request().Context(), articleID, payload.Tags); err != nil {
			return handleError(c, err, "replace_article_tags")
		}

		return c.NoContent(http.StatusNoContent)
	}
}

func handleAddTags(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload TagArticlesPayload
		if err := c.Bind(&payload); err != nil {
			return badRequest(c, "invalid request body")
		}

		articleIDs, err := parseArticleIDs(payload.ArticleIDs)
		if err != nil {
			return badRequest(c, err.Error())
		}

		if err := container.TagArticlesUsecase.AddTags(c.Request().Context(), articleIDs, payload.Tags); err != nil {
			return handleError(c, err, "add_article_tags")
		}

		return c.NoContent(http.StatusNoContent)
	}
}

func handleRemoveTags(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload TagArticlesPayload
		if err := c.Bind(&payload); err != nil {
			return badRequest(c, "invalid request body")
		}

		articleIDs, err := parseArticleIDs(payload.ArticleIDs)
		if err != nil {
			return badRequest(c, err.Error())
		}

		if err := container.TagArticlesUsecase.RemoveTags(c.Request().Context(), articleIDs, payload.Tags); err != nil {
			return handleError(c, err, "remove_article_tags")
		}

		return c.NoContent(http.StatusNoContent)
	}
}
