package rest

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"folio/di"
	"folio/domain"
)

func registerArticleRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.POST("/articles", handleReconcileArticles(container))
	v1.POST("/articles/invalid", handleCreateInvalidArticle(container))
	v1.POST("/articles/actions", handleArticleActions(container))
}

func handleReconcileArticles(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload ReconcileArticlesPayload
		if err := c.Bind(&payload); err != nil {
			return badRequest(c, "invalid request body")
		}

		sourceType := domain.ArticleSourceType(payload.SourceType)
		if payload.SourceType == "" {
			sourceType = domain.ArticleSourceManual
		}

		articles, err := container.ReconcileArticlesUsecase.Execute(
			c.Request().Context(), payload.Articles, payload.Tags, sourceType, payload.ForceUpdate)
		if err != nil {
			return handleError(c, err, "reconcile_articles")
		}

		return c.JSON(http.StatusOK, articles)
	}
}

func handleCreateInvalidArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload InvalidArticlePayload
		if err := c.Bind(&payload); err != nil {
			return badRequest(c, "invalid request body")
		}

		article, created, err := container.ReconcileArticlesUsecase.CreateInvalidArticle(
			c.Request().Context(), payload.Link, payload.Tags, payload.ErrorMessage)
		if err != nil {
			return handleError(c, err, "create_invalid_article")
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}

		return c.JSON(status, InvalidArticleResponse{Article: article, Created: created})
	}
}

func handleArticleActions(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload ArticleActionPayload
		if err := c.Bind(&payload); err != nil {
			return badRequest(c, "invalid request body")
		}

		articleIDs, err := parseArticleIDs(payload.ArticleIDs)
		if err != nil {
			return badRequest(c, err.Error())
		}

		affected, err := container.UpdateArticlesUsecase.Execute(
			c.Request().Context(), articleIDs, domain.UpdateArticleAction(payload.Action))
		if err != nil {
			return handleError(c, err, "article_actions")
		}

		return c.JSON(http.StatusOK, ArticleActionResponse{Affected: affected})
	}
}

func parseArticleIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, errInvalidArticleID
		}
		ids = append(ids, id)
	}
	return ids, nil
}
