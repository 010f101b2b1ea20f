package rest

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"folio/di"
	"folio/domain"
)

var (
	errInvalidTagID      = errors.New("tag_id must be a valid uuid")
	errInvalidFilterType = errors.New("filter_type must be INCLUDE or EXCLUDE")
)

func registerReadingListRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/reading-lists", handleListReadingLists(container))
	v1.POST("/reading-lists", handleCreateReadingList(container))
	v1.POST("/reading-lists/bootstrap", handleBootstrapReadingLists(container))
	v1.GET("/reading-lists/counts", handleReadingListCounts(container))
	v1.GET("/reading-lists/:slug/articles", handleReadingListArticles(container))
	v1.DELETE("/reading-lists/:slug", handleDeleteReadingList(container))
}

func handleListReadingLists(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		lists, err := container.ReadingListUsecase.List(c.Request().Context())
		if err != nil {
			return handleError(c, err, "list_reading_lists")
		}

		return c.JSON(http.StatusOK, lists)
	}
}

func handleCreateReadingList(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload CreateReadingListPayload
		if err := c.Bind(&payload); err != nil {
			return badRequest(c, "invalid request body")
		}

		readingList, err := readingListFromPayload(payload)
		if err != nil {
			return badRequest(c, err.Error())
		}

		created, err := container.ReadingListUsecase.Create(c.Request().Context(), readingList)
		if err != nil {
			return handleError(c, err, "create_reading_list")
		}

		return c.JSON(http.StatusCreated, created)
	}
}

func handleBootstrapReadingLists(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		lists, err := container.ReadingListUsecase.Bootstrap(c.Request().Context())
		if err != nil {
			return handleError(c, err, "bootstrap_reading_lists")
		}

		return c.JSON(http.StatusCreated, lists)
	}
}

func handleReadingListCounts(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		counts, err := container.ReadingListCountsUsecase.Execute(c.Request().Context())
		if err != nil {
			return handleError(c, err, "reading_list_counts")
		}

		return c.JSON(http.StatusOK, ReadingListCountsResponse{Counts: counts})
	}
}

func handleReadingListArticles(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		slug := c.Param("slug")
		if slug == "default" {
			slug = ""
		}

		readingList, articles, err := container.ListArticlesUsecase.Execute(c.Request().Context(), slug)
		if err != nil {
			return handleError(c, err, "reading_list_articles")
		}

		return c.JSON(http.StatusOK, ReadingListArticlesResponse{
			ReadingList: readingList,
			Articles:    articles,
		})
	}
}

func handleDeleteReadingList(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := container.ReadingListUsecase.Delete(c.Request().Context(), c.Param("slug")); err != nil {
			return handleError(c, err, "delete_reading_list")
		}

		return c.NoContent(http.StatusNoContent)
	}
}

func readingListFromPayload(payload CreateReadingListPayload) (*domain.ReadingList, error) {
	rl := &domain.ReadingList{
		Name:                        payload.Name,
		Order:                       payload.Order,
		ReadStatus:                  domain.ReadStatus(payload.ReadStatus),
		FavoriteStatus:              domain.FavoriteStatus(payload.FavoriteStatus),
		ForLaterStatus:              domain.ForLaterStatus(payload.ForLaterStatus),
		ArticlesMaxAgeValue:         payload.ArticlesMaxAgeValue,
		ArticlesMaxAgeUnit:          domain.ArticlesMaxAgeUnit(payload.ArticlesMaxAgeUnit),
		ArticlesReadingTime:         payload.ArticlesReadingTime,
		ArticlesReadingTimeOperator: domain.ArticlesReadingTimeOperator(payload.ArticlesReadingTimeOperator),
		IncludeTagOperator:          domain.TagOperator(payload.IncludeTagOperator),
		ExcludeTagOperator:          domain.TagOperator(payload.ExcludeTagOperator),
		OrderDirection:              domain.OrderDirection(payload.OrderDirection),
	}

	if err := validatePayloadFilters(rl); err != nil {
		return nil, err
	}

	for _, tag := range payload.Tags {
		tagID, err := uuid.Parse(tag.TagID)
		if err != nil {
			return nil, errInvalidTagID
		}
		filterType := domain.TagFilterType(tag.FilterType)
		if filterType != domain.TagFilterInclude && filterType != domain.TagFilterExclude {
			return nil, errInvalidFilterType
		}
		rl.Tags = append(rl.Tags, domain.ReadingListTag{TagID: tagID, FilterType: filterType})
	}

	return rl, nil
}

// validatePayloadFilters rejects unknown enum values up front. Empty
// strings pass, the usecase fills those with the stored defaults.
func validatePayloadFilters(rl *domain.ReadingList) error {
	if rl.ReadStatus != "" && !rl.ReadStatus.Valid() {
		return errors.New("read_status must be ALL, ONLY_UNREAD or ONLY_READ")
	}
	if rl.FavoriteStatus != "" && !rl.FavoriteStatus.Valid() {
		return errors.New("favorite_status must be ALL, ONLY_FAVORITE or ONLY_NON_FAVORITE")
	}
	if rl.ForLaterStatus != "" && !rl.ForLaterStatus.Valid() {
		return errors.New("for_later_status must be ALL, ONLY_FOR_LATER or ONLY_NOT_FOR_LATER")
	}
	if rl.ArticlesMaxAgeUnit != "" && !rl.ArticlesMaxAgeUnit.Valid() {
		return errors.New("articles_max_age_unit must be UNSET, HOURS, DAYS, WEEKS or MONTHS")
	}
	if rl.ArticlesReadingTimeOperator != "" && !rl.ArticlesReadingTimeOperator.Valid() {
		return errors.New("articles_reading_time_operator must be UNSET, MORE_THAN or LESS_THAN")
	}
	if rl.IncludeTagOperator != "" && !rl.IncludeTagOperator.Valid() {
		return errors.New("include_tag_operator must be ALL or ANY")
	}
	if rl.ExcludeTagOperator != "" && !rl.ExcludeTagOperator.Valid() {
		return errors.New("exclude_tag_operator must be ALL or ANY")
	}
	if rl.OrderDirection != "" && !rl.OrderDirection.Valid() {
		return errors.New("order_direction must be ASC or DESC")
	}
	return nil
}
