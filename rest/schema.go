package rest

import (
	"folio/domain"
)

type ReconcileArticlesPayload struct {
	Articles    []domain.ArticleRecord `json:"articles"`
	Tags        []string               `json:"tags"`
	SourceType  string                 `json:"source_type"`
	ForceUpdate bool                   `json:"force_update"`
}

type InvalidArticlePayload struct {
	Link         string   `json:"link"`
	Tags         []string `json:"tags"`
	ErrorMessage string   `json:"error_message"`
}

type InvalidArticleResponse struct {
	Article *domain.Article `json:"article"`
	Created bool            `json:"created"`
}

type IngestFeedPayload struct {
	Payload string   `json:"payload"`
	Tags    []string `json:"tags"`
}

type ArticleActionPayload struct {
	ArticleIDs []string `json:"article_ids"`
	Action     string   `json:"action"`
}

type ArticleActionResponse struct {
	Affected int64 `json:"affected"`
}

type TagArticlesPayload struct {
	ArticleIDs []string `json:"article_ids"`
	Tags       []string `json:"tags"`
}

type ReplaceTagsPayload struct {
	Tags []string `json:"tags"`
}

type CreateReadingListPayload struct {
	Name                        string                  `json:"name"`
	Order                       int                     `json:"order"`
	ReadStatus                  string                  `json:"read_status"`
	FavoriteStatus              string                  `json:"favorite_status"`
	ForLaterStatus              string                  `json:"for_later_status"`
	ArticlesMaxAgeValue         int                     `json:"articles_max_age_value"`
	ArticlesMaxAgeUnit          string                  `json:"articles_max_age_unit"`
	ArticlesReadingTime         int                     `json:"articles_reading_time"`
	ArticlesReadingTimeOperator string                  `json:"articles_reading_time_operator"`
	IncludeTagOperator          string                  `json:"include_tag_operator"`
	ExcludeTagOperator          string                  `json:"exclude_tag_operator"`
	OrderDirection              string                  `json:"order_direction"`
	Tags                        []ReadingListTagPayload `json:"tags"`
}

type ReadingListTagPayload struct {
	TagID      string `json:"tag_id"`
	FilterType string `json:"filter_type"`
}

type ReadingListArticlesResponse struct {
	ReadingList *domain.ReadingList `json:"reading_list"`
	Articles    []*domain.Article   `json:"articles"`
}

type ReadingListCountsResponse struct {
	Counts map[string]int `json:"counts"`
}
