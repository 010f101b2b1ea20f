package list_articles_usecase

import (
	"context"
	"time"

	"folio/domain"
	"folio/port/list_articles_port"
	"folio/port/reading_list_port"
	"folio/utils/logger"
)

type ListArticlesUsecase struct {
	readingListGateway reading_list_port.ReadingListPort
	listGateway        list_articles_port.ListArticlesPort
}

func NewListArticlesUsecase(readingListGateway reading_list_port.ReadingListPort, listGateway list_articles_port.ListArticlesPort) *ListArticlesUsecase {
	return &ListArticlesUsecase{
		readingListGateway: readingListGateway,
		listGateway:        listGateway,
	}
}

// Execute resolves the reading list by slug (empty slug means the
// default list) and returns it with its matching articles.
func (u *ListArticlesUsecase) Execute(ctx context.Context, slug string) (*domain.ReadingList, []*domain.Article, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return nil, nil, err
	}

	readingList, err := u.readingListGateway.GetReadingListBySlug(ctx, user.UserID, slug)
	if err != nil {
		return nil, nil, err
	}

	articles, err := u.listGateway.ListByReadingList(ctx, readingList, time.Now().UTC())
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to list articles", "error", err, "slug", readingList.Slug)
		return nil, nil, err
	}

	return readingList, articles, nil
}
