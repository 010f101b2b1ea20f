package di

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"folio/config"
	"folio/driver/reader_db"
	"folio/gateway/feed_ingestion_gateway"
	"folio/gateway/list_articles_gateway"
	"folio/gateway/reading_list_counts_gateway"
	"folio/gateway/reading_list_gateway"
	"folio/gateway/reconcile_articles_gateway"
	"folio/gateway/tag_ledger_gateway"
	"folio/gateway/update_articles_gateway"
	"folio/usecase/ingest_feed_usecase"
	"folio/usecase/list_articles_usecase"
	"folio/usecase/reading_list_counts_usecase"
	"folio/usecase/reading_list_usecase"
	"folio/usecase/reconcile_articles_usecase"
	"folio/usecase/tag_articles_usecase"
	"folio/usecase/update_articles_usecase"
)

type ApplicationComponents struct {
	ReconcileArticlesUsecase *reconcile_articles_usecase.ReconcileArticlesUsecase
	IngestFeedUsecase        *ingest_feed_usecase.IngestFeedUsecase
	ListArticlesUsecase      *list_articles_usecase.ListArticlesUsecase
	ReadingListUsecase       *reading_list_usecase.ReadingListUsecase
	ReadingListCountsUsecase *reading_list_counts_usecase.ReadingListCountsUsecase
	TagArticlesUsecase       *tag_articles_usecase.TagArticlesUsecase
	UpdateArticlesUsecase    *update_articles_usecase.UpdateArticlesUsecase
	ReaderDBRepository       *reader_db.ReaderDBRepository
}

func NewApplicationComponents(pool *pgxpool.Pool, cfg *config.Config) *ApplicationComponents {
	reconcileGateway := reconcile_articles_gateway.NewReconcileArticlesGateway(pool)
	feedIngestionGateway := feed_ingestion_gateway.NewFeedIngestionGateway()
	listArticlesGateway := list_articles_gateway.NewListArticlesGateway(pool)
	readingListGateway := reading_list_gateway.NewReadingListGateway(pool)
	countsGateway := reading_list_counts_gateway.NewReadingListCountsGateway(pool)
	tagLedgerGateway := tag_ledger_gateway.NewTagLedgerGateway(pool)
	updateArticlesGateway := update_articles_gateway.NewUpdateArticlesGateway(pool)

	return &ApplicationComponents{
		ReconcileArticlesUsecase: reconcile_articles_usecase.NewReconcileArticlesUsecase(reconcileGateway, cfg.Reading.MaxBatchSize),
		IngestFeedUsecase:        ingest_feed_usecase.NewIngestFeedUsecase(feedIngestionGateway, reconcileGateway),
		ListArticlesUsecase:      list_articles_usecase.NewListArticlesUsecase(readingListGateway, listArticlesGateway),
		ReadingListUsecase:       reading_list_usecase.NewReadingListUsecase(readingListGateway),
		ReadingListCountsUsecase: reading_list_counts_usecase.NewReadingListCountsUsecase(readingListGateway, countsGateway),
		TagArticlesUsecase:       tag_articles_usecase.NewTagArticlesUsecase(tagLedgerGateway),
		UpdateArticlesUsecase:    update_articles_usecase.NewUpdateArticlesUsecase(updateArticlesGateway),
		ReaderDBRepository:       reader_db.NewReaderDBRepository(pool),
	}
}
