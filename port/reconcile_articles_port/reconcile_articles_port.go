package reconcile_articles_port

import (
	"context"

	"folio/domain"
)

// ReconcileArticlesPort merges incoming article batches into the
// stored collection. Each call is atomic: creates, updates and tag
// associations commit together or not at all.
type ReconcileArticlesPort interface {
	ReconcileArticles(
		ctx context.Context,
		user *domain.UserContext,
		records []domain.ArticleRecord,
		tagTitles []string,
		sourceType domain.ArticleSourceType,
		forceUpdate bool,
	) ([]*domain.Article, error)

	// CreateInvalidArticle records a placeholder article plus a fetch
	// error entry when a manual add could not be fetched. Get-or-create
	// by (owner, link); the error entry is always appended.
	CreateInvalidArticle(
		ctx context.Context,
		user *domain.UserContext,
		link string,
		tagTitles []string,
		errorMessage string,
	) (*domain.Article, bool, error)
}
