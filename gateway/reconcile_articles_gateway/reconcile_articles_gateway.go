package reconcile_articles_gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"folio/domain"
	"folio/driver/reader_db"
	"folio/utils/htmltext"
	"folio/utils/logger"
)

type ReconcileArticlesGateway struct {
	reader_db *reader_db.ReaderDBRepository
}

func NewReconcileArticlesGateway(pool reader_db.DBPool) *ReconcileArticlesGateway {
	return &ReconcileArticlesGateway{reader_db: reader_db.NewReaderDBRepository(pool)}
}

// ReconcileArticles merges a batch of incoming records into the user's
// collection inside one transaction and returns every article the batch
// named, created or matched. Records sharing a link are collapsed to
// the first occurrence before any write happens; a matched article whose
// merge was a no-op still comes back, it just skips the row write.
func (g *ReconcileArticlesGateway) ReconcileArticles(
	ctx context.Context,
	user *domain.UserContext,
	records []domain.ArticleRecord,
	tagTitles []string,
	sourceType domain.ArticleSourceType,
	forceUpdate bool,
) ([]*domain.Article, error) {
	if g.reader_db == nil {
		return nil, errors.New("database connection not available")
	}
	if user == nil || !user.IsValid() {
		return nil, domain.ErrInvalidUserContext
	}
	if len(records) == 0 {
		return []*domain.Article{}, nil
	}

	records = dedupeByLink(records)
	now := time.Now().UTC()

	tx, err := g.reader_db.Pool().Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin reconcile transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	links := make([]string, 0, len(records))
	for _, record := range records {
		links = append(links, record.Link)
	}
	existing, err := g.reader_db.FetchArticlesByLinks(ctx, tx, user.UserID, links)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error fetching stored articles for reconcile", "error", err)
		return nil, err
	}

	var toCreate []*domain.Article
	var matched []*domain.Article
	var toUpdate []*domain.Article
	for _, record := range records {
		stored, ok := existing[record.Link]
		if !ok {
			toCreate = append(toCreate, domain.NewArticleFromRecord(user.UserID, record, sourceType, user.ReadingSpeed(), now))
			continue
		}
		matched = append(matched, stored)

		changed := stored.UpdateFromRecord(record, user.ReadingSpeed(), forceUpdate, now)
		if sourceType == domain.ArticleSourceManual {
			// A manual re-add always counts as a change: the article
			// returns to the unread set under manual ownership.
			stored.MarkManuallyAdded(now)
			changed = true
		}
		if changed {
			toUpdate = append(toUpdate, stored)
		}
	}

	if err := g.reader_db.BulkInsertArticles(ctx, tx, toCreate); err != nil {
		logger.SafeErrorContext(ctx, "Error inserting reconciled articles", "error", err)
		return nil, err
	}
	if err := g.reader_db.BulkUpdateArticles(ctx, tx, toUpdate); err != nil {
		logger.SafeErrorContext(ctx, "Error updating reconciled articles", "error", err)
		return nil, err
	}

	// Tags apply to the whole batch, not just the rows that changed:
	// re-submitting an identical article under a new feed still tags it.
	reconciled := make([]*domain.Article, 0, len(toCreate)+len(matched))
	reconciled = append(reconciled, toCreate...)
	reconciled = append(reconciled, matched...)

	if len(tagTitles) > 0 && len(reconciled) > 0 {
		reason := domain.TaggingReasonFromFeed
		if sourceType == domain.ArticleSourceManual {
			reason = domain.TaggingReasonAddedManually
		}
		tags, err := g.reader_db.GetOrCreateTags(ctx, tx, user.UserID, tagTitles)
		if err != nil {
			logger.SafeErrorContext(ctx, "Error resolving tags for reconcile", "error", err)
			return nil, err
		}
		articleIDs := make([]uuid.UUID, 0, len(reconciled))
		for _, article := range reconciled {
			articleIDs = append(articleIDs, article.ID)
		}
		if err := g.reader_db.AssociateTags(ctx, tx, articleIDs, tags, reason, false); err != nil {
			logger.SafeErrorContext(ctx, "Error associating tags for reconcile", "error", err)
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit reconcile transaction: %w", err)
	}

	logger.SafeInfoContext(ctx, "Articles reconciled",
		"created", len(toCreate), "updated", len(toUpdate), "matched", len(matched), "received", len(records))

	return reconciled, nil
}

// CreateInvalidArticle get-or-creates a placeholder article for a link
// that could not be fetched and appends a fetch error entry either way.
// The second return value reports whether the placeholder was created
// by this call.
func (g *ReconcileArticlesGateway) CreateInvalidArticle(
	ctx context.Context,
	user *domain.UserContext,
	link string,
	tagTitles []string,
	errorMessage string,
) (*domain.Article, bool, error) {
	if g.reader_db == nil {
		return nil, false, errors.New("database connection not available")
	}
	if user == nil || !user.IsValid() {
		return nil, false, domain.ErrInvalidUserContext
	}

	now := time.Now().UTC()

	tx, err := g.reader_db.Pool().Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("begin invalid article transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	article, err := g.reader_db.GetArticleByLink(ctx, tx, user.UserID, link)
	created := false
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrArticleNotFound):
		record := domain.ArticleRecord{
			Title: htmltext.StrictSanitize(link),
			Link:  link,
		}
		article = domain.NewArticleFromRecord(user.UserID, record, domain.ArticleSourceManual, user.ReadingSpeed(), now)
		if err := g.reader_db.InsertPlaceholderArticle(ctx, tx, article); err != nil {
			logger.SafeErrorContext(ctx, "Error inserting placeholder article", "error", err, "link", link)
			return nil, false, err
		}
		created = true
	default:
		return nil, false, err
	}

	if err := g.reader_db.InsertArticleFetchError(ctx, tx, article.ID, errorMessage); err != nil {
		logger.SafeErrorContext(ctx, "Error recording article fetch error", "error", err, "link", link)
		return nil, false, err
	}

	if created && len(tagTitles) > 0 {
		tags, err := g.reader_db.GetOrCreateTags(ctx, tx, user.UserID, tagTitles)
		if err != nil {
			return nil, false, err
		}
		if err := g.reader_db.AssociateTags(ctx, tx, []uuid.UUID{article.ID}, tags, domain.TaggingReasonAddedManually, false); err != nil {
			return nil, false, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("commit invalid article transaction: %w", err)
	}

	return article, created, nil
}

// dedupeByLink keeps the first record for each link, matching the
// order feeds list their freshest entries in.
func dedupeByLink(records []domain.ArticleRecord) []domain.ArticleRecord {
	seen := make(map[string]struct{}, len(records))
	deduped := make([]domain.ArticleRecord, 0, len(records))
	for _, record := range records {
		if _, ok := seen[record.Link]; ok {
			continue
		}
		seen[record.Link] = struct{}{}
		deduped = append(deduped, record)
	}
	return deduped
}
