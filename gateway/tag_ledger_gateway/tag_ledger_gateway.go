package tag_ledger_gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"folio/domain"
	"folio/driver/reader_db"
	"folio/utils/logger"
	"folio/utils/slugify"
)

type TagLedgerGateway struct {
	reader_db *reader_db.ReaderDBRepository
}

func NewTagLedgerGateway(pool reader_db.DBPool) *TagLedgerGateway {
	return &TagLedgerGateway{reader_db: reader_db.NewReaderDBRepository(pool)}
}

// AssociateTags attaches the named tags to every article, creating
// missing tags on the way. With readdDeleted false, associations the
// user soft-deleted earlier stay deleted.
func (g *TagLedgerGateway) AssociateTags(ctx context.Context, userID uuid.UUID, articleIDs []uuid.UUID, tagTitles []string, reason domain.TaggingReason, readdDeleted bool) error {
	if g.reader_db == nil {
		return errors.New("database connection not available")
	}
	if len(articleIDs) == 0 || len(tagTitles) == 0 {
		return nil
	}

	tx, err := g.reader_db.Pool().Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin associate transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tags, err := g.reader_db.GetOrCreateTags(ctx, tx, userID, tagTitles)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error resolving tags", "error", err)
		return err
	}
	if err := g.reader_db.AssociateTags(ctx, tx, articleIDs, tags, reason, readdDeleted); err != nil {
		logger.SafeErrorContext(ctx, "Error associating tags", "error", err)
		return err
	}

	return tx.Commit(ctx)
}

// DissociateTags soft-deletes the matching associations so they do not
// come back on the next feed refresh.
func (g *TagLedgerGateway) DissociateTags(ctx context.Context, userID uuid.UUID, articleIDs []uuid.UUID, tagTitles []string) error {
	if g.reader_db == nil {
		return errors.New("database connection not available")
	}
	if len(articleIDs) == 0 || len(tagTitles) == 0 {
		return nil
	}

	slugs := slugsOf(tagTitles)
	if len(slugs) == 0 {
		return nil
	}

	return g.reader_db.DissociateTags(ctx, g.reader_db.Pool(), userID, articleIDs, slugs)
}

// DissociateTagsNotInList soft-deletes every association of the
// article whose tag is not in keepTagTitles. An empty keep list clears
// all of the article's tags.
func (g *TagLedgerGateway) DissociateTagsNotInList(ctx context.Context, userID uuid.UUID, articleID uuid.UUID, keepTagTitles []string) error {
	if g.reader_db == nil {
		return errors.New("database connection not available")
	}

	return g.reader_db.DissociateTagsNotInList(ctx, g.reader_db.Pool(), userID, articleID, slugsOf(keepTagTitles))
}

func (g *TagLedgerGateway) ActiveTagsFor(ctx context.Context, articleID uuid.UUID) ([]*domain.Tag, error) {
	if g.reader_db == nil {
		return nil, errors.New("database connection not available")
	}

	return g.reader_db.FetchActiveTagsForArticle(ctx, articleID)
}

func slugsOf(titles []string) []string {
	slugs := make([]string, 0, len(titles))
	seen := make(map[string]struct{}, len(titles))
	for _, title := range titles {
		slug := slugify.Slugify(title)
		if slug == "" {
			continue
		}
		if _, ok := seen[slug]; ok {
			continue
		}
		seen[slug] = struct{}{}
		slugs = append(slugs, slug)
	}
	return slugs
}
