package feed_ingestion_gateway

import (
	"context"
	"errors"
	"strings"

	"github.com/mmcdole/gofeed"

	"folio/domain"
	"folio/utils/htmltext"
	"folio/utils/logger"
)

type FeedIngestionGateway struct {
	parser *gofeed.Parser
}

func NewFeedIngestionGateway() *FeedIngestionGateway {
	return &FeedIngestionGateway{parser: gofeed.NewParser()}
}

// ParseFeed parses a raw RSS/Atom/JSON feed document and normalizes
// its entries into article records ready for reconciliation. Entries
// without a link are skipped since (owner, link) is the identity key.
func (g *FeedIngestionGateway) ParseFeed(ctx context.Context, payload string) (string, []domain.ArticleRecord, error) {
	feed, err := g.parser.ParseString(payload)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error parsing feed payload", "error", err)
		return "", nil, errors.New("invalid feed format")
	}

	sourceTitle := htmltext.StrictSanitize(feed.Title)

	records := make([]domain.ArticleRecord, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil || strings.TrimSpace(item.Link) == "" {
			continue
		}
		records = append(records, normalizeItem(item, sourceTitle))
	}

	logger.SafeInfoContext(ctx, "Feed parsed", "source", sourceTitle, "entries", len(records))

	return sourceTitle, records, nil
}

func normalizeItem(item *gofeed.Item, sourceTitle string) domain.ArticleRecord {
	content := item.Content
	if content == "" {
		content = item.Description
	}

	record := domain.ArticleRecord{
		ExternalArticleID: item.GUID,
		Title:             htmltext.StrictSanitize(item.Title),
		Summary:           htmltext.SanitizeHTML(item.Description),
		Content:           htmltext.SanitizeHTML(content),
		Tags:              item.Categories,
		Link:              strings.TrimSpace(item.Link),
		PublishedAt:       item.PublishedParsed,
		UpdatedAt:         item.UpdatedParsed,
		SourceTitle:       sourceTitle,
	}
	if record.ExternalArticleID == "" {
		record.ExternalArticleID = record.Link
	}

	for _, person := range item.Authors {
		if person == nil || person.Name == "" {
			continue
		}
		record.Authors = append(record.Authors, person.Name)
	}
	if item.Image != nil {
		record.PreviewPictureURL = item.Image.URL
		record.PreviewPictureAlt = htmltext.StrictSanitize(item.Image.Title)
	}

	return record
}
