package htmltext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// SanitizeHTML strips unsafe tags and scripts but preserves structural
// HTML using bluemonday.
func SanitizeHTML(raw string) string {
	p := bluemonday.UGCPolicy()
	p.AllowElements("article", "section", "figure", "figcaption")
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("src", "alt", "title").OnElements("img")

	return p.Sanitize(raw)
}

// StrictSanitize removes every tag and returns plain text only. Used
// for values that must never carry markup, like placeholder titles
// derived from a link.
func StrictSanitize(raw string) string {
	return strings.TrimSpace(bluemonday.StrictPolicy().Sanitize(raw))
}

// ExtractText converts article HTML into plain text.
func ExtractText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	// Short-circuit if the payload is already plain text.
	if !strings.Contains(trimmed, "<") {
		return trimmed
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(trimmed))
	if err != nil {
		return fallbackText(trimmed)
	}
	doc.Find("script, style, noscript").Remove()

	return strings.TrimSpace(doc.Text())
}

// fallbackText tokenizes the document directly when goquery cannot
// build a tree.
func fallbackText(raw string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(raw))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			b.Write(z.Text())
			b.WriteByte(' ')
		}
	}
	return strings.TrimSpace(b.String())
}

// WordCount counts words in the text rendering of article HTML.
func WordCount(raw string) int {
	return len(strings.Fields(ExtractText(raw)))
}

// ReadingTime estimates reading time in minutes for article HTML given
// a reading speed in words per minute. Empty content yields 0.
func ReadingTime(content string, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		return 0
	}
	return WordCount(content) / wordsPerMinute
}
