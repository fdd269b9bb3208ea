// ABOUTME: Metadata extraction from fetched article HTML via ordered pattern matching
// ABOUTME: Title, author, and publish date each use a first-match-wins chain

package extract

import (
	"html"
	"strings"
	"time"

	"brief-api/core/domain"

	"github.com/PuerkitoBio/goquery"
)

// badTitles mark pages that returned a JS shell instead of content; a title
// containing one of these is treated as absent.
var badTitles = []string{
	"javascript is not available",
	"just a moment",
	"loading...",
	"redirecting",
}

// titleSuffixOutlets are publisher names appended to page titles. Combined
// with titleSuffixSeparators they form the fixed suffix list; matching is
// exact, applied once, first match wins.
var titleSuffixOutlets = []string{
	"The New York Times",
	"CNN",
	"BBC News",
	"Reuters",
	"The Washington Post",
	"WSJ",
	"AP News",
}

var titleSuffixSeparators = []string{" - ", " – ", " — ", " | "}

// dateLayouts are tried in order when reformatting an extracted date.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"02 Jan 2006",
}

// DecodeEntities decodes HTML entities in text. It runs two passes so a
// double-encoded entity (e.g. "&amp;#39;") resolves fully to the plain
// character; share-sheet clients and some publishers double-encode.
func DecodeEntities(text string) string {
	return html.UnescapeString(html.UnescapeString(text))
}

// StripTitleSuffix removes a known publisher suffix from a title. The match
// is exact against the fixed list; no partial or fuzzy matching, and only
// the first matching suffix is removed.
func StripTitleSuffix(title string) string {
	for _, sep := range titleSuffixSeparators {
		for _, outlet := range titleSuffixOutlets {
			suffix := sep + outlet
			if strings.HasSuffix(title, suffix) {
				return strings.TrimSpace(strings.TrimSuffix(title, suffix))
			}
		}
	}
	return title
}

// CleanTitle decodes entities and strips publisher suffixes. It is applied
// to both client-supplied and extracted titles.
func CleanTitle(title string) string {
	return StripTitleSuffix(strings.TrimSpace(DecodeEntities(title)))
}

// isBadTitle reports whether an extracted title is a JS-shell placeholder.
func isBadTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, bad := range badTitles {
		if strings.Contains(lower, bad) {
			return true
		}
	}
	return false
}

// Metadata extracts title, author, and publish date from raw HTML.
// fallbackHost is used as the title of last resort, with any leading
// "www." stripped. Author and date stay empty when nothing matches.
func Metadata(rawHTML, fallbackHost string) domain.ArticleMetadata {
	fallbackTitle := strings.TrimPrefix(fallbackHost, "www.")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return domain.ArticleMetadata{Title: fallbackTitle}
	}

	meta := domain.ArticleMetadata{
		Title:         extractTitle(doc, fallbackTitle),
		Author:        extractAuthor(doc),
		PublishedDate: extractDate(doc),
	}
	return meta
}

// extractTitle walks the ordered title sources: Open Graph, Twitter card,
// then the <title> tag.
func extractTitle(doc *goquery.Document, fallback string) string {
	candidates := []func() string{
		func() string { return doc.Find(`meta[property="og:title"]`).First().AttrOr("content", "") },
		func() string { return doc.Find(`meta[name="twitter:title"]`).First().AttrOr("content", "") },
		func() string { return doc.Find("title").First().Text() },
	}

	for _, candidate := range candidates {
		title := strings.TrimSpace(candidate())
		if title == "" || isBadTitle(title) {
			continue
		}
		return CleanTitle(title)
	}
	return fallback
}

func extractAuthor(doc *goquery.Document) string {
	patterns := []func() string{
		func() string { return doc.Find(`meta[name="author"]`).First().AttrOr("content", "") },
		func() string { return doc.Find(`meta[property="article:author"]`).First().AttrOr("content", "") },
		func() string { return doc.Find(`span[class*="author"]`).First().Text() },
		func() string { return doc.Find(`div[class*="author"]`).First().Text() },
		func() string { return doc.Find(`p[class*="author"]`).First().Text() },
	}

	for _, pattern := range patterns {
		if author := strings.TrimSpace(pattern()); author != "" {
			return DecodeEntities(author)
		}
	}
	return ""
}

func extractDate(doc *goquery.Document) string {
	patterns := []func() string{
		func() string {
			return doc.Find(`meta[property="article:published_time"]`).First().AttrOr("content", "")
		},
		func() string { return doc.Find(`meta[name="publication-date"]`).First().AttrOr("content", "") },
		func() string { return doc.Find("time[datetime]").First().AttrOr("datetime", "") },
		func() string { return doc.Find(`span[class*="date"]`).First().Text() },
		func() string { return doc.Find(`div[class*="date"]`).First().Text() },
	}

	for _, pattern := range patterns {
		if raw := strings.TrimSpace(pattern()); raw != "" {
			return formatDate(raw)
		}
	}
	return ""
}

// formatDate renders a parseable timestamp as "January 2, 2006"; anything
// unparseable passes through as-is.
func formatDate(raw string) string {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.Format("January 2, 2006")
		}
	}
	return raw
}
