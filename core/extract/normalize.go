// ABOUTME: Text normalization from raw HTML into bounded plain text for summarization
// ABOUTME: Readability extraction first, regex stripping as the fallback

package extract

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	readability "github.com/go-shiori/go-readability"
)

var (
	scriptBlock = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	styleBlock  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// Normalizer converts fetched HTML into plain text bounded for prompt size.
type Normalizer struct {
	minChars int
	maxChars int
}

// NewNormalizer creates a normalizer. minChars is the usability threshold
// below which summarization falls back to title-only mode; maxChars caps
// the prompt input.
func NewNormalizer(minChars, maxChars int) *Normalizer {
	return &Normalizer{minChars: minChars, maxChars: maxChars}
}

// Normalize produces whitespace-collapsed plain text from raw HTML,
// truncated to the configured budget. pageURL helps readability resolve
// relative references; it may be empty.
func (n *Normalizer) Normalize(rawHTML, pageURL string) string {
	text := readableText(rawHTML, pageURL)
	if text == "" {
		text = stripMarkup(rawHTML)
	}

	text = strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
	return truncate(text, n.maxChars)
}

// Usable reports whether normalized text is long enough to summarize from.
// Very short output signals a JS-rendered or blocked page even when the
// fetch nominally succeeded.
func (n *Normalizer) Usable(text string) bool {
	return len(text) >= n.minChars
}

// readableText runs go-readability over the document. An error or empty
// result falls through to the plain markup strip.
func readableText(rawHTML, pageURL string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		parsed = nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), parsed)
	if err != nil {
		return ""
	}
	return article.TextContent
}

// stripMarkup removes script and style blocks with their content, then all
// remaining tags, then decodes entities.
func stripMarkup(rawHTML string) string {
	text := scriptBlock.ReplaceAllString(rawHTML, " ")
	text = styleBlock.ReplaceAllString(text, " ")
	text = anyTag.ReplaceAllString(text, " ")
	return DecodeEntities(text)
}

// truncate cuts text to at most max bytes without splitting a UTF-8 rune.
// Only a rune straddling the cut point is trimmed; invalid bytes earlier in
// the text (Latin-1 sources on the regex fallback path) pass through.
func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	cut := text[:max]
	for i := len(cut) - 1; i >= 0 && i > len(cut)-utf8.UTFMax; i-- {
		if utf8.RuneStart(cut[i]) {
			if !utf8.ValidString(cut[i:]) {
				cut = cut[:i]
			}
			break
		}
	}
	return cut
}
