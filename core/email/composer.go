// ABOUTME: Pure HTML email composition for captured articles and social posts
// ABOUTME: Fixed block structure; every dynamic string is escaped before templating

package email

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"brief-api/core/domain"
)

// ComposeInput carries everything the composer needs. Empty optional fields
// drop their block from the output.
type ComposeInput struct {
	Title         string
	URL           string
	Author        string
	PublishedDate string
	Note          string
	Summary       domain.SummaryResult
	SocialPost    *domain.SocialPost
	IncludeSum    bool
}

var (
	boldSpan   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicSpan = regexp.MustCompile(`\*(.+?)\*`)
	codeSpan   = regexp.MustCompile("`(.+?)`")
	crlf       = regexp.MustCompile(`[\r\n]+`)
)

// BuildSubject renders "<site>: <title>" with header-breaking newlines
// collapsed to single spaces.
func BuildSubject(siteName, title string) string {
	subject := siteName + ": " + title
	return strings.TrimSpace(crlf.ReplaceAllString(subject, " "))
}

// Compose renders the outbound email body. It is deterministic and makes no
// external calls; identical inputs yield identical HTML.
func Compose(input ComposeInput) string {
	var b strings.Builder

	b.WriteString(`<div style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Arial, sans-serif; max-width: 600px; margin: 0 auto; line-height: 1.6;">`)

	fmt.Fprintf(&b, `<h1 style="font-size: 24px; font-weight: bold; margin: 20px 0; color: #000;">%s</h1>`, html.EscapeString(input.Title))

	b.WriteString(`<div style="margin: 20px 0;">`)
	if input.PublishedDate != "" {
		fmt.Fprintf(&b, `<div style="color: #666; font-style: italic; margin-bottom: 8px;">%s</div>`, html.EscapeString(input.PublishedDate))
	}
	if input.Author != "" {
		fmt.Fprintf(&b, `<div style="color: #666; font-style: italic; margin-bottom: 8px;">%s</div>`, html.EscapeString(input.Author))
	}
	escapedURL := html.EscapeString(input.URL)
	fmt.Fprintf(&b, `<a href="%s" style="color: #0066cc; text-decoration: none;">%s</a>`, escapedURL, escapedURL)
	b.WriteString(`</div>`)

	if input.Note != "" {
		fmt.Fprintf(&b, `<div style="border-left: 4px solid #f59e0b; padding: 12px 16px; margin: 20px 0; background: #fffbf0;"><strong style="color: #000;">Note:</strong> %s</div>`, html.EscapeString(input.Note))
	}

	if input.SocialPost != nil {
		writeSocialBlock(&b, input.SocialPost)
	} else if input.IncludeSum {
		writeSummaryBlock(&b, input.Summary)
	}

	b.WriteString(`<div style="color: #999; font-size: 14px; margin-top: 40px; padding-top: 20px; border-top: 1px solid #e5e5e5;">Sent via Brief</div>`)
	b.WriteString(`</div>`)

	return b.String()
}

func writeSocialBlock(b *strings.Builder, post *domain.SocialPost) {
	if post.Text == "" {
		return
	}
	b.WriteString(`<blockquote style="border-left: 4px solid #1d9bf0; padding: 12px 16px; margin: 20px 0; background: #f7f9f9; color: #000;">`)
	fmt.Fprintf(b, `<p style="margin: 0 0 8px 0; white-space: pre-wrap;">%s</p>`, html.EscapeString(post.Text))
	if attribution := postAttribution(post); attribution != "" {
		fmt.Fprintf(b, `<div style="color: #666; font-size: 14px;">%s</div>`, html.EscapeString(attribution))
	}
	b.WriteString(`</blockquote>`)
}

func postAttribution(post *domain.SocialPost) string {
	switch {
	case post.AuthorName != "" && post.AuthorHandle != "":
		return post.AuthorName + " (@" + post.AuthorHandle + ")"
	case post.AuthorName != "":
		return post.AuthorName
	case post.AuthorHandle != "":
		return "@" + post.AuthorHandle
	}
	return ""
}

func writeSummaryBlock(b *strings.Builder, result domain.SummaryResult) {
	switch result.Basis {
	case domain.BasisFullText, domain.BasisTitleOnly:
		if len(result.Bullets) == 0 {
			return
		}
		header := "Summary (AI-generated):"
		if result.Basis == domain.BasisTitleOnly {
			header = "Summary (AI-generated from title - full article not accessible):"
		}
		b.WriteString(`<div style="margin: 20px 0;">`)
		fmt.Fprintf(b, `<h2 style="font-size: 18px; font-weight: bold; color: #000; margin-bottom: 12px;">%s</h2>`, header)
		b.WriteString(`<ul style="margin: 0; padding-left: 20px;">`)
		for _, bullet := range result.Bullets {
			fmt.Fprintf(b, `<li style="margin-bottom: 6px;">%s</li>`, renderBullet(bullet))
		}
		b.WriteString(`</ul></div>`)
	case domain.BasisUnavailable:
		b.WriteString(`<div style="margin: 20px 0; color: #666; font-style: italic;">AI summary unavailable for this article.</div>`)
	}
}

// renderBullet escapes the bullet text, then applies the small markdown
// subset the model sometimes emits. Escape first so markup injected in the
// source text stays inert.
func renderBullet(text string) string {
	escaped := html.EscapeString(text)
	escaped = boldSpan.ReplaceAllString(escaped, "<strong>$1</strong>")
	escaped = italicSpan.ReplaceAllString(escaped, "<em>$1</em>")
	escaped = codeSpan.ReplaceAllString(escaped, "<code>$1</code>")
	return escaped
}
