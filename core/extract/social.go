// ABOUTME: oEmbed lookup for short-form social posts (X/Twitter)
// ABOUTME: The post text replaces both metadata extraction and AI summarization

package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"brief-api/core/domain"
	coreerrors "brief-api/core/errors"
	"brief-api/core/interfaces"
)

// DefaultOEmbedEndpoint is the public X/Twitter oEmbed endpoint.
const DefaultOEmbedEndpoint = "https://publish.twitter.com/oembed"

var socialHosts = map[string]bool{
	"x.com":           true,
	"twitter.com":     true,
	"www.x.com":       true,
	"www.twitter.com": true,
}

// The oEmbed html field is a blockquote snippet:
// <blockquote...><p>POST TEXT</p>— Author (@handle) <a ...>Date</a></blockquote>
var (
	blockquoteParagraph = regexp.MustCompile(`(?i)<p[^>]*>([\s\S]*?)</p>`)
	lineBreakTag        = regexp.MustCompile(`(?i)<br\s*/?>`)
	anchorTag           = regexp.MustCompile(`(?i)<a[^>]*>(.*?)</a>`)
	anyTag              = regexp.MustCompile(`<[^>]+>`)
)

// IsSocialHost reports whether the host is a known microblogging domain
// whose posts are captured via oEmbed instead of page scraping.
func IsSocialHost(host string) bool {
	return socialHosts[strings.ToLower(host)]
}

// SocialService fetches short-form posts through a platform oEmbed endpoint.
type SocialService struct {
	deps     interfaces.Dependencies
	endpoint string
}

// NewSocialService creates a social post service. An empty endpoint selects
// the public X endpoint.
func NewSocialService(deps interfaces.Dependencies, endpoint string) *SocialService {
	if endpoint == "" {
		endpoint = DefaultOEmbedEndpoint
	}
	return &SocialService{deps: deps, endpoint: endpoint}
}

type oembedResponse struct {
	AuthorName string `json:"author_name"`
	AuthorURL  string `json:"author_url"`
	HTML       string `json:"html"`
}

// FetchPost retrieves the post behind postURL via oEmbed. Failure is not
// terminal for the capture; the caller falls back to a URL-derived title.
func (s *SocialService) FetchPost(ctx context.Context, postURL string) (*domain.SocialPost, error) {
	lookup := fmt.Sprintf("%s?url=%s&omit_script=true", s.endpoint, url.QueryEscape(postURL))

	resp, err := s.deps.HTTPClient.Get(ctx, lookup)
	if err != nil {
		return nil, coreerrors.WrapError(err, "oembed request failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &coreerrors.ExternalAPIError{
			API:        "oembed",
			StatusCode: resp.StatusCode(),
			Message:    "oembed lookup rejected",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "read oembed response")
	}

	var decoded oembedResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, coreerrors.WrapError(err, "decode oembed response")
	}

	post := &domain.SocialPost{
		AuthorName: decoded.AuthorName,
		Text:       extractPostText(decoded.HTML),
	}
	if decoded.AuthorURL != "" {
		segments := strings.Split(strings.TrimRight(decoded.AuthorURL, "/"), "/")
		post.AuthorHandle = segments[len(segments)-1]
	}
	return post, nil
}

// extractPostText pulls the post body out of the embedded blockquote,
// keeping line breaks and anchor text.
func extractPostText(embedHTML string) string {
	match := blockquoteParagraph.FindStringSubmatch(embedHTML)
	if match == nil {
		return ""
	}

	text := match[1]
	text = lineBreakTag.ReplaceAllString(text, "\n")
	text = anchorTag.ReplaceAllString(text, "$1")
	text = anyTag.ReplaceAllString(text, "")
	return strings.TrimSpace(DecodeEntities(text))
}

// SocialTitle builds the capture title for a social post. When the oEmbed
// lookup failed, the username from the /username/status/id path shape is
// used instead.
func SocialTitle(post *domain.SocialPost, postURL string) string {
	if post != nil && post.AuthorName != "" {
		return fmt.Sprintf("Post by %s on X", post.AuthorName)
	}

	if parsed, err := url.Parse(postURL); err == nil {
		parts := strings.FieldsFunc(parsed.Path, func(r rune) bool { return r == '/' })
		if len(parts) >= 1 && parts[0] != "" {
			return fmt.Sprintf("Post by @%s on X", parts[0])
		}
	}
	return "Post on X"
}
