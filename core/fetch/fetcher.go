// ABOUTME: Layered source fetch with paywall detection and archive/proxy fallbacks
// ABOUTME: Strategies run in fixed priority order; the first success short-circuits

package fetch

import (
	"context"
	"io"
	"net/url"
	"strings"

	"brief-api/core/domain"
	"brief-api/core/interfaces"
)

const (
	// DefaultArchiveEndpoint serves the newest archived snapshot for a URL.
	DefaultArchiveEndpoint = "https://archive.today/newest/"

	// DefaultBypassEndpoint is the paywall-removal relay.
	DefaultBypassEndpoint = "https://12ft.io/"

	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	crawlerUserAgent = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"

	// Bodies at or below this size from the relay or crawler strategies are
	// error/placeholder pages, not articles.
	minBodyBytes = 1000

	// maxBodyBytes caps how much of any response is read.
	maxBodyBytes = 5 << 20
)

// paywallIndicators flag a blocked or truncated page on the direct fetch.
// Matching is case-insensitive substring.
var paywallIndicators = []string{
	"paywall",
	"subscribe",
	"subscription required",
	"premium content",
	"sign in",
	"login required",
	"access denied",
	"error 520",
	"cloudflare",
	"blocked",
	"forbidden",
	"subscriber exclusive",
	"become a subscriber",
	"this article is for subscribers",
}

// crawlerPaywallIndicators is the reduced list applied to the crawler-agent
// retry; bot-served pages legitimately mention e.g. "cloudflare".
var crawlerPaywallIndicators = []string{
	"subscribe",
	"subscription required",
	"sign in",
	"login required",
	"subscriber exclusive",
	"become a subscriber",
}

// strategyFunc attempts one fetch. It returns the page HTML and true on
// success; errors are swallowed into an ordinary miss.
type strategyFunc func(ctx context.Context, target string) (string, bool)

// Fetcher retrieves article HTML with a layered fallback strategy.
// Paywalled and bot-blocked news content is the dominant failure mode for
// this service; each strategy is attempted exactly once so total latency
// stays bounded.
type Fetcher struct {
	deps            interfaces.Dependencies
	archiveEndpoint string
	bypassEndpoint  string
}

// NewFetcher creates a fetcher. Empty endpoints select the public archive
// and relay services.
func NewFetcher(deps interfaces.Dependencies, archiveEndpoint, bypassEndpoint string) *Fetcher {
	if archiveEndpoint == "" {
		archiveEndpoint = DefaultArchiveEndpoint
	}
	if bypassEndpoint == "" {
		bypassEndpoint = DefaultBypassEndpoint
	}
	return &Fetcher{
		deps:            deps,
		archiveEndpoint: archiveEndpoint,
		bypassEndpoint:  bypassEndpoint,
	}
}

// Fetch retrieves the target page. Exhausting every strategy yields a
// failed result, never an error; the pipeline proceeds in degraded mode.
func (f *Fetcher) Fetch(ctx context.Context, target string) domain.FetchResult {
	strategies := []struct {
		name domain.SourceStrategy
		fn   strategyFunc
	}{
		{domain.StrategyDirect, f.fetchDirect},
		{domain.StrategyArchiveMirror, f.fetchArchive},
		{domain.StrategyBypassProxy, f.fetchBypass},
		{domain.StrategyAlternateAgent, f.fetchCrawlerAgent},
	}

	for _, strategy := range strategies {
		html, ok := strategy.fn(ctx, target)
		if ok {
			f.deps.Logger.Info("source fetch succeeded", map[string]interface{}{
				"url":      target,
				"strategy": string(strategy.name),
				"bytes":    len(html),
			})
			return domain.FetchResult{
				RawHTML:   html,
				Succeeded: true,
				Strategy:  strategy.name,
			}
		}
		f.deps.Logger.Debug("fetch strategy missed", map[string]interface{}{
			"url":      target,
			"strategy": string(strategy.name),
		})
	}

	f.deps.Logger.Warn("all fetch strategies exhausted", map[string]interface{}{
		"url": target,
	})
	return domain.FetchResult{Succeeded: false, Strategy: domain.StrategyNone}
}

// fetchDirect requests the page with a browser identity and rejects
// paywalled or blocked responses.
func (f *Fetcher) fetchDirect(ctx context.Context, target string) (string, bool) {
	body, ok := f.get(ctx, target, browserUserAgent, nil)
	if !ok {
		return "", false
	}
	if containsAny(body, paywallIndicators) {
		return "", false
	}
	return body, true
}

// fetchArchive requests the newest archive snapshot, following at most one
// redirect to the captured page.
func (f *Fetcher) fetchArchive(ctx context.Context, target string) (string, bool) {
	archiveURL := f.archiveEndpoint + url.QueryEscape(target)

	resp, err := f.deps.HTTPClient.GetWithOptions(ctx, archiveURL, interfaces.RequestOptions{
		Headers:           map[string]string{"User-Agent": browserUserAgent},
		NoFollowRedirects: true,
	})
	if err != nil {
		return "", false
	}

	if resp.StatusCode() == 301 || resp.StatusCode() == 302 {
		location := resp.Header("Location")
		resp.Body().Close()
		if location == "" {
			return "", false
		}
		return f.get(ctx, location, browserUserAgent, nil)
	}

	body, ok := readSuccess(resp)
	if !ok || body == "" {
		return "", false
	}
	return body, true
}

// fetchBypass requests the page through the paywall-removal relay and
// rejects the relay's own placeholder pages.
func (f *Fetcher) fetchBypass(ctx context.Context, target string) (string, bool) {
	body, ok := f.get(ctx, f.bypassEndpoint+target, browserUserAgent, nil)
	if !ok {
		return "", false
	}

	lower := strings.ToLower(body)
	if strings.Contains(lower, "12ft has been disabled") || strings.Contains(lower, "not available") {
		return "", false
	}
	if len(body) <= minBodyBytes {
		return "", false
	}
	return body, true
}

// fetchCrawlerAgent retries the direct URL with a search-engine crawler
// identity and crawler-friendly Accept headers.
func (f *Fetcher) fetchCrawlerAgent(ctx context.Context, target string) (string, bool) {
	headers := map[string]string{
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.5",
		"Cache-Control":   "no-cache",
	}

	body, ok := f.get(ctx, target, crawlerUserAgent, headers)
	if !ok {
		return "", false
	}
	if containsAny(body, crawlerPaywallIndicators) {
		return "", false
	}
	if len(body) <= minBodyBytes {
		return "", false
	}
	return body, true
}

// get performs one GET and returns the body on a 2xx response.
func (f *Fetcher) get(ctx context.Context, target, userAgent string, extraHeaders map[string]string) (string, bool) {
	headers := map[string]string{"User-Agent": userAgent}
	for key, value := range extraHeaders {
		headers[key] = value
	}

	resp, err := f.deps.HTTPClient.GetWithOptions(ctx, target, interfaces.RequestOptions{Headers: headers})
	if err != nil {
		return "", false
	}
	return readSuccess(resp)
}

// readSuccess drains a response body when the status is 2xx.
func readSuccess(resp interfaces.Response) (string, bool) {
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxBodyBytes))
	if err != nil {
		return "", false
	}
	return string(body), true
}

func containsAny(body string, indicators []string) bool {
	lower := strings.ToLower(body)
	for _, indicator := range indicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}
