// ABOUTME: Capture pipeline orchestrator: validate, fetch, extract, summarize, deliver
// ABOUTME: Stateless per request; degraded stages never block email delivery

package capture

import (
	"context"

	"github.com/google/uuid"

	"brief-api/core/domain"
	"brief-api/core/email"
	coreerrors "brief-api/core/errors"
	"brief-api/core/extract"
	"brief-api/core/interfaces"
	"brief-api/core/summary"
)

// Fetcher retrieves article HTML with fallback strategies.
type Fetcher interface {
	Fetch(ctx context.Context, url string) domain.FetchResult
}

// SocialFetcher retrieves short-form posts via oEmbed.
type SocialFetcher interface {
	FetchPost(ctx context.Context, url string) (*domain.SocialPost, error)
}

// Summarizer produces bullet summaries with graceful degradation.
type Summarizer interface {
	Summarize(ctx context.Context, input summary.Input) domain.SummaryResult
}

// Service runs the capture pipeline end to end. Everything is
// request-scoped; the service holds only its collaborators.
type Service struct {
	deps       interfaces.Dependencies
	fetcher    Fetcher
	social     SocialFetcher
	summarizer Summarizer
	normalizer *extract.Normalizer
	sender     interfaces.EmailProvider
}

func NewService(
	deps interfaces.Dependencies,
	fetcher Fetcher,
	social SocialFetcher,
	summarizer Summarizer,
	normalizer *extract.Normalizer,
	sender interfaces.EmailProvider,
) *Service {
	return &Service{
		deps:       deps,
		fetcher:    fetcher,
		social:     social,
		summarizer: summarizer,
		normalizer: normalizer,
		sender:     sender,
	}
}

// Process validates the request, builds the email, and dispatches it.
// Validation failures return before any network call. Fetch, extraction,
// and summarization failures degrade the email instead of failing it; only
// delivery failure is terminal.
func (s *Service) Process(ctx context.Context, req *domain.CaptureRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	captureID := uuid.NewString()
	s.deps.Logger.Info("capture accepted", map[string]interface{}{
		"capture_id": captureID,
		"url":        req.URL,
		"host":       req.Hostname(),
	})

	var compose email.ComposeInput
	if extract.IsSocialHost(req.Hostname()) {
		compose = s.buildSocialEmail(ctx, captureID, req)
	} else {
		compose = s.buildArticleEmail(ctx, captureID, req)
	}

	outbound := domain.OutboundEmail{
		Recipient: req.Email,
		Subject:   email.BuildSubject(s.siteName(req), compose.Title),
		HTMLBody:  email.Compose(compose),
	}

	if err := s.sender.Send(ctx, outbound.Recipient, outbound.Subject, outbound.HTMLBody); err != nil {
		s.deps.Logger.Error("email delivery failed", map[string]interface{}{
			"capture_id": captureID,
			"error":      err.Error(),
		})
		return coreerrors.WrapError(err, "deliver capture email")
	}

	s.deps.Logger.Info("capture delivered", map[string]interface{}{
		"capture_id": captureID,
		"recipient":  req.Email,
	})
	return nil
}

// buildArticleEmail runs fetch, metadata extraction, normalization, and
// summarization for a regular article URL.
func (s *Service) buildArticleEmail(ctx context.Context, captureID string, req *domain.CaptureRequest) email.ComposeInput {
	result := s.fetcher.Fetch(ctx, req.URL)

	var meta domain.ArticleMetadata
	var text string
	usable := false

	if result.Succeeded {
		meta = extract.Metadata(result.RawHTML, req.Hostname())
		text = s.normalizer.Normalize(result.RawHTML, req.URL)
		usable = s.normalizer.Usable(text)
	} else {
		s.deps.Logger.Warn("article fetch failed, composing degraded email", map[string]interface{}{
			"capture_id": captureID,
			"url":        req.URL,
		})
	}

	title := s.resolveTitle(req, meta.Title)

	compose := email.ComposeInput{
		Title:         title,
		URL:           req.URL,
		Author:        meta.Author,
		PublishedDate: meta.PublishedDate,
		Note:          req.Note,
		IncludeSum:    req.SummaryEnabled,
	}

	if req.SummaryEnabled {
		compose.Summary = s.summarizer.Summarize(ctx, summary.Input{
			Title:  title,
			URL:    req.URL,
			Text:   text,
			Usable: usable,
			Length: req.SummaryLength,
		})
		s.deps.Logger.Info("summary generated", map[string]interface{}{
			"capture_id": captureID,
			"basis":      string(compose.Summary.Basis),
			"bullets":    len(compose.Summary.Bullets),
		})
	}

	return compose
}

// buildSocialEmail captures a short-form post through oEmbed. Social posts
// never get an AI summary; the post text is the content.
func (s *Service) buildSocialEmail(ctx context.Context, captureID string, req *domain.CaptureRequest) email.ComposeInput {
	post, err := s.social.FetchPost(ctx, req.URL)
	if err != nil {
		s.deps.Logger.Warn("social post lookup failed, using URL-derived title", map[string]interface{}{
			"capture_id": captureID,
			"url":        req.URL,
			"error":      err.Error(),
		})
		post = nil
	}

	return email.ComposeInput{
		Title:      extract.SocialTitle(post, req.URL),
		URL:        req.URL,
		Note:       req.Note,
		SocialPost: post,
	}
}

// resolveTitle prefers the client-supplied title, cleaned the same way as
// extracted ones; then the extracted title; then the bare hostname.
func (s *Service) resolveTitle(req *domain.CaptureRequest, extracted string) string {
	if req.Title != "" {
		if cleaned := extract.CleanTitle(req.Title); cleaned != "" {
			return cleaned
		}
	}
	if extracted != "" {
		return extracted
	}
	return req.DisplayHost()
}

func (s *Service) siteName(req *domain.CaptureRequest) string {
	site := req.SiteHint
	if site == "" {
		site = req.DisplayHost()
	}
	return extract.PrettySiteName(site)
}
