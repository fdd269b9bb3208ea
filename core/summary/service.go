// ABOUTME: Summarization service with graceful degradation
// ABOUTME: Full-text summary first, title-only on thin content, unavailable on provider failure

package summary

import (
	"context"
	"regexp"
	"strings"

	"brief-api/core/domain"
	"brief-api/core/interfaces"
)

const (
	fullTextMaxTokens  = 500
	titleOnlyMaxTokens = 300
)

var bulletPrefix = regexp.MustCompile(`^[•\-*]\s*`)

// Input carries everything the summarizer needs about one capture.
type Input struct {
	Title  string
	URL    string
	Text   string
	Usable bool
	Length domain.SummaryLength
}

// Service produces bullet summaries. A nil or failing provider never fails
// the capture; the result degrades to title-only and then to unavailable.
type Service struct {
	provider interfaces.TextGenerationProvider
	logger   interfaces.Logger
}

func NewService(provider interfaces.TextGenerationProvider, logger interfaces.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// Summarize generates bullets for the capture. The returned result always
// has a populated Basis; callers decide presentation from it.
func (s *Service) Summarize(ctx context.Context, input Input) domain.SummaryResult {
	if s.provider == nil {
		return domain.SummaryResult{
			Basis:  domain.BasisUnavailable,
			Reason: "no summarization provider configured",
		}
	}

	length := string(input.Length)

	if input.Usable {
		prompt := fullTextPrompt(length, input.Title, input.URL, input.Text)
		raw, err := s.provider.Generate(ctx, prompt, fullTextMaxTokens)
		if err == nil {
			if bullets := parseBullets(raw); len(bullets) > 0 {
				return domain.SummaryResult{Bullets: bullets, Basis: domain.BasisFullText}
			}
		}
		if err != nil {
			s.logger.Warn("full-text summary failed, retrying on title", map[string]interface{}{
				"url":   input.URL,
				"error": err.Error(),
			})
		}
	} else {
		s.logger.Info("content too thin for full summary, using title-based summary", map[string]interface{}{
			"url":   input.URL,
			"chars": len(input.Text),
		})
	}

	prompt := titleOnlyPrompt(length, input.Title, input.URL)
	raw, err := s.provider.Generate(ctx, prompt, titleOnlyMaxTokens)
	if err != nil {
		s.logger.Error("title-based summary failed", map[string]interface{}{
			"url":   input.URL,
			"error": err.Error(),
		})
		return domain.SummaryResult{
			Basis:  domain.BasisUnavailable,
			Reason: "summary generation failed",
		}
	}

	bullets := parseBullets(raw)
	if len(bullets) == 0 {
		return domain.SummaryResult{
			Basis:  domain.BasisUnavailable,
			Reason: "summary generation returned no content",
		}
	}
	return domain.SummaryResult{Bullets: bullets, Basis: domain.BasisTitleOnly}
}

// parseBullets splits model output into clean bullet lines, stripping any
// leading bullet symbols the model added despite instructions.
func parseBullets(raw string) []string {
	var bullets []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = bulletPrefix.ReplaceAllString(line, "")
		if line == "" {
			continue
		}
		bullets = append(bullets, line)
	}
	return bullets
}
