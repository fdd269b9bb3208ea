// ABOUTME: Tests for summary generation and degradation behavior
// ABOUTME: Uses a scripted provider mock to exercise each fallback path

package summary

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brief-api/core/domain"
)

type mockProvider struct {
	calls    []mockCall
	generate func(prompt string, maxTokens int) (string, error)
}

type mockCall struct {
	prompt    string
	maxTokens int
}

func (m *mockProvider) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	m.calls = append(m.calls, mockCall{prompt: prompt, maxTokens: maxTokens})
	return m.generate(prompt, maxTokens)
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

func usableInput(length domain.SummaryLength) Input {
	return Input{
		Title:  "Court Reviews Merger",
		URL:    "https://news.example.com/merger",
		Text:   strings.Repeat("The court heard arguments on the merger. ", 20),
		Usable: true,
		Length: length,
	}
}

func TestSummarizeFullText(t *testing.T) {
	provider := &mockProvider{
		generate: func(prompt string, maxTokens int) (string, error) {
			return "• Main event – Court reviews merger terms\n- Key players – Two regulators filed briefs\n* Implications – Deal may close next quarter", nil
		},
	}
	svc := NewService(provider, nopLogger{})

	result := svc.Summarize(context.Background(), usableInput(domain.LengthShort))

	assert.Equal(t, domain.BasisFullText, result.Basis)
	require.Len(t, result.Bullets, 3)
	assert.Equal(t, "Main event – Court reviews merger terms", result.Bullets[0])
	assert.Equal(t, "Key players – Two regulators filed briefs", result.Bullets[1])

	require.Len(t, provider.calls, 1)
	assert.Equal(t, fullTextMaxTokens, provider.calls[0].maxTokens)
	assert.Contains(t, provider.calls[0].prompt, "3-bullet summary")
	assert.Contains(t, provider.calls[0].prompt, "Court Reviews Merger")
}

func TestSummarizeLongSelectsSixBulletPrompt(t *testing.T) {
	provider := &mockProvider{
		generate: func(prompt string, maxTokens int) (string, error) {
			return "one\ntwo\nthree\nfour\nfive\nsix", nil
		},
	}
	svc := NewService(provider, nopLogger{})

	result := svc.Summarize(context.Background(), usableInput(domain.LengthLong))

	assert.Equal(t, domain.BasisFullText, result.Basis)
	assert.Len(t, result.Bullets, 6)
	assert.Contains(t, provider.calls[0].prompt, "6-bullet summary")
}

func TestSummarizeThinContentUsesTitlePrompt(t *testing.T) {
	provider := &mockProvider{
		generate: func(prompt string, maxTokens int) (string, error) {
			return "Likely covers the merger ruling\nBased only on headline context", nil
		},
	}
	svc := NewService(provider, nopLogger{})

	input := usableInput(domain.LengthShort)
	input.Text = "short"
	input.Usable = false

	result := svc.Summarize(context.Background(), input)

	assert.Equal(t, domain.BasisTitleOnly, result.Basis)
	require.Len(t, result.Bullets, 2)

	require.Len(t, provider.calls, 1)
	assert.Equal(t, titleOnlyMaxTokens, provider.calls[0].maxTokens)
	assert.Contains(t, provider.calls[0].prompt, "Based only on this article title")
	assert.Contains(t, provider.calls[0].prompt, "3 bullet points (or fewer)")
	assert.NotContains(t, provider.calls[0].prompt, "Content:")
}

func TestSummarizeTitlePromptLongTier(t *testing.T) {
	provider := &mockProvider{
		generate: func(prompt string, maxTokens int) (string, error) {
			return "one\ntwo", nil
		},
	}
	svc := NewService(provider, nopLogger{})

	input := usableInput(domain.LengthLong)
	input.Text = "short"
	input.Usable = false

	result := svc.Summarize(context.Background(), input)

	assert.Equal(t, domain.BasisTitleOnly, result.Basis)
	assert.Contains(t, provider.calls[0].prompt, "up to 6 bullet points")
}

func TestSummarizeFullTextFailureFallsBackToTitle(t *testing.T) {
	provider := &mockProvider{
		generate: func(prompt string, maxTokens int) (string, error) {
			if strings.Contains(prompt, "Based only on this article title") {
				return "Probably about the merger decision", nil
			}
			return "", errors.New("model overloaded")
		},
	}
	svc := NewService(provider, nopLogger{})

	result := svc.Summarize(context.Background(), usableInput(domain.LengthShort))

	assert.Equal(t, domain.BasisTitleOnly, result.Basis)
	require.Len(t, result.Bullets, 1)
	assert.Len(t, provider.calls, 2)
}

func TestSummarizeProviderFailureYieldsUnavailable(t *testing.T) {
	provider := &mockProvider{
		generate: func(prompt string, maxTokens int) (string, error) {
			return "", errors.New("quota exceeded")
		},
	}
	svc := NewService(provider, nopLogger{})

	result := svc.Summarize(context.Background(), usableInput(domain.LengthShort))

	assert.Equal(t, domain.BasisUnavailable, result.Basis)
	assert.Empty(t, result.Bullets)
	assert.NotEmpty(t, result.Reason)
}

func TestSummarizeNilProvider(t *testing.T) {
	svc := NewService(nil, nopLogger{})

	result := svc.Summarize(context.Background(), usableInput(domain.LengthShort))

	assert.Equal(t, domain.BasisUnavailable, result.Basis)
	assert.Contains(t, result.Reason, "provider")
}

func TestParseBulletsSkipsBlankLines(t *testing.T) {
	bullets := parseBullets("\n• first\n\n  - second  \n•\n")
	assert.Equal(t, []string{"first", "second"}, bullets)
}
