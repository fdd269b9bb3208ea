// ABOUTME: TextGenerationProvider implementation for the Gemini generateContent API
// ABOUTME: Issues one REST call per invocation through the injected HTTP client

package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	coreerrors "brief-api/core/errors"
	"brief-api/core/interfaces"
)

// ErrMissingAPIKey is returned when no Gemini credential is configured.
// The summarizer treats it like any other provider failure.
var ErrMissingAPIKey = errors.New("gemini API key is not configured")

// Provider calls the Gemini generateContent endpoint.
type Provider struct {
	client   interfaces.HTTPClient
	apiKey   string
	model    string
	endpoint string
}

// NewProvider creates a Gemini provider. endpoint is the models base URL
// (".../v1beta/models"); tests point it at a local server.
func NewProvider(client interfaces.HTTPClient, apiKey, model, endpoint string) *Provider {
	return &Provider{
		client:   client,
		apiKey:   apiKey,
		model:    model,
		endpoint: endpoint,
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	MaxOutputTokens int `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate submits the prompt and returns the generated text.
func (p *Provider) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if p.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			MaxOutputTokens: maxTokens,
		},
	})
	if err != nil {
		return "", coreerrors.WrapError(err, "marshal gemini request")
	}

	url := fmt.Sprintf("%s/%s:generateContent", p.endpoint, p.model)
	resp, err := p.client.Post(ctx, url, bytes.NewReader(payload), map[string]string{
		"x-goog-api-key": p.apiKey,
	})
	if err != nil {
		return "", coreerrors.WrapError(err, "gemini request failed")
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", coreerrors.WrapError(err, "read gemini response")
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", &coreerrors.ExternalAPIError{
			API:        "gemini",
			StatusCode: resp.StatusCode(),
			Message:    string(body),
		}
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", coreerrors.WrapError(err, "decode gemini response")
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini response contained no candidates")
	}

	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
