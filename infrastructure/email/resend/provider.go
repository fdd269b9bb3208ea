// ABOUTME: EmailProvider implementation for the Resend transactional email API
// ABOUTME: Maps provider rejections onto ExternalAPIError with the verbatim message

package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	coreerrors "brief-api/core/errors"
	"brief-api/core/interfaces"
)

// Provider sends email through the Resend REST API with bearer-token auth.
type Provider struct {
	client   interfaces.HTTPClient
	apiKey   string
	from     string
	endpoint string
}

// NewProvider creates a Resend provider. from is the sender identity,
// e.g. `Brief <brief@send-brief.com>`.
func NewProvider(client interfaces.HTTPClient, apiKey, from, endpoint string) *Provider {
	return &Provider{
		client:   client,
		apiKey:   apiKey,
		from:     from,
		endpoint: endpoint,
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Send delivers one email. There is no retry; the caller surfaces failures
// to the client for a user-facing retry action.
func (p *Provider) Send(ctx context.Context, recipient, subject, htmlBody string) error {
	payload, err := json.Marshal(sendRequest{
		From:    p.from,
		To:      []string{recipient},
		Subject: subject,
		HTML:    htmlBody,
	})
	if err != nil {
		return coreerrors.WrapError(err, "marshal resend request")
	}

	resp, err := p.client.Post(ctx, p.endpoint, bytes.NewReader(payload), map[string]string{
		"Authorization": "Bearer " + p.apiKey,
	})
	if err != nil {
		return coreerrors.WrapError(err, "resend request failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() >= 200 && resp.StatusCode() < 300 {
		return nil
	}

	// Surface the provider's own error text when the body decodes.
	message := "failed to send email"
	if body, readErr := io.ReadAll(resp.Body()); readErr == nil {
		var decoded errorResponse
		if json.Unmarshal(body, &decoded) == nil && decoded.Message != "" {
			message = decoded.Message
		}
	}

	return &coreerrors.ExternalAPIError{
		API:        "resend",
		StatusCode: resp.StatusCode(),
		Message:    message,
	}
}
