// ABOUTME: Wire-format capture request DTO
// ABOUTME: JSON field names match the share-sheet clients; defaults applied here

package requests

import "brief-api/core/domain"

// CaptureRequest is the POST /capture body.
type CaptureRequest struct {
	URL           string `json:"url"`
	Email         string `json:"email"`
	Title         string `json:"title,omitempty"`
	Site          string `json:"site,omitempty"`
	Context       string `json:"context,omitempty"`
	AISummary     *bool  `json:"aiSummary,omitempty"`
	SummaryLength string `json:"summaryLength,omitempty"`
}

// ApplyDefaults fills absent optional fields. Summaries default on with the
// short tier; clients opt out explicitly.
func (r *CaptureRequest) ApplyDefaults() {
	if r.AISummary == nil {
		enabled := true
		r.AISummary = &enabled
	}
	if r.SummaryLength != "long" {
		r.SummaryLength = "short"
	}
}

// ToDomain converts the wire request into the domain model. ApplyDefaults
// must run first.
func (r *CaptureRequest) ToDomain() *domain.CaptureRequest {
	return &domain.CaptureRequest{
		URL:            r.URL,
		Email:          r.Email,
		Title:          r.Title,
		SiteHint:       r.Site,
		Note:           r.Context,
		SummaryEnabled: r.AISummary != nil && *r.AISummary,
		SummaryLength:  domain.SummaryLength(r.SummaryLength),
	}
}
