// ABOUTME: Capture domain model represents one inbound share-sheet capture
// ABOUTME: Provides validation of required fields before any network call

package domain

import (
	"net/url"
	"regexp"
	"strings"

	coreerrors "brief-api/core/errors"
)

// SummaryLength selects the prompt tier for AI summarization.
type SummaryLength string

const (
	// LengthShort requests a 3-bullet executive summary.
	LengthShort SummaryLength = "short"

	// LengthLong requests a 6-bullet detailed summary.
	LengthLong SummaryLength = "long"
)

// emailPattern is deliberately permissive (local@domain.tld); full RFC 5322
// validation produces false negatives on real addresses.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CaptureRequest is a validated capture submission. All fields are
// request-scoped; nothing survives past the HTTP response.
type CaptureRequest struct {
	// URL is the page to capture. Required, http(s) only.
	URL string

	// Email is the delivery recipient. Required.
	Email string

	// Title is the client-supplied page title, if the share sheet had one.
	Title string

	// SiteHint is the client-supplied site name, if any.
	SiteHint string

	// Note is free-form user context rendered in the email.
	Note string

	// SummaryEnabled controls whether AI summarization is attempted.
	SummaryEnabled bool

	// SummaryLength selects the short or long prompt tier.
	SummaryLength SummaryLength
}

// Validate checks required fields and formats. It returns a ValidationError
// naming the offending field; no side effects, no network calls.
func (r *CaptureRequest) Validate() error {
	if r.URL == "" && r.Email == "" {
		return &coreerrors.ValidationError{
			Field:   "url, email",
			Message: "url and email are required",
		}
	}
	if r.URL == "" {
		return &coreerrors.ValidationError{Field: "url", Message: "url is required"}
	}
	if r.Email == "" {
		return &coreerrors.ValidationError{Field: "email", Message: "email is required"}
	}

	parsed, err := url.Parse(r.URL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return &coreerrors.ValidationError{Field: "url", Message: "url must be a valid http(s) URL"}
	}

	if !emailPattern.MatchString(r.Email) {
		return &coreerrors.ValidationError{Field: "email", Message: "invalid email address format"}
	}

	return nil
}

// Hostname returns the host portion of the capture URL. Validate must have
// succeeded first.
func (r *CaptureRequest) Hostname() string {
	parsed, err := url.Parse(r.URL)
	if err != nil {
		return ""
	}
	return parsed.Host
}

// DisplayHost returns the hostname with a leading "www." stripped, used as
// the title of last resort.
func (r *CaptureRequest) DisplayHost() string {
	return strings.TrimPrefix(r.Hostname(), "www.")
}
