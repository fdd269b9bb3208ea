package interfaces

import (
	"context"
	"io"
)

// RequestOptions customizes a single outbound GET.
// The fetch fallback chain needs per-strategy user agents and, for the
// archive mirror, manual redirect handling.
type RequestOptions struct {
	// Headers are set on the request verbatim. A User-Agent entry replaces
	// the client default.
	Headers map[string]string

	// NoFollowRedirects disables automatic redirect following so the caller
	// can inspect the Location header itself.
	NoFollowRedirects bool
}

// HTTPClient defines the interface for making HTTP requests.
// This abstraction allows for easy mocking in tests and switching between
// different HTTP client implementations.
type HTTPClient interface {
	// Get performs an HTTP GET request with the client's default headers.
	Get(ctx context.Context, url string) (Response, error)

	// GetWithOptions performs an HTTP GET request with per-request options.
	GetWithOptions(ctx context.Context, url string, opts RequestOptions) (Response, error)

	// Post performs an HTTP POST request with a JSON body and the given
	// headers. The body should be closed by the caller after use.
	Post(ctx context.Context, url string, body io.Reader, headers map[string]string) (Response, error)
}

// Response defines the interface for HTTP responses.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Returns an empty string if the header is not present.
	Header(key string) string
}
