package resend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	coreerrors "brief-api/core/errors"
	"brief-api/infrastructure/http/standard"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := standard.NewStandardHTTPClient(5 * time.Second)
	return NewProvider(client, "re_test", "Brief <brief@send-brief.com>", server.URL)
}

func TestProvider_Send_Success(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer re_test" {
			t.Errorf("Authorization = %q", auth)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}

		var req sendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.From != "Brief <brief@send-brief.com>" {
			t.Errorf("from = %q", req.From)
		}
		if len(req.To) != 1 || req.To[0] != "reader@example.com" {
			t.Errorf("to = %v", req.To)
		}
		if req.Subject != "CNN: Example" {
			t.Errorf("subject = %q", req.Subject)
		}

		w.Write([]byte(`{"id":"email_123"}`))
	})

	err := provider.Send(context.Background(), "reader@example.com", "CNN: Example", "<div>hi</div>")
	if err != nil {
		t.Errorf("Send returned error: %v", err)
	}
}

func TestProvider_Send_ProviderRejection(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"statusCode":422,"message":"Invalid 'from' field"}`))
	})

	err := provider.Send(context.Background(), "reader@example.com", "subj", "<div></div>")
	if err == nil {
		t.Fatal("Send returned nil for 422")
	}

	var apiErr *coreerrors.ExternalAPIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T, want ExternalAPIError", err)
	}
	if apiErr.Message != "Invalid 'from' field" {
		t.Errorf("Message = %q, want provider text verbatim", apiErr.Message)
	}
	if apiErr.StatusCode != 422 {
		t.Errorf("StatusCode = %d", apiErr.StatusCode)
	}
}

func TestProvider_Send_UndecodableErrorBody(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	})

	err := provider.Send(context.Background(), "reader@example.com", "subj", "<div></div>")

	var apiErr *coreerrors.ExternalAPIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T, want ExternalAPIError", err)
	}
	if apiErr.Message != "failed to send email" {
		t.Errorf("Message = %q, want generic fallback", apiErr.Message)
	}
}
