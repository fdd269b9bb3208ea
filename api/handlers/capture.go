// ABOUTME: HTTP handler for POST /capture
// ABOUTME: Decodes the wire request, runs the pipeline, maps errors to status codes

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"brief-api/api/dto/requests"
	"brief-api/core/domain"
	coreerrors "brief-api/core/errors"
	"brief-api/core/interfaces"
)

// CaptureService runs the capture pipeline for one validated request.
type CaptureService interface {
	Process(ctx context.Context, req *domain.CaptureRequest) error
}

// CaptureHandler handles capture submissions.
type CaptureHandler struct {
	service CaptureService
	logger  interfaces.Logger
}

func NewCaptureHandler(service CaptureService, logger interfaces.Logger) *CaptureHandler {
	return &CaptureHandler{service: service, logger: logger}
}

// ServeHTTP accepts a JSON capture request and responds with the fixed
// {"success":true} / {"error":msg} contract the clients expect.
func (h *CaptureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req requests.CaptureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	req.ApplyDefaults()

	err := h.service.Process(r.Context(), req.ToDomain())
	if err == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
		return
	}

	var verr *coreerrors.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, verr.Message)
		return
	}

	h.logger.Error("capture processing failed", map[string]interface{}{
		"error": err.Error(),
	})

	// Delivery and other provider failures surface the provider's own
	// error text so clients can show something actionable.
	message := err.Error()
	var apiErr *coreerrors.ExternalAPIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		message = apiErr.Message
	}
	writeError(w, http.StatusInternalServerError, message)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"error": message})
}
