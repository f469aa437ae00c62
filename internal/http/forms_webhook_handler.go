package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

// maxWebhookBytes bounds a forms webhook payload
const maxWebhookBytes = 1 << 20

// WebhookVerifier checks the signature headers of a webhook payload
type WebhookVerifier interface {
	Verify(payload []byte, headers http.Header) error
}

// FormsWebhookHandler receives signed submissions from the forms plugin
type FormsWebhookHandler struct {
	service  domain.IntegrationService
	verifier WebhookVerifier
	logger   logger.Logger
}

// NewFormsWebhookHandler creates the handler; a nil verifier answers 503 until a secret is configured
func NewFormsWebhookHandler(service domain.IntegrationService, verifier WebhookVerifier, logger logger.Logger) *FormsWebhookHandler {
	return &FormsWebhookHandler{
		service:  service,
		verifier: verifier,
		logger:   logger,
	}
}

// RegisterRoutes registers the public webhook endpoint
func (h *FormsWebhookHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/webhooks/forms", http.HandlerFunc(h.handleSubmission))
}

func (h *FormsWebhookHandler) handleSubmission(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	if h.verifier == nil {
		WriteJSONError(w, "forms webhook is not configured", http.StatusServiceUnavailable)
		return
	}

	if r.Header.Get("webhook-id") == "" || r.Header.Get("webhook-timestamp") == "" || r.Header.Get("webhook-signature") == "" {
		WriteJSONError(w, "Missing required webhook headers", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteJSONError(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to read webhook request body")
		WriteJSONError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	if err := h.verifier.Verify(body, r.Header); err != nil {
		h.logger.WithField("webhook_id", r.Header.Get("webhook-id")).
			WithField("error", err.Error()).
			Warn("Rejected forms webhook")
		WriteJSONError(w, "Invalid webhook signature", http.StatusUnauthorized)
		return
	}

	var submission domain.FormSubmission
	if err := json.Unmarshal(body, &submission); err != nil {
		WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.logger.WithField("form_id", submission.FormID).
		WithField("entry_id", submission.EntryID).
		Info("Received forms webhook")

	inquiry, err := h.service.HandleFormSubmission(r.Context(), submission)
	if err != nil {
		writeServiceError(w, h.logger, err, "process forms webhook")
		return
	}
	writeData(w, http.StatusCreated, inquiry)
}
