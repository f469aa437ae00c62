package http

import (
	"net/http"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/internal/http/middleware"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

// EmailHandler handles HTTP requests for email operations
type EmailHandler struct {
	emailService domain.EmailService
	verifier     middleware.TokenVerifier
	logger       logger.Logger
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(emailService domain.EmailService, verifier middleware.TokenVerifier, logger logger.Logger) *EmailHandler {
	return &EmailHandler{
		emailService: emailService,
		verifier:     verifier,
		logger:       logger,
	}
}

// RegisterRoutes registers the email RPC-style routes with authentication middleware
func (h *EmailHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.verifier).RequireAuth()

	mux.Handle("/api/emails.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/emails.send", requireAuth(http.HandlerFunc(h.handleSend)))
	mux.Handle("/api/emails.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *EmailHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	referenceID := r.URL.Query().Get("referenceid")
	if referenceID == "" {
		WriteJSONError(w, "referenceid is required", http.StatusBadRequest)
		return
	}

	emails, err := h.emailService.ListEmails(r.Context(), referenceID)
	if err != nil {
		writeServiceError(w, h.logger, err, "list emails")
		return
	}
	writeList(w, emails)
}

// handleSend answers 500 when the message could not be delivered, even though the Failed row was stored
func (h *EmailHandler) handleSend(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.SendEmailRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	email, err := h.emailService.SendEmail(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.logger, err, "send email")
		return
	}
	writeData(w, http.StatusCreated, email)
}

func (h *EmailHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodDelete) {
		return
	}

	id, err := queryID(r)
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.emailService.DeleteEmail(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, err, "delete email")
		return
	}
	writeMessage(w, "Email deleted")
}
