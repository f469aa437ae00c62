package http

import (
	"net/http"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/internal/http/middleware"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

type InquiryHandler struct {
	service  domain.InquiryService
	verifier middleware.TokenVerifier
	logger   logger.Logger
}

func NewInquiryHandler(service domain.InquiryService, verifier middleware.TokenVerifier, logger logger.Logger) *InquiryHandler {
	return &InquiryHandler{
		service:  service,
		verifier: verifier,
		logger:   logger,
	}
}

func (h *InquiryHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.verifier).RequireAuth()

	mux.Handle("/api/inquiries.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/inquiries.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/inquiries.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/inquiries.updateStatus", requireAuth(http.HandlerFunc(h.handleUpdateStatus)))
	mux.Handle("/api/inquiries.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *InquiryHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	var req domain.ListInquiriesRequest
	if err := req.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	inquiries, err := h.service.ListInquiries(r.Context(), domain.InquiryFilter{
		ReferenceID: req.ReferenceID,
		Status:      req.Status,
	})
	if err != nil {
		writeServiceError(w, h.logger, err, "list inquiries")
		return
	}
	writeList(w, inquiries)
}

func (h *InquiryHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.CreateInquiryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	inquiry, err := req.Validate()
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.CreateInquiry(r.Context(), inquiry); err != nil {
		writeServiceError(w, h.logger, err, "create inquiry")
		return
	}
	writeData(w, http.StatusCreated, inquiry)
}

func (h *InquiryHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPut) {
		return
	}

	var req domain.UpdateInquiryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	inquiry, err := req.Validate()
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateInquiry(r.Context(), inquiry); err != nil {
		writeServiceError(w, h.logger, err, "update inquiry")
		return
	}
	writeData(w, http.StatusOK, inquiry)
}

func (h *InquiryHandler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPut) {
		return
	}

	var req domain.UpdateInquiryStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateInquiryStatus(r.Context(), req.ID, req.Status); err != nil {
		writeServiceError(w, h.logger, err, "update inquiry status")
		return
	}
	writeMessage(w, "Inquiry status updated")
}

func (h *InquiryHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodDelete) {
		return
	}

	id, err := queryID(r)
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteInquiry(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, err, "delete inquiry")
		return
	}
	writeMessage(w, "Inquiry deleted")
}
