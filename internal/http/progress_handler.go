package http

import (
	"net/http"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/internal/http/middleware"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

type ProgressHandler struct {
	service  domain.ProgressService
	verifier middleware.TokenVerifier
	logger   logger.Logger
}

func NewProgressHandler(service domain.ProgressService, verifier middleware.TokenVerifier, logger logger.Logger) *ProgressHandler {
	return &ProgressHandler{
		service:  service,
		verifier: verifier,
		logger:   logger,
	}
}

func (h *ProgressHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.verifier).RequireAuth()

	mux.Handle("/api/progress.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/progress.today", requireAuth(http.HandlerFunc(h.handleToday)))
	mux.Handle("/api/progress.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/progress.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/progress.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
	mux.Handle("/api/progress.salesByAgent", requireAuth(http.HandlerFunc(h.handleSalesByAgent)))
}

func (h *ProgressHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	var req domain.ListProgressRequest
	if err := req.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	activities, err := h.service.ListProgress(r.Context(), req.ToFilter())
	if err != nil {
		writeServiceError(w, h.logger, err, "list progress")
		return
	}
	writeList(w, activities)
}

func (h *ProgressHandler) handleToday(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	referenceID := r.URL.Query().Get("referenceid")
	if referenceID == "" {
		WriteJSONError(w, "referenceid is required", http.StatusBadRequest)
		return
	}

	activities, err := h.service.ListToday(r.Context(), referenceID)
	if err != nil {
		writeServiceError(w, h.logger, err, "list today's progress")
		return
	}
	writeList(w, activities)
}

func (h *ProgressHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.CreateProgressRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	progress, err := req.Validate()
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.CreateProgress(r.Context(), progress); err != nil {
		writeServiceError(w, h.logger, err, "create progress")
		return
	}
	writeData(w, http.StatusCreated, progress)
}

func (h *ProgressHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPut) {
		return
	}

	var req domain.UpdateProgressRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	progress, err := req.Validate()
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateProgress(r.Context(), progress); err != nil {
		writeServiceError(w, h.logger, err, "update progress")
		return
	}
	writeData(w, http.StatusOK, progress)
}

func (h *ProgressHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodDelete) {
		return
	}

	id, err := queryID(r)
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteProgress(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, err, "delete progress")
		return
	}
	writeMessage(w, "Activity deleted")
}

func (h *ProgressHandler) handleSalesByAgent(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	var req domain.SalesByAgentRequest
	if err := req.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	totals, err := h.service.SalesByAgent(r.Context(), req.ToFilter())
	if err != nil {
		writeServiceError(w, h.logger, err, "compute sales by agent")
		return
	}
	writeList(w, totals)
}
