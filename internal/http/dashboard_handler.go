package http

import (
	"net/http"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/internal/http/middleware"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

type DashboardHandler struct {
	service  domain.DashboardService
	verifier middleware.TokenVerifier
	logger   logger.Logger
}

func NewDashboardHandler(service domain.DashboardService, verifier middleware.TokenVerifier, logger logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		service:  service,
		verifier: verifier,
		logger:   logger,
	}
}

func (h *DashboardHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.verifier).RequireAuth()
	mux.Handle("/api/dashboard.summary", requireAuth(http.HandlerFunc(h.handleSummary)))
}

func (h *DashboardHandler) handleSummary(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	var req domain.DashboardSummaryRequest
	if err := req.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.service.Summary(r.Context(), req.ReferenceID, req.Range)
	if err != nil {
		writeServiceError(w, h.logger, err, "build dashboard summary")
		return
	}
	writeData(w, http.StatusOK, summary)
}
