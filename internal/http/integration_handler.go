package http

import (
	"errors"
	"net/http"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/internal/http/middleware"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

// multipartOverhead leaves room for the form boundaries around a maximum size file
const multipartOverhead = 1 << 20

type IntegrationHandler struct {
	service  domain.IntegrationService
	verifier middleware.TokenVerifier
	logger   logger.Logger
}

func NewIntegrationHandler(service domain.IntegrationService, verifier middleware.TokenVerifier, logger logger.Logger) *IntegrationHandler {
	return &IntegrationHandler{
		service:  service,
		verifier: verifier,
		logger:   logger,
	}
}

func (h *IntegrationHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.verifier).RequireAuth()

	mux.Handle("/api/calls.dial", requireAuth(http.HandlerFunc(h.handleDial)))
	mux.Handle("/api/media.upload", requireAuth(http.HandlerFunc(h.handleUpload)))
	mux.Handle("/api/storefront.products", requireAuth(http.HandlerFunc(h.handleProducts)))
	mux.Handle("/api/storefront.orders", requireAuth(http.HandlerFunc(h.handleOrders)))
	mux.Handle("/api/forms.entries", requireAuth(http.HandlerFunc(h.handleFormEntries)))
}

func (h *IntegrationHandler) handleDial(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.DialRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	call, err := h.service.Dial(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err, "place call")
		return
	}
	writeData(w, http.StatusOK, call)
}

func (h *IntegrationHandler) handleUpload(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, domain.MaxMediaSize+multipartOverhead)
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteJSONError(w, "file must not exceed 10 MiB", http.StatusBadRequest)
			return
		}
		WriteJSONError(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	object, err := h.service.UploadMedia(r.Context(), domain.MediaUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		writeServiceError(w, h.logger, err, "upload media")
		return
	}
	writeData(w, http.StatusCreated, object)
}

func (h *IntegrationHandler) handleProducts(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	var req domain.StorefrontRequest
	if err := req.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	products, err := h.service.ListProducts(r.Context(), req.Platform, req.Limit)
	if err != nil {
		writeServiceError(w, h.logger, err, "list products")
		return
	}
	writeList(w, products)
}

func (h *IntegrationHandler) handleOrders(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	var req domain.StorefrontRequest
	if err := req.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	orders, err := h.service.ListOrders(r.Context(), req.Platform, req.Limit)
	if err != nil {
		writeServiceError(w, h.logger, err, "list orders")
		return
	}
	writeList(w, orders)
}

func (h *IntegrationHandler) handleFormEntries(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	var req domain.FormEntriesRequest
	if err := req.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := h.service.ListFormEntries(r.Context(), req.FormID, req.Page)
	if err != nil {
		writeServiceError(w, h.logger, err, "list form entries")
		return
	}
	writeList(w, entries)
}
