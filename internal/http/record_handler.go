package http

import (
	"net/http"
	"strings"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/internal/http/middleware"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

// RecordHandler serves list/create/update/delete for every record schema
type RecordHandler struct {
	service  domain.RecordService
	schemas  []domain.RecordSchema
	verifier middleware.TokenVerifier
	logger   logger.Logger
}

func NewRecordHandler(service domain.RecordService, verifier middleware.TokenVerifier, logger logger.Logger) *RecordHandler {
	return &RecordHandler{
		service:  service,
		schemas:  domain.RecordSchemas(),
		verifier: verifier,
		logger:   logger,
	}
}

func (h *RecordHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.verifier).RequireAuth()

	for _, schema := range h.schemas {
		prefix := "/api/" + schema.Kind
		mux.Handle(prefix+".list", requireAuth(h.handleList(schema)))
		mux.Handle(prefix+".create", requireAuth(h.handleCreate(schema)))
		mux.Handle(prefix+".update", requireAuth(h.handleUpdate(schema)))
		mux.Handle(prefix+".delete", requireAuth(h.handleDelete(schema)))
	}
}

func (h *RecordHandler) handleList(schema domain.RecordSchema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !allowMethod(w, r, http.MethodGet) {
			return
		}

		referenceID := strings.TrimSpace(r.URL.Query().Get("referenceid"))
		if schema.Scoped && referenceID == "" {
			WriteJSONError(w, "referenceid is required", http.StatusBadRequest)
			return
		}

		records, err := h.service.ListRecords(r.Context(), schema, referenceID)
		if err != nil {
			writeServiceError(w, h.logger, err, "list "+schema.Kind)
			return
		}
		writeList(w, records)
	}
}

func (h *RecordHandler) handleCreate(schema domain.RecordSchema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !allowMethod(w, r, http.MethodPost) {
			return
		}

		record := schema.New()
		if err := decodeJSON(w, r, record); err != nil {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		record.SetID(0)

		if err := h.service.CreateRecord(r.Context(), schema, record); err != nil {
			writeServiceError(w, h.logger, err, "create "+schema.Entity)
			return
		}
		writeData(w, http.StatusCreated, record)
	}
}

func (h *RecordHandler) handleUpdate(schema domain.RecordSchema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !allowMethod(w, r, http.MethodPut) {
			return
		}

		record := schema.New()
		if err := decodeJSON(w, r, record); err != nil {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := h.service.UpdateRecord(r.Context(), schema, record); err != nil {
			writeServiceError(w, h.logger, err, "update "+schema.Entity)
			return
		}
		writeData(w, http.StatusOK, record)
	}
}

func (h *RecordHandler) handleDelete(schema domain.RecordSchema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !allowMethod(w, r, http.MethodDelete) {
			return
		}

		id, err := queryID(r)
		if err != nil {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := h.service.DeleteRecord(r.Context(), schema, id); err != nil {
			writeServiceError(w, h.logger, err, "delete "+schema.Entity)
			return
		}
		writeMessage(w, "Deleted "+schema.Entity)
	}
}
