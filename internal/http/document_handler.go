package http

import (
	"net/http"
	"strings"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/internal/http/middleware"
	"github.com/salesdesk/salesdesk/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentHandler serves the document-store collections: monitoring, tracking,
// task logs, categories and inventory
type DocumentHandler struct {
	service  domain.DocumentService
	verifier middleware.TokenVerifier
	logger   logger.Logger
}

func NewDocumentHandler(service domain.DocumentService, verifier middleware.TokenVerifier, logger logger.Logger) *DocumentHandler {
	return &DocumentHandler{
		service:  service,
		verifier: verifier,
		logger:   logger,
	}
}

func (h *DocumentHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.verifier).RequireAuth()

	mux.Handle("/api/monitoring.list", requireAuth(http.HandlerFunc(h.handleListMonitoring)))

	mux.Handle("/api/tracking.list", requireAuth(http.HandlerFunc(h.handleListTracking)))
	mux.Handle("/api/tracking.create", requireAuth(http.HandlerFunc(h.handleCreateTracking)))
	mux.Handle("/api/tracking.update", requireAuth(http.HandlerFunc(h.handleUpdateTracking)))
	mux.Handle("/api/tracking.delete", requireAuth(http.HandlerFunc(h.handleDeleteTracking)))

	mux.Handle("/api/tasklog.list", requireAuth(http.HandlerFunc(h.handleListTaskLogs)))
	mux.Handle("/api/tasklog.create", requireAuth(http.HandlerFunc(h.handleCreateTaskLog)))

	mux.Handle("/api/categories.list", requireAuth(http.HandlerFunc(h.handleListCategories)))
	mux.Handle("/api/categories.create", requireAuth(http.HandlerFunc(h.handleCreateCategory)))
	mux.Handle("/api/categories.update", requireAuth(http.HandlerFunc(h.handleUpdateCategory)))
	mux.Handle("/api/categories.delete", requireAuth(http.HandlerFunc(h.handleDeleteCategory)))

	mux.Handle("/api/inventory.list", requireAuth(http.HandlerFunc(h.handleListInventory)))
	mux.Handle("/api/inventory.get", requireAuth(http.HandlerFunc(h.handleGetInventory)))
	mux.Handle("/api/inventory.create", requireAuth(http.HandlerFunc(h.handleCreateInventory)))
	mux.Handle("/api/inventory.update", requireAuth(http.HandlerFunc(h.handleUpdateInventory)))
	mux.Handle("/api/inventory.bulkStatus", requireAuth(http.HandlerFunc(h.handleBulkInventoryStatus)))
	mux.Handle("/api/inventory.delete", requireAuth(http.HandlerFunc(h.handleDeleteInventory)))
}

func queryObjectID(r *http.Request) (primitive.ObjectID, error) {
	return domain.ParseObjectID(r.URL.Query().Get("id"), "id")
}

// Monitoring

func (h *DocumentHandler) handleListMonitoring(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	var filter domain.MonitoringFilter
	if err := filter.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := h.service.ListMonitoring(r.Context(), filter)
	if err != nil {
		writeServiceError(w, h.logger, err, "list monitoring entries")
		return
	}
	writeList(w, entries)
}

// Tracking

func (h *DocumentHandler) handleListTracking(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	referenceID := strings.TrimSpace(r.URL.Query().Get("referenceid"))
	if referenceID == "" {
		WriteJSONError(w, "referenceid is required", http.StatusBadRequest)
		return
	}

	items, err := h.service.ListTracking(r.Context(), referenceID)
	if err != nil {
		writeServiceError(w, h.logger, err, "list tracking")
		return
	}
	writeList(w, items)
}

func (h *DocumentHandler) handleCreateTracking(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var tracking domain.Tracking
	if err := decodeJSON(w, r, &tracking); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	tracking.ID = primitive.NilObjectID

	if err := h.service.CreateTracking(r.Context(), &tracking); err != nil {
		writeServiceError(w, h.logger, err, "create tracking")
		return
	}
	writeData(w, http.StatusCreated, tracking)
}

func (h *DocumentHandler) handleUpdateTracking(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPut) {
		return
	}

	var tracking domain.Tracking
	if err := decodeJSON(w, r, &tracking); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateTracking(r.Context(), &tracking); err != nil {
		writeServiceError(w, h.logger, err, "update tracking")
		return
	}
	writeData(w, http.StatusOK, tracking)
}

func (h *DocumentHandler) handleDeleteTracking(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodDelete) {
		return
	}

	id, err := queryObjectID(r)
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteTracking(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, err, "delete tracking")
		return
	}
	writeMessage(w, "Tracking deleted")
}

// Task logs

func (h *DocumentHandler) handleListTaskLogs(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	var filter domain.TaskLogFilter
	if err := filter.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	logs, err := h.service.ListTaskLogs(r.Context(), filter)
	if err != nil {
		writeServiceError(w, h.logger, err, "list task logs")
		return
	}
	writeList(w, logs)
}

func (h *DocumentHandler) handleCreateTaskLog(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var entry domain.TaskLog
	if err := decodeJSON(w, r, &entry); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	entry.ID = primitive.NilObjectID

	if err := h.service.CreateTaskLog(r.Context(), &entry); err != nil {
		writeServiceError(w, h.logger, err, "create task log")
		return
	}
	writeData(w, http.StatusCreated, entry)
}

// Categories

func (h *DocumentHandler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "list categories")
		return
	}
	writeList(w, categories)
}

func (h *DocumentHandler) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var category domain.Category
	if err := decodeJSON(w, r, &category); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	category.ID = primitive.NilObjectID

	if err := h.service.CreateCategory(r.Context(), &category); err != nil {
		writeServiceError(w, h.logger, err, "create category")
		return
	}
	writeData(w, http.StatusCreated, category)
}

func (h *DocumentHandler) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPut) {
		return
	}

	var category domain.Category
	if err := decodeJSON(w, r, &category); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateCategory(r.Context(), &category); err != nil {
		writeServiceError(w, h.logger, err, "update category")
		return
	}
	writeData(w, http.StatusOK, category)
}

func (h *DocumentHandler) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodDelete) {
		return
	}

	id, err := queryObjectID(r)
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, err, "delete category")
		return
	}
	writeMessage(w, "Category deleted")
}

// Inventory

func (h *DocumentHandler) handleListInventory(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	var filter domain.InventoryFilter
	if err := filter.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	items, err := h.service.ListInventory(r.Context(), filter)
	if err != nil {
		writeServiceError(w, h.logger, err, "list inventory")
		return
	}
	writeList(w, items)
}

func (h *DocumentHandler) handleGetInventory(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	id, err := queryObjectID(r)
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.service.GetInventoryItem(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, err, "get inventory item")
		return
	}
	writeData(w, http.StatusOK, item)
}

func (h *DocumentHandler) handleCreateInventory(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var item domain.InventoryItem
	if err := decodeJSON(w, r, &item); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = primitive.NilObjectID

	if err := h.service.CreateInventoryItem(r.Context(), &item); err != nil {
		writeServiceError(w, h.logger, err, "create inventory item")
		return
	}
	writeData(w, http.StatusCreated, item)
}

func (h *DocumentHandler) handleUpdateInventory(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPut) {
		return
	}

	var item domain.InventoryItem
	if err := decodeJSON(w, r, &item); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateInventoryItem(r.Context(), &item); err != nil {
		writeServiceError(w, h.logger, err, "update inventory item")
		return
	}
	writeData(w, http.StatusOK, item)
}

func (h *DocumentHandler) handleBulkInventoryStatus(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPut) {
		return
	}

	var req domain.BulkInventoryStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	ids, err := req.Validate()
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.service.BulkUpdateInventoryStatus(r.Context(), ids, req.Status)
	if err != nil {
		writeServiceError(w, h.logger, err, "update inventory status")
		return
	}
	writeCount(w, "Inventory status updated", updated)
}

func (h *DocumentHandler) handleDeleteInventory(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodDelete) {
		return
	}

	id, err := queryObjectID(r)
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteInventoryItem(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, err, "delete inventory item")
		return
	}
	writeMessage(w, "Inventory item deleted")
}
