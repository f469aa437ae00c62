package http

import (
	"net/http"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/internal/http/middleware"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

type NotificationHandler struct {
	service  domain.NotificationService
	verifier middleware.TokenVerifier
	logger   logger.Logger
}

func NewNotificationHandler(service domain.NotificationService, verifier middleware.TokenVerifier, logger logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		service:  service,
		verifier: verifier,
		logger:   logger,
	}
}

func (h *NotificationHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.verifier).RequireAuth()

	mux.Handle("/api/notifications.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/notifications.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/notifications.markRead", requireAuth(http.HandlerFunc(h.handleMarkRead)))
	mux.Handle("/api/notifications.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *NotificationHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	var req domain.ListNotificationsRequest
	if err := req.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	notifications, err := h.service.ListNotifications(r.Context(), req.ReferenceID, req.Status)
	if err != nil {
		writeServiceError(w, h.logger, err, "list notifications")
		return
	}
	writeList(w, notifications)
}

func (h *NotificationHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.CreateNotificationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	notification, err := req.Validate()
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.CreateNotification(r.Context(), notification); err != nil {
		writeServiceError(w, h.logger, err, "create notification")
		return
	}
	writeData(w, http.StatusCreated, notification)
}

func (h *NotificationHandler) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPut) {
		return
	}

	var req domain.MarkNotificationsReadRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	ids, err := req.Validate()
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.service.MarkRead(r.Context(), ids)
	if err != nil {
		writeServiceError(w, h.logger, err, "mark notifications read")
		return
	}
	writeCount(w, "Notifications marked as read", updated)
}

func (h *NotificationHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodDelete) {
		return
	}

	id, err := queryID(r)
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteNotification(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, err, "delete notification")
		return
	}
	writeMessage(w, "Notification deleted")
}
