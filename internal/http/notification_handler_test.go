package http

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/internal/domain/mocks"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

func setupNotificationHandlerTest(t *testing.T) (*mocks.MockNotificationService, *http.ServeMux) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := mocks.NewMockNotificationService(ctrl)
	handler := NewNotificationHandler(service, staticVerifier{}, logger.NewMockLogger(t))

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	return service, mux
}

func TestNotificationHandler_List(t *testing.T) {
	service, mux := setupNotificationHandlerTest(t)

	service.EXPECT().ListNotifications(gomock.Any(), "TSA-001", domain.NotificationStatusUnread).Return([]*domain.Notification{{ID: 1}}, nil)
	w := serve(mux, newRequest(t, http.MethodGet, "/api/notifications.list?referenceid=TSA-001&status=Unread", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(mux, newRequest(t, http.MethodGet, "/api/notifications.list?referenceid=TSA-001&status=Archived", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotificationHandler_Create(t *testing.T) {
	service, mux := setupNotificationHandlerTest(t)

	service.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(func(_ interface{}, n *domain.Notification) error {
		assert.Equal(t, domain.NotificationStatusUnread, n.Status)
		return nil
	})
	w := serve(mux, newRequest(t, http.MethodPost, "/api/notifications.create", map[string]string{
		"referenceid": "TSA-001",
		"type":        "Account",
		"message":     "Acme was transferred to you",
	}))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = serve(mux, newRequest(t, http.MethodPost, "/api/notifications.create", map[string]string{"referenceid": "TSA-001"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation error: message is required", decodeEnvelope(t, w).Error)
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	service, mux := setupNotificationHandlerTest(t)

	t.Run("marks and counts", func(t *testing.T) {
		service.EXPECT().MarkRead(gomock.Any(), domain.IDList{3, 4}).Return(int64(2), nil)

		w := serve(mux, newRequest(t, http.MethodPut, "/api/notifications.markRead", map[string]interface{}{"ids": []int64{3, 4}}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"message":"Notifications marked as read","count":2}`, w.Body.String())
	})

	t.Run("empty ids", func(t *testing.T) {
		w := serve(mux, newRequest(t, http.MethodPut, "/api/notifications.markRead", map[string]interface{}{"ids": []int64{}}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "validation error: ids is required", decodeEnvelope(t, w).Error)
	})
}

func TestNotificationHandler_Delete(t *testing.T) {
	service, mux := setupNotificationHandlerTest(t)

	service.EXPECT().DeleteNotification(gomock.Any(), int64(9)).Return(domain.NewNotFound("notification", 9))
	w := serve(mux, newRequest(t, http.MethodDelete, "/api/notifications.delete?id=9", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
