package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/internal/domain/mocks"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

func TestNotificationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotificationRepository(ctrl)
	service := NewNotificationService(mockRepo, logger.NewMockLogger(t))
	ctx := context.Background()

	t.Run("create defaults to unread", func(t *testing.T) {
		n := &domain.Notification{ReferenceID: "REF-1", Type: "Account", Message: "Transferred"}
		mockRepo.EXPECT().Create(ctx, n).Return(nil)

		require.NoError(t, service.CreateNotification(ctx, n))
		assert.Equal(t, domain.NotificationStatusUnread, n.Status)
	})

	t.Run("mark read with empty ids", func(t *testing.T) {
		mockRepo.EXPECT().MarkRead(gomock.Any(), gomock.Any()).Times(0)

		_, err := service.MarkRead(ctx, domain.IDList{})
		assert.EqualError(t, err, "validation error: ids is required")
	})

	t.Run("mark read returns count", func(t *testing.T) {
		mockRepo.EXPECT().MarkRead(ctx, domain.IDList{4, 5}).Return(int64(2), nil)

		updated, err := service.MarkRead(ctx, domain.IDList{4, 5})
		require.NoError(t, err)
		assert.Equal(t, int64(2), updated)
	})

	t.Run("list error", func(t *testing.T) {
		mockRepo.EXPECT().List(ctx, "REF-1", "").Return(nil, errors.New("boom"))

		_, err := service.ListNotifications(ctx, "REF-1", "")
		assert.EqualError(t, err, "failed to list notifications: boom")
	})

	t.Run("delete not found", func(t *testing.T) {
		mockRepo.EXPECT().Delete(ctx, int64(9)).Return(domain.NewNotFound("notification", 9))

		err := service.DeleteNotification(ctx, 9)
		assert.EqualError(t, err, "notification not found with ID: 9")
	})
}
