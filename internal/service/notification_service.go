package service

import (
	"context"
	"fmt"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

type NotificationService struct {
	repo   domain.NotificationRepository
	logger logger.Logger
}

func NewNotificationService(repo domain.NotificationRepository, logger logger.Logger) *NotificationService {
	return &NotificationService{
		repo:   repo,
		logger: logger,
	}
}

func (s *NotificationService) ListNotifications(ctx context.Context, referenceID, status string) ([]*domain.Notification, error) {
	notifications, err := s.repo.List(ctx, referenceID, status)
	if err != nil {
		s.logger.WithField("referenceid", referenceID).Error(fmt.Sprintf("Failed to list notifications: %v", err))
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (s *NotificationService) CreateNotification(ctx context.Context, notification *domain.Notification) error {
	if notification.Status == "" {
		notification.Status = domain.NotificationStatusUnread
	}

	if err := s.repo.Create(ctx, notification); err != nil {
		s.logger.WithField("referenceid", notification.ReferenceID).Error(fmt.Sprintf("Failed to create notification: %v", err))
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (s *NotificationService) MarkRead(ctx context.Context, ids domain.IDList) (int64, error) {
	if len(ids) == 0 {
		return 0, domain.NewValidationError("ids is required")
	}

	updated, err := s.repo.MarkRead(ctx, ids)
	if err != nil {
		s.logger.WithField("count", len(ids)).Error(fmt.Sprintf("Failed to mark notifications read: %v", err))
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return updated, nil
}

func (s *NotificationService) DeleteNotification(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if isClientError(err) {
			return err
		}
		s.logger.WithField("notification_id", id).Error(fmt.Sprintf("Failed to delete notification: %v", err))
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}
