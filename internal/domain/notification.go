package domain

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_notification_service.go -package mocks github.com/salesdesk/salesdesk/internal/domain NotificationService
//go:generate mockgen -destination mocks/mock_notification_repository.go -package mocks github.com/salesdesk/salesdesk/internal/domain NotificationRepository

const (
	NotificationStatusUnread = "Unread"
	NotificationStatusRead   = "Read"
)

type Notification struct {
	ID          int64     `json:"id"`
	ReferenceID string    `json:"referenceid"`
	Type        string    `json:"type"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	DateCreated time.Time `json:"date_created"`
}

const NotificationColumns = "id, referenceid, type, message, status, date_created"

func ScanNotification(scanner interface {
	Scan(dest ...interface{}) error
}) (*Notification, error) {
	var n Notification
	if err := scanner.Scan(
		&n.ID,
		&n.ReferenceID,
		&n.Type,
		&n.Message,
		&n.Status,
		&n.DateCreated,
	); err != nil {
		return nil, err
	}
	return &n, nil
}

type ListNotificationsRequest struct {
	ReferenceID string
	Status      string
}

func (r *ListNotificationsRequest) FromURLParams(queryParams url.Values) error {
	ref, err := requireReference(queryParams)
	if err != nil {
		return err
	}
	r.ReferenceID = ref
	r.Status = strings.TrimSpace(queryParams.Get("status"))
	if r.Status != "" && !inSet(r.Status, NotificationStatusUnread, NotificationStatusRead) {
		return NewValidationError(fmt.Sprintf("invalid status: %s", r.Status))
	}
	return nil
}

type CreateNotificationRequest struct {
	ReferenceID string `json:"referenceid"`
	Type        string `json:"type"`
	Message     string `json:"message"`
}

func (r *CreateNotificationRequest) Validate() (*Notification, error) {
	n := &Notification{
		ReferenceID: strings.TrimSpace(r.ReferenceID),
		Type:        strings.TrimSpace(r.Type),
		Message:     strings.TrimSpace(r.Message),
		Status:      NotificationStatusUnread,
	}
	if n.ReferenceID == "" {
		return nil, NewValidationError("referenceid is required")
	}
	if n.Message == "" {
		return nil, NewValidationError("message is required")
	}
	return n, nil
}

type MarkNotificationsReadRequest struct {
	IDs IDList `json:"ids"`
}

func (r *MarkNotificationsReadRequest) Validate() (IDList, error) {
	return r.IDs.Validate()
}

type NotificationService interface {
	ListNotifications(ctx context.Context, referenceID, status string) ([]*Notification, error)
	CreateNotification(ctx context.Context, notification *Notification) error
	// MarkRead flags every notification in ids as read and returns the number of rows updated
	MarkRead(ctx context.Context, ids IDList) (int64, error)
	DeleteNotification(ctx context.Context, id int64) error
}

type NotificationRepository interface {
	List(ctx context.Context, referenceID, status string) ([]*Notification, error)
	Create(ctx context.Context, notification *Notification) error
	MarkRead(ctx context.Context, ids IDList) (int64, error)
	Delete(ctx context.Context, id int64) error
	CountUnread(ctx context.Context, referenceID string) (int64, error)
}
