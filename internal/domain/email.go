package domain

import (
	"context"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_email_service.go -package mocks github.com/salesdesk/salesdesk/internal/domain EmailService
//go:generate mockgen -destination mocks/mock_email_repository.go -package mocks github.com/salesdesk/salesdesk/internal/domain EmailRepository

const (
	EmailStatusSent   = "Sent"
	EmailStatusFailed = "Failed"
)

// Email is the stored record of a transactional email
type Email struct {
	ID          int64     `json:"id"`
	ReferenceID string    `json:"referenceid"`
	Sender      string    `json:"sender"`
	Recipient   string    `json:"recipient"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	DateCreated time.Time `json:"date_created"`
}

const EmailColumns = "id, referenceid, sender, recipient, subject, message, status, date_created"

func ScanEmail(scanner interface {
	Scan(dest ...interface{}) error
}) (*Email, error) {
	var e Email
	if err := scanner.Scan(
		&e.ID,
		&e.ReferenceID,
		&e.Sender,
		&e.Recipient,
		&e.Subject,
		&e.Message,
		&e.Status,
		&e.DateCreated,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

// SendEmailRequest carries liquid templates for subject and message, rendered with Data
type SendEmailRequest struct {
	ReferenceID string   `json:"referenceid"`
	Recipient   string   `json:"recipient"`
	Subject     string   `json:"subject"`
	Message     string   `json:"message"`
	Data        MapOfAny `json:"data,omitempty"`
}

func (r *SendEmailRequest) Validate() error {
	r.ReferenceID = strings.TrimSpace(r.ReferenceID)
	r.Recipient = strings.TrimSpace(r.Recipient)

	if r.ReferenceID == "" {
		return NewValidationError("referenceid is required")
	}
	if r.Recipient == "" {
		return NewValidationError("recipient is required")
	}
	if !govalidator.IsEmail(r.Recipient) {
		return NewValidationError("recipient is not a valid email")
	}
	if strings.TrimSpace(r.Subject) == "" {
		return NewValidationError("subject is required")
	}
	if strings.TrimSpace(r.Message) == "" {
		return NewValidationError("message is required")
	}
	return nil
}

type EmailService interface {
	ListEmails(ctx context.Context, referenceID string) ([]*Email, error)
	// SendEmail renders and sends the message, then stores it with status Sent or Failed.
	// The stored row is returned together with the send error, if any.
	SendEmail(ctx context.Context, request *SendEmailRequest) (*Email, error)
	DeleteEmail(ctx context.Context, id int64) error
}

type EmailRepository interface {
	List(ctx context.Context, referenceID string) ([]*Email, error)
	Create(ctx context.Context, email *Email) error
	Delete(ctx context.Context, id int64) error
}
