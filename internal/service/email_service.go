package service

import (
	"context"
	"fmt"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/pkg/logger"
	"github.com/salesdesk/salesdesk/pkg/mailer"
	"github.com/salesdesk/salesdesk/pkg/tracing"
)

type EmailService struct {
	repo     domain.EmailRepository
	mailer   mailer.Mailer
	renderer *mailer.Renderer
	logger   logger.Logger
	tracer   tracing.Tracer
}

func NewEmailService(repo domain.EmailRepository, m mailer.Mailer, logger logger.Logger) *EmailService {
	return &EmailService{
		repo:     repo,
		mailer:   m,
		renderer: mailer.NewRenderer(),
		logger:   logger,
		tracer:   tracing.GetTracer(),
	}
}

var _ domain.EmailService = (*EmailService)(nil)

func (s *EmailService) ListEmails(ctx context.Context, referenceID string) ([]*domain.Email, error) {
	emails, err := s.repo.List(ctx, referenceID)
	if err != nil {
		s.logger.WithField("referenceid", referenceID).Error(fmt.Sprintf("Failed to list emails: %v", err))
		return nil, fmt.Errorf("failed to list emails: %w", err)
	}
	return emails, nil
}

func (s *EmailService) SendEmail(ctx context.Context, request *domain.SendEmailRequest) (*domain.Email, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "EmailService", "SendEmail")
	defer span.End()

	if err := request.Validate(); err != nil {
		return nil, err
	}
	s.tracer.AddAttribute(ctx, "referenceid", request.ReferenceID)

	subject, err := s.renderer.Render(request.Subject, request.Data)
	if err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("subject: %v", err))
	}
	body, err := s.renderer.Render(request.Message, request.Data)
	if err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("message: %v", err))
	}
	if mailer.IsMJML(body) {
		if body, err = mailer.CompileMJML(ctx, body); err != nil {
			return nil, domain.NewValidationError(fmt.Sprintf("message: %v", err))
		}
	}

	message := mailer.Message{
		To:      request.Recipient,
		Subject: subject,
	}
	if mailer.IsHTML(body) {
		message.HTML = body
		text, err := mailer.HTMLToText(body)
		if err != nil {
			s.logger.WithField("referenceid", request.ReferenceID).Warn(fmt.Sprintf("Failed to build text alternative: %v", err))
		} else {
			message.Text = text
		}
	} else {
		message.Text = body
	}

	sendErr := s.mailer.Send(ctx, message)

	email := &domain.Email{
		ReferenceID: request.ReferenceID,
		Sender:      s.mailer.Sender(),
		Recipient:   request.Recipient,
		Subject:     subject,
		Message:     body,
		Status:      domain.EmailStatusSent,
	}
	if sendErr != nil {
		email.Status = domain.EmailStatusFailed
		s.tracer.MarkSpanError(ctx, sendErr)
		s.logger.WithField("recipient", request.Recipient).Error(fmt.Sprintf("Failed to send email: %v", sendErr))
	}

	if err := s.repo.Create(ctx, email); err != nil {
		s.tracer.MarkSpanError(ctx, err)
		s.logger.WithField("referenceid", request.ReferenceID).Error(fmt.Sprintf("Failed to store email: %v", err))
		return nil, fmt.Errorf("failed to store email: %w", err)
	}

	if sendErr != nil {
		return email, fmt.Errorf("failed to send email: %w", sendErr)
	}
	return email, nil
}

func (s *EmailService) DeleteEmail(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if isClientError(err) {
			return err
		}
		s.logger.WithField("email_id", id).Error(fmt.Sprintf("Failed to delete email: %v", err))
		return fmt.Errorf("failed to delete email: %w", err)
	}
	return nil
}
