package service

import (
	"context"
	"fmt"
	"time"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

type InquiryService struct {
	repo     domain.InquiryRepository
	location *time.Location
	logger   logger.Logger
}

func NewInquiryService(repo domain.InquiryRepository, location *time.Location, logger logger.Logger) *InquiryService {
	return &InquiryService{
		repo:     repo,
		location: location,
		logger:   logger,
	}
}

func (s *InquiryService) ListInquiries(ctx context.Context, filter domain.InquiryFilter) ([]*domain.Inquiry, error) {
	filter.CreatedFrom, filter.CreatedBefore = filter.Range.Bounds(s.location)

	inquiries, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.WithField("referenceid", filter.ReferenceID).Error(fmt.Sprintf("Failed to list inquiries: %v", err))
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	return inquiries, nil
}

func (s *InquiryService) CreateInquiry(ctx context.Context, inquiry *domain.Inquiry) error {
	if inquiry.Status == "" {
		inquiry.Status = domain.InquiryStatusPending
	}
	if err := inquiry.Validate(); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, inquiry); err != nil {
		s.logger.WithField("referenceid", inquiry.ReferenceID).Error(fmt.Sprintf("Failed to create inquiry: %v", err))
		return fmt.Errorf("failed to create inquiry: %w", err)
	}
	return nil
}

func (s *InquiryService) UpdateInquiry(ctx context.Context, inquiry *domain.Inquiry) error {
	if inquiry.ID <= 0 {
		return domain.NewValidationError("id is required")
	}

	if err := s.repo.Update(ctx, inquiry); err != nil {
		if isClientError(err) {
			return err
		}
		s.logger.WithField("inquiry_id", inquiry.ID).Error(fmt.Sprintf("Failed to update inquiry: %v", err))
		return fmt.Errorf("failed to update inquiry: %w", err)
	}
	return nil
}

func (s *InquiryService) UpdateInquiryStatus(ctx context.Context, id int64, status string) error {
	if !domain.IsValidInquiryStatus(status) {
		return domain.NewValidationError(fmt.Sprintf("invalid status: %s", status))
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if isClientError(err) {
			return err
		}
		s.logger.WithField("inquiry_id", id).Error(fmt.Sprintf("Failed to update inquiry status: %v", err))
		return fmt.Errorf("failed to update inquiry status: %w", err)
	}
	return nil
}

func (s *InquiryService) DeleteInquiry(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if isClientError(err) {
			return err
		}
		s.logger.WithField("inquiry_id", id).Error(fmt.Sprintf("Failed to delete inquiry: %v", err))
		return fmt.Errorf("failed to delete inquiry: %w", err)
	}
	return nil
}
