package service

import (
	"context"
	"fmt"
	"time"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

type ProgressService struct {
	repo     domain.ProgressRepository
	location *time.Location
	logger   logger.Logger

	// now is replaced in tests
	now func() time.Time
}

func NewProgressService(repo domain.ProgressRepository, location *time.Location, logger logger.Logger) *ProgressService {
	return &ProgressService{
		repo:     repo,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *ProgressService) ListProgress(ctx context.Context, filter domain.ProgressFilter) ([]*domain.Progress, error) {
	if filter.ReferenceID == "" {
		return nil, domain.NewValidationError("referenceid is required")
	}
	filter.CreatedFrom, filter.CreatedBefore = filter.Range.Bounds(s.location)

	return s.list(ctx, filter)
}

func (s *ProgressService) ListToday(ctx context.Context, referenceID string) ([]*domain.Progress, error) {
	if referenceID == "" {
		return nil, domain.NewValidationError("referenceid is required")
	}
	start, end := domain.DayBounds(s.now(), s.location)

	return s.list(ctx, domain.ProgressFilter{
		ReferenceID:   referenceID,
		CreatedFrom:   &start,
		CreatedBefore: &end,
	})
}

func (s *ProgressService) list(ctx context.Context, filter domain.ProgressFilter) ([]*domain.Progress, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.WithFields(map[string]interface{}{
			"referenceid": filter.ReferenceID,
			"manager":     filter.Manager,
			"tsm":         filter.TSM,
		}).Error(fmt.Sprintf("Failed to list activities: %v", err))
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return rows, nil
}

func (s *ProgressService) CreateProgress(ctx context.Context, progress *domain.Progress) error {
	if err := s.repo.Create(ctx, progress); err != nil {
		s.logger.WithField("referenceid", progress.ReferenceID).Error(fmt.Sprintf("Failed to create activity: %v", err))
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

func (s *ProgressService) UpdateProgress(ctx context.Context, progress *domain.Progress) error {
	if progress.ID <= 0 {
		return domain.NewValidationError("id is required")
	}

	if err := s.repo.Update(ctx, progress); err != nil {
		if isClientError(err) {
			return err
		}
		s.logger.WithField("progress_id", progress.ID).Error(fmt.Sprintf("Failed to update activity: %v", err))
		return fmt.Errorf("failed to update activity: %w", err)
	}
	return nil
}

func (s *ProgressService) DeleteProgress(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if isClientError(err) {
			return err
		}
		s.logger.WithField("progress_id", id).Error(fmt.Sprintf("Failed to delete activity: %v", err))
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return nil
}

func (s *ProgressService) SalesByAgent(ctx context.Context, filter domain.ProgressFilter) ([]domain.GroupTotal, error) {
	if filter.Manager == "" && filter.TSM == "" {
		return nil, domain.NewValidationError("manager or tsm is required")
	}
	filter.CreatedFrom, filter.CreatedBefore = filter.Range.Bounds(s.location)

	rows, err := s.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	return domain.SumByGroup(rows, (*domain.Progress).AgentKey, func(p *domain.Progress) float64 {
		return p.ActualSales
	}), nil
}
