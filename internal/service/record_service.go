package service

import (
	"context"
	"fmt"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

// RecordService serves every table described by a domain.RecordSchema
type RecordService struct {
	repo   domain.RecordRepository
	logger logger.Logger
}

func NewRecordService(repo domain.RecordRepository, logger logger.Logger) *RecordService {
	return &RecordService{
		repo:   repo,
		logger: logger,
	}
}

func (s *RecordService) ListRecords(ctx context.Context, schema domain.RecordSchema, referenceID string) ([]domain.Record, error) {
	if schema.Scoped && referenceID == "" {
		return nil, domain.NewValidationError("referenceid is required")
	}

	records, err := s.repo.List(ctx, schema, referenceID)
	if err != nil {
		s.logger.WithFields(map[string]interface{}{
			"table":       schema.Table,
			"referenceid": referenceID,
		}).Error(fmt.Sprintf("Failed to list %s: %v", schema.Kind, err))
		return nil, fmt.Errorf("failed to list %s: %w", schema.Kind, err)
	}
	return records, nil
}

func (s *RecordService) CreateRecord(ctx context.Context, schema domain.RecordSchema, record domain.Record) error {
	if err := domain.ValidateRecord(schema, record, false); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, schema, record); err != nil {
		s.logger.WithField("table", schema.Table).Error(fmt.Sprintf("Failed to create %s: %v", schema.Entity, err))
		return fmt.Errorf("failed to create %s: %w", schema.Entity, err)
	}
	return nil
}

func (s *RecordService) UpdateRecord(ctx context.Context, schema domain.RecordSchema, record domain.Record) error {
	if err := domain.ValidateRecord(schema, record, true); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, schema, record); err != nil {
		if isClientError(err) {
			return err
		}
		s.logger.WithFields(map[string]interface{}{
			"table": schema.Table,
			"id":    record.GetID(),
		}).Error(fmt.Sprintf("Failed to update %s: %v", schema.Entity, err))
		return fmt.Errorf("failed to update %s: %w", schema.Entity, err)
	}
	return nil
}

func (s *RecordService) DeleteRecord(ctx context.Context, schema domain.RecordSchema, id int64) error {
	if err := s.repo.Delete(ctx, schema, id); err != nil {
		if isClientError(err) {
			return err
		}
		s.logger.WithFields(map[string]interface{}{
			"table": schema.Table,
			"id":    id,
		}).Error(fmt.Sprintf("Failed to delete %s: %v", schema.Entity, err))
		return fmt.Errorf("failed to delete %s: %w", schema.Entity, err)
	}
	return nil
}
