package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

// DocumentService covers the monitoring, Tracking, TaskLog, Categories and Inventory collections
type DocumentService struct {
	monitoring domain.MonitoringRepository
	tracking   domain.TrackingRepository
	taskLogs   domain.TaskLogRepository
	categories domain.CategoryRepository
	inventory  domain.InventoryRepository
	location   *time.Location
	logger     logger.Logger
}

type DocumentServiceConfig struct {
	Monitoring domain.MonitoringRepository
	Tracking   domain.TrackingRepository
	TaskLogs   domain.TaskLogRepository
	Categories domain.CategoryRepository
	Inventory  domain.InventoryRepository
	Location   *time.Location
	Logger     logger.Logger
}

func NewDocumentService(cfg DocumentServiceConfig) *DocumentService {
	return &DocumentService{
		monitoring: cfg.Monitoring,
		tracking:   cfg.Tracking,
		taskLogs:   cfg.TaskLogs,
		categories: cfg.Categories,
		inventory:  cfg.Inventory,
		location:   cfg.Location,
		logger:     cfg.Logger,
	}
}

// wrap logs unexpected failures and passes client errors through
func (s *DocumentService) wrap(err error, action string, id interface{}) error {
	if isClientError(err) {
		return err
	}
	log := s.logger
	if id != nil {
		log = log.WithField("id", id)
	}
	log.Error(fmt.Sprintf("Failed to %s: %v", action, err))
	return fmt.Errorf("failed to %s: %w", action, err)
}

func (s *DocumentService) ListMonitoring(ctx context.Context, filter domain.MonitoringFilter) ([]*domain.MonitoringEntry, error) {
	filter.CreatedFrom, filter.CreatedBefore = filter.Range.Bounds(s.location)

	entries, err := s.monitoring.List(ctx, filter)
	if err != nil {
		return nil, s.wrap(err, "list monitoring entries", nil)
	}
	return entries, nil
}

func (s *DocumentService) ListTracking(ctx context.Context, referenceID string) ([]*domain.Tracking, error) {
	if referenceID == "" {
		return nil, domain.NewValidationError("referenceid is required")
	}
	items, err := s.tracking.List(ctx, referenceID)
	if err != nil {
		return nil, s.wrap(err, "list tracking", nil)
	}
	return items, nil
}

func (s *DocumentService) CreateTracking(ctx context.Context, tracking *domain.Tracking) error {
	if err := domain.ValidateDocument(tracking.ID, tracking, false); err != nil {
		return err
	}
	if err := s.tracking.Create(ctx, tracking); err != nil {
		return s.wrap(err, "create tracking", nil)
	}
	return nil
}

func (s *DocumentService) UpdateTracking(ctx context.Context, tracking *domain.Tracking) error {
	if err := domain.ValidateDocument(tracking.ID, tracking, true); err != nil {
		return err
	}
	if err := s.tracking.Update(ctx, tracking); err != nil {
		return s.wrap(err, "update tracking", tracking.ID.Hex())
	}
	return nil
}

func (s *DocumentService) DeleteTracking(ctx context.Context, id primitive.ObjectID) error {
	if err := s.tracking.Delete(ctx, id); err != nil {
		return s.wrap(err, "delete tracking", id.Hex())
	}
	return nil
}

func (s *DocumentService) ListTaskLogs(ctx context.Context, filter domain.TaskLogFilter) ([]*domain.TaskLog, error) {
	if filter.ReferenceID == "" {
		return nil, domain.NewValidationError("referenceid is required")
	}
	filter.CreatedFrom, filter.CreatedBefore = filter.Range.Bounds(s.location)

	logs, err := s.taskLogs.List(ctx, filter)
	if err != nil {
		return nil, s.wrap(err, "list task logs", nil)
	}
	return logs, nil
}

func (s *DocumentService) CreateTaskLog(ctx context.Context, entry *domain.TaskLog) error {
	if err := domain.ValidateDocument(entry.ID, entry, false); err != nil {
		return err
	}
	if err := s.taskLogs.Create(ctx, entry); err != nil {
		return s.wrap(err, "create task log", nil)
	}
	return nil
}

func (s *DocumentService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, s.wrap(err, "list categories", nil)
	}
	return categories, nil
}

func (s *DocumentService) CreateCategory(ctx context.Context, category *domain.Category) error {
	if err := domain.ValidateDocument(category.ID, category, false); err != nil {
		return err
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return s.wrap(err, "create category", nil)
	}
	return nil
}

func (s *DocumentService) UpdateCategory(ctx context.Context, category *domain.Category) error {
	if err := domain.ValidateDocument(category.ID, category, true); err != nil {
		return err
	}
	if err := s.categories.Update(ctx, category); err != nil {
		return s.wrap(err, "update category", category.ID.Hex())
	}
	return nil
}

func (s *DocumentService) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return s.wrap(err, "delete category", id.Hex())
	}
	return nil
}

func (s *DocumentService) ListInventory(ctx context.Context, filter domain.InventoryFilter) ([]*domain.InventoryItem, error) {
	items, err := s.inventory.List(ctx, filter)
	if err != nil {
		return nil, s.wrap(err, "list inventory", nil)
	}
	return items, nil
}

func (s *DocumentService) GetInventoryItem(ctx context.Context, id primitive.ObjectID) (*domain.InventoryItem, error) {
	item, err := s.inventory.GetByID(ctx, id)
	if err != nil {
		return nil, s.wrap(err, "get inventory item", id.Hex())
	}
	return item, nil
}

func (s *DocumentService) CreateInventoryItem(ctx context.Context, item *domain.InventoryItem) error {
	if item.Status == "" {
		item.Status = domain.InventoryStatusSpare
	}
	if err := domain.ValidateDocument(item.ID, item, false); err != nil {
		return err
	}
	if err := s.inventory.Create(ctx, item); err != nil {
		return s.wrap(err, "create inventory item", nil)
	}
	return nil
}

func (s *DocumentService) UpdateInventoryItem(ctx context.Context, item *domain.InventoryItem) error {
	if err := domain.ValidateDocument(item.ID, item, true); err != nil {
		return err
	}
	if err := s.inventory.Update(ctx, item); err != nil {
		return s.wrap(err, "update inventory item", item.ID.Hex())
	}
	return nil
}

func (s *DocumentService) BulkUpdateInventoryStatus(ctx context.Context, ids []primitive.ObjectID, status string) (int64, error) {
	if len(ids) == 0 {
		return 0, domain.NewValidationError("ids is required")
	}
	if !domain.IsValidInventoryStatus(status) {
		return 0, domain.NewValidationError(fmt.Sprintf("invalid status: %s", status))
	}

	updated, err := s.inventory.BulkUpdateStatus(ctx, ids, status)
	if err != nil {
		return 0, s.wrap(err, "bulk update inventory status", nil)
	}
	return updated, nil
}

func (s *DocumentService) DeleteInventoryItem(ctx context.Context, id primitive.ObjectID) error {
	if err := s.inventory.Delete(ctx, id); err != nil {
		return s.wrap(err, "delete inventory item", id.Hex())
	}
	return nil
}
