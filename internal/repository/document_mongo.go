package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/salesdesk/salesdesk/internal/domain"
)

type monitoringRepository struct {
	store documentStore[domain.MonitoringEntry]
}

// NewMonitoringRepository creates a new MongoDB sign-in monitoring repository
func NewMonitoringRepository(db *mongo.Database) domain.MonitoringRepository {
	return &monitoringRepository{store: newDocumentStore[domain.MonitoringEntry](db, CollectionMonitoring, "monitoring entry")}
}

func (r *monitoringRepository) Insert(ctx context.Context, entry *domain.MonitoringEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	id, err := r.store.insert(ctx, entry)
	if err != nil {
		return conflictOr(err, "monitoring entry", "id", "insert")
	}
	entry.ID = id
	return nil
}

func (r *monitoringRepository) List(ctx context.Context, filter domain.MonitoringFilter) ([]*domain.MonitoringEntry, error) {
	query := bson.M{}
	if filter.UserID != "" {
		query["userId"] = filter.UserID
	}
	return r.store.find(ctx, createdAtBetween(query, filter.CreatedFrom, filter.CreatedBefore), newestFirst())
}

type trackingRepository struct {
	store documentStore[domain.Tracking]
}

// NewTrackingRepository creates a new MongoDB ticket tracking repository
func NewTrackingRepository(db *mongo.Database) domain.TrackingRepository {
	return &trackingRepository{store: newDocumentStore[domain.Tracking](db, CollectionTracking, "tracking")}
}

func (r *trackingRepository) List(ctx context.Context, referenceID string) ([]*domain.Tracking, error) {
	return r.store.find(ctx, bson.M{"ReferenceID": referenceID}, newestFirst())
}

func (r *trackingRepository) Create(ctx context.Context, tracking *domain.Tracking) error {
	now := time.Now().UTC()
	tracking.CreatedAt = now
	tracking.UpdatedAt = now

	id, err := r.store.insert(ctx, tracking)
	if err != nil {
		return conflictOr(err, "tracking", "ticketNumber", "create")
	}
	tracking.ID = id
	return nil
}

func (r *trackingRepository) Update(ctx context.Context, tracking *domain.Tracking) error {
	tracking.UpdatedAt = time.Now().UTC()

	err := r.store.setByID(ctx, tracking.ID, bson.M{
		"ReferenceID":  tracking.ReferenceID,
		"TicketNumber": tracking.TicketNumber,
		"CompanyName":  tracking.CompanyName,
		"Type":         tracking.Type,
		"Status":       tracking.Status,
		"Remarks":      tracking.Remarks,
		"updatedAt":    tracking.UpdatedAt,
	})
	if err != nil {
		return conflictOr(err, "tracking", "ticketNumber", "update")
	}
	return nil
}

func (r *trackingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.store.deleteByID(ctx, id)
}

type taskLogRepository struct {
	store documentStore[domain.TaskLog]
}

// NewTaskLogRepository creates a new MongoDB attendance repository
func NewTaskLogRepository(db *mongo.Database) domain.TaskLogRepository {
	return &taskLogRepository{store: newDocumentStore[domain.TaskLog](db, CollectionTaskLog, "task log")}
}

func (r *taskLogRepository) List(ctx context.Context, filter domain.TaskLogFilter) ([]*domain.TaskLog, error) {
	query := bson.M{"ReferenceID": filter.ReferenceID}
	return r.store.find(ctx, createdAtBetween(query, filter.CreatedFrom, filter.CreatedBefore), newestFirst())
}

func (r *taskLogRepository) Create(ctx context.Context, entry *domain.TaskLog) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	id, err := r.store.insert(ctx, entry)
	if err != nil {
		return conflictOr(err, "task log", "id", "create")
	}
	entry.ID = id
	return nil
}

type categoryRepository struct {
	store documentStore[domain.Category]
}

// NewCategoryRepository creates a new MongoDB category repository
func NewCategoryRepository(db *mongo.Database) domain.CategoryRepository {
	return &categoryRepository{store: newDocumentStore[domain.Category](db, CollectionCategories, "category")}
}

func (r *categoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	return r.store.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	now := time.Now().UTC()
	category.CreatedAt = now
	category.UpdatedAt = now

	id, err := r.store.insert(ctx, category)
	if err != nil {
		return conflictOr(err, "category", "name", "create")
	}
	category.ID = id
	return nil
}

func (r *categoryRepository) Update(ctx context.Context, category *domain.Category) error {
	category.UpdatedAt = time.Now().UTC()

	err := r.store.setByID(ctx, category.ID, bson.M{
		"name":        category.Name,
		"description": category.Description,
		"updatedAt":   category.UpdatedAt,
	})
	if err != nil {
		return conflictOr(err, "category", "name", "update")
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.store.deleteByID(ctx, id)
}

type inventoryRepository struct {
	store documentStore[domain.InventoryItem]
}

// NewInventoryRepository creates a new MongoDB inventory repository
func NewInventoryRepository(db *mongo.Database) domain.InventoryRepository {
	return &inventoryRepository{store: newDocumentStore[domain.InventoryItem](db, CollectionInventory, "inventory item")}
}

func (r *inventoryRepository) List(ctx context.Context, filter domain.InventoryFilter) ([]*domain.InventoryItem, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.AssignedTo != "" {
		query["assignedTo"] = filter.AssignedTo
	}
	return r.store.find(ctx, query, options.Find().SetSort(bson.D{{Key: "assetTag", Value: 1}}))
}

func (r *inventoryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.InventoryItem, error) {
	return r.store.findByID(ctx, id)
}

func (r *inventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	id, err := r.store.insert(ctx, item)
	if err != nil {
		return conflictOr(err, "inventory item", "assetTag", "create")
	}
	item.ID = id
	return nil
}

func (r *inventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	item.UpdatedAt = time.Now().UTC()

	err := r.store.setByID(ctx, item.ID, bson.M{
		"assetTag":     item.AssetTag,
		"name":         item.Name,
		"category":     item.Category,
		"brand":        item.Brand,
		"model":        item.Model,
		"serialNumber": item.SerialNumber,
		"status":       item.Status,
		"assignedTo":   item.AssignedTo,
		"location":     item.Location,
		"purchaseDate": item.PurchaseDate,
		"price":        item.Price,
		"remarks":      item.Remarks,
		"updatedAt":    item.UpdatedAt,
	})
	if err != nil {
		return conflictOr(err, "inventory item", "assetTag", "update")
	}
	return nil
}

// BulkUpdateStatus sets status on every item in ids with one update and returns the matched count
func (r *inventoryRepository) BulkUpdateStatus(ctx context.Context, ids []primitive.ObjectID, status string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result, err := r.store.coll.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return 0, conflictOr(err, "inventory item", "status", "bulk update")
	}
	return result.MatchedCount, nil
}

func (r *inventoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.store.deleteByID(ctx, id)
}
