package domain

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -destination mocks/mock_document_service.go -package mocks github.com/salesdesk/salesdesk/internal/domain DocumentService
//go:generate mockgen -destination mocks/mock_monitoring_repository.go -package mocks github.com/salesdesk/salesdesk/internal/domain MonitoringRepository
//go:generate mockgen -destination mocks/mock_tracking_repository.go -package mocks github.com/salesdesk/salesdesk/internal/domain TrackingRepository
//go:generate mockgen -destination mocks/mock_tasklog_repository.go -package mocks github.com/salesdesk/salesdesk/internal/domain TaskLogRepository
//go:generate mockgen -destination mocks/mock_category_repository.go -package mocks github.com/salesdesk/salesdesk/internal/domain CategoryRepository
//go:generate mockgen -destination mocks/mock_inventory_repository.go -package mocks github.com/salesdesk/salesdesk/internal/domain InventoryRepository

const (
	MonitoringActionLogin  = "login"
	MonitoringActionLogout = "logout"
)

// MonitoringEntry records a sign-in or sign-out with client details
type MonitoringEntry struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    string             `json:"userId" bson:"userId"`
	Email     string             `json:"email" bson:"email"`
	Action    string             `json:"action" bson:"action"`
	IP        string             `json:"ip" bson:"ip"`
	UserAgent string             `json:"userAgent" bson:"userAgent"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type MonitoringFilter struct {
	UserID string
	Range  DateRange

	CreatedFrom   *time.Time
	CreatedBefore *time.Time
}

func (f *MonitoringFilter) FromURLParams(queryParams url.Values) error {
	f.UserID = strings.TrimSpace(queryParams.Get("userid"))
	return f.Range.FromURLParams(queryParams)
}

// Tracking is a customer service ticket handled by a CSR
type Tracking struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ReferenceID  string             `json:"referenceid" bson:"ReferenceID" validate:"required"`
	TicketNumber string             `json:"ticketNumber" bson:"TicketNumber" validate:"required"`
	CompanyName  string             `json:"companyName" bson:"CompanyName" validate:"required"`
	Type         string             `json:"type" bson:"Type"`
	Status       string             `json:"status" bson:"Status"`
	Remarks      string             `json:"remarks" bson:"Remarks"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

const (
	TaskLogLogin  = "Login"
	TaskLogLogout = "Logout"
)

// TaskLog is an attendance entry
type TaskLog struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ReferenceID string             `json:"referenceid" bson:"ReferenceID" validate:"required"`
	Email       string             `json:"email" bson:"Email" validate:"required,email"`
	Status      string             `json:"status" bson:"Status" validate:"required,oneof=Login Logout"`
	Location    string             `json:"location" bson:"Location"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

type TaskLogFilter struct {
	ReferenceID string
	Range       DateRange

	CreatedFrom   *time.Time
	CreatedBefore *time.Time
}

func (f *TaskLogFilter) FromURLParams(queryParams url.Values) error {
	ref, err := requireReference(queryParams)
	if err != nil {
		return err
	}
	f.ReferenceID = ref
	return f.Range.FromURLParams(queryParams)
}

// Category groups inventory items
type Category struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	Description string             `json:"description" bson:"description"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

const (
	InventoryStatusInUse     = "In Use"
	InventoryStatusSpare     = "Spare"
	InventoryStatusDefective = "Defective"
	InventoryStatusDisposed  = "Disposed"
)

func IsValidInventoryStatus(status string) bool {
	return inSet(status, InventoryStatusInUse, InventoryStatusSpare, InventoryStatusDefective, InventoryStatusDisposed)
}

// InventoryItem is an IT asset or warehouse stock item
type InventoryItem struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	AssetTag     string             `json:"assetTag" bson:"assetTag" validate:"required"`
	Name         string             `json:"name" bson:"name" validate:"required"`
	Category     string             `json:"category" bson:"category" validate:"required"`
	Brand        string             `json:"brand" bson:"brand"`
	Model        string             `json:"model" bson:"model"`
	SerialNumber string             `json:"serialNumber" bson:"serialNumber"`
	Status       string             `json:"status" bson:"status" validate:"required,oneof='In Use' Spare Defective Disposed"`
	AssignedTo   string             `json:"assignedTo" bson:"assignedTo"`
	Location     string             `json:"location" bson:"location"`
	PurchaseDate *time.Time         `json:"purchaseDate,omitempty" bson:"purchaseDate,omitempty"`
	Price        float64            `json:"price" bson:"price" validate:"gte=0"`
	Remarks      string             `json:"remarks" bson:"remarks"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type InventoryFilter struct {
	Category   string
	Status     string
	AssignedTo string
}

func (f *InventoryFilter) FromURLParams(queryParams url.Values) error {
	f.Category = strings.TrimSpace(queryParams.Get("category"))
	f.Status = strings.TrimSpace(queryParams.Get("status"))
	f.AssignedTo = strings.TrimSpace(queryParams.Get("assignedto"))
	if f.Status != "" && !IsValidInventoryStatus(f.Status) {
		return NewValidationError(fmt.Sprintf("invalid status: %s", f.Status))
	}
	return nil
}

type BulkInventoryStatusRequest struct {
	IDs    ObjectIDList `json:"ids"`
	Status string       `json:"status"`
}

func (r *BulkInventoryStatusRequest) Validate() ([]primitive.ObjectID, error) {
	ids, err := r.IDs.Validate()
	if err != nil {
		return nil, err
	}
	if r.Status == "" {
		return nil, NewValidationError("status is required")
	}
	if !IsValidInventoryStatus(r.Status) {
		return nil, NewValidationError(fmt.Sprintf("invalid status: %s", r.Status))
	}
	return ids, nil
}

// ValidateDocument checks a document payload; updates additionally require an id
func ValidateDocument(id primitive.ObjectID, payload interface{}, update bool) error {
	if update && id.IsZero() {
		return NewValidationError("id is required")
	}
	return ValidateStruct(payload)
}

// DocumentService covers the document-store collections other than users
type DocumentService interface {
	ListMonitoring(ctx context.Context, filter MonitoringFilter) ([]*MonitoringEntry, error)

	ListTracking(ctx context.Context, referenceID string) ([]*Tracking, error)
	CreateTracking(ctx context.Context, tracking *Tracking) error
	UpdateTracking(ctx context.Context, tracking *Tracking) error
	DeleteTracking(ctx context.Context, id primitive.ObjectID) error

	ListTaskLogs(ctx context.Context, filter TaskLogFilter) ([]*TaskLog, error)
	CreateTaskLog(ctx context.Context, entry *TaskLog) error

	ListCategories(ctx context.Context) ([]*Category, error)
	CreateCategory(ctx context.Context, category *Category) error
	UpdateCategory(ctx context.Context, category *Category) error
	DeleteCategory(ctx context.Context, id primitive.ObjectID) error

	ListInventory(ctx context.Context, filter InventoryFilter) ([]*InventoryItem, error)
	GetInventoryItem(ctx context.Context, id primitive.ObjectID) (*InventoryItem, error)
	CreateInventoryItem(ctx context.Context, item *InventoryItem) error
	UpdateInventoryItem(ctx context.Context, item *InventoryItem) error
	BulkUpdateInventoryStatus(ctx context.Context, ids []primitive.ObjectID, status string) (int64, error)
	DeleteInventoryItem(ctx context.Context, id primitive.ObjectID) error
}

type MonitoringRepository interface {
	Insert(ctx context.Context, entry *MonitoringEntry) error
	List(ctx context.Context, filter MonitoringFilter) ([]*MonitoringEntry, error)
}

type TrackingRepository interface {
	List(ctx context.Context, referenceID string) ([]*Tracking, error)
	Create(ctx context.Context, tracking *Tracking) error
	Update(ctx context.Context, tracking *Tracking) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type TaskLogRepository interface {
	List(ctx context.Context, filter TaskLogFilter) ([]*TaskLog, error)
	Create(ctx context.Context, entry *TaskLog) error
}

type CategoryRepository interface {
	List(ctx context.Context) ([]*Category, error)
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type InventoryRepository interface {
	List(ctx context.Context, filter InventoryFilter) ([]*InventoryItem, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*InventoryItem, error)
	Create(ctx context.Context, item *InventoryItem) error
	Update(ctx context.Context, item *InventoryItem) error
	BulkUpdateStatus(ctx context.Context, ids []primitive.ObjectID, status string) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
