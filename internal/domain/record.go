package domain

import (
	"context"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_record_service.go -package mocks github.com/salesdesk/salesdesk/internal/domain RecordService
//go:generate mockgen -destination mocks/mock_record_repository.go -package mocks github.com/salesdesk/salesdesk/internal/domain RecordRepository

// Record is a row of a table described by a RecordSchema
type Record interface {
	GetID() int64
	SetID(id int64)
	// Reference returns the owning reference id, empty for global records
	Reference() string
	// Values maps every writable column of the schema to its value
	Values() map[string]interface{}
	// ScanTargets returns pointers for id, the schema columns in order, date_created and date_updated
	ScanTargets() []interface{}
}

// RecordSchema describes a table served by the generic record CRUD
type RecordSchema struct {
	// Kind is the route prefix, e.g. "notes"
	Kind string
	// Entity names the record in error messages
	Entity string
	Table  string
	// Columns are the writable columns, in scan order
	Columns []string
	// Scoped records are listed by referenceid
	Scoped bool
	New    func() Record
}

// SelectColumns returns the full select list matching ScanTargets
func (s RecordSchema) SelectColumns() []string {
	cols := make([]string, 0, len(s.Columns)+3)
	cols = append(cols, "id")
	cols = append(cols, s.Columns...)
	return append(cols, "date_created", "date_updated")
}

// checker is implemented by records with rules beyond their validate tags
type checker interface {
	Check() error
}

// ValidateRecord runs the record's validate tags and extra checks.
// Updates additionally require a positive id.
func ValidateRecord(schema RecordSchema, record Record, update bool) error {
	if update && record.GetID() <= 0 {
		return NewValidationError("id is required")
	}
	if schema.Scoped && strings.TrimSpace(record.Reference()) == "" {
		return NewValidationError("referenceid is required")
	}
	if err := ValidateStruct(record); err != nil {
		return err
	}
	if c, ok := record.(checker); ok {
		return c.Check()
	}
	return nil
}

type Note struct {
	ID          int64     `json:"id"`
	ReferenceID string    `json:"referenceid" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	DateCreated time.Time `json:"date_created"`
	DateUpdated time.Time `json:"date_updated"`
}

func (n *Note) GetID() int64      { return n.ID }
func (n *Note) SetID(id int64)    { n.ID = id }
func (n *Note) Reference() string { return n.ReferenceID }

func (n *Note) Values() map[string]interface{} {
	return map[string]interface{}{
		"referenceid": n.ReferenceID,
		"title":       n.Title,
		"description": n.Description,
	}
}

func (n *Note) ScanTargets() []interface{} {
	return []interface{}{&n.ID, &n.ReferenceID, &n.Title, &n.Description, &n.DateCreated, &n.DateUpdated}
}

type Link struct {
	ID          int64     `json:"id"`
	ReferenceID string    `json:"referenceid" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	URL         string    `json:"url" validate:"required"`
	DateCreated time.Time `json:"date_created"`
	DateUpdated time.Time `json:"date_updated"`
}

func (l *Link) GetID() int64      { return l.ID }
func (l *Link) SetID(id int64)    { l.ID = id }
func (l *Link) Reference() string { return l.ReferenceID }

func (l *Link) Values() map[string]interface{} {
	return map[string]interface{}{
		"referenceid": l.ReferenceID,
		"title":       l.Title,
		"url":         l.URL,
	}
}

func (l *Link) ScanTargets() []interface{} {
	return []interface{}{&l.ID, &l.ReferenceID, &l.Title, &l.URL, &l.DateCreated, &l.DateUpdated}
}

func (l *Link) Check() error {
	if !govalidator.IsRequestURL(l.URL) {
		return NewValidationError("url is not a valid URL")
	}
	return nil
}

type Tutorial struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title" validate:"required"`
	Link        string    `json:"link" validate:"required"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	DateCreated time.Time `json:"date_created"`
	DateUpdated time.Time `json:"date_updated"`
}

func (t *Tutorial) GetID() int64      { return t.ID }
func (t *Tutorial) SetID(id int64)    { t.ID = id }
func (t *Tutorial) Reference() string { return "" }

func (t *Tutorial) Values() map[string]interface{} {
	return map[string]interface{}{
		"title":       t.Title,
		"link":        t.Link,
		"description": t.Description,
		"category":    t.Category,
	}
}

func (t *Tutorial) ScanTargets() []interface{} {
	return []interface{}{&t.ID, &t.Title, &t.Link, &t.Description, &t.Category, &t.DateCreated, &t.DateUpdated}
}

func (t *Tutorial) Check() error {
	if !govalidator.IsRequestURL(t.Link) {
		return NewValidationError("link is not a valid URL")
	}
	return nil
}

type FAQ struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	DateCreated time.Time `json:"date_created"`
	DateUpdated time.Time `json:"date_updated"`
}

func (f *FAQ) GetID() int64      { return f.ID }
func (f *FAQ) SetID(id int64)    { f.ID = id }
func (f *FAQ) Reference() string { return "" }

func (f *FAQ) Values() map[string]interface{} {
	return map[string]interface{}{
		"title":       f.Title,
		"description": f.Description,
	}
}

func (f *FAQ) ScanTargets() []interface{} {
	return []interface{}{&f.ID, &f.Title, &f.Description, &f.DateCreated, &f.DateUpdated}
}

var (
	NoteSchema = RecordSchema{
		Kind:    "notes",
		Entity:  "note",
		Table:   "notes",
		Columns: []string{"referenceid", "title", "description"},
		Scoped:  true,
		New:     func() Record { return &Note{} },
	}
	LinkSchema = RecordSchema{
		Kind:    "links",
		Entity:  "link",
		Table:   "links",
		Columns: []string{"referenceid", "title", "url"},
		Scoped:  true,
		New:     func() Record { return &Link{} },
	}
	TutorialSchema = RecordSchema{
		Kind:    "tutorials",
		Entity:  "tutorial",
		Table:   "tutorials",
		Columns: []string{"title", "link", "description", "category"},
		New:     func() Record { return &Tutorial{} },
	}
	FAQSchema = RecordSchema{
		Kind:    "faqs",
		Entity:  "faq",
		Table:   "faqs",
		Columns: []string{"title", "description"},
		New:     func() Record { return &FAQ{} },
	}
)

// RecordSchemas lists every table served by the generic record CRUD
func RecordSchemas() []RecordSchema {
	return []RecordSchema{NoteSchema, LinkSchema, TutorialSchema, FAQSchema}
}

type RecordService interface {
	ListRecords(ctx context.Context, schema RecordSchema, referenceID string) ([]Record, error)
	CreateRecord(ctx context.Context, schema RecordSchema, record Record) error
	UpdateRecord(ctx context.Context, schema RecordSchema, record Record) error
	DeleteRecord(ctx context.Context, schema RecordSchema, id int64) error
}

type RecordRepository interface {
	List(ctx context.Context, schema RecordSchema, referenceID string) ([]Record, error)
	Create(ctx context.Context, schema RecordSchema, record Record) error
	Update(ctx context.Context, schema RecordSchema, record Record) error
	Delete(ctx context.Context, schema RecordSchema, id int64) error
}
