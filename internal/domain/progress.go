package domain

import (
	"context"
	"net/url"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_progress_service.go -package mocks github.com/salesdesk/salesdesk/internal/domain ProgressService
//go:generate mockgen -destination mocks/mock_progress_repository.go -package mocks github.com/salesdesk/salesdesk/internal/domain ProgressRepository

// Progress is one logged sales activity (call, quotation, sales order, ...)
type Progress struct {
	ID              int64      `json:"id"`
	ReferenceID     string     `json:"referenceid"`
	Manager         string     `json:"manager"`
	TSM             string     `json:"tsm"`
	AgentName       string     `json:"agentname"`
	CompanyName     string     `json:"companyname"`
	ContactPerson   string     `json:"contactperson"`
	TypeClient      string     `json:"typeclient"`
	TypeActivity    string     `json:"typeactivity"`
	CallStatus      string     `json:"callstatus"`
	TypeCall        string     `json:"typecall"`
	QuotationNumber string     `json:"quotationnumber"`
	QuotationAmount float64    `json:"quotationamount"`
	SONumber        string     `json:"sonumber"`
	SOAmount        float64    `json:"soamount"`
	ActualSales     float64    `json:"actualsales"`
	Remarks         string     `json:"remarks"`
	Status          string     `json:"status"`
	StartDate       *time.Time `json:"startdate,omitempty"`
	EndDate         *time.Time `json:"enddate,omitempty"`
	DateCreated     time.Time  `json:"date_created"`
}

// ProgressColumns is the select list matching ScanProgress
const ProgressColumns = "id, referenceid, manager, tsm, agentname, companyname, contactperson, typeclient, typeactivity, callstatus, typecall, quotationnumber, quotationamount, sonumber, soamount, actualsales, remarks, status, startdate, enddate, date_created"

// ScanProgress scans an activity row from the database
func ScanProgress(scanner interface {
	Scan(dest ...interface{}) error
}) (*Progress, error) {
	var p Progress
	if err := scanner.Scan(
		&p.ID,
		&p.ReferenceID,
		&p.Manager,
		&p.TSM,
		&p.AgentName,
		&p.CompanyName,
		&p.ContactPerson,
		&p.TypeClient,
		&p.TypeActivity,
		&p.CallStatus,
		&p.TypeCall,
		&p.QuotationNumber,
		&p.QuotationAmount,
		&p.SONumber,
		&p.SOAmount,
		&p.ActualSales,
		&p.Remarks,
		&p.Status,
		&p.StartDate,
		&p.EndDate,
		&p.DateCreated,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// AgentKey groups activities by agent name, falling back to the reference id
func (p *Progress) AgentKey() string {
	if name := strings.TrimSpace(p.AgentName); name != "" {
		return name
	}
	return p.ReferenceID
}

// ProgressFilter narrows an activity listing. At least one of ReferenceID, Manager or TSM is set.
type ProgressFilter struct {
	ReferenceID  string
	Manager      string
	TSM          string
	TypeActivity string
	Range        DateRange

	CreatedFrom   *time.Time
	CreatedBefore *time.Time
}

// ProgressTotals is the aggregate of a reference's activities
type ProgressTotals struct {
	Activities      int64   `json:"activities"`
	QuotationAmount float64 `json:"quotationamount"`
	SOAmount        float64 `json:"soamount"`
	ActualSales     float64 `json:"actualsales"`
}

// Request types

type ListProgressRequest struct {
	ReferenceID  string
	TypeActivity string
	Range        DateRange
}

func (r *ListProgressRequest) FromURLParams(queryParams url.Values) error {
	ref, err := requireReference(queryParams)
	if err != nil {
		return err
	}
	r.ReferenceID = ref
	r.TypeActivity = strings.TrimSpace(queryParams.Get("typeactivity"))
	return r.Range.FromURLParams(queryParams)
}

func (r *ListProgressRequest) ToFilter() ProgressFilter {
	return ProgressFilter{
		ReferenceID:  r.ReferenceID,
		TypeActivity: r.TypeActivity,
		Range:        r.Range,
	}
}

type SalesByAgentRequest struct {
	Manager string
	TSM     string
	Range   DateRange
}

func (r *SalesByAgentRequest) FromURLParams(queryParams url.Values) error {
	r.Manager = strings.TrimSpace(queryParams.Get("manager"))
	r.TSM = strings.TrimSpace(queryParams.Get("tsm"))
	if r.Manager == "" && r.TSM == "" {
		return NewValidationError("manager or tsm is required")
	}
	return r.Range.FromURLParams(queryParams)
}

func (r *SalesByAgentRequest) ToFilter() ProgressFilter {
	return ProgressFilter{
		Manager: r.Manager,
		TSM:     r.TSM,
		Range:   r.Range,
	}
}

type CreateProgressRequest struct {
	ReferenceID     string     `json:"referenceid"`
	Manager         string     `json:"manager"`
	TSM             string     `json:"tsm"`
	AgentName       string     `json:"agentname"`
	CompanyName     string     `json:"companyname"`
	ContactPerson   string     `json:"contactperson"`
	TypeClient      string     `json:"typeclient"`
	TypeActivity    string     `json:"typeactivity"`
	CallStatus      string     `json:"callstatus"`
	TypeCall        string     `json:"typecall"`
	QuotationNumber string     `json:"quotationnumber"`
	QuotationAmount float64    `json:"quotationamount"`
	SONumber        string     `json:"sonumber"`
	SOAmount        float64    `json:"soamount"`
	ActualSales     float64    `json:"actualsales"`
	Remarks         string     `json:"remarks"`
	Status          string     `json:"status"`
	StartDate       *time.Time `json:"startdate,omitempty"`
	EndDate         *time.Time `json:"enddate,omitempty"`
}

func (r *CreateProgressRequest) toProgress() *Progress {
	return &Progress{
		ReferenceID:     strings.TrimSpace(r.ReferenceID),
		Manager:         r.Manager,
		TSM:             r.TSM,
		AgentName:       r.AgentName,
		CompanyName:     strings.TrimSpace(r.CompanyName),
		ContactPerson:   r.ContactPerson,
		TypeClient:      r.TypeClient,
		TypeActivity:    strings.TrimSpace(r.TypeActivity),
		CallStatus:      r.CallStatus,
		TypeCall:        r.TypeCall,
		QuotationNumber: r.QuotationNumber,
		QuotationAmount: r.QuotationAmount,
		SONumber:        r.SONumber,
		SOAmount:        r.SOAmount,
		ActualSales:     r.ActualSales,
		Remarks:         r.Remarks,
		Status:          r.Status,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
	}
}

func (r *CreateProgressRequest) Validate() (*Progress, error) {
	p := r.toProgress()
	if p.ReferenceID == "" {
		return nil, NewValidationError("referenceid is required")
	}
	if p.CompanyName == "" {
		return nil, NewValidationError("companyname is required")
	}
	if p.TypeActivity == "" {
		return nil, NewValidationError("typeactivity is required")
	}
	if err := p.validateAmounts(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Progress) validateAmounts() error {
	if p.QuotationAmount < 0 || p.SOAmount < 0 || p.ActualSales < 0 {
		return NewValidationError("amounts must not be negative")
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return NewValidationError("enddate must not be before startdate")
	}
	return nil
}

// UpdateProgressRequest replaces the editable fields of an activity; referenceid is ignored
type UpdateProgressRequest struct {
	ID int64 `json:"id"`
	CreateProgressRequest
}

func (r *UpdateProgressRequest) Validate() (*Progress, error) {
	if r.ID <= 0 {
		return nil, NewValidationError("id is required")
	}
	p := r.toProgress()
	if err := p.validateAmounts(); err != nil {
		return nil, err
	}
	p.ID = r.ID
	return p, nil
}

// ProgressService provides operations on sales activities
type ProgressService interface {
	ListProgress(ctx context.Context, filter ProgressFilter) ([]*Progress, error)
	// ListToday returns the activities a reference created today in the configured timezone
	ListToday(ctx context.Context, referenceID string) ([]*Progress, error)
	CreateProgress(ctx context.Context, progress *Progress) error
	UpdateProgress(ctx context.Context, progress *Progress) error
	DeleteProgress(ctx context.Context, id int64) error
	// SalesByAgent sums actual sales per agent under a manager or tsm
	SalesByAgent(ctx context.Context, filter ProgressFilter) ([]GroupTotal, error)
}

type ProgressRepository interface {
	List(ctx context.Context, filter ProgressFilter) ([]*Progress, error)
	Create(ctx context.Context, progress *Progress) error
	Update(ctx context.Context, progress *Progress) error
	Delete(ctx context.Context, id int64) error
	Totals(ctx context.Context, referenceID string, from, before *time.Time) (*ProgressTotals, error)
}
