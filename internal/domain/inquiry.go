package domain

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_inquiry_service.go -package mocks github.com/salesdesk/salesdesk/internal/domain InquiryService
//go:generate mockgen -destination mocks/mock_inquiry_repository.go -package mocks github.com/salesdesk/salesdesk/internal/domain InquiryRepository

const (
	InquiryStatusPending  = "Pending"
	InquiryStatusEndorsed = "Endorsed"
	InquiryStatusClosed   = "Closed"
)

func IsValidInquiryStatus(status string) bool {
	return inSet(status, InquiryStatusPending, InquiryStatusEndorsed, InquiryStatusClosed)
}

// Inquiry is a customer service ticket
type Inquiry struct {
	ID            int64     `json:"id"`
	ReferenceID   string    `json:"referenceid"`
	CompanyName   string    `json:"companyname"`
	ContactName   string    `json:"contactname"`
	ContactNumber string    `json:"contactnumber"`
	EmailAddress  string    `json:"emailaddress"`
	Channel       string    `json:"channel"`
	Inquiry       string    `json:"inquiry"`
	Status        string    `json:"status"`
	WrapUp        string    `json:"wrapup"`
	DateCreated   time.Time `json:"date_created"`
	DateUpdated   time.Time `json:"date_updated"`
}

const InquiryColumns = "id, referenceid, companyname, contactname, contactnumber, emailaddress, channel, inquiry, status, wrapup, date_created, date_updated"

func ScanInquiry(scanner interface {
	Scan(dest ...interface{}) error
}) (*Inquiry, error) {
	var i Inquiry
	if err := scanner.Scan(
		&i.ID,
		&i.ReferenceID,
		&i.CompanyName,
		&i.ContactName,
		&i.ContactNumber,
		&i.EmailAddress,
		&i.Channel,
		&i.Inquiry,
		&i.Status,
		&i.WrapUp,
		&i.DateCreated,
		&i.DateUpdated,
	); err != nil {
		return nil, err
	}
	return &i, nil
}

func (i *Inquiry) validateFields() error {
	if strings.TrimSpace(i.CompanyName) == "" {
		return NewValidationError("companyname is required")
	}
	if strings.TrimSpace(i.Inquiry) == "" {
		return NewValidationError("inquiry is required")
	}
	if i.EmailAddress != "" && !govalidator.IsEmail(i.EmailAddress) {
		return NewValidationError("emailaddress is not a valid email")
	}
	if i.Status != "" && !IsValidInquiryStatus(i.Status) {
		return NewValidationError(fmt.Sprintf("invalid status: %s", i.Status))
	}
	return nil
}

// Validate checks the fields required before an insert
func (i *Inquiry) Validate() error {
	if strings.TrimSpace(i.ReferenceID) == "" {
		return NewValidationError("referenceid is required")
	}
	return i.validateFields()
}

type InquiryFilter struct {
	ReferenceID string
	Status      string
	Range       DateRange

	CreatedFrom   *time.Time
	CreatedBefore *time.Time
}

// Request types

type ListInquiriesRequest struct {
	ReferenceID string
	Status      string
}

func (r *ListInquiriesRequest) FromURLParams(queryParams url.Values) error {
	ref, err := requireReference(queryParams)
	if err != nil {
		return err
	}
	r.ReferenceID = ref
	r.Status = strings.TrimSpace(queryParams.Get("status"))
	if r.Status != "" && !IsValidInquiryStatus(r.Status) {
		return NewValidationError(fmt.Sprintf("invalid status: %s", r.Status))
	}
	return nil
}

type CreateInquiryRequest struct {
	ReferenceID   string `json:"referenceid"`
	CompanyName   string `json:"companyname"`
	ContactName   string `json:"contactname"`
	ContactNumber string `json:"contactnumber"`
	EmailAddress  string `json:"emailaddress"`
	Channel       string `json:"channel"`
	Inquiry       string `json:"inquiry"`
	Status        string `json:"status"`
	WrapUp        string `json:"wrapup"`
}

func (r *CreateInquiryRequest) toInquiry() *Inquiry {
	inquiry := &Inquiry{
		ReferenceID:   strings.TrimSpace(r.ReferenceID),
		CompanyName:   strings.TrimSpace(r.CompanyName),
		ContactName:   r.ContactName,
		ContactNumber: r.ContactNumber,
		EmailAddress:  strings.TrimSpace(r.EmailAddress),
		Channel:       r.Channel,
		Inquiry:       strings.TrimSpace(r.Inquiry),
		Status:        r.Status,
		WrapUp:        r.WrapUp,
	}
	return inquiry
}

func (r *CreateInquiryRequest) Validate() (*Inquiry, error) {
	inquiry := r.toInquiry()
	if inquiry.Status == "" {
		inquiry.Status = InquiryStatusPending
	}
	if err := inquiry.Validate(); err != nil {
		return nil, err
	}
	return inquiry, nil
}

// UpdateInquiryRequest keeps the stored status when status is empty
type UpdateInquiryRequest struct {
	ID int64 `json:"id"`
	CreateInquiryRequest
}

func (r *UpdateInquiryRequest) Validate() (*Inquiry, error) {
	if r.ID <= 0 {
		return nil, NewValidationError("id is required")
	}
	inquiry := r.toInquiry()
	if err := inquiry.validateFields(); err != nil {
		return nil, err
	}
	inquiry.ID = r.ID
	return inquiry, nil
}

type UpdateInquiryStatusRequest struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func (r *UpdateInquiryStatusRequest) Validate() error {
	if r.ID <= 0 {
		return NewValidationError("id is required")
	}
	if r.Status == "" {
		return NewValidationError("status is required")
	}
	if !IsValidInquiryStatus(r.Status) {
		return NewValidationError(fmt.Sprintf("invalid status: %s", r.Status))
	}
	return nil
}

type InquiryService interface {
	ListInquiries(ctx context.Context, filter InquiryFilter) ([]*Inquiry, error)
	CreateInquiry(ctx context.Context, inquiry *Inquiry) error
	UpdateInquiry(ctx context.Context, inquiry *Inquiry) error
	UpdateInquiryStatus(ctx context.Context, id int64, status string) error
	DeleteInquiry(ctx context.Context, id int64) error
}

type InquiryRepository interface {
	List(ctx context.Context, filter InquiryFilter) ([]*Inquiry, error)
	Create(ctx context.Context, inquiry *Inquiry) error
	Update(ctx context.Context, inquiry *Inquiry) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context, filter InquiryFilter) (int64, error)
}
