package domain

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_integration_service.go -package mocks github.com/salesdesk/salesdesk/internal/domain IntegrationService

const (
	PlatformShopify     = "shopify"
	PlatformWooCommerce = "woocommerce"
)

const (
	// MaxMediaSize is the largest accepted upload
	MaxMediaSize = 10 << 20

	DefaultStorefrontLimit = 50
	MaxStorefrontLimit     = 250
)

// CallResult is the provider's answer to a dial request
type CallResult struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
	To     string `json:"to"`
	From   string `json:"from"`
}

type DialRequest struct {
	ReferenceID string `json:"referenceid"`
	To          string `json:"to"`
}

func (r *DialRequest) Validate() error {
	r.To = strings.TrimSpace(r.To)
	if strings.TrimSpace(r.ReferenceID) == "" {
		return NewValidationError("referenceid is required")
	}
	if r.To == "" {
		return NewValidationError("to is required")
	}
	digits := strings.TrimPrefix(r.To, "+")
	if digits == "" {
		return NewValidationError("to must be a phone number")
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return NewValidationError("to must be a phone number")
		}
	}
	return nil
}

// MediaObject is an uploaded file
type MediaObject struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// MediaUpload is a file received from a multipart form
type MediaUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

func (u *MediaUpload) Validate() error {
	if u.Size <= 0 {
		return NewValidationError("file is required")
	}
	if u.Size > MaxMediaSize {
		return NewValidationError("file must not exceed 10 MiB")
	}
	if !strings.HasPrefix(u.ContentType, "image/") && u.ContentType != "application/pdf" {
		return NewValidationError("file must be an image or a PDF")
	}
	return nil
}

type StoreProduct struct {
	ID        string    `json:"id"`
	Platform  string    `json:"platform"`
	Title     string    `json:"title"`
	SKU       string    `json:"sku"`
	Price     float64   `json:"price"`
	Stock     int64     `json:"stock"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StoreOrder struct {
	ID        string    `json:"id"`
	Platform  string    `json:"platform"`
	Number    string    `json:"number"`
	Customer  string    `json:"customer"`
	Email     string    `json:"email"`
	Total     float64   `json:"total"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type StorefrontRequest struct {
	Platform string
	Limit    int
}

func (r *StorefrontRequest) FromURLParams(queryParams url.Values) error {
	r.Platform = strings.ToLower(strings.TrimSpace(queryParams.Get("platform")))
	if r.Platform == "" {
		return NewValidationError("platform is required")
	}
	if r.Platform != PlatformShopify && r.Platform != PlatformWooCommerce {
		return NewValidationError(fmt.Sprintf("invalid platform: %s", r.Platform))
	}

	r.Limit = DefaultStorefrontLimit
	if raw := queryParams.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return NewValidationError("limit must be a positive integer")
		}
		if limit > MaxStorefrontLimit {
			limit = MaxStorefrontLimit
		}
		r.Limit = limit
	}
	return nil
}

// FormEntry is one submission exported from the forms plugin
type FormEntry struct {
	ID        string            `json:"id"`
	FormID    string            `json:"form_id"`
	Fields    map[string]string `json:"fields"`
	CreatedAt time.Time         `json:"created_at"`
}

type FormEntriesRequest struct {
	FormID string
	Page   int
}

func (r *FormEntriesRequest) FromURLParams(queryParams url.Values) error {
	r.FormID = strings.TrimSpace(queryParams.Get("form_id"))
	if r.FormID == "" {
		return NewValidationError("form_id is required")
	}
	r.Page = 1
	if raw := queryParams.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page <= 0 {
			return NewValidationError("page must be a positive integer")
		}
		r.Page = page
	}
	return nil
}

// FormSubmission is the payload of the forms webhook
type FormSubmission struct {
	FormID      string            `json:"form_id"`
	EntryID     string            `json:"entry_id"`
	ReferenceID string            `json:"referenceid"`
	Fields      map[string]string `json:"fields"`
}

// ToInquiry maps well-known form fields onto a new inquiry
func (s *FormSubmission) ToInquiry() (*Inquiry, error) {
	field := func(names ...string) string {
		for _, n := range names {
			if v := strings.TrimSpace(s.Fields[n]); v != "" {
				return v
			}
		}
		return ""
	}

	inquiry := &Inquiry{
		ReferenceID:   strings.TrimSpace(s.ReferenceID),
		CompanyName:   field("company", "companyname", "company_name"),
		ContactName:   field("name", "contactname", "full_name"),
		ContactNumber: field("phone", "contactnumber", "mobile"),
		EmailAddress:  field("email", "emailaddress"),
		Channel:       "Web Form",
		Inquiry:       field("message", "inquiry", "comments"),
		Status:        InquiryStatusPending,
	}
	if err := inquiry.Validate(); err != nil {
		return nil, err
	}
	return inquiry, nil
}

// IntegrationService fronts the third-party providers, one call each, no retries
type IntegrationService interface {
	Dial(ctx context.Context, request DialRequest) (*CallResult, error)
	UploadMedia(ctx context.Context, upload MediaUpload) (*MediaObject, error)
	ListProducts(ctx context.Context, platform string, limit int) ([]StoreProduct, error)
	ListOrders(ctx context.Context, platform string, limit int) ([]StoreOrder, error)
	ListFormEntries(ctx context.Context, formID string, page int) ([]FormEntry, error)
	// HandleFormSubmission turns a verified webhook submission into an inquiry
	HandleFormSubmission(ctx context.Context, submission FormSubmission) (*Inquiry, error)
}
