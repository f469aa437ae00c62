package domain

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_account_service.go -package mocks github.com/salesdesk/salesdesk/internal/domain AccountService
//go:generate mockgen -destination mocks/mock_account_repository.go -package mocks github.com/salesdesk/salesdesk/internal/domain AccountRepository

const (
	AccountStatusActive      = "Active"
	AccountStatusInactive    = "Inactive"
	AccountStatusForDeletion = "For Deletion"
	AccountStatusRemove      = "Remove"
	AccountStatusTransferred = "Transferred"
)

// IsValidAccountStatus reports whether status is one of the account lifecycle states
func IsValidAccountStatus(status string) bool {
	return inSet(status,
		AccountStatusActive,
		AccountStatusInactive,
		AccountStatusForDeletion,
		AccountStatusRemove,
		AccountStatusTransferred,
	)
}

// Account is a customer company owned by a sales associate (referenceid)
type Account struct {
	ID            int64     `json:"id"`
	ReferenceID   string    `json:"referenceid"`
	Manager       string    `json:"manager"`
	TSM           string    `json:"tsm"`
	CompanyName   string    `json:"companyname"`
	ContactPerson string    `json:"contactperson"`
	ContactNumber string    `json:"contactnumber"`
	EmailAddress  string    `json:"emailaddress"`
	TypeClient    string    `json:"typeclient"`
	Address       string    `json:"address"`
	Area          string    `json:"area"`
	Status        string    `json:"status"`
	DateCreated   time.Time `json:"date_created"`
	DateUpdated   time.Time `json:"date_updated"`
}

// Validate checks the fields required before an insert
func (a *Account) Validate() error {
	if strings.TrimSpace(a.ReferenceID) == "" {
		return NewValidationError("referenceid is required")
	}
	return a.validateFields()
}

// validateFields checks everything but ownership, which update leaves unchanged
func (a *Account) validateFields() error {
	if strings.TrimSpace(a.CompanyName) == "" {
		return NewValidationError("companyname is required")
	}
	if a.EmailAddress != "" && !govalidator.IsEmail(a.EmailAddress) {
		return NewValidationError("emailaddress is not a valid email")
	}
	if a.Status != "" && !IsValidAccountStatus(a.Status) {
		return NewValidationError(fmt.Sprintf("invalid status: %s", a.Status))
	}
	return nil
}

// AccountColumns is the select list matching ScanAccount
const AccountColumns = "id, referenceid, manager, tsm, companyname, contactperson, contactnumber, emailaddress, typeclient, address, area, status, date_created, date_updated"

// ScanAccount scans an account from the database
func ScanAccount(scanner interface {
	Scan(dest ...interface{}) error
}) (*Account, error) {
	var a Account
	if err := scanner.Scan(
		&a.ID,
		&a.ReferenceID,
		&a.Manager,
		&a.TSM,
		&a.CompanyName,
		&a.ContactPerson,
		&a.ContactNumber,
		&a.EmailAddress,
		&a.TypeClient,
		&a.Address,
		&a.Area,
		&a.Status,
		&a.DateCreated,
		&a.DateUpdated,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// AccountFilter narrows an account listing
type AccountFilter struct {
	ReferenceID string
	Status      string
	Search      string
	Range       DateRange

	// resolved from Range by the service
	CreatedFrom   *time.Time
	CreatedBefore *time.Time
}

// AccountChanges holds the columns a bulk operation sets; nil fields are left untouched
type AccountChanges struct {
	ReferenceID *string
	Manager     *string
	TSM         *string
	TypeClient  *string
	Area        *string
	Status      *string
}

// Columns returns the column/value pairs to set
func (c AccountChanges) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if c.ReferenceID != nil {
		cols["referenceid"] = *c.ReferenceID
	}
	if c.Manager != nil {
		cols["manager"] = *c.Manager
	}
	if c.TSM != nil {
		cols["tsm"] = *c.TSM
	}
	if c.TypeClient != nil {
		cols["typeclient"] = *c.TypeClient
	}
	if c.Area != nil {
		cols["area"] = *c.Area
	}
	if c.Status != nil {
		cols["status"] = *c.Status
	}
	return cols
}

// IsEmpty reports whether no column would change
func (c AccountChanges) IsEmpty() bool {
	return len(c.Columns()) == 0
}

// Request types

type ListAccountsRequest struct {
	ReferenceID string
	Status      string
	Search      string
	Range       DateRange
}

func (r *ListAccountsRequest) FromURLParams(queryParams url.Values) error {
	ref, err := requireReference(queryParams)
	if err != nil {
		return err
	}
	r.ReferenceID = ref
	r.Status = strings.TrimSpace(queryParams.Get("status"))
	r.Search = strings.TrimSpace(queryParams.Get("search"))

	if r.Status != "" && !IsValidAccountStatus(r.Status) {
		return NewValidationError(fmt.Sprintf("invalid status: %s", r.Status))
	}
	return r.Range.FromURLParams(queryParams)
}

func (r *ListAccountsRequest) ToFilter() AccountFilter {
	return AccountFilter{
		ReferenceID: r.ReferenceID,
		Status:      r.Status,
		Search:      r.Search,
		Range:       r.Range,
	}
}

type CreateAccountRequest struct {
	ReferenceID   string `json:"referenceid"`
	Manager       string `json:"manager"`
	TSM           string `json:"tsm"`
	CompanyName   string `json:"companyname"`
	ContactPerson string `json:"contactperson"`
	ContactNumber string `json:"contactnumber"`
	EmailAddress  string `json:"emailaddress"`
	TypeClient    string `json:"typeclient"`
	Address       string `json:"address"`
	Area          string `json:"area"`
	Status        string `json:"status"`
}

func (r *CreateAccountRequest) Validate() (*Account, error) {
	account := r.toAccount()
	if account.Status == "" {
		account.Status = AccountStatusActive
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}
	return account, nil
}

func (r *CreateAccountRequest) toAccount() *Account {
	account := &Account{
		ReferenceID:   strings.TrimSpace(r.ReferenceID),
		Manager:       r.Manager,
		TSM:           r.TSM,
		CompanyName:   strings.TrimSpace(r.CompanyName),
		ContactPerson: r.ContactPerson,
		ContactNumber: r.ContactNumber,
		EmailAddress:  strings.TrimSpace(r.EmailAddress),
		TypeClient:    r.TypeClient,
		Address:       r.Address,
		Area:          r.Area,
		Status:        r.Status,
	}
	return account
}

// UpdateAccountRequest replaces the editable fields of an account; referenceid is ignored.
// An empty status keeps the stored one.
type UpdateAccountRequest struct {
	ID int64 `json:"id"`
	CreateAccountRequest
}

func (r *UpdateAccountRequest) Validate() (*Account, error) {
	if r.ID <= 0 {
		return nil, NewValidationError("id is required")
	}
	account := r.toAccount()
	if err := account.validateFields(); err != nil {
		return nil, err
	}
	account.ID = r.ID
	return account, nil
}

type UpdateAccountStatusRequest struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func (r *UpdateAccountStatusRequest) Validate() error {
	if r.ID <= 0 {
		return NewValidationError("id is required")
	}
	if r.Status == "" {
		return NewValidationError("status is required")
	}
	if !IsValidAccountStatus(r.Status) {
		return NewValidationError(fmt.Sprintf("invalid status: %s", r.Status))
	}
	return nil
}

type BulkEditAccountsRequest struct {
	IDs        IDList  `json:"ids"`
	TypeClient *string `json:"typeclient,omitempty"`
	Area       *string `json:"area,omitempty"`
	Status     *string `json:"status,omitempty"`
}

func (r *BulkEditAccountsRequest) Validate() (IDList, AccountChanges, error) {
	ids, err := r.IDs.Validate()
	if err != nil {
		return nil, AccountChanges{}, err
	}
	if r.Status != nil && !IsValidAccountStatus(*r.Status) {
		return nil, AccountChanges{}, NewValidationError(fmt.Sprintf("invalid status: %s", *r.Status))
	}
	changes := AccountChanges{TypeClient: r.TypeClient, Area: r.Area, Status: r.Status}
	if changes.IsEmpty() {
		return nil, AccountChanges{}, NewValidationError("at least one of typeclient, area or status is required")
	}
	return ids, changes, nil
}

type BulkTransferAccountsRequest struct {
	IDs         IDList `json:"ids"`
	ReferenceID string `json:"referenceid"`
	TSM         string `json:"tsm,omitempty"`
	Manager     string `json:"manager,omitempty"`
}

func (r *BulkTransferAccountsRequest) Validate() (IDList, AccountChanges, error) {
	ids, err := r.IDs.Validate()
	if err != nil {
		return nil, AccountChanges{}, err
	}
	ref := strings.TrimSpace(r.ReferenceID)
	if ref == "" {
		return nil, AccountChanges{}, NewValidationError("referenceid is required")
	}
	changes := AccountChanges{ReferenceID: &ref}
	if r.TSM != "" {
		changes.TSM = &r.TSM
	}
	if r.Manager != "" {
		changes.Manager = &r.Manager
	}
	return ids, changes, nil
}

type BulkAccountStatusRequest struct {
	IDs    IDList `json:"ids"`
	Status string `json:"status"`
}

func (r *BulkAccountStatusRequest) Validate() (IDList, AccountChanges, error) {
	ids, err := r.IDs.Validate()
	if err != nil {
		return nil, AccountChanges{}, err
	}
	if r.Status == "" {
		return nil, AccountChanges{}, NewValidationError("status is required")
	}
	if !IsValidAccountStatus(r.Status) {
		return nil, AccountChanges{}, NewValidationError(fmt.Sprintf("invalid status: %s", r.Status))
	}
	status := r.Status
	return ids, AccountChanges{Status: &status}, nil
}

// AccountService provides operations on customer accounts
type AccountService interface {
	ListAccounts(ctx context.Context, filter AccountFilter) ([]*Account, error)
	GetAccount(ctx context.Context, id int64) (*Account, error)
	CreateAccount(ctx context.Context, account *Account) error
	UpdateAccount(ctx context.Context, account *Account) error
	UpdateAccountStatus(ctx context.Context, id int64, status string) error
	// BulkUpdateAccounts applies changes to every account in ids and returns the number of rows updated
	BulkUpdateAccounts(ctx context.Context, ids IDList, changes AccountChanges) (int64, error)
	DeleteAccount(ctx context.Context, id int64) error
}

type AccountRepository interface {
	List(ctx context.Context, filter AccountFilter) ([]*Account, error)
	GetByID(ctx context.Context, id int64) (*Account, error)
	Create(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	BulkUpdate(ctx context.Context, ids IDList, changes AccountChanges) (int64, error)
	Delete(ctx context.Context, id int64) error
	// CountByStatus counts a reference's accounts per status, created within [from, before)
	CountByStatus(ctx context.Context, referenceID string, from, before *time.Time) (map[string]int64, error)
}
