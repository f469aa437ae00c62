package domain

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -destination mocks/mock_user_repository.go -package mocks github.com/salesdesk/salesdesk/internal/domain UserRepository
//go:generate mockgen -destination mocks/mock_user_service.go -package mocks github.com/salesdesk/salesdesk/internal/domain UserService
//go:generate mockgen -destination mocks/mock_auth_service.go -package mocks github.com/salesdesk/salesdesk/internal/domain AuthService

// Key for storing the authenticated principal in context
type contextKey string

const PrincipalKey contextKey = "principal"

const (
	RoleAdmin      = "Admin"
	RoleSuperAdmin = "Super Admin"
	RoleManager    = "Manager"
	RoleTSM        = "Territory Sales Manager"
	RoleTSA        = "Territory Sales Associate"
	RoleCSR        = "CSR"
	RoleWarehouse  = "Warehouse Staff"
	RoleHR         = "HR"
	RoleIT         = "IT"
)

func IsValidRole(role string) bool {
	return inSet(role, RoleAdmin, RoleSuperAdmin, RoleManager, RoleTSM, RoleTSA, RoleCSR, RoleWarehouse, RoleHR, RoleIT)
}

// CanManageUsers reports whether role may create, edit or delete user accounts
func CanManageUsers(role string) bool {
	return inSet(role, RoleAdmin, RoleSuperAdmin, RoleIT)
}

const (
	UserStatusActive   = "Active"
	UserStatusInactive = "Inactive"
	UserStatusLocked   = "Locked"
)

func IsValidUserStatus(status string) bool {
	return inSet(status, UserStatusActive, UserStatusInactive, UserStatusLocked)
}

// MinPasswordLength applies to new and changed passwords
const MinPasswordLength = 8

// User is a dashboard account stored in the users collection
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ReferenceID  string             `json:"referenceid" bson:"ReferenceID"`
	Firstname    string             `json:"firstname" bson:"Firstname"`
	Lastname     string             `json:"lastname" bson:"Lastname"`
	Email        string             `json:"email" bson:"Email"`
	Role         string             `json:"role" bson:"Role"`
	Manager      string             `json:"manager" bson:"Manager"`
	TSM          string             `json:"tsm" bson:"TSM"`
	Department   string             `json:"department" bson:"Department"`
	Status       string             `json:"status" bson:"Status"`
	PasswordHash string             `json:"-" bson:"Password"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// FullName joins first and last name
func (u *User) FullName() string {
	return strings.TrimSpace(u.Firstname + " " + u.Lastname)
}

// Principal is the identity carried by a verified token
type Principal struct {
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	ReferenceID string `json:"referenceid"`
}

// WithPrincipal stores p in ctx
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, p)
}

// PrincipalFromContext returns the authenticated principal, if any
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(*Principal)
	return p, ok && p != nil
}

// ClientInfo describes the caller of a sign-in or sign-out
type ClientInfo struct {
	IP        string
	UserAgent string
	Location  string
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Location string `json:"location,omitempty"`
}

func (r *LoginRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Email == "" {
		return NewValidationError("email is required")
	}
	if r.Password == "" {
		return NewValidationError("password is required")
	}
	return nil
}

type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *User     `json:"user"`
}

type UserFilter struct {
	Role       string
	Manager    string
	TSM        string
	Department string
}

func (f *UserFilter) FromURLParams(queryParams url.Values) error {
	f.Role = strings.TrimSpace(queryParams.Get("role"))
	f.Manager = strings.TrimSpace(queryParams.Get("manager"))
	f.TSM = strings.TrimSpace(queryParams.Get("tsm"))
	f.Department = strings.TrimSpace(queryParams.Get("department"))
	if f.Role != "" && !IsValidRole(f.Role) {
		return NewValidationError(fmt.Sprintf("invalid role: %s", f.Role))
	}
	return nil
}

type CreateUserRequest struct {
	ReferenceID string `json:"referenceid"`
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	Manager     string `json:"manager"`
	TSM         string `json:"tsm"`
	Department  string `json:"department"`
	Status      string `json:"status"`
}

func (r *CreateUserRequest) Validate() (*User, error) {
	user := &User{
		ReferenceID: strings.TrimSpace(r.ReferenceID),
		Firstname:   strings.TrimSpace(r.Firstname),
		Lastname:    strings.TrimSpace(r.Lastname),
		Email:       strings.ToLower(strings.TrimSpace(r.Email)),
		Role:        r.Role,
		Manager:     r.Manager,
		TSM:         r.TSM,
		Department:  r.Department,
		Status:      r.Status,
	}
	if user.Status == "" {
		user.Status = UserStatusActive
	}
	if user.ReferenceID == "" {
		return nil, NewValidationError("referenceid is required")
	}
	if err := user.validateProfile(); err != nil {
		return nil, err
	}
	if len(r.Password) < MinPasswordLength {
		return nil, NewValidationError(fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}
	return user, nil
}

func (u *User) validateProfile() error {
	if u.Firstname == "" {
		return NewValidationError("firstname is required")
	}
	if u.Email == "" {
		return NewValidationError("email is required")
	}
	if !govalidator.IsEmail(u.Email) {
		return NewValidationError("email is not a valid email")
	}
	if u.Role == "" {
		return NewValidationError("role is required")
	}
	if !IsValidRole(u.Role) {
		return NewValidationError(fmt.Sprintf("invalid role: %s", u.Role))
	}
	if u.Status != "" && !IsValidUserStatus(u.Status) {
		return NewValidationError(fmt.Sprintf("invalid status: %s", u.Status))
	}
	return nil
}

// UpdateUserRequest replaces profile fields; password and referenceid are unchanged,
// and so is status when it is empty
type UpdateUserRequest struct {
	ID         string `json:"id"`
	Firstname  string `json:"firstname"`
	Lastname   string `json:"lastname"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Manager    string `json:"manager"`
	TSM        string `json:"tsm"`
	Department string `json:"department"`
	Status     string `json:"status"`
}

func (r *UpdateUserRequest) Validate() (*User, error) {
	id, err := ParseObjectID(r.ID, "id")
	if err != nil {
		return nil, err
	}
	user := &User{
		ID:         id,
		Firstname:  strings.TrimSpace(r.Firstname),
		Lastname:   strings.TrimSpace(r.Lastname),
		Email:      strings.ToLower(strings.TrimSpace(r.Email)),
		Role:       r.Role,
		Manager:    r.Manager,
		TSM:        r.TSM,
		Department: r.Department,
		Status:     r.Status,
	}
	if err := user.validateProfile(); err != nil {
		return nil, err
	}
	return user, nil
}

type ChangePasswordRequest struct {
	ID      string `json:"id"`
	Current string `json:"current"`
	New     string `json:"new"`
}

func (r *ChangePasswordRequest) Validate() (primitive.ObjectID, error) {
	id, err := ParseObjectID(r.ID, "id")
	if err != nil {
		return primitive.NilObjectID, err
	}
	if r.Current == "" {
		return primitive.NilObjectID, NewValidationError("current is required")
	}
	if len(r.New) < MinPasswordLength {
		return primitive.NilObjectID, NewValidationError(fmt.Sprintf("new password must be at least %d characters", MinPasswordLength))
	}
	return id, nil
}

// UserService handles sign-in and user administration
type UserService interface {
	Login(ctx context.Context, request LoginRequest, client ClientInfo) (*AuthResponse, error)
	Logout(ctx context.Context, principal *Principal, client ClientInfo) error
	GetUser(ctx context.Context, id primitive.ObjectID) (*User, error)
	ListUsers(ctx context.Context, filter UserFilter) ([]*User, error)
	CreateUser(ctx context.Context, user *User, password string) error
	UpdateUser(ctx context.Context, user *User) error
	ChangePassword(ctx context.Context, id primitive.ObjectID, current, newPassword string) error
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}

// AuthService issues and verifies bearer tokens
type AuthService interface {
	IssueToken(user *User) (string, time.Time, error)
	VerifyToken(token string) (*Principal, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter UserFilter) ([]*User, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
