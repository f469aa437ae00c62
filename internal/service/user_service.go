package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/pkg/logger"
	"github.com/salesdesk/salesdesk/pkg/tracing"
)

var errInvalidCredentials = &domain.ErrUnauthorized{Message: "invalid email or password"}

// LoginLimiter bounds sign-in attempts per email
type LoginLimiter interface {
	Allow(key string) bool
	Reset(key string)
	RetryAfter(key string) time.Duration
}

type UserService struct {
	repo        domain.UserRepository
	authService domain.AuthService
	monitoring  domain.MonitoringRepository
	taskLogs    domain.TaskLogRepository
	limiter     LoginLimiter
	bcryptCost  int
	logger      logger.Logger
	tracer      tracing.Tracer
	now         func() time.Time
}

type UserServiceConfig struct {
	Repository   domain.UserRepository
	AuthService  domain.AuthService
	Monitoring   domain.MonitoringRepository
	TaskLogs     domain.TaskLogRepository
	LoginLimiter LoginLimiter
	// BcryptCost defaults to bcrypt.DefaultCost
	BcryptCost int
	Logger     logger.Logger
	Tracer     tracing.Tracer
}

func NewUserService(cfg UserServiceConfig) *UserService {
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = tracing.GetTracer()
	}
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &UserService{
		repo:        cfg.Repository,
		authService: cfg.AuthService,
		monitoring:  cfg.Monitoring,
		taskLogs:    cfg.TaskLogs,
		limiter:     cfg.LoginLimiter,
		bcryptCost:  cost,
		logger:      cfg.Logger,
		tracer:      tracer,
		now:         time.Now,
	}
}

var _ domain.UserService = (*UserService)(nil)

func (s *UserService) Login(ctx context.Context, request domain.LoginRequest, client domain.ClientInfo) (*domain.AuthResponse, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "UserService", "Login")
	defer span.End()

	if err := request.Validate(); err != nil {
		return nil, err
	}
	s.tracer.AddAttribute(ctx, "user.email", request.Email)

	if s.limiter != nil && !s.limiter.Allow(request.Email) {
		s.logger.WithField("email", request.Email).Warn("Login rate limit exceeded")
		err := &domain.ErrRateLimited{RetryAfter: s.limiter.RetryAfter(request.Email)}
		s.tracer.AddAttribute(ctx, "error", "rate_limit_exceeded")
		s.tracer.MarkSpanError(ctx, err)
		return nil, err
	}

	user, err := s.repo.GetByEmail(ctx, request.Email)
	if err != nil {
		var notFound *domain.ErrNotFound
		if errors.As(err, &notFound) {
			s.tracer.AddAttribute(ctx, "error", "user_not_found")
			return nil, errInvalidCredentials
		}
		s.logger.WithField("email", request.Email).Error(fmt.Sprintf("Failed to get user by email: %v", err))
		s.tracer.MarkSpanError(ctx, err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		s.tracer.AddAttribute(ctx, "error", "password_mismatch")
		return nil, errInvalidCredentials
	}
	if user.Status != domain.UserStatusActive {
		s.tracer.AddAttribute(ctx, "error", "user_not_active")
		return nil, &domain.ErrUnauthorized{Message: fmt.Sprintf("user is %s", user.Status)}
	}

	token, expiresAt, err := s.authService.IssueToken(user)
	if err != nil {
		s.logger.WithField("user_id", user.ID.Hex()).Error(fmt.Sprintf("Failed to issue token: %v", err))
		s.tracer.MarkSpanError(ctx, err)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	s.tracer.AddAttribute(ctx, "user.id", user.ID.Hex())

	location := request.Location
	if location == "" {
		location = client.Location
	}
	s.recordSession(ctx, user.ID.Hex(), user.ReferenceID, user.Email, domain.MonitoringActionLogin, domain.TaskLogLogin, location, client)

	if s.limiter != nil {
		s.limiter.Reset(request.Email)
	}

	s.logger.WithField("user_id", user.ID.Hex()).Info("User logged in")
	return &domain.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

func (s *UserService) Logout(ctx context.Context, principal *domain.Principal, client domain.ClientInfo) error {
	ctx, span := s.tracer.StartServiceSpan(ctx, "UserService", "Logout")
	defer span.End()

	if principal == nil {
		return &domain.ErrUnauthorized{Message: "not authenticated"}
	}
	s.tracer.AddAttribute(ctx, "user.id", principal.UserID)

	s.recordSession(ctx, principal.UserID, principal.ReferenceID, principal.Email, domain.MonitoringActionLogout, domain.TaskLogLogout, client.Location, client)
	return nil
}

// recordSession writes the monitoring and attendance entries of a login or logout.
// Failures are logged and do not fail the caller.
func (s *UserService) recordSession(ctx context.Context, userID, referenceID, email, action, status, location string, client domain.ClientInfo) {
	now := s.now().UTC()

	entry := &domain.MonitoringEntry{
		UserID:    userID,
		Email:     email,
		Action:    action,
		IP:        client.IP,
		UserAgent: client.UserAgent,
		CreatedAt: now,
	}
	if err := s.monitoring.Insert(ctx, entry); err != nil {
		s.tracer.MarkSpanError(ctx, err)
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to insert monitoring entry: %v", err))
	}

	taskLog := &domain.TaskLog{
		ReferenceID: referenceID,
		Email:       email,
		Status:      status,
		Location:    location,
		CreatedAt:   now,
	}
	if err := s.taskLogs.Create(ctx, taskLog); err != nil {
		s.tracer.MarkSpanError(ctx, err)
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to create task log: %v", err))
	}
}

func (s *UserService) GetUser(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if isClientError(err) {
			return nil, err
		}
		s.logger.WithField("user_id", id.Hex()).Error(fmt.Sprintf("Failed to get user: %v", err))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, filter domain.UserFilter) ([]*domain.User, error) {
	users, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.WithField("role", filter.Role).Error(fmt.Sprintf("Failed to list users: %v", err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) CreateUser(ctx context.Context, user *domain.User, password string) error {
	ctx, span := s.tracer.StartServiceSpan(ctx, "UserService", "CreateUser")
	defer span.End()

	if len(password) < domain.MinPasswordLength {
		return domain.NewValidationError(fmt.Sprintf("password must be at least %d characters", domain.MinPasswordLength))
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		s.tracer.MarkSpanError(ctx, err)
		return err
	}
	user.PasswordHash = hash

	if err := s.repo.Create(ctx, user); err != nil {
		if isClientError(err) {
			return err
		}
		s.tracer.MarkSpanError(ctx, err)
		s.logger.WithField("email", user.Email).Error(fmt.Sprintf("Failed to create user: %v", err))
		return fmt.Errorf("failed to create user: %w", err)
	}

	s.tracer.AddAttribute(ctx, "user.id", user.ID.Hex())
	return nil
}

func (s *UserService) UpdateUser(ctx context.Context, user *domain.User) error {
	if user.ID.IsZero() {
		return domain.NewValidationError("id is required")
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if isClientError(err) {
			return err
		}
		s.logger.WithField("user_id", user.ID.Hex()).Error(fmt.Sprintf("Failed to update user: %v", err))
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (s *UserService) ChangePassword(ctx context.Context, id primitive.ObjectID, current, newPassword string) error {
	ctx, span := s.tracer.StartServiceSpan(ctx, "UserService", "ChangePassword")
	defer span.End()

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return &domain.ErrUnauthorized{Message: "current password is incorrect"}
	}
	if len(newPassword) < domain.MinPasswordLength {
		return domain.NewValidationError(fmt.Sprintf("new password must be at least %d characters", domain.MinPasswordLength))
	}

	hash, err := s.hashPassword(newPassword)
	if err != nil {
		s.tracer.MarkSpanError(ctx, err)
		return err
	}

	if err := s.repo.UpdatePassword(ctx, id, hash); err != nil {
		if isClientError(err) {
			return err
		}
		s.tracer.MarkSpanError(ctx, err)
		s.logger.WithField("user_id", id.Hex()).Error(fmt.Sprintf("Failed to update password: %v", err))
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if isClientError(err) {
			return err
		}
		s.logger.WithField("user_id", id.Hex()).Error(fmt.Sprintf("Failed to delete user: %v", err))
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *UserService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
