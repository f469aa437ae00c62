package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/internal/domain/mocks"
	"github.com/salesdesk/salesdesk/pkg/logger"
	"github.com/salesdesk/salesdesk/pkg/ratelimiter"
	"github.com/salesdesk/salesdesk/pkg/tracing"
)

type userServiceMocks struct {
	repo       *mocks.MockUserRepository
	auth       *mocks.MockAuthService
	monitoring *mocks.MockMonitoringRepository
	taskLogs   *mocks.MockTaskLogRepository
}

func setupUserServiceTest(t *testing.T, limiter LoginLimiter) (*UserService, userServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := userServiceMocks{
		repo:       mocks.NewMockUserRepository(ctrl),
		auth:       mocks.NewMockAuthService(ctrl),
		monitoring: mocks.NewMockMonitoringRepository(ctrl),
		taskLogs:   mocks.NewMockTaskLogRepository(ctrl),
	}
	service := NewUserService(UserServiceConfig{
		Repository:   m.repo,
		AuthService:  m.auth,
		Monitoring:   m.monitoring,
		TaskLogs:     m.taskLogs,
		LoginLimiter: limiter,
		BcryptCost:   bcrypt.MinCost,
		Logger:       logger.NewMockLogger(t),
		Tracer:       tracing.NewTracer(),
	})
	service.now = func() time.Time { return time.Date(2024, 5, 2, 1, 0, 0, 0, time.UTC) }
	return service, m
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	client := domain.ClientInfo{IP: "203.0.113.7", UserAgent: "Mozilla/5.0", Location: "Makati"}

	activeUser := func(t *testing.T) *domain.User {
		return &domain.User{
			ID:           primitive.NewObjectID(),
			ReferenceID:  "TSA-001",
			Email:        "ana@example.com",
			Role:         domain.RoleTSA,
			Status:       domain.UserStatusActive,
			PasswordHash: hashed(t, "s3cret-pass"),
		}
	}

	t.Run("success records the session", func(t *testing.T) {
		service, m := setupUserServiceTest(t, nil)
		user := activeUser(t)
		expiresAt := time.Date(2024, 5, 2, 13, 0, 0, 0, time.UTC)

		m.repo.EXPECT().GetByEmail(ctx, "ana@example.com").Return(user, nil)
		m.auth.EXPECT().IssueToken(user).Return("signed-token", expiresAt, nil)
		m.monitoring.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.MonitoringEntry) error {
			assert.Equal(t, user.ID.Hex(), e.UserID)
			assert.Equal(t, domain.MonitoringActionLogin, e.Action)
			assert.Equal(t, "203.0.113.7", e.IP)
			assert.Equal(t, "Mozilla/5.0", e.UserAgent)
			return nil
		})
		m.taskLogs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l *domain.TaskLog) error {
			assert.Equal(t, "TSA-001", l.ReferenceID)
			assert.Equal(t, domain.TaskLogLogin, l.Status)
			assert.Equal(t, "Quezon City", l.Location)
			return nil
		})

		resp, err := service.Login(ctx, domain.LoginRequest{Email: " Ana@Example.com ", Password: "s3cret-pass", Location: "Quezon City"}, client)
		require.NoError(t, err)
		assert.Equal(t, "signed-token", resp.Token)
		assert.Equal(t, expiresAt, resp.ExpiresAt)
		assert.Same(t, user, resp.User)
	})

	t.Run("session bookkeeping failures do not fail login", func(t *testing.T) {
		service, m := setupUserServiceTest(t, nil)
		user := activeUser(t)

		m.repo.EXPECT().GetByEmail(ctx, "ana@example.com").Return(user, nil)
		m.auth.EXPECT().IssueToken(user).Return("signed-token", time.Now(), nil)
		m.monitoring.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("mongo down"))
		m.taskLogs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l *domain.TaskLog) error {
			assert.Equal(t, "Makati", l.Location)
			return errors.New("mongo down")
		})

		_, err := service.Login(ctx, domain.LoginRequest{Email: "ana@example.com", Password: "s3cret-pass"}, client)
		assert.NoError(t, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		service, m := setupUserServiceTest(t, nil)
		m.repo.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, domain.NewNotFound("user", "ghost@example.com"))

		_, err := service.Login(ctx, domain.LoginRequest{Email: "ghost@example.com", Password: "whatever"}, client)
		assert.Same(t, errInvalidCredentials, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		service, m := setupUserServiceTest(t, nil)
		m.repo.EXPECT().GetByEmail(ctx, "ana@example.com").Return(activeUser(t), nil)

		_, err := service.Login(ctx, domain.LoginRequest{Email: "ana@example.com", Password: "wrong-pass"}, client)
		assert.Same(t, errInvalidCredentials, err)
	})

	t.Run("locked user", func(t *testing.T) {
		service, m := setupUserServiceTest(t, nil)
		user := activeUser(t)
		user.Status = domain.UserStatusLocked
		m.repo.EXPECT().GetByEmail(ctx, "ana@example.com").Return(user, nil)

		_, err := service.Login(ctx, domain.LoginRequest{Email: "ana@example.com", Password: "s3cret-pass"}, client)
		assert.EqualError(t, err, "user is Locked")
	})

	t.Run("missing password", func(t *testing.T) {
		service, _ := setupUserServiceTest(t, nil)

		_, err := service.Login(ctx, domain.LoginRequest{Email: "ana@example.com"}, client)
		assert.EqualError(t, err, "validation error: password is required")
	})

	t.Run("repository failure", func(t *testing.T) {
		service, m := setupUserServiceTest(t, nil)
		m.repo.EXPECT().GetByEmail(ctx, "ana@example.com").Return(nil, errors.New("server selection timeout"))

		_, err := service.Login(ctx, domain.LoginRequest{Email: "ana@example.com", Password: "x"}, client)
		assert.EqualError(t, err, "failed to get user: server selection timeout")
	})

	t.Run("rate limited after repeated failures", func(t *testing.T) {
		limiter := ratelimiter.New(2, time.Minute)
		defer limiter.Stop()
		service, m := setupUserServiceTest(t, limiter)

		m.repo.EXPECT().GetByEmail(ctx, "ana@example.com").Return(activeUser(t), nil).Times(2)
		for i := 0; i < 2; i++ {
			_, err := service.Login(ctx, domain.LoginRequest{Email: "ana@example.com", Password: "wrong-pass"}, client)
			assert.Same(t, errInvalidCredentials, err)
		}

		_, err := service.Login(ctx, domain.LoginRequest{Email: "ana@example.com", Password: "s3cret-pass"}, client)
		var limited *domain.ErrRateLimited
		require.True(t, errors.As(err, &limited))
		assert.Greater(t, limited.RetryAfter, time.Duration(0))
	})
}

func TestUserService_Logout(t *testing.T) {
	ctx := context.Background()
	service, m := setupUserServiceTest(t, nil)

	err := service.Logout(ctx, nil, domain.ClientInfo{})
	assert.EqualError(t, err, "not authenticated")

	principal := &domain.Principal{UserID: "u1", Email: "ana@example.com", ReferenceID: "TSA-001"}
	m.monitoring.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.MonitoringEntry) error {
		assert.Equal(t, domain.MonitoringActionLogout, e.Action)
		return nil
	})
	m.taskLogs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l *domain.TaskLog) error {
		assert.Equal(t, domain.TaskLogLogout, l.Status)
		assert.Equal(t, time.Date(2024, 5, 2, 1, 0, 0, 0, time.UTC), l.CreatedAt)
		return nil
	})

	assert.NoError(t, service.Logout(ctx, principal, domain.ClientInfo{IP: "203.0.113.7"}))
}

func TestUserService_CreateUser(t *testing.T) {
	ctx := context.Background()
	service, m := setupUserServiceTest(t, nil)

	err := service.CreateUser(ctx, &domain.User{Email: "new@example.com"}, "short")
	assert.EqualError(t, err, "validation error: password must be at least 8 characters")

	user := &domain.User{Email: "new@example.com", Role: domain.RoleCSR}
	m.repo.EXPECT().Create(ctx, user).DoAndReturn(func(_ context.Context, u *domain.User) error {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("long-enough")))
		u.ID = primitive.NewObjectID()
		return nil
	})
	require.NoError(t, service.CreateUser(ctx, user, "long-enough"))
	assert.False(t, user.ID.IsZero())

	dup := &domain.User{Email: "new@example.com"}
	conflict := &domain.ErrConflict{Entity: "user", Field: "email"}
	m.repo.EXPECT().Create(ctx, dup).Return(conflict)
	assert.Same(t, conflict, service.CreateUser(ctx, dup, "long-enough"))
}

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()

	t.Run("success", func(t *testing.T) {
		service, m := setupUserServiceTest(t, nil)
		m.repo.EXPECT().GetByID(ctx, id).Return(&domain.User{ID: id, PasswordHash: hashed(t, "old-password")}, nil)
		m.repo.EXPECT().UpdatePassword(ctx, id, gomock.Any()).DoAndReturn(func(_ context.Context, _ primitive.ObjectID, hash string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-password")))
			return nil
		})

		assert.NoError(t, service.ChangePassword(ctx, id, "old-password", "new-password"))
	})

	t.Run("wrong current password", func(t *testing.T) {
		service, m := setupUserServiceTest(t, nil)
		m.repo.EXPECT().GetByID(ctx, id).Return(&domain.User{ID: id, PasswordHash: hashed(t, "old-password")}, nil)

		err := service.ChangePassword(ctx, id, "guess", "new-password")
		assert.EqualError(t, err, "current password is incorrect")
	})

	t.Run("unknown user", func(t *testing.T) {
		service, m := setupUserServiceTest(t, nil)
		m.repo.EXPECT().GetByID(ctx, id).Return(nil, domain.NewNotFound("user", id.Hex()))

		err := service.ChangePassword(ctx, id, "old-password", "new-password")
		var nf *domain.ErrNotFound
		assert.True(t, errors.As(err, &nf))
	})
}

func TestUserService_Administration(t *testing.T) {
	ctx := context.Background()
	service, m := setupUserServiceTest(t, nil)
	id := primitive.NewObjectID()

	assert.EqualError(t, service.UpdateUser(ctx, &domain.User{}), "validation error: id is required")

	user := &domain.User{ID: id, Firstname: "Ana"}
	m.repo.EXPECT().Update(ctx, user).Return(nil)
	assert.NoError(t, service.UpdateUser(ctx, user))

	filter := domain.UserFilter{Role: domain.RoleTSA}
	m.repo.EXPECT().List(ctx, filter).Return([]*domain.User{user}, nil)
	users, err := service.ListUsers(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	m.repo.EXPECT().Delete(ctx, id).Return(errors.New("write conflict"))
	assert.EqualError(t, service.DeleteUser(ctx, id), "failed to delete user: write conflict")
}
