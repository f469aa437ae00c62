package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/internal/domain/mocks"
)

func TestRequireAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verifier := mocks.NewMockAuthService(ctrl)
	authConfig := NewAuthMiddleware(verifier)

	var seen *domain.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = domain.PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := authConfig.RequireAuth()(next)

	t.Run("missing authorization header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/accounts.list", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"Authorization header is required"}`, w.Body.String())
	})

	t.Run("invalid authorization header format", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/accounts.list", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid authorization header format")
	})

	t.Run("rejected token", func(t *testing.T) {
		verifier.EXPECT().VerifyToken("expired-token").Return(nil, &domain.ErrUnauthorized{Message: "token expired"})

		req := httptest.NewRequest(http.MethodGet, "/api/accounts.list", nil)
		req.Header.Set("Authorization", "Bearer expired-token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "token expired")
	})

	t.Run("valid token", func(t *testing.T) {
		principal := &domain.Principal{UserID: "u1", Email: "ana@example.com", Role: domain.RoleTSA, ReferenceID: "TSA-001"}
		verifier.EXPECT().VerifyToken("good-token").Return(principal, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/accounts.list", nil)
		req.Header.Set("Authorization", "bearer good-token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, seen)
		assert.Equal(t, principal, seen)
	})
}
