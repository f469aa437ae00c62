package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/salesdesk/salesdesk/internal/domain"
)

const (
	testToken  = "test-token"
	adminToken = "admin-token"
)

var testPrincipal = &domain.Principal{
	UserID:      "64b7f0c2a1b2c3d4e5f60718",
	Email:       "ana@example.com",
	Role:        domain.RoleTSA,
	ReferenceID: "TSA-001",
}

var adminPrincipal = &domain.Principal{
	UserID:      "64b7f0c2a1b2c3d4e5f60719",
	Email:       "it@example.com",
	Role:        domain.RoleIT,
	ReferenceID: "IT-001",
}

// staticVerifier accepts testToken and adminToken only
type staticVerifier struct{}

func (staticVerifier) VerifyToken(token string) (*domain.Principal, error) {
	switch token {
	case testToken:
		return testPrincipal, nil
	case adminToken:
		return adminPrincipal, nil
	}
	return nil, &domain.ErrUnauthorized{Message: "invalid token"}
}

// envelope is the decoded response body
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Count   *int64          `json:"count"`
	Error   string          `json:"error"`
}

func newRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer "+testToken)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// asAdmin swaps the request's bearer token for one that may manage users
func asAdmin(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+adminToken)
	return req
}

func serve(mux *http.ServeMux, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}
