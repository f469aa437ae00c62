package http

import (
	"bytes"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	svix "github.com/standard-webhooks/standard-webhooks/libraries/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/internal/domain/mocks"
	"github.com/salesdesk/salesdesk/pkg/forms"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

var webhookSecret = "whsec_" + base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))

func signedWebhook(t *testing.T, id string, payload []byte) *http.Request {
	t.Helper()

	wh, err := svix.NewWebhook(webhookSecret)
	require.NoError(t, err)
	now := time.Now()
	signature, err := wh.Sign(id, now, payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/forms", bytes.NewReader(payload))
	req.Header.Set("webhook-id", id)
	req.Header.Set("webhook-timestamp", strconv.FormatInt(now.Unix(), 10))
	req.Header.Set("webhook-signature", signature)
	return req
}

func TestFormsWebhookHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockIntegrationService(ctrl)
	verifier, err := forms.NewVerifier(webhookSecret)
	require.NoError(t, err)

	mux := http.NewServeMux()
	NewFormsWebhookHandler(service, verifier, logger.NewMockLogger(t)).RegisterRoutes(mux)

	payload := []byte(`{"form_id":"3","entry_id":"41","referenceid":"CSR-001","fields":{"company":"Acme","message":"Need 40 units"}}`)

	t.Run("signed submission becomes an inquiry", func(t *testing.T) {
		service.EXPECT().HandleFormSubmission(gomock.Any(), domain.FormSubmission{
			FormID:      "3",
			EntryID:     "41",
			ReferenceID: "CSR-001",
			Fields:      map[string]string{"company": "Acme", "message": "Need 40 units"},
		}).Return(&domain.Inquiry{ID: 8, CompanyName: "Acme", Status: domain.InquiryStatusPending}, nil)

		w := serve(mux, signedWebhook(t, "msg_1", payload))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, decodeEnvelope(t, w).Success)
	})

	t.Run("public route ignores authorization", func(t *testing.T) {
		service.EXPECT().HandleFormSubmission(gomock.Any(), gomock.Any()).Return(&domain.Inquiry{ID: 9}, nil)

		req := signedWebhook(t, "msg_2", payload)
		req.Header.Set("Authorization", "Bearer nonsense")
		w := serve(mux, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("tampered payload", func(t *testing.T) {
		req := signedWebhook(t, "msg_3", payload)
		req.Body = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(`{"form_id":"4"}`))).Body
		w := serve(mux, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid webhook signature", decodeEnvelope(t, w).Error)
	})

	t.Run("missing headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/webhooks/forms", bytes.NewReader(payload))
		w := serve(mux, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("submission without company", func(t *testing.T) {
		service.EXPECT().HandleFormSubmission(gomock.Any(), gomock.Any()).Return(nil, domain.NewValidationError("companyname is required"))

		w := serve(mux, signedWebhook(t, "msg_4", []byte(`{"form_id":"3","entry_id":"42","referenceid":"CSR-001","fields":{}}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "validation error: companyname is required", decodeEnvelope(t, w).Error)
	})

	t.Run("wrong method", func(t *testing.T) {
		w := serve(mux, httptest.NewRequest(http.MethodGet, "/webhooks/forms", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestFormsWebhookHandler_NotConfigured(t *testing.T) {
	mux := http.NewServeMux()
	NewFormsWebhookHandler(nil, nil, logger.NewMockLogger(t)).RegisterRoutes(mux)

	w := serve(mux, httptest.NewRequest(http.MethodPost, "/webhooks/forms", bytes.NewReader([]byte(`{}`))))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "forms webhook is not configured", decodeEnvelope(t, w).Error)
}
