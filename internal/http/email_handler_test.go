package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/internal/domain/mocks"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

func setupEmailHandlerTest(t *testing.T) (*mocks.MockEmailService, *http.ServeMux) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := mocks.NewMockEmailService(ctrl)
	handler := NewEmailHandler(service, staticVerifier{}, logger.NewMockLogger(t))

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	return service, mux
}

func TestEmailHandler_List(t *testing.T) {
	service, mux := setupEmailHandlerTest(t)

	service.EXPECT().ListEmails(gomock.Any(), "TSA-001").Return([]*domain.Email{{ID: 1}}, nil)
	w := serve(mux, newRequest(t, http.MethodGet, "/api/emails.list?referenceid=TSA-001", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(mux, newRequest(t, http.MethodGet, "/api/emails.list", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEmailHandler_Send(t *testing.T) {
	service, mux := setupEmailHandlerTest(t)

	body := map[string]interface{}{
		"referenceid": "TSA-001",
		"recipient":   "buyer@acme.test",
		"subject":     "Quote {{ number }}",
		"message":     "Hi {{ name }}",
		"data":        map[string]string{"number": "Q-12", "name": "Maria"},
	}

	t.Run("sent", func(t *testing.T) {
		service.EXPECT().SendEmail(gomock.Any(), gomock.Any()).DoAndReturn(func(_ interface{}, req *domain.SendEmailRequest) (*domain.Email, error) {
			assert.Equal(t, "Maria", req.Data["name"])
			return &domain.Email{ID: 5, Status: domain.EmailStatusSent, Subject: "Quote Q-12"}, nil
		})

		w := serve(mux, newRequest(t, http.MethodPost, "/api/emails.send", body))

		assert.Equal(t, http.StatusCreated, w.Code)
		var email domain.Email
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &email))
		assert.Equal(t, domain.EmailStatusSent, email.Status)
	})

	t.Run("failed send answers 500", func(t *testing.T) {
		service.EXPECT().SendEmail(gomock.Any(), gomock.Any()).
			Return(&domain.Email{ID: 6, Status: domain.EmailStatusFailed}, errors.New("failed to send email: connection refused"))

		w := serve(mux, newRequest(t, http.MethodPost, "/api/emails.send", body))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "failed to send email: connection refused", decodeEnvelope(t, w).Error)
	})

	t.Run("invalid recipient", func(t *testing.T) {
		w := serve(mux, newRequest(t, http.MethodPost, "/api/emails.send", map[string]string{
			"referenceid": "TSA-001",
			"recipient":   "not-an-email",
			"subject":     "Hello",
			"message":     "Hi",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "validation error: recipient is not a valid email", decodeEnvelope(t, w).Error)
	})
}

func TestEmailHandler_Delete(t *testing.T) {
	service, mux := setupEmailHandlerTest(t)

	service.EXPECT().DeleteEmail(gomock.Any(), int64(5)).Return(nil)
	w := serve(mux, newRequest(t, http.MethodDelete, "/api/emails.delete?id=5", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
