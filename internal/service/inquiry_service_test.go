package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/internal/domain/mocks"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

func TestInquiryService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockInquiryRepository(ctrl)
	service := NewInquiryService(mockRepo, time.UTC, logger.NewMockLogger(t))
	ctx := context.Background()

	t.Run("create defaults to pending", func(t *testing.T) {
		inquiry := &domain.Inquiry{ReferenceID: "CSR-1", CompanyName: "Acme", Inquiry: "Need a quote"}
		mockRepo.EXPECT().Create(ctx, inquiry).Return(nil)

		require.NoError(t, service.CreateInquiry(ctx, inquiry))
		assert.Equal(t, domain.InquiryStatusPending, inquiry.Status)
	})

	t.Run("create rejects bad email", func(t *testing.T) {
		inquiry := &domain.Inquiry{ReferenceID: "CSR-1", CompanyName: "Acme", Inquiry: "x", EmailAddress: "nope"}
		err := service.CreateInquiry(ctx, inquiry)
		assert.EqualError(t, err, "validation error: emailaddress is not a valid email")
	})

	t.Run("list resolves range", func(t *testing.T) {
		mockRepo.EXPECT().List(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, f domain.InquiryFilter) ([]*domain.Inquiry, error) {
				assert.Nil(t, f.CreatedFrom)
				require.NotNil(t, f.CreatedBefore)
				assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), *f.CreatedBefore)
				return []*domain.Inquiry{}, nil
			})

		_, err := service.ListInquiries(ctx, domain.InquiryFilter{Range: domain.DateRange{To: "2024-01-01"}})
		require.NoError(t, err)
	})

	t.Run("update status validates", func(t *testing.T) {
		assert.EqualError(t, service.UpdateInquiryStatus(ctx, 1, "Lost"), "validation error: invalid status: Lost")

		mockRepo.EXPECT().UpdateStatus(ctx, int64(1), domain.InquiryStatusEndorsed).Return(nil)
		assert.NoError(t, service.UpdateInquiryStatus(ctx, 1, domain.InquiryStatusEndorsed))
	})

	t.Run("update requires id", func(t *testing.T) {
		assert.EqualError(t, service.UpdateInquiry(ctx, &domain.Inquiry{}), "validation error: id is required")
	})

	t.Run("delete wraps unexpected errors", func(t *testing.T) {
		mockRepo.EXPECT().Delete(ctx, int64(2)).Return(errors.New("boom"))
		assert.EqualError(t, service.DeleteInquiry(ctx, 2), "failed to delete inquiry: boom")
	})
}
