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

func TestDashboardService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mocks.NewMockAccountRepository(ctrl)
	progress := mocks.NewMockProgressRepository(ctrl)
	inquiries := mocks.NewMockInquiryRepository(ctrl)
	notifications := mocks.NewMockNotificationRepository(ctrl)
	service := NewDashboardService(accounts, progress, inquiries, notifications, time.UTC, logger.NewMockLogger(t))
	ctx := context.Background()

	dateRange := domain.DateRange{From: "2024-01-01", To: "2024-01-31"}
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("referenceid is required", func(t *testing.T) {
		_, err := service.Summary(ctx, "", dateRange)
		assert.EqualError(t, err, "validation error: referenceid is required")
	})

	t.Run("combines every count", func(t *testing.T) {
		accounts.EXPECT().CountByStatus(gomock.Any(), "REF-1", &from, &before).
			Return(map[string]int64{"Active": 4, "Inactive": 1}, nil)
		progress.EXPECT().Totals(gomock.Any(), "REF-1", &from, &before).
			Return(&domain.ProgressTotals{Activities: 12, QuotationAmount: 5000, SOAmount: 3000, ActualSales: 2500}, nil)
		inquiries.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f domain.InquiryFilter) (int64, error) {
				assert.Equal(t, "REF-1", f.ReferenceID)
				assert.Equal(t, from, *f.CreatedFrom)
				assert.Equal(t, before, *f.CreatedBefore)
				return 3, nil
			})
		notifications.EXPECT().CountUnread(gomock.Any(), "REF-1").Return(int64(7), nil)

		summary, err := service.Summary(ctx, "REF-1", dateRange)
		require.NoError(t, err)

		assert.Equal(t, &domain.DashboardSummary{
			ReferenceID:         "REF-1",
			Range:               dateRange,
			AccountsByStatus:    map[string]int64{"Active": 4, "Inactive": 1},
			Progress:            domain.ProgressTotals{Activities: 12, QuotationAmount: 5000, SOAmount: 3000, ActualSales: 2500},
			Inquiries:           3,
			UnreadNotifications: 7,
		}, summary)
	})

	t.Run("empty results", func(t *testing.T) {
		accounts.EXPECT().CountByStatus(gomock.Any(), "REF-2", nil, nil).Return(nil, nil)
		progress.EXPECT().Totals(gomock.Any(), "REF-2", nil, nil).Return(nil, nil)
		inquiries.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(0), nil)
		notifications.EXPECT().CountUnread(gomock.Any(), "REF-2").Return(int64(0), nil)

		summary, err := service.Summary(ctx, "REF-2", domain.DateRange{})
		require.NoError(t, err)
		assert.Equal(t, map[string]int64{}, summary.AccountsByStatus)
		assert.Equal(t, domain.ProgressTotals{}, summary.Progress)
	})

	t.Run("one failing query fails the summary", func(t *testing.T) {
		accounts.EXPECT().CountByStatus(gomock.Any(), "REF-3", nil, nil).Return(map[string]int64{}, nil).AnyTimes()
		progress.EXPECT().Totals(gomock.Any(), "REF-3", nil, nil).Return(nil, errors.New("statement timeout")).AnyTimes()
		inquiries.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
		notifications.EXPECT().CountUnread(gomock.Any(), "REF-3").Return(int64(0), nil).AnyTimes()

		_, err := service.Summary(ctx, "REF-3", domain.DateRange{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sum activities: statement timeout")
	})
}
