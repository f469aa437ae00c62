package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

// DashboardService builds the home page summary from independent aggregate queries
type DashboardService struct {
	accounts      domain.AccountRepository
	progress      domain.ProgressRepository
	inquiries     domain.InquiryRepository
	notifications domain.NotificationRepository
	location      *time.Location
	logger        logger.Logger
}

func NewDashboardService(
	accounts domain.AccountRepository,
	progress domain.ProgressRepository,
	inquiries domain.InquiryRepository,
	notifications domain.NotificationRepository,
	location *time.Location,
	logger logger.Logger,
) *DashboardService {
	return &DashboardService{
		accounts:      accounts,
		progress:      progress,
		inquiries:     inquiries,
		notifications: notifications,
		location:      location,
		logger:        logger,
	}
}

// Summary runs the four counts concurrently; the first failure cancels the rest
func (s *DashboardService) Summary(ctx context.Context, referenceID string, dateRange domain.DateRange) (*domain.DashboardSummary, error) {
	if referenceID == "" {
		return nil, domain.NewValidationError("referenceid is required")
	}
	from, before := dateRange.Bounds(s.location)

	summary := &domain.DashboardSummary{
		ReferenceID: referenceID,
		Range:       dateRange,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		counts, err := s.accounts.CountByStatus(gctx, referenceID, from, before)
		if err != nil {
			return fmt.Errorf("count accounts: %w", err)
		}
		summary.AccountsByStatus = counts
		return nil
	})

	g.Go(func() error {
		totals, err := s.progress.Totals(gctx, referenceID, from, before)
		if err != nil {
			return fmt.Errorf("sum activities: %w", err)
		}
		if totals != nil {
			summary.Progress = *totals
		}
		return nil
	})

	g.Go(func() error {
		count, err := s.inquiries.Count(gctx, domain.InquiryFilter{
			ReferenceID:   referenceID,
			CreatedFrom:   from,
			CreatedBefore: before,
		})
		if err != nil {
			return fmt.Errorf("count inquiries: %w", err)
		}
		summary.Inquiries = count
		return nil
	})

	g.Go(func() error {
		count, err := s.notifications.CountUnread(gctx, referenceID)
		if err != nil {
			return fmt.Errorf("count notifications: %w", err)
		}
		summary.UnreadNotifications = count
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.WithField("referenceid", referenceID).Error(fmt.Sprintf("Failed to build dashboard summary: %v", err))
		return nil, fmt.Errorf("failed to build dashboard summary: %w", err)
	}

	if summary.AccountsByStatus == nil {
		summary.AccountsByStatus = map[string]int64{}
	}
	return summary, nil
}
