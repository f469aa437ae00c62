package domain

import (
	"context"
	"net/url"
)

//go:generate mockgen -destination mocks/mock_dashboard_service.go -package mocks github.com/salesdesk/salesdesk/internal/domain DashboardService

// DashboardSummary aggregates the figures shown on a user's home page
type DashboardSummary struct {
	ReferenceID         string           `json:"referenceid"`
	Range               DateRange        `json:"range"`
	AccountsByStatus    map[string]int64 `json:"accounts_by_status"`
	Progress            ProgressTotals   `json:"progress"`
	Inquiries           int64            `json:"inquiries"`
	UnreadNotifications int64            `json:"unread_notifications"`
}

type DashboardSummaryRequest struct {
	ReferenceID string
	Range       DateRange
}

func (r *DashboardSummaryRequest) FromURLParams(queryParams url.Values) error {
	ref, err := requireReference(queryParams)
	if err != nil {
		return err
	}
	r.ReferenceID = ref
	return r.Range.FromURLParams(queryParams)
}

type DashboardService interface {
	Summary(ctx context.Context, referenceID string, dateRange DateRange) (*DashboardSummary, error)
}
