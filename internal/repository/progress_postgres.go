package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/salesdesk/salesdesk/internal/domain"
)

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new PostgreSQL activity repository
func NewProgressRepository(db *sql.DB) domain.ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) List(ctx context.Context, filter domain.ProgressFilter) ([]*domain.Progress, error) {
	query := psql.Select(domain.ProgressColumns).From("progress")

	if filter.ReferenceID != "" {
		query = query.Where(sq.Eq{"referenceid": filter.ReferenceID})
	}
	if filter.Manager != "" {
		query = query.Where(sq.Eq{"manager": filter.Manager})
	}
	if filter.TSM != "" {
		query = query.Where(sq.Eq{"tsm": filter.TSM})
	}
	if filter.TypeActivity != "" {
		query = query.Where(sq.Eq{"typeactivity": filter.TypeActivity})
	}
	query = createdBetween(query, filter.CreatedFrom, filter.CreatedBefore).
		OrderBy("date_created DESC", "id DESC")

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.Progress, 0)
	for rows.Next() {
		p, err := domain.ScanProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan progress: %w", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating progress rows: %w", err)
	}

	return items, nil
}

func (r *progressRepository) Create(ctx context.Context, p *domain.Progress) error {
	query := `
		INSERT INTO progress (referenceid, manager, tsm, agentname, companyname, contactperson, typeclient,
			typeactivity, callstatus, typecall, quotationnumber, quotationamount, sonumber, soamount,
			actualsales, remarks, status, startdate, enddate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, date_created
	`
	err := r.db.QueryRowContext(ctx, query,
		p.ReferenceID,
		p.Manager,
		p.TSM,
		p.AgentName,
		p.CompanyName,
		p.ContactPerson,
		p.TypeClient,
		p.TypeActivity,
		p.CallStatus,
		p.TypeCall,
		p.QuotationNumber,
		p.QuotationAmount,
		p.SONumber,
		p.SOAmount,
		p.ActualSales,
		p.Remarks,
		p.Status,
		p.StartDate,
		p.EndDate,
	).Scan(&p.ID, &p.DateCreated)
	if err != nil {
		return fmt.Errorf("failed to create progress: %w", err)
	}
	return nil
}

func (r *progressRepository) Update(ctx context.Context, p *domain.Progress) error {
	query := `
		UPDATE progress
		SET manager = $1, tsm = $2, agentname = $3, companyname = $4, contactperson = $5, typeclient = $6,
			typeactivity = $7, callstatus = $8, typecall = $9, quotationnumber = $10, quotationamount = $11,
			sonumber = $12, soamount = $13, actualsales = $14, remarks = $15, status = $16,
			startdate = $17, enddate = $18
		WHERE id = $19
	`
	result, err := r.db.ExecContext(ctx, query,
		p.Manager,
		p.TSM,
		p.AgentName,
		p.CompanyName,
		p.ContactPerson,
		p.TypeClient,
		p.TypeActivity,
		p.CallStatus,
		p.TypeCall,
		p.QuotationNumber,
		p.QuotationAmount,
		p.SONumber,
		p.SOAmount,
		p.ActualSales,
		p.Remarks,
		p.Status,
		p.StartDate,
		p.EndDate,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}
	return expectAffected(result, "progress", p.ID)
}

func (r *progressRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM progress WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete progress: %w", err)
	}
	return expectAffected(result, "progress", id)
}

func (r *progressRepository) Totals(ctx context.Context, referenceID string, from, before *time.Time) (*domain.ProgressTotals, error) {
	query := psql.Select(
		"COUNT(*)",
		"COALESCE(SUM(quotationamount), 0)",
		"COALESCE(SUM(soamount), 0)",
		"COALESCE(SUM(actualsales), 0)",
	).
		From("progress").
		Where(sq.Eq{"referenceid": referenceID})
	query = createdBetween(query, from, before)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var totals domain.ProgressTotals
	err = r.db.QueryRowContext(ctx, sqlQuery, args...).Scan(
		&totals.Activities,
		&totals.QuotationAmount,
		&totals.SOAmount,
		&totals.ActualSales,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to total progress: %w", err)
	}
	return &totals, nil
}
