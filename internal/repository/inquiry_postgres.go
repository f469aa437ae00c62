package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/salesdesk/salesdesk/internal/domain"
)

type inquiryRepository struct {
	db *sql.DB
}

// NewInquiryRepository creates a new PostgreSQL inquiry repository
func NewInquiryRepository(db *sql.DB) domain.InquiryRepository {
	return &inquiryRepository{db: db}
}

func inquiryConditions(filter domain.InquiryFilter) sq.And {
	conds := sq.And{sq.Eq{"referenceid": filter.ReferenceID}}
	if filter.Status != "" {
		conds = append(conds, sq.Eq{"status": filter.Status})
	}
	if filter.CreatedFrom != nil {
		conds = append(conds, sq.GtOrEq{"date_created": *filter.CreatedFrom})
	}
	if filter.CreatedBefore != nil {
		conds = append(conds, sq.Lt{"date_created": *filter.CreatedBefore})
	}
	return conds
}

func (r *inquiryRepository) List(ctx context.Context, filter domain.InquiryFilter) ([]*domain.Inquiry, error) {
	sqlQuery, args, err := psql.Select(domain.InquiryColumns).
		From("inquiries").
		Where(inquiryConditions(filter)).
		OrderBy("date_created DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := make([]*domain.Inquiry, 0)
	for rows.Next() {
		inquiry, err := domain.ScanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, inquiry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inquiry rows: %w", err)
	}

	return inquiries, nil
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	query := `
		INSERT INTO inquiries (referenceid, companyname, contactname, contactnumber, emailaddress,
			channel, inquiry, status, wrapup)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, date_created, date_updated
	`
	err := r.db.QueryRowContext(ctx, query,
		inquiry.ReferenceID,
		inquiry.CompanyName,
		inquiry.ContactName,
		inquiry.ContactNumber,
		inquiry.EmailAddress,
		inquiry.Channel,
		inquiry.Inquiry,
		inquiry.Status,
		inquiry.WrapUp,
	).Scan(&inquiry.ID, &inquiry.DateCreated, &inquiry.DateUpdated)
	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}
	return nil
}

// Update writes the editable fields; an empty status keeps the stored one and is read back
func (r *inquiryRepository) Update(ctx context.Context, inquiry *domain.Inquiry) error {
	inquiry.DateUpdated = time.Now().UTC()

	query := `
		UPDATE inquiries
		SET companyname = $1, contactname = $2, contactnumber = $3, emailaddress = $4, channel = $5,
			inquiry = $6, status = COALESCE(NULLIF($7::text, ''), status), wrapup = $8, date_updated = $9
		WHERE id = $10
		RETURNING status
	`
	err := r.db.QueryRowContext(ctx, query,
		inquiry.CompanyName,
		inquiry.ContactName,
		inquiry.ContactNumber,
		inquiry.EmailAddress,
		inquiry.Channel,
		inquiry.Inquiry,
		inquiry.Status,
		inquiry.WrapUp,
		inquiry.DateUpdated,
		inquiry.ID,
	).Scan(&inquiry.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFound("inquiry", inquiry.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update inquiry: %w", err)
	}
	return nil
}

func (r *inquiryRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE inquiries SET status = $1, date_updated = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update inquiry status: %w", err)
	}
	return expectAffected(result, "inquiry", id)
}

func (r *inquiryRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM inquiries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inquiry: %w", err)
	}
	return expectAffected(result, "inquiry", id)
}

func (r *inquiryRepository) Count(ctx context.Context, filter domain.InquiryFilter) (int64, error) {
	sqlQuery, args, err := psql.Select("COUNT(*)").
		From("inquiries").
		Where(inquiryConditions(filter)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, sqlQuery, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count inquiries: %w", err)
	}
	return count, nil
}
