package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/salesdesk/salesdesk/internal/domain"
)

type emailRepository struct {
	db *sql.DB
}

// NewEmailRepository creates a new PostgreSQL email log repository
func NewEmailRepository(db *sql.DB) domain.EmailRepository {
	return &emailRepository{db: db}
}

func (r *emailRepository) List(ctx context.Context, referenceID string) ([]*domain.Email, error) {
	query := `SELECT ` + domain.EmailColumns + ` FROM email WHERE referenceid = $1 ORDER BY date_created DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, referenceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list emails: %w", err)
	}
	defer rows.Close()

	emails := make([]*domain.Email, 0)
	for rows.Next() {
		e, err := domain.ScanEmail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan email: %w", err)
		}
		emails = append(emails, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating email rows: %w", err)
	}

	return emails, nil
}

func (r *emailRepository) Create(ctx context.Context, e *domain.Email) error {
	query := `
		INSERT INTO email (referenceid, sender, recipient, subject, message, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, date_created
	`
	err := r.db.QueryRowContext(ctx, query, e.ReferenceID, e.Sender, e.Recipient, e.Subject, e.Message, e.Status).
		Scan(&e.ID, &e.DateCreated)
	if err != nil {
		return fmt.Errorf("failed to create email: %w", err)
	}
	return nil
}

func (r *emailRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM email WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete email: %w", err)
	}
	return expectAffected(result, "email", id)
}
