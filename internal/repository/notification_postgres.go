package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/salesdesk/salesdesk/internal/domain"
)

type notificationRepository struct {
	db *sql.DB
}

// NewNotificationRepository creates a new PostgreSQL notification repository
func NewNotificationRepository(db *sql.DB) domain.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) List(ctx context.Context, referenceID, status string) ([]*domain.Notification, error) {
	query := `SELECT ` + domain.NotificationColumns + ` FROM notification WHERE referenceid = $1`
	args := []interface{}{referenceID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY date_created DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		n, err := domain.ScanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}

	return notifications, nil
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notification (referenceid, type, message, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, date_created
	`
	err := r.db.QueryRowContext(ctx, query, n.ReferenceID, n.Type, n.Message, n.Status).
		Scan(&n.ID, &n.DateCreated)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, ids domain.IDList) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := `UPDATE notification SET status = $1 WHERE id = ANY($2)`

	result, err := r.db.ExecContext(ctx, query, domain.NotificationStatusRead, pq.Array([]int64(ids)))
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return rows, nil
}

func (r *notificationRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notification WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return expectAffected(result, "notification", id)
}

func (r *notificationRepository) CountUnread(ctx context.Context, referenceID string) (int64, error) {
	query := `SELECT COUNT(*) FROM notification WHERE referenceid = $1 AND status = $2`

	var count int64
	if err := r.db.QueryRowContext(ctx, query, referenceID, domain.NotificationStatusUnread).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}
	return count, nil
}
