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

type accountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new PostgreSQL account repository
func NewAccountRepository(db *sql.DB) domain.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) List(ctx context.Context, filter domain.AccountFilter) ([]*domain.Account, error) {
	query := psql.Select(domain.AccountColumns).
		From("accounts").
		Where(sq.Eq{"referenceid": filter.ReferenceID})

	if filter.Status != "" {
		query = query.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		query = query.Where(sq.Or{
			sq.ILike{"companyname": pattern},
			sq.ILike{"contactperson": pattern},
		})
	}
	query = createdBetween(query, filter.CreatedFrom, filter.CreatedBefore).
		OrderBy("date_created DESC", "id DESC")

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		account, err := domain.ScanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}

	return accounts, nil
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `SELECT ` + domain.AccountColumns + ` FROM accounts WHERE id = $1`

	account, err := domain.ScanAccount(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("account", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (referenceid, manager, tsm, companyname, contactperson, contactnumber,
			emailaddress, typeclient, address, area, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, date_created, date_updated
	`
	err := r.db.QueryRowContext(ctx, query,
		account.ReferenceID,
		account.Manager,
		account.TSM,
		account.CompanyName,
		account.ContactPerson,
		account.ContactNumber,
		account.EmailAddress,
		account.TypeClient,
		account.Address,
		account.Area,
		account.Status,
	).Scan(&account.ID, &account.DateCreated, &account.DateUpdated)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// Update writes the editable fields; an empty status keeps the stored one and is read back
func (r *accountRepository) Update(ctx context.Context, account *domain.Account) error {
	account.DateUpdated = time.Now().UTC()

	query := `
		UPDATE accounts
		SET manager = $1, tsm = $2, companyname = $3, contactperson = $4, contactnumber = $5,
			emailaddress = $6, typeclient = $7, address = $8, area = $9,
			status = COALESCE(NULLIF($10::text, ''), status), date_updated = $11
		WHERE id = $12
		RETURNING status
	`
	err := r.db.QueryRowContext(ctx, query,
		account.Manager,
		account.TSM,
		account.CompanyName,
		account.ContactPerson,
		account.ContactNumber,
		account.EmailAddress,
		account.TypeClient,
		account.Address,
		account.Area,
		account.Status,
		account.DateUpdated,
		account.ID,
	).Scan(&account.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFound("account", account.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

// UpdateStatus sets the status unconditionally, so repeating it leaves the row unchanged
func (r *accountRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE accounts SET status = $1, date_updated = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update account status: %w", err)
	}
	return expectAffected(result, "account", id)
}

func (r *accountRepository) BulkUpdate(ctx context.Context, ids domain.IDList, changes domain.AccountChanges) (int64, error) {
	cols := changes.Columns()
	if len(ids) == 0 || len(cols) == 0 {
		return 0, nil
	}

	query := psql.Update("accounts").
		SetMap(cols).
		Set("date_updated", time.Now().UTC()).
		Where(sq.Eq{"id": []int64(ids)})

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk update accounts: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return rows, nil
}

func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return expectAffected(result, "account", id)
}

func (r *accountRepository) CountByStatus(ctx context.Context, referenceID string, from, before *time.Time) (map[string]int64, error) {
	query := psql.Select("status", "COUNT(*)").
		From("accounts").
		Where(sq.Eq{"referenceid": referenceID})
	query = createdBetween(query, from, before).GroupBy("status")

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan account count: %w", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account counts: %w", err)
	}
	return counts, nil
}
