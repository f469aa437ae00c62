package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/salesdesk/salesdesk/internal/domain"
)

// recordRepository serves every table described by a domain.RecordSchema
type recordRepository struct {
	db *sql.DB
}

// NewRecordRepository creates a new PostgreSQL repository for schema-described records
func NewRecordRepository(db *sql.DB) domain.RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) List(ctx context.Context, schema domain.RecordSchema, referenceID string) ([]domain.Record, error) {
	query := psql.Select(schema.SelectColumns()...).From(schema.Table)
	if schema.Scoped {
		query = query.Where(sq.Eq{"referenceid": referenceID})
	}

	sqlQuery, args, err := query.OrderBy("date_created DESC", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", schema.Kind, err)
	}
	defer rows.Close()

	records := make([]domain.Record, 0)
	for rows.Next() {
		record := schema.New()
		if err := rows.Scan(record.ScanTargets()...); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", schema.Entity, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", schema.Entity, err)
	}

	return records, nil
}

func (r *recordRepository) Create(ctx context.Context, schema domain.RecordSchema, record domain.Record) error {
	values := record.Values()
	vals := make([]interface{}, len(schema.Columns))
	for i, col := range schema.Columns {
		vals[i] = values[col]
	}

	sqlQuery, args, err := psql.Insert(schema.Table).
		Columns(schema.Columns...).
		Values(vals...).
		Suffix("RETURNING " + strings.Join(schema.SelectColumns(), ", ")).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, sqlQuery, args...).Scan(record.ScanTargets()...); err != nil {
		return fmt.Errorf("failed to create %s: %w", schema.Entity, err)
	}
	return nil
}

func (r *recordRepository) Update(ctx context.Context, schema domain.RecordSchema, record domain.Record) error {
	values := record.Values()
	query := psql.Update(schema.Table)
	for _, col := range schema.Columns {
		query = query.Set(col, values[col])
	}

	sqlQuery, args, err := query.
		Set("date_updated", sq.Expr("NOW()")).
		Where(sq.Eq{"id": record.GetID()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", schema.Entity, err)
	}
	return expectAffected(result, schema.Entity, record.GetID())
}

func (r *recordRepository) Delete(ctx context.Context, schema domain.RecordSchema, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM `+schema.Table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", schema.Entity, err)
	}
	return expectAffected(result, schema.Entity, id)
}
