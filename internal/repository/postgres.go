package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/salesdesk/salesdesk/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// likeEscaper neutralises LIKE wildcards; backslash is the default Postgres escape character
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a substring match pattern that treats term literally
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// expectAffected turns a zero-row result into a not-found error
func expectAffected(result sql.Result, entity string, id interface{}) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return domain.NewNotFound(entity, id)
	}
	return nil
}

// createdBetween restricts a query to rows created within [from, before)
func createdBetween(query sq.SelectBuilder, from, before *time.Time) sq.SelectBuilder {
	if from != nil {
		query = query.Where(sq.GtOrEq{"date_created": *from})
	}
	if before != nil {
		query = query.Where(sq.Lt{"date_created": *before})
	}
	return query
}
