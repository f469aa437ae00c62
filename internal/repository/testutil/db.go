package testutil

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// SetupMockDB opens a sqlmock-backed connection that matches queries as regular expressions
func SetupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	cleanup := func() {
		_ = db.Close()
	}

	return db, mock, cleanup
}

// Columns splits a select list such as domain.AccountColumns into column names
func Columns(selectList string) []string {
	var cols []string
	for _, col := range strings.Split(selectList, ",") {
		if col = strings.TrimSpace(col); col != "" {
			cols = append(cols, col)
		}
	}
	return cols
}
