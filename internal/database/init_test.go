package database

import (
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/salesdesk/internal/database/schema"
)

func TestInitializeDatabase(t *testing.T) {
	t.Run("creates tables successfully", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		for range schema.TableDefinitions {
			mock.ExpectExec("CREATE").WillReturnResult(sqlmock.NewResult(0, 0))
		}

		assert.NoError(t, InitializeDatabase(db))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stops at the first failing statement", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS accounts").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS progress").WillReturnError(errors.New("permission denied"))

		err = InitializeDatabase(db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create table")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCleanDatabase(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for i := len(schema.TableNames) - 1; i >= 0; i-- {
		mock.ExpectExec("DROP TABLE IF EXISTS " + schema.TableNames[i]).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	assert.NoError(t, CleanDatabase(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableDefinitionsCoverTableNames(t *testing.T) {
	for _, name := range schema.TableNames {
		found := false
		for _, stmt := range schema.TableDefinitions {
			if strings.HasPrefix(stmt, "CREATE TABLE IF NOT EXISTS "+name+" (") {
				found = true
				break
			}
		}
		assert.True(t, found, "no CREATE TABLE for %s", name)
	}
}
