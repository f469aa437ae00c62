package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/internal/repository/testutil"
)

func TestRecordRepository_List(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewRecordRepository(db)
	now := time.Now().UTC()

	t.Run("scoped kind filters by reference", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, referenceid, title, description, date_created, date_updated FROM notes WHERE referenceid = \$1 ORDER BY date_created DESC, id DESC`).
			WithArgs("TSA-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "referenceid", "title", "description", "date_created", "date_updated"}).
				AddRow(1, "TSA-1", "Call back", "Tuesday", now, now))

		records, err := repo.List(context.Background(), domain.NoteSchema, "TSA-1")
		require.NoError(t, err)
		require.Len(t, records, 1)
		note, ok := records[0].(*domain.Note)
		require.True(t, ok)
		assert.Equal(t, "Call back", note.Title)
	})

	t.Run("global kind lists everything", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, title, description, date_created, date_updated FROM faqs ORDER BY`).
			WithArgs().
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "date_created", "date_updated"}).
				AddRow(1, "Hours?", "9-5", now, now).
				AddRow(2, "Returns?", "30 days", now, now))

		records, err := repo.List(context.Background(), domain.FAQSchema, "")
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_Create(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewRecordRepository(db)
	now := time.Now().UTC()
	link := &domain.Link{ReferenceID: "TSA-1", Title: "Docs", URL: "https://example.com"}

	mock.ExpectQuery(`INSERT INTO links \(referenceid,title,url\) VALUES \(\$1,\$2,\$3\) RETURNING id, referenceid, title, url, date_created, date_updated`).
		WithArgs("TSA-1", "Docs", "https://example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "referenceid", "title", "url", "date_created", "date_updated"}).
			AddRow(10, "TSA-1", "Docs", "https://example.com", now, now))

	require.NoError(t, repo.Create(context.Background(), domain.LinkSchema, link))
	assert.Equal(t, int64(10), link.ID)
	assert.Equal(t, now, link.DateCreated)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_UpdateDelete(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewRecordRepository(db)
	tutorial := &domain.Tutorial{ID: 4, Title: "Onboarding", Link: "https://example.com/v", Category: "HR"}

	mock.ExpectExec(`UPDATE tutorials SET title = \$1, link = \$2, description = \$3, category = \$4, date_updated = NOW\(\) WHERE id = \$5`).
		WithArgs("Onboarding", "https://example.com/v", "", "HR", int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Update(context.Background(), domain.TutorialSchema, tutorial))

	mock.ExpectExec(`UPDATE tutorials`).WillReturnResult(sqlmock.NewResult(0, 0))
	var notFound *domain.ErrNotFound
	require.ErrorAs(t, repo.Update(context.Background(), domain.TutorialSchema, tutorial), &notFound)
	assert.Equal(t, "tutorial", notFound.Entity)

	mock.ExpectExec(`DELETE FROM notes WHERE id = \$1`).WithArgs(int64(77)).WillReturnResult(sqlmock.NewResult(0, 0))
	require.ErrorAs(t, repo.Delete(context.Background(), domain.NoteSchema, 77), &notFound)
	assert.Equal(t, "note", notFound.Entity)

	mock.ExpectExec(`DELETE FROM notes WHERE id = \$1`).WithArgs(int64(78)).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), domain.NoteSchema, 78))

	assert.NoError(t, mock.ExpectationsWereMet())
}
