package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/internal/domain/mocks"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

func setupRecordHandlerTest(t *testing.T) (*mocks.MockRecordService, *http.ServeMux) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := mocks.NewMockRecordService(ctrl)
	handler := NewRecordHandler(service, staticVerifier{}, logger.NewMockLogger(t))

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	return service, mux
}

// schemaKind matches a RecordSchema by its kind
type schemaKind string

func (k schemaKind) Matches(x interface{}) bool {
	s, ok := x.(domain.RecordSchema)
	return ok && s.Kind == string(k)
}

func (k schemaKind) String() string { return "schema " + string(k) }

func TestRecordHandler_RegistersEveryKind(t *testing.T) {
	_, mux := setupRecordHandlerTest(t)

	for _, schema := range domain.RecordSchemas() {
		for _, verb := range []string{"list", "create", "update", "delete"} {
			_, pattern := mux.Handler(newRequest(t, http.MethodGet, "/api/"+schema.Kind+"."+verb, nil))
			assert.Equal(t, "/api/"+schema.Kind+"."+verb, pattern)
		}
	}
}

func TestRecordHandler_List(t *testing.T) {
	service, mux := setupRecordHandlerTest(t)

	t.Run("scoped kind requires reference", func(t *testing.T) {
		w := serve(mux, newRequest(t, http.MethodGet, "/api/notes.list", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "referenceid is required", decodeEnvelope(t, w).Error)
	})

	t.Run("scoped kind", func(t *testing.T) {
		service.EXPECT().ListRecords(gomock.Any(), schemaKind("notes"), "TSA-001").
			Return([]domain.Record{&domain.Note{ID: 1, Title: "Call back"}}, nil)

		w := serve(mux, newRequest(t, http.MethodGet, "/api/notes.list?referenceid=TSA-001", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var notes []domain.Note
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &notes))
		assert.Equal(t, "Call back", notes[0].Title)
	})

	t.Run("global kind", func(t *testing.T) {
		service.EXPECT().ListRecords(gomock.Any(), schemaKind("faqs"), "").Return(nil, nil)

		w := serve(mux, newRequest(t, http.MethodGet, "/api/faqs.list", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"data":[],"count":0}`, w.Body.String())
	})
}

func TestRecordHandler_Create(t *testing.T) {
	service, mux := setupRecordHandlerTest(t)

	t.Run("decodes into the schema type", func(t *testing.T) {
		service.EXPECT().CreateRecord(gomock.Any(), schemaKind("links"), gomock.Any()).DoAndReturn(
			func(_ interface{}, _ domain.RecordSchema, record domain.Record) error {
				link, ok := record.(*domain.Link)
				require.True(t, ok)
				assert.Equal(t, "https://example.com/catalog", link.URL)
				assert.Equal(t, int64(0), link.ID)
				link.ID = 12
				return nil
			})

		w := serve(mux, newRequest(t, http.MethodPost, "/api/links.create", map[string]interface{}{
			"id":          99,
			"referenceid": "TSA-001",
			"title":       "Catalog",
			"url":         "https://example.com/catalog",
		}))

		assert.Equal(t, http.StatusCreated, w.Code)
		var link domain.Link
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &link))
		assert.Equal(t, int64(12), link.ID)
	})

	t.Run("validation error from service", func(t *testing.T) {
		service.EXPECT().CreateRecord(gomock.Any(), schemaKind("tutorials"), gomock.Any()).
			Return(domain.NewValidationError("title is required"))

		w := serve(mux, newRequest(t, http.MethodPost, "/api/tutorials.create", map[string]string{"link": "https://example.com"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "validation error: title is required", decodeEnvelope(t, w).Error)
	})
}

func TestRecordHandler_UpdateAndDelete(t *testing.T) {
	service, mux := setupRecordHandlerTest(t)

	service.EXPECT().UpdateRecord(gomock.Any(), schemaKind("faqs"), gomock.Any()).Return(domain.NewNotFound("faq", 3))
	w := serve(mux, newRequest(t, http.MethodPut, "/api/faqs.update", map[string]interface{}{
		"id":          3,
		"title":       "Returns",
		"description": "Within 30 days",
	}))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "faq not found with ID: 3", decodeEnvelope(t, w).Error)

	service.EXPECT().DeleteRecord(gomock.Any(), schemaKind("notes"), int64(3)).Return(nil)
	w = serve(mux, newRequest(t, http.MethodDelete, "/api/notes.delete?id=3", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Deleted note", decodeEnvelope(t, w).Message)
}
