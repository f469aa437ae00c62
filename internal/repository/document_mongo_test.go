package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/salesdesk/salesdesk/internal/domain"
)

func TestMonitoringRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewMonitoringRepository(mt.DB)

		entry := &domain.MonitoringEntry{UserID: "u1", Email: "ana@example.com", Action: "Login"}
		require.NoError(t, repo.Insert(context.Background(), entry))
		assert.False(t, entry.ID.IsZero())
		assert.False(t, entry.CreatedAt.IsZero())
	})

	mt.Run("list within range", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "salesdesk.monitoring", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "userId", Value: "u1"}, {Key: "action", Value: "Login"}},
		))
		repo := NewMonitoringRepository(mt.DB)

		from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		entries, err := repo.List(context.Background(), domain.MonitoringFilter{UserID: "u1", CreatedFrom: &from})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Login", entries[0].Action)

		filter := mt.GetStartedEvent().Command.Lookup("filter").Document()
		_, err = filter.LookupErr("createdAt", "$gte")
		assert.NoError(t, err)
	})
}

func TestTrackingRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	id := primitive.NewObjectID()

	mt.Run("list by reference", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "salesdesk.Tracking", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "ReferenceID", Value: "CSR-1"}, {Key: "TicketNumber", Value: "T-1"}},
		))
		repo := NewTrackingRepository(mt.DB)

		items, err := repo.List(context.Background(), "CSR-1")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "T-1", items[0].TicketNumber)
	})

	mt.Run("update missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))
		repo := NewTrackingRepository(mt.DB)

		var notFound *domain.ErrNotFound
		assert.ErrorAs(t, repo.Update(context.Background(), &domain.Tracking{ID: id}), &notFound)
	})

	mt.Run("create and delete", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		repo := NewTrackingRepository(mt.DB)

		tracking := &domain.Tracking{ReferenceID: "CSR-1", TicketNumber: "T-2", CompanyName: "Acme"}
		require.NoError(t, repo.Create(context.Background(), tracking))
		require.NoError(t, repo.Delete(context.Background(), tracking.ID))
	})
}

func TestTaskLogRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create then list", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, "salesdesk.TaskLog", mtest.FirstBatch,
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "ReferenceID", Value: "TSA-1"}, {Key: "Status", Value: "Login"}},
			),
		)
		repo := NewTaskLogRepository(mt.DB)

		require.NoError(t, repo.Create(context.Background(), &domain.TaskLog{ReferenceID: "TSA-1", Status: domain.TaskLogLogin}))

		logs, err := repo.List(context.Background(), domain.TaskLogFilter{ReferenceID: "TSA-1"})
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, domain.TaskLogLogin, logs[0].Status)
	})
}

func TestCategoryRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("duplicate name", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key error"}))
		repo := NewCategoryRepository(mt.DB)

		var conflict *domain.ErrConflict
		require.ErrorAs(t, repo.Create(context.Background(), &domain.Category{Name: "Laptops"}), &conflict)
		assert.Equal(t, "category with this name already exists", conflict.Error())
	})

	mt.Run("list and update", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "salesdesk.Categories", mtest.FirstBatch,
				bson.D{{Key: "_id", Value: id}, {Key: "name", Value: "Laptops"}},
			),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
		)
		repo := NewCategoryRepository(mt.DB)

		categories, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, categories, 1)

		categories[0].Description = "Portable computers"
		require.NoError(t, repo.Update(context.Background(), categories[0]))
	})
}

func TestInventoryRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	a, b := primitive.NewObjectID(), primitive.NewObjectID()

	mt.Run("get missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "salesdesk.Inventory", mtest.FirstBatch))
		repo := NewInventoryRepository(mt.DB)

		var notFound *domain.ErrNotFound
		_, err := repo.GetByID(context.Background(), a)
		assert.ErrorAs(t, err, &notFound)
	})

	mt.Run("list by status", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "salesdesk.Inventory", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: a}, {Key: "assetTag", Value: "IT-1"}, {Key: "status", Value: "Spare"}, {Key: "price", Value: 500.0}},
		))
		repo := NewInventoryRepository(mt.DB)

		items, err := repo.List(context.Background(), domain.InventoryFilter{Status: domain.InventoryStatusSpare})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 500.0, items[0].Price)
	})

	mt.Run("bulk status is one update", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}, bson.E{Key: "nModified", Value: 2}))
		repo := NewInventoryRepository(mt.DB)

		n, err := repo.BulkUpdateStatus(context.Background(), []primitive.ObjectID{a, b}, domain.InventoryStatusDisposed)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		started := mt.GetAllStartedEvents()
		require.Len(t, started, 1)
		assert.Equal(t, "update", started[0].CommandName)
	})

	mt.Run("bulk status with no ids sends nothing", func(mt *mtest.T) {
		repo := NewInventoryRepository(mt.DB)

		n, err := repo.BulkUpdateStatus(context.Background(), nil, domain.InventoryStatusDisposed)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, mt.GetAllStartedEvents())
	})
}
