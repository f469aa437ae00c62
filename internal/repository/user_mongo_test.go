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

const mockNamespace = "salesdesk.users"

func userDoc(id primitive.ObjectID, email, role string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "ReferenceID", Value: "TSA-1"},
		{Key: "Firstname", Value: "Ana"},
		{Key: "Lastname", Value: "Cruz"},
		{Key: "Email", Value: email},
		{Key: "Role", Value: role},
		{Key: "Status", Value: domain.UserStatusActive},
		{Key: "Password", Value: "$2a$10$hash"},
		{Key: "createdAt", Value: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func TestUserRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns id and timestamps", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewUserRepository(mt.DB)

		user := &domain.User{Email: "ana@example.com", Role: domain.RoleTSA}
		require.NoError(t, repo.Create(context.Background(), user))
		assert.False(t, user.ID.IsZero())
		assert.False(t, user.CreatedAt.IsZero())
		assert.Equal(t, "insert", mt.GetStartedEvent().CommandName)
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key error"}))
		repo := NewUserRepository(mt.DB)

		err := repo.Create(context.Background(), &domain.User{Email: "ana@example.com"})
		var conflict *domain.ErrConflict
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "email", conflict.Field)
	})
}

func TestUserRepository_Get(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	id := primitive.NewObjectID()

	mt.Run("by id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mockNamespace, mtest.FirstBatch, userDoc(id, "ana@example.com", domain.RoleTSA)))
		repo := NewUserRepository(mt.DB)

		user, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	})

	mt.Run("by email not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mockNamespace, mtest.FirstBatch))
		repo := NewUserRepository(mt.DB)

		_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
		var notFound *domain.ErrNotFound
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "nobody@example.com", notFound.ID)
	})
}

func TestUserRepository_List(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("filters by role", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mockNamespace, mtest.FirstBatch,
			userDoc(primitive.NewObjectID(), "a@example.com", domain.RoleManager),
			userDoc(primitive.NewObjectID(), "b@example.com", domain.RoleManager),
		))
		repo := NewUserRepository(mt.DB)

		users, err := repo.List(context.Background(), domain.UserFilter{Role: domain.RoleManager})
		require.NoError(t, err)
		assert.Len(t, users, 2)

		filter := mt.GetStartedEvent().Command.Lookup("filter").Document()
		assert.Equal(t, domain.RoleManager, filter.Lookup("Role").StringValue())
	})
}

func TestUserRepository_UpdateDelete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	id := primitive.NewObjectID()

	mt.Run("update matched", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))
		repo := NewUserRepository(mt.DB)

		require.NoError(t, repo.Update(context.Background(), &domain.User{ID: id, Firstname: "Ana"}))

		set := mt.GetStartedEvent().Command.Lookup("updates", "0", "u", "$set").Document()
		assert.Equal(t, "Ana", set.Lookup("Firstname").StringValue())
		_, err := set.LookupErr("Status")
		assert.Error(t, err, "empty status keeps the stored one")
	})

	mt.Run("update with status", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))
		repo := NewUserRepository(mt.DB)

		require.NoError(t, repo.Update(context.Background(), &domain.User{ID: id, Firstname: "Ana", Status: domain.UserStatusLocked}))

		set := mt.GetStartedEvent().Command.Lookup("updates", "0", "u", "$set").Document()
		assert.Equal(t, domain.UserStatusLocked, set.Lookup("Status").StringValue())
	})

	mt.Run("update missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))
		repo := NewUserRepository(mt.DB)

		var notFound *domain.ErrNotFound
		assert.ErrorAs(t, repo.UpdatePassword(context.Background(), id, "hash"), &notFound)
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		repo := NewUserRepository(mt.DB)

		var notFound *domain.ErrNotFound
		require.ErrorAs(t, repo.Delete(context.Background(), id), &notFound)
		assert.Equal(t, id.Hex(), notFound.ID)
	})

	mt.Run("delete existing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		repo := NewUserRepository(mt.DB)

		assert.NoError(t, repo.Delete(context.Background(), id))
	})
}
