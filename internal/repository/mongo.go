package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/salesdesk/salesdesk/internal/domain"
)

// Document collection names
const (
	CollectionUsers      = "users"
	CollectionMonitoring = "monitoring"
	CollectionTracking   = "Tracking"
	CollectionTaskLog    = "TaskLog"
	CollectionCategories = "Categories"
	CollectionInventory  = "Inventory"
)

// documentStore wraps a collection holding documents of type T
type documentStore[T any] struct {
	coll   *mongo.Collection
	entity string
}

func newDocumentStore[T any](db *mongo.Database, collection, entity string) documentStore[T] {
	return documentStore[T]{coll: db.Collection(collection), entity: entity}
}

func (s documentStore[T]) find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]*T, error) {
	cursor, err := s.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to find %s: %w", s.entity, err)
	}
	defer cursor.Close(ctx)

	items := make([]*T, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.entity, err)
	}
	return items, nil
}

func (s documentStore[T]) findOne(ctx context.Context, filter interface{}, notFoundID interface{}) (*T, error) {
	var item T
	err := s.coll.FindOne(ctx, filter).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.NewNotFound(s.entity, notFoundID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", s.entity, err)
	}
	return &item, nil
}

func (s documentStore[T]) findByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return s.findOne(ctx, bson.M{"_id": id}, id.Hex())
}

// insert stores doc and returns the generated id
func (s documentStore[T]) insert(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	result, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected %s id type %T", s.entity, result.InsertedID)
	}
	return id, nil
}

// setByID applies a $set to one document; a missing document is reported as not found
func (s documentStore[T]) setByID(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.NewNotFound(s.entity, id.Hex())
	}
	return nil
}

func (s documentStore[T]) deleteByID(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.entity, err)
	}
	if result.DeletedCount == 0 {
		return domain.NewNotFound(s.entity, id.Hex())
	}
	return nil
}

// createdAtBetween restricts filter to documents created within [from, before)
func createdAtBetween(filter bson.M, from, before *time.Time) bson.M {
	if from == nil && before == nil {
		return filter
	}
	cond := bson.M{}
	if from != nil {
		cond["$gte"] = *from
	}
	if before != nil {
		cond["$lt"] = *before
	}
	filter["createdAt"] = cond
	return filter
}

// newestFirst sorts by creation time descending
func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

// conflictOr maps a duplicate key error to ErrConflict, passes not-found through and wraps anything else
func conflictOr(err error, entity, field, action string) error {
	var notFound *domain.ErrNotFound
	if errors.As(err, &notFound) {
		return err
	}
	if mongo.IsDuplicateKeyError(err) {
		return &domain.ErrConflict{Entity: entity, Field: field}
	}
	return fmt.Errorf("failed to %s %s: %w", action, entity, err)
}
