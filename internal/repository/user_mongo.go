package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/salesdesk/salesdesk/internal/domain"
)

type userRepository struct {
	store documentStore[domain.User]
}

// NewUserRepository creates a new MongoDB user repository
func NewUserRepository(db *mongo.Database) domain.UserRepository {
	return &userRepository{store: newDocumentStore[domain.User](db, CollectionUsers, "user")}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	id, err := r.store.insert(ctx, user)
	if err != nil {
		return conflictOr(err, "user", "email", "create")
	}
	user.ID = id
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return r.store.findByID(ctx, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.store.findOne(ctx, bson.M{"Email": email}, email)
}

func (r *userRepository) List(ctx context.Context, filter domain.UserFilter) ([]*domain.User, error) {
	query := bson.M{}
	if filter.Role != "" {
		query["Role"] = filter.Role
	}
	if filter.Manager != "" {
		query["Manager"] = filter.Manager
	}
	if filter.TSM != "" {
		query["TSM"] = filter.TSM
	}
	if filter.Department != "" {
		query["Department"] = filter.Department
	}

	opts := options.Find().SetSort(bson.D{{Key: "Lastname", Value: 1}, {Key: "Firstname", Value: 1}})
	return r.store.find(ctx, query, opts)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now().UTC()

	fields := bson.M{
		"Firstname":  user.Firstname,
		"Lastname":   user.Lastname,
		"Email":      user.Email,
		"Role":       user.Role,
		"Manager":    user.Manager,
		"TSM":        user.TSM,
		"Department": user.Department,
		"updatedAt":  user.UpdatedAt,
	}
	if user.Status != "" {
		fields["Status"] = user.Status
	}

	err := r.store.setByID(ctx, user.ID, fields)
	if err != nil {
		return conflictOr(err, "user", "email", "update")
	}
	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	err := r.store.setByID(ctx, id, bson.M{
		"Password":  passwordHash,
		"updatedAt": time.Now().UTC(),
	})
	if err != nil {
		return conflictOr(err, "user", "password", "update")
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.store.deleteByID(ctx, id)
}
