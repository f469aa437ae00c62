package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/salesdesk/salesdesk/internal/domain"
)

// collectionIndexes maps each document collection to the indexes it needs
var collectionIndexes = map[string][]mongo.IndexModel{
	"users": {
		{Keys: bson.D{{Key: "Email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "ReferenceID", Value: 1}}},
	},
	"monitoring": {
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
	},
	"Tracking": {
		{Keys: bson.D{{Key: "TicketNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "ReferenceID", Value: 1}, {Key: "createdAt", Value: -1}}},
	},
	"TaskLog": {
		{Keys: bson.D{{Key: "ReferenceID", Value: 1}, {Key: "createdAt", Value: -1}}},
	},
	"Categories": {
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	"Inventory": {
		{Keys: bson.D{{Key: "assetTag", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "status", Value: 1}}},
	},
}

// IndexedCollections lists collections in the order InitializeMongo creates their indexes
var IndexedCollections = []string{"users", "monitoring", "Tracking", "TaskLog", "Categories", "Inventory"}

// InitializeMongo creates the document indexes; existing indexes are left untouched
func InitializeMongo(ctx context.Context, db *mongo.Database) error {
	for _, name := range IndexedCollections {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, collectionIndexes[name]); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}
	return nil
}

// EnsureRootUser creates the Super Admin account for email when no user holds it yet
func EnsureRootUser(ctx context.Context, users domain.UserRepository, email, password string) error {
	if email == "" {
		return nil
	}

	_, err := users.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	var notFound *domain.ErrNotFound
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to check root user existence: %w", err)
	}

	if len(password) < domain.MinPasswordLength {
		return fmt.Errorf("ROOT_PASSWORD must be at least %d characters", domain.MinPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash root password: %w", err)
	}

	root := &domain.User{
		ReferenceID:  "ROOT",
		Firstname:    "Root",
		Lastname:     "User",
		Email:        email,
		Role:         domain.RoleSuperAdmin,
		Status:       domain.UserStatusActive,
		PasswordHash: string(hash),
	}
	if err := users.Create(ctx, root); err != nil {
		return fmt.Errorf("failed to create root user: %w", err)
	}
	return nil
}
