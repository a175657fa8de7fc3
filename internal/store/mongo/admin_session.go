package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Beka01247/cafe/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdminSessionRepository struct {
	collection *mongo.Collection
}

func NewAdminSessionRepository(db *mongo.Database) *AdminSessionRepository {
	return &AdminSessionRepository{
		collection: db.Collection(collectionSessions),
	}
}

func (r *AdminSessionRepository) Create(ctx context.Context, session *domain.AdminSession) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, session); err != nil {
		return fmt.Errorf("failed to create admin session: %w", err)
	}

	return nil
}

func (r *AdminSessionRepository) Get(ctx context.Context, token string) (*domain.AdminSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var session domain.AdminSession
	err := r.collection.FindOne(ctx, bson.M{"_id": token}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("admin session: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get admin session: %w", err)
	}

	return &session, nil
}

func (r *AdminSessionRepository) Delete(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": token}); err != nil {
		return fmt.Errorf("failed to delete admin session: %w", err)
	}

	return nil
}
