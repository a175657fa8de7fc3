package repo

import (
	"context"

	"github.com/Beka01247/cafe/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderFilter struct {
	Status domain.OrderStatus
	Limit  int64
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)
	// List returns orders newest first.
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, error)
	// UpdateStatus applies the change only while the stored order still has
	// the given status and version, otherwise it returns domain.ErrConflict.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, from domain.OrderStatus, version int64, to domain.OrderStatus) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
