package repo

import (
	"context"

	"github.com/Beka01247/cafe/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatusAuditRepository interface {
	Create(ctx context.Context, audit *domain.OrderStatusAudit) error
	GetByOrderID(ctx context.Context, orderID primitive.ObjectID, limit int) ([]domain.OrderStatusAudit, error)
}
