package repo

import (
	"context"

	"github.com/Beka01247/cafe/internal/domain"
)

type MenuRepository interface {
	List(ctx context.Context) ([]domain.FoodItem, error)
	GetByID(ctx context.Context, id string) (*domain.FoodItem, error)
	Create(ctx context.Context, item *domain.FoodItem) error
	Update(ctx context.Context, item *domain.FoodItem) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, items []domain.FoodItem) error
	Count(ctx context.Context) (int64, error)
}
