// Package catalog provides the menu sources the storefront reads from.
package catalog

import (
	"context"
	"fmt"

	"github.com/Beka01247/cafe/internal/domain"
	"github.com/Beka01247/cafe/internal/repo"
)

const (
	SourceStore    = "store"
	SourceStatic   = "static"
	SourceAirtable = "airtable"
)

type Source interface {
	Name() string
	Items(ctx context.Context) ([]domain.FoodItem, error)
	Item(ctx context.Context, id string) (*domain.FoodItem, error)
}

// findItem looks an id up in a full listing, for sources without point reads.
func findItem(ctx context.Context, s Source, id string) (*domain.FoodItem, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("menu item %s: %w", id, domain.ErrNotFound)
}

// StoreSource reads the admin-managed menu from the repository.
type StoreSource struct {
	repo repo.MenuRepository
}

func NewStoreSource(r repo.MenuRepository) *StoreSource {
	return &StoreSource{repo: r}
}

func (s *StoreSource) Name() string {
	return SourceStore
}

func (s *StoreSource) Items(ctx context.Context) ([]domain.FoodItem, error) {
	return s.repo.List(ctx)
}

func (s *StoreSource) Item(ctx context.Context, id string) (*domain.FoodItem, error) {
	return s.repo.GetByID(ctx, id)
}
