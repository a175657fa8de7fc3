package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Beka01247/cafe/internal/domain"
	"github.com/Beka01247/cafe/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderRepository struct {
	s *Store
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	stored := *order
	stored.Items = append([]domain.CartItem(nil), order.Items...)
	r.s.orders[order.ID] = stored
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id.Hex(), domain.ErrNotFound)
	}
	return &o, nil
}

func (r *OrderRepository) List(ctx context.Context, filter repo.OrderFilter) ([]domain.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	orders := make([]domain.Order, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		orders = append(orders, o)
	}

	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID.Hex() > orders[j].ID.Hex()
	})

	if filter.Limit > 0 && int64(len(orders)) > filter.Limit {
		orders = orders[:filter.Limit]
	}
	return orders, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, from domain.OrderStatus, version int64, to domain.OrderStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.orders[id]
	if !ok {
		return fmt.Errorf("order %s: %w", id.Hex(), domain.ErrNotFound)
	}
	if o.Status != from || o.Version != version {
		return fmt.Errorf("order %s: %w", id.Hex(), domain.ErrConflict)
	}

	o.Status = to
	o.Version++
	o.UpdatedAt = time.Now()
	r.s.orders[id] = o
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.orders[id]; !ok {
		return fmt.Errorf("order %s: %w", id.Hex(), domain.ErrNotFound)
	}
	delete(r.s.orders, id)
	return nil
}
