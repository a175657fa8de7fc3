package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/Beka01247/cafe/internal/domain"
)

type CartRepository struct {
	s *Store
}

func (r *CartRepository) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.carts[sessionID]
	if !ok {
		return nil, fmt.Errorf("cart: %w", domain.ErrNotFound)
	}
	c = cloneCart(c)
	return &c, nil
}

func (r *CartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if cart.UpdatedAt.IsZero() {
		cart.UpdatedAt = time.Now()
	}
	r.s.carts[cart.SessionID] = cloneCart(*cart)
	return nil
}

func (r *CartRepository) Delete(ctx context.Context, sessionID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.carts, sessionID)
	return nil
}
