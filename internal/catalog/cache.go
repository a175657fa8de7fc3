package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/Beka01247/cafe/internal/domain"
)

// Cached keeps the last listing of a slow source for ttl.
type Cached struct {
	source Source
	ttl    time.Duration
	now    func() time.Time

	mu        sync.Mutex
	items     []domain.FoodItem
	expiresAt time.Time
}

func NewCached(source Source, ttl time.Duration) *Cached {
	return &Cached{
		source: source,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (c *Cached) Name() string {
	return c.source.Name()
}

func (c *Cached) Items(ctx context.Context) ([]domain.FoodItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.items != nil && c.now().Before(c.expiresAt) {
		return copyItems(c.items), nil
	}

	items, err := c.source.Items(ctx)
	if err != nil {
		// serve stale data while the upstream is down
		if c.items != nil {
			return copyItems(c.items), nil
		}
		return nil, err
	}

	c.items = items
	c.expiresAt = c.now().Add(c.ttl)
	return copyItems(items), nil
}

func (c *Cached) Item(ctx context.Context, id string) (*domain.FoodItem, error) {
	return findItem(ctx, c, id)
}

func (c *Cached) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.expiresAt = time.Time{}
}

func copyItems(items []domain.FoodItem) []domain.FoodItem {
	out := make([]domain.FoodItem, len(items))
	copy(out, items)
	return out
}
