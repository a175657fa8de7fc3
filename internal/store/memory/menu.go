package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/Beka01247/cafe/internal/domain"
)

type MenuRepository struct {
	s *Store
}

func (r *MenuRepository) List(ctx context.Context) ([]domain.FoodItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := make([]domain.FoodItem, 0, len(r.s.menuSeq))
	for _, id := range r.s.menuSeq {
		items = append(items, r.s.menu[id])
	}
	return items, nil
}

func (r *MenuRepository) GetByID(ctx context.Context, id string) (*domain.FoodItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	item, ok := r.s.menu[id]
	if !ok {
		return nil, fmt.Errorf("menu item %s: %w", id, domain.ErrNotFound)
	}
	return &item, nil
}

func (r *MenuRepository) Create(ctx context.Context, item *domain.FoodItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.menu[item.ID]; ok {
		return fmt.Errorf("menu item %s already exists: %w", item.ID, domain.ErrConflict)
	}

	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	r.s.menu[item.ID] = *item
	r.s.menuSeq = append(r.s.menuSeq, item.ID)
	return nil
}

func (r *MenuRepository) Update(ctx context.Context, item *domain.FoodItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.menu[item.ID]
	if !ok {
		return fmt.Errorf("menu item %s: %w", item.ID, domain.ErrNotFound)
	}

	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now()
	r.s.menu[item.ID] = *item
	return nil
}

func (r *MenuRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.menu[id]; !ok {
		return fmt.Errorf("menu item %s: %w", id, domain.ErrNotFound)
	}

	delete(r.s.menu, id)
	seq := r.s.menuSeq[:0]
	for _, existing := range r.s.menuSeq {
		if existing != id {
			seq = append(seq, existing)
		}
	}
	r.s.menuSeq = seq
	return nil
}

func (r *MenuRepository) ReplaceAll(ctx context.Context, items []domain.FoodItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now()
	r.s.menu = make(map[string]domain.FoodItem, len(items))
	r.s.menuSeq = make([]string, 0, len(items))
	for _, item := range items {
		if _, dup := r.s.menu[item.ID]; dup {
			return fmt.Errorf("menu item %s already exists: %w", item.ID, domain.ErrConflict)
		}
		item.CreatedAt = now
		item.UpdatedAt = now
		r.s.menu[item.ID] = item
		r.s.menuSeq = append(r.s.menuSeq, item.ID)
	}
	return nil
}

func (r *MenuRepository) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return int64(len(r.s.menu)), nil
}
