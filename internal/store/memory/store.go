// Package memory keeps every repository in process memory. It backs local
// development runs and the service tests.
package memory

import (
	"context"
	"sync"

	"github.com/Beka01247/cafe/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	menu     map[string]domain.FoodItem
	menuSeq  []string
	carts    map[string]domain.Cart
	orders   map[primitive.ObjectID]domain.Order
	audits   []domain.OrderStatusAudit
	tasks    map[primitive.ObjectID]domain.MenuImportTask
	sessions map[string]domain.AdminSession
}

func New() *Store {
	return &Store{
		menu:     make(map[string]domain.FoodItem),
		carts:    make(map[string]domain.Cart),
		orders:   make(map[primitive.ObjectID]domain.Order),
		tasks:    make(map[primitive.ObjectID]domain.MenuImportTask),
		sessions: make(map[string]domain.AdminSession),
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) Close(ctx context.Context) error {
	return nil
}

func (s *Store) Menu() *MenuRepository {
	return &MenuRepository{s: s}
}

func (s *Store) Carts() *CartRepository {
	return &CartRepository{s: s}
}

func (s *Store) Orders() *OrderRepository {
	return &OrderRepository{s: s}
}

func (s *Store) Audits() *OrderStatusAuditRepository {
	return &OrderStatusAuditRepository{s: s}
}

func (s *Store) ImportTasks() *ImportTaskRepository {
	return &ImportTaskRepository{s: s}
}

func (s *Store) Sessions() *AdminSessionRepository {
	return &AdminSessionRepository{s: s}
}

// WithTransaction serializes transactions and, when fn fails, restores the
// menu and the import tasks. Carts, orders, audits and sessions are written
// outside the transaction and are never rolled back.
func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(ctx); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

type snapshot struct {
	menu    map[string]domain.FoodItem
	menuSeq []string
	tasks   map[primitive.ObjectID]domain.MenuImportTask
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return snapshot{
		menu:    copyMap(s.menu),
		menuSeq: append([]string(nil), s.menuSeq...),
		tasks:   copyMap(s.tasks),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.menu = snap.menu
	s.menuSeq = snap.menuSeq
	s.tasks = snap.tasks
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneCart(c domain.Cart) domain.Cart {
	out := c
	out.Items = append([]domain.CartItem{}, c.Items...)
	return out
}
