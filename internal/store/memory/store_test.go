package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Beka01247/cafe/internal/domain"
	"github.com/Beka01247/cafe/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ repo.MenuRepository             = (*MenuRepository)(nil)
	_ repo.CartRepository             = (*CartRepository)(nil)
	_ repo.OrderRepository            = (*OrderRepository)(nil)
	_ repo.OrderStatusAuditRepository = (*OrderStatusAuditRepository)(nil)
	_ repo.ImportTaskRepository       = (*ImportTaskRepository)(nil)
	_ repo.AdminSessionRepository     = (*AdminSessionRepository)(nil)
	_ repo.Transactor                 = (*Store)(nil)
)

func TestOrderRepository_UpdateStatusCAS(t *testing.T) {
	ctx := context.Background()
	orders := New().Orders()

	o := &domain.Order{Status: domain.StatusPending}
	require.NoError(t, orders.Create(ctx, o))

	require.NoError(t, orders.UpdateStatus(ctx, o.ID, domain.StatusPending, 0, domain.StatusPreparing))

	err := orders.UpdateStatus(ctx, o.ID, domain.StatusPending, 0, domain.StatusRejected)
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := orders.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, got.Status)
	assert.Equal(t, int64(1), got.Version)
}

func TestOrderRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	orders := New().Orders()

	base := time.Date(2025, 10, 31, 9, 0, 0, 0, time.UTC)
	for i, status := range []domain.OrderStatus{domain.StatusPending, domain.StatusCompleted, domain.StatusPending} {
		require.NoError(t, orders.Create(ctx, &domain.Order{
			CustomerName: string(rune('A' + i)),
			Status:       status,
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}))
	}

	all, err := orders.List(ctx, repo.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "C", all[0].CustomerName)
	assert.Equal(t, "A", all[2].CustomerName)

	pending, err := orders.List(ctx, repo.OrderFilter{Status: domain.StatusPending, Limit: 1})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "C", pending[0].CustomerName)
}

func TestStore_WithTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	s := New()
	menu := s.Menu()

	require.NoError(t, menu.Create(ctx, &domain.FoodItem{ID: "keep"}))

	boom := errors.New("boom")
	err := s.WithTransaction(ctx, func(ctx context.Context) error {
		if err := menu.ReplaceAll(ctx, []domain.FoodItem{{ID: "new"}}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	items, err := menu.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "keep", items[0].ID)
}

func TestStore_WithTransactionKeepsOtherCollections(t *testing.T) {
	ctx := context.Background()
	s := New()
	menu, carts := s.Menu(), s.Carts()

	require.NoError(t, menu.Create(ctx, &domain.FoodItem{ID: "keep"}))

	started, release := make(chan struct{}), make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- s.WithTransaction(ctx, func(ctx context.Context) error {
			close(started)
			<-release
			if err := menu.ReplaceAll(ctx, []domain.FoodItem{{ID: "new"}}); err != nil {
				return err
			}
			return errors.New("import failed")
		})
	}()

	<-started
	require.NoError(t, carts.Save(ctx, &domain.Cart{SessionID: "s1", Items: []domain.CartItem{{LineID: "l1", Quantity: 1}}}))
	close(release)
	assert.Error(t, <-done)

	c, err := carts.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, c.Items, 1)

	items, err := menu.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "keep", items[0].ID)
}

func TestCartRepository_SaveCopiesItems(t *testing.T) {
	ctx := context.Background()
	carts := New().Carts()

	c := &domain.Cart{SessionID: "s1", Items: []domain.CartItem{{LineID: "l1", Quantity: 1}}}
	require.NoError(t, carts.Save(ctx, c))
	c.Items[0].Quantity = 5

	got, err := carts.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Items[0].Quantity)

	require.NoError(t, carts.Delete(ctx, "s1"))
	_, err = carts.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdminSessionRepository_ExpiredIsGone(t *testing.T) {
	ctx := context.Background()
	sessions := New().Sessions()

	require.NoError(t, sessions.Create(ctx, &domain.AdminSession{Token: "old", ExpiresAt: time.Now().Add(-time.Minute)}))
	require.NoError(t, sessions.Create(ctx, &domain.AdminSession{Token: "new", ExpiresAt: time.Now().Add(time.Hour)}))

	_, err := sessions.Get(ctx, "old")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := sessions.Get(ctx, "new")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Token)
}
