package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Beka01247/cafe/internal/domain"
	"github.com/Beka01247/cafe/internal/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeOrder(t *testing.T, f *fixture, name string, status domain.OrderStatus, total int64, at time.Time) *domain.Order {
	t.Helper()
	o := &domain.Order{
		CustomerName:  name,
		CustomerPhone: "9876543210",
		Total:         domain.MoneyFromInt(total),
		Status:        status,
		Source:        domain.SourceWebsiteDirect,
		CreatedAt:     at,
	}
	require.NoError(t, f.store.Orders().Create(context.Background(), o))
	return o
}

func TestOrderService_UpdateStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := placeOrder(t, f, "John Doe", domain.StatusPending, 100, time.Now())

	updated, err := f.orders.UpdateStatus(ctx, o.ID.Hex(), domain.StatusPreparing, "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, updated.Status)
	assert.Equal(t, int64(1), updated.Version)
	assert.Equal(t, 1, f.broker.count(queue.QueueOrderEvents))

	_, err = f.orders.UpdateStatus(ctx, o.ID.Hex(), domain.StatusRejected, "admin")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = f.orders.UpdateStatus(ctx, o.ID.Hex(), domain.OrderStatus("cooking"), "admin")
	assert.True(t, domain.IsValidation(err))

	_, err = f.orders.UpdateStatus(ctx, "not-an-id", domain.StatusCompleted, "admin")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	done, err := f.orders.UpdateStatus(ctx, o.ID.Hex(), domain.StatusCompleted, "admin")
	require.NoError(t, err)
	assert.True(t, done.Status.Terminal())
}

func TestOrderService_ConcurrentUpdateConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := placeOrder(t, f, "John Doe", domain.StatusPending, 100, time.Now())

	// a second admin already moved the order on from the version we read
	require.NoError(t, f.store.Orders().UpdateStatus(ctx, o.ID, domain.StatusPending, 0, domain.StatusPreparing))

	err := f.store.Orders().UpdateStatus(ctx, o.ID, domain.StatusPending, 0, domain.StatusRejected)
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := f.orders.Get(ctx, o.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, got.Status)
}

func TestOrderService_ListAndSearch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	base := time.Date(2025, 10, 31, 9, 0, 0, 0, time.UTC)
	placeOrder(t, f, "Asha", domain.StatusPending, 100, base)
	bob := placeOrder(t, f, "Bob Stone", domain.StatusCompleted, 200, base.Add(time.Minute))
	placeOrder(t, f, "Chitra", domain.StatusPending, 300, base.Add(2*time.Minute))

	all, err := f.orders.List(ctx, OrderQuery{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Chitra", all[0].CustomerName)

	pending, err := f.orders.List(ctx, OrderQuery{Status: "pending"})
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	byName, err := f.orders.List(ctx, OrderQuery{Query: "bob"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, bob.ID, byName[0].ID)

	byID, err := f.orders.List(ctx, OrderQuery{Query: bob.ID.Hex()[16:]})
	require.NoError(t, err)
	require.Len(t, byID, 1)

	_, err = f.orders.List(ctx, OrderQuery{Status: "lost"})
	assert.True(t, domain.IsValidation(err))
}

func TestOrderService_Stats(t *testing.T) {
	f := newFixture(t)
	base := time.Date(2025, 10, 31, 9, 0, 0, 0, time.UTC)
	placeOrder(t, f, "Asha", domain.StatusPending, 100, base)
	placeOrder(t, f, "Bob", domain.StatusPreparing, 250, base.Add(time.Minute))
	placeOrder(t, f, "Chitra", domain.StatusCompleted, 300, base.Add(2*time.Minute))
	placeOrder(t, f, "Dev", domain.StatusRejected, 999, base.Add(3*time.Minute))
	placeOrder(t, f, "Esha", domain.StatusPending, 50, base.Add(4*time.Minute))

	stats, err := f.orders.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, "550.00", stats.Revenue.String())
	assert.Equal(t, 2, stats.PendingOrders)
	assert.Equal(t, 2, stats.MenuItems)
	require.Len(t, stats.RecentOrders, 4)
	assert.Equal(t, "Esha", stats.RecentOrders[0].CustomerName)
}

func TestOrderService_DeleteAndHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := placeOrder(t, f, "John Doe", domain.StatusPending, 100, time.Now())

	_, err := f.orders.UpdateStatus(ctx, o.ID.Hex(), domain.StatusPreparing, "admin")
	require.NoError(t, err)

	var event domain.OrderEvent
	require.NoError(t, json.Unmarshal(f.broker.messages[queue.QueueOrderEvents][0], &event))
	require.NoError(t, f.orders.ProcessOrderEvent(ctx, event))

	history, err := f.orders.History(ctx, o.ID.Hex(), 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domain.StatusPending, history[0].OldStatus)
	assert.Equal(t, domain.StatusPreparing, history[0].NewStatus)
	assert.Equal(t, "admin", history[0].Actor)

	require.NoError(t, f.orders.Delete(ctx, o.ID.Hex(), "admin"))
	assert.ErrorIs(t, f.orders.Delete(ctx, o.ID.Hex(), "admin"), domain.ErrNotFound)
}

func TestOrderService_ProcessOrderEventDropsBadID(t *testing.T) {
	f := newFixture(t)
	assert.NoError(t, f.orders.ProcessOrderEvent(context.Background(), domain.OrderEvent{OrderID: "xyz"}))
}
