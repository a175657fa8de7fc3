package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Beka01247/cafe/internal/domain"
	"github.com/Beka01247/cafe/internal/queue"
	"github.com/Beka01247/cafe/internal/repo"
	"github.com/Beka01247/cafe/internal/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fillCart(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()
	_, err := f.carts.AddItem(ctx, "s1", AddItemInput{ItemID: "p1", SelectedOptions: domain.SelectedOptions{"Size": domain.Single("Large")}})
	require.NoError(t, err)
	c, err := f.carts.Get(ctx, "s1")
	require.NoError(t, err)
	_, err = f.carts.UpdateQuantity(ctx, "s1", c.Items[0].LineID, 2)
	require.NoError(t, err)
	_, err = f.carts.AddItem(ctx, "s1", AddItemInput{ItemID: "c1"})
	require.NoError(t, err)
}

func TestCheckout_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	fillCart(t, f)

	order, err := f.checkout.Checkout(ctx, "s1", CheckoutInput{CustomerName: "John Doe", CustomerPhone: "9876543210"})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, "550.00", order.Total.String())
	assert.Equal(t, domain.SourceWebsiteDirect, order.Source)

	require.Len(t, f.sender.payloads, 1)
	p := f.sender.payloads[0]
	assert.Equal(t, "Farmhouse Pizza, Cold Coffee", p.Order.FoodItems)
	assert.Equal(t, "2, 1", p.Order.Quantity)

	c, err := f.carts.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)

	stored, err := f.store.Orders().List(ctx, repo.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, stored, 1)
	assert.Equal(t, 1, f.broker.count(queue.QueueOrderEvents))
}

func TestCheckout_UsesStoredIdentity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	fillCart(t, f)

	_, err := f.carts.SetCustomer(ctx, "s1", "Jane Roe", "9123456789")
	require.NoError(t, err)

	order, err := f.checkout.Checkout(ctx, "s1", CheckoutInput{})
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", order.CustomerName)
}

func TestCheckout_ValidationBlocksDelivery(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.checkout.Checkout(ctx, "s1", CheckoutInput{CustomerName: "John Doe", CustomerPhone: "9876543210"})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	fillCart(t, f)
	_, err = f.checkout.Checkout(ctx, "s1", CheckoutInput{CustomerName: "John Doe", CustomerPhone: "98765"})
	assert.True(t, domain.IsValidation(err))
	assert.Empty(t, f.sender.payloads)
}

func TestCheckout_DeliveryFailureKeepsCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	fillCart(t, f)

	f.sender.err = errors.Join(webhook.ErrDelivery, errors.New("status 500"))

	_, err := f.checkout.Checkout(ctx, "s1", CheckoutInput{CustomerName: "John Doe", CustomerPhone: "9876543210"})
	assert.ErrorIs(t, err, webhook.ErrDelivery)

	c, err := f.carts.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, c.Items, 2)

	stored, err := f.store.Orders().List(ctx, repo.OrderFilter{})
	require.NoError(t, err)
	assert.Empty(t, stored)
}

type failingOrderRepo struct {
	repo.OrderRepository
}

func (failingOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	return errors.New("write failed")
}

func TestCheckout_StoreFailureAfterDelivery(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	fillCart(t, f)

	checkout := NewCheckoutService(f.store.Carts(), failingOrderRepo{f.store.Orders()}, f.sender, f.broker, false, zap.NewNop().Sugar())
	order, err := checkout.Checkout(ctx, "s1", CheckoutInput{CustomerName: "John Doe", CustomerPhone: "9876543210"})
	require.NoError(t, err)

	assert.True(t, order.ID.IsZero())
	assert.Len(t, f.sender.payloads, 1)
	assert.Zero(t, f.broker.count(queue.QueueOrderEvents))

	c, err := f.carts.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}
