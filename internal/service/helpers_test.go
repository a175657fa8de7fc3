package service

import (
	"context"
	"sync"
	"testing"

	"github.com/Beka01247/cafe/internal/cart"
	"github.com/Beka01247/cafe/internal/catalog"
	"github.com/Beka01247/cafe/internal/domain"
	"github.com/Beka01247/cafe/internal/queue"
	"github.com/Beka01247/cafe/internal/store/memory"
	"github.com/Beka01247/cafe/internal/webhook"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingBroker struct {
	mu       sync.Mutex
	messages map[string][][]byte
}

func newRecordingBroker() *recordingBroker {
	return &recordingBroker{messages: make(map[string][][]byte)}
}

func (b *recordingBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages[queueName] = append(b.messages[queueName], message)
	return nil
}

func (b *recordingBroker) Subscribe(ctx context.Context, queueName string, handler queue.MessageHandler) error {
	return nil
}

func (b *recordingBroker) Close() error { return nil }

func (b *recordingBroker) count(queueName string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.messages[queueName])
}

type fakeSender struct {
	err      error
	payloads []webhook.Payload
}

func (s *fakeSender) Send(ctx context.Context, p webhook.Payload) error {
	s.payloads = append(s.payloads, p)
	return s.err
}

type fixture struct {
	store    *memory.Store
	broker   *recordingBroker
	sender   *fakeSender
	menu     *MenuService
	carts    *CartService
	checkout *CheckoutService
	orders   *OrderService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := zap.NewNop().Sugar()
	store := memory.New()
	broker := newRecordingBroker()
	sender := &fakeSender{}

	menu := NewMenuService(catalog.NewStoreSource(store.Menu()), store.Menu(), logger)
	_, err := menu.SeedIfEmpty(context.Background(), []domain.FoodItem{pizzaItem(), coffeeItem()})
	require.NoError(t, err)

	return &fixture{
		store:    store,
		broker:   broker,
		sender:   sender,
		menu:     menu,
		carts:    NewCartService(store.Carts(), menu, cart.NewEngine(), logger),
		checkout: NewCheckoutService(store.Carts(), store.Orders(), sender, broker, false, logger),
		orders:   NewOrderService(store.Orders(), store.Audits(), menu, broker, logger),
	}
}

func pizzaItem() domain.FoodItem {
	return domain.FoodItem{
		ID:       "p1",
		Name:     "Farmhouse Pizza",
		Price:    domain.MoneyFromInt(200),
		Category: domain.CategoryPizza,
		Stock:    5,
		Popular:  true,
		Options: []domain.FoodOption{{
			Label: "Size",
			Type:  domain.OptionSize,
			Choices: []domain.OptionChoice{
				{Name: "Regular", Price: domain.MoneyFromInt(0)},
				{Name: "Large", Price: domain.MoneyFromInt(50)},
			},
		}},
	}
}

func coffeeItem() domain.FoodItem {
	return domain.FoodItem{ID: "c1", Name: "Cold Coffee", Price: domain.MoneyFromInt(50), Category: domain.CategoryBeverages, Stock: 2}
}
