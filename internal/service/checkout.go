package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Beka01247/cafe/internal/cart"
	"github.com/Beka01247/cafe/internal/domain"
	"github.com/Beka01247/cafe/internal/queue"
	"github.com/Beka01247/cafe/internal/repo"
	"github.com/Beka01247/cafe/internal/webhook"
	"go.uber.org/zap"
)

type OrderSender interface {
	Send(ctx context.Context, p webhook.Payload) error
}

type CheckoutInput struct {
	CustomerName  string
	CustomerPhone string
}

type CheckoutService struct {
	cartRepo  repo.CartRepository
	orderRepo repo.OrderRepository
	sender    OrderSender
	broker    queue.Broker
	lineItems bool
	logger    *zap.SugaredLogger
}

// NewCheckoutService wires order submission. lineItems adds the structured
// items array to the webhook payload.
func NewCheckoutService(
	cartRepo repo.CartRepository,
	orderRepo repo.OrderRepository,
	sender OrderSender,
	broker queue.Broker,
	lineItems bool,
	logger *zap.SugaredLogger,
) *CheckoutService {
	return &CheckoutService{
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		sender:    sender,
		broker:    broker,
		lineItems: lineItems,
		logger:    logger,
	}
}

// Checkout delivers the session cart to the webhook. The cart is only
// cleared after the endpoint acknowledged the order.
func (s *CheckoutService) Checkout(ctx context.Context, sessionID string, in CheckoutInput) (*domain.Order, error) {
	c, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrEmptyCart
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	name, phone := c.CustomerName, c.CustomerPhone
	if in.CustomerName != "" {
		name = in.CustomerName
	}
	if in.CustomerPhone != "" {
		phone = in.CustomerPhone
	}

	name, phone, err = NormalizeCustomer(name, phone)
	if err != nil {
		return nil, err
	}
	if c.Empty() {
		return nil, domain.ErrEmptyCart
	}

	payload := webhook.BuildPayload(name, phone, c.Items, s.lineItems)
	if err := s.sender.Send(ctx, payload); err != nil {
		s.logger.Errorw("order delivery failed", "session_id", sessionID, "error", err)
		return nil, fmt.Errorf("failed to submit order: %w", err)
	}

	now := time.Now()
	order := &domain.Order{
		CustomerName:  name,
		CustomerPhone: phone,
		Items:         c.Items,
		Total:         cart.GrandTotal(c.Items),
		Status:        domain.StatusPending,
		Source:        domain.SourceWebsiteDirect,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Errorw("failed to store delivered order", "customer_phone", phone, "error", err)
	} else {
		event := domain.OrderEvent{
			EventType: domain.EventOrderPlaced,
			OrderID:   order.ID.Hex(),
			NewStatus: domain.StatusPending,
			Total:     order.Total,
			Actor:     "customer",
			Timestamp: now,
		}
		if err := publishJSON(ctx, s.broker, queue.QueueOrderEvents, event); err != nil {
			s.logger.Errorw("failed to publish order placed event", "order_id", order.ID.Hex(), "error", err)
		}
	}

	if err := s.cartRepo.Delete(ctx, sessionID); err != nil {
		s.logger.Errorw("failed to clear cart after checkout", "session_id", sessionID, "error", err)
	}

	if order.ID.IsZero() {
		s.logger.Warnw("order placed but not persisted", "customer_phone", phone, "total", order.Total.String(), "lines", len(order.Items))
		return order, nil
	}
	s.logger.Infow("order placed", "order_id", order.ID.Hex(), "total", order.Total.String(), "lines", len(order.Items))
	return order, nil
}
