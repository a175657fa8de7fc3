package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Beka01247/cafe/internal/domain"
	"github.com/Beka01247/cafe/internal/queue"
	"github.com/Beka01247/cafe/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const recentOrdersLimit = 4

type OrderQuery struct {
	Status string
	Query  string
	Limit  int64
}

type DashboardStats struct {
	TotalOrders   int            `json:"total_orders"`
	Revenue       domain.Money   `json:"revenue"`
	PendingOrders int            `json:"pending_orders"`
	MenuItems     int            `json:"menu_items"`
	RecentOrders  []domain.Order `json:"recent_orders"`
}

type OrderService struct {
	orderRepo repo.OrderRepository
	auditRepo repo.OrderStatusAuditRepository
	menu      *MenuService
	broker    queue.Broker
	logger    *zap.SugaredLogger
}

func NewOrderService(
	orderRepo repo.OrderRepository,
	auditRepo repo.OrderStatusAuditRepository,
	menu *MenuService,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		auditRepo: auditRepo,
		menu:      menu,
		broker:    broker,
		logger:    logger,
	}
}

func parseOrderID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	return oid, nil
}

// List returns orders newest first. Query matches the customer name
// case-insensitively or a fragment of the order id.
func (s *OrderService) List(ctx context.Context, q OrderQuery) ([]domain.Order, error) {
	filter := repo.OrderFilter{}
	if q.Status != "" && !strings.EqualFold(q.Status, "all") {
		status := domain.OrderStatus(strings.ToLower(q.Status))
		if !status.Valid() {
			return nil, domain.NewValidationError("status", "unknown status "+q.Status)
		}
		filter.Status = status
	}

	term := strings.ToLower(strings.TrimSpace(q.Query))
	if term == "" {
		filter.Limit = q.Limit
	}

	orders, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if term == "" {
		return orders, nil
	}

	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.CustomerName), term) || strings.Contains(o.ID.Hex(), term) {
			out = append(out, o)
		}
	}
	if q.Limit > 0 && int64(len(out)) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := parseOrderID(id)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// UpdateStatus moves an order along its lifecycle. The write only lands if
// nobody changed the order since it was read.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, next domain.OrderStatus, actor string) (*domain.Order, error) {
	if !next.Valid() {
		return nil, domain.NewValidationError("status", "unknown status "+string(next))
	}

	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, order.Status, next)
	}

	if err := s.orderRepo.UpdateStatus(ctx, order.ID, order.Status, order.Version, next); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	prev := order.Status
	now := time.Now()
	order.Status = next
	order.Version++
	order.UpdatedAt = now

	event := domain.OrderEvent{
		EventType: domain.EventOrderStatusChanged,
		OrderID:   order.ID.Hex(),
		OldStatus: prev,
		NewStatus: next,
		Total:     order.Total,
		Actor:     actor,
		Timestamp: now,
	}
	if err := publishJSON(ctx, s.broker, queue.QueueOrderEvents, event); err != nil {
		s.logger.Errorw("failed to publish status change event", "order_id", order.ID.Hex(), "error", err)
	}

	s.logger.Infow("order status changed", "order_id", order.ID.Hex(), "old_status", prev, "new_status", next, "actor", actor)
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id, actor string) error {
	order, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.orderRepo.Delete(ctx, order.ID); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	event := domain.OrderEvent{
		EventType: domain.EventOrderDeleted,
		OrderID:   order.ID.Hex(),
		OldStatus: order.Status,
		NewStatus: order.Status,
		Total:     order.Total,
		Actor:     actor,
		Timestamp: time.Now(),
	}
	if err := publishJSON(ctx, s.broker, queue.QueueOrderEvents, event); err != nil {
		s.logger.Errorw("failed to publish order deleted event", "order_id", order.ID.Hex(), "error", err)
	}

	s.logger.Infow("order deleted", "order_id", order.ID.Hex(), "actor", actor)
	return nil
}

func (s *OrderService) History(ctx context.Context, id string, limit int) ([]domain.OrderStatusAudit, error) {
	oid, err := parseOrderID(id)
	if err != nil {
		return nil, err
	}

	audits, err := s.auditRepo.GetByOrderID(ctx, oid, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get order history: %w", err)
	}
	return audits, nil
}

// Stats builds the admin dashboard. Revenue counts accepted orders only.
func (s *OrderService) Stats(ctx context.Context) (*DashboardStats, error) {
	var (
		all    []domain.Order
		recent []domain.Order
		menu   int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		all, err = s.orderRepo.List(gctx, repo.OrderFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.orderRepo.List(gctx, repo.OrderFilter{Limit: recentOrdersLimit})
		return err
	})
	g.Go(func() error {
		var err error
		menu, err = s.menu.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}

	stats := &DashboardStats{
		MenuItems:    menu,
		RecentOrders: recent,
	}
	for _, o := range all {
		if o.Status.Accepted() {
			stats.TotalOrders++
			stats.Revenue = stats.Revenue.Add(o.Total)
		}
		if o.Status == domain.StatusPending {
			stats.PendingOrders++
		}
	}

	return stats, nil
}

// ProcessOrderEvent records the audit entry for an order event.
func (s *OrderService) ProcessOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	oid, err := primitive.ObjectIDFromHex(event.OrderID)
	if err != nil {
		s.logger.Warnw("dropping order event with invalid id", "order_id", event.OrderID)
		return nil
	}

	audit := &domain.OrderStatusAudit{
		OrderID:   oid,
		EventType: event.EventType,
		OldStatus: event.OldStatus,
		NewStatus: event.NewStatus,
		Actor:     event.Actor,
		Timestamp: event.Timestamp,
	}

	if err := s.auditRepo.Create(ctx, audit); err != nil {
		s.logger.Errorw("failed to create audit record", "order_id", event.OrderID, "error", err)
		return fmt.Errorf("failed to create audit record: %w", err)
	}

	s.logger.Infow("order status audit created", "order_id", event.OrderID, "event_type", event.EventType)
	return nil
}

