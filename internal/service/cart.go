package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Beka01247/cafe/internal/cart"
	"github.com/Beka01247/cafe/internal/domain"
	"github.com/Beka01247/cafe/internal/repo"
	"go.uber.org/zap"
)

type AddItemInput struct {
	ItemID              string
	SelectedOptions     domain.SelectedOptions
	SpecialInstructions string
}

// LineView is a cart line with its computed prices.
type LineView struct {
	domain.CartItem
	UnitPrice domain.Money `json:"unit_price"`
	LineTotal domain.Money `json:"line_total"`
}

type CartView struct {
	SessionID     string       `json:"session_id"`
	Items         []LineView   `json:"items"`
	ItemCount     int          `json:"item_count"`
	Total         domain.Money `json:"total"`
	CustomerName  string       `json:"customer_name,omitempty"`
	CustomerPhone string       `json:"customer_phone,omitempty"`
}

func NewCartView(c domain.Cart) CartView {
	view := CartView{
		SessionID:     c.SessionID,
		Items:         make([]LineView, 0, len(c.Items)),
		ItemCount:     c.ItemCount(),
		Total:         cart.GrandTotal(c.Items),
		CustomerName:  c.CustomerName,
		CustomerPhone: c.CustomerPhone,
	}
	for _, line := range c.Items {
		view.Items = append(view.Items, LineView{
			CartItem:  line,
			UnitPrice: cart.UnitPrice(line),
			LineTotal: cart.LineTotal(line),
		})
	}
	return view
}

type CartService struct {
	cartRepo repo.CartRepository
	menu     *MenuService
	engine   *cart.Engine
	logger   *zap.SugaredLogger
}

func NewCartService(cartRepo repo.CartRepository, menu *MenuService, engine *cart.Engine, logger *zap.SugaredLogger) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		menu:     menu,
		engine:   engine,
		logger:   logger,
	}
}

// Get returns the session cart, or an empty one when nothing was saved yet.
func (s *CartService) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	c, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Cart{SessionID: sessionID, Items: []domain.CartItem{}}, nil
		}
		return domain.Cart{}, fmt.Errorf("failed to load cart: %w", err)
	}
	return *c, nil
}

func (s *CartService) save(ctx context.Context, c domain.Cart) (domain.Cart, error) {
	if err := s.cartRepo.Save(ctx, &c); err != nil {
		return domain.Cart{}, fmt.Errorf("failed to save cart: %w", err)
	}
	return c, nil
}

func (s *CartService) AddItem(ctx context.Context, sessionID string, in AddItemInput) (domain.Cart, error) {
	item, err := s.menu.Get(ctx, in.ItemID)
	if err != nil {
		return domain.Cart{}, err
	}
	if !item.Available() {
		return domain.Cart{}, domain.ErrOutOfStock
	}

	selected, err := cart.ValidateSelection(*item, in.SelectedOptions)
	if err != nil {
		return domain.Cart{}, err
	}

	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, err
	}

	if quantityOf(c, item.ID)+1 > item.Stock {
		return domain.Cart{}, domain.ErrOutOfStock
	}

	return s.save(ctx, s.engine.AddItem(c, *item, selected, in.SpecialInstructions))
}

// UpdateQuantity sets a line's quantity. Zero or less removes the line.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, lineID string, quantity int) (domain.Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, err
	}

	line, ok := c.Line(lineID)
	if !ok {
		return domain.Cart{}, fmt.Errorf("cart line %s: %w", lineID, domain.ErrNotFound)
	}

	if quantity > line.Quantity {
		stock := line.Item.Stock
		if item, err := s.menu.Get(ctx, line.Item.ID); err == nil {
			stock = item.Stock
		}
		if quantityOf(c, line.Item.ID)-line.Quantity+quantity > stock {
			return domain.Cart{}, domain.ErrOutOfStock
		}
	}

	return s.save(ctx, s.engine.UpdateQuantity(c, lineID, quantity))
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, lineID string) (domain.Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, err
	}

	if _, ok := c.Line(lineID); !ok {
		return domain.Cart{}, fmt.Errorf("cart line %s: %w", lineID, domain.ErrNotFound)
	}

	return s.save(ctx, s.engine.RemoveItem(c, lineID))
}

func (s *CartService) SetCustomer(ctx context.Context, sessionID, name, phone string) (domain.Cart, error) {
	name, phone, err := NormalizeCustomer(name, phone)
	if err != nil {
		return domain.Cart{}, err
	}

	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, err
	}

	return s.save(ctx, s.engine.SetCustomer(c, name, phone))
}

func (s *CartService) Clear(ctx context.Context, sessionID string) (domain.Cart, error) {
	if err := s.cartRepo.Delete(ctx, sessionID); err != nil {
		return domain.Cart{}, fmt.Errorf("failed to clear cart: %w", err)
	}
	return s.engine.Clear(domain.Cart{SessionID: sessionID}), nil
}

func quantityOf(c domain.Cart, itemID string) int {
	n := 0
	for _, line := range c.Items {
		if line.Item.ID == itemID {
			n += line.Quantity
		}
	}
	return n
}
