// Package cart holds the cart and pricing rules. Every transition takes a cart
// value and returns a new one; nothing here performs I/O or fails.
package cart

import (
	"time"

	"github.com/Beka01247/cafe/internal/domain"
	"github.com/google/uuid"
)

// MergePolicy decides when AddItem bumps an existing line instead of appending.
type MergePolicy int

const (
	// MergePlainOnly merges only lines without selected options. Two
	// differently configured instances of an item always stay separate lines.
	MergePlainOnly MergePolicy = iota
	// MergeIdentical additionally merges option-bearing lines whose
	// selections and instructions are identical.
	MergeIdentical
)

func ParseMergePolicy(s string) MergePolicy {
	if s == "identical" {
		return MergeIdentical
	}
	return MergePlainOnly
}

type Engine struct {
	policy    MergePolicy
	newLineID func() string
	now       func() time.Time
}

type Option func(*Engine)

func WithMergePolicy(p MergePolicy) Option {
	return func(e *Engine) { e.policy = p }
}

func WithLineIDs(fn func() string) Option {
	return func(e *Engine) { e.newLineID = fn }
}

func WithClock(fn func() time.Time) Option {
	return func(e *Engine) { e.now = fn }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		policy:    MergePlainOnly,
		newLineID: func() string { return uuid.NewString() },
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Policy() MergePolicy {
	return e.policy
}

// AddItem adds one unit of item. Stock is the caller's concern.
func (e *Engine) AddItem(c domain.Cart, item domain.FoodItem, selected domain.SelectedOptions, instructions string) domain.Cart {
	out := clone(c)

	for i, line := range out.Items {
		if e.mergeable(line, item.ID, selected, instructions) {
			out.Items[i].Quantity++
			out.UpdatedAt = e.now()
			return out
		}
	}

	if selected.Empty() {
		selected = nil
	}
	out.Items = append(out.Items, domain.CartItem{
		LineID:              e.newLineID(),
		Item:                item,
		Quantity:            1,
		SelectedOptions:     selected,
		SpecialInstructions: instructions,
	})
	out.UpdatedAt = e.now()
	return out
}

func (e *Engine) mergeable(line domain.CartItem, itemID string, selected domain.SelectedOptions, instructions string) bool {
	if line.Item.ID != itemID || line.SpecialInstructions != instructions {
		return false
	}
	if selected.Empty() && line.SelectedOptions.Empty() {
		return true
	}
	return e.policy == MergeIdentical && line.SelectedOptions.Equal(selected)
}

// UpdateQuantity sets the quantity of a line. Negative values clamp to zero
// and zero removes the line. Unknown lines leave the cart unchanged.
func (e *Engine) UpdateQuantity(c domain.Cart, lineID string, quantity int) domain.Cart {
	if quantity <= 0 {
		return e.RemoveItem(c, lineID)
	}

	out := clone(c)
	for i := range out.Items {
		if out.Items[i].LineID == lineID {
			out.Items[i].Quantity = quantity
			out.UpdatedAt = e.now()
			return out
		}
	}
	return c
}

func (e *Engine) RemoveItem(c domain.Cart, lineID string) domain.Cart {
	if _, ok := c.Line(lineID); !ok {
		return c
	}

	out := clone(c)
	kept := out.Items[:0]
	for _, line := range out.Items {
		if line.LineID != lineID {
			kept = append(kept, line)
		}
	}
	out.Items = kept
	out.UpdatedAt = e.now()
	return out
}

// Clear empties the cart and forgets the customer identity.
func (e *Engine) Clear(c domain.Cart) domain.Cart {
	return domain.Cart{
		SessionID: c.SessionID,
		Items:     []domain.CartItem{},
		UpdatedAt: e.now(),
	}
}

func (e *Engine) SetCustomer(c domain.Cart, name, phone string) domain.Cart {
	out := clone(c)
	out.CustomerName = name
	out.CustomerPhone = phone
	out.UpdatedAt = e.now()
	return out
}

func clone(c domain.Cart) domain.Cart {
	out := c
	out.Items = make([]domain.CartItem, len(c.Items))
	copy(out.Items, c.Items)
	return out
}
