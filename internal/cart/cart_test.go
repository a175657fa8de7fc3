package cart

import (
	"fmt"
	"testing"
	"time"

	"github.com/Beka01247/cafe/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine(policy MergePolicy) *Engine {
	n := 0
	return NewEngine(
		WithMergePolicy(policy),
		WithLineIDs(func() string {
			n++
			return fmt.Sprintf("line-%d", n)
		}),
		WithClock(func() time.Time { return time.Date(2025, 10, 31, 10, 30, 0, 0, time.UTC) }),
	)
}

func pizza() domain.FoodItem {
	return domain.FoodItem{
		ID:       "p1",
		Name:     "Farmhouse Pizza",
		Price:    domain.MoneyFromInt(200),
		Category: domain.CategoryPizza,
		Stock:    10,
		Options: []domain.FoodOption{
			{
				Label: "Size",
				Type:  domain.OptionSize,
				Choices: []domain.OptionChoice{
					{Name: "Regular", Price: domain.MoneyFromInt(0)},
					{Name: "Large", Price: domain.MoneyFromInt(50)},
				},
			},
			{
				Label:         "Toppings",
				Type:          domain.OptionToppings,
				AllowMultiple: true,
				Choices: []domain.OptionChoice{
					{Name: "Olives", Price: domain.MoneyFromInt(30)},
					{Name: "Corn", Price: domain.MoneyFromInt(20)},
				},
			},
		},
	}
}

func coffee() domain.FoodItem {
	return domain.FoodItem{ID: "c1", Name: "Cold Coffee", Price: domain.MoneyFromInt(50), Category: domain.CategoryBeverages, Stock: 3}
}

func lineIDs(c domain.Cart) []string {
	ids := make([]string, 0, len(c.Items))
	for _, it := range c.Items {
		ids = append(ids, it.LineID)
	}
	return ids
}

func TestAddItem_PlainItemMerges(t *testing.T) {
	e := testEngine(MergePlainOnly)

	c := e.AddItem(domain.Cart{}, coffee(), nil, "")
	c = e.AddItem(c, coffee(), nil, "")

	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestAddItem_DoesNotMutateInput(t *testing.T) {
	e := testEngine(MergePlainOnly)

	first := e.AddItem(domain.Cart{}, coffee(), nil, "")
	second := e.AddItem(first, coffee(), nil, "")

	assert.Equal(t, 1, first.Items[0].Quantity)
	assert.Equal(t, 2, second.Items[0].Quantity)
}

func TestAddItem_OptionBearingLinesStayDistinct(t *testing.T) {
	e := testEngine(MergePlainOnly)
	large := domain.SelectedOptions{"Size": domain.Single("Large")}

	c := e.AddItem(domain.Cart{}, pizza(), large, "")
	c = e.AddItem(c, pizza(), large, "")
	c = e.AddItem(c, pizza(), nil, "")

	if diff := cmp.Diff([]string{"line-1", "line-2", "line-3"}, lineIDs(c)); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	for _, it := range c.Items {
		assert.Equal(t, 1, it.Quantity)
	}
}

func TestAddItem_MergeIdenticalPolicy(t *testing.T) {
	e := testEngine(MergeIdentical)
	a := domain.SelectedOptions{"Toppings": domain.Multi("Olives", "Corn")}
	b := domain.SelectedOptions{"Toppings": domain.Multi("Corn", "Olives")}

	c := e.AddItem(domain.Cart{}, pizza(), a, "")
	c = e.AddItem(c, pizza(), b, "")
	c = e.AddItem(c, pizza(), domain.SelectedOptions{"Size": domain.Single("Large")}, "")

	require.Len(t, c.Items, 2)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 1, c.Items[1].Quantity)
}

func TestAddItem_InstructionsDistinguishPlainLines(t *testing.T) {
	e := testEngine(MergePlainOnly)

	c := e.AddItem(domain.Cart{}, coffee(), nil, "")
	c = e.AddItem(c, coffee(), nil, "less sugar")

	require.Len(t, c.Items, 2)
	assert.Equal(t, "less sugar", c.Items[1].SpecialInstructions)
}

func TestUpdateQuantity(t *testing.T) {
	e := testEngine(MergePlainOnly)
	c := e.AddItem(domain.Cart{}, coffee(), nil, "")
	c = e.AddItem(c, pizza(), nil, "")

	t.Run("sets quantity", func(t *testing.T) {
		got := e.UpdateQuantity(c, "line-1", 4)
		assert.Equal(t, 4, got.Items[0].Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		got := e.UpdateQuantity(c, "line-1", 0)
		assert.Equal(t, []string{"line-2"}, lineIDs(got))
	})

	t.Run("negative clamps to zero", func(t *testing.T) {
		got := e.UpdateQuantity(c, "line-2", -3)
		assert.Equal(t, []string{"line-1"}, lineIDs(got))
		for _, it := range got.Items {
			assert.Positive(t, it.Quantity)
		}
	})

	t.Run("unknown line is a no-op", func(t *testing.T) {
		got := e.UpdateQuantity(c, "nope", 7)
		assert.Equal(t, c, got)
	})
}

func TestRemoveItem_IgnoresQuantity(t *testing.T) {
	e := testEngine(MergePlainOnly)
	c := e.AddItem(domain.Cart{}, coffee(), nil, "")
	c = e.UpdateQuantity(c, "line-1", 9)

	got := e.RemoveItem(c, "line-1")
	assert.Empty(t, got.Items)
	assert.Len(t, c.Items, 1)
}

func TestClear_ResetsIdentity(t *testing.T) {
	e := testEngine(MergePlainOnly)
	c := e.AddItem(domain.Cart{SessionID: "s1"}, coffee(), nil, "")
	c = e.SetCustomer(c, "John Doe", "9876543210")

	got := e.Clear(c)
	assert.Equal(t, "s1", got.SessionID)
	assert.Empty(t, got.Items)
	assert.Empty(t, got.CustomerName)
	assert.Empty(t, got.CustomerPhone)
}
