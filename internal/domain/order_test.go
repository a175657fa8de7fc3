package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Transitions(t *testing.T) {
	all := []OrderStatus{StatusPending, StatusPreparing, StatusCompleted, StatusRejected}
	allowed := map[[2]OrderStatus]bool{
		{StatusPending, StatusPreparing}:   true,
		{StatusPending, StatusRejected}:    true,
		{StatusPreparing, StatusCompleted}: true,
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]OrderStatus{from, to}]
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, OrderStatus("ready").Valid())
}

func TestFoodItem_Validate(t *testing.T) {
	valid := FoodItem{
		Name:     "Margherita",
		Price:    MoneyFromInt(200),
		Category: CategoryPizza,
		Stock:    5,
		Options: []FoodOption{{
			Label:   "Size",
			Type:    OptionSize,
			Choices: []OptionChoice{{Name: "Small"}, {Name: "Large", Price: MoneyFromInt(50)}},
		}},
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(f *FoodItem)
	}{
		{"missing name", func(f *FoodItem) { f.Name = "" }},
		{"negative price", func(f *FoodItem) { f.Price = MoneyFromInt(-1) }},
		{"negative stock", func(f *FoodItem) { f.Stock = -1 }},
		{"unknown category", func(f *FoodItem) { f.Category = "Sushi" }},
		{"duplicate choice", func(f *FoodItem) {
			f.Options = []FoodOption{{Label: "Size", Choices: []OptionChoice{{Name: "S"}, {Name: "S"}}}}
		}},
		{"duplicate group", func(f *FoodItem) {
			f.Options = []FoodOption{{Label: "Size"}, {Label: "Size"}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := valid
			item.Options = append([]FoodOption(nil), valid.Options...)
			tt.mutate(&item)
			err := item.Validate()
			assert.Error(t, err)
			assert.True(t, IsValidation(err))
		})
	}
}
