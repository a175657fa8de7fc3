package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection_JSON(t *testing.T) {
	var opts SelectedOptions
	require.NoError(t, json.Unmarshal([]byte(`{"Size":"Large","Toppings":["Olives","Corn"]}`), &opts))

	assert.Equal(t, Single("Large"), opts["Size"])
	assert.Equal(t, Multi("Olives", "Corn"), opts["Toppings"])

	data, err := json.Marshal(opts)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Size":"Large","Toppings":["Olives","Corn"]}`, string(data))
}

func TestSelection_EmptyMultiEncodesArray(t *testing.T) {
	data, err := json.Marshal(Multi())
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestSelectedOptions_Empty(t *testing.T) {
	assert.True(t, SelectedOptions(nil).Empty())
	assert.True(t, SelectedOptions{"Toppings": Multi()}.Empty())
	assert.False(t, SelectedOptions{"Size": Single("Small")}.Empty())
}

func TestSelectedOptions_Equal(t *testing.T) {
	a := SelectedOptions{"Toppings": Multi("Olives", "Corn"), "Size": Single("Large")}
	b := SelectedOptions{"Size": Single("Large"), "Toppings": Multi("Corn", "Olives")}
	c := SelectedOptions{"Size": Single("Small"), "Toppings": Multi("Corn", "Olives")}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, SelectedOptions{"Extra": Multi()}.Equal(nil))
}

func TestCart_ItemCount(t *testing.T) {
	c := Cart{Items: []CartItem{{Quantity: 2}, {Quantity: 3}}}
	assert.Equal(t, 5, c.ItemCount())
	assert.False(t, c.Empty())
	assert.True(t, Cart{}.Empty())
}
