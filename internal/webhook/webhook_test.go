package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Beka01247/cafe/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLines() []domain.CartItem {
	pizza := domain.FoodItem{
		ID:    "p1",
		Name:  "Farmhouse Pizza",
		Price: domain.MoneyFromInt(200),
		Options: []domain.FoodOption{{
			Label:   "Size",
			Type:    domain.OptionSize,
			Choices: []domain.OptionChoice{{Name: "Large", Price: domain.MoneyFromInt(50)}},
		}},
	}
	return []domain.CartItem{
		{LineID: "l1", Item: pizza, Quantity: 2, SelectedOptions: domain.SelectedOptions{"Size": domain.Single("Large")}},
		{LineID: "l2", Item: domain.FoodItem{ID: "c1", Name: "Cold Coffee", Price: domain.MoneyFromInt(50)}, Quantity: 1},
	}
}

func TestBuildPayload_LegacyShape(t *testing.T) {
	p := BuildPayload("John Doe", "9876543210", sampleLines(), false)

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"order": {
			"name": "John Doe",
			"phone": "9876543210",
			"foodItems": "Farmhouse Pizza, Cold Coffee",
			"quantity": "2, 1",
			"total": 550
		},
		"source": "WebsiteDirect"
	}`, string(raw))
}

func TestBuildPayload_WithLineItems(t *testing.T) {
	p := BuildPayload("John Doe", "9876543210", sampleLines(), true)

	require.Len(t, p.Order.Items, 2)
	assert.Equal(t, "250.00", p.Order.Items[0].UnitPrice.String())
	assert.Equal(t, "500.00", p.Order.Items[0].LineTotal.String())
	assert.Equal(t, map[string]string{"Size": "Large"}, p.Order.Items[0].Options)
	assert.Nil(t, p.Order.Items[1].Options)
}

func TestClient_Send(t *testing.T) {
	var received Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &received))
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c := New(Config{URL: srv.URL})
	require.NoError(t, c.Send(context.Background(), BuildPayload("John Doe", "9876543210", sampleLines(), false)))
	assert.Equal(t, "Farmhouse Pizza, Cold Coffee", received.Order.FoodItems)
}

func TestClient_SendFailures(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"boom"}`))
		},
		"non json body": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("Accepted"))
		},
		"timeout": func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(`{}`))
		},
	}

	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(handler)
			defer srv.Close()

			c := New(Config{URL: srv.URL, Timeout: 50 * time.Millisecond})
			err := c.Send(context.Background(), BuildPayload("John Doe", "9876543210", sampleLines(), false))
			assert.ErrorIs(t, err, ErrDelivery)
		})
	}
}
