// Package webhook delivers placed orders to the order intake endpoint.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Beka01247/cafe/internal/cart"
	"github.com/Beka01247/cafe/internal/domain"
)

// ErrDelivery means the endpoint did not acknowledge the order.
var ErrDelivery = errors.New("order delivery failed")

type Payload struct {
	Order  OrderPayload `json:"order"`
	Source string       `json:"source"`
}

// OrderPayload is the flattened shape the intake automation parses:
// comma-joined names and quantities in line order.
type OrderPayload struct {
	Name      string         `json:"name"`
	Phone     string         `json:"phone"`
	FoodItems string         `json:"foodItems"`
	Quantity  string         `json:"quantity"`
	Total     domain.Money   `json:"total"`
	Items     []LineItemJSON `json:"items,omitempty"`
}

type LineItemJSON struct {
	Name         string            `json:"name"`
	Quantity     int               `json:"quantity"`
	UnitPrice    domain.Money      `json:"unit_price"`
	LineTotal    domain.Money      `json:"line_total"`
	Options      map[string]string `json:"options,omitempty"`
	Instructions string            `json:"special_instructions,omitempty"`
}

// BuildPayload flattens the cart lines. withLineItems adds the structured
// items array next to the legacy fields.
func BuildPayload(name, phone string, lines []domain.CartItem, withLineItems bool) Payload {
	names := make([]string, 0, len(lines))
	quantities := make([]string, 0, len(lines))
	for _, line := range lines {
		names = append(names, line.Item.Name)
		quantities = append(quantities, strconv.Itoa(line.Quantity))
	}

	p := Payload{
		Order: OrderPayload{
			Name:      name,
			Phone:     phone,
			FoodItems: strings.Join(names, ", "),
			Quantity:  strings.Join(quantities, ", "),
			Total:     cart.GrandTotal(lines),
		},
		Source: domain.SourceWebsiteDirect,
	}

	if withLineItems {
		p.Order.Items = make([]LineItemJSON, 0, len(lines))
		for _, line := range lines {
			p.Order.Items = append(p.Order.Items, LineItemJSON{
				Name:         line.Item.Name,
				Quantity:     line.Quantity,
				UnitPrice:    cart.UnitPrice(line),
				LineTotal:    cart.LineTotal(line),
				Options:      flattenOptions(line.SelectedOptions),
				Instructions: line.SpecialInstructions,
			})
		}
	}

	return p
}

func flattenOptions(sel domain.SelectedOptions) map[string]string {
	if sel.Empty() {
		return nil
	}
	out := make(map[string]string, len(sel))
	for label, s := range sel {
		if s.Empty() {
			continue
		}
		choices := append([]string(nil), s.Choices...)
		sort.Strings(choices)
		out[label] = strings.Join(choices, ", ")
	}
	return out
}

type Config struct {
	URL     string
	Timeout time.Duration
}

type Client struct {
	url    string
	client *http.Client
}

func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		url:    cfg.URL,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Send posts the payload once. Only a 2xx answer with a JSON body counts as
// delivered.
func (c *Client) Send(ctx context.Context, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode order payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrDelivery, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: endpoint responded with status %d", ErrDelivery, resp.StatusCode)
	}

	if !json.Valid(respBody) {
		return fmt.Errorf("%w: endpoint response is not JSON", ErrDelivery)
	}

	return nil
}
