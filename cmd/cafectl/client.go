package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrNotLoggedIn = errors.New("no admin token, run cafectl login first")

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// do sends body as JSON and decodes the data envelope into out.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &e) != nil || e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: e.Error}
	}

	if out == nil || len(data) == 0 {
		return nil
	}

	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = envelope.Data
		return nil
	}
	return json.Unmarshal(envelope.Data, out)
}

func (c *Client) requireToken() error {
	if c.token == "" {
		return ErrNotLoggedIn
	}
	return nil
}

type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	var s Session
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/admin/login", nil, body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

type Order struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	Total         float64   `json:"total"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func (c *Client) ListOrders(ctx context.Context, status, search string, limit int) (json.RawMessage, []Order, error) {
	if err := c.requireToken(); err != nil {
		return nil, nil, err
	}

	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if search != "" {
		q.Set("q", search)
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/orders", q, nil, &raw); err != nil {
		return nil, nil, err
	}

	var orders []Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return raw, orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) (*Order, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	var o Order
	body := map[string]string{"status": status}
	if err := c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(id)+"/status", nil, body, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

type AuditEntry struct {
	EventType string    `json:"event_type"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
}

func (c *Client) OrderHistory(ctx context.Context, id string) ([]AuditEntry, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	var entries []AuditEntry
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id)+"/history", nil, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

type MenuItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Popular  bool    `json:"popular"`
}

func (c *Client) ListMenu(ctx context.Context, category, search string) ([]MenuItem, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if search != "" {
		q.Set("q", search)
	}

	var items []MenuItem
	if err := c.do(ctx, http.MethodGet, "/menu", q, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

type ImportTask struct {
	TaskID        string `json:"task_id"`
	ID            string `json:"id"`
	Status        string `json:"status"`
	ItemCount     int    `json:"item_count"`
	Error         string `json:"error_message"`
	SpreadsheetID string `json:"spreadsheet_id"`
}

func (c *Client) ImportMenu(ctx context.Context, spreadsheetID, readRange string) (*ImportTask, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	var task ImportTask
	body := map[string]string{"spreadsheet_id": spreadsheetID, "range": readRange}
	if err := c.do(ctx, http.MethodPost, "/menu/import", nil, body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) ImportTask(ctx context.Context, id string) (*ImportTask, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	var task ImportTask
	if err := c.do(ctx, http.MethodGet, "/menu/import/"+url.PathEscape(id), nil, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}
