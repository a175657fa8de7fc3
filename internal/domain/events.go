package domain

import "time"

type MenuImportMessage struct {
	TaskID        string `json:"task_id"`
	SpreadsheetID string `json:"spreadsheet_id"`
}

type OrderEvent struct {
	EventType string      `json:"event_type"`
	OrderID   string      `json:"order_id"`
	OldStatus OrderStatus `json:"old_status,omitempty"`
	NewStatus OrderStatus `json:"new_status"`
	Total     Money       `json:"total"`
	Actor     string      `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
}

const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderDeleted       = "order.deleted"
)
