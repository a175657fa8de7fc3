package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusCompleted OrderStatus = "completed"
	StatusRejected  OrderStatus = "rejected"
)

// pending -> preparing -> completed, with rejected as the alternative end of pending.
var orderTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusPreparing, StatusRejected},
	StatusPreparing: {StatusCompleted},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Accepted reports whether the order counts towards revenue.
func (s OrderStatus) Accepted() bool {
	return s == StatusPreparing || s == StatusCompleted
}

const SourceWebsiteDirect = "WebsiteDirect"

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerName  string             `bson:"customer_name" json:"customer_name"`
	CustomerPhone string             `bson:"customer_phone" json:"customer_phone"`
	Items         []CartItem         `bson:"items" json:"items"`
	Total         Money              `bson:"total" json:"total"`
	Status        OrderStatus        `bson:"status" json:"status"`
	Source        string             `bson:"source" json:"source"`
	Version       int64              `bson:"version" json:"version"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
