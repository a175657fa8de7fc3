package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatusAudit struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID   primitive.ObjectID `bson:"order_id" json:"order_id"`
	EventType string             `bson:"event_type" json:"event_type"`
	OldStatus OrderStatus        `bson:"old_status,omitempty" json:"old_status,omitempty"`
	NewStatus OrderStatus        `bson:"new_status" json:"new_status"`
	Actor     string             `bson:"actor" json:"actor"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
