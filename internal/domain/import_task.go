package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ImportTaskStatus string

const (
	ImportQueued     ImportTaskStatus = "queued"
	ImportProcessing ImportTaskStatus = "processing"
	ImportCompleted  ImportTaskStatus = "completed"
	ImportFailed     ImportTaskStatus = "failed"
)

// MenuImportTask tracks one spreadsheet import into the menu store.
type MenuImportTask struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Status        ImportTaskStatus   `bson:"status" json:"status"`
	SpreadsheetID string             `bson:"spreadsheet_id" json:"spreadsheet_id"`
	ReadRange     string             `bson:"read_range,omitempty" json:"read_range,omitempty"`
	ItemCount     int                `bson:"item_count" json:"item_count"`
	ErrorMessage  string             `bson:"error_message,omitempty" json:"error_message,omitempty"`
	RequestedBy   string             `bson:"requested_by,omitempty" json:"requested_by,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
