package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Beka01247/cafe/internal/queue"
)

func publishJSON(ctx context.Context, broker queue.Broker, queueName string, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := broker.Publish(ctx, queueName, body); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}
