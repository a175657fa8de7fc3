package queue

import (
	"context"
	"time"
)

type Broker interface {
	Publish(ctx context.Context, queueName string, message []byte) error
	Subscribe(ctx context.Context, queueName string, handler MessageHandler) error
	Close() error
}

type MessageHandler func(ctx context.Context, message []byte) error

const (
	QueueOrderEvents    = "order-events"
	QueueMenuImport     = "menu-import"
	QueueOrderEventsDLQ = "order-events-dlq"
	QueueMenuImportDLQ  = "menu-import-dlq"
)

const (
	headerRetryCount    = "x-retry-count"
	headerOriginalQueue = "x-original-queue"
	headerError         = "x-error"
)

// Queues lists every queue the brokers declare up front.
var Queues = []string{
	QueueOrderEvents,
	QueueMenuImport,
	QueueOrderEventsDLQ,
	QueueMenuImportDLQ,
}

func DeadLetterQueue(queueName string) string {
	return queueName + "-dlq"
}

// RetryPolicy decides what happens to a message whose handler failed.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	if p.MaxRetries <= 0 {
		p.MaxRetries = 3
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = time.Second
	}
	return p
}

// Backoff doubles the base delay per attempt: 1s, 2s, 4s for the defaults.
func (p RetryPolicy) Backoff(retryCount int) time.Duration {
	p = p.withDefaults()
	return p.BaseDelay * time.Duration(1<<retryCount)
}

func (p RetryPolicy) Exhausted(retryCount int) bool {
	p = p.withDefaults()
	return retryCount >= p.MaxRetries
}
