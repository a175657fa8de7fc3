package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

var ErrBrokerClosed = errors.New("broker is closed")

type envelope struct {
	body    []byte
	retries int
}

// MemoryBroker delivers messages between goroutines of one process with the
// same retry and dead-letter rules as the RabbitMQ broker.
type MemoryBroker struct {
	mu       sync.Mutex
	queues   map[string]chan envelope
	dead     map[string][][]byte
	retry    RetryPolicy
	logger   *zap.SugaredLogger
	closed   bool
	done     chan struct{}
	wg       sync.WaitGroup
	capacity int
}

func NewMemoryBroker(retry RetryPolicy, logger *zap.SugaredLogger) *MemoryBroker {
	b := &MemoryBroker{
		queues:   make(map[string]chan envelope),
		dead:     make(map[string][][]byte),
		retry:    retry,
		logger:   logger,
		done:     make(chan struct{}),
		capacity: 256,
	}
	for _, q := range Queues {
		b.queues[q] = make(chan envelope, b.capacity)
	}
	return b
}

func (b *MemoryBroker) queue(name string) (chan envelope, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrBrokerClosed
	}
	q, ok := b.queues[name]
	if !ok {
		q = make(chan envelope, b.capacity)
		b.queues[name] = q
	}
	return q, nil
}

func (b *MemoryBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	return b.enqueue(ctx, queueName, envelope{body: append([]byte(nil), message...)})
}

func (b *MemoryBroker) enqueue(ctx context.Context, queueName string, env envelope) error {
	q, err := b.queue(queueName)
	if err != nil {
		return err
	}

	select {
	case q <- env:
		return nil
	case <-b.done:
		return ErrBrokerClosed
	case <-ctx.Done():
		return fmt.Errorf("failed to publish message: %w", ctx.Err())
	}
}

func (b *MemoryBroker) Subscribe(ctx context.Context, queueName string, handler MessageHandler) error {
	q, err := b.queue(queueName)
	if err != nil {
		return err
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case <-b.done:
				return
			case env := <-q:
				b.handleMessage(ctx, queueName, env, handler)
			}
		}
	}()

	return nil
}

func (b *MemoryBroker) handleMessage(ctx context.Context, queueName string, env envelope, handler MessageHandler) {
	err := handler(ctx, env.body)
	if err == nil {
		return
	}

	if !b.retry.Exhausted(env.retries) {
		select {
		case <-ctx.Done():
			return
		case <-b.done:
			return
		case <-time.After(b.retry.Backoff(env.retries)):
		}

		env.retries++
		if pubErr := b.enqueue(ctx, queueName, env); pubErr != nil {
			b.logger.Errorw("failed to requeue message", "queue", queueName, "error", pubErr)
		}
		return
	}

	dlq := DeadLetterQueue(queueName)
	b.mu.Lock()
	b.dead[dlq] = append(b.dead[dlq], env.body)
	b.mu.Unlock()
	b.logger.Warnw("message dead-lettered", "queue", queueName, "retries", env.retries, "error", err)
}

// DeadLetters returns what ended up in the dead-letter queue of queueName.
func (b *MemoryBroker) DeadLetters(queueName string) [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([][]byte(nil), b.dead[DeadLetterQueue(queueName)]...)
}

// Close stops every consumer and waits for in-flight handlers to return.
func (b *MemoryBroker) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.done)
	b.mu.Unlock()

	b.wg.Wait()
	return nil
}
