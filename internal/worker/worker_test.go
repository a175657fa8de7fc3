package worker

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/Beka01247/cafe/internal/domain"
	"github.com/Beka01247/cafe/internal/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type eventSink struct {
	mu     sync.Mutex
	events []domain.OrderEvent
}

func (s *eventSink) ProcessOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *eventSink) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

type taskSink struct {
	mu  sync.Mutex
	ids []primitive.ObjectID
}

func (s *taskSink) ProcessImportTask(ctx context.Context, taskID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = append(s.ids, taskID)
	return nil
}

func (s *taskSink) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

func TestOrderEventsWorker(t *testing.T) {
	logger := zap.NewNop().Sugar()
	broker := queue.NewMemoryBroker(queue.RetryPolicy{MaxRetries: 1, BaseDelay: time.Millisecond}, logger)
	sink := &eventSink{}

	w := NewOrderEventsWorker(sink, broker, logger)
	require.NoError(t, w.Start())

	body, err := json.Marshal(domain.OrderEvent{EventType: domain.EventOrderPlaced, OrderID: primitive.NewObjectID().Hex(), NewStatus: domain.StatusPending})
	require.NoError(t, err)
	require.NoError(t, broker.Publish(context.Background(), queue.QueueOrderEvents, body))

	assert.Eventually(t, func() bool { return sink.len() == 1 }, time.Second, 5*time.Millisecond)
	assert.False(t, sink.events[0].Timestamp.IsZero())

	require.NoError(t, broker.Publish(context.Background(), queue.QueueOrderEvents, []byte("{not json")))
	assert.Eventually(t, func() bool { return len(broker.DeadLetters(queue.QueueOrderEvents)) == 1 }, time.Second, 5*time.Millisecond)

	w.Stop()
	require.NoError(t, broker.Close())
}

func TestMenuImportWorker(t *testing.T) {
	logger := zap.NewNop().Sugar()
	broker := queue.NewMemoryBroker(queue.RetryPolicy{MaxRetries: 1, BaseDelay: time.Millisecond}, logger)
	sink := &taskSink{}

	w := NewMenuImportWorker(sink, broker, logger)
	require.NoError(t, w.Start())

	id := primitive.NewObjectID()
	body, err := json.Marshal(domain.MenuImportMessage{TaskID: id.Hex(), SpreadsheetID: "sheet"})
	require.NoError(t, err)
	require.NoError(t, broker.Publish(context.Background(), queue.QueueMenuImport, body))

	assert.Eventually(t, func() bool { return sink.len() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, broker.Publish(context.Background(), queue.QueueMenuImport, []byte(`{"task_id":"bad"}`)))
	assert.Eventually(t, func() bool { return len(broker.DeadLetters(queue.QueueMenuImport)) == 1 }, time.Second, 5*time.Millisecond)

	w.Stop()
	require.NoError(t, broker.Close())
}
