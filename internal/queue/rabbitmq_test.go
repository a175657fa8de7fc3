package queue

import (
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

func TestRetryCountOf(t *testing.T) {
	cases := map[string]struct {
		headers amqp.Table
		want    int
	}{
		"nil headers": {nil, 0},
		"missing":     {amqp.Table{"other": "x"}, 0},
		"int32":       {amqp.Table{headerRetryCount: int32(2)}, 2},
		"int64":       {amqp.Table{headerRetryCount: int64(3)}, 3},
		"wrong type":  {amqp.Table{headerRetryCount: "1"}, 0},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, retryCountOf(tc.headers))
		})
	}
}

func TestDeadLetterQueue(t *testing.T) {
	assert.Equal(t, QueueOrderEventsDLQ, DeadLetterQueue(QueueOrderEvents))
	assert.Equal(t, QueueMenuImportDLQ, DeadLetterQueue(QueueMenuImport))
}
