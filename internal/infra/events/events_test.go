//go:build unit

package events

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"restaurant-booking/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() shared.Event {
	return shared.Event{
		Type:       shared.EventReservationConfirmed,
		Key:        "6a3f2c1e-0000-4000-8000-000000000001",
		Payload:    map[string]string{"status": "confirmed"},
		OccurredAt: time.Date(2024, 7, 4, 18, 0, 0, 0, time.UTC),
	}
}

func TestToMessage(t *testing.T) {
	msg, err := toMessage(testEvent())
	require.NoError(t, err)

	assert.Equal(t, "6a3f2c1e-0000-4000-8000-000000000001", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "reservation.confirmed", string(msg.Headers[0].Value))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "reservation.confirmed", decoded["type"])
	assert.Equal(t, "2024-07-04T18:00:00Z", decoded["occurred_at"])
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	err := NewLogPublisher(logger).Publish(context.Background(), testEvent())
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "event published", line["msg"])
	assert.Equal(t, "reservation.confirmed", line["type"])
}

// blockingWriter holds every write until release is closed.
type blockingWriter struct {
	release chan struct{}
	mu      sync.Mutex
	written []kafka.Message
	closed  bool
}

func newBlockingWriter() *blockingWriter {
	return &blockingWriter{release: make(chan struct{})}
}

func (w *blockingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	<-w.release
	w.mu.Lock()
	defer w.mu.Unlock()
	w.written = append(w.written, msgs...)
	return nil
}

func (w *blockingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestKafkaPublisher(t *testing.T) {
	t.Run("Publish は配信を待たない", func(t *testing.T) {
		w := newBlockingWriter()
		p := newKafkaPublisher(w, discardLogger())

		start := time.Now()
		require.NoError(t, p.Publish(context.Background(), testEvent()))
		require.NoError(t, p.Publish(context.Background(), testEvent()))
		assert.Less(t, time.Since(start), 100*time.Millisecond)

		close(w.release)
		require.NoError(t, p.Close())

		assert.Len(t, w.written, 2)
		assert.True(t, w.closed)
	})

	t.Run("キューが溢れたらエラー", func(t *testing.T) {
		w := newBlockingWriter()
		p := newKafkaPublisher(w, discardLogger())

		var err error
		// one message is held by the sender, the rest fill the queue
		for i := 0; i < queueSize+2 && err == nil; i++ {
			err = p.Publish(context.Background(), testEvent())
		}
		assert.ErrorIs(t, err, ErrQueueFull)

		close(w.release)
		require.NoError(t, p.Close())
	})

	t.Run("Close 後の Publish はエラー", func(t *testing.T) {
		w := newBlockingWriter()
		close(w.release)
		p := newKafkaPublisher(w, discardLogger())
		require.NoError(t, p.Close())
		require.NoError(t, p.Close())

		assert.ErrorIs(t, p.Publish(context.Background(), testEvent()), ErrPublisherClosed)
	})

	t.Run("単発の書き込みをバッチ待ちさせない", func(t *testing.T) {
		p := NewKafkaPublisher([]string{"localhost:9092"}, "reservation-events", discardLogger())
		writer, ok := p.writer.(*kafka.Writer)
		require.True(t, ok)

		assert.Equal(t, batchTimeout, writer.BatchTimeout)
		assert.Less(t, writer.BatchTimeout, 100*time.Millisecond)
		require.NoError(t, p.Close())
	})
}
