// Package events delivers reservation events to Kafka or to the log.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

const (
	queueSize    = 256
	writeTimeout = 5 * time.Second
	// single events must not sit in kafka-go's batch buffer for the 1s default
	batchTimeout = 10 * time.Millisecond
)

var (
	ErrQueueFull       = errs.New("event queue is full")
	ErrPublisherClosed = errs.New("event publisher is closed")
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher hands events to a background sender so mutations never wait on the broker.
type KafkaPublisher struct {
	writer messageWriter
	log    *slog.Logger
	queue  chan kafka.Message
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) *KafkaPublisher {
	return newKafkaPublisher(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: batchTimeout,
		WriteTimeout: writeTimeout,
	}, logger)
}

func newKafkaPublisher(w messageWriter, logger *slog.Logger) *KafkaPublisher {
	p := &KafkaPublisher{
		writer: w,
		log:    logger.With(slog.String("op", "events.KafkaPublisher")),
		queue:  make(chan kafka.Message, queueSize),
		done:   make(chan struct{}),
	}
	go p.run()
	return p
}

func (p *KafkaPublisher) run() {
	defer close(p.done)
	for msg := range p.queue {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := p.writer.WriteMessages(ctx, msg); err != nil {
			p.log.Error("failed to write event",
				"key", string(msg.Key),
				"error", err.Error())
		}
		cancel()
	}
}

// Publish queues the event and returns without waiting for delivery.
func (p *KafkaPublisher) Publish(_ context.Context, event shared.Event) error {
	msg, err := toMessage(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode event")
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}
	select {
	case p.queue <- msg:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting events, drains the queue and closes the writer.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	<-p.done
	return p.writer.Close()
}

// toMessage keys by aggregate so one reservation's events stay on one partition.
func toMessage(event shared.Event) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(event.Key),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}, nil
}
