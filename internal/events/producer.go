package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/utils"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Config struct {
	Brokers        []string
	EventsTopic    string
	RemindersTopic string
}

type Producer struct {
	writer         messageWriter
	eventsTopic    string
	remindersTopic string
	breaker        *utils.CircuitBreaker
}

func NewProducer(cfg Config) *Producer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return newProducer(writer, cfg)
}

func newProducer(w messageWriter, cfg Config) *Producer {
	return &Producer{
		writer:         w,
		eventsTopic:    cfg.EventsTopic,
		remindersTopic: cfg.RemindersTopic,
		breaker:        utils.NewCircuitBreaker(5, 30*time.Second),
	}
}

func (p *Producer) topicFor(t Type) string {
	if t == GradingReminder {
		return p.remindersTopic
	}
	return p.eventsTopic
}

// Publish writes e keyed by submission id so events for one submission stay
// ordered within a partition.
func (p *Producer) Publish(ctx context.Context, e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Topic: p.topicFor(e.Type),
		Key:   []byte(e.SubmissionID.String()),
		Value: data,
		Time:  e.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(e.Type)},
		},
	}

	_, err = utils.RetryWithCircuitBreaker(ctx, p.breaker, 3, 100*time.Millisecond, func() (struct{}, error) {
		if err := p.writer.WriteMessages(ctx, msg); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return struct{}{}, err
			}
			return struct{}{}, fmt.Errorf("%w: %v", utils.ErrUnavailable, err)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", e.Type, err)
	}
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
