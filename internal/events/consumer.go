package events

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/logging"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Handler func(ctx context.Context, e Event) error

type ConsumerConfig struct {
	Brokers []string
	GroupID string
	Topics  []string
}

type Consumer struct {
	reader  messageReader
	handler Handler
}

func NewConsumer(cfg ConsumerConfig, handler Handler) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		GroupID:     cfg.GroupID,
		GroupTopics: cfg.Topics,
	})
	return &Consumer{reader: reader, handler: handler}
}

// Run consumes until ctx is cancelled. Messages that cannot be decoded or
// handled are logged and committed so one bad message never blocks the
// partition.
func (c *Consumer) Run(ctx context.Context) error {
	logger := logging.FromContext(ctx)
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				logger.Info(ctx, "consumer shutting down")
				return nil
			}
			if errors.Is(err, context.Canceled) {
				return nil
			}
			logger.Error(ctx, "failed to fetch message", zap.Error(err))
			continue
		}

		var e Event
		if err := json.Unmarshal(msg.Value, &e); err != nil {
			logger.Warn(ctx, "failed to unmarshal message",
				zap.String("topic", msg.Topic),
				zap.ByteString("value", msg.Value),
				zap.Error(err),
			)
		} else {
			logger.Info(ctx, "received event",
				zap.String("topic", msg.Topic),
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
				zap.String("type", string(e.Type)),
				zap.String("submission_id", e.SubmissionID.String()),
			)
			if err := c.handler(ctx, e); err != nil {
				logger.Error(ctx, "failed to handle event",
					zap.String("type", string(e.Type)),
					zap.Error(err),
				)
			}
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			logger.Error(ctx, "failed to commit message", zap.Error(err))
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
