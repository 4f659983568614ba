package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/cache"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/config"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/events"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		panic(fmt.Sprintf("cannot create config: %v", err))
	}

	logger, err := logging.NewFromEnv(cfg.Env)
	if err != nil {
		panic(fmt.Sprintf("cannot create logger: %v", err))
	}
	defer func() { _ = logger.Sync() }()
	ctx = logging.ContextWithLogger(ctx, logger)

	rdb, err := cache.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		logger.Fatal(ctx, "cannot connect to redis", zap.Error(err))
	}
	defer func() { _ = rdb.Close() }()

	topics := []string{cfg.KafkaEventsTopic, cfg.KafkaRemindersTopic}
	logger.Info(ctx, "starting notification consumer",
		zap.Strings("topics", topics),
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("group_id", cfg.KafkaGroupID),
	)

	consumer := events.NewConsumer(events.ConsumerConfig{
		Brokers: cfg.KafkaBrokers,
		GroupID: cfg.KafkaGroupID,
		Topics:  topics,
	}, newEventHandler(cache.NewRedisCache(rdb)))
	defer func() { _ = consumer.Close() }()

	if err := consumer.Run(ctx); err != nil {
		logger.Error(ctx, "consumer stopped", zap.Error(err))
		os.Exit(1)
	}
}
