package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/logging"
)

type reminderSender interface {
	RemindUngraded(ctx context.Context) (int, error)
}

// ReminderWorker periodically asks for reminders about ungraded submissions.
type ReminderWorker struct {
	reminders reminderSender
	interval  time.Duration
}

func NewReminderWorker(reminders reminderSender, interval time.Duration) *ReminderWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ReminderWorker{reminders: reminders, interval: interval}
}

func (w *ReminderWorker) Start(ctx context.Context) {
	logger := logging.FromContext(ctx)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "reminder worker stopped")
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *ReminderWorker) tick(ctx context.Context) {
	if _, err := w.reminders.RemindUngraded(ctx); err != nil && ctx.Err() == nil {
		logging.FromContext(ctx).Error(ctx, "failed to send grading reminders", zap.Error(err))
	}
}
