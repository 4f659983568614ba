package main

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/cache"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/events"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/logging"
)

type keyDeleter interface {
	Delete(ctx context.Context, keys ...string)
}

// newEventHandler logs each grading event and drops the statistics it makes
// stale, covering writers that could not invalidate on their own.
func newEventHandler(c keyDeleter) events.Handler {
	return func(ctx context.Context, e events.Event) error {
		logger := logging.FromContext(ctx)

		fields := []zap.Field{
			zap.String("event_id", e.ID.String()),
			zap.String("type", string(e.Type)),
			zap.String("submission_id", e.SubmissionID.String()),
			zap.String("teacher_id", e.TeacherID.String()),
		}
		if e.Grade != nil {
			fields = append(fields, zap.Float64("grade", *e.Grade))
		}

		switch e.Type {
		case events.GradingReminder:
			logger.Info(ctx, "submission awaiting grade", fields...)
			return nil
		case events.SubmissionUploaded, events.SubmissionGraded, events.CommentsChanged:
			logger.Info(ctx, "grading event", fields...)
		default:
			logger.Warn(ctx, "unknown event type", fields...)
			return nil
		}

		keys := make([]string, 0, 3)
		if e.TeacherID != uuid.Nil {
			keys = append(keys, cache.DashboardKey(e.TeacherID))
		}
		if e.ClassID != uuid.Nil {
			keys = append(keys, cache.ClassKey(e.ClassID))
		}
		if e.ExamID != uuid.Nil {
			keys = append(keys, cache.ExamKey(e.ExamID))
		}
		if len(keys) > 0 {
			c.Delete(ctx, keys...)
		}
		return nil
	}
}
