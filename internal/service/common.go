package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/cache"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/errdefs"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/events"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/ctxdata"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/logging"
)

func currentTeacher(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxdata.GetUserID(ctx)
	if !ok {
		return uuid.Nil, errdefs.ErrAuthentication
	}
	return id, nil
}

// notifier fans a change out to the event stream and drops the cached
// statistics it affects. Both are best effort.
type notifier struct {
	publisher EventPublisher
	cache     Cache
}

func (n notifier) publish(ctx context.Context, e events.Event) {
	if n.publisher == nil {
		return
	}
	if err := n.publisher.Publish(ctx, e); err != nil {
		logging.FromContext(ctx).Warn(ctx, "failed to publish event",
			zap.String("type", string(e.Type)),
			zap.String("submission_id", e.SubmissionID.String()),
			zap.Error(err),
		)
	}
}

// invalidate drops the cached summaries of the teacher's dashboard and of
// the given class and exams. Nil ids are skipped.
func (n notifier) invalidate(ctx context.Context, teacherID, classID uuid.UUID, examIDs ...uuid.UUID) {
	if n.cache == nil {
		return
	}
	keys := make([]string, 0, 2+len(examIDs))
	if teacherID != uuid.Nil {
		keys = append(keys, cache.DashboardKey(teacherID))
	}
	if classID != uuid.Nil {
		keys = append(keys, cache.ClassKey(classID))
	}
	for _, examID := range examIDs {
		if examID != uuid.Nil {
			keys = append(keys, cache.ExamKey(examID))
		}
	}
	n.cache.Delete(ctx, keys...)
}
