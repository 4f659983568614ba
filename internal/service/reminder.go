package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/events"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/logging"
)

const reminderBatchSize = 100

// ReminderService nudges teachers about submissions left ungraded for
// longer than age. A submission is reminded about at most once per age;
// the repository filters out submissions stamped within that window.
type ReminderService struct {
	submissions SubmissionRepository
	publisher   EventPublisher
	age         time.Duration
	now         func() time.Time
}

func NewReminderService(submissions SubmissionRepository, publisher EventPublisher, age time.Duration) *ReminderService {
	return &ReminderService{
		submissions: submissions,
		publisher:   publisher,
		age:         age,
		now:         time.Now,
	}
}

// RemindUngraded publishes a reminder per stale submission and reports how
// many were sent. It pages through batches until the backlog is drained or
// a batch makes no progress.
func (s *ReminderService) RemindUngraded(ctx context.Context) (int, error) {
	logger := logging.FromContext(ctx)
	now := s.now()
	cutoff := now.Add(-s.age)

	sent := 0
	for {
		stale, err := s.submissions.ListUngradedBefore(ctx, cutoff, reminderBatchSize)
		if err != nil {
			return sent, err
		}

		stamped := 0
		for _, u := range stale {
			e := events.New(events.GradingReminder, u.ID, u.ExamID, u.ClassID, u.TeacherID)
			if err := s.publisher.Publish(ctx, e); err != nil {
				logger.Warn(ctx, "failed to publish grading reminder",
					zap.String("submission_id", u.ID.String()),
					zap.Error(err),
				)
				continue
			}
			sent++
			if err := s.submissions.MarkReminded(ctx, u.ID, now); err != nil {
				logger.Warn(ctx, "failed to record grading reminder",
					zap.String("submission_id", u.ID.String()),
					zap.Error(err),
				)
				continue
			}
			stamped++
		}

		if len(stale) < reminderBatchSize || stamped == 0 {
			break
		}
	}

	if sent > 0 {
		logger.Info(ctx, "grading reminders sent", zap.Int("count", sent))
	}
	return sent, nil
}
