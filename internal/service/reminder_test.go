package service_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/events"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/service"
)

// ungradedStore backs the submission mock with rows that honour the
// reminded_at filter and the batch limit the way the SQL query does.
type ungradedStore struct {
	mu       sync.Mutex
	rows     []domain.UngradedSubmission
	reminded map[uuid.UUID]time.Time
}

func newUngradedStore(n int, age time.Duration) *ungradedStore {
	s := &ungradedStore{reminded: make(map[uuid.UUID]time.Time)}
	base := time.Now().Add(-age - time.Hour)
	for i := range n {
		s.rows = append(s.rows, domain.UngradedSubmission{
			ID:          uuid.New(),
			ExamID:      uuid.New(),
			ClassID:     uuid.New(),
			TeacherID:   uuid.New(),
			SubmittedAt: base.Add(-time.Duration(i) * time.Minute),
		})
	}
	sort.Slice(s.rows, func(i, j int) bool { return s.rows[i].SubmittedAt.Before(s.rows[j].SubmittedAt) })
	return s
}

func (s *ungradedStore) list(_ context.Context, cutoff time.Time, limit int) ([]domain.UngradedSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.UngradedSubmission, 0, limit)
	for _, r := range s.rows {
		if !r.SubmittedAt.Before(cutoff) {
			continue
		}
		if at, ok := s.reminded[r.ID]; ok && !at.Before(cutoff) {
			continue
		}
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *ungradedStore) mark(_ context.Context, id uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminded[id] = at
	return nil
}

func TestRemindUngraded(t *testing.T) {
	stale := []domain.UngradedSubmission{
		{ID: uuid.New(), ExamID: uuid.New(), ClassID: uuid.New(), TeacherID: uuid.New()},
		{ID: uuid.New(), ExamID: uuid.New(), ClassID: uuid.New(), TeacherID: uuid.New()},
	}

	t.Run("PublishesAndStampsEachSubmission", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewReminderService(d.submissions, d.publisher, 72*time.Hour)

		d.submissions.EXPECT().ListUngradedBefore(gomock.Any(), gomock.Any(), 100).
			DoAndReturn(func(_ context.Context, cutoff time.Time, _ int) ([]domain.UngradedSubmission, error) {
				assert.WithinDuration(t, time.Now().Add(-72*time.Hour), cutoff, time.Minute)
				return stale, nil
			})
		published := make([]uuid.UUID, 0, 2)
		d.publisher.EXPECT().Publish(gomock.Any(), eventOfType(events.GradingReminder)).
			DoAndReturn(func(_ context.Context, e events.Event) error {
				published = append(published, e.SubmissionID)
				return nil
			}).Times(2)
		d.submissions.EXPECT().MarkReminded(gomock.Any(), stale[0].ID, gomock.Any()).Return(nil)
		d.submissions.EXPECT().MarkReminded(gomock.Any(), stale[1].ID, gomock.Any()).Return(nil)

		sent, err := svc.RemindUngraded(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, sent)
		assert.Equal(t, []uuid.UUID{stale[0].ID, stale[1].ID}, published)
	})

	t.Run("BacklogLargerThanBatch", func(t *testing.T) {
		d := newDeps(t)
		age := 72 * time.Hour
		svc := service.NewReminderService(d.submissions, d.publisher, age)
		store := newUngradedStore(250, age)

		d.submissions.EXPECT().ListUngradedBefore(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(store.list).AnyTimes()
		d.submissions.EXPECT().MarkReminded(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(store.mark).AnyTimes()
		counts := make(map[uuid.UUID]int)
		d.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e events.Event) error {
				counts[e.SubmissionID]++
				return nil
			}).AnyTimes()

		sent, err := svc.RemindUngraded(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 250, sent)

		for range 3 {
			sent, err = svc.RemindUngraded(context.Background())
			require.NoError(t, err)
			assert.Zero(t, sent)
		}

		require.Len(t, counts, 250)
		for id, n := range counts {
			assert.Equal(t, 1, n, "submission %s reminded %d times", id, n)
		}
	})

	t.Run("PublishFailureLeavesSubmissionUnstamped", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewReminderService(d.submissions, d.publisher, time.Hour)

		d.submissions.EXPECT().ListUngradedBefore(gomock.Any(), gomock.Any(), gomock.Any()).Return(stale[:1], nil)
		d.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))

		sent, err := svc.RemindUngraded(context.Background())
		require.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("FullBatchWithoutProgressStops", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewReminderService(d.submissions, d.publisher, time.Hour)
		store := newUngradedStore(100, time.Hour)

		d.submissions.EXPECT().ListUngradedBefore(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(store.list).Times(1)
		d.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("kafka down")).Times(100)

		sent, err := svc.RemindUngraded(context.Background())
		require.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("RepositoryFailure", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewReminderService(d.submissions, d.publisher, time.Hour)
		boom := errors.New("db down")

		d.submissions.EXPECT().ListUngradedBefore(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)

		_, err := svc.RemindUngraded(context.Background())
		assert.ErrorIs(t, err, boom)
	})
}
