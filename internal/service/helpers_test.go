package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/events"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/service/mocks"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/ctxdata"
)

type deps struct {
	teachers    *mocks.MockTeacherRepository
	classes     *mocks.MockClassRepository
	students    *mocks.MockStudentRepository
	exams       *mocks.MockExamRepository
	submissions *mocks.MockSubmissionRepository
	files       *mocks.MockFileStore
	publisher   *mocks.MockEventPublisher
	cache       *mocks.MockCache
	tokens      *mocks.MockTokenIssuer
	revoker     *mocks.MockTokenRevoker
	hasher      *mocks.MockPasswordHasher
}

func newDeps(t *testing.T) *deps {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	return &deps{
		teachers:    mocks.NewMockTeacherRepository(ctrl),
		classes:     mocks.NewMockClassRepository(ctrl),
		students:    mocks.NewMockStudentRepository(ctrl),
		exams:       mocks.NewMockExamRepository(ctrl),
		submissions: mocks.NewMockSubmissionRepository(ctrl),
		files:       mocks.NewMockFileStore(ctrl),
		publisher:   mocks.NewMockEventPublisher(ctrl),
		cache:       mocks.NewMockCache(ctrl),
		tokens:      mocks.NewMockTokenIssuer(ctrl),
		revoker:     mocks.NewMockTokenRevoker(ctrl),
		hasher:      mocks.NewMockPasswordHasher(ctrl),
	}
}

// ignoreInvalidation accepts any number of cache deletes.
func (d *deps) ignoreInvalidation() {
	d.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
}

func teacherCtx(teacherID uuid.UUID) context.Context {
	return ctxdata.WithSession(context.Background(), ctxdata.Session{
		UserID:    teacherID,
		Email:     "teacher@school.org",
		TokenID:   "token-id",
		ExpiresAt: time.Now().Add(time.Hour),
	})
}

// runMutation stands in for the row-locked update: it applies the mutation
// to a copy of detail and returns the result.
func runMutation(detail domain.SubmissionDetail) func(context.Context, uuid.UUID, uuid.UUID, func(*domain.SubmissionDetail) error) (*domain.SubmissionDetail, error) {
	return func(_ context.Context, _, _ uuid.UUID, mutate func(*domain.SubmissionDetail) error) (*domain.SubmissionDetail, error) {
		d := detail
		d.Feedback = detail.Feedback.WithComments(detail.Feedback.Comments)
		if err := mutate(&d); err != nil {
			return nil, err
		}
		return &d, nil
	}
}

type eventMatcher struct {
	typ events.Type
}

func eventOfType(t events.Type) gomock.Matcher { return eventMatcher{typ: t} }

func (m eventMatcher) Matches(x any) bool {
	e, ok := x.(events.Event)
	return ok && e.Type == m.typ
}

func (m eventMatcher) String() string { return fmt.Sprintf("event of type %s", m.typ) }

func ptr[T any](v T) *T { return &v }
