package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/cache"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/stats"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/logging"
)

// StatsService computes grade summaries and keeps them in the cache until
// a write invalidates them or ttl passes.
type StatsService struct {
	classes     ClassRepository
	exams       ExamRepository
	students    StudentRepository
	submissions SubmissionRepository
	cache       Cache
	ttl         time.Duration
}

func NewStatsService(
	classes ClassRepository,
	exams ExamRepository,
	students StudentRepository,
	submissions SubmissionRepository,
	cache Cache,
	ttl time.Duration,
) *StatsService {
	return &StatsService{
		classes:     classes,
		exams:       exams,
		students:    students,
		submissions: submissions,
		cache:       cache,
		ttl:         ttl,
	}
}

func (s *StatsService) Dashboard(ctx context.Context) (*stats.Dashboard, error) {
	teacherID, err := currentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	return cached(ctx, s, cache.DashboardKey(teacherID), func() (*stats.Dashboard, error) {
		classes, err := s.classes.ListClasses(ctx, domain.ClassFilter{TeacherID: teacherID})
		if err != nil {
			return nil, err
		}
		exams, err := s.exams.ListExamsByTeacher(ctx, teacherID)
		if err != nil {
			return nil, err
		}
		studentCount, err := s.students.CountStudentsByTeacher(ctx, teacherID)
		if err != nil {
			return nil, err
		}
		subs, err := s.submissions.ListSubmissionsByTeacher(ctx, teacherID)
		if err != nil {
			return nil, err
		}

		classOfExam := make(map[uuid.UUID]uuid.UUID, len(exams))
		for _, e := range exams {
			classOfExam[e.ID] = e.ClassID
		}
		d := stats.SummarizeDashboard(stats.DashboardInput{
			Classes:      classes,
			ExamCount:    len(exams),
			StudentCount: studentCount,
			Submissions:  subs,
			ClassOfExam:  classOfExam,
		})
		return &d, nil
	})
}

func (s *StatsService) ClassSummary(ctx context.Context, classID uuid.UUID) (*stats.ClassSummary, error) {
	teacherID, err := currentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	class, err := s.classes.GetClass(ctx, teacherID, classID)
	if err != nil {
		return nil, err
	}
	return cached(ctx, s, cache.ClassKey(classID), func() (*stats.ClassSummary, error) {
		studentCount, err := s.students.CountStudentsByClass(ctx, classID)
		if err != nil {
			return nil, err
		}
		exams, err := s.exams.ListExamsByClass(ctx, classID)
		if err != nil {
			return nil, err
		}
		subs, err := s.submissions.ListSubmissionsByClass(ctx, classID)
		if err != nil {
			return nil, err
		}
		summary := stats.SummarizeClass(*class, studentCount, exams, subs)
		return &summary, nil
	})
}

func (s *StatsService) ExamSummary(ctx context.Context, examID uuid.UUID) (*stats.ExamSummary, error) {
	teacherID, err := currentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	exam, err := s.exams.GetExam(ctx, teacherID, examID)
	if err != nil {
		return nil, err
	}
	return cached(ctx, s, cache.ExamKey(examID), func() (*stats.ExamSummary, error) {
		studentCount, err := s.students.CountStudentsByClass(ctx, exam.ClassID)
		if err != nil {
			return nil, err
		}
		details, err := s.submissions.ListSubmissionsByExam(ctx, examID)
		if err != nil {
			return nil, err
		}
		subs := make([]domain.Submission, len(details))
		for i := range details {
			subs[i] = details[i].Submission
		}
		summary := stats.SummarizeExam(*exam, studentCount, subs)
		return &summary, nil
	})
}

// cached serves key from the cache or computes and stores it. Cache
// failures fall through to compute.
func cached[T any](ctx context.Context, s *StatsService, key string, compute func() (*T, error)) (*T, error) {
	logger := logging.FromContext(ctx)
	if s.cache != nil {
		if data, ok := s.cache.Get(ctx, key); ok {
			var v T
			if err := json.Unmarshal(data, &v); err == nil {
				return &v, nil
			}
			logger.Warn(ctx, "discarding unreadable cache entry", zap.String("key", key))
		}
	}

	v, err := compute()
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if data, err := json.Marshal(v); err == nil {
			s.cache.Set(ctx, key, data, s.ttl)
		}
	}
	return v, nil
}
