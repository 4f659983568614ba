package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/logging"
)

type ExamService struct {
	exams     ExamRepository
	classes   ClassRepository
	validator Validator
	notifier
}

func NewExamService(exams ExamRepository, classes ClassRepository, validator Validator, cache Cache) *ExamService {
	return &ExamService{
		exams:     exams,
		classes:   classes,
		validator: validator,
		notifier:  notifier{cache: cache},
	}
}

func (s *ExamService) CreateExam(ctx context.Context, classID uuid.UUID, input *domain.CreateExamInput) (*domain.Exam, error) {
	teacherID, err := currentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	input.Title = strings.TrimSpace(input.Title)
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}
	if _, err := s.classes.GetClass(ctx, teacherID, classID); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	exam, err := s.exams.CreateExam(ctx, &domain.Exam{
		ID:           id,
		ClassID:      classID,
		Title:        input.Title,
		Instructions: input.Instructions,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, teacherID, classID)
	logging.FromContext(ctx).Info(ctx, "exam created",
		zap.String("exam_id", exam.ID.String()),
		zap.String("class_id", classID.String()),
	)
	return exam, nil
}

func (s *ExamService) GetExam(ctx context.Context, id uuid.UUID) (*domain.Exam, error) {
	teacherID, err := currentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	return s.exams.GetExam(ctx, teacherID, id)
}

func (s *ExamService) ListExams(ctx context.Context, classID uuid.UUID) ([]domain.Exam, error) {
	teacherID, err := currentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.classes.GetClass(ctx, teacherID, classID); err != nil {
		return nil, err
	}
	return s.exams.ListExamsByClass(ctx, classID)
}

func (s *ExamService) DeleteExam(ctx context.Context, id uuid.UUID) error {
	teacherID, err := currentTeacher(ctx)
	if err != nil {
		return err
	}
	exam, err := s.exams.GetExam(ctx, teacherID, id)
	if err != nil {
		return err
	}
	if err := s.exams.DeleteExam(ctx, teacherID, id); err != nil {
		return err
	}
	s.invalidate(ctx, teacherID, exam.ClassID, exam.ID)
	return nil
}
