package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/errdefs"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/logging"
)

type StudentService struct {
	students  StudentRepository
	classes   ClassRepository
	exams     ExamRepository
	validator Validator
	notifier
}

func NewStudentService(
	students StudentRepository,
	classes ClassRepository,
	exams ExamRepository,
	validator Validator,
	cache Cache,
) *StudentService {
	return &StudentService{
		students:  students,
		classes:   classes,
		exams:     exams,
		validator: validator,
		notifier:  notifier{cache: cache},
	}
}

func (s *StudentService) AddStudent(ctx context.Context, classID uuid.UUID, input *domain.CreateStudentInput) (*domain.Student, error) {
	teacherID, err := currentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
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
	student, err := s.students.CreateStudent(ctx, &domain.Student{
		ID:      id,
		ClassID: classID,
		Name:    input.Name,
		Email:   input.Email,
	})
	if err != nil {
		if errors.Is(err, errdefs.ErrAlreadyExists) {
			return nil, fmt.Errorf("a student with this email is already in the class: %w", errdefs.ErrAlreadyExists)
		}
		return nil, err
	}

	s.rosterChanged(ctx, teacherID, classID)
	return student, nil
}

func (s *StudentService) ListStudents(ctx context.Context, classID uuid.UUID, search string) ([]domain.Student, error) {
	teacherID, err := currentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.classes.GetClass(ctx, teacherID, classID); err != nil {
		return nil, err
	}
	return s.students.ListStudents(ctx, domain.StudentFilter{
		ClassID: classID,
		Search:  strings.TrimSpace(search),
	})
}

func (s *StudentService) RemoveStudent(ctx context.Context, classID, studentID uuid.UUID) error {
	teacherID, err := currentTeacher(ctx)
	if err != nil {
		return err
	}
	if _, err := s.classes.GetClass(ctx, teacherID, classID); err != nil {
		return err
	}
	if err := s.students.DeleteStudent(ctx, classID, studentID); err != nil {
		return err
	}
	s.rosterChanged(ctx, teacherID, classID)
	return nil
}

// rosterChanged drops every summary that counts the class's students. Exam
// summaries are included since removing a student also removes their
// submissions.
func (s *StudentService) rosterChanged(ctx context.Context, teacherID, classID uuid.UUID) {
	exams, err := s.exams.ListExamsByClass(ctx, classID)
	if err != nil {
		logging.FromContext(ctx).Warn(ctx, "failed to list exams for cache invalidation",
			zap.String("class_id", classID.String()),
			zap.Error(err),
		)
	}
	examIDs := make([]uuid.UUID, 0, len(exams))
	for _, e := range exams {
		examIDs = append(examIDs, e.ID)
	}
	s.invalidate(ctx, teacherID, classID, examIDs...)
}

// ListAvailableStudents returns the students of the exam's class that have
// not submitted for it yet.
func (s *StudentService) ListAvailableStudents(ctx context.Context, examID uuid.UUID, search string) ([]domain.Student, error) {
	teacherID, err := currentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	exam, err := s.exams.GetExam(ctx, teacherID, examID)
	if err != nil {
		return nil, err
	}
	return s.students.ListStudents(ctx, domain.StudentFilter{
		ClassID:             exam.ClassID,
		ExcludeSubmittedFor: exam.ID,
		Search:              strings.TrimSpace(search),
	})
}
