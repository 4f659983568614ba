package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/errdefs"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/logging"
)

type ClassService struct {
	classes   ClassRepository
	validator Validator
	notifier
}

func NewClassService(classes ClassRepository, validator Validator, cache Cache) *ClassService {
	return &ClassService{
		classes:   classes,
		validator: validator,
		notifier:  notifier{cache: cache},
	}
}

func (s *ClassService) CreateClass(ctx context.Context, input *domain.CreateClassInput) (*domain.Class, error) {
	teacherID, err := currentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	class, err := s.classes.CreateClass(ctx, &domain.Class{
		ID:          id,
		TeacherID:   teacherID,
		Name:        input.Name,
		Description: input.Description,
		Subject:     input.Subject,
		GradeLevel:  input.GradeLevel,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, teacherID, uuid.Nil)
	logging.FromContext(ctx).Info(ctx, "class created", zap.String("class_id", class.ID.String()))
	return class, nil
}

func (s *ClassService) GetClass(ctx context.Context, id uuid.UUID) (*domain.Class, error) {
	teacherID, err := currentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	return s.classes.GetClass(ctx, teacherID, id)
}

func (s *ClassService) ListClasses(ctx context.Context, search string) ([]domain.Class, error) {
	teacherID, err := currentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	return s.classes.ListClasses(ctx, domain.ClassFilter{
		TeacherID: teacherID,
		Search:    strings.TrimSpace(search),
	})
}

func (s *ClassService) UpdateClass(ctx context.Context, id uuid.UUID, input *domain.UpdateClassInput) (*domain.Class, error) {
	teacherID, err := currentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	if input.Name == nil && input.Description == nil && input.Subject == nil && input.GradeLevel == nil {
		return nil, fmt.Errorf("nothing to update: %w", errdefs.ErrValidation)
	}
	trimPtr(input.Name)
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	class, err := s.classes.UpdateClass(ctx, teacherID, id, input)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, teacherID, id)
	return class, nil
}

// DeleteClass removes the class together with its students, exams and
// submissions.
func (s *ClassService) DeleteClass(ctx context.Context, id uuid.UUID) error {
	teacherID, err := currentTeacher(ctx)
	if err != nil {
		return err
	}
	if err := s.classes.DeleteClass(ctx, teacherID, id); err != nil {
		return err
	}
	s.invalidate(ctx, teacherID, id)
	logging.FromContext(ctx).Info(ctx, "class deleted", zap.String("class_id", id.String()))
	return nil
}
