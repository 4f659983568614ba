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
	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/ctxdata"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/logging"
)

var errInvalidCredentials = fmt.Errorf("invalid email or password: %w", errdefs.ErrAuthentication)

type AuthService struct {
	teachers  TeacherRepository
	hasher    PasswordHasher
	tokens    TokenIssuer
	revoker   TokenRevoker
	validator Validator
}

func NewAuthService(
	teachers TeacherRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	revoker TokenRevoker,
	validator Validator,
) *AuthService {
	return &AuthService{
		teachers:  teachers,
		hasher:    hasher,
		tokens:    tokens,
		revoker:   revoker,
		validator: validator,
	}
}

func (s *AuthService) SignUp(ctx context.Context, input *domain.SignUpInput) (*domain.Session, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	teacher, err := s.teachers.CreateTeacher(ctx, &domain.Teacher{
		ID:           id,
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
	})
	if err != nil {
		if errors.Is(err, errdefs.ErrAlreadyExists) {
			return nil, fmt.Errorf("email already registered: %w", errdefs.ErrAlreadyExists)
		}
		return nil, err
	}

	logging.FromContext(ctx).Info(ctx, "teacher signed up", zap.String("teacher_id", teacher.ID.String()))
	return s.session(teacher)
}

func (s *AuthService) SignIn(ctx context.Context, input *domain.SignInInput) (*domain.Session, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	teacher, err := s.teachers.GetTeacherByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, errdefs.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}
	if err := s.hasher.Compare(teacher.PasswordHash, input.Password); err != nil {
		if errors.Is(err, errdefs.ErrAuthentication) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	return s.session(teacher)
}

// SignOut revokes the token the current request was made with.
func (s *AuthService) SignOut(ctx context.Context) error {
	session, ok := ctxdata.GetSession(ctx)
	if !ok || session.TokenID == "" {
		return errdefs.ErrAuthentication
	}
	if err := s.revoker.Revoke(ctx, session.TokenID, session.ExpiresAt); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *AuthService) GetProfile(ctx context.Context) (*domain.Teacher, error) {
	teacherID, err := currentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	return s.teachers.GetTeacher(ctx, teacherID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, input *domain.UpdateProfileInput) (*domain.Teacher, error) {
	teacherID, err := currentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	if input.FirstName == nil && input.LastName == nil && input.School == nil {
		return nil, fmt.Errorf("nothing to update: %w", errdefs.ErrValidation)
	}
	trimPtr(input.FirstName)
	trimPtr(input.LastName)
	trimPtr(input.School)
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}
	return s.teachers.UpdateTeacher(ctx, teacherID, input)
}

func (s *AuthService) session(teacher *domain.Teacher) (*domain.Session, error) {
	token, err := s.tokens.Issue(teacher.ID, teacher.Email)
	if err != nil {
		return nil, err
	}
	return &domain.Session{
		AccessToken: token.Raw,
		TokenType:   "Bearer",
		ExpiresAt:   token.ExpiresAt,
		Teacher:     teacher,
	}, nil
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
