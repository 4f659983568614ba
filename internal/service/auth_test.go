package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/auth"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/errdefs"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/service"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/validation"
)

func newAuthService(d *deps) *service.AuthService {
	return service.NewAuthService(d.teachers, d.hasher, d.tokens, d.revoker, validation.New())
}

func TestSignUp(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		d := newDeps(t)
		svc := newAuthService(d)
		expires := time.Now().Add(24 * time.Hour)

		d.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
		d.teachers.EXPECT().CreateTeacher(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tch *domain.Teacher) (*domain.Teacher, error) {
				assert.Equal(t, "ada@school.org", tch.Email)
				assert.Equal(t, "hashed", tch.PasswordHash)
				assert.NotEqual(t, uuid.Nil, tch.ID)
				return tch, nil
			})
		d.tokens.EXPECT().Issue(gomock.Any(), "ada@school.org").
			Return(&auth.Token{Raw: "jwt", ExpiresAt: expires}, nil)

		session, err := svc.SignUp(context.Background(), &domain.SignUpInput{
			Email:     "  Ada@School.org ",
			Password:  "secret123",
			FirstName: "Ada",
			LastName:  "Lovelace",
		})
		require.NoError(t, err)
		assert.Equal(t, "jwt", session.AccessToken)
		assert.Equal(t, "Bearer", session.TokenType)
		assert.Equal(t, "Ada", session.Teacher.FirstName)
	})

	t.Run("InvalidInput", func(t *testing.T) {
		d := newDeps(t)
		svc := newAuthService(d)

		_, err := svc.SignUp(context.Background(), &domain.SignUpInput{Email: "not-an-email", Password: "x"})
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("EmailTaken", func(t *testing.T) {
		d := newDeps(t)
		svc := newAuthService(d)

		d.hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
		d.teachers.EXPECT().CreateTeacher(gomock.Any(), gomock.Any()).Return(nil, errdefs.ErrAlreadyExists)

		_, err := svc.SignUp(context.Background(), &domain.SignUpInput{
			Email: "ada@school.org", Password: "secret123", FirstName: "Ada", LastName: "Lovelace",
		})
		assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
	})
}

func TestSignIn(t *testing.T) {
	teacher := &domain.Teacher{ID: uuid.New(), Email: "ada@school.org", PasswordHash: "hashed"}

	t.Run("Success", func(t *testing.T) {
		d := newDeps(t)
		svc := newAuthService(d)

		d.teachers.EXPECT().GetTeacherByEmail(gomock.Any(), "ada@school.org").Return(teacher, nil)
		d.hasher.EXPECT().Compare("hashed", "secret123").Return(nil)
		d.tokens.EXPECT().Issue(teacher.ID, teacher.Email).Return(&auth.Token{Raw: "jwt"}, nil)

		session, err := svc.SignIn(context.Background(), &domain.SignInInput{Email: "ada@school.org", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, "jwt", session.AccessToken)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		d := newDeps(t)
		svc := newAuthService(d)

		d.teachers.EXPECT().GetTeacherByEmail(gomock.Any(), gomock.Any()).Return(nil, errdefs.ErrNotFound)

		_, err := svc.SignIn(context.Background(), &domain.SignInInput{Email: "nobody@school.org", Password: "x"})
		assert.ErrorIs(t, err, errdefs.ErrAuthentication)
		assert.NotErrorIs(t, err, errdefs.ErrNotFound)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		d := newDeps(t)
		svc := newAuthService(d)

		d.teachers.EXPECT().GetTeacherByEmail(gomock.Any(), gomock.Any()).Return(teacher, nil)
		d.hasher.EXPECT().Compare(gomock.Any(), gomock.Any()).Return(errdefs.ErrAuthentication)

		_, err := svc.SignIn(context.Background(), &domain.SignInInput{Email: "ada@school.org", Password: "wrong"})
		assert.ErrorIs(t, err, errdefs.ErrAuthentication)
	})

	t.Run("RepositoryFailure", func(t *testing.T) {
		d := newDeps(t)
		svc := newAuthService(d)
		boom := errors.New("db down")

		d.teachers.EXPECT().GetTeacherByEmail(gomock.Any(), gomock.Any()).Return(nil, boom)

		_, err := svc.SignIn(context.Background(), &domain.SignInInput{Email: "ada@school.org", Password: "x"})
		assert.ErrorIs(t, err, boom)
	})
}

func TestSignOut(t *testing.T) {
	t.Run("RevokesCurrentToken", func(t *testing.T) {
		d := newDeps(t)
		svc := newAuthService(d)

		d.revoker.EXPECT().Revoke(gomock.Any(), "token-id", gomock.Any()).Return(nil)

		require.NoError(t, svc.SignOut(teacherCtx(uuid.New())))
	})

	t.Run("NoSession", func(t *testing.T) {
		d := newDeps(t)
		svc := newAuthService(d)

		assert.ErrorIs(t, svc.SignOut(context.Background()), errdefs.ErrAuthentication)
	})
}

func TestProfile(t *testing.T) {
	teacherID := uuid.New()

	t.Run("Get", func(t *testing.T) {
		d := newDeps(t)
		svc := newAuthService(d)

		d.teachers.EXPECT().GetTeacher(gomock.Any(), teacherID).Return(&domain.Teacher{ID: teacherID}, nil)

		tch, err := svc.GetProfile(teacherCtx(teacherID))
		require.NoError(t, err)
		assert.Equal(t, teacherID, tch.ID)
	})

	t.Run("GetWithoutSession", func(t *testing.T) {
		d := newDeps(t)
		svc := newAuthService(d)

		_, err := svc.GetProfile(context.Background())
		assert.ErrorIs(t, err, errdefs.ErrAuthentication)
	})

	t.Run("UpdateTrimsFields", func(t *testing.T) {
		d := newDeps(t)
		svc := newAuthService(d)

		d.teachers.EXPECT().UpdateTeacher(gomock.Any(), teacherID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in *domain.UpdateProfileInput) (*domain.Teacher, error) {
				assert.Equal(t, "Grace", *in.FirstName)
				return &domain.Teacher{ID: teacherID, FirstName: *in.FirstName}, nil
			})

		tch, err := svc.UpdateProfile(teacherCtx(teacherID), &domain.UpdateProfileInput{FirstName: ptr("  Grace ")})
		require.NoError(t, err)
		assert.Equal(t, "Grace", tch.FirstName)
	})

	t.Run("UpdateNothing", func(t *testing.T) {
		d := newDeps(t)
		svc := newAuthService(d)

		_, err := svc.UpdateProfile(teacherCtx(teacherID), &domain.UpdateProfileInput{})
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})
}
