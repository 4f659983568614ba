package service

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/auth"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/events"
)

type TeacherRepository interface {
	CreateTeacher(ctx context.Context, t *domain.Teacher) (*domain.Teacher, error)
	GetTeacher(ctx context.Context, id uuid.UUID) (*domain.Teacher, error)
	GetTeacherByEmail(ctx context.Context, email string) (*domain.Teacher, error)
	UpdateTeacher(ctx context.Context, id uuid.UUID, input *domain.UpdateProfileInput) (*domain.Teacher, error)
}

type ClassRepository interface {
	CreateClass(ctx context.Context, c *domain.Class) (*domain.Class, error)
	GetClass(ctx context.Context, teacherID, id uuid.UUID) (*domain.Class, error)
	ListClasses(ctx context.Context, filter domain.ClassFilter) ([]domain.Class, error)
	UpdateClass(ctx context.Context, teacherID, id uuid.UUID, input *domain.UpdateClassInput) (*domain.Class, error)
	DeleteClass(ctx context.Context, teacherID, id uuid.UUID) error
}

type StudentRepository interface {
	CreateStudent(ctx context.Context, s *domain.Student) (*domain.Student, error)
	GetStudent(ctx context.Context, classID, id uuid.UUID) (*domain.Student, error)
	ListStudents(ctx context.Context, filter domain.StudentFilter) ([]domain.Student, error)
	DeleteStudent(ctx context.Context, classID, id uuid.UUID) error
	CountStudentsByClass(ctx context.Context, classID uuid.UUID) (int, error)
	CountStudentsByTeacher(ctx context.Context, teacherID uuid.UUID) (int, error)
}

type ExamRepository interface {
	CreateExam(ctx context.Context, e *domain.Exam) (*domain.Exam, error)
	GetExam(ctx context.Context, teacherID, id uuid.UUID) (*domain.Exam, error)
	ListExamsByClass(ctx context.Context, classID uuid.UUID) ([]domain.Exam, error)
	ListExamsByTeacher(ctx context.Context, teacherID uuid.UUID) ([]domain.Exam, error)
	DeleteExam(ctx context.Context, teacherID, id uuid.UUID) error
}

type SubmissionRepository interface {
	CreateSubmission(ctx context.Context, s *domain.Submission) (*domain.Submission, error)
	GetSubmission(ctx context.Context, teacherID, id uuid.UUID) (*domain.SubmissionDetail, error)
	ListSubmissionsByExam(ctx context.Context, examID uuid.UUID) ([]domain.SubmissionDetail, error)
	ListSubmissionsByClass(ctx context.Context, classID uuid.UUID) ([]domain.Submission, error)
	ListSubmissionsByTeacher(ctx context.Context, teacherID uuid.UUID) ([]domain.Submission, error)
	UpdateSubmissionFeedback(ctx context.Context, teacherID, id uuid.UUID, mutate func(*domain.SubmissionDetail) error) (*domain.SubmissionDetail, error)
	ListUngradedBefore(ctx context.Context, cutoff time.Time, limit int) ([]domain.UngradedSubmission, error)
	MarkReminded(ctx context.Context, id uuid.UUID, at time.Time) error
}

type FileStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
	Delete(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key, filename string) (string, time.Time, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, e events.Event) error
}

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
}

type TokenIssuer interface {
	Issue(teacherID uuid.UUID, email string) (*auth.Token, error)
}

type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type Validator interface {
	Struct(s any) error
}
