package handler

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/service"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/stats"
)

type AuthService interface {
	SignUp(ctx context.Context, input *domain.SignUpInput) (*domain.Session, error)
	SignIn(ctx context.Context, input *domain.SignInInput) (*domain.Session, error)
	SignOut(ctx context.Context) error
	GetProfile(ctx context.Context) (*domain.Teacher, error)
	UpdateProfile(ctx context.Context, input *domain.UpdateProfileInput) (*domain.Teacher, error)
}

type ClassService interface {
	CreateClass(ctx context.Context, input *domain.CreateClassInput) (*domain.Class, error)
	GetClass(ctx context.Context, id uuid.UUID) (*domain.Class, error)
	ListClasses(ctx context.Context, search string) ([]domain.Class, error)
	UpdateClass(ctx context.Context, id uuid.UUID, input *domain.UpdateClassInput) (*domain.Class, error)
	DeleteClass(ctx context.Context, id uuid.UUID) error
}

type StudentService interface {
	AddStudent(ctx context.Context, classID uuid.UUID, input *domain.CreateStudentInput) (*domain.Student, error)
	ListStudents(ctx context.Context, classID uuid.UUID, search string) ([]domain.Student, error)
	RemoveStudent(ctx context.Context, classID, studentID uuid.UUID) error
	ListAvailableStudents(ctx context.Context, examID uuid.UUID, search string) ([]domain.Student, error)
}

type ExamService interface {
	CreateExam(ctx context.Context, classID uuid.UUID, input *domain.CreateExamInput) (*domain.Exam, error)
	GetExam(ctx context.Context, id uuid.UUID) (*domain.Exam, error)
	ListExams(ctx context.Context, classID uuid.UUID) ([]domain.Exam, error)
	DeleteExam(ctx context.Context, id uuid.UUID) error
}

type SubmissionService interface {
	Upload(ctx context.Context, input *domain.CreateSubmissionInput) (*domain.Submission, error)
	GetSubmission(ctx context.Context, id uuid.UUID) (*domain.SubmissionDetail, error)
	ListSubmissions(ctx context.Context, examID uuid.UUID) ([]domain.SubmissionDetail, error)
	ViewSubmission(ctx context.Context, id uuid.UUID, activeCommentID string) (*service.SubmissionView, error)
	FileURL(ctx context.Context, id uuid.UUID) (string, time.Time, error)
}

type GradingService interface {
	AddComment(ctx context.Context, submissionID uuid.UUID, input *domain.CommentInput) (*domain.Comment, error)
	UpdateComment(ctx context.Context, submissionID uuid.UUID, commentID string, input *domain.UpdateCommentInput) (*domain.Comment, error)
	DeleteComment(ctx context.Context, submissionID uuid.UUID, commentID string) error
	SetGrade(ctx context.Context, submissionID uuid.UUID, input *domain.SetGradeInput) (*domain.SubmissionDetail, error)
}

type StatsService interface {
	Dashboard(ctx context.Context) (*stats.Dashboard, error)
	ClassSummary(ctx context.Context, classID uuid.UUID) (*stats.ClassSummary, error)
	ExamSummary(ctx context.Context, examID uuid.UUID) (*stats.ExamSummary, error)
}
