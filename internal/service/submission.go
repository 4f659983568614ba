package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/errdefs"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/events"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/highlight"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/storage"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/logging"
)

type SubmissionService struct {
	submissions    SubmissionRepository
	exams          ExamRepository
	students       StudentRepository
	files          FileStore
	maxUploadBytes int64
	notifier
}

func NewSubmissionService(
	submissions SubmissionRepository,
	exams ExamRepository,
	students StudentRepository,
	files FileStore,
	publisher EventPublisher,
	cache Cache,
	maxUploadBytes int64,
) *SubmissionService {
	return &SubmissionService{
		submissions:    submissions,
		exams:          exams,
		students:       students,
		files:          files,
		maxUploadBytes: maxUploadBytes,
		notifier:       notifier{publisher: publisher, cache: cache},
	}
}

// SubmissionView is a submission with its text split into highlighted and
// plain segments.
type SubmissionView struct {
	Submission    *domain.SubmissionDetail `json:"submission"`
	Segments      []highlight.Segment      `json:"segments"`
	Adjustments   []highlight.Adjustment   `json:"adjustments,omitempty"`
	ActiveComment *domain.Comment          `json:"active_comment,omitempty"`
}

func (s *SubmissionService) Upload(ctx context.Context, input *domain.CreateSubmissionInput) (*domain.Submission, error) {
	teacherID, err := currentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	logger := logging.FromContext(ctx)

	exam, err := s.exams.GetExam(ctx, teacherID, input.ExamID)
	if err != nil {
		return nil, err
	}
	if _, err := s.students.GetStudent(ctx, exam.ClassID, input.StudentID); err != nil {
		if errors.Is(err, errdefs.ErrNotFound) {
			return nil, fmt.Errorf("student is not enrolled in the exam's class: %w", errdefs.ErrValidation)
		}
		return nil, err
	}
	file, err := extractText(input.Filename, input.Content, s.maxUploadBytes)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	key := storage.SubmissionKey(exam.ID, id, file.Ext)
	if err := s.files.Put(ctx, key, file.ContentType, input.Content); err != nil {
		logger.Error(ctx, "failed to store submission file", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	sub, err := s.submissions.CreateSubmission(ctx, &domain.Submission{
		ID:           id,
		ExamID:       exam.ID,
		StudentID:    input.StudentID,
		Text:         file.Text,
		Feedback:     domain.NewProgressFeedback(domain.ProgressStatusInProgress),
		FileKey:      &key,
		OriginalName: &file.Name,
	})
	if err != nil {
		if delErr := s.files.Delete(ctx, key); delErr != nil {
			logger.Warn(ctx, "failed to remove orphaned file", zap.String("key", key), zap.Error(delErr))
		}
		if errors.Is(err, errdefs.ErrAlreadyExists) {
			return nil, fmt.Errorf("student already has a submission for this exam: %w", errdefs.ErrAlreadyExists)
		}
		return nil, err
	}

	s.publish(ctx, events.New(events.SubmissionUploaded, sub.ID, exam.ID, exam.ClassID, teacherID))
	s.invalidate(ctx, teacherID, exam.ClassID, exam.ID)
	logger.Info(ctx, "submission uploaded",
		zap.String("submission_id", sub.ID.String()),
		zap.String("exam_id", exam.ID.String()),
		zap.Int("bytes", len(input.Content)),
	)
	return sub, nil
}

func (s *SubmissionService) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.SubmissionDetail, error) {
	teacherID, err := currentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	return s.submissions.GetSubmission(ctx, teacherID, id)
}

func (s *SubmissionService) ListSubmissions(ctx context.Context, examID uuid.UUID) ([]domain.SubmissionDetail, error) {
	teacherID, err := currentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.exams.GetExam(ctx, teacherID, examID); err != nil {
		return nil, err
	}
	return s.submissions.ListSubmissionsByExam(ctx, examID)
}

// ViewSubmission renders the submission for display. Stored ranges that no
// longer fit the text are clipped rather than rejected.
func (s *SubmissionService) ViewSubmission(ctx context.Context, id uuid.UUID, activeCommentID string) (*SubmissionView, error) {
	sub, err := s.GetSubmission(ctx, id)
	if err != nil {
		return nil, err
	}

	res, err := highlight.Split(sub.Text, sub.Feedback.Comments, highlight.Clip)
	if err != nil {
		return nil, err
	}
	if len(res.Adjustments) > 0 {
		logging.FromContext(ctx).Warn(ctx, "stored comment ranges adjusted for display",
			zap.String("submission_id", sub.ID.String()),
			zap.Int("adjustments", len(res.Adjustments)),
		)
	}

	view := &SubmissionView{
		Submission:  sub,
		Segments:    res.Segments,
		Adjustments: res.Adjustments,
	}
	if activeCommentID != "" {
		if c, ok := sub.Feedback.FindComment(activeCommentID); ok {
			view.ActiveComment = &c
		}
	}
	return view, nil
}

// FileURL returns a short-lived download link for the original upload.
func (s *SubmissionService) FileURL(ctx context.Context, id uuid.UUID) (string, time.Time, error) {
	sub, err := s.GetSubmission(ctx, id)
	if err != nil {
		return "", time.Time{}, err
	}
	if sub.FileKey == nil || *sub.FileKey == "" {
		return "", time.Time{}, fmt.Errorf("submission has no stored file: %w", errdefs.ErrNotFound)
	}
	name := ""
	if sub.OriginalName != nil {
		name = *sub.OriginalName
	}
	return s.files.PresignGet(ctx, *sub.FileKey, name)
}
