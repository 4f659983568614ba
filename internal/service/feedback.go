package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/errdefs"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/events"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/highlight"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/logging"
)

var errCommentNotFound = fmt.Errorf("comment not found: %w", errdefs.ErrNotFound)

// GradingService edits the comments and grade of a submission. Every edit
// runs as a read-modify-write under a row lock.
type GradingService struct {
	submissions SubmissionRepository
	validator   Validator
	now         func() time.Time
	notifier
}

func NewGradingService(
	submissions SubmissionRepository,
	validator Validator,
	publisher EventPublisher,
	cache Cache,
) *GradingService {
	return &GradingService{
		submissions: submissions,
		validator:   validator,
		now:         time.Now,
		notifier:    notifier{publisher: publisher, cache: cache},
	}
}

func (s *GradingService) AddComment(ctx context.Context, submissionID uuid.UUID, input *domain.CommentInput) (*domain.Comment, error) {
	teacherID, err := currentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	input.Text = strings.TrimSpace(input.Text)
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	comment := domain.Comment{
		ID:          id.String(),
		Text:        input.Text,
		StartOffset: input.StartOffset,
		EndOffset:   input.EndOffset,
		Category:    input.Category,
		Score:       input.Score,
		Color:       input.Color,
	}

	sub, err := s.submissions.UpdateSubmissionFeedback(ctx, teacherID, submissionID, func(d *domain.SubmissionDetail) error {
		comments := append(withIDs(d.Feedback.Comments), comment)
		return s.applyComments(d, comments)
	})
	if err != nil {
		return nil, err
	}

	s.commentsChanged(ctx, teacherID, sub)
	return &comment, nil
}

func (s *GradingService) UpdateComment(
	ctx context.Context,
	submissionID uuid.UUID,
	commentID string,
	input *domain.UpdateCommentInput,
) (*domain.Comment, error) {
	teacherID, err := currentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	trimPtr(input.Text)
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	var updated domain.Comment
	sub, err := s.submissions.UpdateSubmissionFeedback(ctx, teacherID, submissionID, func(d *domain.SubmissionDetail) error {
		comments := withIDs(d.Feedback.Comments)
		idx := indexOf(comments, commentID)
		if idx < 0 {
			return errCommentNotFound
		}
		c := &comments[idx]
		if input.Text != nil {
			c.Text = *input.Text
		}
		if input.StartOffset != nil {
			c.StartOffset = *input.StartOffset
		}
		if input.EndOffset != nil {
			c.EndOffset = *input.EndOffset
		}
		if input.Category != nil {
			c.Category = input.Category
		}
		if input.Score != nil {
			c.Score = input.Score
		}
		if input.Color != nil {
			c.Color = input.Color
		}
		updated = *c
		return s.applyComments(d, comments)
	})
	if err != nil {
		return nil, err
	}

	s.commentsChanged(ctx, teacherID, sub)
	return &updated, nil
}

func (s *GradingService) DeleteComment(ctx context.Context, submissionID uuid.UUID, commentID string) error {
	teacherID, err := currentTeacher(ctx)
	if err != nil {
		return err
	}

	sub, err := s.submissions.UpdateSubmissionFeedback(ctx, teacherID, submissionID, func(d *domain.SubmissionDetail) error {
		comments := withIDs(d.Feedback.Comments)
		idx := indexOf(comments, commentID)
		if idx < 0 {
			return errCommentNotFound
		}
		comments = append(comments[:idx], comments[idx+1:]...)
		d.Feedback = d.Feedback.Promote().WithComments(comments)
		return nil
	})
	if err != nil {
		return err
	}

	s.commentsChanged(ctx, teacherID, sub)
	return nil
}

// SetGrade stores the grade and moves the submission to completed. A nil
// grade clears it and puts the submission back in progress.
func (s *GradingService) SetGrade(ctx context.Context, submissionID uuid.UUID, input *domain.SetGradeInput) (*domain.SubmissionDetail, error) {
	teacherID, err := currentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	sub, err := s.submissions.UpdateSubmissionFeedback(ctx, teacherID, submissionID, func(d *domain.SubmissionDetail) error {
		fb := d.Feedback.Promote()
		if input.Grade != nil {
			gradedAt := s.now().UTC()
			fb.Status = domain.ProgressStatusCompleted
			fb.GradedAt = &gradedAt
		} else {
			fb.Status = domain.ProgressStatusInProgress
			fb.GradedAt = nil
		}
		d.Feedback = fb
		d.Grade = input.Grade
		return nil
	})
	if err != nil {
		return nil, err
	}

	e := events.New(events.SubmissionGraded, sub.ID, sub.ExamID, sub.ClassID, teacherID)
	e.Grade = sub.Grade
	s.publish(ctx, e)
	s.invalidate(ctx, teacherID, sub.ClassID, sub.ExamID)
	logging.FromContext(ctx).Info(ctx, "submission grade set",
		zap.String("submission_id", sub.ID.String()),
		zap.Bool("graded", sub.Grade != nil),
	)
	return sub, nil
}

// applyComments checks the full comment set against the text and stores it.
func (s *GradingService) applyComments(d *domain.SubmissionDetail, comments []domain.Comment) error {
	if err := highlight.Validate(d.Text, comments); err != nil {
		return err
	}
	d.Feedback = d.Feedback.Promote().WithComments(comments)
	return nil
}

func (s *GradingService) commentsChanged(ctx context.Context, teacherID uuid.UUID, sub *domain.SubmissionDetail) {
	e := events.New(events.CommentsChanged, sub.ID, sub.ExamID, sub.ClassID, teacherID)
	e.CommentCount = len(sub.Feedback.Comments)
	s.publish(ctx, e)
	s.invalidate(ctx, teacherID, sub.ClassID, sub.ExamID)
}

// withIDs copies comments, giving an id to legacy comments stored without one.
func withIDs(comments []domain.Comment) []domain.Comment {
	out := make([]domain.Comment, len(comments))
	copy(out, comments)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = uuid.NewString()
		}
	}
	return out
}

func indexOf(comments []domain.Comment, id string) int {
	for i := range comments {
		if comments[i].ID == id {
			return i
		}
	}
	return -1
}
