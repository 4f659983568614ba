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

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/errdefs"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/events"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/service"
)

func newSubmissionService(d *deps) *service.SubmissionService {
	return service.NewSubmissionService(d.submissions, d.exams, d.students, d.files, d.publisher, d.cache, 1024)
}

func TestUpload(t *testing.T) {
	teacherID := uuid.New()
	ctx := teacherCtx(teacherID)
	exam := &domain.Exam{ID: uuid.New(), ClassID: uuid.New()}
	studentID := uuid.New()

	input := func() *domain.CreateSubmissionInput {
		return &domain.CreateSubmissionInput{
			ExamID:    exam.ID,
			StudentID: studentID,
			Filename:  "essay.txt",
			Content:   []byte("Mitochondria are the powerhouse of the cell."),
		}
	}

	t.Run("Success", func(t *testing.T) {
		d := newDeps(t)
		d.ignoreInvalidation()
		svc := newSubmissionService(d)

		var storedKey string
		d.exams.EXPECT().GetExam(gomock.Any(), teacherID, exam.ID).Return(exam, nil)
		d.students.EXPECT().GetStudent(gomock.Any(), exam.ClassID, studentID).Return(&domain.Student{ID: studentID}, nil)
		d.files.EXPECT().Put(gomock.Any(), gomock.Any(), "text/plain; charset=utf-8", gomock.Any()).
			DoAndReturn(func(_ context.Context, key, _ string, _ []byte) error {
				storedKey = key
				return nil
			})
		d.submissions.EXPECT().CreateSubmission(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *domain.Submission) (*domain.Submission, error) {
				assert.Equal(t, "Mitochondria are the powerhouse of the cell.", s.Text)
				assert.Equal(t, domain.ProgressStatusInProgress, s.Feedback.ProgressStatus())
				assert.Empty(t, s.Feedback.Comments)
				require.NotNil(t, s.FileKey)
				assert.Equal(t, storedKey, *s.FileKey)
				assert.Equal(t, "essay.txt", *s.OriginalName)
				return s, nil
			})
		d.publisher.EXPECT().Publish(gomock.Any(), eventOfType(events.SubmissionUploaded)).Return(nil)

		sub, err := svc.Upload(ctx, input())
		require.NoError(t, err)
		assert.Equal(t, exam.ID, sub.ExamID)
		assert.Contains(t, storedKey, exam.ID.String())
		assert.Contains(t, storedKey, ".txt")
	})

	t.Run("StudentNotInClass", func(t *testing.T) {
		d := newDeps(t)
		svc := newSubmissionService(d)

		d.exams.EXPECT().GetExam(gomock.Any(), teacherID, exam.ID).Return(exam, nil)
		d.students.EXPECT().GetStudent(gomock.Any(), exam.ClassID, studentID).Return(nil, errdefs.ErrNotFound)

		_, err := svc.Upload(ctx, input())
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("ForeignExam", func(t *testing.T) {
		d := newDeps(t)
		svc := newSubmissionService(d)

		d.exams.EXPECT().GetExam(gomock.Any(), teacherID, exam.ID).Return(nil, errdefs.ErrNotFound)

		_, err := svc.Upload(ctx, input())
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})

	t.Run("UnsupportedFile", func(t *testing.T) {
		d := newDeps(t)
		svc := newSubmissionService(d)
		in := input()
		in.Filename = "essay.docx"

		d.exams.EXPECT().GetExam(gomock.Any(), teacherID, exam.ID).Return(exam, nil)
		d.students.EXPECT().GetStudent(gomock.Any(), exam.ClassID, studentID).Return(&domain.Student{}, nil)

		_, err := svc.Upload(ctx, in)
		assert.ErrorIs(t, err, errdefs.ErrUnsupportedFile)
	})

	t.Run("DuplicateRemovesStoredFile", func(t *testing.T) {
		d := newDeps(t)
		svc := newSubmissionService(d)

		d.exams.EXPECT().GetExam(gomock.Any(), teacherID, exam.ID).Return(exam, nil)
		d.students.EXPECT().GetStudent(gomock.Any(), exam.ClassID, studentID).Return(&domain.Student{}, nil)
		d.files.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		d.submissions.EXPECT().CreateSubmission(gomock.Any(), gomock.Any()).Return(nil, errdefs.ErrAlreadyExists)
		d.files.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.Upload(ctx, input())
		assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
	})

	t.Run("StorageFailure", func(t *testing.T) {
		d := newDeps(t)
		svc := newSubmissionService(d)
		boom := errors.New("s3 down")

		d.exams.EXPECT().GetExam(gomock.Any(), teacherID, exam.ID).Return(exam, nil)
		d.students.EXPECT().GetStudent(gomock.Any(), exam.ClassID, studentID).Return(&domain.Student{}, nil)
		d.files.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(boom)

		_, err := svc.Upload(ctx, input())
		assert.ErrorIs(t, err, boom)
	})

	t.Run("PublishFailureDoesNotFailUpload", func(t *testing.T) {
		d := newDeps(t)
		d.ignoreInvalidation()
		svc := newSubmissionService(d)

		d.exams.EXPECT().GetExam(gomock.Any(), teacherID, exam.ID).Return(exam, nil)
		d.students.EXPECT().GetStudent(gomock.Any(), exam.ClassID, studentID).Return(&domain.Student{}, nil)
		d.files.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		d.submissions.EXPECT().CreateSubmission(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *domain.Submission) (*domain.Submission, error) { return s, nil })
		d.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))

		_, err := svc.Upload(ctx, input())
		require.NoError(t, err)
	})
}

func TestViewSubmission(t *testing.T) {
	teacherID := uuid.New()
	ctx := teacherCtx(teacherID)
	subID := uuid.New()

	detail := &domain.SubmissionDetail{
		Submission: domain.Submission{
			ID:   subID,
			Text: "Hello world",
			Feedback: domain.NewProgressFeedback(domain.ProgressStatusInProgress).WithComments([]domain.Comment{
				{ID: "c1", Text: "greeting", StartOffset: 0, EndOffset: 5},
				{ID: "c2", Text: "runs past the end", StartOffset: 6, EndOffset: 40},
			}),
		},
	}

	t.Run("ClipsStoredRanges", func(t *testing.T) {
		d := newDeps(t)
		svc := newSubmissionService(d)

		d.submissions.EXPECT().GetSubmission(gomock.Any(), teacherID, subID).Return(detail, nil)

		view, err := svc.ViewSubmission(ctx, subID, "c1")
		require.NoError(t, err)
		require.Len(t, view.Segments, 3)
		assert.Equal(t, "Hello", view.Segments[0].Text)
		assert.True(t, view.Segments[0].Highlighted)
		assert.Equal(t, "world", view.Segments[2].Text)
		assert.Len(t, view.Adjustments, 1)
		require.NotNil(t, view.ActiveComment)
		assert.Equal(t, "greeting", view.ActiveComment.Text)
	})

	t.Run("UnknownActiveComment", func(t *testing.T) {
		d := newDeps(t)
		svc := newSubmissionService(d)

		d.submissions.EXPECT().GetSubmission(gomock.Any(), teacherID, subID).Return(detail, nil)

		view, err := svc.ViewSubmission(ctx, subID, "missing")
		require.NoError(t, err)
		assert.Nil(t, view.ActiveComment)
	})
}

func TestFileURL(t *testing.T) {
	teacherID := uuid.New()
	ctx := teacherCtx(teacherID)
	subID := uuid.New()

	t.Run("Presigns", func(t *testing.T) {
		d := newDeps(t)
		svc := newSubmissionService(d)
		expires := time.Now().Add(15 * time.Minute)

		d.submissions.EXPECT().GetSubmission(gomock.Any(), teacherID, subID).Return(&domain.SubmissionDetail{
			Submission: domain.Submission{ID: subID, FileKey: ptr("k.txt"), OriginalName: ptr("essay.txt")},
		}, nil)
		d.files.EXPECT().PresignGet(gomock.Any(), "k.txt", "essay.txt").Return("https://files/k.txt", expires, nil)

		url, exp, err := svc.FileURL(ctx, subID)
		require.NoError(t, err)
		assert.Equal(t, "https://files/k.txt", url)
		assert.Equal(t, expires, exp)
	})

	t.Run("NoStoredFile", func(t *testing.T) {
		d := newDeps(t)
		svc := newSubmissionService(d)

		d.submissions.EXPECT().GetSubmission(gomock.Any(), teacherID, subID).
			Return(&domain.SubmissionDetail{Submission: domain.Submission{ID: subID}}, nil)

		_, _, err := svc.FileURL(ctx, subID)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})
}
