package events

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	SubmissionUploaded Type = "submission.uploaded"
	SubmissionGraded   Type = "submission.graded"
	CommentsChanged    Type = "submission.comments_changed"
	GradingReminder    Type = "grading.reminder"
)

type Event struct {
	ID           uuid.UUID `json:"id"`
	Type         Type      `json:"type"`
	SubmissionID uuid.UUID `json:"submission_id"`
	ExamID       uuid.UUID `json:"exam_id"`
	ClassID      uuid.UUID `json:"class_id"`
	TeacherID    uuid.UUID `json:"teacher_id"`
	Grade        *float64  `json:"grade,omitempty"`
	CommentCount int       `json:"comment_count,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// New stamps an event with a fresh id and the current time.
func New(t Type, submissionID, examID, classID, teacherID uuid.UUID) Event {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return Event{
		ID:           id,
		Type:         t,
		SubmissionID: submissionID,
		ExamID:       examID,
		ClassID:      classID,
		TeacherID:    teacherID,
		OccurredAt:   time.Now().UTC(),
	}
}
