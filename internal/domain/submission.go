package domain

import (
	"time"

	"github.com/google/uuid"
)

// PDFPlaceholderText stands in for the body of uploaded PDFs; their text is
// not extracted.
const PDFPlaceholderText = "PDF content extraction is not available. Please review the original file."

const (
	MinGrade = 0
	MaxGrade = 100
)

type Submission struct {
	ID           uuid.UUID `db:"id" json:"id"`
	ExamID       uuid.UUID `db:"exam_id" json:"exam_id"`
	StudentID    uuid.UUID `db:"student_id" json:"student_id"`
	Text         string    `db:"submission_text" json:"submission_text"`
	Grade        *float64  `db:"grade" json:"grade"`
	SubmittedAt  time.Time `db:"submitted_at" json:"submitted_at"`
	Feedback     Feedback  `db:"-" json:"feedback"`
	FileKey      *string   `db:"file_key" json:"-"`
	OriginalName *string   `db:"original_filename" json:"original_filename,omitempty"`
}

// Status is completed once a grade is set, otherwise whatever the feedback
// progress says.
func (s *Submission) Status() ProgressStatus {
	if s.Grade != nil {
		return ProgressStatusCompleted
	}
	return s.Feedback.ProgressStatus()
}

// SubmissionDetail is a submission joined with the names shown next to it.
type SubmissionDetail struct {
	Submission
	StudentName  string    `db:"student_name" json:"student_name"`
	StudentEmail string    `db:"student_email" json:"student_email"`
	ExamTitle    string    `db:"exam_title" json:"exam_title"`
	ClassID      uuid.UUID `db:"class_id" json:"class_id"`
	ClassName    string    `db:"class_name" json:"class_name"`
}

type CreateSubmissionInput struct {
	ExamID    uuid.UUID
	StudentID uuid.UUID
	Filename  string
	Content   []byte
}

type CommentInput struct {
	Text        string   `json:"text" validate:"required,notblank,max=5000"`
	StartOffset int      `json:"startOffset" validate:"min=0"`
	EndOffset   int      `json:"endOffset" validate:"gtfield=StartOffset"`
	Category    *string  `json:"category" validate:"omitempty,max=100"`
	Score       *float64 `json:"score" validate:"omitempty,min=0,max=5"`
	Color       *string  `json:"color" validate:"omitempty,max=32"`
}

type UpdateCommentInput struct {
	Text        *string  `json:"text" validate:"omitempty,notblank,max=5000"`
	StartOffset *int     `json:"startOffset" validate:"omitempty,min=0"`
	EndOffset   *int     `json:"endOffset" validate:"omitempty,min=0"`
	Category    *string  `json:"category" validate:"omitempty,max=100"`
	Score       *float64 `json:"score" validate:"omitempty,min=0,max=5"`
	Color       *string  `json:"color" validate:"omitempty,max=32"`
}

type SetGradeInput struct {
	Grade *float64 `json:"grade" validate:"omitempty,min=0,max=100"`
}

// UngradedSubmission is what the reminder worker reports on.
type UngradedSubmission struct {
	ID          uuid.UUID `db:"id"`
	ExamID      uuid.UUID `db:"exam_id"`
	ClassID     uuid.UUID `db:"class_id"`
	TeacherID   uuid.UUID `db:"teacher_id"`
	SubmittedAt time.Time `db:"submitted_at"`
}
