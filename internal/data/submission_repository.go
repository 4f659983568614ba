package data

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/errdefs"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/logging"
)

const submissionColumns = `sub.id, sub.exam_id, sub.student_id, sub.submission_text, sub.grade,
	sub.submitted_at, sub.feedback, sub.file_key, sub.original_filename`

const submissionDetailQuery = `
SELECT ` + submissionColumns + `,
	st.name AS student_name, st.email AS student_email,
	e.title AS exam_title, c.id AS class_id, c.name AS class_name
FROM submissions sub
JOIN students st ON st.id = sub.student_id
JOIN exams e ON e.id = sub.exam_id
JOIN classes c ON c.id = e.class_id
`

type submissionRow struct {
	domain.Submission
	RawFeedback []byte `db:"feedback"`
}

type submissionDetailRow struct {
	domain.SubmissionDetail
	RawFeedback []byte `db:"feedback"`
}

// decodeStoredFeedback never fails: unreadable payloads are logged and
// treated as having no comments.
func decodeStoredFeedback(ctx context.Context, id uuid.UUID, raw []byte) domain.Feedback {
	fb, err := domain.DecodeFeedback(raw)
	if err != nil {
		logging.FromContext(ctx).Error(ctx, "malformed stored feedback",
			zap.String("submission_id", id.String()),
			zap.Error(err),
		)
		return domain.EmptyFeedback()
	}
	return fb
}

func (r *submissionRow) toDomain(ctx context.Context) domain.Submission {
	s := r.Submission
	s.Feedback = decodeStoredFeedback(ctx, s.ID, r.RawFeedback)
	return s
}

func (r *submissionDetailRow) toDomain(ctx context.Context) *domain.SubmissionDetail {
	d := r.SubmissionDetail
	d.Feedback = decodeStoredFeedback(ctx, d.ID, r.RawFeedback)
	return &d
}

type SubmissionRepository struct {
	db DB
}

func NewSubmissionRepository(db DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) CreateSubmission(ctx context.Context, s *domain.Submission) (*domain.Submission, error) {
	raw, err := json.Marshal(s.Feedback)
	if err != nil {
		return nil, fmt.Errorf("failed to encode feedback: %w", err)
	}

	query := `
INSERT INTO submissions AS sub (id, exam_id, student_id, submission_text, feedback, file_key, original_filename)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + submissionColumns

	var row submissionRow
	err = pgxscan.Get(ctx, r.db, &row, query,
		s.ID,
		s.ExamID,
		s.StudentID,
		s.Text,
		raw,
		s.FileKey,
		s.OriginalName,
	)
	if err != nil {
		return nil, handleError(err)
	}
	out := row.toDomain(ctx)
	return &out, nil
}

// GetSubmission only finds submissions under classes owned by teacherID.
func (r *SubmissionRepository) GetSubmission(ctx context.Context, teacherID, id uuid.UUID) (*domain.SubmissionDetail, error) {
	query := submissionDetailQuery + `WHERE sub.id = $1 AND c.teacher_id = $2`

	var row submissionDetailRow
	if err := pgxscan.Get(ctx, r.db, &row, query, id, teacherID); err != nil {
		return nil, handleError(err)
	}
	return row.toDomain(ctx), nil
}

func (r *SubmissionRepository) ListSubmissionsByExam(ctx context.Context, examID uuid.UUID) ([]domain.SubmissionDetail, error) {
	query := submissionDetailQuery + `WHERE sub.exam_id = $1 ORDER BY st.name ASC, sub.id ASC`

	var rows []submissionDetailRow
	if err := pgxscan.Select(ctx, r.db, &rows, query, examID); err != nil {
		return nil, handleError(err)
	}
	out := make([]domain.SubmissionDetail, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].toDomain(ctx))
	}
	return out, nil
}

func (r *SubmissionRepository) ListSubmissionsByClass(ctx context.Context, classID uuid.UUID) ([]domain.Submission, error) {
	query := `
SELECT ` + submissionColumns + `
FROM submissions sub
JOIN exams e ON e.id = sub.exam_id
WHERE e.class_id = $1
`
	return r.selectSubmissions(ctx, query, classID)
}

func (r *SubmissionRepository) ListSubmissionsByTeacher(ctx context.Context, teacherID uuid.UUID) ([]domain.Submission, error) {
	query := `
SELECT ` + submissionColumns + `
FROM submissions sub
JOIN exams e ON e.id = sub.exam_id
JOIN classes c ON c.id = e.class_id
WHERE c.teacher_id = $1
`
	return r.selectSubmissions(ctx, query, teacherID)
}

func (r *SubmissionRepository) selectSubmissions(ctx context.Context, query string, args ...any) ([]domain.Submission, error) {
	var rows []submissionRow
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, handleError(err)
	}
	out := make([]domain.Submission, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain(ctx))
	}
	return out, nil
}

// UpdateSubmissionFeedback locks the submission row, lets mutate change its
// feedback and grade, and writes both back in the same transaction.
func (r *SubmissionRepository) UpdateSubmissionFeedback(
	ctx context.Context,
	teacherID, id uuid.UUID,
	mutate func(*domain.SubmissionDetail) error,
) (*domain.SubmissionDetail, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, handleError(err)
	}

	var row submissionDetailRow
	query := submissionDetailQuery + `WHERE sub.id = $1 AND c.teacher_id = $2 FOR UPDATE OF sub`
	if err := pgxscan.Get(ctx, tx, &row, query, id, teacherID); err != nil {
		_ = tx.Rollback(ctx)
		return nil, handleError(err)
	}

	detail := row.toDomain(ctx)
	if err := mutate(detail); err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}

	raw, err := json.Marshal(detail.Feedback)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, fmt.Errorf("failed to encode feedback: %w", err)
	}

	if _, err := tx.Exec(ctx, `UPDATE submissions SET feedback = $1, grade = $2 WHERE id = $3`, raw, detail.Grade, id); err != nil {
		_ = tx.Rollback(ctx)
		return nil, handleError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, handleError(err)
	}
	return detail, nil
}

// ListUngradedBefore returns ungraded submissions older than cutoff that
// have not been reminded about since cutoff, oldest first.
func (r *SubmissionRepository) ListUngradedBefore(ctx context.Context, cutoff time.Time, limit int) ([]domain.UngradedSubmission, error) {
	query := `
SELECT sub.id, sub.exam_id, e.class_id, c.teacher_id, sub.submitted_at
FROM submissions sub
JOIN exams e ON e.id = sub.exam_id
JOIN classes c ON c.id = e.class_id
WHERE sub.grade IS NULL AND sub.submitted_at < $1
  AND (sub.reminded_at IS NULL OR sub.reminded_at < $1)
ORDER BY sub.submitted_at ASC, sub.id ASC
LIMIT $2
`
	out := make([]domain.UngradedSubmission, 0)
	if err := pgxscan.Select(ctx, r.db, &out, query, cutoff, limit); err != nil {
		return nil, handleError(err)
	}
	return out, nil
}

// MarkReminded records when a reminder for the submission went out.
func (r *SubmissionRepository) MarkReminded(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE submissions SET reminded_at = $1 WHERE id = $2`, at, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}
