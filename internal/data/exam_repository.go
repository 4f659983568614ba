package data

import (
	"context"
	"strings"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/errdefs"
)

const examColumns = `e.id, e.class_id, e.title, e.instructions, e.created_at`

type ExamRepository struct {
	db DB
}

func NewExamRepository(db DB) *ExamRepository {
	return &ExamRepository{db: db}
}

func (r *ExamRepository) CreateExam(ctx context.Context, e *domain.Exam) (*domain.Exam, error) {
	query := `
INSERT INTO exams AS e (id, class_id, title, instructions)
VALUES ($1, $2, $3, $4)
RETURNING ` + examColumns

	var out domain.Exam
	err := pgxscan.Get(ctx, r.db, &out, query,
		e.ID,
		e.ClassID,
		strings.TrimSpace(e.Title),
		e.Instructions,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &out, nil
}

// GetExam only finds exams in classes owned by teacherID.
func (r *ExamRepository) GetExam(ctx context.Context, teacherID, id uuid.UUID) (*domain.Exam, error) {
	query := `
SELECT ` + examColumns + `
FROM exams e
JOIN classes c ON c.id = e.class_id
WHERE e.id = $1 AND c.teacher_id = $2
`
	var out domain.Exam
	if err := pgxscan.Get(ctx, r.db, &out, query, id, teacherID); err != nil {
		return nil, handleError(err)
	}
	return &out, nil
}

func (r *ExamRepository) ListExamsByClass(ctx context.Context, classID uuid.UUID) ([]domain.Exam, error) {
	query := `SELECT ` + examColumns + ` FROM exams e WHERE e.class_id = $1 ORDER BY e.created_at DESC, e.id DESC`

	exams := make([]domain.Exam, 0)
	if err := pgxscan.Select(ctx, r.db, &exams, query, classID); err != nil {
		return nil, handleError(err)
	}
	return exams, nil
}

func (r *ExamRepository) ListExamsByTeacher(ctx context.Context, teacherID uuid.UUID) ([]domain.Exam, error) {
	query := `
SELECT ` + examColumns + `
FROM exams e
JOIN classes c ON c.id = e.class_id
WHERE c.teacher_id = $1
ORDER BY e.created_at DESC, e.id DESC
`
	exams := make([]domain.Exam, 0)
	if err := pgxscan.Select(ctx, r.db, &exams, query, teacherID); err != nil {
		return nil, handleError(err)
	}
	return exams, nil
}

func (r *ExamRepository) DeleteExam(ctx context.Context, teacherID, id uuid.UUID) error {
	query := `
DELETE FROM exams e
USING classes c
WHERE e.id = $1 AND c.id = e.class_id AND c.teacher_id = $2
`
	tag, err := r.db.Exec(ctx, query, id, teacherID)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}
