package data

import (
	"context"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/errdefs"
)

const studentColumns = `s.id, s.class_id, s.name, s.email, s.created_at`

type StudentRepository struct {
	db DB
}

func NewStudentRepository(db DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) CreateStudent(ctx context.Context, s *domain.Student) (*domain.Student, error) {
	query := `
INSERT INTO students AS s (id, class_id, name, email)
VALUES ($1, $2, $3, $4)
RETURNING ` + studentColumns

	var out domain.Student
	err := pgxscan.Get(ctx, r.db, &out, query,
		s.ID,
		s.ClassID,
		strings.TrimSpace(s.Name),
		strings.TrimSpace(s.Email),
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &out, nil
}

func (r *StudentRepository) GetStudent(ctx context.Context, classID, id uuid.UUID) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students s WHERE s.id = $1 AND s.class_id = $2`

	var out domain.Student
	if err := pgxscan.Get(ctx, r.db, &out, query, id, classID); err != nil {
		return nil, handleError(err)
	}
	return &out, nil
}

// ListStudents returns class students ordered by name. With
// ExcludeSubmittedFor set, students who already submitted for that exam are
// left out.
func (r *StudentRepository) ListStudents(ctx context.Context, filter domain.StudentFilter) ([]domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students s WHERE s.class_id = $1`
	args := []any{filter.ClassID}

	if filter.ExcludeSubmittedFor != uuid.Nil {
		args = append(args, filter.ExcludeSubmittedFor)
		query += ` AND NOT EXISTS (SELECT 1 FROM submissions sub WHERE sub.student_id = s.id AND sub.exam_id = $2)`
	}
	if strings.TrimSpace(filter.Search) != "" {
		args = append(args, containsPattern(filter.Search))
		query += fmt.Sprintf(` AND (s.name ILIKE $%d OR s.email ILIKE $%d)`, len(args), len(args))
	}
	query += ` ORDER BY s.name ASC, s.id ASC`

	students := make([]domain.Student, 0)
	if err := pgxscan.Select(ctx, r.db, &students, query, args...); err != nil {
		return nil, handleError(err)
	}
	return students, nil
}

func (r *StudentRepository) DeleteStudent(ctx context.Context, classID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1 AND class_id = $2`, id, classID)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

func (r *StudentRepository) CountStudentsByClass(ctx context.Context, classID uuid.UUID) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM students WHERE class_id = $1`, classID).Scan(&n); err != nil {
		return 0, handleError(err)
	}
	return n, nil
}

func (r *StudentRepository) CountStudentsByTeacher(ctx context.Context, teacherID uuid.UUID) (int, error) {
	query := `
SELECT count(*)
FROM students s
JOIN classes c ON c.id = s.class_id
WHERE c.teacher_id = $1
`
	var n int
	if err := r.db.QueryRow(ctx, query, teacherID).Scan(&n); err != nil {
		return 0, handleError(err)
	}
	return n, nil
}
