package data

import (
	"context"
	"strings"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/errdefs"
)

const classColumns = `id, teacher_id, name, description, subject, grade_level, created_at`

type ClassRepository struct {
	db DB
}

func NewClassRepository(db DB) *ClassRepository {
	return &ClassRepository{db: db}
}

func (r *ClassRepository) CreateClass(ctx context.Context, c *domain.Class) (*domain.Class, error) {
	query := `
INSERT INTO classes (id, teacher_id, name, description, subject, grade_level)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + classColumns

	var out domain.Class
	err := pgxscan.Get(ctx, r.db, &out, query,
		c.ID,
		c.TeacherID,
		strings.TrimSpace(c.Name),
		c.Description,
		c.Subject,
		c.GradeLevel,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &out, nil
}

// GetClass only finds classes owned by teacherID.
func (r *ClassRepository) GetClass(ctx context.Context, teacherID, id uuid.UUID) (*domain.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE id = $1 AND teacher_id = $2`

	var out domain.Class
	if err := pgxscan.Get(ctx, r.db, &out, query, id, teacherID); err != nil {
		return nil, handleError(err)
	}
	return &out, nil
}

// ListClasses returns the teacher's classes, newest first.
func (r *ClassRepository) ListClasses(ctx context.Context, filter domain.ClassFilter) ([]domain.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE teacher_id = $1`
	args := []any{filter.TeacherID}

	if strings.TrimSpace(filter.Search) != "" {
		query += ` AND (name ILIKE $2 OR coalesce(description, '') ILIKE $2)`
		args = append(args, containsPattern(filter.Search))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	classes := make([]domain.Class, 0)
	if err := pgxscan.Select(ctx, r.db, &classes, query, args...); err != nil {
		return nil, handleError(err)
	}
	return classes, nil
}

func (r *ClassRepository) UpdateClass(ctx context.Context, teacherID, id uuid.UUID, input *domain.UpdateClassInput) (*domain.Class, error) {
	query, args, err := buildClassUpdateQuery(input)
	if err != nil {
		return nil, err
	}
	args = append(args, id, teacherID)

	var out domain.Class
	if err := pgxscan.Get(ctx, r.db, &out, query, args...); err != nil {
		return nil, handleError(err)
	}
	return &out, nil
}

// DeleteClass removes the class with its students, exams and submissions.
func (r *ClassRepository) DeleteClass(ctx context.Context, teacherID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM classes WHERE id = $1 AND teacher_id = $2`, id, teacherID)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}
