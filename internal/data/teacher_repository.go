package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
)

const teacherColumns = `id, email, password_hash, first_name, last_name, school, created_at, updated_at`

type TeacherRepository struct {
	db DB
}

func NewTeacherRepository(db DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

func (r *TeacherRepository) CreateTeacher(ctx context.Context, t *domain.Teacher) (*domain.Teacher, error) {
	query := `
INSERT INTO teachers (id, email, password_hash, first_name, last_name, school)
VALUES ($1, lower($2), $3, $4, $5, $6)
RETURNING ` + teacherColumns

	var out domain.Teacher
	err := pgxscan.Get(ctx, r.db, &out, query,
		t.ID,
		t.Email,
		t.PasswordHash,
		t.FirstName,
		t.LastName,
		t.School,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &out, nil
}

func (r *TeacherRepository) GetTeacher(ctx context.Context, id uuid.UUID) (*domain.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE id = $1`

	var out domain.Teacher
	if err := pgxscan.Get(ctx, r.db, &out, query, id); err != nil {
		return nil, handleError(err)
	}
	return &out, nil
}

func (r *TeacherRepository) GetTeacherByEmail(ctx context.Context, email string) (*domain.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE lower(email) = lower($1)`

	var out domain.Teacher
	if err := pgxscan.Get(ctx, r.db, &out, query, email); err != nil {
		return nil, handleError(err)
	}
	return &out, nil
}

func (r *TeacherRepository) UpdateTeacher(ctx context.Context, id uuid.UUID, input *domain.UpdateProfileInput) (*domain.Teacher, error) {
	query, args, err := buildTeacherUpdateQuery(input)
	if err != nil {
		return nil, err
	}
	args = append(args, id)

	var out domain.Teacher
	if err := pgxscan.Get(ctx, r.db, &out, query, args...); err != nil {
		return nil, handleError(err)
	}
	return &out, nil
}
