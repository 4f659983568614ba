package domain

import (
	"time"

	"github.com/google/uuid"
)

type Class struct {
	ID          uuid.UUID `db:"id" json:"id"`
	TeacherID   uuid.UUID `db:"teacher_id" json:"teacher_id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	Subject     *string   `db:"subject" json:"subject,omitempty"`
	GradeLevel  *string   `db:"grade_level" json:"grade_level,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type ClassFilter struct {
	TeacherID uuid.UUID
	Search    string
}

type CreateClassInput struct {
	Name        string  `json:"name" validate:"required,notblank,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Subject     *string `json:"subject" validate:"omitempty,max=100"`
	GradeLevel  *string `json:"grade_level" validate:"omitempty,max=50"`
}

type UpdateClassInput struct {
	Name        *string `json:"name" validate:"omitempty,notblank,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Subject     *string `json:"subject" validate:"omitempty,max=100"`
	GradeLevel  *string `json:"grade_level" validate:"omitempty,max=50"`
}
