package domain

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ClassID   uuid.UUID `db:"class_id" json:"class_id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type StudentFilter struct {
	ClassID uuid.UUID
	// ExcludeSubmittedFor drops students that already have a submission for the exam.
	ExcludeSubmittedFor uuid.UUID
	Search              string
}

type CreateStudentInput struct {
	Name  string `json:"name" validate:"required,notblank,max=200"`
	Email string `json:"email" validate:"required,email,max=254"`
}
