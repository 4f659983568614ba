package domain

import (
	"time"

	"github.com/google/uuid"
)

type Exam struct {
	ID           uuid.UUID `db:"id" json:"id"`
	ClassID      uuid.UUID `db:"class_id" json:"class_id"`
	Title        string    `db:"title" json:"title"`
	Instructions *string   `db:"instructions" json:"instructions,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type CreateExamInput struct {
	Title        string  `json:"title" validate:"required,notblank,max=200"`
	Instructions *string `json:"instructions" validate:"omitempty,max=10000"`
}
