package model

import (
	"time"
)

type Goal struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"userId"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Target      float64   `db:"target" json:"target"`
	Deadline    time.Time `db:"deadline" json:"deadline"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`

	// Attached on read; the goals table does not store entries.
	Progress []ProgressEntry `db:"-" json:"progress"`
}
