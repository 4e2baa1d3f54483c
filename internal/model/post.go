package model

import (
	"time"
)

type Post struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`

	// Joined on read for the feed view.
	AuthorName string `db:"author_name" json:"authorName"`
}
