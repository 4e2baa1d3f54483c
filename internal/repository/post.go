package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/fittrackapp/fittrack/internal/model"
)

var (
	ErrPostNotFound = errors.New("post not found")
)

type PostRepository interface {
	Create(post *model.Post) error
	Recent(limit int) ([]*model.Post, error)
	Delete(userID, postID string) error
}

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *model.Post) error {
	query := `INSERT INTO posts (id, user_id, content, created_at)
	          VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query,
		post.ID,
		post.UserID,
		post.Content,
		post.CreatedAt,
	)

	return err
}

func (r *postRepository) Recent(limit int) ([]*model.Post, error) {
	var posts []*model.Post
	query := `SELECT p.id, p.user_id, p.content, p.created_at, u.name AS author_name
	          FROM posts p
	          JOIN users u ON u.id = p.user_id
	          ORDER BY p.created_at DESC
	          LIMIT $1`

	err := r.db.Select(&posts, query, limit)
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepository) Delete(userID, postID string) error {
	query := `DELETE FROM posts WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, postID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrPostNotFound
	}

	return nil
}
