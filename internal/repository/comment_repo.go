package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/portfolio-site-api/internal/database"
	"github.com/portfolio-site-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, project_id, user_id, author_name, author_email, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.ProjectID, comment.UserID,
		comment.AuthorName, comment.AuthorEmail, comment.Content,
		comment.CreatedAt, comment.UpdatedAt,
	)
	return err
}

// ListByProject returns a project's comments, newest first, with the
// native author's display name joined in where one exists.
func (r *commentRepo) ListByProject(ctx context.Context, projectID int64) ([]*models.Comment, error) {
	query := `
		SELECT c.id, c.project_id, c.user_id, COALESCE(u.name, ''), c.author_name, c.author_email,
			c.content, c.created_at, c.updated_at
		FROM comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.project_id = $1
		ORDER BY c.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var c models.Comment
		err := rows.Scan(
			&c.ID, &c.ProjectID, &c.UserID, &c.UserName, &c.AuthorName, &c.AuthorEmail,
			&c.Content, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}

// GetOwnedByUser retrieves a comment scoped to its project and native owner
func (r *commentRepo) GetOwnedByUser(ctx context.Context, id string, projectID, userID int64) (*models.Comment, error) {
	query := `
		SELECT id, project_id, user_id, author_name, author_email, content, created_at, updated_at
		FROM comments
		WHERE id = $1 AND project_id = $2 AND user_id = $3
	`
	return r.getOne(ctx, query, id, projectID, userID)
}

// GetPseudoAuthored retrieves a comment scoped to its project with no native owner
func (r *commentRepo) GetPseudoAuthored(ctx context.Context, id string, projectID int64) (*models.Comment, error) {
	query := `
		SELECT id, project_id, user_id, author_name, author_email, content, created_at, updated_at
		FROM comments
		WHERE id = $1 AND project_id = $2 AND user_id IS NULL
	`
	return r.getOne(ctx, query, id, projectID)
}

func (r *commentRepo) getOne(ctx context.Context, query string, args ...interface{}) (*models.Comment, error) {
	var c models.Comment
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&c.ID, &c.ProjectID, &c.UserID, &c.AuthorName, &c.AuthorEmail,
		&c.Content, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateContent updates a comment's content, leaving created_at untouched
func (r *commentRepo) UpdateContent(ctx context.Context, id string, content string) error {
	query := `UPDATE comments SET content = $1, updated_at = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, content, time.Now(), id)
	return err
}

// Delete removes a comment by ID
func (r *commentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	return err
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments").Scan(&count)
	return count, err
}
