package repository

import (
	"context"

	"github.com/portfolio-site-api/internal/database"
	"github.com/portfolio-site-api/internal/models"
)

// ProjectRepository defines the interface for project data operations
type ProjectRepository interface {
	List(ctx context.Context) ([]*models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ListTags(ctx context.Context) ([]*models.Tag, error)
	Count(ctx context.Context) (int, error)
}

// CommentRepository defines the interface for comment data operations.
//
// The owner-scoped getters bake the ownership filter into the query:
// a comment that exists but belongs to someone else comes back as nil,
// exactly like one that does not exist.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByProject(ctx context.Context, projectID int64) ([]*models.Comment, error)
	// GetOwnedByUser returns the comment only if it belongs to the given
	// project and is attributed to the given native user.
	GetOwnedByUser(ctx context.Context, id string, projectID, userID int64) (*models.Comment, error)
	// GetPseudoAuthored returns the comment only if it belongs to the given
	// project and carries a pseudo attribution (no native user reference).
	GetPseudoAuthored(ctx context.Context, id string, projectID int64) (*models.Comment, error)
	UpdateContent(ctx context.Context, id string, content string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// UserRepository defines the interface for native account data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Project ProjectRepository
	Comment CommentRepository
	User    UserRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Project: NewProjectRepo(db),
		Comment: NewCommentRepo(db),
		User:    NewUserRepo(db),
	}
}
