package service

import (
	"context"

	"github.com/portfolio-site-api/internal/config"
	"github.com/portfolio-site-api/internal/identity"
	"github.com/portfolio-site-api/internal/models"
	"github.com/portfolio-site-api/internal/ratelimit"
	"github.com/portfolio-site-api/internal/repository"
	"github.com/portfolio-site-api/internal/sheets"
	"github.com/rs/zerolog"
)

// CommentService defines comment operations gated by the identity's
// ownership of the target comment
type CommentService interface {
	Create(ctx context.Context, ident identity.Identity, projectID int64, content string) (*models.Comment, error)
	Update(ctx context.Context, ident identity.Identity, projectID int64, commentID, content string) (*models.Comment, error)
	Delete(ctx context.Context, ident identity.Identity, projectID int64, commentID string) error
	ListByProject(ctx context.Context, projectID int64) ([]*models.Comment, error)
}

// SheetAccount is the display data of a matched sheet-backed user,
// handed to the handler to stash in the session.
type SheetAccount struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthService defines login and registration against the spreadsheet
// credential store, plus minimal native-account login
type AuthService interface {
	Login(ctx context.Context, clientKey, email, password string) (*SheetAccount, error)
	Register(ctx context.Context, email, password, username string) (*SheetAccount, error)
	NativeLogin(ctx context.Context, clientKey, email, password string) (*models.User, error)
}

// SiteStats aggregates row counts for the metrics endpoint
type SiteStats struct {
	Projects int `json:"projects"`
	Comments int `json:"comments"`
	Users    int `json:"users"`
}

// ProjectService defines read operations for the portfolio pages
type ProjectService interface {
	List(ctx context.Context) ([]*models.Project, []*models.Tag, error)
	Get(ctx context.Context, id int64) (*models.Project, error)
	Stats(ctx context.Context) (*SiteStats, error)
}

// Services holds all service interfaces
type Services struct {
	Comment CommentService
	Auth    AuthService
	Project ProjectService
}

// NewServices creates all services
func NewServices(
	repos *repository.Repositories,
	credStore sheets.CredentialStore,
	attempts ratelimit.AttemptStore,
	cfg *config.Config,
	log zerolog.Logger,
) *Services {
	return &Services{
		Comment: newCommentService(repos.Comment, repos.Project, log),
		Auth:    newAuthService(repos.User, credStore, attempts, log),
		Project: newProjectService(repos, log),
	}
}
