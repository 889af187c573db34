package service

import (
	"context"
	"fmt"

	"github.com/portfolio-site-api/internal/models"
	"github.com/portfolio-site-api/internal/repository"
	"github.com/rs/zerolog"
)

// projectService is the concrete implementation of ProjectService
type projectService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newProjectService(repos *repository.Repositories, log zerolog.Logger) *projectService {
	return &projectService{
		repos: repos,
		log:   log.With().Str("service", "project").Logger(),
	}
}

// List returns all projects and tags for the home page
func (s *projectService) List(ctx context.Context) ([]*models.Project, []*models.Tag, error) {
	projects, err := s.repos.Project.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list projects: %w", err)
	}
	tags, err := s.repos.Project.ListTags(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return projects, tags, nil
}

// Get returns one project, or ErrProjectNotFound
func (s *projectService) Get(ctx context.Context, id int64) (*models.Project, error) {
	project, err := s.repos.Project.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get project %d: %w", id, err)
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

// Stats returns row counts for the metrics endpoint
func (s *projectService) Stats(ctx context.Context) (*SiteStats, error) {
	projects, err := s.repos.Project.Count(ctx)
	if err != nil {
		return nil, err
	}
	comments, err := s.repos.Comment.Count(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.repos.User.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &SiteStats{Projects: projects, Comments: comments, Users: users}, nil
}
