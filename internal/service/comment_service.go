package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/portfolio-site-api/internal/identity"
	"github.com/portfolio-site-api/internal/models"
	"github.com/portfolio-site-api/internal/repository"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	comments repository.CommentRepository
	projects repository.ProjectRepository
	log      zerolog.Logger
}

func newCommentService(comments repository.CommentRepository, projects repository.ProjectRepository, log zerolog.Logger) *commentService {
	return &commentService{
		comments: comments,
		projects: projects,
		log:      log.With().Str("service", "comment").Logger(),
	}
}

// Create posts a new comment. The persisted attribution follows the
// identity: native users get a user reference and empty author fields,
// pseudo users get author name/email and no user reference. Anonymous
// callers are rejected before anything is written.
func (s *commentService) Create(ctx context.Context, ident identity.Identity, projectID int64, content string) (*models.Comment, error) {
	if ident.IsAnonymous() {
		return nil, ErrSignInRequired
	}

	content, err := validateContent(content)
	if err != nil {
		return nil, err
	}

	exists, err := s.projects.Exists(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check project %d: %w", projectID, err)
	}
	if !exists {
		return nil, ErrProjectNotFound
	}

	now := time.Now()
	comment := &models.Comment{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch ident.Kind {
	case identity.KindNative:
		userID := ident.UserID
		comment.UserID = &userID
	case identity.KindPseudo:
		comment.AuthorName = ident.DisplayName()
		comment.AuthorEmail = ident.Email
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.log.Info().
		Str("comment_id", comment.ID).
		Int64("project_id", projectID).
		Str("identity", ident.Kind.String()).
		Msg("Comment created")

	return comment, nil
}

// Update edits an owned comment's content. created_at is never touched.
func (s *commentService) Update(ctx context.Context, ident identity.Identity, projectID int64, commentID, content string) (*models.Comment, error) {
	comment, err := s.authorize(ctx, ident, projectID, commentID)
	if err != nil {
		return nil, err
	}

	content, err = validateContent(content)
	if err != nil {
		return nil, err
	}

	if err := s.comments.UpdateContent(ctx, comment.ID, content); err != nil {
		return nil, fmt.Errorf("failed to update comment %s: %w", comment.ID, err)
	}

	comment.Content = content
	comment.UpdatedAt = time.Now()
	return comment, nil
}

// Delete removes an owned comment.
func (s *commentService) Delete(ctx context.Context, ident identity.Identity, projectID int64, commentID string) error {
	comment, err := s.authorize(ctx, ident, projectID, commentID)
	if err != nil {
		return err
	}

	if err := s.comments.Delete(ctx, comment.ID); err != nil {
		return fmt.Errorf("failed to delete comment %s: %w", comment.ID, err)
	}

	s.log.Info().
		Str("comment_id", comment.ID).
		Int64("project_id", projectID).
		Str("identity", ident.Kind.String()).
		Msg("Comment deleted")

	return nil
}

// ListByProject returns a project's comments, newest first
func (s *commentService) ListByProject(ctx context.Context, projectID int64) ([]*models.Comment, error) {
	comments, err := s.comments.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for project %d: %w", projectID, err)
	}
	return comments, nil
}

// authorize locates the target comment and checks the caller owns it.
// Ownership mismatches are reported as ErrCommentNotFound, the same as
// a missing comment, so the denial path does not reveal whether the
// comment exists. This is a pure gate: nothing is written on denial.
func (s *commentService) authorize(ctx context.Context, ident identity.Identity, projectID int64, commentID string) (*models.Comment, error) {
	switch ident.Kind {
	case identity.KindNative:
		comment, err := s.comments.GetOwnedByUser(ctx, commentID, projectID, ident.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up comment %s: %w", commentID, err)
		}
		if comment == nil {
			return nil, ErrCommentNotFound
		}
		return comment, nil

	case identity.KindPseudo:
		comment, err := s.comments.GetPseudoAuthored(ctx, commentID, projectID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up comment %s: %w", commentID, err)
		}
		if comment == nil || !ident.MatchesAuthor(comment.AuthorName, comment.AuthorEmail) {
			return nil, ErrCommentNotFound
		}
		return comment, nil

	default:
		return nil, ErrSignInRequired
	}
}

func validateContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if utf8.RuneCountInString(content) < models.MinCommentLength {
		return "", ErrContentTooShort
	}
	if utf8.RuneCountInString(content) > models.MaxCommentLength {
		return "", ErrContentTooLong
	}
	return content, nil
}
