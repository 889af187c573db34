package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-site-api/internal/service"
	"github.com/rs/zerolog"
)

// ProjectHandler handles the read-only portfolio pages
type ProjectHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(services *service.Services, log zerolog.Logger) *ProjectHandler {
	return &ProjectHandler{
		services: services,
		log:      log.With().Str("handler", "project").Logger(),
	}
}

// List handles GET /api/v1/projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, tags, err := h.services.Project.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list projects")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"tags":     tags,
	})
}

// Get handles GET /api/v1/projects/:id - the project detail page with
// its comments. Interactive comment flows redirect back here, so any
// pending flash message rides along.
func (h *ProjectHandler) Get(c *gin.Context) {
	projectID, ok := projectParam(c)
	if !ok {
		return
	}

	project, err := h.services.Project.Get(c.Request.Context(), projectID)
	if err != nil {
		h.respondReadError(c, err)
		return
	}

	comments, err := h.services.Comment.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		h.respondReadError(c, err)
		return
	}

	ident := currentIdentity(c)
	payload := gin.H{
		"project":     project,
		"comments":    comments,
		"can_comment": !ident.IsAnonymous(),
	}
	if flash := popFlash(c); flash != "" {
		payload["flash"] = flash
	}

	c.JSON(http.StatusOK, payload)
}

// Comments handles GET /api/v1/projects/:id/comments - just the comment
// list plus form visibility, used by the home page modal.
func (h *ProjectHandler) Comments(c *gin.Context) {
	projectID, ok := projectParam(c)
	if !ok {
		return
	}

	if _, err := h.services.Project.Get(c.Request.Context(), projectID); err != nil {
		h.respondReadError(c, err)
		return
	}

	comments, err := h.services.Comment.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		h.respondReadError(c, err)
		return
	}

	ident := currentIdentity(c)
	c.JSON(http.StatusOK, gin.H{
		"comments":    comments,
		"can_comment": !ident.IsAnonymous(),
	})
}

func (h *ProjectHandler) respondReadError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrProjectNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	h.log.Error().Err(err).Msg("Project read failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
