package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-site-api/internal/identity"
	"github.com/portfolio-site-api/internal/service"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment create/update/delete endpoints.
//
// Every mutation supports two response shapes: structured JSON with the
// re-rendered comment list for the front-end modal, and a redirect back
// to the project page for plain form posts. The authorization decision
// is made by the comment service and is identical for both shapes.
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// commentInput is the JSON body alternative to the form field.
type commentInput struct {
	Content string `json:"content"`
}

// Create handles POST /api/v1/projects/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	projectID, ok := projectParam(c)
	if !ok {
		return
	}

	ident := currentIdentity(c)
	comment, err := h.services.Comment.Create(c.Request.Context(), ident, projectID, contentField(c))
	if err != nil {
		h.respondError(c, ident, projectID, err, "Sign in is required to comment.")
		return
	}

	h.log.Debug().Str("comment_id", comment.ID).Msg("Comment create handled")
	h.respondSuccess(c, ident, projectID, "Comment posted.")
}

// Update handles POST /api/v1/projects/:id/comments/:comment_id
func (h *CommentHandler) Update(c *gin.Context) {
	projectID, ok := projectParam(c)
	if !ok {
		return
	}
	commentID := c.Param("comment_id")

	ident := currentIdentity(c)
	_, err := h.services.Comment.Update(c.Request.Context(), ident, projectID, commentID, contentField(c))
	if err != nil {
		h.respondError(c, ident, projectID, err, "You cannot edit this comment.")
		return
	}

	h.respondSuccess(c, ident, projectID, "Comment updated.")
}

// Delete handles POST /api/v1/projects/:id/comments/:comment_id/delete
func (h *CommentHandler) Delete(c *gin.Context) {
	projectID, ok := projectParam(c)
	if !ok {
		return
	}
	commentID := c.Param("comment_id")

	ident := currentIdentity(c)
	if err := h.services.Comment.Delete(c.Request.Context(), ident, projectID, commentID); err != nil {
		h.respondError(c, ident, projectID, err, "You cannot delete this comment.")
		return
	}

	h.respondSuccess(c, ident, projectID, "Comment deleted.")
}

// respondSuccess renders the outcome of a successful mutation in the
// caller's preferred shape.
func (h *CommentHandler) respondSuccess(c *gin.Context, ident identity.Identity, projectID int64, flash string) {
	if !wantsStructured(c) {
		setFlash(c, flash)
		c.Redirect(http.StatusSeeOther, projectPath(projectID))
		return
	}

	comments, err := h.services.Comment.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		h.log.Error().Err(err).Int64("project_id", projectID).Msg("Failed to re-render comment list")
		failJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"comments":    comments,
		"can_comment": !ident.IsAnonymous(),
	})
}

func (h *CommentHandler) respondError(c *gin.Context, ident identity.Identity, projectID int64, err error, flash string) {
	status, msg := statusForError(err)
	if status == http.StatusInternalServerError {
		h.log.Error().Err(err).Int64("project_id", projectID).Msg("Comment operation failed")
	}

	if wantsStructured(c) {
		c.JSON(status, gin.H{"success": false, "error": msg})
		return
	}

	switch status {
	case http.StatusInternalServerError:
		setFlash(c, "Something went wrong. Please try again.")
	case http.StatusBadRequest:
		setFlash(c, "Please fix the errors and try again.")
	default:
		setFlash(c, flash)
	}
	c.Redirect(http.StatusSeeOther, projectPath(projectID))
}

// projectParam parses the :id path segment, answering 404 for garbage
// the same way an unroutable URL would.
func projectParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		if wantsStructured(c) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "project not found"})
		} else {
			c.Redirect(http.StatusSeeOther, "/")
		}
		return 0, false
	}
	return id, true
}

// contentField reads the comment content from the form field or, for
// JSON callers, the request body.
func contentField(c *gin.Context) string {
	if content := c.PostForm("content"); content != "" {
		return content
	}
	var in commentInput
	if err := c.ShouldBindJSON(&in); err == nil {
		return in.Content
	}
	return ""
}
