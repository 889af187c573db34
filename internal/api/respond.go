package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-site-api/internal/service"
)

// wantsStructured reports whether the caller asked for a structured
// JSON response instead of an interactive redirect. The signal is the
// header the site's front-end JavaScript sends with every fetch.
func wantsStructured(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}

// projectPath is where interactive comment flows land after a mutation.
func projectPath(projectID int64) string {
	return fmt.Sprintf("/projects/%d", projectID)
}

// statusForError maps a domain error to an HTTP status and a message
// safe to show the caller. Unknown errors collapse to a generic 500.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrContentTooShort),
		errors.Is(err, service.ErrContentTooLong),
		errors.Is(err, service.ErrEmailPasswordRequired),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrEmailTaken):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, service.ErrSignInRequired):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, service.ErrProjectNotFound),
		errors.Is(err, service.ErrCommentNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrTooManyAttempts):
		return http.StatusTooManyRequests, err.Error()
	case errors.Is(err, service.ErrSheetUnavailable):
		return http.StatusServiceUnavailable, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// failJSON writes the structured failure shape.
func failJSON(c *gin.Context, err error) {
	status, msg := statusForError(err)
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// safeNext returns a redirect target restricted to site-relative paths,
// falling back to the site root.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") && !strings.Contains(next, "://") {
		return next
	}
	return "/"
}
