package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-site-api/internal/models"
	"github.com/portfolio-site-api/internal/validation"
	"github.com/rs/zerolog"
)

// ContactHandler handles contact form submissions
type ContactHandler struct {
	log zerolog.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(log zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		log: log.With().Str("handler", "contact").Logger(),
	}
}

// Submit handles POST /api/v1/contact. Accepted messages are logged;
// there is no mailbox behind this, the site owner reads the logs.
func (h *ContactHandler) Submit(c *gin.Context) {
	msg := models.ContactMessage{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Subject: c.PostForm("subject"),
		Message: c.PostForm("message"),
	}
	if msg.Name == "" && msg.Email == "" && msg.Message == "" {
		var body models.ContactMessage
		if err := c.ShouldBindJSON(&body); err == nil {
			msg = body
		}
	}

	if errs := validation.ValidateContact(&msg); len(errs) > 0 {
		if wantsStructured(c) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": errs})
			return
		}
		setFlash(c, "Please correct the errors below.")
		c.Redirect(http.StatusSeeOther, "/contact")
		return
	}

	h.log.Info().
		Str("name", msg.Name).
		Str("email", msg.Email).
		Str("subject", msg.Subject).
		Msg("Contact message received")

	if wantsStructured(c) {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	setFlash(c, "Message sent successfully.")
	c.Redirect(http.StatusSeeOther, "/contact")
}
