package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-site-api/internal/service"
	"github.com/rs/zerolog"
)

// AuthHandler handles login, registration and logout
type AuthHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(services *service.Services, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		services: services,
		log:      log.With().Str("handler", "auth").Logger(),
	}
}

type credentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
	Next     string `json:"next"`
}

// Login handles POST /api/v1/auth/login (sheet-backed accounts).
// Rate limiting happens inside the service, keyed by client IP.
func (h *AuthHandler) Login(c *gin.Context) {
	in := readCredentials(c)

	account, err := h.services.Auth.Login(c.Request.Context(), c.ClientIP(), in.Email, in.Password)
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	if err := signInSheetUser(c, account.Name, account.Email); err != nil {
		h.log.Error().Err(err).Msg("Failed to save session")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	if wantsStructured(c) {
		c.JSON(http.StatusOK, gin.H{"success": true, "username": account.Name})
		return
	}

	setFlash(c, "Signed in as "+account.Name+".")
	c.Redirect(http.StatusSeeOther, safeNext(in.Next))
}

// Register handles POST /api/v1/auth/register. The registration modal
// always talks JSON, so there is no interactive shape here.
func (h *AuthHandler) Register(c *gin.Context) {
	in := readCredentials(c)

	account, err := h.services.Auth.Register(c.Request.Context(), in.Email, in.Password, in.Username)
	if err != nil {
		failJSON(c, err)
		return
	}

	if err := signInSheetUser(c, account.Name, account.Email); err != nil {
		h.log.Error().Err(err).Msg("Failed to save session")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "username": account.Name})
}

// NativeLogin handles POST /api/v1/auth/native/login (application accounts)
func (h *AuthHandler) NativeLogin(c *gin.Context) {
	in := readCredentials(c)

	user, err := h.services.Auth.NativeLogin(c.Request.Context(), c.ClientIP(), in.Email, in.Password)
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	if err := signInNativeUser(c, user.ID); err != nil {
		h.log.Error().Err(err).Msg("Failed to save session")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	if wantsStructured(c) {
		c.JSON(http.StatusOK, gin.H{"success": true, "username": user.Name})
		return
	}

	setFlash(c, "Signed in as "+user.Name+".")
	c.Redirect(http.StatusSeeOther, safeNext(in.Next))
}

// Logout handles POST /api/v1/auth/logout. It clears both the native
// and the sheet/session identity keys.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := signOut(c); err != nil {
		h.log.Error().Err(err).Msg("Failed to clear session")
	}

	if wantsStructured(c) {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	setFlash(c, "Signed out.")
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) respondAuthError(c *gin.Context, err error) {
	status, msg := statusForError(err)
	if status == http.StatusInternalServerError {
		h.log.Error().Err(err).Msg("Auth operation failed")
	}

	if wantsStructured(c) {
		c.JSON(status, gin.H{"success": false, "error": msg})
		return
	}

	setFlash(c, msg)
	c.Redirect(http.StatusSeeOther, safeNext(c.PostForm("next")))
}

// readCredentials accepts either form fields or a JSON body.
func readCredentials(c *gin.Context) credentialsInput {
	in := credentialsInput{
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
		Username: c.PostForm("username"),
		Next:     c.PostForm("next"),
	}
	if in.Email == "" && in.Password == "" {
		var body credentialsInput
		if err := c.ShouldBindJSON(&body); err == nil {
			in = body
		}
	}
	if in.Next == "" {
		in.Next = c.Query("next")
	}
	return in
}
