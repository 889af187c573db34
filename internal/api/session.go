package api

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/portfolio-site-api/internal/identity"
)

// sessionView adapts the cookie session to the read-only view the
// identity resolver works against.
type sessionView struct {
	s sessions.Session
}

func (v sessionView) GetString(key string) string {
	str, _ := v.s.Get(key).(string)
	return str
}

func (v sessionView) GetInt64(key string) (int64, bool) {
	n, ok := v.s.Get(key).(int64)
	return n, ok
}

// currentIdentity resolves the caller's identity from the request session.
func currentIdentity(c *gin.Context) identity.Identity {
	return identity.Resolve(sessionView{sessions.Default(c)})
}

// signInSheetUser stores the pseudo-identity session keys after a
// successful sheet login or registration.
func signInSheetUser(c *gin.Context, name, email string) error {
	sess := sessions.Default(c)
	sess.Set(identity.KeyUserEmail, email)
	sess.Set(identity.KeyUserName, name)
	return sess.Save()
}

// signInNativeUser stores the native account reference in the session.
func signInNativeUser(c *gin.Context, userID int64) error {
	sess := sessions.Default(c)
	sess.Set(identity.KeyNativeUserID, userID)
	return sess.Save()
}

// signOut clears every identity-bearing session key, native and pseudo.
func signOut(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Delete(identity.KeyNativeUserID)
	sess.Delete(identity.KeyUserEmail)
	sess.Delete(identity.KeyUserName)
	sess.Delete(identity.KeyAuthorName)
	return sess.Save()
}

const flashKey = "flash"

// setFlash stores a one-shot message shown on the next page load.
func setFlash(c *gin.Context, message string) {
	sess := sessions.Default(c)
	sess.Set(flashKey, message)
	_ = sess.Save()
}

// popFlash returns and clears the pending flash message, if any.
func popFlash(c *gin.Context) string {
	sess := sessions.Default(c)
	msg, _ := sess.Get(flashKey).(string)
	if msg != "" {
		sess.Delete(flashKey)
		_ = sess.Save()
	}
	return msg
}
