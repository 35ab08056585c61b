package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/pavich5/AutoMK/sessions"
)

// SessionCookie names the browser session cookie.
const SessionCookie = "automk_sid"

const sessionKey = "session"

// EnsureSession resolves the caller's session from the cookie, creating
// one on first contact, and hands it to controllers via the request
// context. Unknown or expired cookies get a fresh session rather than
// an error.
func EnsureSession(manager *sessions.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sess *sessions.Session

		if sid, err := c.Cookie(SessionCookie); err == nil {
			sess, _ = manager.Get(sid)
		}
		if sess == nil {
			sess = manager.Create()
			c.SetCookie(SessionCookie, sess.ID, 0, "/", "", false, true)
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// GetSession fetches the session EnsureSession attached to the request.
func GetSession(c *gin.Context) *sessions.Session {
	v, _ := c.Get(sessionKey)
	sess, _ := v.(*sessions.Session)
	return sess
}
