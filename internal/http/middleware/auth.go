package middleware

import (
	"net/http"
	"strings"

	"backend/internal/domain"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// SessionCookie is the cookie name the login handler sets.
const SessionCookie = "session"

// SessionGate resolves the session token (Authorization bearer or cookie)
// once per request and stores the claims in the context. Requests without a
// valid session are redirected to the login page when they come from a
// browser, otherwise rejected with 401.
func SessionGate(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if v, err := c.Cookie(SessionCookie); err == nil {
				token = v
			}
		}

		if token == "" {
			rejectUnauthenticated(c)
			return
		}

		sess, err := services.ParseToken(token, secret)
		if err != nil {
			rejectUnauthenticated(c)
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// RequireAdmin blocks sessions whose role claim is not "admin". Browser
// requests land on the forbidden page, API clients get 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := GetSession(c)
		if !ok {
			rejectUnauthenticated(c)
			return
		}
		if !sess.IsAdmin() {
			if wantsHTML(c) {
				c.Redirect(http.StatusFound, "/403")
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Admin access required.",
				"success": false,
			})
			return
		}
		c.Next()
	}
}

// GetSession extracts the resolved session claims from the context.
func GetSession(c *gin.Context) (domain.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return domain.Session{}, false
	}
	sess, ok := v.(domain.Session)
	return sess, ok
}

func rejectUnauthenticated(c *gin.Context) {
	if wantsHTML(c) {
		c.Redirect(http.StatusFound, "/auth/login")
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"message": "Please sign in.",
		"success": false,
	})
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}
