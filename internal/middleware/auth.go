package middleware

import (
	"net/http"
	"strings"

	"dashboard/internal/service"
	"dashboard/internal/session"
	"dashboard/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookie names the HttpOnly cookie carrying the session ID.
	SessionCookie = "session_id"
	sessionKey    = "session"
)

// SetSessionCookie stores the session ID as an HttpOnly cookie.
// Production (cross-origin): SameSiteNoneMode + Secure=true
// Development (same-site):   SameSiteLaxMode  + Secure=false
func SetSessionCookie(c *gin.Context, sessionID string, maxAge int, secure bool) {
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}
	c.SetSameSite(sameSite)
	c.SetCookie(SessionCookie, sessionID, maxAge, "/", "", secure, true)
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(c *gin.Context, secure bool) {
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}
	c.SetSameSite(sameSite)
	c.SetCookie(SessionCookie, "", -1, "/", "", secure, true)
}

// RequireSession resolves the caller's session from the cookie (or a
// Bearer fallback for non-browser clients) and stores it in the
// request context. Requests without a live session are rejected.
func RequireSession(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, cookieErr := c.Cookie(SessionCookie)
		if cookieErr != nil || sessionID == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid authorization format. Expected 'Bearer <session id>'"))
				return
			}
			sessionID = parts[1]
		}

		sess, err := auth.Resolve(c.Request.Context(), sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Session expired or unknown, please log in again"))
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// CurrentSession returns the session resolved by RequireSession.
func CurrentSession(c *gin.Context) *session.Session {
	value, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := value.(*session.Session)
	return sess
}
