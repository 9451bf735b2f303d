package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rural-health-assistant/internal/auth"
)

const (
	// UserNameKey and UserRoleKey hold the caller's identity in the gin context.
	UserNameKey = "user_name"
	UserRoleKey = "user_role"

	// SessionCookie names the cookie carrying a login session ID.
	SessionCookie = "session_id"

	// DoctorRole is the role allowed onto the doctor dashboard.
	DoctorRole = "doctor"
)

// SessionGetter resolves a session cookie; auth.SessionStore implements it.
type SessionGetter interface {
	Get(ctx context.Context, id string) (*auth.SessionData, error)
}

// Authenticator resolves the caller from a bearer token or a session cookie.
type Authenticator struct {
	Tokens   *auth.TokenService
	Sessions SessionGetter // nil when sessions are disabled
}

// Auth identifies the caller from a bearer JWT or a session cookie. With
// required set, unidentified callers get 401; otherwise they pass through
// anonymously.
func Auth(a *Authenticator, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if name, role, ok := a.identify(c); ok {
			c.Set(UserNameKey, name)
			c.Set(UserRoleKey, role)
			c.Next()
			return
		}

		if required {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

func (a *Authenticator) identify(c *gin.Context) (name, role string, ok bool) {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") && a.Tokens != nil {
		claims, err := a.Tokens.Validate(strings.TrimPrefix(header, "Bearer "))
		if err == nil {
			return claims.Name, claims.Role, true
		}
	}

	if a.Sessions == nil {
		return "", "", false
	}
	sessionID, err := c.Cookie(SessionCookie)
	if err != nil || sessionID == "" {
		return "", "", false
	}
	data, err := a.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil || data == nil {
		return "", "", false
	}
	return data.Name, data.Role, true
}

// RequireRole rejects callers whose role, as set by Auth, is not one of roles.
// Anonymous callers get 401, identified callers with another role get 403.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.GetString(UserNameKey)
		if name == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		role := c.GetString(UserRoleKey)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	}
}
