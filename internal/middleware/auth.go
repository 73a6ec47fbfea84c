package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/elhoucineqara/saascompare/internal/domain"
)

const (
	// SessionCookieName is the cookie carrying the session token.
	SessionCookieName = "saascompare_session"
	// UserKey is the context key for the authenticated user.
	UserKey = "user"
	// SessionTokenKey is the context key for the presented session token.
	SessionTokenKey = "session_token"
)

// Authenticator resolves a session token to its user. It returns
// domain.ErrUnauthorized for unknown or expired tokens.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// Authenticate loads the user behind the request's session token, if any.
// Requests without a valid session continue anonymously.
func Authenticate(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if token == "" {
			c.Next()
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		switch {
		case err == nil:
			c.Set(UserKey, user)
			c.Set(SessionTokenKey, token)
		case errors.Is(err, domain.ErrUnauthorized):
		default:
			Logger(c).Error("Failed to authenticate session", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Next()
	}
}

// RequireUser rejects anonymous requests with 401.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// RequireRole rejects anonymous requests with 401 and users lacking role with 403.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil for anonymous requests.
func CurrentUser(c *gin.Context) *domain.User {
	if u, exists := c.Get(UserKey); exists {
		if user, ok := u.(*domain.User); ok {
			return user
		}
	}
	return nil
}

// SessionToken returns the token from the session cookie, falling back to
// an "Authorization: Bearer" header.
func SessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
