package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/elhoucineqara/saascompare/internal/domain"
	"github.com/elhoucineqara/saascompare/internal/middleware"
)

type stubAuthenticator map[string]*domain.User

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (*domain.User, error) {
	if token == "broken" {
		return nil, errors.New("connection refused")
	}
	if user, ok := s[token]; ok {
		return user, nil
	}
	return nil, domain.ErrUnauthorized
}

func newAuthRouter(guard gin.HandlerFunc) *gin.Engine {
	auth := stubAuthenticator{
		"admin-token": {ID: "a1", Name: "Admin", Role: domain.RoleAdmin},
		"user-token":  {ID: "u1", Name: "User", Role: domain.RoleUser},
	}
	router := gin.New()
	router.Use(middleware.Authenticate(auth))
	router.GET("/protected", guard, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": middleware.CurrentUser(c).ID})
	})
	return router
}

func TestRequireRole(t *testing.T) {
	router := newAuthRouter(middleware.RequireRole(domain.RoleAdmin))

	tests := []struct {
		name       string
		setup      func(r *http.Request)
		wantStatus int
	}{
		{"anonymous", func(r *http.Request) {}, http.StatusUnauthorized},
		{"unknown token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized},
		{"non-admin", func(r *http.Request) { r.Header.Set("Authorization", "Bearer user-token") }, http.StatusForbidden},
		{"admin via bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer admin-token") }, http.StatusOK},
		{"admin via cookie", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "admin-token"})
		}, http.StatusOK},
		{"authenticator failure", func(r *http.Request) { r.Header.Set("Authorization", "Bearer broken") }, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequireUser(t *testing.T) {
	router := newAuthRouter(middleware.RequireUser())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"u1"}`, w.Body.String())
}

func TestSessionToken_PrefersCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "from-cookie"})
	req.Header.Set("Authorization", "Bearer from-header")

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req

	assert.Equal(t, "from-cookie", middleware.SessionToken(c))
}
