package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/elhoucineqara/saascompare/internal/domain"
	"github.com/elhoucineqara/saascompare/internal/middleware"
	"github.com/elhoucineqara/saascompare/internal/mocks"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *mocks.MockAuthServiceInterface) {
	mockService := mocks.NewMockAuthServiceInterface(t)
	h := NewAuthHandler(mockService, false)

	router := gin.New()
	router.Use(middleware.Authenticate(mockService))
	router.POST("/api/auth/register", h.Register)
	router.POST("/api/auth/login", h.Login)
	router.POST("/api/auth/logout", h.Logout)
	router.GET("/api/auth/me", h.Me)
	return router, mockService
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("creates account", func(t *testing.T) {
		router, mockService := newAuthRouter(t)
		mockService.EXPECT().Register(mock.Anything, domain.RegisterInput{
			Name: "Jane", Email: "jane@example.com", Password: "password123",
		}).Return(&domain.User{ID: "u1", Email: "jane@example.com", Role: domain.RoleUser, PasswordHash: "hash"}, nil)

		w := postJSON(router, "/api/auth/register", `{"name":"Jane","email":"jane@example.com","password":"password123"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"role":"user"`)
		assert.NotContains(t, w.Body.String(), "hash")
	})

	t.Run("validation errors list fields", func(t *testing.T) {
		router, mockService := newAuthRouter(t)
		mockService.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, domain.NewValidationError("password", "password_too_short"))

		w := postJSON(router, "/api/auth/register", `{"name":"Jane","email":"jane@example.com","password":"x"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"validation failed","fields":{"password":"password_too_short"}}`, w.Body.String())
	})

	t.Run("taken email is 409", func(t *testing.T) {
		router, mockService := newAuthRouter(t)
		mockService.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, domain.ConflictError("user", "email", "jane@example.com"))

		w := postJSON(router, "/api/auth/register", `{"name":"Jane","email":"jane@example.com","password":"password123"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		w := postJSON(router, "/api/auth/register", `{"name":`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid request body")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("sets the session cookie", func(t *testing.T) {
		router, mockService := newAuthRouter(t)
		expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
		mockService.EXPECT().Login(mock.Anything, "admin@example.com", "password123").Return(
			&domain.Session{Token: "tok-123", UserID: "u1", ExpiresAt: expires},
			&domain.User{ID: "u1", Role: domain.RoleAdmin},
			nil,
		)

		w := postJSON(router, "/api/auth/login", `{"email":"admin@example.com","password":"password123"}`)

		require.Equal(t, http.StatusOK, w.Code)

		var response LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "tok-123", response.Token)
		assert.Equal(t, expires.Format(TimeFormat), response.ExpiresAt)
		assert.Equal(t, "u1", response.User.ID)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, middleware.SessionCookieName, cookies[0].Name)
		assert.Equal(t, "tok-123", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.Positive(t, cookies[0].MaxAge)
	})

	t.Run("bad credentials are 401", func(t *testing.T) {
		router, mockService := newAuthRouter(t)
		mockService.EXPECT().Login(mock.Anything, "admin@example.com", "nope").Return(nil, nil, domain.ErrUnauthorized)

		w := postJSON(router, "/api/auth/login", `{"email":"admin@example.com","password":"nope"}`)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"invalid credentials"}`, w.Body.String())
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("store failure is 500", func(t *testing.T) {
		router, mockService := newAuthRouter(t)
		mockService.EXPECT().Login(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil, errors.New("db down"))

		w := postJSON(router, "/api/auth/login", `{"email":"admin@example.com","password":"x"}`)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	})
}

func TestAuthHandler_LogoutAndMe(t *testing.T) {
	t.Run("logout destroys the session and clears the cookie", func(t *testing.T) {
		router, mockService := newAuthRouter(t)
		mockService.EXPECT().Authenticate(mock.Anything, "tok-123").Return(&domain.User{ID: "u1"}, nil)
		mockService.EXPECT().Logout(mock.Anything, "tok-123").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "tok-123"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	})

	t.Run("me returns the bearer's user", func(t *testing.T) {
		router, mockService := newAuthRouter(t)
		mockService.EXPECT().Authenticate(mock.Anything, "tok-123").
			Return(&domain.User{ID: "u1", Name: "Admin User", Role: domain.RoleAdmin}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer tok-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Admin User"`)
	})

	t.Run("me is 401 when anonymous", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		w := get(router, "/api/auth/me")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("me is 401 with an expired session", func(t *testing.T) {
		router, mockService := newAuthRouter(t)
		mockService.EXPECT().Authenticate(mock.Anything, "stale").Return(nil, domain.ErrUnauthorized)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "stale"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
