package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elhoucineqara/saascompare/internal/logger"
	"github.com/elhoucineqara/saascompare/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID())

	var captured string
	router.GET("/test", func(c *gin.Context) {
		captured = middleware.GetRequestID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	requestID := w.Header().Get(middleware.RequestIDHeader)
	assert.Len(t, requestID, 36)
	assert.Equal(t, requestID, captured)
}

func TestRequestID_UsesClientProvidedID(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(middleware.RequestIDHeader, "client-provided-id-12345")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "client-provided-id-12345", w.Header().Get(middleware.RequestIDHeader))
}

func TestGetRequestID_ReturnsEmptyWhenNotSetOrWrongType(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, middleware.GetRequestID(c))

	c.Set(middleware.RequestIDKey, 12345)
	assert.Empty(t, middleware.GetRequestID(c))
}

func TestLogger_FallsBackToDefault(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Same(t, logger.Default(), middleware.Logger(c))
}

func TestAccessLog_LogsRequestWithID(t *testing.T) {
	var buf bytes.Buffer
	original := logger.Default()
	logger.SetLogger(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { logger.SetLogger(original) })

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.AccessLog())
	router.GET("/missing", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	router.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "/missing", entry["path"])
	assert.Equal(t, float64(404), entry["status"])
}
