package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/elhoucineqara/saascompare/internal/domain"
	"github.com/elhoucineqara/saascompare/internal/middleware"
)

// respondError maps a service error onto its HTTP status. Unexpected
// errors are logged under action and reported as a generic 500.
func respondError(c *gin.Context, err error, action string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		body := gin.H{"error": "validation failed"}
		if len(ve.Fields) > 0 {
			body["fields"] = ve.Fields
		} else if ve.Err != nil {
			body["error"] = ve.Error()
		}
		c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, domain.ErrSearchUnavailable):
		middleware.Logger(c).Error(action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search unavailable"})
	default:
		middleware.Logger(c).Error(action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindJSON decodes the request body into dst, answering 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}

// idParam returns the :id path parameter, answering 400 unless it is a UUID.
func idParam(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return "", false
	}
	return id, true
}

// limitQuery parses the optional ?limit= parameter. Zero means unset.
func limitQuery(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return 0, false
	}
	return limit, true
}
