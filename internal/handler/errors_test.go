package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/elhoucineqara/saascompare/internal/domain"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"validation", domain.NewValidationError("slug", "invalid_slug_format"), http.StatusBadRequest, `"fields":{"slug":"invalid_slug_format"}`},
		{"wrapped not found", fmt.Errorf("get: %w", domain.NotFoundError("tool", "x")), http.StatusNotFound, `not found`},
		{"conflict", domain.ConflictError("category", "slug", "crm"), http.StatusConflict, `already exists`},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, `"unauthorized"`},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, `"forbidden"`},
		{"search unavailable", fmt.Errorf("%w: boom", domain.ErrSearchUnavailable), http.StatusInternalServerError, `"search unavailable"`},
		{"unexpected", errors.New("pq: relation missing"), http.StatusInternalServerError, `"internal server error"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tt.err, "test action")

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
			assert.NotContains(t, w.Body.String(), "pq:")
		})
	}
}
