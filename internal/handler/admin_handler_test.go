package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/elhoucineqara/saascompare/internal/domain"
	"github.com/elhoucineqara/saascompare/internal/middleware"
	"github.com/elhoucineqara/saascompare/internal/mocks"
)

// tokenAuthenticator maps fixed tokens to users.
type tokenAuthenticator map[string]*domain.User

func (a tokenAuthenticator) Authenticate(_ context.Context, token string) (*domain.User, error) {
	if u, ok := a[token]; ok {
		return u, nil
	}
	return nil, domain.ErrUnauthorized
}

var (
	adminUser   = &domain.User{ID: "admin-id", Name: "Admin User", Role: domain.RoleAdmin}
	regularUser = &domain.User{ID: "user-id", Name: "Regular User", Role: domain.RoleUser}
)

type adminMocks struct {
	tools       *mocks.MockToolServiceInterface
	categories  *mocks.MockCategoryServiceInterface
	comparisons *mocks.MockComparisonServiceInterface
	blog        *mocks.MockBlogServiceInterface
}

func newAdminRouter(t *testing.T) (*gin.Engine, adminMocks) {
	m := adminMocks{
		tools:       mocks.NewMockToolServiceInterface(t),
		categories:  mocks.NewMockCategoryServiceInterface(t),
		comparisons: mocks.NewMockComparisonServiceInterface(t),
		blog:        mocks.NewMockBlogServiceInterface(t),
	}
	h := NewAdminHandler(m.tools, m.categories, m.comparisons, m.blog)

	router := gin.New()
	router.Use(middleware.Authenticate(tokenAuthenticator{"admin": adminUser, "user": regularUser}))
	admin := router.Group("/api/admin", middleware.RequireRole(domain.RoleAdmin))
	{
		admin.GET("/tools", h.ListTools)
		admin.POST("/tools", h.CreateTool)
		admin.GET("/tools/:id", h.GetTool)
		admin.PUT("/tools/:id", h.UpdateTool)
		admin.DELETE("/tools/:id", h.DeleteTool)

		admin.GET("/categories", h.ListCategories)
		admin.POST("/categories", h.CreateCategory)
		admin.GET("/categories/:id", h.GetCategory)
		admin.PUT("/categories/:id", h.UpdateCategory)
		admin.DELETE("/categories/:id", h.DeleteCategory)

		admin.GET("/comparisons", h.ListComparisons)
		admin.POST("/comparisons", h.CreateComparison)
		admin.GET("/comparisons/:id", h.GetComparison)
		admin.PUT("/comparisons/:id", h.UpdateComparison)
		admin.DELETE("/comparisons/:id", h.DeleteComparison)

		admin.GET("/blog", h.ListBlogPosts)
		admin.POST("/blog", h.CreateBlogPost)
		admin.GET("/blog/:id", h.GetBlogPost)
		admin.PUT("/blog/:id", h.UpdateBlogPost)
		admin.PATCH("/blog/:id", h.UpdateBlogPost)
		admin.DELETE("/blog/:id", h.DeleteBlogPost)
	}
	return router, m
}

func adminRequest(router *gin.Engine, token, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAdminHandler_Guards(t *testing.T) {
	router, _ := newAdminRouter(t)

	t.Run("anonymous is 401", func(t *testing.T) {
		w := adminRequest(router, "", http.MethodGet, "/api/admin/tools", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-admin is 403", func(t *testing.T) {
		w := adminRequest(router, "user", http.MethodPost, "/api/admin/categories", `{"name":"X"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("malformed id is 400", func(t *testing.T) {
		w := adminRequest(router, "admin", http.MethodGet, "/api/admin/tools/not-a-uuid", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "id must be a valid UUID")
	})
}

func TestAdminHandler_Tools(t *testing.T) {
	id := uuid.New().String()

	t.Run("lists tools with categories", func(t *testing.T) {
		router, m := newAdminRouter(t)
		m.tools.EXPECT().ListWithCategories(mock.Anything).Return([]domain.ToolWithCategory{
			{Tool: domain.Tool{ID: id, Name: "HubSpot"}, Category: &domain.Category{Name: "Sales"}},
		}, nil)

		w := adminRequest(router, "admin", http.MethodGet, "/api/admin/tools", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Sales"`)
	})

	t.Run("creates tool", func(t *testing.T) {
		router, m := newAdminRouter(t)
		m.tools.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.ToolInput) bool {
			return in.Name == "Notion" && in.IsFeatured && len(in.Pros) == 1
		})).Return(&domain.Tool{ID: id, Name: "Notion", Slug: "notion"}, nil)

		w := adminRequest(router, "admin", http.MethodPost, "/api/admin/tools",
			`{"name":"Notion","isFeatured":true,"pros":["Versatile"],"categoryId":"c1"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"slug":"notion"`)
	})

	t.Run("duplicate slug is 409", func(t *testing.T) {
		router, m := newAdminRouter(t)
		m.tools.EXPECT().Create(mock.Anything, mock.Anything).
			Return(nil, domain.ConflictError("tool", "slug", "notion"))

		w := adminRequest(router, "admin", http.MethodPost, "/api/admin/tools", `{"name":"Notion"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("update of missing tool is 404", func(t *testing.T) {
		router, m := newAdminRouter(t)
		m.tools.EXPECT().Update(mock.Anything, id, mock.Anything).Return(nil, domain.NotFoundError("tool", id))

		w := adminRequest(router, "admin", http.MethodPut, "/api/admin/tools/"+id, `{"name":"Notion"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete of referenced tool is 409", func(t *testing.T) {
		router, m := newAdminRouter(t)
		m.tools.EXPECT().Delete(mock.Anything, id).Return(domain.ErrConflict)

		w := adminRequest(router, "admin", http.MethodDelete, "/api/admin/tools/"+id, "")

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("gets and deletes tool", func(t *testing.T) {
		router, m := newAdminRouter(t)
		m.tools.EXPECT().GetByID(mock.Anything, id).Return(&domain.Tool{ID: id}, nil)
		m.tools.EXPECT().Delete(mock.Anything, id).Return(nil)

		w := adminRequest(router, "admin", http.MethodGet, "/api/admin/tools/"+id, "")
		require.Equal(t, http.StatusOK, w.Code)

		w = adminRequest(router, "admin", http.MethodDelete, "/api/admin/tools/"+id, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"tool deleted"}`, w.Body.String())
	})
}

func TestAdminHandler_Categories(t *testing.T) {
	id := uuid.New().String()

	t.Run("creates category", func(t *testing.T) {
		router, m := newAdminRouter(t)
		m.categories.EXPECT().Create(mock.Anything, domain.CategoryInput{Name: "AI Tools"}).
			Return(&domain.Category{ID: id, Name: "AI Tools", Slug: "ai-tools"}, nil)

		w := adminRequest(router, "admin", http.MethodPost, "/api/admin/categories", `{"name":"AI Tools"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("updates category", func(t *testing.T) {
		router, m := newAdminRouter(t)
		m.categories.EXPECT().Update(mock.Anything, id, domain.CategoryInput{Name: "AI", Slug: "ai-tools"}).
			Return(&domain.Category{ID: id, Name: "AI"}, nil)

		w := adminRequest(router, "admin", http.MethodPut, "/api/admin/categories/"+id, `{"name":"AI","slug":"ai-tools"}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("delete of category with tools is 409", func(t *testing.T) {
		router, m := newAdminRouter(t)
		m.categories.EXPECT().Delete(mock.Anything, id).Return(domain.ErrConflict)

		w := adminRequest(router, "admin", http.MethodDelete, "/api/admin/categories/"+id, "")

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAdminHandler_Comparisons(t *testing.T) {
	t.Run("wrong tool count is 400 with field code", func(t *testing.T) {
		router, m := newAdminRouter(t)
		m.comparisons.EXPECT().Create(mock.Anything, domain.ComparisonInput{ToolIDs: []string{"a"}}).
			Return(nil, domain.NewValidationError("ids", "exactly_two_tools_required"))

		w := adminRequest(router, "admin", http.MethodPost, "/api/admin/comparisons", `{"ids":["a"]}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"validation failed","fields":{"ids":"exactly_two_tools_required"}}`, w.Body.String())
	})

	t.Run("lists comparisons", func(t *testing.T) {
		router, m := newAdminRouter(t)
		m.comparisons.EXPECT().List(mock.Anything).Return([]domain.Comparison{{Slug: "notion-vs-clickup"}}, nil)

		w := adminRequest(router, "admin", http.MethodGet, "/api/admin/comparisons", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "notion-vs-clickup")
	})
}

func TestAdminHandler_Blog(t *testing.T) {
	id := uuid.New().String()

	t.Run("caller becomes the author", func(t *testing.T) {
		router, m := newAdminRouter(t)
		m.blog.EXPECT().Create(mock.Anything, "admin-id", domain.BlogPostInput{Title: "Hello", Content: "Body", Published: true}).
			Return(&domain.BlogPost{ID: id, AuthorID: "admin-id"}, nil)

		w := adminRequest(router, "admin", http.MethodPost, "/api/admin/blog",
			`{"title":"Hello","content":"Body","published":true}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("patch carries only present fields", func(t *testing.T) {
		router, m := newAdminRouter(t)
		m.blog.EXPECT().Update(mock.Anything, id, mock.MatchedBy(func(p domain.BlogPostPatch) bool {
			return p.Published != nil && *p.Published && p.Title == nil && p.Content == nil
		})).Return(&domain.BlogPost{ID: id, Published: true}, nil)

		w := adminRequest(router, "admin", http.MethodPatch, "/api/admin/blog/"+id, `{"published":true}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("put is partial too", func(t *testing.T) {
		router, m := newAdminRouter(t)
		m.blog.EXPECT().Update(mock.Anything, id, mock.MatchedBy(func(p domain.BlogPostPatch) bool {
			return p.Title != nil && *p.Title == "New" && p.Published == nil
		})).Return(&domain.BlogPost{ID: id, Title: "New"}, nil)

		w := adminRequest(router, "admin", http.MethodPut, "/api/admin/blog/"+id, `{"title":"New"}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("lists drafts too", func(t *testing.T) {
		router, m := newAdminRouter(t)
		m.blog.EXPECT().ListAll(mock.Anything).Return([]domain.BlogPostWithAuthor{
			{BlogPost: domain.BlogPost{Slug: "draft"}},
		}, nil)

		w := adminRequest(router, "admin", http.MethodGet, "/api/admin/blog", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"published":false`)
	})
}
