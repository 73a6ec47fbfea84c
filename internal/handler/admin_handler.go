package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elhoucineqara/saascompare/internal/domain"
	"github.com/elhoucineqara/saascompare/internal/middleware"
	"github.com/elhoucineqara/saascompare/internal/service"
)

// AdminHandler serves content management for admins. Routes are expected
// behind middleware.RequireRole(domain.RoleAdmin).
type AdminHandler struct {
	toolService       service.ToolServiceInterface
	categoryService   service.CategoryServiceInterface
	comparisonService service.ComparisonServiceInterface
	blogService       service.BlogServiceInterface
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	toolService service.ToolServiceInterface,
	categoryService service.CategoryServiceInterface,
	comparisonService service.ComparisonServiceInterface,
	blogService service.BlogServiceInterface,
) *AdminHandler {
	return &AdminHandler{
		toolService:       toolService,
		categoryService:   categoryService,
		comparisonService: comparisonService,
		blogService:       blogService,
	}
}

// ListTools handles GET /api/admin/tools
func (h *AdminHandler) ListTools(c *gin.Context) {
	tools, err := h.toolService.ListWithCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list tools")
		return
	}
	c.JSON(http.StatusOK, tools)
}

// CreateTool handles POST /api/admin/tools
func (h *AdminHandler) CreateTool(c *gin.Context) {
	var in domain.ToolInput
	if !bindJSON(c, &in) {
		return
	}

	tool, err := h.toolService.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "Failed to create tool")
		return
	}
	c.JSON(http.StatusCreated, tool)
}

// GetTool handles GET /api/admin/tools/:id
func (h *AdminHandler) GetTool(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	tool, err := h.toolService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get tool")
		return
	}
	c.JSON(http.StatusOK, tool)
}

// UpdateTool handles PUT /api/admin/tools/:id
func (h *AdminHandler) UpdateTool(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in domain.ToolInput
	if !bindJSON(c, &in) {
		return
	}

	tool, err := h.toolService.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err, "Failed to update tool")
		return
	}
	c.JSON(http.StatusOK, tool)
}

// DeleteTool handles DELETE /api/admin/tools/:id
func (h *AdminHandler) DeleteTool(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.toolService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete tool")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tool deleted"})
}

// ListCategories handles GET /api/admin/categories
func (h *AdminHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory handles POST /api/admin/categories
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var in domain.CategoryInput
	if !bindJSON(c, &in) {
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

// GetCategory handles GET /api/admin/categories/:id
func (h *AdminHandler) GetCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// UpdateCategory handles PUT /api/admin/categories/:id
func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in domain.CategoryInput
	if !bindJSON(c, &in) {
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err, "Failed to update category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/admin/categories/:id
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete category")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

// ListComparisons handles GET /api/admin/comparisons
func (h *AdminHandler) ListComparisons(c *gin.Context) {
	comparisons, err := h.comparisonService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list comparisons")
		return
	}
	c.JSON(http.StatusOK, comparisons)
}

// CreateComparison handles POST /api/admin/comparisons
func (h *AdminHandler) CreateComparison(c *gin.Context) {
	var in domain.ComparisonInput
	if !bindJSON(c, &in) {
		return
	}

	comparison, err := h.comparisonService.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "Failed to create comparison")
		return
	}
	c.JSON(http.StatusCreated, comparison)
}

// GetComparison handles GET /api/admin/comparisons/:id
func (h *AdminHandler) GetComparison(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	comparison, err := h.comparisonService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get comparison")
		return
	}
	c.JSON(http.StatusOK, comparison)
}

// UpdateComparison handles PUT /api/admin/comparisons/:id
func (h *AdminHandler) UpdateComparison(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in domain.ComparisonInput
	if !bindJSON(c, &in) {
		return
	}

	comparison, err := h.comparisonService.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err, "Failed to update comparison")
		return
	}
	c.JSON(http.StatusOK, comparison)
}

// DeleteComparison handles DELETE /api/admin/comparisons/:id
func (h *AdminHandler) DeleteComparison(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.comparisonService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete comparison")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comparison deleted"})
}

// ListBlogPosts handles GET /api/admin/blog
func (h *AdminHandler) ListBlogPosts(c *gin.Context) {
	posts, err := h.blogService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list blog posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// CreateBlogPost handles POST /api/admin/blog. The caller becomes the author.
func (h *AdminHandler) CreateBlogPost(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var in domain.BlogPostInput
	if !bindJSON(c, &in) {
		return
	}

	post, err := h.blogService.Create(c.Request.Context(), user.ID, in)
	if err != nil {
		respondError(c, err, "Failed to create blog post")
		return
	}
	c.JSON(http.StatusCreated, post)
}

// GetBlogPost handles GET /api/admin/blog/:id
func (h *AdminHandler) GetBlogPost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	post, err := h.blogService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get blog post")
		return
	}
	c.JSON(http.StatusOK, post)
}

// UpdateBlogPost handles PUT and PATCH /api/admin/blog/:id. Both are partial.
func (h *AdminHandler) UpdateBlogPost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch domain.BlogPostPatch
	if !bindJSON(c, &patch) {
		return
	}

	post, err := h.blogService.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err, "Failed to update blog post")
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeleteBlogPost handles DELETE /api/admin/blog/:id
func (h *AdminHandler) DeleteBlogPost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.blogService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete blog post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "blog post deleted"})
}
