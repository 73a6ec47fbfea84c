package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elhoucineqara/saascompare/internal/domain"
	"github.com/elhoucineqara/saascompare/internal/render"
	"github.com/elhoucineqara/saascompare/internal/service"
)

// CatalogHandler serves the public, read-only catalog pages.
type CatalogHandler struct {
	toolService       service.ToolServiceInterface
	categoryService   service.CategoryServiceInterface
	comparisonService service.ComparisonServiceInterface
	blogService       service.BlogServiceInterface
	markdown          *render.Markdown
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(
	toolService service.ToolServiceInterface,
	categoryService service.CategoryServiceInterface,
	comparisonService service.ComparisonServiceInterface,
	blogService service.BlogServiceInterface,
	markdown *render.Markdown,
) *CatalogHandler {
	return &CatalogHandler{
		toolService:       toolService,
		categoryService:   categoryService,
		comparisonService: comparisonService,
		blogService:       blogService,
		markdown:          markdown,
	}
}

// ToolDetailResponse is a tool page: the tool, its category and the
// rendered long review.
type ToolDetailResponse struct {
	domain.ToolWithCategory
	LongReviewHTML string `json:"longReviewHtml,omitempty"`
}

// ComparisonPageResponse is a head-to-head page with the rendered
// editorial content, when there is one.
type ComparisonPageResponse struct {
	domain.ComparisonView
	ContentHTML string `json:"contentHtml,omitempty"`
}

// BlogPostResponse is a blog post page with its rendered content.
type BlogPostResponse struct {
	domain.BlogPostWithAuthor
	ContentHTML string `json:"contentHtml"`
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategory handles GET /api/categories/:slug
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	page, err := h.categoryService.GetPage(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "Failed to get category")
		return
	}
	c.JSON(http.StatusOK, page)
}

// ListTools handles GET /api/tools?featured=true&category=<slug>&limit=<n>
func (h *CatalogHandler) ListTools(c *gin.Context) {
	limit, ok := limitQuery(c)
	if !ok {
		return
	}

	tools, err := h.toolService.List(c.Request.Context(), domain.ToolQuery{
		CategorySlug: c.Query("category"),
		FeaturedOnly: c.Query("featured") == "true",
		Limit:        limit,
	})
	if err != nil {
		respondError(c, err, "Failed to list tools")
		return
	}
	c.JSON(http.StatusOK, tools)
}

// GetTool handles GET /api/tools/:slug
func (h *CatalogHandler) GetTool(c *gin.Context) {
	tool, err := h.toolService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "Failed to get tool")
		return
	}

	html, err := h.markdown.Render(tool.LongReview)
	if err != nil {
		respondError(c, err, "Failed to render tool review")
		return
	}

	c.JSON(http.StatusOK, ToolDetailResponse{ToolWithCategory: *tool, LongReviewHTML: html})
}

// Compare handles GET /api/compare/:slug
func (h *CatalogHandler) Compare(c *gin.Context) {
	view, err := h.comparisonService.Compare(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "Failed to build comparison")
		return
	}

	response := ComparisonPageResponse{ComparisonView: *view}
	if view.Comparison != nil {
		response.ContentHTML, err = h.markdown.Render(view.Comparison.Content)
		if err != nil {
			respondError(c, err, "Failed to render comparison")
			return
		}
	}

	c.JSON(http.StatusOK, response)
}

// ListBlogPosts handles GET /api/blog?limit=<n>
func (h *CatalogHandler) ListBlogPosts(c *gin.Context) {
	limit, ok := limitQuery(c)
	if !ok {
		return
	}

	posts, err := h.blogService.ListPublished(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err, "Failed to list blog posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetBlogPost handles GET /api/blog/:slug
func (h *CatalogHandler) GetBlogPost(c *gin.Context) {
	post, err := h.blogService.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "Failed to get blog post")
		return
	}

	html, err := h.markdown.Render(post.Content)
	if err != nil {
		respondError(c, err, "Failed to render blog post")
		return
	}

	c.JSON(http.StatusOK, BlogPostResponse{BlogPostWithAuthor: *post, ContentHTML: html})
}
