package service

import (
	"context"

	"github.com/elhoucineqara/saascompare/internal/domain"
)

// SearchServiceInterface defines the typeahead search operation.
// Used for dependency injection and mocking in tests.
type SearchServiceInterface interface {
	// Search returns suggestions of every entity type matching query.
	Search(ctx context.Context, query string) (*domain.SearchResult, error)
}

// ToolServiceInterface defines tool catalog operations.
type ToolServiceInterface interface {
	List(ctx context.Context, query domain.ToolQuery) ([]domain.Tool, error)
	ListWithCategories(ctx context.Context) ([]domain.ToolWithCategory, error)
	GetBySlug(ctx context.Context, slug string) (*domain.ToolWithCategory, error)
	GetByID(ctx context.Context, id string) (*domain.Tool, error)
	Create(ctx context.Context, in domain.ToolInput) (*domain.Tool, error)
	Update(ctx context.Context, id string, in domain.ToolInput) (*domain.Tool, error)
	Delete(ctx context.Context, id string) error
}

// CategoryServiceInterface defines category operations.
type CategoryServiceInterface interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetPage(ctx context.Context, slug string) (*domain.CategoryWithTools, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, in domain.CategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id string, in domain.CategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// ComparisonServiceInterface defines comparison operations.
type ComparisonServiceInterface interface {
	// Compare resolves an "a-vs-b" slug into both tools and, when one exists,
	// the editorial comparison published under that slug.
	Compare(ctx context.Context, slug string) (*domain.ComparisonView, error)
	List(ctx context.Context) ([]domain.Comparison, error)
	GetByID(ctx context.Context, id string) (*domain.Comparison, error)
	Create(ctx context.Context, in domain.ComparisonInput) (*domain.Comparison, error)
	Update(ctx context.Context, id string, in domain.ComparisonInput) (*domain.Comparison, error)
	Delete(ctx context.Context, id string) error
}

// BlogServiceInterface defines blog operations.
type BlogServiceInterface interface {
	ListPublished(ctx context.Context, limit int) ([]domain.BlogPostWithAuthor, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*domain.BlogPostWithAuthor, error)
	ListAll(ctx context.Context) ([]domain.BlogPostWithAuthor, error)
	GetByID(ctx context.Context, id string) (*domain.BlogPost, error)
	Create(ctx context.Context, authorID string, in domain.BlogPostInput) (*domain.BlogPost, error)
	Update(ctx context.Context, id string, patch domain.BlogPostPatch) (*domain.BlogPost, error)
	Delete(ctx context.Context, id string) error
}

// AuthServiceInterface defines account and session operations.
type AuthServiceInterface interface {
	Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.Session, *domain.User, error)
	Logout(ctx context.Context, token string) error
	// Authenticate resolves a session token. Unknown and expired tokens
	// yield domain.ErrUnauthorized.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
