package repository

import (
	"context"
	"time"

	"github.com/elhoucineqara/saascompare/internal/domain"
)

// Get methods return (nil, nil) when the record does not exist. Update and
// Delete return domain.ErrNotFound in that case. Create and Update return
// domain.ErrConflict on unique-field collisions.

// ToolRepository defines methods for tool data access.
type ToolRepository interface {
	Create(ctx context.Context, tool *domain.Tool) error
	GetByID(ctx context.Context, id string) (*domain.Tool, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tool, error)
	List(ctx context.Context, filter domain.ToolFilter) ([]domain.Tool, error)
	Update(ctx context.Context, tool *domain.Tool) error
	Delete(ctx context.Context, id string) error
	CountByCategory(ctx context.Context, categoryID string) (int64, error)
	Search(ctx context.Context, query string, limit int) ([]domain.ToolSuggestion, error)
}

// CategoryRepository defines methods for category data access.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	// List returns all categories ordered by name.
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string, limit int) ([]domain.CategorySuggestion, error)
}

// ComparisonRepository defines methods for comparison data access.
type ComparisonRepository interface {
	Create(ctx context.Context, comparison *domain.Comparison) error
	GetByID(ctx context.Context, id string) (*domain.Comparison, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Comparison, error)
	// List returns all comparisons, newest first.
	List(ctx context.Context) ([]domain.Comparison, error)
	Update(ctx context.Context, comparison *domain.Comparison) error
	Delete(ctx context.Context, id string) error
	CountByTool(ctx context.Context, toolID string) (int64, error)
	Search(ctx context.Context, query string, limit int) ([]domain.ComparisonSuggestion, error)
}

// BlogPostRepository defines methods for blog post data access.
type BlogPostRepository interface {
	Create(ctx context.Context, post *domain.BlogPost) error
	GetByID(ctx context.Context, id string) (*domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	List(ctx context.Context, filter domain.BlogPostFilter) ([]domain.BlogPost, error)
	Update(ctx context.Context, post *domain.BlogPost) error
	Delete(ctx context.Context, id string) error
}

// UserRepository defines methods for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// SessionRepository defines methods for login session data access.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Resetter wipes every collection of a store. Used by the seed command.
type Resetter interface {
	Reset(ctx context.Context) error
}

// Repositories bundles the repositories of one storage backend.
type Repositories struct {
	Tools       ToolRepository
	Categories  CategoryRepository
	Comparisons ComparisonRepository
	BlogPosts   BlogPostRepository
	Users       UserRepository
	Sessions    SessionRepository
	Store       Resetter
}
