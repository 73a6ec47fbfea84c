package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/elhoucineqara/saascompare/internal/domain"
	"github.com/elhoucineqara/saascompare/internal/logger"
	"github.com/elhoucineqara/saascompare/internal/metrics"
	"github.com/elhoucineqara/saascompare/internal/repository"
	"github.com/elhoucineqara/saascompare/internal/validator"
)

// CategoryService handles category operations.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	toolRepo     repository.ToolRepository
	validator    *validator.Validator
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	toolRepo repository.ToolRepository,
	v *validator.Validator,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		toolRepo:     toolRepo,
		validator:    v,
	}
}

// List returns all categories ordered by name.
func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.List(ctx)
}

// GetPage returns a category with its tools, featured first, then by rating.
func (s *CategoryService) GetPage(ctx context.Context, slug string) (*domain.CategoryWithTools, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, domain.NotFoundError("category", slug)
	}

	tools, err := s.toolRepo.List(ctx, domain.ToolFilter{CategoryID: category.ID, OrderByRank: true})
	if err != nil {
		return nil, fmt.Errorf("list category tools: %w", err)
	}
	return &domain.CategoryWithTools{Category: *category, Tools: tools}, nil
}

// GetByID returns a category by ID.
func (s *CategoryService) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, domain.NotFoundError("category", id)
	}
	return category, nil
}

// Create validates and stores a new category.
func (s *CategoryService) Create(ctx context.Context, in domain.CategoryInput) (*domain.Category, error) {
	ts := now()
	category := categoryFromInput(in)
	category.ID = uuid.New().String()
	category.CreatedAt = ts
	category.UpdatedAt = ts

	if err := s.validator.ValidateCategory(category); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	metrics.RecordContentMutation("category", "create")
	logger.InfoContext(ctx, "Category created",
		slog.String("category_id", category.ID),
		slog.String("slug", category.Slug))
	return category, nil
}

// Update replaces the writable fields of an existing category.
func (s *CategoryService) Update(ctx context.Context, id string, in domain.CategoryInput) (*domain.Category, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category := categoryFromInput(in)
	category.ID = existing.ID
	category.CreatedAt = existing.CreatedAt
	category.UpdatedAt = now()

	if err := s.validator.ValidateCategory(category); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	metrics.RecordContentMutation("category", "update")
	return category, nil
}

// Delete removes a category that owns no tools.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	n, err := s.toolRepo.CountByCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("count tools: %w", err)
	}
	if n > 0 {
		return fmt.Errorf("%w: category still has %d tool(s)", domain.ErrConflict, n)
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.RecordContentMutation("category", "delete")
	logger.InfoContext(ctx, "Category deleted", slog.String("category_id", id))
	return nil
}

func categoryFromInput(in domain.CategoryInput) *domain.Category {
	name := strings.TrimSpace(in.Name)
	return &domain.Category{
		Name:        name,
		Slug:        slugOr(in.Slug, name),
		Description: strings.TrimSpace(in.Description),
	}
}
