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

// ToolService handles tool catalog operations.
type ToolService struct {
	toolRepo       repository.ToolRepository
	categoryRepo   repository.CategoryRepository
	comparisonRepo repository.ComparisonRepository
	validator      *validator.Validator
}

// NewToolService creates a new ToolService.
func NewToolService(
	toolRepo repository.ToolRepository,
	categoryRepo repository.CategoryRepository,
	comparisonRepo repository.ComparisonRepository,
	v *validator.Validator,
) *ToolService {
	return &ToolService{
		toolRepo:       toolRepo,
		categoryRepo:   categoryRepo,
		comparisonRepo: comparisonRepo,
		validator:      v,
	}
}

// List returns the public tool listing, featured tools first.
func (s *ToolService) List(ctx context.Context, query domain.ToolQuery) ([]domain.Tool, error) {
	filter := domain.ToolFilter{
		FeaturedOnly: query.FeaturedOnly,
		OrderByRank:  true,
		Limit:        clampLimit(query.Limit, MaxListLimit),
	}

	if query.CategorySlug != "" {
		category, err := s.categoryRepo.GetBySlug(ctx, query.CategorySlug)
		if err != nil {
			return nil, fmt.Errorf("get category: %w", err)
		}
		if category == nil {
			return nil, domain.NotFoundError("category", query.CategorySlug)
		}
		filter.CategoryID = category.ID
	}

	return s.toolRepo.List(ctx, filter)
}

// ListWithCategories returns every tool, newest first, with its category attached.
func (s *ToolService) ListWithCategories(ctx context.Context) ([]domain.ToolWithCategory, error) {
	tools, err := s.toolRepo.List(ctx, domain.ToolFilter{})
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Category, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}

	out := make([]domain.ToolWithCategory, 0, len(tools))
	for _, t := range tools {
		out = append(out, domain.ToolWithCategory{Tool: t, Category: byID[t.CategoryID]})
	}
	return out, nil
}

// GetBySlug returns a tool and its category.
func (s *ToolService) GetBySlug(ctx context.Context, slug string) (*domain.ToolWithCategory, error) {
	tool, err := s.toolRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get tool: %w", err)
	}
	if tool == nil {
		return nil, domain.NotFoundError("tool", slug)
	}

	category, err := s.categoryRepo.GetByID(ctx, tool.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &domain.ToolWithCategory{Tool: *tool, Category: category}, nil
}

// GetByID returns a tool by ID.
func (s *ToolService) GetByID(ctx context.Context, id string) (*domain.Tool, error) {
	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tool: %w", err)
	}
	if tool == nil {
		return nil, domain.NotFoundError("tool", id)
	}
	return tool, nil
}

// Create validates and stores a new tool. The slug is derived from the
// name when omitted.
func (s *ToolService) Create(ctx context.Context, in domain.ToolInput) (*domain.Tool, error) {
	ts := now()
	tool := toolFromInput(in)
	tool.ID = uuid.New().String()
	tool.CreatedAt = ts
	tool.UpdatedAt = ts

	if err := s.check(ctx, tool); err != nil {
		return nil, err
	}
	if err := s.toolRepo.Create(ctx, tool); err != nil {
		return nil, err
	}

	metrics.RecordContentMutation("tool", "create")
	logger.InfoContext(ctx, "Tool created",
		slog.String("tool_id", tool.ID),
		slog.String("slug", tool.Slug))
	return tool, nil
}

// Update replaces every writable field of an existing tool.
func (s *ToolService) Update(ctx context.Context, id string, in domain.ToolInput) (*domain.Tool, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tool := toolFromInput(in)
	tool.ID = existing.ID
	tool.CreatedAt = existing.CreatedAt
	tool.UpdatedAt = now()

	if err := s.check(ctx, tool); err != nil {
		return nil, err
	}
	if err := s.toolRepo.Update(ctx, tool); err != nil {
		return nil, err
	}

	metrics.RecordContentMutation("tool", "update")
	return tool, nil
}

// Delete removes a tool that no comparison references.
func (s *ToolService) Delete(ctx context.Context, id string) error {
	n, err := s.comparisonRepo.CountByTool(ctx, id)
	if err != nil {
		return fmt.Errorf("count comparisons: %w", err)
	}
	if n > 0 {
		return fmt.Errorf("%w: tool is used by %d comparison(s)", domain.ErrConflict, n)
	}

	if err := s.toolRepo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.RecordContentMutation("tool", "delete")
	logger.InfoContext(ctx, "Tool deleted", slog.String("tool_id", id))
	return nil
}

// check validates the tool and that its category exists.
func (s *ToolService) check(ctx context.Context, tool *domain.Tool) error {
	if err := s.validator.ValidateTool(tool); err != nil {
		return err
	}
	category, err := s.categoryRepo.GetByID(ctx, tool.CategoryID)
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return domain.NewValidationError("categoryId", "unknown_category")
	}
	return nil
}

func toolFromInput(in domain.ToolInput) *domain.Tool {
	name := strings.TrimSpace(in.Name)
	pricing := in.PricingModel
	if pricing == "" {
		pricing = domain.PricingFreemium
	}
	return &domain.Tool{
		Name:             name,
		Slug:             slugOr(in.Slug, name),
		LogoURL:          strings.TrimSpace(in.LogoURL),
		WebsiteURL:       strings.TrimSpace(in.WebsiteURL),
		AffiliateLink:    strings.TrimSpace(in.AffiliateLink),
		ShortDescription: strings.TrimSpace(in.ShortDescription),
		LongReview:       in.LongReview,
		Pros:             cleanList(in.Pros),
		Cons:             cleanList(in.Cons),
		Features:         cleanList(in.Features),
		CategoryID:       strings.TrimSpace(in.CategoryID),
		PricingModel:     pricing,
		StartingPrice:    in.StartingPrice,
		IsFeatured:       in.IsFeatured,
		AverageRating:    in.AverageRating,
		ReviewCount:      in.ReviewCount,
	}
}
