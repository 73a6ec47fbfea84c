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

// ComparisonService handles head-to-head comparison operations.
type ComparisonService struct {
	comparisonRepo repository.ComparisonRepository
	toolRepo       repository.ToolRepository
	validator      *validator.Validator
}

// NewComparisonService creates a new ComparisonService.
func NewComparisonService(
	comparisonRepo repository.ComparisonRepository,
	toolRepo repository.ToolRepository,
	v *validator.Validator,
) *ComparisonService {
	return &ComparisonService{
		comparisonRepo: comparisonRepo,
		toolRepo:       toolRepo,
		validator:      v,
	}
}

// Compare resolves "a-vs-b" into both tools plus the editorial comparison
// stored under the same slug, if any.
func (s *ComparisonService) Compare(ctx context.Context, slug string) (*domain.ComparisonView, error) {
	first, second, ok := domain.SplitComparisonSlug(slug)
	if !ok {
		return nil, domain.NotFoundError("comparison", slug)
	}

	view := &domain.ComparisonView{Slug: slug}
	for i, toolSlug := range []string{first, second} {
		tool, err := s.toolRepo.GetBySlug(ctx, toolSlug)
		if err != nil {
			return nil, fmt.Errorf("get tool: %w", err)
		}
		if tool == nil {
			return nil, domain.NotFoundError("tool", toolSlug)
		}
		view.Tools[i] = *tool
	}

	comparison, err := s.comparisonRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get comparison: %w", err)
	}
	view.Comparison = comparison
	return view, nil
}

// List returns all comparisons, newest first.
func (s *ComparisonService) List(ctx context.Context) ([]domain.Comparison, error) {
	return s.comparisonRepo.List(ctx)
}

// GetByID returns a comparison by ID.
func (s *ComparisonService) GetByID(ctx context.Context, id string) (*domain.Comparison, error) {
	comparison, err := s.comparisonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get comparison: %w", err)
	}
	if comparison == nil {
		return nil, domain.NotFoundError("comparison", id)
	}
	return comparison, nil
}

// Create validates and stores a new comparison of two distinct, existing tools.
// Without an explicit slug or title, both are derived from the tools.
func (s *ComparisonService) Create(ctx context.Context, in domain.ComparisonInput) (*domain.Comparison, error) {
	ts := now()
	comparison, err := s.fromInput(ctx, in)
	if err != nil {
		return nil, err
	}
	comparison.ID = uuid.New().String()
	comparison.CreatedAt = ts
	comparison.UpdatedAt = ts

	if err := s.comparisonRepo.Create(ctx, comparison); err != nil {
		return nil, err
	}

	metrics.RecordContentMutation("comparison", "create")
	logger.InfoContext(ctx, "Comparison created",
		slog.String("comparison_id", comparison.ID),
		slog.String("slug", comparison.Slug))
	return comparison, nil
}

// Update replaces the writable fields of an existing comparison.
func (s *ComparisonService) Update(ctx context.Context, id string, in domain.ComparisonInput) (*domain.Comparison, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comparison, err := s.fromInput(ctx, in)
	if err != nil {
		return nil, err
	}
	comparison.ID = existing.ID
	comparison.CreatedAt = existing.CreatedAt
	comparison.UpdatedAt = now()

	if err := s.comparisonRepo.Update(ctx, comparison); err != nil {
		return nil, err
	}

	metrics.RecordContentMutation("comparison", "update")
	return comparison, nil
}

// Delete removes a comparison.
func (s *ComparisonService) Delete(ctx context.Context, id string) error {
	if err := s.comparisonRepo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.RecordContentMutation("comparison", "delete")
	logger.InfoContext(ctx, "Comparison deleted", slog.String("comparison_id", id))
	return nil
}

// fromInput builds a validated comparison, resolving both tools.
func (s *ComparisonService) fromInput(ctx context.Context, in domain.ComparisonInput) (*domain.Comparison, error) {
	comparison := &domain.Comparison{
		ToolIDs: cleanList(in.ToolIDs),
		Slug:    strings.TrimSpace(in.Slug),
		Title:   strings.TrimSpace(in.Title),
		Verdict: strings.TrimSpace(in.Verdict),
		Content: in.Content,
	}

	// Shape first so tool lookups only run for exactly two distinct ids.
	if len(comparison.ToolIDs) != domain.ComparisonToolCount {
		return nil, domain.NewValidationError("ids", "exactly_two_tools_required")
	}
	if comparison.ToolIDs[0] == comparison.ToolIDs[1] {
		return nil, domain.NewValidationError("ids", "tools_must_differ")
	}

	tools := make([]*domain.Tool, 0, domain.ComparisonToolCount)
	for _, id := range comparison.ToolIDs {
		tool, err := s.toolRepo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get tool: %w", err)
		}
		if tool == nil {
			return nil, domain.NewValidationError("ids", "unknown_tool")
		}
		tools = append(tools, tool)
	}

	if comparison.Slug == "" {
		comparison.Slug = tools[0].Slug + domain.ComparisonSlugSeparator + tools[1].Slug
	}
	if comparison.Title == "" {
		comparison.Title = tools[0].Name + " vs " + tools[1].Name
	}

	if err := s.validator.ValidateComparison(comparison); err != nil {
		return nil, err
	}
	return comparison, nil
}
