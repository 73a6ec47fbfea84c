package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/elhoucineqara/saascompare/internal/domain"
	"github.com/elhoucineqara/saascompare/internal/logger"
	"github.com/elhoucineqara/saascompare/internal/metrics"
	"github.com/elhoucineqara/saascompare/internal/repository"
)

// MinQueryLength is the shortest trimmed query, in runes, that triggers lookups.
const MinQueryLength = 2

// SearchLimits caps the number of suggestions returned per entity type.
type SearchLimits struct {
	Tools       int
	Categories  int
	Comparisons int
}

// DefaultSearchLimits returns the standard caps: 5 tools, 3 categories, 3 comparisons.
func DefaultSearchLimits() SearchLimits {
	return SearchLimits{Tools: 5, Categories: 3, Comparisons: 3}
}

// SearchService fans a typeahead query out to every searchable entity.
type SearchService struct {
	toolRepo       repository.ToolRepository
	categoryRepo   repository.CategoryRepository
	comparisonRepo repository.ComparisonRepository
	limits         SearchLimits
}

// NewSearchService creates a new SearchService.
func NewSearchService(
	toolRepo repository.ToolRepository,
	categoryRepo repository.CategoryRepository,
	comparisonRepo repository.ComparisonRepository,
	limits SearchLimits,
) *SearchService {
	return &SearchService{
		toolRepo:       toolRepo,
		categoryRepo:   categoryRepo,
		comparisonRepo: comparisonRepo,
		limits:         limits,
	}
}

// Search returns tools, categories and comparisons matching query.
//
// Queries shorter than MinQueryLength after trimming return three empty
// groups without touching the store. The three lookups run concurrently;
// if any fails the whole search fails with domain.ErrSearchUnavailable and
// the remaining lookups are cancelled.
func (s *SearchService) Search(ctx context.Context, query string) (*domain.SearchResult, error) {
	timer := metrics.NewTimer()

	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < MinQueryLength {
		metrics.ObserveSearch(metrics.SearchResultShort, timer.Seconds())
		return domain.EmptySearchResult(), nil
	}

	var (
		tools       []domain.ToolSuggestion
		categories  []domain.CategorySuggestion
		comparisons []domain.ComparisonSuggestion
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lookup := metrics.NewTimer()
		found, err := s.toolRepo.Search(gctx, q, s.limits.Tools)
		if err != nil {
			return fmt.Errorf("tools lookup: %w", err)
		}
		tools = capped(found, s.limits.Tools)
		metrics.ObserveSearchLookup("tools", lookup.Seconds(), len(tools))
		return nil
	})
	g.Go(func() error {
		lookup := metrics.NewTimer()
		found, err := s.categoryRepo.Search(gctx, q, s.limits.Categories)
		if err != nil {
			return fmt.Errorf("categories lookup: %w", err)
		}
		categories = capped(found, s.limits.Categories)
		metrics.ObserveSearchLookup("categories", lookup.Seconds(), len(categories))
		return nil
	})
	g.Go(func() error {
		lookup := metrics.NewTimer()
		found, err := s.comparisonRepo.Search(gctx, q, s.limits.Comparisons)
		if err != nil {
			return fmt.Errorf("comparisons lookup: %w", err)
		}
		comparisons = capped(found, s.limits.Comparisons)
		metrics.ObserveSearchLookup("comparisons", lookup.Seconds(), len(comparisons))
		return nil
	})

	if err := g.Wait(); err != nil {
		metrics.ObserveSearch(metrics.SearchResultFailure, timer.Seconds())
		logger.ErrorContext(ctx, "Search failed",
			slog.String("query", q),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", domain.ErrSearchUnavailable, err)
	}

	result := domain.EmptySearchResult()
	if tools != nil {
		result.Tools = tools
	}
	if categories != nil {
		result.Categories = categories
	}
	if comparisons != nil {
		result.Comparisons = comparisons
	}

	metrics.ObserveSearch(metrics.SearchResultOK, timer.Seconds())
	return result, nil
}

func capped[T any](items []T, limit int) []T {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
