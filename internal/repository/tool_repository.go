package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elhoucineqara/saascompare/internal/domain"
)

const toolColumns = `id, name, slug, logo_url, website_url, affiliate_link, short_description,
	long_review, pros, cons, features, category_id, pricing_model, starting_price,
	is_featured, average_rating, review_count, created_at, updated_at`

// PostgresToolRepository implements ToolRepository using PostgreSQL.
type PostgresToolRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresToolRepository creates a new PostgresToolRepository.
func NewPostgresToolRepository(pool *pgxpool.Pool) *PostgresToolRepository {
	return &PostgresToolRepository{pool: pool}
}

// Create inserts a new tool.
func (r *PostgresToolRepository) Create(ctx context.Context, t *domain.Tool) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO tools (`+toolColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		t.ID, t.Name, t.Slug, t.LogoURL, t.WebsiteURL, t.AffiliateLink, t.ShortDescription,
		t.LongReview, nonNil(t.Pros), nonNil(t.Cons), nonNil(t.Features), t.CategoryID,
		string(t.PricingModel), t.StartingPrice, t.IsFeatured, t.AverageRating, t.ReviewCount,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tool: %w", translateError("tool", err))
	}
	return nil
}

// GetByID retrieves a tool by ID.
func (r *PostgresToolRepository) GetByID(ctx context.Context, id string) (*domain.Tool, error) {
	return r.getOne(ctx, "id", id)
}

// GetBySlug retrieves a tool by slug.
func (r *PostgresToolRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tool, error) {
	return r.getOne(ctx, "slug", slug)
}

func (r *PostgresToolRepository) getOne(ctx context.Context, column, value string) (*domain.Tool, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+toolColumns+` FROM tools WHERE `+column+` = $1`, value)
	tool, err := scanTool(row)
	if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get tool by %s: %w", column, err)
	}
	return tool, nil
}

// List returns tools matching the filter.
func (r *PostgresToolRepository) List(ctx context.Context, filter domain.ToolFilter) ([]domain.Tool, error) {
	var (
		conditions []string
		args       []interface{}
	)
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.FeaturedOnly {
		conditions = append(conditions, "is_featured")
	}

	query := `SELECT ` + toolColumns + ` FROM tools`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	if filter.OrderByRank {
		query += " ORDER BY is_featured DESC, average_rating DESC, name"
	} else {
		query += " ORDER BY created_at DESC, id"
	}
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		if isInvalidID(err) {
			return []domain.Tool{}, nil
		}
		return nil, fmt.Errorf("list tools: %w", err)
	}
	defer rows.Close()

	tools := []domain.Tool{}
	for rows.Next() {
		tool, err := scanTool(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tool: %w", err)
		}
		tools = append(tools, *tool)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tools: %w", err)
	}
	return tools, nil
}

// Update replaces every mutable field of an existing tool.
func (r *PostgresToolRepository) Update(ctx context.Context, t *domain.Tool) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE tools SET
			name = $2, slug = $3, logo_url = $4, website_url = $5, affiliate_link = $6,
			short_description = $7, long_review = $8, pros = $9, cons = $10, features = $11,
			category_id = $12, pricing_model = $13, starting_price = $14, is_featured = $15,
			average_rating = $16, review_count = $17, updated_at = $18
		WHERE id = $1`,
		t.ID, t.Name, t.Slug, t.LogoURL, t.WebsiteURL, t.AffiliateLink,
		t.ShortDescription, t.LongReview, nonNil(t.Pros), nonNil(t.Cons), nonNil(t.Features),
		t.CategoryID, string(t.PricingModel), t.StartingPrice, t.IsFeatured,
		t.AverageRating, t.ReviewCount, t.UpdatedAt,
	)
	if err != nil {
		if isInvalidID(err) {
			return domain.NotFoundError("tool", t.ID)
		}
		return fmt.Errorf("update tool: %w", translateError("tool", err))
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFoundError("tool", t.ID)
	}
	return nil
}

// Delete removes a tool. Tools referenced by a comparison cannot be deleted.
func (r *PostgresToolRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tools WHERE id = $1`, id)
	if err != nil {
		if isInvalidID(err) {
			return domain.NotFoundError("tool", id)
		}
		return fmt.Errorf("delete tool: %w", translateError("tool", err))
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFoundError("tool", id)
	}
	return nil
}

// CountByCategory counts the tools assigned to a category.
func (r *PostgresToolRepository) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM tools WHERE category_id = $1`, categoryID).Scan(&count)
	if isInvalidID(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("count tools by category: %w", err)
	}
	return count, nil
}

// Search returns up to limit tools whose name, slug or short description
// contains query, case-insensitively.
func (r *PostgresToolRepository) Search(ctx context.Context, query string, limit int) ([]domain.ToolSuggestion, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, slug, logo_url, short_description
		FROM tools
		WHERE name ILIKE $1 OR slug ILIKE $1 OR short_description ILIKE $1
		ORDER BY created_at, id
		LIMIT $2`,
		containsPattern(query), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search tools: %w", err)
	}
	defer rows.Close()

	results := []domain.ToolSuggestion{}
	for rows.Next() {
		var s domain.ToolSuggestion
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.LogoURL, &s.ShortDescription); err != nil {
			return nil, fmt.Errorf("scan tool suggestion: %w", err)
		}
		results = append(results, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tool suggestions: %w", err)
	}
	return results, nil
}

func scanTool(row scanner) (*domain.Tool, error) {
	var (
		t            domain.Tool
		pricingModel string
	)
	err := row.Scan(
		&t.ID, &t.Name, &t.Slug, &t.LogoURL, &t.WebsiteURL, &t.AffiliateLink, &t.ShortDescription,
		&t.LongReview, &t.Pros, &t.Cons, &t.Features, &t.CategoryID, &pricingModel, &t.StartingPrice,
		&t.IsFeatured, &t.AverageRating, &t.ReviewCount, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.PricingModel = domain.PricingModel(pricingModel)
	return &t, nil
}
