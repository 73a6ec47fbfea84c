package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elhoucineqara/saascompare/internal/domain"
)

const comparisonColumns = `id, tool_a_id, tool_b_id, slug, title, verdict, content, created_at, updated_at`

// PostgresComparisonRepository implements ComparisonRepository using PostgreSQL.
// The two tool ids are stored as tool_a_id and tool_b_id, in order.
type PostgresComparisonRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresComparisonRepository creates a new PostgresComparisonRepository.
func NewPostgresComparisonRepository(pool *pgxpool.Pool) *PostgresComparisonRepository {
	return &PostgresComparisonRepository{pool: pool}
}

// Create inserts a new comparison.
func (r *PostgresComparisonRepository) Create(ctx context.Context, c *domain.Comparison) error {
	toolA, toolB, err := toolPair(c)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO comparisons (`+comparisonColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, toolA, toolB, c.Slug, c.Title, c.Verdict, c.Content, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert comparison: %w", translateError("comparison", err))
	}
	return nil
}

// GetByID retrieves a comparison by ID.
func (r *PostgresComparisonRepository) GetByID(ctx context.Context, id string) (*domain.Comparison, error) {
	return r.getOne(ctx, "id", id)
}

// GetBySlug retrieves a comparison by slug.
func (r *PostgresComparisonRepository) GetBySlug(ctx context.Context, slug string) (*domain.Comparison, error) {
	return r.getOne(ctx, "slug", slug)
}

func (r *PostgresComparisonRepository) getOne(ctx context.Context, column, value string) (*domain.Comparison, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+comparisonColumns+` FROM comparisons WHERE `+column+` = $1`, value)
	c, err := scanComparison(row)
	if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get comparison by %s: %w", column, err)
	}
	return c, nil
}

// List returns all comparisons, newest first.
func (r *PostgresComparisonRepository) List(ctx context.Context) ([]domain.Comparison, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+comparisonColumns+` FROM comparisons ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list comparisons: %w", err)
	}
	defer rows.Close()

	comparisons := []domain.Comparison{}
	for rows.Next() {
		c, err := scanComparison(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comparison: %w", err)
		}
		comparisons = append(comparisons, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comparisons: %w", err)
	}
	return comparisons, nil
}

// Update replaces the mutable fields of an existing comparison.
func (r *PostgresComparisonRepository) Update(ctx context.Context, c *domain.Comparison) error {
	toolA, toolB, err := toolPair(c)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE comparisons SET
			tool_a_id = $2, tool_b_id = $3, slug = $4, title = $5, verdict = $6, content = $7, updated_at = $8
		WHERE id = $1`,
		c.ID, toolA, toolB, c.Slug, c.Title, c.Verdict, c.Content, c.UpdatedAt,
	)
	if err != nil {
		if isInvalidID(err) {
			return domain.NotFoundError("comparison", c.ID)
		}
		return fmt.Errorf("update comparison: %w", translateError("comparison", err))
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFoundError("comparison", c.ID)
	}
	return nil
}

// Delete removes a comparison.
func (r *PostgresComparisonRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comparisons WHERE id = $1`, id)
	if err != nil {
		if isInvalidID(err) {
			return domain.NotFoundError("comparison", id)
		}
		return fmt.Errorf("delete comparison: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFoundError("comparison", id)
	}
	return nil
}

// CountByTool counts the comparisons that reference a tool on either side.
func (r *PostgresComparisonRepository) CountByTool(ctx context.Context, toolID string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM comparisons WHERE tool_a_id = $1 OR tool_b_id = $1`, toolID,
	).Scan(&count)
	if isInvalidID(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("count comparisons by tool: %w", err)
	}
	return count, nil
}

// Search returns up to limit comparisons whose title or slug contains query.
func (r *PostgresComparisonRepository) Search(ctx context.Context, query string, limit int) ([]domain.ComparisonSuggestion, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, slug
		FROM comparisons
		WHERE title ILIKE $1 OR slug ILIKE $1
		ORDER BY created_at, id
		LIMIT $2`,
		containsPattern(query), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search comparisons: %w", err)
	}
	defer rows.Close()

	results := []domain.ComparisonSuggestion{}
	for rows.Next() {
		var s domain.ComparisonSuggestion
		if err := rows.Scan(&s.ID, &s.Title, &s.Slug); err != nil {
			return nil, fmt.Errorf("scan comparison suggestion: %w", err)
		}
		results = append(results, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comparison suggestions: %w", err)
	}
	return results, nil
}

func toolPair(c *domain.Comparison) (string, string, error) {
	if len(c.ToolIDs) != domain.ComparisonToolCount {
		return "", "", domain.NewValidationError("ids", "exactly_two_tools_required")
	}
	return c.ToolIDs[0], c.ToolIDs[1], nil
}

func scanComparison(row scanner) (*domain.Comparison, error) {
	var (
		c            domain.Comparison
		toolA, toolB string
	)
	err := row.Scan(&c.ID, &toolA, &toolB, &c.Slug, &c.Title, &c.Verdict, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.ToolIDs = []string{toolA, toolB}
	return &c, nil
}
