package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elhoucineqara/saascompare/internal/domain"
)

const categoryColumns = `id, name, slug, description, created_at, updated_at`

// PostgresCategoryRepository implements CategoryRepository using PostgreSQL.
type PostgresCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCategoryRepository creates a new PostgresCategoryRepository.
func NewPostgresCategoryRepository(pool *pgxpool.Pool) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{pool: pool}
}

// Create inserts a new category.
func (r *PostgresCategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO categories (`+categoryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.Slug, c.Description, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert category: %w", translateError("category", err))
	}
	return nil
}

// GetByID retrieves a category by ID.
func (r *PostgresCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return r.getOne(ctx, "id", id)
}

// GetBySlug retrieves a category by slug.
func (r *PostgresCategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return r.getOne(ctx, "slug", slug)
}

func (r *PostgresCategoryRepository) getOne(ctx context.Context, column, value string) (*domain.Category, error) {
	var c domain.Category
	err := r.pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE `+column+` = $1`, value).
		Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get category by %s: %w", column, err)
	}
	return &c, nil
}

// List returns all categories ordered by name.
func (r *PostgresCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// Update replaces the mutable fields of an existing category.
func (r *PostgresCategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE categories SET name = $2, slug = $3, description = $4, updated_at = $5
		WHERE id = $1`,
		c.ID, c.Name, c.Slug, c.Description, c.UpdatedAt,
	)
	if err != nil {
		if isInvalidID(err) {
			return domain.NotFoundError("category", c.ID)
		}
		return fmt.Errorf("update category: %w", translateError("category", err))
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFoundError("category", c.ID)
	}
	return nil
}

// Delete removes a category. Categories that still own tools cannot be deleted.
func (r *PostgresCategoryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if isInvalidID(err) {
			return domain.NotFoundError("category", id)
		}
		return fmt.Errorf("delete category: %w", translateError("category", err))
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFoundError("category", id)
	}
	return nil
}

// Search returns up to limit categories whose name or slug contains query.
func (r *PostgresCategoryRepository) Search(ctx context.Context, query string, limit int) ([]domain.CategorySuggestion, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, slug
		FROM categories
		WHERE name ILIKE $1 OR slug ILIKE $1
		ORDER BY created_at, id
		LIMIT $2`,
		containsPattern(query), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search categories: %w", err)
	}
	defer rows.Close()

	results := []domain.CategorySuggestion{}
	for rows.Next() {
		var s domain.CategorySuggestion
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug); err != nil {
			return nil, fmt.Errorf("scan category suggestion: %w", err)
		}
		results = append(results, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category suggestions: %w", err)
	}
	return results, nil
}
