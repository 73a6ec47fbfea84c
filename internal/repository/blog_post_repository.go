package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elhoucineqara/saascompare/internal/domain"
)

const blogPostColumns = `id, title, slug, content, excerpt, cover_image, tags, published,
	published_at, author_id, created_at, updated_at`

// PostgresBlogPostRepository implements BlogPostRepository using PostgreSQL.
type PostgresBlogPostRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBlogPostRepository creates a new PostgresBlogPostRepository.
func NewPostgresBlogPostRepository(pool *pgxpool.Pool) *PostgresBlogPostRepository {
	return &PostgresBlogPostRepository{pool: pool}
}

// Create inserts a new blog post.
func (r *PostgresBlogPostRepository) Create(ctx context.Context, p *domain.BlogPost) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO blog_posts (`+blogPostColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID, p.Title, p.Slug, p.Content, p.Excerpt, p.CoverImage, nonNil(p.Tags), p.Published,
		p.PublishedAt, p.AuthorID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert blog post: %w", translateError("blog post", err))
	}
	return nil
}

// GetByID retrieves a blog post by ID.
func (r *PostgresBlogPostRepository) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	return r.getOne(ctx, "id", id)
}

// GetBySlug retrieves a blog post by slug, published or not.
func (r *PostgresBlogPostRepository) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return r.getOne(ctx, "slug", slug)
}

func (r *PostgresBlogPostRepository) getOne(ctx context.Context, column, value string) (*domain.BlogPost, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+blogPostColumns+` FROM blog_posts WHERE `+column+` = $1`, value)
	p, err := scanBlogPost(row)
	if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get blog post by %s: %w", column, err)
	}
	return p, nil
}

// List returns blog posts matching the filter.
func (r *PostgresBlogPostRepository) List(ctx context.Context, filter domain.BlogPostFilter) ([]domain.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts`
	if filter.PublishedOnly {
		query += ` WHERE published ORDER BY published_at DESC, id`
	} else {
		query += ` ORDER BY created_at DESC, id`
	}
	var args []interface{}
	if filter.Limit > 0 {
		query += ` LIMIT $1`
		args = append(args, filter.Limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.BlogPost{}
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blog posts: %w", err)
	}
	return posts, nil
}

// Update replaces the mutable fields of an existing blog post.
func (r *PostgresBlogPostRepository) Update(ctx context.Context, p *domain.BlogPost) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE blog_posts SET
			title = $2, slug = $3, content = $4, excerpt = $5, cover_image = $6, tags = $7,
			published = $8, published_at = $9, updated_at = $10
		WHERE id = $1`,
		p.ID, p.Title, p.Slug, p.Content, p.Excerpt, p.CoverImage, nonNil(p.Tags),
		p.Published, p.PublishedAt, p.UpdatedAt,
	)
	if err != nil {
		if isInvalidID(err) {
			return domain.NotFoundError("blog post", p.ID)
		}
		return fmt.Errorf("update blog post: %w", translateError("blog post", err))
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFoundError("blog post", p.ID)
	}
	return nil
}

// Delete removes a blog post.
func (r *PostgresBlogPostRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		if isInvalidID(err) {
			return domain.NotFoundError("blog post", id)
		}
		return fmt.Errorf("delete blog post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFoundError("blog post", id)
	}
	return nil
}

func scanBlogPost(row scanner) (*domain.BlogPost, error) {
	var p domain.BlogPost
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.CoverImage, &p.Tags, &p.Published,
		&p.PublishedAt, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
