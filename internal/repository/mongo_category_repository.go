package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/elhoucineqara/saascompare/internal/domain"
)

// MongoCategoryRepository implements CategoryRepository using MongoDB.
type MongoCategoryRepository struct {
	coll *mongo.Collection
}

// NewMongoCategoryRepository creates a new MongoCategoryRepository.
func NewMongoCategoryRepository(db *mongo.Database) *MongoCategoryRepository {
	return &MongoCategoryRepository{coll: db.Collection(categoriesCollection)}
}

// Create inserts a new category.
func (r *MongoCategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("insert category: %w", translateMongoError("category", err))
	}
	return nil
}

// GetByID retrieves a category by ID.
func (r *MongoCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	c, err := findOne[domain.Category](ctx, r.coll, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("get category by id: %w", err)
	}
	return c, nil
}

// GetBySlug retrieves a category by slug.
func (r *MongoCategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	c, err := findOne[domain.Category](ctx, r.coll, bson.M{"slug": slug})
	if err != nil {
		return nil, fmt.Errorf("get category by slug: %w", err)
	}
	return c, nil
}

// List returns all categories ordered by name.
func (r *MongoCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := findAll[domain.Category](ctx, r.coll, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Update replaces an existing category.
func (r *MongoCategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	return replaceByID(ctx, r.coll, "category", c.ID, c)
}

// Delete removes a category.
func (r *MongoCategoryRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, "category", id)
}

// Search returns up to limit categories whose name or slug contains query.
func (r *MongoCategoryRepository) Search(ctx context.Context, query string, limit int) ([]domain.CategorySuggestion, error) {
	results, err := findAll[domain.CategorySuggestion](ctx, r.coll,
		anyFieldContains(query, "name", "slug"),
		searchOptions(limit, bson.M{"name": 1, "slug": 1}),
	)
	if err != nil {
		return nil, fmt.Errorf("search categories: %w", err)
	}
	return results, nil
}
