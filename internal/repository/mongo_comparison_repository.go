package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/elhoucineqara/saascompare/internal/domain"
)

// MongoComparisonRepository implements ComparisonRepository using MongoDB.
type MongoComparisonRepository struct {
	coll *mongo.Collection
}

// NewMongoComparisonRepository creates a new MongoComparisonRepository.
func NewMongoComparisonRepository(db *mongo.Database) *MongoComparisonRepository {
	return &MongoComparisonRepository{coll: db.Collection(comparisonsCollection)}
}

// Create inserts a new comparison.
func (r *MongoComparisonRepository) Create(ctx context.Context, c *domain.Comparison) error {
	if _, _, err := toolPair(c); err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("insert comparison: %w", translateMongoError("comparison", err))
	}
	return nil
}

// GetByID retrieves a comparison by ID.
func (r *MongoComparisonRepository) GetByID(ctx context.Context, id string) (*domain.Comparison, error) {
	c, err := findOne[domain.Comparison](ctx, r.coll, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("get comparison by id: %w", err)
	}
	return c, nil
}

// GetBySlug retrieves a comparison by slug.
func (r *MongoComparisonRepository) GetBySlug(ctx context.Context, slug string) (*domain.Comparison, error) {
	c, err := findOne[domain.Comparison](ctx, r.coll, bson.M{"slug": slug})
	if err != nil {
		return nil, fmt.Errorf("get comparison by slug: %w", err)
	}
	return c, nil
}

// List returns all comparisons, newest first.
func (r *MongoComparisonRepository) List(ctx context.Context) ([]domain.Comparison, error) {
	comparisons, err := findAll[domain.Comparison](ctx, r.coll, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list comparisons: %w", err)
	}
	return comparisons, nil
}

// Update replaces an existing comparison.
func (r *MongoComparisonRepository) Update(ctx context.Context, c *domain.Comparison) error {
	if _, _, err := toolPair(c); err != nil {
		return err
	}
	return replaceByID(ctx, r.coll, "comparison", c.ID, c)
}

// Delete removes a comparison.
func (r *MongoComparisonRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, "comparison", id)
}

// CountByTool counts the comparisons that reference a tool.
func (r *MongoComparisonRepository) CountByTool(ctx context.Context, toolID string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"ids": toolID})
	if err != nil {
		return 0, fmt.Errorf("count comparisons by tool: %w", err)
	}
	return n, nil
}

// Search returns up to limit comparisons whose title or slug contains query.
func (r *MongoComparisonRepository) Search(ctx context.Context, query string, limit int) ([]domain.ComparisonSuggestion, error) {
	results, err := findAll[domain.ComparisonSuggestion](ctx, r.coll,
		anyFieldContains(query, "title", "slug"),
		searchOptions(limit, bson.M{"title": 1, "slug": 1}),
	)
	if err != nil {
		return nil, fmt.Errorf("search comparisons: %w", err)
	}
	return results, nil
}
