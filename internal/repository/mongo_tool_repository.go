package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/elhoucineqara/saascompare/internal/domain"
)

// MongoToolRepository implements ToolRepository using MongoDB.
type MongoToolRepository struct {
	coll *mongo.Collection
}

// NewMongoToolRepository creates a new MongoToolRepository.
func NewMongoToolRepository(db *mongo.Database) *MongoToolRepository {
	return &MongoToolRepository{coll: db.Collection(toolsCollection)}
}

// Create inserts a new tool.
func (r *MongoToolRepository) Create(ctx context.Context, t *domain.Tool) error {
	if _, err := r.coll.InsertOne(ctx, toolDocument(t)); err != nil {
		return fmt.Errorf("insert tool: %w", translateMongoError("tool", err))
	}
	return nil
}

// GetByID retrieves a tool by ID.
func (r *MongoToolRepository) GetByID(ctx context.Context, id string) (*domain.Tool, error) {
	t, err := findOne[domain.Tool](ctx, r.coll, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("get tool by id: %w", err)
	}
	return t, nil
}

// GetBySlug retrieves a tool by slug.
func (r *MongoToolRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tool, error) {
	t, err := findOne[domain.Tool](ctx, r.coll, bson.M{"slug": slug})
	if err != nil {
		return nil, fmt.Errorf("get tool by slug: %w", err)
	}
	return t, nil
}

// List returns tools matching the filter.
func (r *MongoToolRepository) List(ctx context.Context, filter domain.ToolFilter) ([]domain.Tool, error) {
	query := bson.M{}
	if filter.CategoryID != "" {
		query["categoryId"] = filter.CategoryID
	}
	if filter.FeaturedOnly {
		query["isFeatured"] = true
	}

	opts := options.Find()
	if filter.OrderByRank {
		opts.SetSort(bson.D{{Key: "isFeatured", Value: -1}, {Key: "averageRating", Value: -1}, {Key: "name", Value: 1}})
	} else {
		opts.SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}})
	}
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	tools, err := findAll[domain.Tool](ctx, r.coll, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	return tools, nil
}

// Update replaces an existing tool.
func (r *MongoToolRepository) Update(ctx context.Context, t *domain.Tool) error {
	return replaceByID(ctx, r.coll, "tool", t.ID, toolDocument(t))
}

// Delete removes a tool.
func (r *MongoToolRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, "tool", id)
}

// CountByCategory counts the tools assigned to a category.
func (r *MongoToolRepository) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"categoryId": categoryID})
	if err != nil {
		return 0, fmt.Errorf("count tools by category: %w", err)
	}
	return n, nil
}

// Search returns up to limit tools whose name, slug or short description
// contains query, case-insensitively.
func (r *MongoToolRepository) Search(ctx context.Context, query string, limit int) ([]domain.ToolSuggestion, error) {
	results, err := findAll[domain.ToolSuggestion](ctx, r.coll,
		anyFieldContains(query, "name", "slug", "shortDescription"),
		searchOptions(limit, bson.M{"name": 1, "slug": 1, "logoUrl": 1, "shortDescription": 1}),
	)
	if err != nil {
		return nil, fmt.Errorf("search tools: %w", err)
	}
	return results, nil
}

func toolDocument(t *domain.Tool) domain.Tool {
	doc := *t
	doc.Pros = nonNil(t.Pros)
	doc.Cons = nonNil(t.Cons)
	doc.Features = nonNil(t.Features)
	return doc
}
