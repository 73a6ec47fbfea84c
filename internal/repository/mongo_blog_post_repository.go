package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/elhoucineqara/saascompare/internal/domain"
)

// MongoBlogPostRepository implements BlogPostRepository using MongoDB.
type MongoBlogPostRepository struct {
	coll *mongo.Collection
}

// NewMongoBlogPostRepository creates a new MongoBlogPostRepository.
func NewMongoBlogPostRepository(db *mongo.Database) *MongoBlogPostRepository {
	return &MongoBlogPostRepository{coll: db.Collection(blogPostsCollection)}
}

// Create inserts a new blog post.
func (r *MongoBlogPostRepository) Create(ctx context.Context, p *domain.BlogPost) error {
	if _, err := r.coll.InsertOne(ctx, blogPostDocument(p)); err != nil {
		return fmt.Errorf("insert blog post: %w", translateMongoError("blog post", err))
	}
	return nil
}

// GetByID retrieves a blog post by ID.
func (r *MongoBlogPostRepository) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	p, err := findOne[domain.BlogPost](ctx, r.coll, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("get blog post by id: %w", err)
	}
	return p, nil
}

// GetBySlug retrieves a blog post by slug, published or not.
func (r *MongoBlogPostRepository) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	p, err := findOne[domain.BlogPost](ctx, r.coll, bson.M{"slug": slug})
	if err != nil {
		return nil, fmt.Errorf("get blog post by slug: %w", err)
	}
	return p, nil
}

// List returns blog posts matching the filter.
func (r *MongoBlogPostRepository) List(ctx context.Context, filter domain.BlogPostFilter) ([]domain.BlogPost, error) {
	query := bson.M{}
	opts := options.Find()
	if filter.PublishedOnly {
		query["published"] = true
		opts.SetSort(bson.D{{Key: "publishedAt", Value: -1}, {Key: "_id", Value: 1}})
	} else {
		opts.SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}})
	}
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	posts, err := findAll[domain.BlogPost](ctx, r.coll, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	return posts, nil
}

// Update replaces an existing blog post.
func (r *MongoBlogPostRepository) Update(ctx context.Context, p *domain.BlogPost) error {
	return replaceByID(ctx, r.coll, "blog post", p.ID, blogPostDocument(p))
}

// Delete removes a blog post.
func (r *MongoBlogPostRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, "blog post", id)
}

func blogPostDocument(p *domain.BlogPost) domain.BlogPost {
	doc := *p
	doc.Tags = nonNil(p.Tags)
	return doc
}
