package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/elhoucineqara/saascompare/internal/domain"
)

// Collection names of the MongoDB backend.
const (
	usersCollection       = "users"
	sessionsCollection    = "sessions"
	categoriesCollection  = "categories"
	toolsCollection       = "tools"
	comparisonsCollection = "comparisons"
	blogPostsCollection   = "blog_posts"
)

// NewMongoRepositories wires every repository against one database.
// Call EnsureMongoIndexes once before serving traffic.
func NewMongoRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Tools:       NewMongoToolRepository(db),
		Categories:  NewMongoCategoryRepository(db),
		Comparisons: NewMongoComparisonRepository(db),
		BlogPosts:   NewMongoBlogPostRepository(db),
		Users:       NewMongoUserRepository(db),
		Sessions:    NewMongoSessionRepository(db),
		Store:       &MongoStore{db: db},
	}
}

// MongoStore implements Resetter for the MongoDB backend.
type MongoStore struct {
	db *mongo.Database
}

// Reset removes every document from every collection. Indexes are kept.
func (s *MongoStore) Reset(ctx context.Context) error {
	for _, name := range []string{
		sessionsCollection, blogPostsCollection, comparisonsCollection,
		toolsCollection, categoriesCollection, usersCollection,
	} {
		if _, err := s.db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("clear %s: %w", name, err)
		}
	}
	return nil
}

// EnsureMongoIndexes creates the unique and lookup indexes the repositories
// rely on. Unique index names mirror the PostgreSQL constraint names so
// conflicts report the same field on both backends.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	unique := func(name string, keys bson.D) mongo.IndexModel {
		return mongo.IndexModel{Keys: keys, Options: options.Index().SetName(name).SetUnique(true)}
	}
	plain := func(name string, keys bson.D) mongo.IndexModel {
		return mongo.IndexModel{Keys: keys, Options: options.Index().SetName(name)}
	}

	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			unique("users_email_key", bson.D{{Key: "email", Value: 1}}),
		},
		sessionsCollection: {
			plain("sessions_user_id", bson.D{{Key: "userId", Value: 1}}),
			{
				Keys:    bson.D{{Key: "expiresAt", Value: 1}},
				Options: options.Index().SetName("sessions_expires_at_ttl").SetExpireAfterSeconds(0),
			},
		},
		categoriesCollection: {
			unique("categories_name_key", bson.D{{Key: "name", Value: 1}}),
			unique("categories_slug_key", bson.D{{Key: "slug", Value: 1}}),
		},
		toolsCollection: {
			unique("tools_name_key", bson.D{{Key: "name", Value: 1}}),
			unique("tools_slug_key", bson.D{{Key: "slug", Value: 1}}),
			plain("tools_category_id", bson.D{{Key: "categoryId", Value: 1}}),
			plain("tools_created_at", bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}),
		},
		comparisonsCollection: {
			unique("comparisons_slug_key", bson.D{{Key: "slug", Value: 1}}),
			plain("comparisons_ids", bson.D{{Key: "ids", Value: 1}}),
		},
		blogPostsCollection: {
			unique("blog_posts_slug_key", bson.D{{Key: "slug", Value: 1}}),
			plain("blog_posts_published_at", bson.D{{Key: "published", Value: 1}, {Key: "publishedAt", Value: -1}}),
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", collection, err)
		}
	}
	return nil
}

// containsRegex builds a case-insensitive regex matching q literally.
func containsRegex(q string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
}

// anyFieldContains matches documents where any of fields contains q.
func anyFieldContains(q string, fields ...string) bson.M {
	re := containsRegex(q)
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: bson.M{"$regex": re}})
	}
	return bson.M{"$or": or}
}

// translateMongoError maps duplicate key errors onto domain.ErrConflict.
func translateMongoError(entity string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %s %s already exists", domain.ErrConflict, entity, duplicateKeyField(err))
	}
	return err
}

// duplicateKeyField extracts the field from the index name reported by an
// E11000 error, e.g. "index: tools_slug_key dup key".
func duplicateKeyField(err error) string {
	msg := err.Error()
	i := strings.Index(msg, "index: ")
	if i < 0 {
		return "key"
	}
	name := msg[i+len("index: "):]
	if j := strings.IndexByte(name, ' '); j >= 0 {
		name = name[:j]
	}
	return constraintField(name)
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) (*T, error) {
	var out T
	err := coll.FindOne(ctx, filter).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func replaceByID(ctx context.Context, coll *mongo.Collection, entity, id string, doc interface{}) error {
	res, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return fmt.Errorf("update %s: %w", entity, translateMongoError(entity, err))
	}
	if res.MatchedCount == 0 {
		return domain.NotFoundError(entity, id)
	}
	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, entity, id string) error {
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s: %w", entity, err)
	}
	if res.DeletedCount == 0 {
		return domain.NotFoundError(entity, id)
	}
	return nil
}

// searchOptions orders matches by insertion so results are stable across calls.
func searchOptions(limit int, projection bson.M) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(limit)).
		SetProjection(projection)
}
