package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/elhoucineqara/saascompare/internal/domain"
)

// MongoUserRepository implements UserRepository using MongoDB.
type MongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository creates a new MongoUserRepository.
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(usersCollection)}
}

// Create inserts a new user. A duplicate email yields domain.ErrConflict.
func (r *MongoUserRepository) Create(ctx context.Context, u *domain.User) error {
	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		return fmt.Errorf("insert user: %w", translateMongoError("user", err))
	}
	return nil
}

// GetByID retrieves a user by ID.
func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := findOne[domain.User](ctx, r.coll, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// GetByEmail retrieves a user by email.
func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := findOne[domain.User](ctx, r.coll, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// MongoSessionRepository implements SessionRepository using MongoDB.
// Expired documents are also reaped by the TTL index on expiresAt.
type MongoSessionRepository struct {
	coll *mongo.Collection
}

// NewMongoSessionRepository creates a new MongoSessionRepository.
func NewMongoSessionRepository(db *mongo.Database) *MongoSessionRepository {
	return &MongoSessionRepository{coll: db.Collection(sessionsCollection)}
}

// Create stores a new session.
func (r *MongoSessionRepository) Create(ctx context.Context, s *domain.Session) error {
	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("insert session: %w", translateMongoError("session", err))
	}
	return nil
}

// Get retrieves a session by token.
func (r *MongoSessionRepository) Get(ctx context.Context, token string) (*domain.Session, error) {
	s, err := findOne[domain.Session](ctx, r.coll, bson.M{"_id": token})
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return s, nil
}

// Delete removes a session. Deleting an unknown token is not an error.
func (r *MongoSessionRepository) Delete(ctx context.Context, token string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": token}); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired removes every session that expired at or before now.
func (r *MongoSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"expiresAt": bson.M{"$lte": now}})
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return res.DeletedCount, nil
}
