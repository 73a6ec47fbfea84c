package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoConfig holds the configuration for the MongoDB client.
type MongoConfig struct {
	URI         string
	Database    string
	Timeout     time.Duration
	MaxPoolSize uint64
}

// NewMongo connects to MongoDB and verifies the connection.
func NewMongo(ctx context.Context, cfg MongoConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.Timeout).
		SetServerSelectionTimeout(cfg.Timeout)
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, nil
}

// NewMongoHandle wraps NewMongo in a lazily connected Handle.
func NewMongoHandle(cfg MongoConfig) *Handle[*mongo.Client] {
	return NewHandle(func(ctx context.Context) (*mongo.Client, error) {
		return NewMongo(ctx, cfg)
	}, func(client *mongo.Client) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	})
}

// MongoPinger adapts a mongo client to the Ping(ctx) error shape used by
// health checks.
type MongoPinger struct {
	Client *mongo.Client
}

// Ping checks the primary is reachable.
func (p MongoPinger) Ping(ctx context.Context) error {
	return p.Client.Ping(ctx, readpref.Primary())
}
