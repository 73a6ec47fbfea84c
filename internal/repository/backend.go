package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elhoucineqara/saascompare/internal/config"
	"github.com/elhoucineqara/saascompare/internal/infrastructure/database"
	"github.com/elhoucineqara/saascompare/internal/logger"
)

// Backend is an opened storage backend and its repositories.
type Backend struct {
	*Repositories
	Driver string
	// Pool is set for the postgres driver only.
	Pool *pgxpool.Pool

	ping  func(ctx context.Context) error
	close func()
}

// Ping checks the backing store is reachable.
func (b *Backend) Ping(ctx context.Context) error {
	return b.ping(ctx)
}

// Close releases the connection pool.
func (b *Backend) Close() {
	b.close()
}

// Open connects to the store selected by cfg.StoreDriver. For postgres,
// pending migrations are applied first when cfg.DBAutoMigrate is set; for
// mongo, indexes are ensured.
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		return openPostgres(ctx, cfg)
	case config.StoreDriverMongo:
		return openMongo(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config) (*Backend, error) {
	if cfg.DBAutoMigrate {
		if err := database.Migrate(cfg.PostgresDSN(), cfg.MigrationsDir); err != nil {
			return nil, err
		}
		logger.Info("Applied database migrations", slog.String("dir", cfg.MigrationsDir))
	}

	handle := database.NewPostgresHandle(database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	pool, err := handle.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &Backend{
		Repositories: NewPostgresRepositories(pool),
		Driver:       config.StoreDriverPostgres,
		Pool:         pool,
		ping:         pool.Ping,
		close:        handle.Close,
	}, nil
}

func openMongo(ctx context.Context, cfg *config.Config) (*Backend, error) {
	handle := database.NewMongoHandle(database.MongoConfig{
		URI:      cfg.MongoURI,
		Database: cfg.MongoDatabase,
		Timeout:  cfg.MongoTimeout,
	})
	client, err := handle.Get(ctx)
	if err != nil {
		return nil, err
	}

	db := client.Database(cfg.MongoDatabase)
	if err := EnsureMongoIndexes(ctx, db); err != nil {
		handle.Close()
		return nil, err
	}

	return &Backend{
		Repositories: NewMongoRepositories(db),
		Driver:       config.StoreDriverMongo,
		ping:         database.MongoPinger{Client: client}.Ping,
		close:        handle.Close,
	}, nil
}
