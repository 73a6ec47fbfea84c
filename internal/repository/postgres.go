package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elhoucineqara/saascompare/internal/domain"
)

// PostgreSQL error codes the repositories translate into domain errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidTextRepr     = "22P02"
)

// likeEscaper escapes LIKE metacharacters so user input is matched literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// NewPostgresRepositories wires every repository against one pool.
func NewPostgresRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Tools:       NewPostgresToolRepository(pool),
		Categories:  NewPostgresCategoryRepository(pool),
		Comparisons: NewPostgresComparisonRepository(pool),
		BlogPosts:   NewPostgresBlogPostRepository(pool),
		Users:       NewPostgresUserRepository(pool),
		Sessions:    NewPostgresSessionRepository(pool),
		Store:       &PostgresStore{pool: pool},
	}
}

// PostgresStore implements Resetter for the PostgreSQL schema.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Reset removes every row from every table.
func (s *PostgresStore) Reset(ctx context.Context) error {
	_, err := s.pool.Exec(ctx,
		`TRUNCATE TABLE sessions, blog_posts, comparisons, tools, categories, users`)
	if err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}
	return nil
}

// containsPattern builds an ILIKE pattern matching q anywhere in a column.
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

// translateError maps constraint violations onto domain.ErrConflict.
func translateError(entity string, err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return fmt.Errorf("%w: %s %s already exists", domain.ErrConflict, entity, constraintField(pgErr.ConstraintName))
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %s violates reference %s", domain.ErrConflict, entity, pgErr.ConstraintName)
	}
	return err
}

// isInvalidID reports whether err was caused by a malformed UUID parameter.
// Lookups treat such ids as absent.
func isInvalidID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRepr
}

// constraintField extracts "slug" from a constraint named "tools_slug_key".
func constraintField(constraint string) string {
	name := strings.TrimSuffix(constraint, "_key")
	if i := strings.LastIndex(name, "_"); i >= 0 {
		return name[i+1:]
	}
	return name
}

// nonNil keeps NOT NULL array columns from receiving NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
