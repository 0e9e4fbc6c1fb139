package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/rocalc/internal/model"
)

// DefaultSkill values substitute NULL columns of the skill table.
const (
	DefaultDamagePercent = 100
	DefaultHits          = 1
)

// Catalog is the item and skill lookup used before invoking the engine.
// Lookups return nil, nil when nothing matches.
type Catalog interface {
	ItemByName(ctx context.Context, name string) (*model.ItemRecord, error)
	ItemByID(ctx context.Context, id int32) (*model.ItemRecord, error)
	Skill(ctx context.Context, engName string) (*model.SkillRecord, error)
	SkillsWithDamage(ctx context.Context) ([]*model.SkillRecord, error)
	SearchSkills(ctx context.Context, keyword string) ([]*model.SkillRecord, error)
	UpsertItem(ctx context.Context, item *model.ItemRecord) error
	UpsertSkill(ctx context.Context, skill *model.SkillRecord) error
	Migrate(ctx context.Context) error
	Close() error
}

// DB wraps a pgx connection pool and serves the catalog from PostgreSQL.
type DB struct {
	pool *pgxpool.Pool

	*ItemRepository
	*SkillRepository
}

var _ Catalog = (*DB)(nil)

// New connects to PostgreSQL and returns a DB handle.
func New(ctx context.Context, dsn string) (*DB, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return NewFromPool(pool), nil
}

// NewFromPool wraps an existing pool.
func NewFromPool(pool *pgxpool.Pool) *DB {
	return &DB{
		pool:            pool,
		ItemRepository:  NewItemRepository(pool),
		SkillRepository: NewSkillRepository(pool),
	}
}

// Close closes the database connection pool.
func (d *DB) Close() error {
	d.pool.Close()
	return nil
}

// Pool returns the underlying pgx pool (for goose migrations).
func (d *DB) Pool() *pgxpool.Pool {
	return d.pool
}
