package storage

import (
	"context"

	"folio/internal/domain/experience"
	"folio/internal/domain/projects"
	"folio/internal/domain/reviews"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Container groups the repositories the API handlers depend on.
type Container struct {
	pool       *pgxpool.Pool
	Reviews    reviews.Store
	Projects   projects.Store
	Experience experience.Store
}

func NewContainer(db *pgxpool.Pool) *Container {
	return &Container{
		pool:       db,
		Reviews:    reviews.NewRepository(db),
		Projects:   projects.NewRepository(db),
		Experience: experience.NewRepository(db),
	}
}

// Ping reports whether the document store is reachable. A container built
// without a pool (tests) is always healthy.
func (c *Container) Ping(ctx context.Context) error {
	if c.pool == nil {
		return nil
	}
	return c.pool.Ping(ctx)
}
