package loader

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/f1-analytics/internal/db"
	"github.com/sells-group/f1-analytics/internal/model"
)

// PostgresSource reads the relations from tables of a Postgres database.
type PostgresSource struct {
	pool db.Pool
}

// NewPostgresSource wraps an open pool. The caller owns the pool.
func NewPostgresSource(pool db.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

func (s *PostgresSource) Results(ctx context.Context) ([]model.Result, error) {
	rows, err := db.QueryStructs[model.Result](ctx, s.pool, queryResults)
	return rows, eris.Wrap(err, "postgres: results")
}

func (s *PostgresSource) Drivers(ctx context.Context) ([]model.Driver, error) {
	rows, err := db.QueryStructs[model.Driver](ctx, s.pool, queryDrivers)
	return rows, eris.Wrap(err, "postgres: drivers")
}

func (s *PostgresSource) Races(ctx context.Context) ([]model.Race, error) {
	rows, err := db.QueryStructs[model.Race](ctx, s.pool, queryRaces)
	return rows, eris.Wrap(err, "postgres: races")
}

func (s *PostgresSource) Constructors(ctx context.Context) ([]model.Constructor, error) {
	rows, err := db.QueryStructs[model.Constructor](ctx, s.pool, queryConstructors)
	return rows, eris.Wrap(err, "postgres: constructors")
}

func (s *PostgresSource) Champions(ctx context.Context) ([]model.Champion, error) {
	rows, err := db.QueryStructs[model.Champion](ctx, s.pool, queryChampions)
	return rows, eris.Wrap(err, "postgres: champions")
}
