// Package loader reads the five source relations and joins them into one
// denormalized record set.
package loader

import (
	"context"

	"github.com/sells-group/f1-analytics/internal/model"
)

// Relation names, also used as sheet and table names.
const (
	RelationResults      = "results"
	RelationDrivers      = "drivers"
	RelationRaces        = "races"
	RelationConstructors = "constructors"
	RelationChampions    = "world_champions"
)

// Source provides the raw relations. Implementations must return an error
// when a relation is missing or lacks an expected column.
type Source interface {
	Results(ctx context.Context) ([]model.Result, error)
	Drivers(ctx context.Context) ([]model.Driver, error)
	Races(ctx context.Context) ([]model.Race, error)
	Constructors(ctx context.Context) ([]model.Constructor, error)
	Champions(ctx context.Context) ([]model.Champion, error)
}
