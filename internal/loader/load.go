package loader

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/f1-analytics/internal/model"
)

// Dataset is the loaded and joined data. It is built once by Load and never
// mutated afterwards, so it is safe to share between goroutines.
type Dataset struct {
	Records      []model.JoinedRecord
	Drivers      []model.Driver
	Results      []model.Result
	Races        []model.Race
	Constructors []model.Constructor
	Champions    []model.Champion
}

// Load reads all five relations from src concurrently and joins them. The
// first failing relation is returned as a *DataLoadError.
func Load(ctx context.Context, src Source) (*Dataset, error) {
	start := time.Now()
	ds := &Dataset{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := src.Results(gCtx)
		ds.Results = rows
		return relationErr(RelationResults, err)
	})
	g.Go(func() error {
		rows, err := src.Drivers(gCtx)
		ds.Drivers = rows
		return relationErr(RelationDrivers, err)
	})
	g.Go(func() error {
		rows, err := src.Races(gCtx)
		ds.Races = rows
		return relationErr(RelationRaces, err)
	})
	g.Go(func() error {
		rows, err := src.Constructors(gCtx)
		ds.Constructors = rows
		return relationErr(RelationConstructors, err)
	})
	g.Go(func() error {
		rows, err := src.Champions(gCtx)
		ds.Champions = rows
		return relationErr(RelationChampions, err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range ds.Drivers {
		ds.Drivers[i] = ds.Drivers[i].WithFullName()
	}
	ds.Records = Join(ds.Drivers, ds.Results, ds.Races, ds.Constructors)

	zap.L().Info("dataset loaded",
		zap.Int("drivers", len(ds.Drivers)),
		zap.Int("results", len(ds.Results)),
		zap.Int("races", len(ds.Races)),
		zap.Int("constructors", len(ds.Constructors)),
		zap.Int("champions", len(ds.Champions)),
		zap.Int("records", len(ds.Records)),
		zap.Duration("elapsed", time.Since(start)),
	)
	if dropped := len(ds.Results) - len(ds.Records); dropped > 0 {
		zap.L().Debug("results without matching driver, race or constructor", zap.Int("dropped", dropped))
	}

	return ds, nil
}

func relationErr(relation string, err error) error {
	if err == nil {
		return nil
	}
	return &DataLoadError{Relation: relation, Err: err}
}
