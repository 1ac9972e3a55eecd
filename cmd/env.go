package main

import (
	"context"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/sells-group/f1-analytics/internal/config"
	"github.com/sells-group/f1-analytics/internal/db"
	"github.com/sells-group/f1-analytics/internal/loader"
	"github.com/sells-group/f1-analytics/internal/tabular"
)

// loadDataset validates the config for mode, opens the configured source and
// loads the joined dataset. The source is closed before returning.
func loadDataset(ctx context.Context, mode string) (*loader.Dataset, error) {
	if err := cfg.Validate(mode); err != nil {
		return nil, err
	}

	src, closeFn, err := openSource(ctx, cfg.Data)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	return loader.Load(ctx, src)
}

// openSource builds the Source selected by data.source. The returned close
// function is always non-nil.
func openSource(ctx context.Context, d config.DataConfig) (loader.Source, func(), error) {
	noop := func() {}

	switch d.Source {
	case config.SourceCSV:
		opts := tabular.CSVOptions{
			Delimiter: d.DelimiterRune(),
			Encoding:  d.Encoding,
		}
		return loader.NewCSVSource(d.Dir, d.Files, opts), noop, nil

	case config.SourceXLSX:
		path := d.Workbook
		if !filepath.IsAbs(path) && d.Dir != "" && filepath.Dir(path) == "." {
			path = filepath.Join(d.Dir, path)
		}
		return loader.NewXLSXSource(path), noop, nil

	case config.SourceSQLite:
		src, err := loader.NewSQLiteSource(d.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		return src, func() { _ = src.Close() }, nil

	case config.SourcePostgres:
		pool, err := db.Open(ctx, d.DatabaseURL, &d.Pool)
		if err != nil {
			return nil, noop, eris.Wrap(err, "open postgres")
		}
		return loader.NewPostgresSource(pool), pool.Close, nil

	default:
		return nil, noop, eris.Errorf("unknown data source %q", d.Source)
	}
}
