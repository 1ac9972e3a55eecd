package loader

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/f1-analytics/internal/model"
)

// SQLiteSource reads the relations from tables of a SQLite database.
type SQLiteSource struct {
	db *sql.DB
}

// NewSQLiteSource opens the SQLite database at dsn.
func NewSQLiteSource(dsn string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "sqlite: exec PRAGMA busy_timeout")
	}
	return &SQLiteSource{db: db}, nil
}

// Close releases the database handle.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

func (s *SQLiteSource) Results(ctx context.Context) ([]model.Result, error) {
	return querySQLite(ctx, s.db, queryResults, func(rows *sql.Rows) (model.Result, error) {
		var r model.Result
		var pos string
		err := rows.Scan(&r.ID, &r.DriverID, &r.RaceID, &r.ConstructorID, &pos, &r.Points, &r.Laps, &r.Grid)
		r.Position = model.Position(pos)
		return r, err
	})
}

func (s *SQLiteSource) Drivers(ctx context.Context) ([]model.Driver, error) {
	return querySQLite(ctx, s.db, queryDrivers, func(rows *sql.Rows) (model.Driver, error) {
		var d model.Driver
		err := rows.Scan(&d.ID, &d.Forename, &d.Surname, &d.DOB, &d.Nationality)
		return d, err
	})
}

func (s *SQLiteSource) Races(ctx context.Context) ([]model.Race, error) {
	return querySQLite(ctx, s.db, queryRaces, func(rows *sql.Rows) (model.Race, error) {
		var r model.Race
		err := rows.Scan(&r.ID, &r.Name, &r.Year)
		return r, err
	})
}

func (s *SQLiteSource) Constructors(ctx context.Context) ([]model.Constructor, error) {
	return querySQLite(ctx, s.db, queryConstructors, func(rows *sql.Rows) (model.Constructor, error) {
		var c model.Constructor
		err := rows.Scan(&c.ID, &c.Name)
		return c, err
	})
}

func (s *SQLiteSource) Champions(ctx context.Context) ([]model.Champion, error) {
	return querySQLite(ctx, s.db, queryChampions, func(rows *sql.Rows) (model.Champion, error) {
		var c model.Champion
		err := rows.Scan(&c.Driver, &c.Nationality, &c.Titles)
		return c, err
	})
}

func querySQLite[T any](ctx context.Context, db *sql.DB, query string, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query")
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, eris.Wrap(err, "sqlite: scan row")
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate rows")
	}
	return out, nil
}
