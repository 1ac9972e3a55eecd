package report

import (
	"github.com/sells-group/f1-analytics/internal/model"
	"github.com/sells-group/f1-analytics/internal/stats"
)

// DriverTable lists driver rankings.
func DriverTable(rows []model.DriverStats) Table {
	t := Table{
		Title:   "Top Drivers by Adjusted Win Rate",
		Headers: []string{"DRIVER", "ADJ WIN RATE", "WINS", "RACES", "WIN RATE", "POINTS", "PTS/RACE", "LAPS"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{
			r.FullName, Rate(r.AdjustedWinRate), r.TotalWins, r.TotalRaces,
			Rate(r.WinRate), r.TotalPoints, Rate(r.PointsPerRace), r.TotalLaps,
		})
	}
	return t
}

// ConstructorTable lists constructor rankings.
func ConstructorTable(rows []model.ConstructorStats) Table {
	t := Table{
		Title:   "Top Constructors by Adjusted Win Rate",
		Headers: []string{"CONSTRUCTOR", "ADJ WIN RATE", "WINS", "RACES", "WIN RATE", "POINTS", "AVG POINTS"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{
			r.Constructor, Rate(r.AdjustedWinRate), r.TotalWins, r.TotalRaces,
			Rate(r.WinRate), r.TotalPoints, Rate(r.AvgPoints),
		})
	}
	return t
}

// ChampionTable lists world champions as loaded.
func ChampionTable(rows []model.Champion) Table {
	t := Table{
		Title:   "World Champions",
		Headers: []string{"DRIVER", "NATIONALITY", "TITLES"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Driver, r.Nationality, r.Titles})
	}
	return t
}

// SummaryTable renders the headline metrics as one row.
func SummaryTable(rows []model.Summary) Table {
	t := Table{
		Title:   "General Statistics",
		Headers: []string{"TOTAL DRIVERS", "WINNING DRIVERS", "WIN LIKELIHOOD"},
	}
	for _, s := range rows {
		t.Rows = append(t.Rows, []any{s.TotalDrivers, s.WinningDrivers, stats.FormatPercent(s.WinningPercentage)})
	}
	return t
}

// SeriesTable renders a time series under the given title and value label.
func SeriesTable(title, label string) func([]model.SeriesPoint) Table {
	return func(rows []model.SeriesPoint) Table {
		t := Table{
			Title:   title,
			Headers: []string{"DRIVER", "YEAR", "CONSTRUCTOR", label},
		}
		for _, p := range rows {
			t.Rows = append(t.Rows, []any{p.FullName, p.Year, p.Constructor, p.Value})
		}
		return t
	}
}

// ResultsTable lists individual race results.
func ResultsTable(rows []model.RaceResultRow) Table {
	t := Table{
		Title:   "Race Results",
		Headers: []string{"DRIVER", "YEAR", "RACE", "GRID", "POSITION", "POINTS"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.FullName, r.Year, r.RaceName, r.Grid, string(r.Position), r.Points})
	}
	return t
}

// NameTable renders a single column of names.
func NameTable(title, header string) func([]string) Table {
	return func(names []string) Table {
		t := Table{Title: title, Headers: []string{header}}
		for _, n := range names {
			t.Rows = append(t.Rows, []any{n})
		}
		return t
	}
}
