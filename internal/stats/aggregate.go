package stats

import (
	"sort"

	"github.com/sells-group/f1-analytics/internal/model"
)

// tally accumulates one group of joined records.
type tally struct {
	races  int
	wins   int
	laps   int
	points float64
}

func (t *tally) add(r model.JoinedRecord) {
	t.races++
	t.points += r.Points
	t.laps += r.Laps
	if r.Position.IsWin() {
		t.wins++
	}
}

// groupBy tallies records by key and returns the keys in ascending order.
func groupBy(records []model.JoinedRecord, key func(model.JoinedRecord) string) ([]string, map[string]*tally) {
	groups := make(map[string]*tally)
	for _, r := range records {
		k := key(r)
		t, ok := groups[k]
		if !ok {
			t = &tally{}
			groups[k] = t
		}
		t.add(r)
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, groups
}

func globalRateOf(groups map[string]*tally) float64 {
	var wins, races int
	for _, t := range groups {
		wins += t.wins
		races += t.races
	}
	return GlobalRate(wins, races)
}

// DriverStats aggregates records by driver full name. Rows are ordered by
// name. The adjusted win rate shrinks toward the rate over all drivers.
func DriverStats(records []model.JoinedRecord, weight float64) []model.DriverStats {
	keys, groups := groupBy(records, func(r model.JoinedRecord) string { return r.FullName })
	global := globalRateOf(groups)

	out := make([]model.DriverStats, 0, len(keys))
	for _, k := range keys {
		t := groups[k]
		out = append(out, model.DriverStats{
			FullName:        k,
			TotalRaces:      t.races,
			TotalPoints:     t.points,
			TotalLaps:       t.laps,
			TotalWins:       t.wins,
			WinRate:         float64(t.wins) / float64(t.races),
			PointsPerRace:   t.points / float64(t.races),
			AdjustedWinRate: AdjustedWinRate(t.wins, t.races, global, weight),
		})
	}
	return out
}

// ConstructorStats aggregates records by constructor name. Rows are ordered
// by name. The adjusted win rate shrinks toward the rate over all
// constructors.
func ConstructorStats(records []model.JoinedRecord, weight float64) []model.ConstructorStats {
	keys, groups := groupBy(records, func(r model.JoinedRecord) string { return r.ConstructorName })
	global := globalRateOf(groups)

	out := make([]model.ConstructorStats, 0, len(keys))
	for _, k := range keys {
		t := groups[k]
		out = append(out, model.ConstructorStats{
			Constructor:     k,
			AvgPoints:       t.points / float64(t.races),
			TotalPoints:     t.points,
			TotalWins:       t.wins,
			TotalRaces:      t.races,
			WinRate:         float64(t.wins) / float64(t.races),
			AdjustedWinRate: AdjustedWinRate(t.wins, t.races, global, weight),
		})
	}
	return out
}

// TopDrivers returns the n drivers with the highest adjusted win rate. Ties
// keep their input order. n <= 0 returns every driver.
func TopDrivers(rows []model.DriverStats, n int) []model.DriverStats {
	out := append([]model.DriverStats(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].AdjustedWinRate > out[j].AdjustedWinRate })
	return truncate(out, n)
}

// TopConstructors returns the n constructors with the highest adjusted win
// rate. Ties keep their input order. n <= 0 returns every constructor.
func TopConstructors(rows []model.ConstructorStats, n int) []model.ConstructorStats {
	out := append([]model.ConstructorStats(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].AdjustedWinRate > out[j].AdjustedWinRate })
	return truncate(out, n)
}

func truncate[T any](rows []T, n int) []T {
	if n > 0 && n < len(rows) {
		return rows[:n]
	}
	return rows
}
