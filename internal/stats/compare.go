package stats

import (
	"errors"
	"sort"

	"github.com/rotisserie/eris"

	"github.com/sells-group/f1-analytics/internal/model"
)

// MaxDrivers is the default cap on drivers in one comparison.
const MaxDrivers = 5

// AllCircuits is the circuit choice that disables circuit filtering.
const AllCircuits = "All"

var (
	// ErrTooManyDrivers is returned when a comparison selects more drivers than allowed.
	ErrTooManyDrivers = eris.New("stats: too many drivers selected")
	// ErrInvalidYearRange is returned when the lower year bound exceeds the upper one.
	ErrInvalidYearRange = eris.New("stats: invalid year range")
)

// EmptySelectionWarning reports a selection that matched no results. It is
// not a failure: callers show a neutral message and skip the dependent views.
type EmptySelectionWarning struct {
	Reason string
}

func (w *EmptySelectionWarning) Error() string {
	return w.Reason
}

// IsEmptySelection reports whether err is an EmptySelectionWarning.
func IsEmptySelection(err error) bool {
	var w *EmptySelectionWarning
	return errors.As(err, &w)
}

// Filter is the state of the comparison controls. Zero years mean "use the
// bounds of the selected drivers". An empty Circuit or AllCircuits means no
// circuit filter.
type Filter struct {
	Drivers  []string `json:"drivers" yaml:"drivers"`
	FromYear int      `json:"from_year,omitempty" yaml:"from_year,omitempty"`
	ToYear   int      `json:"to_year,omitempty" yaml:"to_year,omitempty"`
	Circuit  string   `json:"circuit,omitempty" yaml:"circuit,omitempty"`
}

// Comparison is everything the driver comparison view renders.
type Comparison struct {
	Drivers         []string              `json:"drivers" yaml:"drivers"`
	MinYear         int                   `json:"min_year" yaml:"min_year"`
	MaxYear         int                   `json:"max_year" yaml:"max_year"`
	FromYear        int                   `json:"from_year" yaml:"from_year"`
	ToYear          int                   `json:"to_year" yaml:"to_year"`
	Circuits        []string              `json:"circuits" yaml:"circuits"`
	Circuit         string                `json:"circuit" yaml:"circuit"`
	AveragePoints   []model.SeriesPoint   `json:"average_points" yaml:"average_points"`
	CumulativeWins  []model.SeriesPoint   `json:"cumulative_wins" yaml:"cumulative_wins"`
	AveragePosition []model.SeriesPoint   `json:"average_position" yaml:"average_position"`
	Results         []model.RaceResultRow `json:"results" yaml:"results"`
}

// DriverNames returns the distinct driver full names in ascending order.
func DriverNames(records []model.JoinedRecord) []string {
	return distinctSorted(records, func(r model.JoinedRecord) string { return r.FullName })
}

// Circuits returns the distinct race names in ascending order.
func Circuits(records []model.JoinedRecord) []string {
	return distinctSorted(records, func(r model.JoinedRecord) string { return r.RaceName })
}

// YearBounds returns the smallest and largest year in records. ok is false
// when records is empty.
func YearBounds(records []model.JoinedRecord) (minYear, maxYear int, ok bool) {
	for i, r := range records {
		if i == 0 || r.Year < minYear {
			minYear = r.Year
		}
		if i == 0 || r.Year > maxYear {
			maxYear = r.Year
		}
	}
	return minYear, maxYear, len(records) > 0
}

// SelectDrivers keeps records of the named drivers, in record order.
func SelectDrivers(records []model.JoinedRecord, names []string) []model.JoinedRecord {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	return where(records, func(r model.JoinedRecord) bool { return want[r.FullName] })
}

// YearRange keeps records with from <= year <= to.
func YearRange(records []model.JoinedRecord, from, to int) []model.JoinedRecord {
	return where(records, func(r model.JoinedRecord) bool { return r.Year >= from && r.Year <= to })
}

// Circuit keeps records of the named race. Empty or AllCircuits keeps all.
func Circuit(records []model.JoinedRecord, name string) []model.JoinedRecord {
	if name == "" || name == AllCircuits {
		return records
	}
	return where(records, func(r model.JoinedRecord) bool { return r.RaceName == name })
}

// Compare applies f to records and computes every comparison view.
// maxDrivers <= 0 means MaxDrivers.
func Compare(records []model.JoinedRecord, f Filter, maxDrivers int) (*Comparison, error) {
	if maxDrivers <= 0 {
		maxDrivers = MaxDrivers
	}
	drivers := dedupe(f.Drivers)
	if len(drivers) == 0 {
		return nil, &EmptySelectionWarning{Reason: "no drivers selected"}
	}
	if len(drivers) > maxDrivers {
		return nil, eris.Wrapf(ErrTooManyDrivers, "stats: %d selected, at most %d allowed", len(drivers), maxDrivers)
	}

	selected := SelectDrivers(records, drivers)
	minYear, maxYear, ok := YearBounds(selected)
	if !ok {
		return nil, &EmptySelectionWarning{Reason: "no results for the selected drivers"}
	}

	from, to := f.FromYear, f.ToYear
	if from == 0 {
		from = minYear
	}
	if to == 0 {
		to = maxYear
	}
	if from > to {
		return nil, eris.Wrapf(ErrInvalidYearRange, "stats: from %d is after to %d", from, to)
	}

	inRange := YearRange(selected, from, to)
	circuit := f.Circuit
	if circuit == "" {
		circuit = AllCircuits
	}
	filtered := Circuit(inRange, circuit)

	c := &Comparison{
		Drivers:  drivers,
		MinYear:  minYear,
		MaxYear:  maxYear,
		FromYear: from,
		ToYear:   to,
		Circuits: append([]string{AllCircuits}, Circuits(inRange)...),
		Circuit:  circuit,
	}
	if len(filtered) == 0 {
		return c, &EmptySelectionWarning{Reason: "no results in the selected year range and circuit"}
	}

	c.AveragePoints = AveragePoints(filtered, drivers)
	c.CumulativeWins = CumulativeWins(filtered, drivers)
	c.AveragePosition = AveragePosition(filtered)
	c.Results = RaceResults(filtered)
	return c, nil
}

// seriesKey identifies one (year, constructor) bucket of a driver series.
type seriesKey struct {
	year        int
	constructor string
}

// meanAcc accumulates a mean over observed values only.
type meanAcc struct {
	sum float64
	n   int
}

func (a *meanAcc) add(v float64) {
	a.sum += v
	a.n++
}

// mean is nil when nothing was observed.
func (a *meanAcc) mean() *float64 {
	if a.n == 0 {
		return nil
	}
	m := a.sum / float64(a.n)
	return &m
}

func sortedKeys[V any](m map[seriesKey]V) []seriesKey {
	keys := make([]seriesKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].constructor < keys[j].constructor
	})
	return keys
}

// AveragePoints returns mean points per race grouped by (year, constructor)
// for each driver, in driver order. A driver who changed teams within a year
// gets one point per team.
func AveragePoints(records []model.JoinedRecord, drivers []string) []model.SeriesPoint {
	var out []model.SeriesPoint
	for _, name := range drivers {
		groups := make(map[seriesKey]*meanAcc)
		for _, r := range records {
			if r.FullName != name {
				continue
			}
			k := seriesKey{r.Year, r.ConstructorName}
			if groups[k] == nil {
				groups[k] = &meanAcc{}
			}
			groups[k].add(r.Points)
		}
		for _, k := range sortedKeys(groups) {
			out = append(out, model.SeriesPoint{FullName: name, Year: k.year, Constructor: k.constructor, Value: groups[k].mean()})
		}
	}
	return out
}

// CumulativeWins counts wins per (year, constructor) for each driver and
// running-sums them in year order. Drivers without wins contribute nothing.
func CumulativeWins(records []model.JoinedRecord, drivers []string) []model.SeriesPoint {
	var out []model.SeriesPoint
	for _, name := range drivers {
		groups := make(map[seriesKey]int)
		for _, r := range records {
			if r.FullName == name && r.Position.IsWin() {
				groups[seriesKey{r.Year, r.ConstructorName}]++
			}
		}
		total := 0
		for _, k := range sortedKeys(groups) {
			total += groups[k]
			v := float64(total)
			out = append(out, model.SeriesPoint{FullName: name, Year: k.year, Constructor: k.constructor, Value: &v})
		}
	}
	return out
}

// AveragePosition returns the mean numeric finishing position grouped by
// (driver, year, constructor), ordered by driver name then year. Non-numeric
// positions are left out of the mean; a group with none has a nil Value.
func AveragePosition(records []model.JoinedRecord) []model.SeriesPoint {
	type key struct {
		name string
		seriesKey
	}
	groups := make(map[key]*meanAcc)
	var keys []key
	for _, r := range records {
		k := key{r.FullName, seriesKey{r.Year, r.ConstructorName}}
		if groups[k] == nil {
			groups[k] = &meanAcc{}
			keys = append(keys, k)
		}
		if v, ok := r.Position.Numeric(); ok {
			groups[k].add(v)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].name != keys[j].name {
			return keys[i].name < keys[j].name
		}
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].constructor < keys[j].constructor
	})

	out := make([]model.SeriesPoint, 0, len(keys))
	for _, k := range keys {
		out = append(out, model.SeriesPoint{FullName: k.name, Year: k.year, Constructor: k.constructor, Value: groups[k].mean()})
	}
	return out
}

// RaceResults projects records onto the race results table.
func RaceResults(records []model.JoinedRecord) []model.RaceResultRow {
	out := make([]model.RaceResultRow, 0, len(records))
	for _, r := range records {
		out = append(out, model.RaceResultRow{
			FullName: r.FullName,
			Year:     r.Year,
			RaceName: r.RaceName,
			Grid:     r.Grid,
			Position: r.Position,
			Points:   r.Points,
		})
	}
	return out
}

func where(records []model.JoinedRecord, keep func(model.JoinedRecord) bool) []model.JoinedRecord {
	var out []model.JoinedRecord
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func distinctSorted(records []model.JoinedRecord, field func(model.JoinedRecord) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		v := field(r)
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	var out []string
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
