package model

// DriverStats aggregates every joined record of one driver.
type DriverStats struct {
	FullName        string  `csv:"full_name" json:"full_name" yaml:"full_name"`
	TotalRaces      int     `csv:"total_races" json:"total_races" yaml:"total_races"`
	TotalPoints     float64 `csv:"total_points" json:"total_points" yaml:"total_points"`
	TotalLaps       int     `csv:"total_laps" json:"total_laps" yaml:"total_laps"`
	TotalWins       int     `csv:"total_wins" json:"total_wins" yaml:"total_wins"`
	WinRate         float64 `csv:"win_rate" json:"win_rate" yaml:"win_rate"`
	PointsPerRace   float64 `csv:"points_per_race" json:"points_per_race" yaml:"points_per_race"`
	AdjustedWinRate float64 `csv:"adjusted_win_rate" json:"adjusted_win_rate" yaml:"adjusted_win_rate"`
}

// ConstructorStats aggregates every joined record of one constructor.
type ConstructorStats struct {
	Constructor     string  `csv:"constructor" json:"constructor" yaml:"constructor"`
	AvgPoints       float64 `csv:"avg_points" json:"avg_points" yaml:"avg_points"`
	TotalPoints     float64 `csv:"total_points" json:"total_points" yaml:"total_points"`
	TotalWins       int     `csv:"total_wins" json:"total_wins" yaml:"total_wins"`
	TotalRaces      int     `csv:"total_races" json:"total_races" yaml:"total_races"`
	WinRate         float64 `csv:"win_rate" json:"win_rate" yaml:"win_rate"`
	AdjustedWinRate float64 `csv:"adjusted_win_rate" json:"adjusted_win_rate" yaml:"adjusted_win_rate"`
}

// Summary holds the headline figures of the general statistics view.
type Summary struct {
	TotalDrivers      int     `csv:"total_drivers" json:"total_drivers" yaml:"total_drivers"`
	WinningDrivers    int     `csv:"winning_drivers" json:"winning_drivers" yaml:"winning_drivers"`
	WinningPercentage float64 `csv:"winning_percentage" json:"winning_percentage" yaml:"winning_percentage"`
}

// SeriesPoint is one (driver, year, constructor) point of a time series.
// Value is nil when the group had no usable observations.
type SeriesPoint struct {
	FullName    string   `csv:"full_name" json:"full_name" yaml:"full_name"`
	Year        int      `csv:"year" json:"year" yaml:"year"`
	Constructor string   `csv:"constructor" json:"constructor" yaml:"constructor"`
	Value       *float64 `csv:"value,omitempty" json:"value" yaml:"value"`
}

// RaceResultRow is one line of the comparison race results table.
type RaceResultRow struct {
	FullName string   `csv:"full_name" json:"full_name" yaml:"full_name"`
	Year     int      `csv:"year" json:"year" yaml:"year"`
	RaceName string   `csv:"race_name" json:"race_name" yaml:"race_name"`
	Grid     int      `csv:"grid" json:"grid" yaml:"grid"`
	Position Position `csv:"position" json:"position" yaml:"position"`
	Points   float64  `csv:"points" json:"points" yaml:"points"`
}
