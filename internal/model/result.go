package model

import (
	"math"
	"strconv"
)

// WinningPosition is the only position value that counts as a win.
const WinningPosition Position = "1"

// Position is a finishing position exactly as stored in the source. It may
// hold non-numeric markers such as "R" (retired), "D" (disqualified) or "NC".
type Position string

// IsWin reports whether the position is exactly "1". Values such as "1 ",
// "01" or "1.0" are not wins.
func (p Position) IsWin() bool {
	return p == WinningPosition
}

// Numeric parses the position as a number. Non-numeric markers report false
// and must be treated as missing, never as zero or last place.
func (p Position) Numeric() (float64, bool) {
	v, err := strconv.ParseFloat(string(p), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Result is one driver's entry in one race.
type Result struct {
	ID            int      `csv:"resultId" db:"result_id" json:"result_id" yaml:"result_id"`
	DriverID      int      `csv:"driverId" db:"driver_id" json:"driver_id" yaml:"driver_id"`
	RaceID        int      `csv:"raceId" db:"race_id" json:"race_id" yaml:"race_id"`
	ConstructorID int      `csv:"constructorId" db:"constructor_id" json:"constructor_id" yaml:"constructor_id"`
	Position      Position `csv:"position" db:"position" json:"position" yaml:"position"`
	Points        float64  `csv:"points" db:"points" json:"points" yaml:"points"`
	Laps          int      `csv:"laps" db:"laps" json:"laps" yaml:"laps"`
	Grid          int      `csv:"grid" db:"grid" json:"grid" yaml:"grid"`
}

// JoinedRecord is the denormalized row produced by joining a result with its
// driver, race and constructor.
type JoinedRecord struct {
	DriverID    int    `json:"driver_id" yaml:"driver_id"`
	FullName    string `json:"full_name" yaml:"full_name"`
	Forename    string `json:"forename" yaml:"forename"`
	Surname     string `json:"surname" yaml:"surname"`
	DOB         string `json:"dob" yaml:"dob"`
	Nationality string `json:"nationality" yaml:"nationality"`

	ResultID int      `json:"result_id" yaml:"result_id"`
	Position Position `json:"position" yaml:"position"`
	Points   float64  `json:"points" yaml:"points"`
	Laps     int      `json:"laps" yaml:"laps"`
	Grid     int      `json:"grid" yaml:"grid"`

	RaceID   int    `json:"race_id" yaml:"race_id"`
	RaceName string `json:"race_name" yaml:"race_name"`
	Year     int    `json:"year" yaml:"year"`

	ConstructorID   int    `json:"constructor_id" yaml:"constructor_id"`
	ConstructorName string `json:"constructor_name" yaml:"constructor_name"`
}
