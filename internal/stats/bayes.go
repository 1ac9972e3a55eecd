// Package stats computes per-driver and per-constructor aggregates and the
// filtered time series of the driver comparison view.
package stats

// DefaultWeight is the pseudo-count of races at the global rate that every
// entity starts with.
const DefaultWeight = 10.0

// AdjustedWinRate shrinks an observed win rate toward globalRate:
//
//	(wins + weight*globalRate) / (races + weight)
//
// With weight > 0 the result is always defined and lies between the raw rate
// and globalRate. As races grows it approaches wins/races.
func AdjustedWinRate(wins, races int, globalRate, weight float64) float64 {
	return (float64(wins) + weight*globalRate) / (float64(races) + weight)
}

// GlobalRate is total wins over total races, or 0 when there are no races.
func GlobalRate(totalWins, totalRaces int) float64 {
	if totalRaces == 0 {
		return 0
	}
	return float64(totalWins) / float64(totalRaces)
}
