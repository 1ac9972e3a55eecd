package stats

import (
	"fmt"

	"github.com/sells-group/f1-analytics/internal/model"
)

// Summarize computes the headline figures. totalDrivers is the size of the
// drivers table, including drivers without results.
func Summarize(totalDrivers int, drivers []model.DriverStats) model.Summary {
	s := model.Summary{TotalDrivers: totalDrivers}
	for _, d := range drivers {
		if d.TotalWins > 0 {
			s.WinningDrivers++
		}
	}
	if totalDrivers > 0 {
		s.WinningPercentage = float64(s.WinningDrivers) / float64(totalDrivers) * 100
	}
	return s
}

// FormatRate renders a rate with four decimals.
func FormatRate(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

// FormatPercent renders a percentage with two decimals and a percent sign.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
