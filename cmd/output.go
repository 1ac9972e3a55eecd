package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/f1-analytics/internal/report"
)

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().String("format", string(report.FormatTable), "output format: table, json, yaml or csv")
}

func outputFormat(cmd *cobra.Command) (report.Format, error) {
	raw, _ := cmd.Flags().GetString("format")
	return report.ParseFormat(raw)
}

// rankingFlags returns --top and --weight, falling back to the stats config
// when a flag was not set.
func rankingFlags(cmd *cobra.Command) (top int, weight float64) {
	top, weight = cfg.Stats.TopN, cfg.Stats.Weight
	if cmd.Flags().Changed("top") {
		top, _ = cmd.Flags().GetInt("top")
	}
	if cmd.Flags().Changed("weight") {
		weight, _ = cmd.Flags().GetFloat64("weight")
	}
	return top, weight
}

func addRankingFlags(cmd *cobra.Command) {
	cmd.Flags().Int("top", 30, "number of rows to show, 0 for all (default from stats.top_n)")
	cmd.Flags().Float64("weight", 10, "Bayesian prior weight (default from stats.weight)")
}
