package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/f1-analytics/internal/model"
	"github.com/sells-group/f1-analytics/internal/report"
	"github.com/sells-group/f1-analytics/internal/stats"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show headline statistics",
	Long:  "Shows the number of drivers, how many have won at least one race, and the likelihood of a driver winning a race.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}

		ds, err := loadDataset(cmd.Context(), "query")
		if err != nil {
			return err
		}

		s := stats.Summarize(len(ds.Drivers), stats.DriverStats(ds.Records, cfg.Stats.Weight))
		return report.Write(cmd.OutOrStdout(), format, []model.Summary{s}, report.SummaryTable)
	},
}

func init() {
	addFormatFlag(summaryCmd)
	rootCmd.AddCommand(summaryCmd)
}
