package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/f1-analytics/internal/report"
	"github.com/sells-group/f1-analytics/internal/stats"
)

var driversCmd = &cobra.Command{
	Use:   "drivers",
	Short: "Rank drivers by adjusted win rate",
	Long:  "Aggregates every result per driver and ranks drivers by Bayesian-adjusted win rate. With --names, lists the distinct driver names available for comparison.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}
		top, weight := rankingFlags(cmd)
		if err := checkRanking(top, weight); err != nil {
			return err
		}

		ds, err := loadDataset(cmd.Context(), "query")
		if err != nil {
			return err
		}

		if names, _ := cmd.Flags().GetBool("names"); names {
			return report.Write(cmd.OutOrStdout(), format, stats.DriverNames(ds.Records), report.NameTable("Drivers", "DRIVER"))
		}

		rows := stats.TopDrivers(stats.DriverStats(ds.Records, weight), top)
		return report.Write(cmd.OutOrStdout(), format, rows, report.DriverTable)
	},
}

var constructorsCmd = &cobra.Command{
	Use:   "constructors",
	Short: "Rank constructors by adjusted win rate",
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}
		top, weight := rankingFlags(cmd)
		if err := checkRanking(top, weight); err != nil {
			return err
		}

		ds, err := loadDataset(cmd.Context(), "query")
		if err != nil {
			return err
		}

		rows := stats.TopConstructors(stats.ConstructorStats(ds.Records, weight), top)
		return report.Write(cmd.OutOrStdout(), format, rows, report.ConstructorTable)
	},
}

func checkRanking(top int, weight float64) error {
	if top < 0 {
		return eris.New("--top must be >= 0")
	}
	if weight < 0 {
		return eris.New("--weight must be >= 0")
	}
	return nil
}

func init() {
	addFormatFlag(driversCmd)
	addRankingFlags(driversCmd)
	driversCmd.Flags().Bool("names", false, "list distinct driver names instead of rankings")
	rootCmd.AddCommand(driversCmd)

	addFormatFlag(constructorsCmd)
	addRankingFlags(constructorsCmd)
	rootCmd.AddCommand(constructorsCmd)
}
