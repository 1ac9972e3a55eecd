package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/f1-analytics/internal/loader"
	"github.com/sells-group/f1-analytics/internal/model"
	"github.com/sells-group/f1-analytics/internal/report"
	"github.com/sells-group/f1-analytics/internal/stats"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all statistics to an XLSX workbook",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, _ := cmd.Flags().GetString("out")
		top, weight := rankingFlags(cmd)
		if err := checkRanking(top, weight); err != nil {
			return err
		}

		ds, err := loadDataset(cmd.Context(), "query")
		if err != nil {
			return err
		}

		if err := report.WriteWorkbook(out, exportSheets(ds, top, weight)...); err != nil {
			return err
		}

		zap.L().Info("workbook exported", zap.String("path", out))
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
		return nil
	},
}

func exportSheets(ds *loader.Dataset, top int, weight float64) []report.Sheet {
	drivers := stats.DriverStats(ds.Records, weight)
	summary := stats.Summarize(len(ds.Drivers), drivers)

	return []report.Sheet{
		{Name: "Summary", Table: report.SummaryTable([]model.Summary{summary})},
		{Name: "Drivers", Table: report.DriverTable(stats.TopDrivers(drivers, top))},
		{Name: "Constructors", Table: report.ConstructorTable(stats.TopConstructors(stats.ConstructorStats(ds.Records, weight), top))},
		{Name: "Champions", Table: report.ChampionTable(ds.Champions)},
	}
}

func init() {
	exportCmd.Flags().String("out", "f1-analytics.xlsx", "output workbook path")
	addRankingFlags(exportCmd)
	rootCmd.AddCommand(exportCmd)
}
