package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/f1-analytics/internal/report"
)

var championsCmd = &cobra.Command{
	Use:   "champions",
	Short: "List world champions",
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}

		ds, err := loadDataset(cmd.Context(), "query")
		if err != nil {
			return err
		}

		return report.Write(cmd.OutOrStdout(), format, ds.Champions, report.ChampionTable)
	},
}

func init() {
	addFormatFlag(championsCmd)
	rootCmd.AddCommand(championsCmd)
}
