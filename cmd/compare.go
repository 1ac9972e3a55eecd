package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sells-group/f1-analytics/internal/loader"
	"github.com/sells-group/f1-analytics/internal/model"
	"github.com/sells-group/f1-analytics/internal/report"
	"github.com/sells-group/f1-analytics/internal/stats"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare drivers over a year range and circuit",
	Long:  "Compares up to stats.max_drivers drivers: average points and cumulative wins per season, average finishing position per season and constructor, and the individual race results.",
	Example: `  f1-analytics compare --driver "Lewis Hamilton" --driver "Max Verstappen" --from 2016 --to 2021
  f1-analytics compare --driver "Ayrton Senna" --circuit "Monaco Grand Prix" --format json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}

		ds, err := loadDataset(cmd.Context(), "query")
		if err != nil {
			return err
		}

		cmp, warn, err := runCompare(cmd, ds)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if warn != "" {
			fmt.Fprintln(os.Stderr, "No results: "+warn)
		}
		if cmp == nil {
			return nil
		}

		switch format {
		case report.FormatJSON, report.FormatYAML:
			return report.WriteValue(out, format, cmp)
		case report.FormatCSV:
			return report.Write(out, format, cmp.Results, report.ResultsTable)
		default:
			return writeComparison(out, cmp)
		}
	},
}

var circuitsCmd = &cobra.Command{
	Use:   "circuits",
	Short: "List circuits raced by the selected drivers",
	Long:  "Lists the circuit choices for compare: All, then every race name the selected drivers entered within the year range.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}

		ds, err := loadDataset(cmd.Context(), "query")
		if err != nil {
			return err
		}

		cmp, warn, err := runCompare(cmd, ds)
		if err != nil {
			return err
		}
		if cmp == nil {
			fmt.Fprintln(os.Stderr, "No results: "+warn)
			return nil
		}
		return report.Write(cmd.OutOrStdout(), format, cmp.Circuits, report.NameTable("Circuits", "CIRCUIT"))
	},
}

// runCompare builds the filter from flags and runs the comparison. An empty
// selection is reported through warn, not err.
func runCompare(cmd *cobra.Command, ds *loader.Dataset) (*stats.Comparison, string, error) {
	drivers, _ := cmd.Flags().GetStringArray("driver")
	from, _ := cmd.Flags().GetInt("from")
	to, _ := cmd.Flags().GetInt("to")
	circuit := ""
	if f := cmd.Flags().Lookup("circuit"); f != nil {
		circuit = f.Value.String()
	}

	cmp, err := stats.Compare(ds.Records, stats.Filter{
		Drivers:  drivers,
		FromYear: from,
		ToYear:   to,
		Circuit:  circuit,
	}, cfg.Stats.MaxDrivers)

	var warn *stats.EmptySelectionWarning
	if errors.As(err, &warn) {
		return cmp, warn.Reason, nil
	}
	if err != nil {
		return nil, "", err
	}
	return cmp, "", nil
}

func writeComparison(w io.Writer, c *stats.Comparison) error {
	fmt.Fprintf(w, "Drivers:  %s\n", strings.Join(c.Drivers, ", "))
	fmt.Fprintf(w, "Years:    %d-%d (available %d-%d)\n", c.FromYear, c.ToYear, c.MinYear, c.MaxYear)
	fmt.Fprintf(w, "Circuit:  %s\n\n", c.Circuit)

	if len(c.Results) == 0 {
		return nil
	}

	sections := []struct {
		title, label string
		rows         []model.SeriesPoint
	}{
		{"Average Points per Season", "AVG POINTS", c.AveragePoints},
		{"Cumulative Wins", "WINS", c.CumulativeWins},
		{"Average Finishing Position", "AVG POSITION", c.AveragePosition},
	}
	for _, s := range sections {
		if err := report.WriteTable(w, report.SeriesTable(s.title, s.label)(s.rows)); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return report.WriteTable(w, report.ResultsTable(c.Results))
}

func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("driver", nil, "driver full name (repeatable)")
	cmd.Flags().Int("from", 0, "first season (default: earliest season of the selected drivers)")
	cmd.Flags().Int("to", 0, "last season (default: latest season of the selected drivers)")
}

func init() {
	addFormatFlag(compareCmd)
	addSelectionFlags(compareCmd)
	compareCmd.Flags().String("circuit", stats.AllCircuits, "race name to filter on, or All")
	rootCmd.AddCommand(compareCmd)

	addFormatFlag(circuitsCmd)
	addSelectionFlags(circuitsCmd)
	rootCmd.AddCommand(circuitsCmd)
}
