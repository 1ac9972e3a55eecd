// Package report renders statistics as text tables, JSON, YAML, CSV and XLSX
// workbooks.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/f1-analytics/internal/stats"
)

// Format selects an output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatCSV   Format = "csv"
)

// ParseFormat validates a format name. Empty means FormatTable.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatYAML, FormatCSV:
		return f, nil
	default:
		return "", eris.Errorf("report: unknown format %q (want table, json, yaml or csv)", s)
	}
}

// Rate is a ratio rendered with four decimals.
type Rate float64

// Table is a header plus rows of cells. Cells may be string, int, float64,
// Rate, *float64 or any string-kinded type.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]any
}

// Write renders rows in the given format. table builds the text form and is
// only called for FormatTable.
func Write[T any](w io.Writer, f Format, rows []T, table func([]T) Table) error {
	switch f {
	case FormatJSON, FormatYAML:
		return WriteValue(w, f, rows)
	case FormatCSV:
		if len(rows) == 0 {
			return nil
		}
		if _, ok := any(rows).([]string); ok {
			return writeCSVTable(w, table(rows))
		}
		b, err := csvutil.Marshal(rows)
		if err != nil {
			return eris.Wrap(err, "report: marshal csv")
		}
		_, err = w.Write(b)
		return eris.Wrap(err, "report: write csv")
	default:
		return WriteTable(w, table(rows))
	}
}

// writeCSVTable writes a table's header and cells as CSV, for row types
// csvutil cannot marshal.
func writeCSVTable(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return eris.Wrap(err, "report: write csv header")
	}
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = FormatCell(c)
		}
		if err := cw.Write(cells); err != nil {
			return eris.Wrap(err, "report: write csv row")
		}
	}
	cw.Flush()
	return eris.Wrap(cw.Error(), "report: flush csv")
}

// WriteValue encodes v as JSON or YAML.
func WriteValue(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(v), "report: encode json")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return eris.Wrap(err, "report: encode yaml")
		}
		return eris.Wrap(enc.Close(), "report: close yaml encoder")
	default:
		return eris.Errorf("report: format %q cannot encode values", f)
	}
}

// WriteTable prints t as aligned columns.
func WriteTable(w io.Writer, t Table) error {
	if t.Title != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", t.Title); err != nil {
			return eris.Wrap(err, "report: write title")
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	rules := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		rules[i] = strings.Repeat("-", len(h))
	}
	_, _ = fmt.Fprintln(tw, strings.Join(rules, "\t"))

	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = FormatCell(c)
		}
		_, _ = fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return eris.Wrap(tw.Flush(), "report: flush table")
}

// FormatCell renders one cell as text.
func FormatCell(c any) string {
	switch v := c.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case Rate:
		return stats.FormatRate(float64(v))
	case *float64:
		if v == nil {
			return "-"
		}
		return strconv.FormatFloat(*v, 'f', 2, 64)
	default:
		return fmt.Sprint(v)
	}
}
