package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/f1-analytics/internal/model"
)

func sampleDrivers() []model.DriverStats {
	return []model.DriverStats{
		{FullName: "Lewis Hamilton", TotalRaces: 3, TotalPoints: 43, TotalLaps: 150, TotalWins: 2, WinRate: 2.0 / 3, PointsPerRace: 43.0 / 3, AdjustedWinRate: 0.59},
		{FullName: "Max Verstappen", TotalRaces: 1, TotalPoints: 18, TotalLaps: 50, WinRate: 0, PointsPerRace: 18, AdjustedWinRate: 0.45},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatTable},
		{"table", FormatTable},
		{"JSON", FormatJSON},
		{" yaml ", FormatYAML},
		{"csv", FormatCSV},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "xml"`)
}

func TestWrite_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatTable, sampleDrivers(), DriverTable))

	out := buf.String()
	assert.Contains(t, out, "Top Drivers by Adjusted Win Rate")
	assert.Contains(t, out, "DRIVER")
	assert.Contains(t, out, "------")
	assert.Contains(t, out, "Lewis Hamilton")
	assert.Contains(t, out, "0.5900")
	assert.Contains(t, out, "0.6667")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// title, blank, header, rule, two rows
	assert.Len(t, lines, 6)
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sampleDrivers(), DriverTable))

	out := buf.String()
	assert.Contains(t, out, `"full_name": "Lewis Hamilton"`)
	assert.Contains(t, out, `"total_wins": 2`)
	assert.Contains(t, out, `"adjusted_win_rate": 0.45`)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, sampleDrivers(), DriverTable))

	out := buf.String()
	assert.Contains(t, out, "- full_name: Lewis Hamilton")
	assert.Contains(t, out, "  total_races: 3")
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, sampleDrivers(), DriverTable))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "full_name,total_races,total_points,total_laps,total_wins,win_rate,points_per_race,adjusted_win_rate", lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "Max Verstappen,1,18,50,0,0,18,0.45"))
}

func TestWrite_CSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, []model.DriverStats{}, DriverTable))
	assert.Empty(t, buf.String())
}

func TestWriteValue_RejectsTable(t *testing.T) {
	var buf bytes.Buffer
	err := WriteValue(&buf, FormatTable, map[string]int{"a": 1})
	require.Error(t, err)
}

func TestFormatCell(t *testing.T) {
	v := 2.5
	assert.Equal(t, "", FormatCell(nil))
	assert.Equal(t, "abc", FormatCell("abc"))
	assert.Equal(t, "7", FormatCell(7))
	assert.Equal(t, "25", FormatCell(25.0))
	assert.Equal(t, "0.1235", FormatCell(Rate(0.123456)))
	assert.Equal(t, "2.50", FormatCell(&v))
	assert.Equal(t, "-", FormatCell((*float64)(nil)))
	assert.Equal(t, "1", FormatCell(model.Position("1")))
}

func TestSeriesTable_NilValue(t *testing.T) {
	v := 3.0
	rows := []model.SeriesPoint{
		{FullName: "A B", Year: 2020, Constructor: "Ferrari", Value: &v},
		{FullName: "A B", Year: 2021, Constructor: "Ferrari"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatTable, rows, SeriesTable("Average Position", "AVG POSITION")))
	out := buf.String()
	assert.Contains(t, out, "AVG POSITION")
	assert.Regexp(t, `2020\s+Ferrari\s+3\.00`, out)
	assert.Regexp(t, `2021\s+Ferrari\s+-`, out)
}

func TestSummaryTable(t *testing.T) {
	tbl := SummaryTable([]model.Summary{{TotalDrivers: 4, WinningDrivers: 1, WinningPercentage: 25}})
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, []any{4, 1, "25.00%"}, tbl.Rows[0])
}

func TestWrite_CSVNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, []string{"All", "Monaco Grand Prix"}, NameTable("Circuits", "CIRCUIT")))
	assert.Equal(t, "CIRCUIT\nAll\nMonaco Grand Prix\n", buf.String())
}
