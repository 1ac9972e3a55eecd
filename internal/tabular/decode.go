package tabular

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
)

// ErrEmpty is returned when a source has no header row.
var ErrEmpty = eris.New("tabular: source has no header row")

// MissingColumnsError lists the expected columns a source lacks.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "tabular: missing columns " + joinQuoted(e.Columns)
}

// rowReader is satisfied by csv.Reader and by the in-memory adapters below.
type rowReader interface {
	Read() ([]string, error)
}

// DecodeCSV parses r as a headered CSV and decodes every data row into T
// using its csv struct tags. Every tagged field of T must have a matching
// header column; extra columns are ignored.
func DecodeCSV[T any](ctx context.Context, r io.Reader, opts CSVOptions) ([]T, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	rows, errs := StreamCSV(ctx, r, opts)
	return decodeRows[T](&streamReader{rows: rows, errs: errs})
}

// DecodeRows decodes already-split rows whose first row is the header.
func DecodeRows[T any](rows [][]string) ([]T, error) {
	return decodeRows[T](&sliceReader{rows: rows})
}

func decodeRows[T any](r rowReader) ([]T, error) {
	dec, err := csvutil.NewDecoder(r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, eris.Wrap(err, "tabular: read header")
	}
	dec.DisallowMissingColumns = true

	var zero T
	expected, err := csvutil.Header(zero, "csv")
	if err != nil {
		return nil, eris.Wrap(err, "tabular: derive expected header")
	}
	if missing := missingColumns(expected, dec.Header()); len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	var out []T
	for line := 2; ; line++ {
		var v T
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var missing *csvutil.MissingColumnsError
			if errors.As(err, &missing) {
				return nil, &MissingColumnsError{Columns: missing.Columns}
			}
			return nil, eris.Wrapf(err, "tabular: decode line %d", line)
		}
		out = append(out, v)
	}
	return out, nil
}

type sliceReader struct {
	rows [][]string
	pos  int
}

func (s *sliceReader) Read() ([]string, error) {
	if s.pos >= len(s.rows) {
		return nil, io.EOF
	}
	row := s.rows[s.pos]
	s.pos++
	return row, nil
}

func missingColumns(expected, header []string) []string {
	have := make(map[string]bool, len(header))
	for _, h := range header {
		have[h] = true
	}
	var missing []string
	for _, col := range expected {
		if !have[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

func joinQuoted(cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	return strings.Join(quoted, ", ")
}
