package loader

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/sells-group/f1-analytics/internal/model"
	"github.com/sells-group/f1-analytics/internal/tabular"
)

// FileNames maps each relation to its file name inside the data directory.
type FileNames struct {
	Results      string `yaml:"results" mapstructure:"results"`
	Drivers      string `yaml:"drivers" mapstructure:"drivers"`
	Races        string `yaml:"races" mapstructure:"races"`
	Constructors string `yaml:"constructors" mapstructure:"constructors"`
	Champions    string `yaml:"champions" mapstructure:"champions"`
}

// DefaultFileNames returns the conventional CSV file names.
func DefaultFileNames() FileNames {
	return FileNames{
		Results:      "results.csv",
		Drivers:      "drivers.csv",
		Races:        "races.csv",
		Constructors: "constructors.csv",
		Champions:    "world_champions.csv",
	}
}

// withDefaults fills empty names from DefaultFileNames.
func (f FileNames) withDefaults() FileNames {
	d := DefaultFileNames()
	if f.Results == "" {
		f.Results = d.Results
	}
	if f.Drivers == "" {
		f.Drivers = d.Drivers
	}
	if f.Races == "" {
		f.Races = d.Races
	}
	if f.Constructors == "" {
		f.Constructors = d.Constructors
	}
	if f.Champions == "" {
		f.Champions = d.Champions
	}
	return f
}

// CSVSource reads each relation from a delimited file in one directory.
type CSVSource struct {
	dir   string
	files FileNames
	opts  tabular.CSVOptions
}

// NewCSVSource creates a CSVSource rooted at dir.
func NewCSVSource(dir string, files FileNames, opts tabular.CSVOptions) *CSVSource {
	return &CSVSource{dir: dir, files: files.withDefaults(), opts: opts}
}

func (s *CSVSource) Results(ctx context.Context) ([]model.Result, error) {
	return readCSV[model.Result](ctx, filepath.Join(s.dir, s.files.Results), s.opts)
}

func (s *CSVSource) Drivers(ctx context.Context) ([]model.Driver, error) {
	return readCSV[model.Driver](ctx, filepath.Join(s.dir, s.files.Drivers), s.opts)
}

func (s *CSVSource) Races(ctx context.Context) ([]model.Race, error) {
	return readCSV[model.Race](ctx, filepath.Join(s.dir, s.files.Races), s.opts)
}

func (s *CSVSource) Constructors(ctx context.Context) ([]model.Constructor, error) {
	return readCSV[model.Constructor](ctx, filepath.Join(s.dir, s.files.Constructors), s.opts)
}

func (s *CSVSource) Champions(ctx context.Context) ([]model.Champion, error) {
	return readCSV[model.Champion](ctx, filepath.Join(s.dir, s.files.Champions), s.opts)
}

func readCSV[T any](ctx context.Context, path string, opts tabular.CSVOptions) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "csv source: open %s", path)
	}
	defer f.Close()

	rows, err := tabular.DecodeCSV[T](ctx, f, opts)
	if err != nil {
		return nil, eris.Wrapf(err, "csv source: parse %s", path)
	}
	return rows, nil
}

// XLSXSource reads each relation from a same-named sheet of one workbook.
type XLSXSource struct {
	path string
}

// NewXLSXSource creates an XLSXSource for the workbook at path.
func NewXLSXSource(path string) *XLSXSource {
	return &XLSXSource{path: path}
}

func (s *XLSXSource) Results(_ context.Context) ([]model.Result, error) {
	return readSheet[model.Result](s.path, RelationResults)
}

func (s *XLSXSource) Drivers(_ context.Context) ([]model.Driver, error) {
	return readSheet[model.Driver](s.path, RelationDrivers)
}

func (s *XLSXSource) Races(_ context.Context) ([]model.Race, error) {
	return readSheet[model.Race](s.path, RelationRaces)
}

func (s *XLSXSource) Constructors(_ context.Context) ([]model.Constructor, error) {
	return readSheet[model.Constructor](s.path, RelationConstructors)
}

func (s *XLSXSource) Champions(_ context.Context) ([]model.Champion, error) {
	return readSheet[model.Champion](s.path, RelationChampions)
}

func readSheet[T any](path, sheet string) ([]T, error) {
	rows, err := tabular.DecodeXLSX[T](path, tabular.XLSXOptions{SheetName: sheet})
	if err != nil {
		return nil, eris.Wrapf(err, "xlsx source: sheet %s", sheet)
	}
	return rows, nil
}
