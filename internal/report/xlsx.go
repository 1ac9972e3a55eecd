package report

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// maxSheetName is the Excel limit on sheet name length.
const maxSheetName = 31

// Sheet is one named worksheet of an exported workbook.
type Sheet struct {
	Name  string
	Table Table
}

// WriteWorkbook saves the sheets as an XLSX file at path. Numeric cells keep
// their type; rates are stored with a four-decimal number format.
func WriteWorkbook(path string, sheets ...Sheet) error {
	if len(sheets) == 0 {
		return eris.New("report: workbook needs at least one sheet")
	}

	f := xlsx.NewFile()
	for _, s := range sheets {
		name := s.Name
		if len(name) > maxSheetName {
			name = name[:maxSheetName]
		}
		sh, err := f.AddSheet(name)
		if err != nil {
			return eris.Wrapf(err, "report: add sheet %s", name)
		}

		header := sh.AddRow()
		for _, h := range s.Table.Headers {
			header.AddCell().SetString(h)
		}
		for _, row := range s.Table.Rows {
			r := sh.AddRow()
			for _, c := range row {
				setCell(r.AddCell(), c)
			}
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "report: save workbook %s", path)
	}
	return nil
}

func setCell(cell *xlsx.Cell, v any) {
	switch c := v.(type) {
	case nil:
	case string:
		cell.SetString(c)
	case int:
		cell.SetInt(c)
	case float64:
		cell.SetFloat(c)
	case Rate:
		cell.SetFloatWithFormat(float64(c), "0.0000")
	case *float64:
		if c != nil {
			cell.SetFloatWithFormat(*c, "0.00")
		}
	default:
		cell.SetString(fmt.Sprint(c))
	}
}
