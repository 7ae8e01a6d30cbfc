package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gorcc/internal/column"
)

// BatchColumns is the expected column order of an import sheet. The steel
// column is optional.
var BatchColumns = []string{
	"name", "dx", "dy", "nx", "ny", "clear_cover", "tie_diameter",
	"corner_diameter", "other_diameter", "fck", "fy", "xu", "steel",
}

// RowError reports a sheet row that could not be turned into a section
type RowError struct {
	Row int // 1-based sheet row
	Err error
}

func (e *RowError) Error() string { return fmt.Sprintf("row %d: %v", e.Row, e.Err) }

func (e *RowError) Unwrap() error { return e.Err }

// ReadSections reads sections from the first sheet of a workbook. The first
// row is a header. Rows that fail to parse or validate are reported and
// skipped; blank rows are ignored.
func ReadSections(r io.Reader) ([]column.Section, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	var sections []column.Section
	var rowErrs []RowError
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		s, err := parseSectionRow(row)
		if err == nil {
			err = s.Validate()
		}
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: i + 1, Err: err})
			continue
		}
		sections = append(sections, s)
	}

	return sections, rowErrs, nil
}

func parseSectionRow(row []string) (column.Section, error) {
	// expected: name, dx, dy, nx, ny, cover, tie, corner, other, fck, fy, xu, steel(optional)
	if len(row) < 12 {
		return column.Section{}, fmt.Errorf("want at least 12 columns, got %d", len(row))
	}

	nums := make([]float64, 11)
	for i := range nums {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i+1]), 64)
		if err != nil {
			return column.Section{}, fmt.Errorf("%s: %q is not a number", BatchColumns[i+1], row[i+1])
		}
		nums[i] = v
	}
	for _, i := range []int{2, 3} {
		if nums[i] != math.Trunc(nums[i]) {
			return column.Section{}, fmt.Errorf("%s: %q is not a whole number of bars", BatchColumns[i+1], row[i+1])
		}
	}

	s := column.Section{
		Name:           strings.TrimSpace(row[0]),
		Dx:             nums[0],
		Dy:             nums[1],
		NrX:            int(nums[2]),
		NrY:            int(nums[3]),
		ClearCover:     nums[4],
		TieDiameter:    nums[5],
		CornerDiameter: nums[6],
		OtherDiameter:  nums[7],
		Fck:            nums[8],
		Fy:             nums[9],
		Xu:             nums[10],
	}
	if len(row) > 12 {
		s.Steel = strings.TrimSpace(row[12])
	}
	return s, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
