// Package report writes analysis results to spreadsheets and PDF
// calculation sheets, and reads batches of sections from spreadsheets.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gorcc/internal/column"
)

const (
	sheetSummary = "Summary"
	sheetBars    = "Bars"
	sheetSweep   = "Sweep"
)

var barHeader = []interface{}{
	"#", "Type", "Dia (mm)", "Area (mm²)", "X (mm)", "Y (mm)",
	"εx", "fcx (MPa)", "fsx (MPa)", "Px (kN)", "Mx (kN·m)",
	"εy", "fcy (MPa)", "fsy (MPa)", "Py (kN)", "My (kN·m)",
}

var sweepHeader = []interface{}{
	"xu (mm)", "Px (kN)", "Mx (kN·m)", "Py (kN)", "My (kN·m)",
	"Ccx (kN)", "Csx (kN)", "Ccy (kN)", "Csy (kN)",
}

// WriteAnalysis writes a workbook with a Summary sheet and one row per bar
func WriteAnalysis(w io.Writer, s *column.Section, c *column.Capacity) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Section", s.Name},
		{"Dx (mm)", s.Dx},
		{"Dy (mm)", s.Dy},
		{"Bars per X face", s.NrX},
		{"Bars per Y face", s.NrY},
		{"Effective cover (mm)", s.EffectiveCover()},
		{"fck (MPa)", s.Fck},
		{"fy (MPa)", s.Fy},
		{"Steel law", steelName(s)},
		{"xu (mm)", c.Xu},
		{},
		{"", "X axis", "Y axis"},
		{"g", c.Gx, c.Gy},
		{"x̄ (mm)", c.XBarX, c.XBarY},
		{"Cc (kN)", c.Ccx / 1e3, c.Ccy / 1e3},
		{"Mc (kN·m)", c.Mcx / 1e6, c.Mcy / 1e6},
		{"Cs (kN)", c.Csx / 1e3, c.Csy / 1e3},
		{"Ms (kN·m)", c.Msx / 1e6, c.Msy / 1e6},
		{"P (kN)", c.Px / 1e3, c.Py / 1e3},
		{"M (kN·m)", c.Mx / 1e6, c.My / 1e6},
	}
	if err := writeRows(f, sheetSummary, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetSummary, "A1", fmt.Sprintf("A%d", len(rows)), bold); err != nil {
		return err
	}

	if _, err := f.NewSheet(sheetBars); err != nil {
		return err
	}
	bars := [][]interface{}{barHeader}
	for i, b := range c.Bars {
		bars = append(bars, []interface{}{
			i + 1, b.Bar.Placement.String(), b.Bar.Diameter, b.Bar.Area(), b.Bar.X, b.Bar.Y,
			b.X.Strain, b.X.ConcreteStress, b.X.SteelStress, b.X.Force / 1e3, b.X.Moment / 1e6,
			b.Y.Strain, b.Y.ConcreteStress, b.Y.SteelStress, b.Y.Force / 1e3, b.Y.Moment / 1e6,
		})
	}
	if err := writeRows(f, sheetBars, bars); err != nil {
		return err
	}
	if err := styleHeader(f, sheetBars, len(barHeader), bold); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}

// WriteSweep writes a workbook with one row per trial depth
func WriteSweep(w io.Writer, s *column.Section, results []*column.Capacity) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSweep); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	rows := [][]interface{}{sweepHeader}
	for _, c := range results {
		rows = append(rows, []interface{}{
			c.Xu, c.Px / 1e3, c.Mx / 1e6, c.Py / 1e3, c.My / 1e6,
			c.Ccx / 1e3, c.Csx / 1e3, c.Ccy / 1e3, c.Csy / 1e3,
		})
	}
	if err := writeRows(f, sheetSweep, rows); err != nil {
		return err
	}
	if err := styleHeader(f, sheetSweep, len(sweepHeader), bold); err != nil {
		return err
	}
	if s.Name != "" {
		if err := f.SetDocProps(&excelize.DocProperties{Title: s.Name + " trial depth sweep"}); err != nil {
			return err
		}
	}

	_, err = f.WriteTo(w)
	return err
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func styleHeader(f *excelize.File, sheet string, cols, style int) error {
	last, err := excelize.CoordinatesToCellName(cols, 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func steelName(s *column.Section) string {
	if s.Steel == "" {
		return "placeholder"
	}
	return s.Steel
}
