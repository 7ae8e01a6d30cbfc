package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gorcc/internal/column"
)

// SheetInfo is the title block of a calculation sheet
type SheetInfo struct {
	Project string
	Author  string
	Title   string
}

// WritePDF writes a one-page calculation sheet for an analysis
func WritePDF(w io.Writer, info SheetInfo, s *column.Section, c *column.Capacity) error {
	if info.Title == "" {
		info.Title = "Column Section Capacity"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, info.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if info.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", info.Project))
		pdf.Ln(6)
	}
	if info.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", info.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	heading := func(text string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, text)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
	}
	pair := func(label, value string) {
		pdf.CellFormat(70, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
	}

	heading("Input")
	if s.Name != "" {
		pair("Section", s.Name)
	}
	pair("Dimensions", fmt.Sprintf("%.0f x %.0f mm", s.Dx, s.Dy))
	pair("Bars per face (X, Y)", fmt.Sprintf("%d, %d (%d bars)", s.NrX, s.NrY, s.BarCount()))
	pair("Corner / other bar dia.", fmt.Sprintf("%.0f / %.0f mm", s.CornerDiameter, s.OtherDiameter))
	pair("Clear cover / tie dia.", fmt.Sprintf("%.0f / %.0f mm", s.ClearCover, s.TieDiameter))
	pair("Effective cover", fmt.Sprintf("%.1f mm", s.EffectiveCover()))
	pair("fck / fy", fmt.Sprintf("%.1f / %.1f MPa", s.Fck, s.Fy))
	pair("Steel law", steelName(s))
	pair("Trial depth xu", fmt.Sprintf("%.1f mm", c.Xu))
	pdf.Ln(4)

	heading("Resultants")
	header := []string{"", "X axis", "Y axis"}
	widths := []float64{60, 45, 45}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range header {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)

	rows := []struct {
		label string
		x, y  float64
		unit  string
	}{
		{"Stress block g", c.Gx, c.Gy, ""},
		{"Centroid depth", c.XBarX, c.XBarY, "mm"},
		{"Concrete force Cc", c.Ccx / 1e3, c.Ccy / 1e3, "kN"},
		{"Concrete moment Mc", c.Mcx / 1e6, c.Mcy / 1e6, "kN-m"},
		{"Steel force Cs", c.Csx / 1e3, c.Csy / 1e3, "kN"},
		{"Steel moment Ms", c.Msx / 1e6, c.Msy / 1e6, "kN-m"},
		{"Axial force P", c.Px / 1e3, c.Py / 1e3, "kN"},
		{"Moment M", c.Mx / 1e6, c.My / 1e6, "kN-m"},
	}
	for _, r := range rows {
		pdf.CellFormat(widths[0], 7, r.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, fmt.Sprintf("%.3f %s", r.x, r.unit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, fmt.Sprintf("%.3f %s", r.y, r.unit), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Strain compatibility at a single trial neutral-axis depth. "+
		"Px and Py are independent resultants; no equilibrium iteration is performed.", "", "L", false)

	return pdf.Output(w)
}
