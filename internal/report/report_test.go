package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gorcc/internal/column"
)

func testSection() *column.Section {
	return &column.Section{
		Name: "C1",
		Dx:   300, Dy: 300,
		NrX: 3, NrY: 3,
		ClearCover:     40,
		TieDiameter:    8,
		CornerDiameter: 16,
		OtherDiameter:  12,
		Fck:            25,
		Fy:             415,
	}
}

func TestWriteAnalysis(t *testing.T) {
	s := testSection()
	c, err := s.Analyze(150)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteAnalysis(&buf, s, c); err != nil {
		t.Fatalf("WriteAnalysis: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	name, err := f.GetCellValue(sheetSummary, "B1")
	if err != nil || name != "C1" {
		t.Errorf("Summary!B1 = %q (%v), want C1", name, err)
	}

	rows, err := f.GetRows(sheetBars)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1+len(c.Bars) {
		t.Fatalf("Bars sheet has %d rows, want %d", len(rows), 1+len(c.Bars))
	}
	if rows[1][1] != "corner" || rows[5][1] != "x-face" || rows[7][1] != "y-face" {
		t.Errorf("unexpected placements: %q %q %q", rows[1][1], rows[5][1], rows[7][1])
	}
}

func TestWriteSweep(t *testing.T) {
	s := testSection()
	var results []*column.Capacity
	for _, xu := range []float64{100, 150, 200} {
		c, err := s.Analyze(xu)
		if err != nil {
			t.Fatal(err)
		}
		results = append(results, c)
	}

	var buf bytes.Buffer
	if err := WriteSweep(&buf, s, results); err != nil {
		t.Fatalf("WriteSweep: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetSweep)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 || rows[2][0] != "150" {
		t.Errorf("sweep rows = %v", rows)
	}
}

func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	return &buf
}

func TestReadSections(t *testing.T) {
	header := make([]interface{}, len(BatchColumns))
	for i, c := range BatchColumns {
		header[i] = c
	}
	buf := workbook(t, [][]interface{}{
		header,
		{"C1", 300, 300, 3, 3, 40, 8, 16, 12, 25, 415, 150},
		{"C2", 400, 600, 4, 5, 40, 10, 20, 16, 30, 500, 250, "cold-worked"},
		{"bad", 300, 300, 1, 3, 40, 8, 16, 12, 25, 415, 150},
		{"short", 300, 300},
		{"typo", 300, "three hundred", 3, 3, 40, 8, 16, 12, 25, 415, 150},
	})

	sections, rowErrs, err := ReadSections(buf)
	if err != nil {
		t.Fatalf("ReadSections: %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if sections[0].Name != "C1" || sections[0].Xu != 150 {
		t.Errorf("first section = %+v", sections[0])
	}
	if sections[1].Steel != "cold-worked" || sections[1].NrY != 5 {
		t.Errorf("second section = %+v", sections[1])
	}

	if len(rowErrs) != 3 {
		t.Fatalf("got %d row errors, want 3: %v", len(rowErrs), rowErrs)
	}
	if rowErrs[0].Row != 4 || !errors.Is(&rowErrs[0], column.ErrInvalidGeometry) {
		t.Errorf("row error = %v", rowErrs[0].Error())
	}
	if !strings.Contains(rowErrs[2].Error(), "dy") {
		t.Errorf("row error should name the column: %v", rowErrs[2].Error())
	}
}

func TestReadSectionsFractionalBarCount(t *testing.T) {
	header := make([]interface{}, len(BatchColumns))
	for i, c := range BatchColumns {
		header[i] = c
	}
	buf := workbook(t, [][]interface{}{
		header,
		{"C1", 300, 300, 3.7, 3, 40, 8, 16, 12, 25, 415, 150},
		{"C2", 300, 300, 3, 4.5, 40, 8, 16, 12, 25, 415, 150},
		{"C3", 300, 300, 3.0, 3, 40, 8, 16, 12, 25, 415, 150},
	})

	sections, rowErrs, err := ReadSections(buf)
	if err != nil {
		t.Fatalf("ReadSections: %v", err)
	}
	if len(sections) != 1 || sections[0].Name != "C3" || sections[0].NrX != 3 {
		t.Fatalf("sections = %+v, want only C3 with nx 3", sections)
	}
	if len(rowErrs) != 2 {
		t.Fatalf("got %d row errors, want 2: %v", len(rowErrs), rowErrs)
	}
	for i, col := range []string{BatchColumns[3], BatchColumns[4]} {
		if !strings.Contains(rowErrs[i].Error(), col) {
			t.Errorf("row error %d should name %s: %v", i, col, rowErrs[i].Error())
		}
	}
}

func TestReadSectionsEmpty(t *testing.T) {
	buf := workbook(t, [][]interface{}{{"name", "dx"}})
	if _, _, err := ReadSections(buf); err == nil {
		t.Error("expected error for sheet without data rows")
	}
}

func TestWritePDF(t *testing.T) {
	s := testSection()
	c, err := s.Analyze(150)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WritePDF(&buf, SheetInfo{Project: "Test"}, s, c); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}
