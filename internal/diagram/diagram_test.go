package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gorcc/internal/column"
)

func sampleData(t *testing.T, xu float64) SectionDiagramData {
	t.Helper()
	s := &column.Section{
		Dx: 300, Dy: 450,
		NrX: 3, NrY: 4,
		ClearCover:     40,
		TieDiameter:    8,
		CornerDiameter: 16,
		OtherDiameter:  12,
		Fck:            25,
		Fy:             415,
	}
	c, err := s.Analyze(xu)
	if err != nil {
		t.Fatal(err)
	}
	return SectionDiagramData{Dx: s.Dx, Dy: s.Dy, Xu: xu, Cover: s.EffectiveCover(), Bars: c.Bars}
}

func TestNeutralAxis(t *testing.T) {
	d := sampleData(t, 200)
	if x, ok := d.NeutralAxisX(); !ok || x != 100 {
		t.Errorf("NeutralAxisX() = %g, %v", x, ok)
	}
	if y, ok := d.NeutralAxisY(); !ok || y != 250 {
		t.Errorf("NeutralAxisY() = %g, %v", y, ok)
	}

	d = sampleData(t, 500)
	if _, ok := d.NeutralAxisX(); ok {
		t.Error("neutral axis should lie outside for xu > Dx")
	}
}

func TestDrawASCIISectionDiagram(t *testing.T) {
	out := DrawASCIISectionDiagram(sampleData(t, 200))

	if !strings.Contains(out, "COLUMN SECTION") {
		t.Error("missing title")
	}
	if !strings.Contains(out, "●") || !strings.Contains(out, "○") {
		t.Error("expected both compression and tension bars")
	}
	if !strings.Contains(out, "N.A. (x)") || !strings.Contains(out, "N.A. (y)") {
		t.Error("expected both neutral axis markers")
	}
}

func TestDrawBarTable(t *testing.T) {
	d := sampleData(t, 200)
	out := DrawBarTable(d.Bars)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2+len(d.Bars) {
		t.Errorf("got %d lines, want %d", len(lines), 2+len(d.Bars))
	}
	if !strings.Contains(out, "y-face") {
		t.Error("expected y-face rows")
	}
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("CAPACITY", []string{"Px = 401.49 kN", "Mx = 35.18 kN·m"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6", len(lines))
	}
	width := len([]rune(lines[0]))
	for _, l := range lines {
		if len([]rune(l)) != width {
			t.Errorf("ragged box line %q", l)
		}
	}
}

func TestDrawASCIICurve(t *testing.T) {
	if DrawASCIICurve(nil) != "" {
		t.Error("empty input should draw nothing")
	}
	out := DrawASCIICurve([]CurvePoint{
		{Xu: 100, Px: 250, Py: 200},
		{Xu: 150, Px: 400, Py: 330},
		{Xu: 200, Px: 560, Py: 470},
	})
	if !strings.Contains(out, "Axial force") {
		t.Error("missing caption")
	}
}

func TestExportSectionDiagram(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"section.png", "section.svg", "nested/section"} {
		path := filepath.Join(dir, name)
		if err := ExportSectionDiagram(sampleData(t, 200), path); err != nil {
			t.Fatalf("ExportSectionDiagram(%s): %v", name, err)
		}
		if filepath.Ext(path) == "" {
			path += ".png"
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected %s: %v", path, err)
		}
	}
}

func TestExportInteractionDiagram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pm.svg")
	pts := []CurvePoint{
		{Xu: 100, Px: 250, Mx: 30, Py: 200, My: 40},
		{Xu: 200, Px: 560, Mx: 36, Py: 470, My: 52},
	}
	if err := ExportInteractionDiagram(pts, path); err != nil {
		t.Fatalf("ExportInteractionDiagram: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error(err)
	}
}
