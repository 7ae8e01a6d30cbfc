package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcc/internal/column"
	"github.com/alexiusacademia/gorcc/internal/config"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	if err := Execute(context.Background()); err != nil {
		t.Fatalf("gorcc %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestColumnAnalyzeCommand(t *testing.T) {
	t.Setenv("GORCC_LOG_LEVEL", "error")
	out := execute(t, "column", "analyze",
		"--dx", "300", "--dy", "300", "--nx", "3", "--ny", "3",
		"--cover", "40", "--tie", "8", "--corner", "16", "--other", "12",
		"--fck", "25", "--fy", "415", "--xu", "150")

	for _, want := range []string{"SECTION RESULTANTS", "Px =     401.49 kN", "Mx =     35.18 kN·m", "Steel law:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestLoadCommand(t *testing.T) {
	t.Setenv("GORCC_LOG_LEVEL", "error")
	out := execute(t, "load", "--dead", "800", "--live", "400", "--dead-m", "40,20")

	for _, want := range []string{"Governing Combination: 1 (1.5(DL + LL))", "Pu  = 1800.00 kN", "Mux = 60.00 kN-m", "Muy = 30.00 kN-m"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestAction(t *testing.T) {
	tests := []struct {
		name    string
		m       []float64
		mx, my  float64
		wantErr bool
	}{
		{name: "none", m: nil},
		{name: "mx only", m: []float64{12}, mx: 12},
		{name: "both", m: []float64{12, -5}, mx: 12, my: -5},
		{name: "too many", m: []float64{1, 2, 3}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := action(100, tt.m)
			if (err != nil) != tt.wantErr {
				t.Fatalf("action() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if a.P != 100 || a.Mx != tt.mx || a.My != tt.my {
				t.Errorf("action() = %+v, want P=100 Mx=%g My=%g", a, tt.mx, tt.my)
			}
		})
	}
}

func TestCurvePoints(t *testing.T) {
	points := curvePoints([]*column.Capacity{{Xu: 150, Px: 2e3, Py: 3e3, Mx: 4e6, My: 5e6}})
	p := points[0]
	if p.Xu != 150 || p.Px != 2 || p.Py != 3 || p.Mx != 4 || p.My != 5 {
		t.Errorf("curvePoints() = %+v, want kN and kN·m", p)
	}
}

func TestLoggerFromContext(t *testing.T) {
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("expected default logger without one attached")
	}
	l := newLogger(&bytes.Buffer{}, log.WarnLevel)
	if got := loggerFromContext(withLogger(context.Background(), l)); got != l {
		t.Error("expected attached logger")
	}
}

func TestSectionFileUsesEnvironmentMaterials(t *testing.T) {
	saved := cfg
	t.Cleanup(func() { cfg = saved })
	cfg = config.Config{Fck: 30, Fy: 500, Steel: "bilinear", Workers: 1}

	path := filepath.Join(t.TempDir(), "c1.toml")
	content := "dx = 300.0\ndy = 300.0\nnx = 3\nny = 3\nfy = 415.0\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		args    []string
		fck, fy float64
		steel   string
	}{
		{name: "environment fills gaps", fck: 30, fy: 415, steel: "bilinear"},
		{name: "flags win", args: []string{"--fck", "40", "--steel", "cold-worked"}, fck: 40, fy: 415, steel: "cold-worked"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &cobra.Command{Use: "test"}
			var f sectionFlags
			f.register(c)
			if err := c.ParseFlags(append([]string{"--file", path}, tt.args...)); err != nil {
				t.Fatal(err)
			}

			s, err := f.section(c)
			if err != nil {
				t.Fatalf("section: %v", err)
			}
			if s.Fck != tt.fck || s.Fy != tt.fy || s.Steel != tt.steel {
				t.Errorf("fck %g, fy %g, steel %q; want %g, %g, %q", s.Fck, s.Fy, s.Steel, tt.fck, tt.fy, tt.steel)
			}
		})
	}
}
