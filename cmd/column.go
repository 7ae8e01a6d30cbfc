package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcc/internal/column"
	"github.com/alexiusacademia/gorcc/internal/is456"
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Rectangular column section analysis",
	Long: `Analyze rectangular reinforced concrete column sections with a
symmetric tied bar cage.

The section is given either with flags or in a JSON/TOML file.
Bars are laid out as four corner bars plus evenly spaced face bars;
--nx and --ny count the bars on each face including the corners.

Subcommands:
  analyze  - Resultants at one trial neutral-axis depth
  sweep    - Resultants over a range of trial depths
  batch    - Evaluate every section listed in a spreadsheet

Example TOML file:
  name = "C1"
  dx = 300.0
  dy = 300.0
  nx = 3
  ny = 3
  clear_cover = 40.0
  tie_diameter = 8.0
  corner_diameter = 16.0
  other_diameter = 12.0
  fck = 25.0
  fy = 415.0
  xu = 150.0`,
}

func init() {
	rootCmd.AddCommand(columnCmd)
}

// sectionFlags are the section inputs shared by analyze and sweep
type sectionFlags struct {
	file string

	dx, dy  float64
	nx, ny  int
	cover   float64
	tie     float64
	corner  float64
	other   float64
	fck, fy float64
	steel   string
	workers int
}

func (f *sectionFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "Section JSON or TOML file (replaces the geometry flags)")

	// Geometry flags
	fl.Float64Var(&f.dx, "dx", 0, "Section dimension along X (mm)")
	fl.Float64Var(&f.dy, "dy", 0, "Section dimension along Y (mm)")
	fl.IntVar(&f.nx, "nx", 2, "Bars per X face, corners included")
	fl.IntVar(&f.ny, "ny", 2, "Bars per Y face, corners included")
	fl.Float64VarP(&f.cover, "cover", "c", 40, "Clear cover (mm)")
	fl.Float64Var(&f.tie, "tie", 8, "Tie diameter (mm)")
	fl.Float64Var(&f.corner, "corner", 16, "Corner bar diameter (mm)")
	fl.Float64Var(&f.other, "other", 12, "Face bar diameter (mm)")

	// Material flags (defaults from GORCC_FCK, GORCC_FY, GORCC_STEEL)
	fl.Float64Var(&f.fck, "fck", 25, "Characteristic concrete strength fck (MPa)")
	fl.Float64Var(&f.fy, "fy", 415, "Characteristic steel strength fy (MPa)")
	fl.StringVar(&f.steel, "steel", "placeholder", "Steel law: placeholder, bilinear or cold-worked")

	fl.IntVar(&f.workers, "workers", 0, "Worker goroutines (default GORCC_WORKERS or CPU count)")
}

// section builds the section from the file or the flags. Material values
// missing from a file come from the environment; material flags given
// explicitly override both.
func (f *sectionFlags) section(cmd *cobra.Command) (*column.Section, error) {
	changed := cmd.Flags().Changed

	var s *column.Section
	if f.file != "" {
		loaded, err := column.ReadFile(f.file)
		if err != nil {
			return nil, fmt.Errorf("loading section: %w", err)
		}
		loaded.FillMaterials(cfg.Fck, cfg.Fy, cfg.Steel)
		s = loaded
	} else {
		if !changed("dx") || !changed("dy") {
			return nil, fmt.Errorf("either --file or both --dx and --dy are required")
		}
		s = &column.Section{
			Dx:             f.dx,
			Dy:             f.dy,
			NrX:            f.nx,
			NrY:            f.ny,
			ClearCover:     f.cover,
			TieDiameter:    f.tie,
			CornerDiameter: f.corner,
			OtherDiameter:  f.other,
			Fck:            cfg.Fck,
			Fy:             cfg.Fy,
			Steel:          cfg.Steel,
		}
	}

	if changed("fck") {
		s.Fck = f.fck
	}
	if changed("fy") {
		s.Fy = f.fy
	}
	if changed("steel") {
		s.Steel = f.steel
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (f *sectionFlags) options() column.Options {
	w := f.workers
	if w <= 0 {
		w = cfg.Workers
	}
	return column.Options{Workers: w}
}

func steelLabel(s *column.Section) string {
	law, err := is456.SteelLawByName(s.Steel)
	if err != nil {
		return s.Steel
	}
	label := law.Name()
	if _, ok := law.(is456.Placeholder); ok {
		label += " (min(fy, 200ε), not a code curve)"
	}
	return label
}

func rule() string {
	return strings.Repeat("─", 63)
}

func banner(title string) string {
	line := strings.Repeat("═", 63)
	return fmt.Sprintf("%s\n     %s\n%s", line, title, line)
}
