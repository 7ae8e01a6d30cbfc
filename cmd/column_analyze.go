package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcc/internal/column"
	"github.com/alexiusacademia/gorcc/internal/diagram"
	"github.com/alexiusacademia/gorcc/internal/report"
)

var (
	analyzeInput sectionFlags

	analyzeXu          float64
	analyzeShowDiagram bool
	analyzeShowBars    bool
	analyzeExportFile  string
	analyzeXlsxFile    string
	analyzePDFFile     string
	analyzeProject     string
)

var columnAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Resultants of a column section at a trial neutral-axis depth",
	Long: `Calculate the concrete and steel resultants (Px, Py, Mx, My) of a
rectangular column section at one trial neutral-axis depth xu.

Each bar's strain follows from xu about each axis; the concrete
contribution uses the IS 456 parabola-rectangle stress block.
The X and Y results are independent: no iteration is made to
balance a target axial load.

Examples:
  # 300x300 column, 3 bars per face, xu = 150 mm
  gorcc column analyze --dx 300 --dy 300 --nx 3 --ny 3 --xu 150

  # From a file, with the bar table and a PNG diagram
  gorcc column analyze -f c1.toml --bars -o c1.png`,
	RunE: runColumnAnalyze,
}

func init() {
	columnCmd.AddCommand(columnAnalyzeCmd)
	analyzeInput.register(columnAnalyzeCmd)

	columnAnalyzeCmd.Flags().Float64Var(&analyzeXu, "xu", 0, "Trial neutral-axis depth (mm) [required unless set in file]")

	// Output options
	columnAnalyzeCmd.Flags().BoolVar(&analyzeShowDiagram, "diagram", false, "Show ASCII section diagram")
	columnAnalyzeCmd.Flags().BoolVar(&analyzeShowBars, "bars", false, "Show the per-bar table")
	columnAnalyzeCmd.Flags().StringVarP(&analyzeExportFile, "output", "o", "", "Export section diagram to file (png, svg, pdf)")
	columnAnalyzeCmd.Flags().StringVar(&analyzeXlsxFile, "xlsx", "", "Write summary and bar states to an xlsx workbook")
	columnAnalyzeCmd.Flags().StringVar(&analyzePDFFile, "pdf", "", "Write a PDF calculation sheet")
	columnAnalyzeCmd.Flags().StringVar(&analyzeProject, "project", "", "Project name for the PDF sheet")
}

func runColumnAnalyze(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())

	sec, err := analyzeInput.section(cmd)
	if err != nil {
		return err
	}

	xu := sec.Xu
	if cmd.Flags().Changed("xu") {
		xu = analyzeXu
	}

	logger.Debug("analyzing section", "name", sec.Name, "dx", sec.Dx, "dy", sec.Dy, "bars", sec.BarCount(), "xu", xu)
	prog := newProgress(logger)

	result, err := sec.AnalyzeWith(xu, analyzeInput.options())
	if err != nil {
		return fmt.Errorf("analyzing section: %w", err)
	}
	prog.done("Analysis complete")

	out := cmd.OutOrStdout()
	printAnalysis(out, sec, result)

	data := diagram.SectionDiagramData{
		Dx:    sec.Dx,
		Dy:    sec.Dy,
		Xu:    xu,
		Cover: sec.EffectiveCover(),
		Bars:  result.Bars,
	}

	if analyzeShowDiagram {
		fmt.Fprintln(out, diagram.DrawASCIISectionDiagram(data))
	}
	if analyzeShowBars {
		fmt.Fprintln(out, "BAR STATES:")
		fmt.Fprintln(out, rule())
		fmt.Fprintln(out, diagram.DrawBarTable(result.Bars))
	}

	if analyzeExportFile != "" {
		if err := diagram.ExportSectionDiagram(data, analyzeExportFile); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		logger.Info("Diagram exported", "file", analyzeExportFile)
	}

	if analyzeXlsxFile != "" {
		err := writeFile(analyzeXlsxFile, func(w io.Writer) error {
			return report.WriteAnalysis(w, sec, result)
		})
		if err != nil {
			return fmt.Errorf("writing workbook: %w", err)
		}
		logger.Info("Workbook written", "file", analyzeXlsxFile)
	}

	if analyzePDFFile != "" {
		info := report.SheetInfo{Project: analyzeProject, Title: "Column Section Capacity"}
		err := writeFile(analyzePDFFile, func(w io.Writer) error {
			return report.WritePDF(w, info, sec, result)
		})
		if err != nil {
			return fmt.Errorf("writing PDF: %w", err)
		}
		logger.Info("Calculation sheet written", "file", analyzePDFFile)
	}

	return nil
}

func printAnalysis(out io.Writer, sec *column.Section, c *column.Capacity) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, banner("COLUMN SECTION ANALYSIS - IS 456"))
	fmt.Fprintln(out)

	if sec.Name != "" {
		fmt.Fprintf(out, "  Section: %s\n", sec.Name)
	}
	if sec.Description != "" {
		fmt.Fprintf(out, "  Description: %s\n", sec.Description)
	}
	if sec.Name != "" || sec.Description != "" {
		fmt.Fprintln(out)
	}

	// Input summary
	fmt.Fprintln(out, "INPUT DATA:")
	fmt.Fprintln(out, rule())
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Dx × Dy:\t%.0f × %.0f mm\n", sec.Dx, sec.Dy)
	fmt.Fprintf(w, "  Clear cover / tie:\t%.0f / %.0f mm\n", sec.ClearCover, sec.TieDiameter)
	fmt.Fprintf(w, "  Effective cover:\t%.1f mm\n", sec.EffectiveCover())
	fmt.Fprintf(w, "  fck:\t%.1f MPa\n", sec.Fck)
	fmt.Fprintf(w, "  fy:\t%.1f MPa\n", sec.Fy)
	fmt.Fprintf(w, "  Steel law:\t%s\n", steelLabel(sec))
	fmt.Fprintf(w, "  Trial depth (xu):\t%.1f mm\n", c.Xu)
	w.Flush()
	fmt.Fprintln(out)

	// Reinforcement
	area := sec.SteelArea()
	fmt.Fprintln(out, "REINFORCEMENT:")
	fmt.Fprintln(out, rule())
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Corner bars:\t4 × %.0f mm\n", sec.CornerDiameter)
	fmt.Fprintf(w, "  X-face bars:\t%d × %.0f mm\n", 2*(sec.NrX-2), sec.OtherDiameter)
	fmt.Fprintf(w, "  Y-face bars:\t%d × %.0f mm\n", 2*(sec.NrY-2), sec.OtherDiameter)
	fmt.Fprintf(w, "  Total steel (Asc):\t%.2f mm² (%.2f%%)\n", area, 100*area/(sec.Dx*sec.Dy))
	w.Flush()
	fmt.Fprintln(out)

	// Stress block
	fmt.Fprintln(out, "CONCRETE STRESS BLOCK:")
	fmt.Fprintln(out, rule())
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  \tX axis\tY axis\n")
	fmt.Fprintf(w, "  \t──────\t──────\n")
	fmt.Fprintf(w, "  g:\t%.4f\t%.4f\n", c.Gx, c.Gy)
	fmt.Fprintf(w, "  x̄ (mm):\t%.2f\t%.2f\n", c.XBarX, c.XBarY)
	fmt.Fprintf(w, "  Cc (kN):\t%.2f\t%.2f\n", c.Ccx/1e3, c.Ccy/1e3)
	fmt.Fprintf(w, "  Mc (kN·m):\t%.2f\t%.2f\n", c.Mcx/1e6, c.Mcy/1e6)
	w.Flush()
	fmt.Fprintln(out)

	// Steel
	fmt.Fprintln(out, "STEEL CONTRIBUTION:")
	fmt.Fprintln(out, rule())
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  \tX axis\tY axis\n")
	fmt.Fprintf(w, "  \t──────\t──────\n")
	fmt.Fprintf(w, "  Cs (kN):\t%.2f\t%.2f\n", c.Csx/1e3, c.Csy/1e3)
	fmt.Fprintf(w, "  Ms (kN·m):\t%.2f\t%.2f\n", c.Msx/1e6, c.Msy/1e6)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprint(out, diagram.DrawSummaryBox("SECTION RESULTANTS", []string{
		fmt.Sprintf("Px = %10.2f kN     Mx = %9.2f kN·m", c.Px/1e3, c.Mx/1e6),
		fmt.Sprintf("Py = %10.2f kN     My = %9.2f kN·m", c.Py/1e3, c.My/1e6),
	}))
	fmt.Fprintln(out)
}

// writeFile renders into memory and writes the file only on success
func writeFile(path string, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
