package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcc/internal/column"
	"github.com/alexiusacademia/gorcc/internal/diagram"
	"github.com/alexiusacademia/gorcc/internal/report"
)

var (
	sweepInput sectionFlags

	sweepFrom       float64
	sweepTo         float64
	sweepStep       float64
	sweepPoints     int
	sweepChart      bool
	sweepExportFile string
	sweepXlsxFile   string
)

var columnSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Resultants over a range of trial neutral-axis depths",
	Long: `Evaluate a column section at a series of trial neutral-axis depths
and tabulate Px, Mx, Py, My for each.

Depths are either stepped (--step) or evenly spaced (--points)
between --from and --to. Each depth is an independent evaluation;
plotting the results traces a force-moment curve for each axis.
A depth where xu = 3D/7 for either axis stops the sweep.

Examples:
  gorcc column sweep --dx 300 --dy 300 --nx 3 --ny 3 --from 30 --to 600 --step 30
  gorcc column sweep -f c1.toml --from 50 --to 900 --points 40 -o pm.png --xlsx sweep.xlsx`,
	RunE: runColumnSweep,
}

func init() {
	columnCmd.AddCommand(columnSweepCmd)
	sweepInput.register(columnSweepCmd)

	columnSweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "First trial depth (mm) [required]")
	columnSweepCmd.Flags().Float64Var(&sweepTo, "to", 0, "Last trial depth (mm) [required]")
	columnSweepCmd.Flags().Float64Var(&sweepStep, "step", 0, "Depth increment (mm)")
	columnSweepCmd.Flags().IntVar(&sweepPoints, "points", 20, "Number of evenly spaced depths when --step is not given")

	columnSweepCmd.Flags().BoolVar(&sweepChart, "chart", true, "Show ASCII chart of axial force")
	columnSweepCmd.Flags().StringVarP(&sweepExportFile, "output", "o", "", "Export force-moment plot (png, svg, pdf)")
	columnSweepCmd.Flags().StringVar(&sweepXlsxFile, "xlsx", "", "Write the sweep to an xlsx workbook")

	columnSweepCmd.MarkFlagRequired("from")
	columnSweepCmd.MarkFlagRequired("to")
}

func runColumnSweep(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())

	sec, err := sweepInput.section(cmd)
	if err != nil {
		return err
	}

	var depths []float64
	if cmd.Flags().Changed("step") {
		depths, err = column.DepthsByStep(sweepFrom, sweepTo, sweepStep)
	} else {
		depths, err = column.Depths(sweepFrom, sweepTo, sweepPoints)
	}
	if err != nil {
		return err
	}

	opts := sweepInput.options()
	logger.Debug("sweeping trial depths", "from", depths[0], "to", depths[len(depths)-1], "count", len(depths), "workers", opts.Workers)
	prog := newProgress(logger)

	results, err := sec.Sweep(cmd.Context(), depths, opts)
	if err != nil {
		return fmt.Errorf("sweeping section: %w", err)
	}
	prog.done(fmt.Sprintf("Evaluated %d trial depths", len(results)))

	points := curvePoints(results)
	out := cmd.OutOrStdout()
	printSweep(out, sec, points)

	if sweepChart {
		fmt.Fprintln(out, diagram.DrawASCIICurve(points))
		fmt.Fprintln(out)
	}

	if sweepExportFile != "" {
		if err := diagram.ExportInteractionDiagram(points, sweepExportFile); err != nil {
			return fmt.Errorf("exporting plot: %w", err)
		}
		logger.Info("Plot exported", "file", sweepExportFile)
	}

	if sweepXlsxFile != "" {
		err := writeFile(sweepXlsxFile, func(w io.Writer) error {
			return report.WriteSweep(w, sec, results)
		})
		if err != nil {
			return fmt.Errorf("writing workbook: %w", err)
		}
		logger.Info("Workbook written", "file", sweepXlsxFile)
	}

	return nil
}

// curvePoints converts results to kN and kN·m
func curvePoints(results []*column.Capacity) []diagram.CurvePoint {
	points := make([]diagram.CurvePoint, len(results))
	for i, c := range results {
		points[i] = diagram.CurvePoint{
			Xu: c.Xu,
			Px: c.Px / 1e3,
			Py: c.Py / 1e3,
			Mx: c.Mx / 1e6,
			My: c.My / 1e6,
		}
	}
	return points
}

func printSweep(out io.Writer, sec *column.Section, points []diagram.CurvePoint) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, banner("TRIAL DEPTH SWEEP - IS 456"))
	fmt.Fprintln(out)
	if sec.Name != "" {
		fmt.Fprintf(out, "  Section: %s\n", sec.Name)
	}
	fmt.Fprintf(out, "  %.0f × %.0f mm, %d bars, fck %.1f MPa, fy %.1f MPa, steel %s\n",
		sec.Dx, sec.Dy, sec.BarCount(), sec.Fck, sec.Fy, steelLabel(sec))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  xu (mm)\tPx (kN)\tMx (kN·m)\tPy (kN)\tMy (kN·m)\t\n")
	fmt.Fprintf(w, "  ───────\t───────\t─────────\t───────\t─────────\t\n")
	for _, p := range points {
		fmt.Fprintf(w, "  %.1f\t%.2f\t%.2f\t%.2f\t%.2f\t\n", p.Xu, p.Px, p.Mx, p.Py, p.My)
	}
	w.Flush()
	fmt.Fprintln(out)
}
