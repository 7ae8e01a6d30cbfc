package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcc/internal/report"
)

var (
	batchFile    string
	batchWorkers int
)

var columnBatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate every column section listed in a spreadsheet",
	Long: `Read column sections from the first sheet of an xlsx workbook and
evaluate each at its own trial depth.

The first row is a header. Columns, in order:
  name, dx, dy, nx, ny, clear_cover, tie_diameter, corner_diameter,
  other_diameter, fck, fy, xu, steel (optional)

Rows that fail to parse or validate are reported and skipped.

Examples:
  gorcc column batch --file columns.xlsx`,
	RunE: runColumnBatch,
}

func init() {
	columnCmd.AddCommand(columnBatchCmd)

	columnBatchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Workbook with one section per row [required]")
	columnBatchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Worker goroutines per section (default GORCC_WORKERS or CPU count)")
	columnBatchCmd.MarkFlagRequired("file")
}

func runColumnBatch(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())

	f, err := os.Open(batchFile)
	if err != nil {
		return err
	}
	defer f.Close()

	sections, rowErrs, err := report.ReadSections(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", batchFile, err)
	}
	for _, re := range rowErrs {
		logger.Warn("Skipping row", "row", re.Row, "err", re.Err)
	}
	logger.Debug("sections read", "count", len(sections), "skipped", len(rowErrs))

	flags := sectionFlags{workers: batchWorkers}
	opts := flags.options()
	prog := newProgress(logger)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, banner("BATCH COLUMN ANALYSIS - IS 456"))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Section\tDx×Dy (mm)\tBars\txu (mm)\tPx (kN)\tMx (kN·m)\tPy (kN)\tMy (kN·m)\n")
	fmt.Fprintf(w, "  ───────\t──────────\t────\t───────\t───────\t─────────\t───────\t─────────\n")

	failed := 0
	for i := range sections {
		sec := &sections[i]
		c, err := sec.AnalyzeWith(sec.Xu, opts)
		if err != nil {
			failed++
			fmt.Fprintf(w, "  %s\t%.0f×%.0f\t%d\t%.1f\terror: %v\t\t\t\n", sec.Name, sec.Dx, sec.Dy, sec.BarCount(), sec.Xu, err)
			continue
		}
		fmt.Fprintf(w, "  %s\t%.0f×%.0f\t%d\t%.1f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			sec.Name, sec.Dx, sec.Dy, sec.BarCount(), sec.Xu,
			c.Px/1e3, c.Mx/1e6, c.Py/1e3, c.My/1e6)
	}
	w.Flush()
	fmt.Fprintln(out)

	prog.done(fmt.Sprintf("Evaluated %d sections", len(sections)-failed))
	if failed > 0 {
		return fmt.Errorf("%d of %d sections failed", failed, len(sections))
	}
	return nil
}
