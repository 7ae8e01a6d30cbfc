package cmd

import (
	"errors"
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcc/internal/is456"
)

var (
	// Unfactored axial loads (kN)
	loadDeadP       float64
	loadLiveP       float64
	loadEarthquakeP float64
	loadWindP       float64

	// Unfactored moments (kN-m), "mx,my"
	loadDeadM       []float64
	loadLiveM       []float64
	loadEarthquakeM []float64
	loadWindM       []float64

	// Options
	showAll     bool
	gravityOnly bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Calculate factored column actions using IS 456 load combinations",
	Long: `Calculate the factored axial load (Pu) and moments (Mux, Muy) for a column
based on IS 456:2000 Table 18 limit state of collapse combinations.

Provide unfactored actions from different load types. Axial loads are
given in kN and moments as "mx,my" pairs in kN-m.

Load Types:
  DL - Dead load
  LL - Imposed (live) load
  EL - Earthquake load
  WL - Wind load

Examples:
  # Gravity loads only
  gorcc load --dead 800 --live 400

  # With earthquake moments about both axes
  gorcc load --dead 800 --live 400 --eq 150 --eq-m 60,35 --all`,
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().Float64VarP(&loadDeadP, "dead", "d", 0, "Axial load due to dead load (kN)")
	loadCmd.Flags().Float64VarP(&loadLiveP, "live", "l", 0, "Axial load due to imposed load (kN)")
	loadCmd.Flags().Float64VarP(&loadEarthquakeP, "eq", "e", 0, "Axial load due to earthquake (kN)")
	loadCmd.Flags().Float64VarP(&loadWindP, "wind", "w", 0, "Axial load due to wind (kN)")

	loadCmd.Flags().Float64SliceVar(&loadDeadM, "dead-m", nil, "Dead load moments mx,my (kN-m)")
	loadCmd.Flags().Float64SliceVar(&loadLiveM, "live-m", nil, "Imposed load moments mx,my (kN-m)")
	loadCmd.Flags().Float64SliceVar(&loadEarthquakeM, "eq-m", nil, "Earthquake moments mx,my (kN-m)")
	loadCmd.Flags().Float64SliceVar(&loadWindM, "wind-m", nil, "Wind moments mx,my (kN-m)")

	loadCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all load combination results")
	loadCmd.Flags().BoolVarP(&gravityOnly, "gravity", "g", false, "Use gravity combination only: 1.5(DL + LL)")
}

func action(p float64, m []float64) (is456.Action, error) {
	a := is456.Action{P: p}
	switch len(m) {
	case 0:
	case 1:
		a.Mx = m[0]
	case 2:
		a.Mx, a.My = m[0], m[1]
	default:
		return a, fmt.Errorf("moments take at most two values (mx,my), got %d", len(m))
	}
	return a, nil
}

func runLoad(cmd *cobra.Command, args []string) error {
	var actions is456.LoadActions
	var err error
	if actions.Dead, err = action(loadDeadP, loadDeadM); err != nil {
		return fmt.Errorf("--dead-m: %w", err)
	}
	if actions.Live, err = action(loadLiveP, loadLiveM); err != nil {
		return fmt.Errorf("--live-m: %w", err)
	}
	if actions.Earthquake, err = action(loadEarthquakeP, loadEarthquakeM); err != nil {
		return fmt.Errorf("--eq-m: %w", err)
	}
	if actions.Wind, err = action(loadWindP, loadWindM); err != nil {
		return fmt.Errorf("--wind-m: %w", err)
	}

	if actions == (is456.LoadActions{}) {
		return errors.New("provide at least one unfactored action, see 'gorcc load --help'")
	}

	combinations := is456.LoadCombinations
	if gravityOnly {
		combinations = is456.GravityCombinations
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, banner("IS 456 FACTORED COLUMN ACTIONS"))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "UNFACTORED ACTIONS (kN, kN-m):")
	fmt.Fprintln(out, rule())
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Load\tP\tMx\tMy\n")
	for _, row := range []struct {
		label string
		a     is456.Action
	}{
		{"Dead (DL)", actions.Dead},
		{"Imposed (LL)", actions.Live},
		{"Earthquake (EL)", actions.Earthquake},
		{"Wind (WL)", actions.Wind},
	} {
		if row.a == (is456.Action{}) {
			continue
		}
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%.2f\n", row.label, row.a.P, row.a.Mx, row.a.My)
	}
	w.Flush()
	fmt.Fprintln(out)

	governing, combo := is456.GoverningAction(actions, combinations)

	if showAll {
		fmt.Fprintln(out, "LOAD COMBINATIONS (IS 456:2000 Table 18):")
		fmt.Fprintln(out, rule())
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tPu (kN)\tMux (kN-m)\tMuy (kN-m)\n")
		fmt.Fprintf(w, "  ─\t───────────\t───────\t──────────\t──────────\n")
		for _, lc := range combinations {
			f := lc.Factored(actions)
			marker := ""
			if lc.ID == combo.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f\t%.2f%s\n", lc.ID, lc.Description, f.P, f.Mx, f.My, marker)
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "RESULT:")
	fmt.Fprintln(out, rule())
	fmt.Fprintf(out, "  Governing Combination: %s (%s)\n", combo.ID, combo.Description)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Pu  = %.2f kN\n", governing.P)
	fmt.Fprintf(out, "  Mux = %.2f kN-m\n", governing.Mx)
	fmt.Fprintf(out, "  Muy = %.2f kN-m\n", governing.My)
	fmt.Fprintf(out, "  Mu  = %.2f kN-m (resultant)\n", math.Hypot(governing.Mx, governing.My))
	fmt.Fprintln(out)
	return nil
}
