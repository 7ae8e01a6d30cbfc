package cmd

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcc/internal/config"
	"github.com/alexiusacademia/gorcc/internal/version"
)

var (
	verbose bool
	envFile string

	// cfg holds the environment defaults, loaded before any command runs
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gorcc",
	Short: "Reinforced Concrete Column Section Tool",
	Long: `gorcc - Go Reinforced Concrete Column

A CLI tool for the strain compatibility analysis of rectangular
reinforced concrete column sections under axial load and biaxial
bending, using IS 456 limit state stress block assumptions.

This tool helps structural engineers:
  - Evaluate Px, Py, Mx, My at a trial neutral-axis depth
  - Sweep trial depths to trace force-moment curves
  - Batch-evaluate sections from a spreadsheet
  - Compute factored column actions from load combinations

Forces are reported in kN and moments in kN·m.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(envFiles()...)
		if err != nil {
			return err
		}
		cfg = loaded

		level, err := charmlog.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = charmlog.InfoLevel
		}
		if verbose {
			level = charmlog.DebugLevel
		}
		logger := newLogger(os.Stderr, level)
		logger.Debug("configuration loaded", "fck", cfg.Fck, "fy", cfg.Fy, "steel", cfg.Steel, "workers", cfg.Workers)

		cmd.SetContext(withLogger(cmd.Context(), logger))
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gorcc v%-49s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Reinforced Concrete Column                           ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Biaxial strain compatibility at a trial neutral-axis depth")
		fmt.Fprintln(out, "    • Trial depth sweeps with ASCII and image force-moment curves")
		fmt.Fprintln(out, "    • Spreadsheet batch evaluation, xlsx and PDF reports")
		fmt.Fprintln(out, "    • IS 456 load combinations for column actions")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gorcc --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and runs it with ctx
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func envFiles() []string {
	if envFile != "" {
		return []string{envFile}
	}
	return nil
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.Version = version.String()
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "dotenv file with GORCC_* defaults (default .env)")
}
