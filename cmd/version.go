package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcc/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorcc",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "gorcc v%s\n", version.Version)
		fmt.Fprintf(out, "commit: %s\nbuilt: %s\n", version.GitCommit, version.BuildTime)
		fmt.Fprintln(out, "Reinforced Concrete Column Section Tool")
		fmt.Fprintln(out, "Based on IS 456:2000 limit state of collapse assumptions")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
