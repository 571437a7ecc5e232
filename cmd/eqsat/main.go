package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"eqsat/internal/version"
)

// useColor resolves the --color flag (auto|on|off) the same way across
// every subcommand: explicit on/off wins, auto defers to whether stdout is
// a terminal.
func useColor(cmd *cobra.Command) bool {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		colorFlag = "auto"
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
}

var rootCmd = &cobra.Command{
	Use:   "eqsat",
	Short: "Equality-saturation e-graph toolkit",
	Long:  `eqsat builds, rebuilds, and inspects e-graphs over a small term language`,
}

// main wires subcommands and global flags onto rootCmd and executes it.
// If execution returns an error, the process exits with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
