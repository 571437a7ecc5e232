package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"eqsat/boolalg"
	"eqsat/egraph"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Build an e-graph from FILE and browse its e-classes interactively",
	Args:  cobra.ExactArgs(1),
	RunE:  inspectExecution,
}

func inspectExecution(cmd *cobra.Command, args []string) error {
	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	g := egraph.New[boolalg.Data](boolalg.ConstantFold{})
	terms, err := parseSexprs(string(src))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for _, term := range terms {
		if _, err := buildBoolalg(g, term); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	g.Rebuild()

	if !isTerminal(os.Stdout) {
		return printClassSummary(cmd, g)
	}

	model := newInspectorModel(path, g)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, err = program.Run()
	return err
}

// printClassSummary is the non-interactive fallback used when stdout isn't
// a terminal (piped output, CI).
func printClassSummary(cmd *cobra.Command, g *egraph.EGraph[boolalg.Data]) error {
	out := cmd.OutOrStdout()
	known := color.New(color.FgGreen)
	unknown := color.New(color.FgYellow)
	paint := useColor(cmd)
	classes := g.Classes()

	for i, row := range classRows(g) {
		c := classes[i]
		if !paint {
			fmt.Fprintf(out, "%s\n", row)
			continue
		}
		if c.Data.Known {
			fmt.Fprintln(out, known.Sprint(row))
		} else {
			fmt.Fprintln(out, unknown.Sprint(row))
		}
	}
	return nil
}
