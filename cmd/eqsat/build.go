package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"eqsat/boolalg"
	"eqsat/egraph"
)

var buildSnapshotPath string

func init() {
	buildCmd.Flags().StringVar(&buildSnapshotPath, "snapshot", "", "write the term sources and resulting class count to this file as a msgpack snapshot")
}

var buildCmd = &cobra.Command{
	Use:   "build [flags] [FILE...]",
	Short: "Build an e-graph from one or more term files and rebuild it",
	Long:  "Build an e-graph from FILE arguments, or from [graph].sources in eqsat.toml if none are given.",
	RunE:  buildExecution,
}

func resolveBuildSources(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	cfg, ok, err := loadConfig(".")
	if err != nil {
		return nil, err
	}
	if !ok || len(cfg.Doc.Graph.Sources) == 0 {
		return nil, errors.New(noConfigMessage)
	}
	paths := make([]string, len(cfg.Doc.Graph.Sources))
	for i, rel := range cfg.Doc.Graph.Sources {
		paths[i] = filepath.Join(cfg.Root, filepath.FromSlash(rel))
	}
	return paths, nil
}

func buildExecution(cmd *cobra.Command, args []string) error {
	paths, err := resolveBuildSources(args)
	if err != nil {
		return err
	}

	g := egraph.New[boolalg.Data](boolalg.ConstantFold{})

	total := 0
	sources := make([]string, 0, len(paths))
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		sources = append(sources, string(src))

		terms, err := parseSexprs(string(src))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for _, term := range terms {
			if _, err := buildBoolalg(g, term); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			total++
		}
	}

	g.Rebuild()

	quiet, _ := cmd.Flags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "added %d top-level term(s), %d e-class(es) after rebuild\n", total, g.Size())
	}

	if buildSnapshotPath != "" {
		if err := saveSnapshot(buildSnapshotPath, sources, g.Size()); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
	}
	return nil
}
