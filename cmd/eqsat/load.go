package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"eqsat/boolalg"
	"eqsat/egraph"
)

var loadSnapshotPath string

func init() {
	loadCmd.Flags().StringVar(&loadSnapshotPath, "snapshot", "", "verify a previously saved snapshot instead of reading FILE...")
}

var loadCmd = &cobra.Command{
	Use:   "load [flags] [FILE...]",
	Short: "Parse term files concurrently and report the resulting e-graph size",
	RunE:  loadExecution,
}

type parsedFile struct {
	path  string
	terms []sexpr
}

func loadExecution(cmd *cobra.Command, args []string) error {
	if loadSnapshotPath != "" {
		if len(args) != 0 {
			return errors.New("--snapshot cannot be combined with FILE arguments")
		}
		return loadFromSnapshot(cmd, loadSnapshotPath)
	}
	if len(args) == 0 {
		return errors.New("no input files given\nplease specify input files explicitly, e.g.:\n  eqsat load terms.sexpr")
	}
	return loadFromFiles(cmd, args)
}

// loadFromFiles parses every file concurrently (reading and tokenizing a
// file doesn't touch shared state) and then feeds the parsed terms into a
// single e-graph sequentially, since EGraph is not safe for concurrent
// mutation.
func loadFromFiles(cmd *cobra.Command, paths []string) error {
	results := make([]parsedFile, len(paths))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(min(runtime.GOMAXPROCS(0), len(paths)))
	for i, path := range paths {
		g.Go(func(i int, path string) func() error {
			return func() error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				src, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading %s: %w", path, err)
				}
				terms, err := parseSexprs(string(src))
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				results[i] = parsedFile{path: path, terms: terms}
				return nil
			}
		}(i, path))
	}
	if err := g.Wait(); err != nil {
		return err
	}

	graph := egraph.New[boolalg.Data](boolalg.ConstantFold{})
	total := 0
	for _, r := range results {
		for _, term := range r.terms {
			if _, err := buildBoolalg(graph, term); err != nil {
				return fmt.Errorf("%s: %w", r.path, err)
			}
			total++
		}
	}
	graph.Rebuild()

	quiet, _ := cmd.Flags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "loaded %d file(s), %d top-level term(s), %d e-class(es)\n", len(paths), total, graph.Size())
	}
	return nil
}

func loadFromSnapshot(cmd *cobra.Command, path string) error {
	snap, err := loadSnapshotFile(path)
	if err != nil {
		return err
	}

	graph := egraph.New[boolalg.Data](boolalg.ConstantFold{})
	for i, src := range snap.Sources {
		terms, err := parseSexprs(src)
		if err != nil {
			return fmt.Errorf("snapshot source %d: %w", i, err)
		}
		for _, term := range terms {
			if _, err := buildBoolalg(graph, term); err != nil {
				return fmt.Errorf("snapshot source %d: %w", i, err)
			}
		}
	}
	graph.Rebuild()

	if graph.Size() != snap.ClassCount {
		return fmt.Errorf("snapshot %s: replaying sources produced %d e-class(es), snapshot recorded %d", path, graph.Size(), snap.ClassCount)
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "snapshot %s verified: %d e-class(es)\n", path, graph.Size())
	}
	return nil
}
