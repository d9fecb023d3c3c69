package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/haruta-rin/railtrail/diagnostics"
	"github.com/haruta-rin/railtrail/lop"
	"github.com/haruta-rin/railtrail/mip"
	"github.com/haruta-rin/railtrail/railway"
)

var (
	cfg Config

	weightFlag  string
	logPathFlag string
	threadsFlag int

	rootCmd = &cobra.Command{
		Use:   "railtrail",
		Short: "Find the longest one-way trail through a railway network",
		Long: `railtrail reads a railway network as TSV on stdin and writes the
canonical maximum-weight simple trail as TSV on stdout, subject to any
disjunctive/exclusive constraint groups the network declares.`,
		RunE: runSolve,
	}
)

func init() {
	cfg = defaultConfig()

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		const configPath = "railtrail.yaml"
		data, err := os.ReadFile(configPath)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Fatalf("railtrail: reading %s: %v", configPath, err)
			}
			return
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("railtrail: parsing %s: %v", configPath, err)
		}
	}

	rootCmd.Flags().StringVar(&weightFlag, "weight", "", "weight kind: A (operational), B (fare), C (effective)")
	rootCmd.Flags().StringVar(&logPathFlag, "log-path", "", "diagnostic log path")
	rootCmd.Flags().IntVar(&threadsFlag, "threads", 0, "solver thread-cap hint, 1-99")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runSolve is the single end-to-end operation (SPEC_FULL.md §6): load the
// network from stdin, build and solve the ILP, canonicalize the result,
// and write it to stdout. Flags override railtrail.yaml's values, which
// in turn override defaultConfig's.
//
// Exit codes: 0 on success or clean empty input; 1 on any fatal error
// (cobra's Execute error path in main, which this returns into).
func runSolve(cmd *cobra.Command, args []string) error {
	applyFlagOverrides()

	if cfg.Threads < 1 || cfg.Threads > 99 {
		return fmt.Errorf("railtrail: threads must be in [1, 99], got %d", cfg.Threads)
	}
	weight, err := railway.ParseWeightKind(cfg.Weight)
	if err != nil {
		return fmt.Errorf("railtrail: %w", err)
	}

	logFile, err := os.Create(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("railtrail: opening log path: %w", err)
	}
	defer logFile.Close()
	logger := diagnostics.New(io.MultiWriter(os.Stderr, logFile))

	network, err := railway.Load(os.Stdin)
	if err != nil {
		return err
	}
	if len(network.Edges) == 0 {
		fmt.Fprintln(os.Stderr, "railtrail: empty input, nothing to solve")
		return nil
	}

	model := lop.Build(network, weight)
	solver := mip.NewBranchAndBound(cfg.Threads)

	result, err := lop.Solve(cmd.Context(), model, solver, logger)
	if err != nil {
		if errors.Is(err, lop.ErrNoTrailFound) {
			return err
		}
		return fmt.Errorf("railtrail: %w", err)
	}

	path := lop.Canonicalize(result.Path)
	return writePath(os.Stdout, path)
}

// applyFlagOverrides copies any flag the user actually set over cfg's
// value loaded from railtrail.yaml (or the built-in defaults).
func applyFlagOverrides() {
	if weightFlag != "" {
		cfg.Weight = weightFlag
	}
	if logPathFlag != "" {
		cfg.LogPath = logPathFlag
	}
	if threadsFlag != 0 {
		cfg.Threads = threadsFlag
	}
}

// writePath streams path as TSV, flushing after every line so output
// remains usable by a consumer reading a live pipe (SPEC_FULL.md §9's
// line-buffered-stdio note).
func writePath(w io.Writer, path []*railway.Edge) error {
	out := bufio.NewWriter(w)
	for _, e := range path {
		if _, err := fmt.Fprintln(out, e.TSV()); err != nil {
			return err
		}
		if err := out.Flush(); err != nil {
			return err
		}
	}
	return nil
}
