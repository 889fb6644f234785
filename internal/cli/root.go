package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/bimatch/bipartite"
	"github.com/katalvlaran/bimatch/internal/graphio"
	"github.com/katalvlaran/bimatch/matching"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(ctx, version).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree. Input and output streams default to
// the process's own and can be replaced with SetIn / SetOut.
func NewRootCommand(ctx context.Context, version string) *cobra.Command {
	input := new(Input)

	rootCmd := &cobra.Command{
		Use:   "bimatch",
		Short: "Find a maximum matching of a bipartite graph by seeding an augmenting-path search from every edge.",
		Long: "bimatch reads a bipartite graph (interactively, from a file or from stdin), seeds an\n" +
			"alternating-tree search from every edge and prints the largest matching found.",
		Args:         cobra.NoArgs,
		RunE:         newSolveAction(ctx, input),
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&input.outputFormat, "output", "o", string(graphio.FormatText), "output format: text or yaml")
	rootCmd.PersistentFlags().IntVarP(&input.workers, "workers", "w", 1, "seeds evaluated concurrently (0 = one per CPU)")
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	addInputFlags(rootCmd.Flags(), input)

	rootCmd.AddCommand(newDemoCommand(ctx, input))

	return rootCmd
}

func addInputFlags(fs *pflag.FlagSet, input *Input) {
	fs.StringVarP(&input.inputPath, "file", "f", "-", "graph file, - for stdin")
	fs.StringVar(&input.inputFormat, "format", string(graphio.FormatText), "input format: text or yaml")
}

func newSolveAction(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if input.verbose {
			log.SetLevel(log.DebugLevel)
		}
		inFormat, outFormat, err := input.formats()
		if err != nil {
			return err
		}

		r, prompts, closeFn, err := openInput(cmd, input.inputPath, inFormat)
		if err != nil {
			return err
		}
		defer closeFn()

		log.Debugf("Reading %s graph from %s", inFormat, input.inputPath)
		g, err := graphio.Read(inFormat, r, prompts)
		if err != nil {
			return err
		}

		return solve(ctx, cmd.OutOrStdout(), g, input, outFormat)
	}
}

// openInput resolves the graph source. Prompts are only shown to a terminal
// reading the text dialogue; piped and file input stay silent.
func openInput(cmd *cobra.Command, path string, format graphio.Format) (io.Reader, io.Writer, func(), error) {
	if path != "-" && path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, nil, err
		}
		return f, nil, func() { _ = f.Close() }, nil
	}

	in := cmd.InOrStdin()
	var prompts io.Writer
	if f, ok := in.(*os.File); ok && format == graphio.FormatText && isTerminal(f) {
		prompts = cmd.OutOrStdout()
	}

	return in, prompts, func() {}, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// solve runs the seed driver on g and writes the best matching.
func solve(ctx context.Context, w io.Writer, g *bipartite.Graph, input *Input, out graphio.Format) error {
	log.Debugf("Graph has %d X vertices, %d Y vertices, %d edges", g.XCount(), g.YCount(), g.EdgeCount())

	res, err := matching.MaxMatching(g,
		matching.WithContext(ctx),
		matching.WithWorkers(input.workers),
		matching.WithLogger(log.StandardLogger()),
	)
	if err != nil {
		return err
	}
	log.Debugf("Tried %d seeds, best size %d", res.SeedsTried, res.Matching.Size)

	return graphio.Write(out, w, res)
}

func newDemoCommand(ctx context.Context, input *Input) *cobra.Command {
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Solve a generated graph",
	}

	demoCmd.AddCommand(&cobra.Command{
		Use:   "complete N M",
		Short: "Complete bipartite graph K(N,M)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, m, err := sizes(args)
			if err != nil {
				return err
			}
			g, err := bipartite.Complete(n, m)
			if err != nil {
				return err
			}
			return runDemo(ctx, cmd, g, input)
		},
	})

	demoCmd.AddCommand(&cobra.Command{
		Use:   "random N M P SEED",
		Short: "Random bipartite graph: each of the N·M pairs is an edge with probability P",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, m, err := sizes(args)
			if err != nil {
				return err
			}
			p, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("probability %q: %w", args[2], err)
			}
			seed, err := strconv.ParseInt(args[3], 10, 64)
			if err != nil {
				return fmt.Errorf("seed %q: %w", args[3], err)
			}
			g, err := bipartite.RandomSparse(n, m, p, seed)
			if err != nil {
				return err
			}
			return runDemo(ctx, cmd, g, input)
		},
	})

	return demoCmd
}

func runDemo(ctx context.Context, cmd *cobra.Command, g *bipartite.Graph, input *Input) error {
	if input.verbose {
		log.SetLevel(log.DebugLevel)
	}
	out, err := graphio.ParseFormat(input.outputFormat)
	if err != nil {
		return err
	}

	return solve(ctx, cmd.OutOrStdout(), g, input, out)
}

func sizes(args []string) (int, int, error) {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("N %q: %w", args[0], err)
	}
	m, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("M %q: %w", args[1], err)
	}

	return n, m, nil
}
