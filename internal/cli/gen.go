package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crossgrid/crossword"
	"github.com/katalvlaran/crossgrid/grid"
	"github.com/katalvlaran/crossgrid/internal/ctxlog"
	"github.com/katalvlaran/crossgrid/render"
	"github.com/katalvlaran/crossgrid/wordlist"
)

// defaultWords are used when no words arrive from arguments, --file or --config.
var defaultWords = []string{"crossword", "generator"}

type genOptions struct {
	size       int
	passes     int
	number     int
	seed       int64
	seedLetter string
	order      string
	file       string
	config     string
	format     string
	output     string
	verify     bool
}

func newGenCmd() *cobra.Command {
	o := &genOptions{}
	genCmd := &cobra.Command{
		Use:   "gen [words...]",
		Short: "Generate crossword grids",
		Long: `Generate one or more crossword grids from the given words.

Words come from the arguments, a word file (one word per line) and an HCL
puzzle file, in that order of precedence for settings. Without any words the
grid is built from "crossword generator".

Examples:
  crossgrid gen hello world
  crossgrid gen --file words.txt --size 15 --seed 42
  crossgrid gen --config puzzle.hcl --format html -n 5 -o puzzles.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd, o, args)
		},
	}

	flags := genCmd.Flags()
	flags.IntVarP(&o.size, "size", "s", crossword.DefaultSize, "Grid side length")
	flags.IntVar(&o.passes, "passes", crossword.DefaultMaxPasses, "Maximum number of placement passes")
	flags.IntVarP(&o.number, "number", "n", 1, "Number of grids to generate")
	flags.Int64Var(&o.seed, "seed", 0, "Random seed; 0 picks one from the clock")
	flags.StringVar(&o.seedLetter, "seed-letter", string(crossword.DefaultSeedLetter), "Letter placed before any word")
	flags.StringVar(&o.order, "order", crossword.OrderSorted.String(), "Word order within a pass: 'sorted', 'input' or 'shuffled'")
	flags.StringVarP(&o.file, "file", "f", "", "Word file, one word per line")
	flags.StringVarP(&o.config, "config", "c", "", "HCL puzzle file")
	flags.StringVar(&o.format, "format", "text", "Output format: 'text', 'boxed', 'color' or 'html'")
	flags.StringVarP(&o.output, "output", "o", "", "Output file (default stdout)")
	flags.BoolVar(&o.verify, "verify", false, "Re-check grid invariants and fail on any violation")

	return genCmd
}

func runGen(cmd *cobra.Command, o *genOptions, args []string) error {
	logger := ctxlog.FromContext(cmd.Context())

	words, err := o.gather(cmd, args)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		words = defaultWords
	}
	base, err := o.crosswordOptions(logger)
	if err != nil {
		return err
	}

	results := make([]*crossword.Result, 0, o.number)
	for i := 0; i < o.number; i++ {
		seed := o.seed
		if seed != 0 {
			seed += int64(i)
		}
		res, err := crossword.Generate(words, append(base, crossword.WithSeed(seed))...)
		if err != nil {
			return err
		}
		if o.verify {
			if err := res.Verify(); err != nil {
				return fmt.Errorf("grid %d: %w", i+1, err)
			}
		}
		logger.Info("Grid generated.",
			"grid", i+1,
			"placed", len(res.Placements),
			"unused", len(res.Unused),
			"passes", res.Passes,
			"islands", res.Islands())
		results = append(results, res)
	}

	if o.output == "" {
		return o.write(cmd.OutOrStdout(), results)
	}
	f, err := os.Create(o.output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := o.write(f, results); err != nil {
		f.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	logger.Info("Output written.", "path", o.output, "grids", len(results))
	return nil
}

// gather collects words and applies puzzle-file settings for every flag the
// user did not set explicitly.
func (o *genOptions) gather(cmd *cobra.Command, args []string) ([]string, error) {
	var words []string
	if o.config != "" {
		cfg, err := wordlist.LoadConfig(o.config)
		if err != nil {
			return nil, err
		}
		flags := cmd.Flags()
		if cfg.Size != 0 && !flags.Changed("size") {
			o.size = cfg.Size
		}
		if cfg.Passes != 0 && !flags.Changed("passes") {
			o.passes = cfg.Passes
		}
		if cfg.Seed != 0 && !flags.Changed("seed") {
			o.seed = cfg.Seed
		}
		if cfg.SeedLetter != 0 && !flags.Changed("seed-letter") {
			o.seedLetter = string(cfg.SeedLetter)
		}
		if cfg.Order != "" && !flags.Changed("order") {
			o.order = cfg.Order
		}
		words = append(words, cfg.Words...)
	}
	words = append(words, args...)
	if o.file != "" {
		more, err := wordlist.ReadFile(o.file)
		if err != nil {
			return nil, err
		}
		words = append(words, more...)
	}
	return words, nil
}

// crosswordOptions validates the flags before handing them to the option
// constructors, which panic on out-of-range values.
func (o *genOptions) crosswordOptions(logger *slog.Logger) ([]crossword.Option, error) {
	if o.size < crossword.MinSize {
		return nil, fmt.Errorf("invalid size %d: must be at least %d", o.size, crossword.MinSize)
	}
	if o.passes < 1 {
		return nil, fmt.Errorf("invalid passes %d: must be at least 1", o.passes)
	}
	if o.number < 1 {
		return nil, fmt.Errorf("invalid number %d: must be at least 1", o.number)
	}
	if len(o.seedLetter) != 1 || !grid.IsLetter(upper(o.seedLetter[0])) {
		return nil, fmt.Errorf("invalid seed-letter %q: must be a single letter A-Z", o.seedLetter)
	}
	order, ok := crossword.ParseOrder(lower(o.order))
	if !ok {
		return nil, fmt.Errorf("invalid order %q: must be 'sorted', 'input' or 'shuffled'", o.order)
	}
	switch lower(o.format) {
	case "text", "boxed", "color", "html":
	default:
		return nil, fmt.Errorf("invalid format %q: must be 'text', 'boxed', 'color' or 'html'", o.format)
	}

	return []crossword.Option{
		crossword.WithSize(o.size),
		crossword.WithMaxPasses(o.passes),
		crossword.WithSeedLetter(o.seedLetter[0]),
		crossword.WithOrder(order),
		crossword.WithLogger(logger),
	}, nil
}

func (o *genOptions) write(w io.Writer, results []*crossword.Result) error {
	format := lower(o.format)
	if format == "html" {
		return render.HTML(w, results)
	}

	var b strings.Builder
	for i, res := range results {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch format {
		case "boxed":
			b.WriteString(render.Boxed(res.Grid))
		case "color":
			b.WriteString(render.Color(res))
		default:
			b.WriteString(render.Text(res.Grid))
		}
		b.WriteString(render.Report(res))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
