package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crossgrid/internal/ctxlog"
)

// version is overridden at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

// NewRootCmd assembles the crossgrid command tree. Output goes to the
// command's Out/Err writers so tests can capture it.
func NewRootCmd() *cobra.Command {
	var logLevel, logFormat string

	rootCmd := &cobra.Command{
		Use:   "crossgrid",
		Short: "Generate crossword-style letter grids",
		Long: `crossgrid places words on a square grid so that each new word crosses
a letter already on the board, starting from a single seed letter.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, format := lower(logLevel), lower(logFormat)
			if err := validateLogFlags(level, format); err != nil {
				return err
			}
			logger := newLogger(level, format, cmd.ErrOrStderr())
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
			logger.Debug("CLI arguments parsed.", "command", cmd.Name())
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Logging level: 'debug', 'info', 'warn' or 'error'")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log output format: 'text' or 'json'")

	rootCmd.AddCommand(newGenCmd(), newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the crossgrid version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "crossgrid %s\n", version)
		},
	}
}

// Execute runs the command line with args and returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
