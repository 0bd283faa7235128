package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	verbose    bool
	quiet      bool
}

var flags rootFlags

// NewRootCommand builds the mrsh root command, modeled on
// Sumatoshi-tech/codefang's cobra root command: a small set of persistent
// flags (here -v/-q/-config instead of codefang's memory-watchdog and pprof
// machinery, which has no analogue in a one-shot hashing CLI) plus one
// subcommand per concern.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "mrsh",
		Short: "MRSH-v2 similarity-digest and fuzzy-matching tool",
		Long: `mrsh builds and compares MRSH-v2 similarity digests.

Commands:
  hash                Fingerprint one or more files
  compare             Compare two fingerprints or raw files
  scan                Compare a target against a reference list
  list-compare-all    Batch pairwise comparison within one list
  list-compare-cross  Batch pairwise comparison between two lists`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			slog.SetDefault(newLogger(flags.verbose, flags.quiet))
		},
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to an mrsh config file")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "verbose (debug-level) logging")
	root.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "suppress all but error logging")

	root.AddCommand(NewHashCommand())
	root.AddCommand(NewCompareCommand())
	root.AddCommand(NewScanCommand())
	root.AddCommand(NewListCompareAllCommand())
	root.AddCommand(NewListCompareCrossCommand())

	return root
}

// newLogger builds the process-wide slog.Logger per the verbose/quiet
// flags, following codefang's convention of wiring -v/-q directly into a
// log/slog logger rather than a bespoke logging abstraction.
func newLogger(verbose, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
