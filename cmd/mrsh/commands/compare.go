package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mrshlab/mrsh"
)

// score color thresholds for mrsh compare/scan output.
const (
	scoreHigh = 70
	scoreMid  = 30
)

// CompareCommand holds the flags for the compare command.
type CompareCommand struct {
	raw bool
}

// NewCompareCommand creates and configures the compare command.
func NewCompareCommand() *cobra.Command {
	cc := &CompareCommand{}

	cobraCmd := &cobra.Command{
		Use:   "compare A B",
		Short: "Compare two fingerprints or raw files",
		Args:  cobra.ExactArgs(2),
		RunE:  cc.Run,
	}

	cobraCmd.Flags().BoolVar(&cc.raw, "raw", false, "treat A and B as raw files to fingerprint, not wire-format text")

	return cobraCmd
}

// Run executes the compare command.
func (cc *CompareCommand) Run(_ *cobra.Command, args []string) error {
	p, err := LoadParams(flags.configPath)
	if err != nil {
		return fmt.Errorf("loading params: %w", err)
	}

	fpA, err := cc.load(args[0], p)
	if err != nil {
		return err
	}
	fpB, err := cc.load(args[1], p)
	if err != nil {
		return err
	}

	result := mrsh.CompareLabeled(fpA, fpB)
	printScore(os.Stdout, result)
	return nil
}

func (cc *CompareCommand) load(path string, p mrsh.CoreParams) (*mrsh.Fingerprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if cc.raw {
		return mrsh.FingerprintFromBytes(data, path, p)
	}
	return mrsh.FingerprintFromText(strings.TrimSpace(string(data)), p)
}

// printScore writes a CompareResult with the score highlighted: green at or
// above scoreHigh, yellow down to scoreMid, red below, following
// Sumatoshi-tech/codefang's use of fatih/color for terminal severity
// highlighting.
func printScore(w *os.File, r mrsh.CompareResult) {
	var paint func(format string, a ...interface{}) string
	switch {
	case r.Score >= scoreHigh:
		paint = color.New(color.FgGreen).SprintfFunc()
	case r.Score >= scoreMid:
		paint = color.New(color.FgYellow).SprintfFunc()
	default:
		paint = color.New(color.FgRed).SprintfFunc()
	}

	fmt.Fprintf(w, "%s vs %s: %s\n", r.LabelA, r.LabelB, paint("%d", r.Score))
}
