package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/mrshlab/mrsh"
)

// ScanCommand holds the flags for the scan command.
type ScanCommand struct {
	against   string
	threshold int
}

// NewScanCommand creates and configures the scan command.
func NewScanCommand() *cobra.Command {
	sc := &ScanCommand{}

	cobraCmd := &cobra.Command{
		Use:   "scan TARGET",
		Short: "Compare a target file against a reference list",
		Args:  cobra.ExactArgs(1),
		RunE:  sc.Run,
	}

	cobraCmd.Flags().StringVar(&sc.against, "against", "", "multi-fingerprint list file to compare against (required)")
	cobraCmd.Flags().IntVar(&sc.threshold, "threshold", 0, "minimum score to report")
	_ = cobraCmd.MarkFlagRequired("against")

	return cobraCmd
}

// Run executes the scan command.
func (sc *ScanCommand) Run(_ *cobra.Command, args []string) error {
	p, err := LoadParams(flags.configPath)
	if err != nil {
		return fmt.Errorf("loading params: %w", err)
	}

	list, err := readList(sc.against, p)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	target, err := mrsh.FingerprintFromBytes(data, args[0], p)
	if err != nil {
		return err
	}

	results := list.CompareAgainst(target, sc.threshold)
	printResultsTable(os.Stdout, results)
	return nil
}

// ListCompareAllCommand holds the flags for list-compare-all.
type ListCompareAllCommand struct {
	threshold int
}

// NewListCompareAllCommand creates and configures the list-compare-all command.
func NewListCompareAllCommand() *cobra.Command {
	lc := &ListCompareAllCommand{}

	cobraCmd := &cobra.Command{
		Use:   "list-compare-all FILE",
		Short: "Batch-compare every distinct pair within one fingerprint list",
		Args:  cobra.ExactArgs(1),
		RunE:  lc.Run,
	}
	cobraCmd.Flags().IntVar(&lc.threshold, "threshold", 0, "minimum score to report")

	return cobraCmd
}

// Run executes the list-compare-all command.
func (lc *ListCompareAllCommand) Run(_ *cobra.Command, args []string) error {
	p, err := LoadParams(flags.configPath)
	if err != nil {
		return fmt.Errorf("loading params: %w", err)
	}

	list, err := readList(args[0], p)
	if err != nil {
		return err
	}

	printResultsTable(os.Stdout, list.CompareAll(lc.threshold))
	return nil
}

// ListCompareCrossCommand holds the flags for list-compare-cross.
type ListCompareCrossCommand struct {
	threshold int
}

// NewListCompareCrossCommand creates and configures the list-compare-cross command.
func NewListCompareCrossCommand() *cobra.Command {
	lc := &ListCompareCrossCommand{}

	cobraCmd := &cobra.Command{
		Use:   "list-compare-cross A B",
		Short: "Batch-compare every pair between two fingerprint lists",
		Args:  cobra.ExactArgs(2),
		RunE:  lc.Run,
	}
	cobraCmd.Flags().IntVar(&lc.threshold, "threshold", 0, "minimum score to report")

	return cobraCmd
}

// Run executes the list-compare-cross command.
func (lc *ListCompareCrossCommand) Run(_ *cobra.Command, args []string) error {
	p, err := LoadParams(flags.configPath)
	if err != nil {
		return fmt.Errorf("loading params: %w", err)
	}

	listA, err := readList(args[0], p)
	if err != nil {
		return err
	}
	listB, err := readList(args[1], p)
	if err != nil {
		return err
	}

	printResultsTable(os.Stdout, listA.CompareCross(listB, lc.threshold))
	return nil
}

func readList(path string, p mrsh.CoreParams) (*mrsh.FingerprintList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	list, err := mrsh.ListFromText(strings.TrimRight(string(data), "\n"), p)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return list, nil
}

// printResultsTable renders results as an aligned table, following
// Sumatoshi-tech/codefang's use of jedib0t/go-pretty/v6/table for tabular
// CLI reports.
func printResultsTable(w *os.File, results []mrsh.CompareResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"A", "B", "Score"})

	for _, r := range results {
		t.AppendRow(table.Row{r.LabelA, r.LabelB, r.Score})
	}

	t.Render()
}
