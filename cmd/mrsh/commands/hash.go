package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mrshlab/mrsh"
)

// HashCommand holds the flags for the hash command.
type HashCommand struct {
	label     string
	recursive bool
}

// NewHashCommand creates and configures the hash command.
func NewHashCommand() *cobra.Command {
	hc := &HashCommand{}

	cobraCmd := &cobra.Command{
		Use:   "hash PATH...",
		Short: "Fingerprint one or more files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  hc.Run,
	}

	cobraCmd.Flags().StringVar(&hc.label, "label", "", "label for a single-file fingerprint (defaults to the file path)")
	cobraCmd.Flags().BoolVarP(&hc.recursive, "recursive", "r", false, "walk directory arguments recursively")

	return cobraCmd
}

// Run executes the hash command.
func (hc *HashCommand) Run(_ *cobra.Command, args []string) error {
	p, err := LoadParams(flags.configPath)
	if err != nil {
		return fmt.Errorf("loading params: %w", err)
	}

	paths, err := hc.resolvePaths(args)
	if err != nil {
		return err
	}

	for _, path := range paths {
		if err := hc.hashOne(path, p); err != nil {
			return err
		}
	}
	return nil
}

// resolvePaths expands directory arguments into their file contents when
// --recursive is set, via filepath.WalkDir, and leaves file arguments as is.
func (hc *HashCommand) resolvePaths(args []string) ([]string, error) {
	var out []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}

		if !info.IsDir() {
			out = append(out, arg)
			continue
		}

		if !hc.recursive {
			return nil, fmt.Errorf("%s is a directory; pass -r to recurse into it", arg)
		}

		walkErr := filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			out = append(out, path)
			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("walking %s: %w", arg, walkErr)
		}
	}

	return out, nil
}

func (hc *HashCommand) hashOne(path string, p mrsh.CoreParams) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	label := hc.label
	if label == "" {
		label = path
	}

	fp, err := mrsh.FingerprintFromBytes(data, label, p)
	if err != nil {
		if errors.Is(err, mrsh.ErrLabelTooLong) || errors.Is(err, mrsh.ErrLabelHasColon) {
			return fmt.Errorf("invalid label for %s: %w", path, err)
		}
		return err
	}

	slog.Debug("fingerprinted file", "path", path, "size", humanize.Bytes(uint64(len(data))), "filters", fp.FilterCount())
	fmt.Println(fp.ToText())
	return nil
}
