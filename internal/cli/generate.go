package cli

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lineup/ingest"
	"github.com/katalvlaran/lineup/sample"
)

// Sheet names written by generate.
const (
	performersSheet = "performers.csv"
	segmentsSheet   = "segments.csv"
)

func newGenerateCmd() *cobra.Command {
	var (
		seed int64
		dir  string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic pair of sign-up sheets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			perfs, segs := sample.Generate(sample.DefaultConfig(), rand.New(rand.NewSource(seed)))
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			if err := writeSheet(filepath.Join(dir, performersSheet), func(f *os.File) error {
				return ingest.WritePerformersCSV(f, perfs)
			}); err != nil {
				return err
			}
			if err := writeSheet(filepath.Join(dir, segmentsSheet), func(f *os.File) error {
				return ingest.WriteSegmentsCSV(f, segs)
			}); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Generated %d performers and %d segments in %s", len(perfs), len(segs), dir))

			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().StringVarP(&dir, "out", "o", ".", "output directory")

	return cmd
}

func writeSheet(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}
