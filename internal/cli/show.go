package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lineup/store"
)

func newShowCmd() *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Print the show order of a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer s.Close()

			order, err := s.LoadOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printSection(w, fmt.Sprintf("Show order of %s", args[0]))
			for _, o := range order {
				printLabelValue(w, fmt.Sprintf("%3d", o.Position), o.Segment)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "sqlite", "lineup.db", "SQLite database holding recorded runs")

	return cmd
}
