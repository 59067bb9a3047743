// Package cli implements the lineup command tree.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

const defaultVersion = "dev"

// NewRootCmd builds the lineup command tree.
func NewRootCmd(version string) *cobra.Command {
	if version == "" {
		version = defaultVersion
	}
	root := &cobra.Command{
		Use:     "lineup",
		Version: version,
		Short:   "Assign performers to show segments and plan the running order",
		Long: `lineup assigns performers to show segments from sign-up preferences and
choreographer ratings, then orders the segments so that consecutive ones
share as few performers as possible.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.AddCommand(newRunCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the lineup CLI version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})

	return root
}

// Execute runs the command tree with os.Args.
func Execute(ctx context.Context, version string) error {
	return NewRootCmd(version).ExecuteContext(ctx)
}
