// Package cli implements the slate command-line interface.
//
// The CLI wraps the front-end debugging tools: dumping parsed syntax trees
// as colorized text or Graphviz diagrams, listing lexer tokens, and the
// corridor racer demo. It is built with cobra; logging uses charmbracelet/log
// and is passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/slatelang/slate/pkg/buildinfo"
)

// Execute runs the slate CLI and returns an error if any command fails.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "slate",
		Short:        "Slate front-end debugging tools",
		Long:         `Slate parses source files into syntax trees and renders them for inspection: colorized text dumps, token listings, and Graphviz diagrams. It also ships the corridor racer, a raytraced terminal toy.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newDumpCmd())
	root.AddCommand(newTokensCmd())
	root.AddCommand(newRaceCmd())

	return root.ExecuteContext(ctx)
}
