// Package cli implements the layoutengine command-line interface.
//
// Commands:
//   - serve: run the HTTP optimization service
//   - optimize: run one optimization session from a request document
//   - presets: manage named constraint presets
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. Values
// are typically injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the layoutengine CLI and returns an error if any command
// fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "layoutengine",
		Short:        "layoutengine computes optimized furniture placements",
		Long:         `layoutengine is the spatial layout optimization service: given a room boundary and a set of furniture items, it searches for a non-overlapping placement that maximizes free space, clearance, and walkway accessibility.`,
		Version:      version,
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

	root.SetVersionTemplate(fmt.Sprintf("layoutengine %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newServeCmd())
	root.AddCommand(newOptimizeCmd())
	root.AddCommand(newPresetsCmd())

	return root.ExecuteContext(context.Background())
}
