// Package cli implements the single-command CLI surface of §6.3: the
// binary's only job is to resolve configuration, build the catalog and
// server, and serve MCP tool calls over stdio.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/michaelprinc/mcp-prompt-broker/internal/adapters/outbound/obscfg"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var flags obscfg.Flags

	cmd := &cobra.Command{
		Use:           "mcp-prompt-broker",
		Short:         "Analyse prompts and route them to the best-matching profile over MCP",
		Long:          "mcp-prompt-broker is a stdio MCP server that parses a catalog of markdown prompt profiles, classifies incoming prompts, and routes each one to the best-matching profile's instructions and checklist.",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRun: func(cmd *cobra.Command, args []string) {
			flags.ProfilesDirSet = cmd.Flags().Changed("profiles-dir")
			flags.LogLevelSet = cmd.Flags().Changed("log-level")
			flags.WatchSet = cmd.Flags().Changed("watch")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.ProfilesDir, "profiles-dir", "", "Directory containing profile markdown files (default ./profiles)")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", "", "Log level: debug, info, warn, error (default info)")
	cmd.Flags().BoolVar(&flags.Watch, "watch", false, "Watch the profiles directory and hot-reload on change")

	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the root command against ctx.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
