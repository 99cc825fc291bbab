/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cristianoliveira/pageview/internal/colors"
	"github.com/cristianoliveira/pageview/internal/config"
	"github.com/cristianoliveira/pageview/internal/logging"
	"github.com/cristianoliveira/pageview/internal/version"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "pageview",
	Short: "A three-page swipe reader for the terminal.",
	Long: `A three-page swipe reader for the terminal.

Text files are split into pages and read one page at a time. Drag or
swipe sideways to turn pages; the reading position of imported documents
is remembered between sessions.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.ShutdownGlobal()
	},
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.CompletionOptions.HiddenDefaultCmd = true
}

// setup loads configuration and starts logging before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	config.Load()
	colors.SetDebug(config.GetBool("debug", false))
	if err := logging.InitGlobal(); err != nil {
		colors.Warning("logging disabled:", err.Error())
	}
	return nil
}
