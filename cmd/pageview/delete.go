/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"github.com/spf13/cobra"

	"github.com/cristianoliveira/pageview/cmd"
	"github.com/cristianoliveira/pageview/internal/app"
)

// NewDeleteCmd creates the delete command with explicit dependencies.
func NewDeleteCmd(client app.DeleteClient) *cobra.Command {
	if client == nil {
		panic("NewDeleteCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a stored document",
		Long: `Delete a stored document with its pages and reading position.

USAGE:
    pageview delete <id>

ARGUMENTS:
    <id>    Document ID or a unique prefix of at least 4 characters`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			_, err := app.NewDeleteUseCase(client).Execute(c.Context(), args[0])
			return err
		},
	}
}

func init() {
	cmd.RootCmd.AddCommand(NewDeleteCmd(store))
}
