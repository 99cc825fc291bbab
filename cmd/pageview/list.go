/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"github.com/spf13/cobra"

	"github.com/cristianoliveira/pageview/cmd"
	"github.com/cristianoliveira/pageview/internal/app"
)

// NewListCmd creates the list command with explicit dependencies.
func NewListCmd(client app.ListClient) *cobra.Command {
	if client == nil {
		panic("NewListCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored documents",
		Long: `List stored documents, newest first, with their reading position.

USAGE:
    pageview list`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return app.NewListUseCase(client).Execute(c.Context(), c.OutOrStdout())
		},
	}
}

func init() {
	cmd.RootCmd.AddCommand(NewListCmd(store))
}
