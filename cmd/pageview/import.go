/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"github.com/spf13/cobra"

	"github.com/cristianoliveira/pageview/cmd"
	"github.com/cristianoliveira/pageview/internal/app"
	"github.com/cristianoliveira/pageview/internal/config"
)

const importCommandLong = `Import a text file as a stored document.

USAGE:
    pageview import <file> [OPTIONS]

DESCRIPTION:
    The file is split into pages of the configured size and stored. Form
    feeds force a page break. Imported documents remember where you
    stopped reading.

OPTIONS:
    --title <title>    Document title (default: file name)
    --width <cols>     Page width in columns (default: page_width)
    --height <rows>    Page height in rows (default: page_height)
    -h, --help         Show this help`

// NewImportCmd creates the import command with explicit dependencies.
func NewImportCmd(client app.ImportClient) *cobra.Command {
	if client == nil {
		panic("NewImportCmd: client dependency cannot be nil")
	}

	var title string
	var width, height int

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a text file as a stored document",
		Long:  importCommandLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if !c.Flags().Changed("width") {
				width = config.GetInt("page_width", width)
			}
			if !c.Flags().Changed("height") {
				height = config.GetInt("page_height", height)
			}
			_, err := app.NewImportUseCase(client).Execute(c.Context(), app.ImportInput{
				Path:   args[0],
				Title:  title,
				Width:  width,
				Height: height,
			})
			return err
		},
	}

	importCmd.Flags().StringVar(&title, "title", "", "Document title (default: file name)")
	importCmd.Flags().IntVar(&width, "width", 72, "Page width in columns")
	importCmd.Flags().IntVar(&height, "height", 20, "Page height in rows")

	return importCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewImportCmd(store))
}
