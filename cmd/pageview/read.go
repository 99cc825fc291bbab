/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cristianoliveira/pageview/cmd"
	"github.com/cristianoliveira/pageview/internal/app"
	"github.com/cristianoliveira/pageview/internal/colors"
	"github.com/cristianoliveira/pageview/internal/config"
	"github.com/cristianoliveira/pageview/internal/logging"
	"github.com/cristianoliveira/pageview/internal/pages"
	"github.com/cristianoliveira/pageview/internal/tui"
)

type readClient interface {
	app.OpenClient
	app.PositionStore
	pages.Store
}

// programRunner runs a bubbletea model until it quits.
type programRunner func(m tea.Model) error

func runProgram(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

const readCommandLong = `Read a text file or a stored document.

USAGE:
    pageview read <file|id> [OPTIONS]

DESCRIPTION:
    A path to an existing file is paginated to fit the terminal. Anything
    else is looked up as a stored document ID or ID prefix, opened at the
    saved position, and the position is saved as you read.

KEY BINDINGS:
    ←/h, →/l    Swipe to the previous or next page
    [ ]         Drag back or ahead by a quarter page
    space       Release a drag
    g, G        First and last page
    mouse       Drag horizontally and release to swipe
    r           Reload the document
    e           Toggle releasing off-screen pages
    ?           Toggle help
    q           Quit

OPTIONS:
    --page <n>    Start at page n (1-based; default: saved position)
    --evict       Release off-screen pages (default: evict_distant)
    -h, --help    Show this help`

// NewReadCmd creates the read command with explicit dependencies.
func NewReadCmd(client readClient, runner programRunner) *cobra.Command {
	if client == nil {
		panic("NewReadCmd: client dependency cannot be nil")
	}
	if runner == nil {
		panic("NewReadCmd: runner dependency cannot be nil")
	}

	var page int
	var evict bool

	readCmd := &cobra.Command{
		Use:   "read <file|id>",
		Short: "Read a text file or a stored document",
		Long:  readCommandLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if page < 0 {
				return fmt.Errorf("read: page must be positive, got %d", page)
			}
			if !c.Flags().Changed("evict") {
				evict = config.GetBool("evict_distant", false)
			}

			opts := tui.Options{
				StartPage:     page - 1,
				EvictDistant:  evict,
				FrameInterval: time.Duration(config.GetInt("frame_interval_ms", 16)) * time.Millisecond,
				FlickVelocity: float64(config.GetInt("swipe_threshold", 2)),
				Debug:         config.GetBool("debug", false),
				Logger:        logging.Component("tui"),
			}

			ref := args[0]
			if isRegularFile(ref) {
				return readFile(ref, opts, runner)
			}
			return readDocument(c, client, ref, opts, runner)
		},
	}

	readCmd.Flags().IntVar(&page, "page", 0, "Start at page n (1-based; default: saved position)")
	readCmd.Flags().BoolVar(&evict, "evict", false, "Release off-screen pages")

	return readCmd
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func readFile(path string, opts tui.Options, runner programRunner) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	opts.Title = title
	opts.StartPage = max(opts.StartPage, 0)
	// The model repaginates for the terminal size before attaching.
	opts.Source = pages.NewTextSource(title, string(data), 1, 1)
	return runModel(tui.NewModel(opts), runner)
}

func readDocument(c *cobra.Command, client readClient, ref string, opts tui.Options, runner programRunner) error {
	res, err := app.NewOpenUseCase(client).Execute(c.Context(), ref, opts.StartPage)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	doc := res.Document
	logger := logging.Component("read")

	recorder := app.NewPositionRecorder(client, doc.ID, logger)
	opts.Title = doc.Title
	opts.StartPage = res.Page
	opts.Source = pages.NewStoreSource(client, doc.ID, doc.Title, logger)
	opts.Observer = recorder

	model := tui.NewModel(opts)
	recorder.OnError(func(err error) {
		model.Status().Warning("position not saved: " + err.Error())
	})
	if err := runModel(model, runner); err != nil {
		return err
	}

	if last := recorder.Last(); last >= 0 {
		colors.Debug(fmt.Sprintf("saved position %d/%d for %s", last+1, doc.Pages, doc.ID))
	}
	return nil
}

// runModel keeps console output off the alternate screen while the pager runs.
func runModel(m tea.Model, runner programRunner) error {
	colors.SetOutput(nil, nil)
	defer colors.ResetOutput()

	if err := runner(m); err != nil {
		return fmt.Errorf("read: %w", err)
	}
	return nil
}

func init() {
	cmd.RootCmd.AddCommand(NewReadCmd(store, runProgram))
}
