package app

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/cristianoliveira/pageview/internal/colors"
	"github.com/cristianoliveira/pageview/internal/storage/sqlite"
)

// ListClient defines dependencies required to list documents.
type ListClient interface {
	ListDocuments(ctx context.Context) ([]sqlite.Document, error)
}

// ListUseCase prints stored documents.
type ListUseCase struct {
	client ListClient
	now    func() time.Time
}

// NewListUseCase creates a new list use-case.
func NewListUseCase(client ListClient) *ListUseCase {
	if client == nil {
		panic("NewListUseCase: client dependency cannot be nil")
	}
	return &ListUseCase{client: client, now: time.Now}
}

// Execute writes a table of documents to w.
func (u *ListUseCase) Execute(ctx context.Context, w io.Writer) error {
	docs, err := u.client.ListDocuments(ctx)
	if err != nil {
		return fmt.Errorf("list: failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		_, _ = fmt.Fprintf(w, "%s%s%s\n", colors.Blue, "No documents found", colors.Reset)
		return nil
	}

	_, err = fmt.Fprintln(w, documentTable(docs, u.now()).Render())
	return err
}

func documentTable(docs []sqlite.Document, now time.Time) *table.Table {
	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	border := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(border).
		Headers("ID", "TITLE", "PAGES", "SIZE", "POSITION", "LAST READ").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, d := range docs {
		position, lastRead := "-", "never"
		if d.HasPosition() {
			position = fmt.Sprintf("%d/%d", d.Position+1, d.Pages)
			lastRead = humanize.RelTime(d.ReadAt, now, "ago", "from now")
		}
		t.Row(
			shortID(d.ID),
			d.Title,
			strconv.Itoa(d.Pages),
			humanize.Bytes(uint64(d.Size)),
			position,
			lastRead,
		)
	}
	return t
}
