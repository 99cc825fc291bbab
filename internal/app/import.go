package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/pageview/internal/colors"
	"github.com/cristianoliveira/pageview/internal/pages"
	"github.com/cristianoliveira/pageview/internal/storage/sqlite"
)

// maxImportSize caps the size of an imported file.
const maxImportSize = 32 << 20

// ImportClient defines dependencies required to import documents.
type ImportClient interface {
	CreateDocument(ctx context.Context, title, source string, pages []string) (sqlite.Document, error)
}

// ImportInput represents import command inputs after flag parsing.
type ImportInput struct {
	Path   string
	Title  string
	Width  int
	Height int
}

// ImportUseCase paginates a text file and stores its pages.
type ImportUseCase struct {
	client ImportClient
}

// NewImportUseCase creates a new import use-case.
func NewImportUseCase(client ImportClient) *ImportUseCase {
	if client == nil {
		panic("NewImportUseCase: client dependency cannot be nil")
	}
	return &ImportUseCase{client: client}
}

// Execute reads input.Path and stores it as a new document.
func (u *ImportUseCase) Execute(ctx context.Context, input ImportInput) (sqlite.Document, error) {
	if input.Width <= 0 || input.Height <= 0 {
		return sqlite.Document{}, fmt.Errorf("import: page size must be positive, got %dx%d", input.Width, input.Height)
	}

	info, err := os.Stat(input.Path)
	if err != nil {
		return sqlite.Document{}, fmt.Errorf("import: %w", err)
	}
	if info.IsDir() {
		return sqlite.Document{}, fmt.Errorf("import: %s is a directory", input.Path)
	}
	if info.Size() > maxImportSize {
		return sqlite.Document{}, fmt.Errorf("import: %s is larger than %d bytes", input.Path, maxImportSize)
	}

	data, err := os.ReadFile(input.Path)
	if err != nil {
		return sqlite.Document{}, fmt.Errorf("import: %w", err)
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(input.Path), filepath.Ext(input.Path))
	}

	paginated := pages.Paginate("", string(data), input.Width, input.Height)
	if len(paginated) == 0 {
		return sqlite.Document{}, fmt.Errorf("import: %s has no text", input.Path)
	}
	bodies := make([]string, len(paginated))
	for i := range paginated {
		bodies[i] = paginated[i].Body()
	}

	source, err := filepath.Abs(input.Path)
	if err != nil {
		source = input.Path
	}
	doc, err := u.client.CreateDocument(ctx, title, source, bodies)
	if err != nil {
		return sqlite.Document{}, fmt.Errorf("import: failed to store document: %w", err)
	}

	colors.Success(fmt.Sprintf("imported %q (%d pages) as %s", doc.Title, doc.Pages, shortID(doc.ID)))
	return doc, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
