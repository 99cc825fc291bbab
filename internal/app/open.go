package app

import (
	"context"
	"fmt"

	"github.com/cristianoliveira/pageview/internal/storage/sqlite"
)

// OpenClient defines dependencies required to open a document for reading.
type OpenClient interface {
	FindDocument(ctx context.Context, ref string) (sqlite.Document, error)
	Position(ctx context.Context, documentID string) (int, error)
}

// OpenResult is a resolved document and the page to start reading at.
type OpenResult struct {
	Document sqlite.Document
	Page     int
}

// OpenUseCase resolves a document reference and its saved position.
type OpenUseCase struct {
	client OpenClient
}

// NewOpenUseCase creates a new open use-case.
func NewOpenUseCase(client OpenClient) *OpenUseCase {
	if client == nil {
		panic("NewOpenUseCase: client dependency cannot be nil")
	}
	return &OpenUseCase{client: client}
}

// Execute resolves ref. A non-negative page overrides the saved position.
func (u *OpenUseCase) Execute(ctx context.Context, ref string, page int) (OpenResult, error) {
	doc, err := u.client.FindDocument(ctx, ref)
	if err != nil {
		return OpenResult{}, fmt.Errorf("open: %w", err)
	}

	if page < 0 {
		page, err = u.client.Position(ctx, doc.ID)
		if err != nil {
			return OpenResult{}, fmt.Errorf("open: %w", err)
		}
	}
	if doc.Pages > 0 && page >= doc.Pages {
		page = doc.Pages - 1
	}
	return OpenResult{Document: doc, Page: page}, nil
}
