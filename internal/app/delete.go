package app

import (
	"context"
	"fmt"

	"github.com/cristianoliveira/pageview/internal/colors"
	"github.com/cristianoliveira/pageview/internal/storage/sqlite"
)

// DeleteClient defines dependencies required to delete documents.
type DeleteClient interface {
	FindDocument(ctx context.Context, ref string) (sqlite.Document, error)
	DeleteDocument(ctx context.Context, id string) error
}

// DeleteUseCase removes a document and everything stored for it.
type DeleteUseCase struct {
	client DeleteClient
}

// NewDeleteUseCase creates a new delete use-case.
func NewDeleteUseCase(client DeleteClient) *DeleteUseCase {
	if client == nil {
		panic("NewDeleteUseCase: client dependency cannot be nil")
	}
	return &DeleteUseCase{client: client}
}

// Execute deletes the document identified by ref, a full ID or unique prefix.
func (u *DeleteUseCase) Execute(ctx context.Context, ref string) (sqlite.Document, error) {
	doc, err := u.client.FindDocument(ctx, ref)
	if err != nil {
		return sqlite.Document{}, fmt.Errorf("delete: %w", err)
	}
	if err := u.client.DeleteDocument(ctx, doc.ID); err != nil {
		return sqlite.Document{}, fmt.Errorf("delete: %w", err)
	}

	colors.Success(fmt.Sprintf("deleted %q", doc.Title))
	return doc, nil
}
