package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Page is one stored page body.
type Page struct {
	DocumentID string
	Index      int
	Body       string
}

// PageCount returns the number of pages of a document.
func (s *Store) PageCount(ctx context.Context, documentID string) (int, error) {
	if err := validateID(documentID); err != nil {
		return 0, err
	}

	var n int
	err := s.db.QueryRowContext(ctx, `SELECT page_count FROM documents WHERE id = ?`, documentID).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("sqlite storage: page count: %w: id %s", ErrDocumentNotFound, documentID)
	}
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: page count: %w", err)
	}
	return n, nil
}

// Page returns page index of a document.
func (s *Store) Page(ctx context.Context, documentID string, index int) (Page, error) {
	if err := validateID(documentID); err != nil {
		return Page{}, err
	}

	p := Page{DocumentID: documentID, Index: index}
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM pages WHERE document_id = ? AND page_index = ?`, documentID, index,
	).Scan(&p.Body)
	if errors.Is(err, sql.ErrNoRows) {
		return Page{}, fmt.Errorf("sqlite storage: read page: %w: %s[%d]", ErrPageNotFound, documentID, index)
	}
	if err != nil {
		return Page{}, fmt.Errorf("sqlite storage: read page: %w", err)
	}
	return p, nil
}
