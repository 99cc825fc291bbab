package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SavePosition records the page a document was last read at.
func (s *Store) SavePosition(ctx context.Context, documentID string, index int) error {
	total, err := s.PageCount(ctx, documentID)
	if err != nil {
		return err
	}
	if index < 0 || index >= total {
		return fmt.Errorf("sqlite storage: save position: %w: %s[%d]", ErrPageNotFound, documentID, index)
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO positions (document_id, page_index, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(document_id) DO UPDATE SET page_index = excluded.page_index, updated_at = excluded.updated_at`,
		documentID, index, s.utcNow(),
	); err != nil {
		return fmt.Errorf("sqlite storage: save position: %w", err)
	}
	return nil
}

// Position returns the recorded page of a document, or 0 when none was recorded.
func (s *Store) Position(ctx context.Context, documentID string) (int, error) {
	if err := validateID(documentID); err != nil {
		return 0, err
	}

	var index int
	err := s.db.QueryRowContext(ctx, `SELECT page_index FROM positions WHERE document_id = ?`, documentID).Scan(&index)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: read position: %w", err)
	}
	return index, nil
}
