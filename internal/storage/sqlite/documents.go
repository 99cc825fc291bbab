package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// minPrefixLen is the shortest ID prefix FindDocument accepts.
const minPrefixLen = 4

// Document describes a stored document.
type Document struct {
	ID        string
	Title     string
	Source    string
	Size      int64
	Pages     int
	CreatedAt time.Time
	// Position is the last recorded page, or -1 when never read.
	Position int
	ReadAt   time.Time
}

// HasPosition reports whether a reading position was recorded.
func (d Document) HasPosition() bool {
	return d.Position >= 0
}

const documentColumns = `
	d.id, d.title, d.source, d.size, d.page_count, d.created_at,
	COALESCE(p.page_index, -1), COALESCE(p.updated_at, '')
FROM documents d
LEFT JOIN positions p ON p.document_id = d.id`

// CreateDocument stores a document and its page bodies in one transaction.
func (s *Store) CreateDocument(ctx context.Context, title, source string, pages []string) (Document, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Document{}, fmt.Errorf("sqlite storage: create document: title cannot be empty")
	}

	var size int64
	for _, body := range pages {
		size += int64(len(body))
	}
	doc := Document{
		ID:        uuid.NewString(),
		Title:     title,
		Source:    source,
		Size:      size,
		Pages:     len(pages),
		CreatedAt: parseTime(s.utcNow()),
		Position:  -1,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Document{}, fmt.Errorf("sqlite storage: begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO documents (id, title, source, size, page_count, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		doc.ID, doc.Title, doc.Source, doc.Size, doc.Pages, doc.CreatedAt.Format(timeLayout),
	); err != nil {
		return Document{}, fmt.Errorf("sqlite storage: insert document: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO pages (document_id, page_index, body) VALUES (?, ?, ?)`)
	if err != nil {
		return Document{}, fmt.Errorf("sqlite storage: prepare page insert: %w", err)
	}
	defer stmt.Close()
	for i, body := range pages {
		if _, err := stmt.ExecContext(ctx, doc.ID, i, body); err != nil {
			return Document{}, fmt.Errorf("sqlite storage: insert page %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Document{}, fmt.Errorf("sqlite storage: commit document: %w", err)
	}
	return doc, nil
}

// ListDocuments returns every document, newest first.
func (s *Store) ListDocuments(ctx context.Context) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+documentColumns+` ORDER BY d.created_at DESC, d.title`)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: iterate documents: %w", err)
	}
	return docs, nil
}

// GetDocument returns the document with the exact ID.
func (s *Store) GetDocument(ctx context.Context, id string) (Document, error) {
	if err := validateID(id); err != nil {
		return Document{}, err
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+documentColumns+` WHERE d.id = ?`, id)
	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, fmt.Errorf("sqlite storage: get document: %w: id %s", ErrDocumentNotFound, id)
	}
	if err != nil {
		return Document{}, err
	}
	return doc, nil
}

// FindDocument resolves a full ID or a unique prefix of at least four characters.
func (s *Store) FindDocument(ctx context.Context, ref string) (Document, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if _, err := uuid.Parse(ref); err == nil {
		return s.GetDocument(ctx, ref)
	}
	if len(ref) < minPrefixLen || strings.ContainsAny(ref, "%_") {
		return Document{}, fmt.Errorf("sqlite storage: find document: %w: %q", ErrInvalidDocumentID, ref)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT `+documentColumns+` WHERE d.id LIKE ? LIMIT 2`, ref+"%")
	if err != nil {
		return Document{}, fmt.Errorf("sqlite storage: find document: %w", err)
	}
	defer rows.Close()

	var matches []Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return Document{}, err
		}
		matches = append(matches, doc)
	}
	if err := rows.Err(); err != nil {
		return Document{}, fmt.Errorf("sqlite storage: iterate documents: %w", err)
	}

	switch len(matches) {
	case 0:
		return Document{}, fmt.Errorf("sqlite storage: find document: %w: prefix %s", ErrDocumentNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return Document{}, fmt.Errorf("sqlite storage: find document: %w: prefix %s", ErrAmbiguousDocument, ref)
	}
}

// DeleteDocument removes a document with its pages and position.
func (s *Store) DeleteDocument(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite storage: begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, q := range []string{
		`DELETE FROM positions WHERE document_id = ?`,
		`DELETE FROM pages WHERE document_id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return fmt.Errorf("sqlite storage: delete document: %w", err)
		}
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite storage: delete document: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite storage: read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("sqlite storage: delete document: %w: id %s", ErrDocumentNotFound, id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite storage: commit delete: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (Document, error) {
	var (
		doc       Document
		createdAt string
		readAt    string
	)
	err := row.Scan(&doc.ID, &doc.Title, &doc.Source, &doc.Size, &doc.Pages, &createdAt, &doc.Position, &readAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, err
	}
	if err != nil {
		return Document{}, fmt.Errorf("sqlite storage: scan document: %w", err)
	}
	doc.CreatedAt = parseTime(createdAt)
	doc.ReadAt = parseTime(readAt)
	return doc, nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("sqlite storage: %w: %q", ErrInvalidDocumentID, id)
	}
	return nil
}
