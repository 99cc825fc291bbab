package main

import (
	"context"
	"sync"

	"github.com/cristianoliveira/pageview/internal/config"
	"github.com/cristianoliveira/pageview/internal/storage/sqlite"
)

// lazyStore opens the document database on first use, after the root
// command has loaded configuration.
type lazyStore struct {
	open func() (*sqlite.Store, error)

	once  sync.Once
	store *sqlite.Store
	err   error
}

func newLazyStore(open func() (*sqlite.Store, error)) *lazyStore {
	return &lazyStore{open: open}
}

func openConfiguredStore() (*sqlite.Store, error) {
	return sqlite.Open(config.Get("db_path", ""))
}

func (l *lazyStore) get() (*sqlite.Store, error) {
	l.once.Do(func() {
		l.store, l.err = l.open()
	})
	return l.store, l.err
}

// Close closes the database if it was opened.
func (l *lazyStore) Close() error {
	if l.store == nil {
		return nil
	}
	return l.store.Close()
}

func (l *lazyStore) CreateDocument(ctx context.Context, title, source string, pages []string) (sqlite.Document, error) {
	s, err := l.get()
	if err != nil {
		return sqlite.Document{}, err
	}
	return s.CreateDocument(ctx, title, source, pages)
}

func (l *lazyStore) ListDocuments(ctx context.Context) ([]sqlite.Document, error) {
	s, err := l.get()
	if err != nil {
		return nil, err
	}
	return s.ListDocuments(ctx)
}

func (l *lazyStore) FindDocument(ctx context.Context, ref string) (sqlite.Document, error) {
	s, err := l.get()
	if err != nil {
		return sqlite.Document{}, err
	}
	return s.FindDocument(ctx, ref)
}

func (l *lazyStore) DeleteDocument(ctx context.Context, id string) error {
	s, err := l.get()
	if err != nil {
		return err
	}
	return s.DeleteDocument(ctx, id)
}

func (l *lazyStore) PageCount(ctx context.Context, documentID string) (int, error) {
	s, err := l.get()
	if err != nil {
		return 0, err
	}
	return s.PageCount(ctx, documentID)
}

func (l *lazyStore) Page(ctx context.Context, documentID string, index int) (sqlite.Page, error) {
	s, err := l.get()
	if err != nil {
		return sqlite.Page{}, err
	}
	return s.Page(ctx, documentID, index)
}

func (l *lazyStore) Position(ctx context.Context, documentID string) (int, error) {
	s, err := l.get()
	if err != nil {
		return 0, err
	}
	return s.Position(ctx, documentID)
}

func (l *lazyStore) SavePosition(ctx context.Context, documentID string, index int) error {
	s, err := l.get()
	if err != nil {
		return err
	}
	return s.SavePosition(ctx, documentID, index)
}

var store = newLazyStore(openConfiguredStore)
