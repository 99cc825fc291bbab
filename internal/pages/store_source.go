package pages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cristianoliveira/pageview/internal/storage/sqlite"
)

const defaultQueryTimeout = 2 * time.Second

// Store is the subset of document storage a StoreSource reads.
type Store interface {
	PageCount(ctx context.Context, documentID string) (int, error)
	Page(ctx context.Context, documentID string, index int) (sqlite.Page, error)
}

// Logger receives read failures.
type Logger interface {
	Warn(msg string, args ...any)
}

// StoreSource serves the pages of a stored document. Pages are fetched on
// first use and memoised so repeated fetches of an index return the same
// pointer.
type StoreSource struct {
	store   Store
	docID   string
	title   string
	timeout time.Duration
	logger  Logger
	memo    map[int]*Page
}

// NewStoreSource creates a source for document docID.
func NewStoreSource(store Store, docID, title string, logger Logger) *StoreSource {
	return &StoreSource{
		store:   store,
		docID:   docID,
		title:   title,
		timeout: defaultQueryTimeout,
		logger:  logger,
		memo:    make(map[int]*Page),
	}
}

// Invalidate drops memoised pages so the next fetch reads storage again.
func (s *StoreSource) Invalidate() {
	s.memo = make(map[int]*Page)
}

// PageCount returns the stored page count. Storage errors count as no pages.
func (s *StoreSource) PageCount() int {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	n, err := s.store.PageCount(ctx, s.docID)
	if err != nil {
		s.warn("pages: count pages", err)
		return 0
	}
	return n
}

// PageContent returns page index. A storage failure yields a page carrying
// the error text rather than an empty slot.
func (s *StoreSource) PageContent(index int) *Page {
	if p, ok := s.memo[index]; ok {
		return p
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	total, err := s.store.PageCount(ctx, s.docID)
	if err != nil {
		s.warn("pages: count pages", err)
		return s.errorPage(index, err)
	}
	stored, err := s.store.Page(ctx, s.docID, index)
	if err != nil {
		s.warn("pages: read page", err, "index", index)
		return s.errorPage(index, err)
	}

	p := &Page{
		Number: index,
		Title:  pageTitle(s.title, index, total),
		Lines:  strings.Split(stored.Body, "\n"),
	}
	s.memo[index] = p
	return p
}

func (s *StoreSource) errorPage(index int, err error) *Page {
	return &Page{
		Number: index,
		Title:  s.title,
		Lines:  []string{fmt.Sprintf("unable to load page %d: %v", index+1, err)},
	}
}

func (s *StoreSource) warn(msg string, err error, args ...any) {
	if s.logger == nil {
		return
	}
	s.logger.Warn(msg, append([]any{"document", s.docID, "error", err}, args...)...)
}
