package sqlite

import "errors"

var (
	// ErrInvalidDocumentID indicates an empty or malformed document ID.
	ErrInvalidDocumentID = errors.New("invalid document ID")
	// ErrDocumentNotFound indicates that a document cannot be found.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrAmbiguousDocument indicates that an ID prefix matches more than one document.
	ErrAmbiguousDocument = errors.New("ambiguous document ID")
	// ErrPageNotFound indicates a page index outside the document.
	ErrPageNotFound = errors.New("page not found")
)
