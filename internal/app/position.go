package app

import (
	"context"
	"time"
)

const defaultSaveTimeout = time.Second

// PositionStore persists reading positions.
type PositionStore interface {
	SavePosition(ctx context.Context, documentID string, index int) error
}

// Logger receives recorder failures.
type Logger interface {
	Warn(msg string, args ...any)
}

// PositionRecorder observes page transitions and saves the settled page.
// Settle notifications repeat for the same page; only changes are written.
type PositionRecorder struct {
	store   PositionStore
	docID   string
	last    int
	timeout time.Duration
	logger  Logger
	onError func(error)
}

// NewPositionRecorder creates a recorder for documentID.
func NewPositionRecorder(store PositionStore, documentID string, logger Logger) *PositionRecorder {
	if store == nil {
		panic("NewPositionRecorder: store dependency cannot be nil")
	}
	return &PositionRecorder{
		store:   store,
		docID:   documentID,
		last:    -1,
		timeout: defaultSaveTimeout,
		logger:  logger,
	}
}

// OnError registers a callback for failed writes.
func (r *PositionRecorder) OnError(fn func(error)) {
	r.onError = fn
}

// PageSettled records index unless it is the page last written.
func (r *PositionRecorder) PageSettled(index int) {
	if index == r.last {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.store.SavePosition(ctx, r.docID, index); err != nil {
		if r.logger != nil {
			r.logger.Warn("app: save position", "document", r.docID, "index", index, "error", err)
		}
		if r.onError != nil {
			r.onError(err)
		}
		return
	}
	r.last = index
}

// Last returns the last saved index, or -1 before the first write.
func (r *PositionRecorder) Last() int {
	return r.last
}
