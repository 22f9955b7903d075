package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/devarshiadi/devconsole/internal/domain"
)

// DefaultQueueSize bounds the number of views waiting to be stored.
const DefaultQueueSize = 256

// insertTimeout bounds a single store write.
const insertTimeout = 5 * time.Second

// ViewStore persists page views.
type ViewStore interface {
	Insert(ctx context.Context, view domain.PageView) error
}

// ViewRecorder queues page views and stores them off the request path.
type ViewRecorder struct {
	store ViewStore
	queue chan domain.PageView
}

// NewViewRecorder creates a recorder with a queue of size entries.
func NewViewRecorder(store ViewStore, size int) *ViewRecorder {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &ViewRecorder{
		store: store,
		queue: make(chan domain.PageView, size),
	}
}

// Record enqueues view without blocking. A full queue drops the view and
// returns domain.ErrQueueFull.
func (r *ViewRecorder) Record(view domain.PageView) error {
	select {
	case r.queue <- view:
		return nil
	default:
		slog.Warn("dropping page view, queue full", "request_id", view.RequestID)
		return domain.ErrQueueFull
	}
}

// Run stores queued views until ctx is cancelled, then flushes what is
// still queued. It always returns nil; store failures are logged.
func (r *ViewRecorder) Run(ctx context.Context) error {
	for {
		select {
		case view := <-r.queue:
			r.save(context.WithoutCancel(ctx), view)
		case <-ctx.Done():
			r.flush(context.WithoutCancel(ctx))
			return nil
		}
	}
}

func (r *ViewRecorder) flush(ctx context.Context) {
	for {
		select {
		case view := <-r.queue:
			r.save(ctx, view)
		default:
			return
		}
	}
}

func (r *ViewRecorder) save(ctx context.Context, view domain.PageView) {
	ctx, cancel := context.WithTimeout(ctx, insertTimeout)
	defer cancel()

	if err := r.store.Insert(ctx, view); err != nil {
		slog.Error("failed to store page view", "error", err, "request_id", view.RequestID)
	}
}
