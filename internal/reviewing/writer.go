package reviewing

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/agritalk/cropmd/internal/platform/metrics"
)

// snapshot is the whole review list at one version, already encoded.
type snapshot struct {
	version uint64
	data    []byte
}

// writer owns the goroutine that moves snapshots into Storage.
// It holds at most one pending snapshot: a newer snapshot replaces an older
// one that hasn't started writing yet, and versions only move forward, so an
// older list can never be written after a newer one.
type writer struct {
	storage        Storage
	key            string
	log            *slog.Logger
	metrics        *metrics.Store
	maxRetries     uint64
	initialBackoff time.Duration
	onError        func(error)

	mu       sync.Mutex
	pending  *snapshot
	enqueued uint64 // newest version handed to the writer
	handled  uint64 // newest version written or given up on
	lastErr  error  // result of writing handled
	progress chan struct{}
	stopped  bool

	wake chan struct{}
	stop chan struct{}
	done chan struct{}
}

func newWriter(storage Storage, key string, log *slog.Logger, m *metrics.Store, maxRetries uint64, initialBackoff time.Duration, onError func(error)) *writer {
	w := &writer{
		storage:        storage,
		key:            key,
		log:            log,
		metrics:        m,
		maxRetries:     maxRetries,
		initialBackoff: initialBackoff,
		onError:        onError,
		progress:       make(chan struct{}),
		wake:           make(chan struct{}, 1),
		stop:           make(chan struct{}),
		done:           make(chan struct{}),
	}

	go w.run()

	return w
}

// enqueue hands a snapshot to the writer without waiting for it to be written.
// It returns false when the writer has been stopped.
func (w *writer) enqueue(s snapshot) bool {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return false
	}
	if s.version <= w.enqueued {
		w.mu.Unlock()
		return true
	}
	if w.pending != nil {
		w.metrics.Coalesced.Inc()
	}
	w.pending = &s
	w.enqueued = s.version
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default: // already signalled, the writer will pick up the newest pending snapshot
	}

	return true
}

// flush waits until everything enqueued so far has been written or given up on,
// and returns the error from the newest write, if any.
func (w *writer) flush(ctx context.Context) error {
	w.mu.Lock()
	target := w.enqueued
	for w.handled < target {
		progress := w.progress
		w.mu.Unlock()

		select {
		case <-progress:
		case <-ctx.Done():
			return ctx.Err()
		case <-w.done:
			w.mu.Lock()
			if w.handled < target {
				w.mu.Unlock()
				return ErrClosed
			}
			w.mu.Unlock()
		}

		w.mu.Lock()
	}
	err := w.lastErr
	w.mu.Unlock()

	return err
}

// close writes whatever is still pending and stops the goroutine.
func (w *writer) close() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		<-w.done
		return
	}
	w.stopped = true
	w.mu.Unlock()

	close(w.stop)
	<-w.done
}

func (w *writer) run() {
	defer close(w.done)

	for {
		select {
		case <-w.wake:
			w.writePending()
		case <-w.stop:
			w.writePending()
			return
		}
	}
}

func (w *writer) writePending() {
	w.mu.Lock()
	s := w.pending
	w.pending = nil
	w.mu.Unlock()

	if s == nil {
		return
	}

	err := w.write(*s)

	w.mu.Lock()
	w.handled = s.version
	w.lastErr = err
	close(w.progress)
	w.progress = make(chan struct{})
	w.mu.Unlock()
}

func (w *writer) write(s snapshot) error {
	start := time.Now()
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = w.initialBackoff
	b.MaxElapsedTime = 0 // bounded by the retry count instead

	var attempt int
	err := backoff.Retry(func() error {
		attempt++
		err := w.storage.Set(context.Background(), w.key, s.data)
		if err != nil {
			w.log.Warn("failed to write reviews, will retry", "key", w.key, "version", s.version, "attempt", attempt, "error", err)
		}
		return err
	}, backoff.WithMaxRetries(b, w.maxRetries))
	w.metrics.PersistSeconds.Observe(time.Since(start).Seconds())

	if err != nil {
		w.metrics.Persists.WithLabelValues("error").Inc()
		werr := &PersistenceWriteError{Key: w.key, Version: s.version, Err: err}
		w.log.Error("failed to persist reviews", "key", w.key, "version", s.version, "attempts", attempt, "error", err)
		if w.onError != nil {
			w.onError(werr)
		}

		return werr
	}

	w.metrics.Persists.WithLabelValues("ok").Inc()
	w.log.Debug("persisted reviews", "key", w.key, "version", s.version, "bytes", len(s.data))

	return nil
}
