package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/edirooss/pmx-registry/internal/infrastructure/datastore"
	"github.com/edirooss/pmx-registry/internal/infrastructure/snapqueue"
	"go.uber.org/zap"
)

// SnapshotWriter persists the newest snapshot published to its queue.
//
// Loop:
//  1. Wait for the queue's ready signal.
//  2. Optionally sleep for the coalesce window so a burst settles.
//  3. Drain the queue keeping only the newest snapshot, encode and write it.
//
// Intermediate snapshots may be skipped, but whatever is written was emitted
// by the registry at some point, and once the producer goes quiet the last
// snapshot ends up on disk. On shutdown one final drain-and-write runs.
//
// Write or encode failures stop the writer and are returned from Run.
type SnapshotWriter[T any] struct {
	log    *zap.Logger
	queue  *snapqueue.Queue[[]T]
	store  datastore.Store
	window time.Duration

	writes atomic.Uint64
}

func NewSnapshotWriter[T any](log *zap.Logger, q *snapqueue.Queue[[]T], store datastore.Store, window time.Duration) *SnapshotWriter[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &SnapshotWriter[T]{
		log:    log.With(zap.String("target", store.Name())),
		queue:  q,
		store:  store,
		window: window,
	}
}

// Run blocks until ctx is cancelled or a write fails.
func (w *SnapshotWriter[T]) Run(ctx context.Context) error {
	w.log.Info("snapshot writer started", zap.Duration("coalesce_window", w.window))
	for {
		select {
		case <-ctx.Done():
			return w.shutdown(ctx)
		case <-w.queue.Ready():
		}

		if w.window > 0 {
			t := time.NewTimer(w.window)
			select {
			case <-ctx.Done():
				t.Stop()
				return w.shutdown(ctx)
			case <-t.C:
			}
		}

		if err := w.flush(ctx); err != nil {
			return err
		}
	}
}

// Writes reports how many documents have been written.
func (w *SnapshotWriter[T]) Writes() uint64 { return w.writes.Load() }

func (w *SnapshotWriter[T]) shutdown(ctx context.Context) error {
	if err := w.flush(ctx); err != nil {
		return err
	}
	w.log.Info("snapshot writer stopped", zap.Uint64("writes", w.writes.Load()))
	return nil
}

func (w *SnapshotWriter[T]) flush(ctx context.Context) error {
	snap, skipped, ok := w.queue.DrainLatest()
	if !ok {
		return nil
	}
	if snap == nil {
		snap = []T{}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	// Writes are short and must finish even while shutting down.
	if err := w.store.Write(context.WithoutCancel(ctx), data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	w.writes.Add(1)

	w.log.Debug("snapshot written",
		zap.Int("entries", len(snap)),
		zap.Int("coalesced", skipped),
		zap.Int("bytes", len(data)),
	)
	return nil
}
