// Package datastore holds the byte-level persistence backends for registry
// snapshots. A Store owns exactly one document; encoding is the caller's job.
package datastore

import (
	"context"
	"errors"
)

var (
	// ErrNotFound means no document has been written yet (or it cannot be opened).
	ErrNotFound = errors.New("document not found")
)

// Store reads and replaces a single persisted document.
//
// Write is a full overwrite; there is no append or partial update.
// Implementations are safe for use by one writer and any number of readers,
// but make no guarantee about readers racing a writer.
type Store interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	// Name identifies the document in logs (a path or a key).
	Name() string
}

func bcopy(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
