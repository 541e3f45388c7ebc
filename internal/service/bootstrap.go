package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/edirooss/pmx-registry/internal/infrastructure/datastore"
	"go.uber.org/zap"
)

// LoadSnapshot returns the collection persisted in store, or seed() when
// nothing has been persisted yet.
//
// Error Policy:
//   - Recoverable: document missing (datastore.ErrNotFound). Falls back to seed.
//   - Fatal: any other read error, or a document that does not decode.
//     A corrupt file is never silently replaced by built-in data.
func LoadSnapshot[T any](ctx context.Context, log *zap.Logger, store datastore.Store, seed func() []T) ([]T, error) {
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()
	log = log.With(zap.String("source", store.Name()))
	log.Info("bootstrap: start")

	data, err := store.Read(ctx)
	if errors.Is(err, datastore.ErrNotFound) {
		items := seed()
		log.Info("bootstrap: complete (seed)",
			zap.Int("recovered", len(items)),
			zap.Duration("duration", time.Since(start)),
		)
		return items, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", store.Name(), err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", store.Name(), err)
	}
	if items == nil {
		items = []T{}
	}

	log.Info("bootstrap: complete",
		zap.Int("recovered", len(items)),
		zap.Duration("duration", time.Since(start)),
	)
	return items, nil
}
