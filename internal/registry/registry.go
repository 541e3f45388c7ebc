package registry

import (
	"errors"
	"slices"
	"sync"

	"github.com/edirooss/pmx-registry/internal/domain/mixer"
	"go.uber.org/zap"
)

var (
	// ErrNotFound means no entity of the targeted kind has the requested id.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument means a mutation request is structurally inconsistent
	// (e.g. a stereo assignment missing its right path).
	ErrInvalidArgument = errors.New("invalid argument")
)

// Publisher receives a full copy of a persisted collection after each mutation.
// Push must not block: it is called while the registry write lock is held.
type Publisher[T any] interface {
	Push(snapshot []T)
}

// Registry is the authoritative, in-memory description of the mixer.
//
// Collections:
//   - inputs, outputs: created at bootstrap, mutated in place (name, port binding), persisted.
//   - plugins, channel strips, loopers, output stages: append-only at runtime, never persisted.
//
// Concurrency Model:
//   - One RWMutex guards every collection: any number of readers, or exactly one writer.
//   - A mutating call holds the write lock across validation + mutation + snapshot push.
//     Push is non-blocking, so the critical section stays bounded.
//
// Ordering:
//   - Snapshots are published in the exact order mutations are applied, and every
//     successful mutation has its snapshot enqueued before the lock is released.
//   - Nothing here guarantees a snapshot is ever written; durability belongs to the
//     consumer of the publisher and is best-effort.
//
// Reads:
//   - Return value copies. Callers never share memory with the live collections.
//
// Identity:
//   - Lookup is first-match by linear scan in insertion order.
//   - Registration does not check for duplicate ids or dangling cross-references;
//     re-registering an id appends a second entity that by-id reads will not reach.
type Registry struct {
	log *zap.Logger

	mu            sync.RWMutex
	inputs        []mixer.Input
	outputs       []mixer.Output
	plugins       []mixer.Plugin
	channelStrips []mixer.ChannelStrip
	loopers       []mixer.Looper
	outputStages  []mixer.OutputStage

	inputsPub  Publisher[mixer.Input]  // fixed at construction
	outputsPub Publisher[mixer.Output] // fixed at construction
}

// New constructs a Registry seeded with the bootstrap inputs and outputs.
// The publishers are captured once and never reassigned.
func New(log *zap.Logger, inputs []mixer.Input, outputs []mixer.Output, inputsPub Publisher[mixer.Input], outputsPub Publisher[mixer.Output]) (*Registry, error) {
	if inputsPub == nil || outputsPub == nil {
		return nil, errors.New("nil snapshot publisher")
	}
	if log == nil {
		log = zap.NewNop()
	}

	r := &Registry{
		log:        log.Named("registry"),
		inputs:     slices.Clone(inputs),
		outputs:    slices.Clone(outputs),
		inputsPub:  inputsPub,
		outputsPub: outputsPub,
	}
	r.log.Info("registry ready",
		zap.Int("inputs", len(r.inputs)),
		zap.Int("outputs", len(r.outputs)),
	)
	return r, nil
}

// find returns the index of the first item whose id matches, or -1.
func find[T any](items []T, id uint32, idOf func(*T) uint32) int {
	for i := range items {
		if idOf(&items[i]) == id {
			return i
		}
	}
	return -1
}

func inputID(in *mixer.Input) uint32        { return in.ID }
func outputID(out *mixer.Output) uint32     { return out.ID }
func pluginID(p *mixer.Plugin) uint32       { return p.ID }
func stripID(cs *mixer.ChannelStrip) uint32 { return cs.ID }
func looperID(l *mixer.Looper) uint32       { return l.ID }
func stageID(st *mixer.OutputStage) uint32  { return st.ID }

func cloneOrEmpty[T any](items []T) []T {
	if len(items) == 0 {
		return []T{}
	}
	return slices.Clone(items)
}

// getByID is the shared read path for every by-id query.
func getByID[T any](mu *sync.RWMutex, items *[]T, id uint32, idOf func(*T) uint32) (T, error) {
	mu.RLock()
	defer mu.RUnlock()

	i := find(*items, id, idOf)
	if i < 0 {
		var zero T
		return zero, ErrNotFound
	}
	return (*items)[i], nil
}

// list is the shared read path for every collection listing.
func list[T any](mu *sync.RWMutex, items *[]T) []T {
	mu.RLock()
	defer mu.RUnlock()
	return cloneOrEmpty(*items)
}
