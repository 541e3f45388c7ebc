package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/edirooss/pmx-registry/internal/domain/mixer"
	"github.com/edirooss/pmx-registry/internal/infrastructure/datastore"
	"github.com/edirooss/pmx-registry/internal/infrastructure/snapqueue"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory datastore.Store that records every write.
type memStore struct {
	mu       sync.Mutex
	doc      []byte
	has      bool
	writes   [][]byte
	readErr  error
	writeErr error
}

func (m *memStore) Name() string { return "mem" }

func (m *memStore) Read(context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return nil, m.readErr
	}
	if !m.has {
		return nil, datastore.ErrNotFound
	}
	return m.doc, nil
}

func (m *memStore) Write(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.doc, m.has = data, true
	m.writes = append(m.writes, data)
	return nil
}

func (m *memStore) written() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.writes))
	copy(out, m.writes)
	return out
}

func seedInputs() []mixer.Input {
	return []mixer.Input{{ID: 1, Name: "DSMPL", Ports: mixer.Unbound(), GroupChannelStripName: "Drums"}}
}

func TestLoadSnapshot_MissingUsesSeed(t *testing.T) {
	got, err := LoadSnapshot(context.Background(), nil, &memStore{}, seedInputs)
	require.NoError(t, err)
	require.Equal(t, seedInputs(), got)
}

func TestLoadSnapshot_Persisted(t *testing.T) {
	doc := `[{"id":7,"name":"opsix","pipewire_ports":{"Mono":"a:1"},"group_channel_strip_name":"Drums"}]`
	got, err := LoadSnapshot(context.Background(), nil, &memStore{doc: []byte(doc), has: true}, seedInputs)
	require.NoError(t, err)
	require.Equal(t, []mixer.Input{{ID: 7, Name: "opsix", Ports: mixer.Mono("a:1"), GroupChannelStripName: "Drums"}}, got)
}

func TestLoadSnapshot_EmptyArray(t *testing.T) {
	got, err := LoadSnapshot(context.Background(), nil, &memStore{doc: []byte(`[]`), has: true}, seedInputs)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestLoadSnapshot_Malformed(t *testing.T) {
	for _, doc := range []string{
		``,
		`{`,
		`{"id":1}`,
		`[{"id":1,"pipewire_ports":{"Quad":[]}}]`,
		`[{}]`,
		`[{"id":3}]`,
		`[{"id":3,"name":"DEuro","pipewire_ports":{"Mono":null},"group_channel_strip_name":"Drums"}]`,
	} {
		t.Run(fmt.Sprintf("%q", doc), func(t *testing.T) {
			_, err := LoadSnapshot(context.Background(), nil, &memStore{doc: []byte(doc), has: true}, seedInputs)
			require.Error(t, err)
		})
	}
}

func TestLoadSnapshot_ReadError(t *testing.T) {
	boom := errors.New("connection refused")
	_, err := LoadSnapshot(context.Background(), nil, &memStore{readErr: boom}, seedInputs)
	require.ErrorIs(t, err, boom)
}

func startWriter(t *testing.T, store *memStore, q *snapqueue.Queue[[]mixer.Input], window time.Duration) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	w := NewSnapshotWriter(nil, q, store, window)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(cancel)
	return cancel, done
}

func named(n int) []mixer.Input {
	return []mixer.Input{{ID: 1, Name: fmt.Sprintf("v%d", n), Ports: mixer.Unbound()}}
}

func decode(t *testing.T, b []byte) []mixer.Input {
	t.Helper()
	var out []mixer.Input
	require.NoError(t, json.Unmarshal(b, &out))
	return out
}

func TestSnapshotWriter_LastSnapshotWins(t *testing.T) {
	store := &memStore{}
	q := snapqueue.New[[]mixer.Input]()
	cancel, done := startWriter(t, store, q, 20*time.Millisecond)

	const n = 50
	for i := 1; i <= n; i++ {
		q.Push(named(i))
	}

	require.Eventually(t, func() bool {
		ws := store.written()
		return len(ws) > 0 && decode(t, ws[len(ws)-1])[0].Name == fmt.Sprintf("v%d", n)
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	ws := store.written()
	require.LessOrEqual(t, len(ws), n)

	// Every document written was an emitted snapshot, and they appear in emission order.
	last := 0
	for _, b := range ws {
		var k int
		_, err := fmt.Sscanf(decode(t, b)[0].Name, "v%d", &k)
		require.NoError(t, err)
		require.Greater(t, k, last)
		last = k
	}
}

func TestSnapshotWriter_FlushOnShutdown(t *testing.T) {
	store := &memStore{}
	q := snapqueue.New[[]mixer.Input]()
	q.Push(named(1))
	q.Push(named(2))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, NewSnapshotWriter(nil, q, store, time.Hour).Run(ctx))

	ws := store.written()
	require.Len(t, ws, 1)
	require.Equal(t, "v2", decode(t, ws[0])[0].Name)
	require.Zero(t, q.Len())
}

func TestSnapshotWriter_IdleShutdownWritesNothing(t *testing.T) {
	store := &memStore{}
	cancel, done := startWriter(t, store, snapqueue.New[[]mixer.Input](), 0)
	cancel()
	require.NoError(t, <-done)
	require.Empty(t, store.written())
}

func TestSnapshotWriter_PrettyPrinted(t *testing.T) {
	store := &memStore{}
	q := snapqueue.New[[]mixer.Input]()
	q.Push(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, NewSnapshotWriter(nil, q, store, 0).Run(ctx))
	require.Equal(t, "[]", string(store.written()[0]))

	q.Push(named(3))
	require.NoError(t, NewSnapshotWriter(nil, q, store, 0).Run(ctx))
	require.Contains(t, string(store.written()[1]), "\n  {\n    \"id\": 1,")
}

func TestSnapshotWriter_WriteErrorStops(t *testing.T) {
	boom := errors.New("disk full")
	store := &memStore{writeErr: boom}
	q := snapqueue.New[[]mixer.Input]()
	_, done := startWriter(t, store, q, 0)

	q.Push(named(1))

	select {
	case err := <-done:
		require.ErrorIs(t, err, boom)
	case <-time.After(2 * time.Second):
		t.Fatal("writer did not stop on write error")
	}
}

func TestSnapshotWriter_RoundTripsThroughBootstrap(t *testing.T) {
	store := &memStore{}
	q := snapqueue.New[[]mixer.Input]()
	want := []mixer.Input{
		{ID: 1, Name: "Kick", Ports: mixer.Stereo("l", "r"), GroupChannelStripName: "Drums"},
		{ID: 2, Name: "Bass", Ports: mixer.Mono("m"), GroupChannelStripName: "Bass"},
	}
	q.Push(want)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, NewSnapshotWriter(nil, q, store, 0).Run(ctx))

	got, err := LoadSnapshot(context.Background(), nil, store, seedInputs)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLoadSnapshot_OutputWithoutType(t *testing.T) {
	seed := func() []mixer.Output { return nil }
	doc := `[{"id":1,"name":"Main","pipewire_ports":"None"}]`
	_, err := LoadSnapshot(context.Background(), nil, &memStore{doc: []byte(doc), has: true}, seed)
	require.ErrorIs(t, err, mixer.ErrIncompleteRecord)
}
