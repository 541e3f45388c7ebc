package datastore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStore_MissingIsNotFound(t *testing.T) {
	s, err := NewFileStore(nil, filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)

	_, err = s.Read(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_WriteTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	s, err := NewFileStore(nil, path)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, []byte(`[{"id":1,"name":"a long first document"}]`)))
	require.NoError(t, s.Write(ctx, []byte(`[]`)))

	got, err := s.Read(ctx)
	require.NoError(t, err)
	require.Equal(t, `[]`, string(got))

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, got, onDisk)
}

func TestFileStore_WriteToMissingDirFails(t *testing.T) {
	s, err := NewFileStore(nil, filepath.Join(t.TempDir(), "no", "such", "dir", "doc.json"))
	require.NoError(t, err)
	require.Error(t, s.Write(context.Background(), []byte(`[]`)))
}

func TestFileStore_CancelledContext(t *testing.T) {
	s, err := NewFileStore(nil, filepath.Join(t.TempDir(), "doc.json"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, s.Write(ctx, []byte(`[]`)), context.Canceled)
}

func TestNewStores_RejectEmptyNames(t *testing.T) {
	_, err := NewFileStore(nil, "")
	require.Error(t, err)

	_, err = NewRedisStore(nil, nil, "pmx:", "inputs")
	require.Error(t, err)
}

// Runs only when a local Redis answers; set PMX_TEST_REDIS to its address.
func TestRedisStore_RoundTrip(t *testing.T) {
	addr := os.Getenv("PMX_TEST_REDIS")
	if addr == "" {
		t.Skip("PMX_TEST_REDIS not set")
	}
	ctx := context.Background()
	rdb := NewRedisClient(ctx, nil, addr, 15)
	t.Cleanup(func() { _ = rdb.Close() })
	if err := rdb.Ping(ctx); err != nil {
		t.Skipf("redis unreachable: %v", err)
	}

	s, err := NewRedisStore(nil, rdb.Client, "pmx:test:", t.Name())
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Del(ctx, s.Name()) })

	_, err = s.Read(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Write(ctx, []byte(`[{"id":1}]`)))
	got, err := s.Read(ctx)
	require.NoError(t, err)
	require.Equal(t, `[{"id":1}]`, string(got))
}
