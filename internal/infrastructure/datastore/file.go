package datastore

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// FileStore persists the document as a plain file.
//
// Read maps any open failure to ErrNotFound so a first start with no file
// falls back to built-in data. Write truncates and rewrites the file in place.
type FileStore struct {
	log  *zap.Logger
	path string
}

func NewFileStore(log *zap.Logger, path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("invalid path: must be non-empty")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &FileStore{log: log.Named("file").With(zap.String("path", path)), path: path}, nil
}

func (s *FileStore) Name() string { return s.path }

func (s *FileStore) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		s.log.Debug("open failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return data, nil
}

func (s *FileStore) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	s.log.Debug("document written", zap.Int("bytes", len(data)))
	return nil
}
