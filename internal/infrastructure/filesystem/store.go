package filesystem

import (
	"context"

	"github.com/spf13/afero"

	"arbfix/internal/domain"
	"arbfix/internal/ports/output"
)

var _ output.DocumentStore = (*Store)(nil)

// Store implements output.DocumentStore on top of an afero filesystem.
type Store struct {
	fs afero.Fs
}

// NewStore creates a Store. Use afero.NewOsFs() for real files.
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

func (s *Store) Read(_ context.Context, path string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, &domain.FileAccessError{Path: path, Op: "read", Err: err}
	}
	return data, nil
}

// Write truncates and rewrites path in place, keeping its permissions. The
// file must already exist.
func (s *Store) Write(_ context.Context, path string, data []byte) error {
	info, err := s.fs.Stat(path)
	if err != nil {
		return &domain.FileAccessError{Path: path, Op: "stat", Err: err}
	}
	if err := afero.WriteFile(s.fs, path, data, info.Mode().Perm()); err != nil {
		return &domain.FileAccessError{Path: path, Op: "write", Err: err}
	}
	return nil
}
