package output

import "context"

// DocumentStore reads and overwrites message documents by path.
// Implementations report failures as *domain.FileAccessError.
type DocumentStore interface {
	Read(ctx context.Context, path string) ([]byte, error)
	Write(ctx context.Context, path string, data []byte) error
}
