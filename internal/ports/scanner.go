package ports

import (
	"context"

	"relapse/internal/domain"
)

// FileScanner lists every eligible file under a root with its mtime
type FileScanner interface {
	// Scan walks root and returns one record per regular file.
	// Records carry paths relative to root.
	Scan(ctx context.Context, root string) ([]domain.FileRecord, error)
}
