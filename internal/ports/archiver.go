package ports

import "context"

// Archiver bundles a set of files into a single artifact
type Archiver interface {
	// Archive packs files (relative to root) and returns where the
	// artifact was written
	Archive(ctx context.Context, root string, files []string) (string, error)
}
