package ports

import "context"

// TreeCopier copies files (relative to root) into dest, keeping their layout
type TreeCopier interface {
	Copy(ctx context.Context, root string, files []string, dest string) (int, error)
}
