package copier

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Copier implements ports.TreeCopier on the local filesystem
type Copier struct{}

// NewCopier creates a new tree copier
func NewCopier() *Copier {
	return &Copier{}
}

// Copy copies each file under root to the same relative location under
// dest, keeping permissions and modification times. Returns the number of
// files copied.
func (c *Copier) Copy(ctx context.Context, root string, files []string, dest string) (int, error) {
	dest, err := filepath.Abs(dest)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve destination: %w", err)
	}

	for i, rel := range files {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		src := filepath.Join(root, filepath.FromSlash(rel))
		dst := filepath.Join(dest, filepath.FromSlash(rel))
		if err := copyFile(src, dst); err != nil {
			return i, fmt.Errorf("failed to copy %s: %w", rel, err)
		}
	}
	return len(files), nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
