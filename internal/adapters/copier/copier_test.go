package copier

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopy_PreservesTreeAndMtime(t *testing.T) {
	root := t.TempDir()
	mtime := time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)

	for _, rel := range []string{"a.go", "pkg/b/b.go"} {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(rel), 0644))
		require.NoError(t, os.Chtimes(path, mtime, mtime))
	}

	dest := filepath.Join(t.TempDir(), "out")
	n, err := NewCopier().Copy(context.Background(), root, []string{"pkg/b/b.go", "a.go"}, dest)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	content, err := os.ReadFile(filepath.Join(dest, "pkg", "b", "b.go"))
	require.NoError(t, err)
	assert.Equal(t, "pkg/b/b.go", string(content))

	info, err := os.Stat(filepath.Join(dest, "a.go"))
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime))
}

func TestCopy_MissingSource(t *testing.T) {
	n, err := NewCopier().Copy(context.Background(), t.TempDir(), []string{"nope.txt"}, t.TempDir())
	require.Error(t, err)
	assert.Equal(t, 0, n)
	assert.Contains(t, err.Error(), "nope.txt")
}
