package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relapse/internal/application"
)

var stamp = time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)

func writeFile(t *testing.T, root, rel string, mtime time.Time) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(rel), 0644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func paths(t *testing.T, s *Scanner, root string) []string {
	t.Helper()

	records, err := s.Scan(context.Background(), root)
	require.NoError(t, err)

	var out []string
	for _, r := range records {
		out = append(out, r.Path)
	}
	sort.Strings(out)
	return out
}

func TestScan_RelativePathsAndMtimes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go", stamp)
	writeFile(t, root, "internal/domain/batch.go", stamp.Add(time.Minute))

	records, err := NewScanner().Scan(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, records, 2)

	byPath := map[string]time.Time{}
	for _, r := range records {
		byPath[r.Path] = r.ModifiedAt
		assert.Equal(t, filepath.Join(root, filepath.FromSlash(r.Path)), r.Absolute)
	}
	assert.True(t, byPath["main.go"].Equal(stamp))
	assert.True(t, byPath["internal/domain/batch.go"].Equal(stamp.Add(time.Minute)))
}

func TestScan_DefaultIgnores(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "keep.txt", stamp)
	writeFile(t, root, ".git/HEAD", stamp)
	writeFile(t, root, "web/node_modules/pkg/index.js", stamp)
	writeFile(t, root, "pkg/__pycache__/mod.pyc", stamp)
	writeFile(t, root, "sub/.DS_Store", stamp)

	got := paths(t, NewScanner(WithIgnore(DefaultIgnore...)), root)
	assert.Equal(t, []string{"keep.txt"}, got)
}

func TestScan_CustomIgnore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.go", stamp)
	writeFile(t, root, "a.log", stamp)
	writeFile(t, root, "build/out.bin", stamp)

	got := paths(t, NewScanner(WithIgnore("**/*.log", "build/**")), root)
	assert.Equal(t, []string{"a.go"}, got)
}

func TestScan_BareDirectoryIgnore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go", stamp)
	writeFile(t, root, "build/out/x.go", stamp)
	writeFile(t, root, "web/dist/app.js", stamp)
	writeFile(t, root, "builder/keep.go", stamp)

	got := paths(t, NewScanner(WithIgnore("build", "**/dist")), root)
	assert.Equal(t, []string{"builder/keep.go", "main.go"}, got)
}

func TestScan_EmptyRoot(t *testing.T) {
	records, err := NewScanner().Scan(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestScan_MissingRoot(t *testing.T) {
	_, err := NewScanner().Scan(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, application.ErrScanFailure)
}

func TestScan_RootIsFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "file.txt", stamp)

	_, err := NewScanner().Scan(context.Background(), filepath.Join(root, "file.txt"))
	assert.ErrorIs(t, err, application.ErrScanFailure)
}

func TestScan_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", stamp)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewScanner().Scan(ctx, root)
	assert.ErrorIs(t, err, context.Canceled)
}
