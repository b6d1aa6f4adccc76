package code2prompt

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relapse/internal/application"
)

// fakeTool writes an executable shell script and returns its path
func fakeTool(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}

	path := filepath.Join(t.TempDir(), "fake-code2prompt")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0755))
	return path
}

func TestSummarize_PassesAbsolutePaths(t *testing.T) {
	bin := fakeTool(t, `for f in "$@"; do echo "$f"; done`)
	root := t.TempDir()

	out, err := NewSummarizer(WithBinary(bin)).Summarize(context.Background(), root, []string{"b.go", "sub/a.go"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		filepath.Join(root, "b.go"),
		filepath.Join(root, "sub", "a.go"),
	}, lines)
}

func TestSummarize_ExtraArgsComeFirst(t *testing.T) {
	bin := fakeTool(t, `echo "$1"`)

	out, err := NewSummarizer(WithBinary(bin), WithArgs("--no-clipboard")).Summarize(context.Background(), t.TempDir(), []string{"a.go"})
	require.NoError(t, err)
	assert.Equal(t, "--no-clipboard", strings.TrimSpace(out))
}

func TestSummarize_NonZeroExit(t *testing.T) {
	bin := fakeTool(t, `echo "bad input" >&2; exit 3`)

	_, err := NewSummarizer(WithBinary(bin)).Summarize(context.Background(), t.TempDir(), []string{"a.go"})

	var toolErr *application.ExternalToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Contains(t, toolErr.Stderr, "bad input")
	assert.ErrorIs(t, err, application.ErrExternalTool)
}

func TestSummarize_MissingBinary(t *testing.T) {
	s := NewSummarizer(WithBinary("relapse-definitely-missing-tool"))
	assert.False(t, s.IsAvailable())

	_, err := s.Summarize(context.Background(), t.TempDir(), []string{"a.go"})
	require.ErrorIs(t, err, application.ErrExternalTool)
	assert.Contains(t, err.Error(), "relapse-definitely-missing-tool")
}

func TestSummarize_Timeout(t *testing.T) {
	bin := fakeTool(t, `exec sleep 5`)

	_, err := NewSummarizer(WithBinary(bin), WithTimeout(100*time.Millisecond)).Summarize(context.Background(), t.TempDir(), nil)
	require.ErrorIs(t, err, application.ErrExternalTool)
	assert.Contains(t, err.Error(), "timed out")
}
