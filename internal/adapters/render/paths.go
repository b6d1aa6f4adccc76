package render

import (
	"bufio"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"relapse/internal/application"
	"relapse/internal/domain"
)

// PathFormat selects how file paths are printed
type PathFormat string

const (
	FormatRelative PathFormat = "relative"
	FormatAbsolute PathFormat = "absolute"
	FormatName     PathFormat = "name"
)

// ParsePathFormat converts a --format flag value
func ParsePathFormat(s string) (PathFormat, error) {
	switch f := PathFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatRelative:
		return FormatRelative, nil
	case FormatAbsolute, FormatName:
		return f, nil
	default:
		return "", &application.ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("expected relative, absolute or name, got: %s", s),
		}
	}
}

// FormatPath renders one record according to format
func FormatPath(root string, rec domain.FileRecord, format PathFormat) string {
	switch format {
	case FormatAbsolute:
		if rec.Absolute != "" {
			return rec.Absolute
		}
		return filepath.Join(root, filepath.FromSlash(rec.Path))
	case FormatName:
		return path.Base(rec.Path)
	default:
		return filepath.FromSlash(rec.Path)
	}
}

// FormatPaths writes the batch's files one per line, in batch order
func FormatPaths(w io.Writer, sel *application.Selection, format PathFormat) error {
	bw := bufio.NewWriter(w)
	for _, rec := range sel.Batch.Files {
		if _, err := fmt.Fprintln(bw, FormatPath(sel.Root, rec, format)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
