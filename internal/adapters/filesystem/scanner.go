package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"relapse/internal/application"
	"relapse/internal/domain"
)

// DefaultIgnore lists paths that are never part of a work session
var DefaultIgnore = []string{
	"**/.git/**",
	"**/node_modules/**",
	"**/__pycache__/**",
	"**/.venv/**",
	"**/.DS_Store",
}

// Scanner implements ports.FileScanner using the filesystem
type Scanner struct {
	ignore []string
	logger *zap.Logger
}

// Option configures the Scanner
type Option func(*Scanner)

// WithIgnore adds doublestar patterns, matched against slash-separated
// paths relative to the root
func WithIgnore(patterns ...string) Option {
	return func(s *Scanner) {
		s.ignore = append(s.ignore, patterns...)
	}
}

// WithLogger sets the logger used for skipped entries
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// NewScanner creates a new filesystem scanner
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan walks root and returns every regular file with its mtime
func (s *Scanner) Scan(ctx context.Context, root string) ([]domain.FileRecord, error) {
	root = expandHome(root)

	info, err := os.Stat(root)
	if err != nil {
		return nil, &application.ScanError{Root: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &application.ScanError{Root: root, Err: fmt.Errorf("not a directory")}
	}

	var records []domain.FileRecord
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if path == root {
				return walkErr
			}
			s.logger.Debug("skipping unreadable entry", zap.String("path", path), zap.Error(walkErr))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if s.ignoredDir(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if s.ignored(rel) {
			return nil
		}

		fi, err := fileInfo(path, d)
		if err != nil {
			s.logger.Debug("skipping unreadable file", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !fi.Mode().IsRegular() {
			return nil
		}

		records = append(records, domain.FileRecord{
			Path:       rel,
			Absolute:   path,
			ModifiedAt: fi.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, &application.ScanError{Root: root, Err: err}
	}

	s.logger.Debug("scanned root", zap.String("root", root), zap.Int("files", len(records)))
	return records, nil
}

// fileInfo resolves symlinks so links to regular files are included
func fileInfo(path string, d fs.DirEntry) (fs.FileInfo, error) {
	if d.Type()&fs.ModeSymlink != 0 {
		return os.Stat(path)
	}
	return d.Info()
}

func (s *Scanner) ignored(rel string) bool {
	for _, pattern := range s.ignore {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// ignoredDir reports whether a whole directory can be pruned. A pattern
// prunes a directory when it matches the directory path itself ("build",
// "**/dist") or does so once a trailing "/**" is removed ("**/.git/**").
func (s *Scanner) ignoredDir(rel string) bool {
	for _, pattern := range s.ignore {
		if ok, _ := doublestar.Match(strings.TrimSuffix(pattern, "/**"), rel); ok {
			return true
		}
	}
	return false
}

// expandHome expands a leading ~ to the home directory
func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
