package archive

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"
)

// StdoutPath selects standard output as the archive destination
const StdoutPath = "-"

// DefaultOutput is used when no output path is given
const DefaultOutput = "batch.tar.gz"

// TarGz implements ports.Archiver by writing a gzip-compressed tarball
type TarGz struct {
	output string
	stdout io.Writer
	logger *zap.Logger
}

// Option configures the TarGz archiver
type Option func(*TarGz)

// WithLogger sets the logger used for skipped entries
func WithLogger(logger *zap.Logger) Option {
	return func(a *TarGz) {
		a.logger = logger
	}
}

// NewTarGz creates an archiver writing to output ("-" for stdout)
func NewTarGz(output string, stdout io.Writer, opts ...Option) *TarGz {
	if output == "" {
		output = DefaultOutput
	}
	a := &TarGz{output: output, stdout: stdout, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Archive writes files (relative to root) into the tarball, using their
// relative paths as entry names
func (a *TarGz) Archive(ctx context.Context, root string, files []string) (string, error) {
	if a.output == StdoutPath {
		if err := a.write(ctx, a.stdout, root, files, nil); err != nil {
			return "", err
		}
		return "stdout", nil
	}

	if dir := filepath.Dir(a.output); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(a.output)
	if err != nil {
		return "", fmt.Errorf("failed to create archive: %w", err)
	}

	self, err := f.Stat()
	if err != nil {
		f.Close()
		return "", fmt.Errorf("failed to stat archive: %w", err)
	}

	if err := a.write(ctx, f, root, files, self); err != nil {
		f.Close()
		os.Remove(a.output)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close archive: %w", err)
	}
	return a.output, nil
}

// write streams files into w. The archive being written (self) is never
// added to itself.
func (a *TarGz) write(ctx context.Context, w io.Writer, root string, files []string, self os.FileInfo) error {
	gz := gzip.NewWriter(w)
	tw := tar.NewWriter(gz)

	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if self != nil && isSelf(root, rel, self) {
			a.logger.Debug("skipping output archive", zap.String("path", rel))
			continue
		}
		if err := addFile(tw, root, rel); err != nil {
			return err
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finish tar stream: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("failed to finish gzip stream: %w", err)
	}
	return nil
}

func isSelf(root, rel string, self os.FileInfo) bool {
	info, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return false
	}
	return os.SameFile(info, self)
}

func addFile(tw *tar.Writer, root, rel string) error {
	path := filepath.Join(root, filepath.FromSlash(rel))

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", rel, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", rel, err)
	}

	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("failed to build header for %s: %w", rel, err)
	}
	hdr.Name = filepath.ToSlash(rel)

	if err := tw.WriteHeader(hdr); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", rel, err)
	}
	if _, err := io.Copy(tw, f); err != nil {
		return fmt.Errorf("failed to write %s: %w", rel, err)
	}
	return nil
}
