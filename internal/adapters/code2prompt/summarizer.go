package code2prompt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"relapse/internal/application"
)

const (
	// DefaultBinary is the context-extraction tool looked up on PATH
	DefaultBinary = "code2prompt"

	// DefaultTimeout bounds a single invocation
	DefaultTimeout = 5 * time.Minute
)

// Summarizer implements ports.Summarizer by running the code2prompt CLI
type Summarizer struct {
	binary  string
	args    []string
	timeout time.Duration
	logger  *zap.Logger
}

// Option configures the Summarizer
type Option func(*Summarizer)

// WithBinary sets the executable name or path
func WithBinary(binary string) Option {
	return func(s *Summarizer) {
		if binary != "" {
			s.binary = binary
		}
	}
}

// WithArgs sets extra arguments placed before the file list
func WithArgs(args ...string) Option {
	return func(s *Summarizer) {
		s.args = args
	}
}

// WithTimeout bounds each invocation; zero disables the bound
func WithTimeout(d time.Duration) Option {
	return func(s *Summarizer) {
		s.timeout = d
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Summarizer) {
		s.logger = logger
	}
}

// NewSummarizer creates a new code2prompt summarizer
func NewSummarizer(opts ...Option) *Summarizer {
	s := &Summarizer{
		binary:  DefaultBinary,
		timeout: DefaultTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsAvailable checks if the tool is installed and accessible
func (s *Summarizer) IsAvailable() bool {
	_, err := exec.LookPath(s.binary)
	return err == nil
}

// Summarize runs the tool over the absolute paths of files and returns
// whatever it writes to stdout
func (s *Summarizer) Summarize(ctx context.Context, root string, files []string) (string, error) {
	bin, err := exec.LookPath(s.binary)
	if err != nil {
		return "", &application.ExternalToolError{
			Tool: s.binary,
			Err:  fmt.Errorf("not found in PATH (install %s)", s.binary),
		}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	args := append([]string{}, s.args...)
	for _, rel := range files {
		args = append(args, filepath.Join(root, filepath.FromSlash(rel)))
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = root
	cmd.WaitDelay = time.Second
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	s.logger.Debug("running context tool",
		zap.String("binary", bin),
		zap.Int("files", len(files)),
		zap.Duration("timeout", s.timeout),
	)

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("timed out after %s", s.timeout)
		}
		return "", &application.ExternalToolError{
			Tool:   s.binary,
			Err:    err,
			Stderr: stderr.String(),
		}
	}

	return stdout.String(), nil
}
