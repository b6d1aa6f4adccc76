package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"relapse/internal/application"
	"relapse/internal/ports"
)

// CopyResult contains the outcome of copying a batch
type CopyResult struct {
	Selection *application.Selection
	Copied    int
	Message   string
}

// CopyCommand copies the files of a resolved batch into a destination
// directory, preserving their layout under the root
type CopyCommand struct {
	scanner ports.FileScanner
	copier  ports.TreeCopier
	logger  *zap.Logger
	Options ScanOptions
	Address application.Address
	Dest    string
}

// NewCopyCommand creates a new CopyCommand
func NewCopyCommand(scanner ports.FileScanner, copier ports.TreeCopier, logger *zap.Logger, opts ScanOptions, addr application.Address, dest string) *CopyCommand {
	return &CopyCommand{
		scanner: scanner,
		copier:  copier,
		logger:  logger,
		Options: opts,
		Address: addr,
		Dest:    dest,
	}
}

// Validate checks the destination
func (c *CopyCommand) Validate() error {
	if c.Dest == "" {
		return &application.ValidationError{Field: "dest", Message: "destination is required"}
	}
	return nil
}

// Execute runs the copy command
func (c *CopyCommand) Execute(ctx context.Context) (*CopyResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	sel, err := NewSelectBatchCommand(c.scanner, c.logger, c.Options, c.Address).Execute(ctx)
	if err != nil {
		return nil, err
	}

	n, err := c.copier.Copy(ctx, sel.Root, sel.Batch.Paths(), c.Dest)
	if err != nil {
		return nil, fmt.Errorf("failed to copy %s: %w", describe(sel.Batch), err)
	}

	return &CopyResult{
		Selection: sel,
		Copied:    n,
		Message:   fmt.Sprintf("Copied %d files from %s -> %s", n, describe(sel.Batch), c.Dest),
	}, nil
}
