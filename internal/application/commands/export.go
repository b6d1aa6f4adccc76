package commands

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"relapse/internal/application"
	"relapse/internal/ports"
)

// ExportResult contains the outcome of archiving a batch
type ExportResult struct {
	Selection *application.Selection
	Output    string
	Message   string
}

// ExportCommand archives the files of a resolved batch
type ExportCommand struct {
	scanner  ports.FileScanner
	archiver ports.Archiver
	logger   *zap.Logger
	Options  ScanOptions
	Address  application.Address
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(scanner ports.FileScanner, archiver ports.Archiver, logger *zap.Logger, opts ScanOptions, addr application.Address) *ExportCommand {
	return &ExportCommand{
		scanner:  scanner,
		archiver: archiver,
		logger:   logger,
		Options:  opts,
		Address:  addr,
	}
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context) (*ExportResult, error) {
	sel, err := NewSelectBatchCommand(c.scanner, c.logger, c.Options, c.Address).Execute(ctx)
	if err != nil {
		return nil, err
	}

	output, err := c.archiver.Archive(ctx, sel.Root, sel.Batch.Paths())
	if err != nil {
		return nil, asToolError("archive", err)
	}

	return &ExportResult{
		Selection: sel,
		Output:    output,
		Message:   fmt.Sprintf("Archived %s -> %s", describe(sel.Batch), output),
	}, nil
}

// asToolError makes sure adapter failures surface as ExternalToolError
func asToolError(tool string, err error) error {
	var toolErr *application.ExternalToolError
	if errors.As(err, &toolErr) {
		return err
	}
	return &application.ExternalToolError{Tool: tool, Err: err}
}
