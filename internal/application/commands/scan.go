package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"relapse/internal/application"
	"relapse/internal/domain"
	"relapse/internal/ports"
)

// ScanOptions are the settings every command shares
type ScanOptions struct {
	Root string
	Gap  time.Duration
	Kind domain.Kind
}

// Validate checks the shared scan options
func (o ScanOptions) Validate() error {
	if o.Root == "" {
		return &application.ValidationError{Field: "root", Message: "root is required"}
	}
	return application.ValidateGap(o.Gap)
}

// scanResult holds everything derived from one walk of the root
type scanResult struct {
	root    string
	records []domain.FileRecord
	batches []domain.Batch
}

// scan walks the root, applies the kind filter and builds batches
func scan(ctx context.Context, scanner ports.FileScanner, opts ScanOptions, logger *zap.Logger) (*scanResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, &application.ScanError{Root: opts.Root, Err: err}
	}

	records, err := scanner.Scan(ctx, root)
	if err != nil {
		var scanErr *application.ScanError
		if errors.As(err, &scanErr) {
			return nil, err
		}
		return nil, &application.ScanError{Root: root, Err: err}
	}

	if opts.Kind != domain.KindAll {
		rootName := filepath.Base(root)
		kept := records[:0:0]
		for _, r := range records {
			if opts.Kind.Matches(rootName, r.Path) {
				kept = append(kept, r)
			}
		}
		records = kept
	}

	batches := domain.BuildBatches(records, opts.Gap)
	logger.Debug("scan complete",
		zap.String("root", root),
		zap.Int("files", len(records)),
		zap.Int("batches", len(batches)),
		zap.Duration("gap", opts.Gap),
		zap.Stringer("kind", opts.Kind),
	)

	return &scanResult{root: root, records: records, batches: batches}, nil
}

// resolve picks one batch out of a scan
func resolve(res *scanResult, addr application.Address) (*application.Selection, error) {
	if len(res.records) == 0 {
		return nil, &application.EmptyScanError{Root: res.root}
	}

	var (
		batch domain.Batch
		err   error
	)
	switch addr.Mode {
	case application.ModeMoment:
		batch, err = domain.SelectByMoment(res.batches, addr.Moment)
	case application.ModeIndex:
		batch, err = domain.SelectByIndex(res.batches, addr.Index)
	default:
		batch, err = domain.SelectByIndex(res.batches, 0)
	}
	if err != nil {
		return nil, err
	}

	return &application.Selection{
		Root:  res.root,
		Batch: batch,
		Total: len(res.batches),
	}, nil
}

// SelectBatchCommand scans a root and resolves one batch
type SelectBatchCommand struct {
	scanner ports.FileScanner
	logger  *zap.Logger
	Options ScanOptions
	Address application.Address
}

// NewSelectBatchCommand creates a new SelectBatchCommand
func NewSelectBatchCommand(scanner ports.FileScanner, logger *zap.Logger, opts ScanOptions, addr application.Address) *SelectBatchCommand {
	return &SelectBatchCommand{
		scanner: scanner,
		logger:  logger,
		Options: opts,
		Address: addr,
	}
}

// Execute runs the select command
func (c *SelectBatchCommand) Execute(ctx context.Context) (*application.Selection, error) {
	res, err := scan(ctx, c.scanner, c.Options, c.logger)
	if err != nil {
		return nil, err
	}

	sel, err := resolve(res, c.Address)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("batch selected",
		zap.Int("index", sel.Batch.Index),
		zap.Int("files", len(sel.Batch.Files)),
		zap.Time("start", sel.Batch.Start),
		zap.Time("end", sel.Batch.End),
	)
	return sel, nil
}

// ListBatchesResult contains every batch of a scan
type ListBatchesResult struct {
	Root    string
	Batches []domain.Batch
	Files   int
}

// ListBatchesCommand scans a root and returns all batches
type ListBatchesCommand struct {
	scanner ports.FileScanner
	logger  *zap.Logger
	Options ScanOptions
}

// NewListBatchesCommand creates a new ListBatchesCommand
func NewListBatchesCommand(scanner ports.FileScanner, logger *zap.Logger, opts ScanOptions) *ListBatchesCommand {
	return &ListBatchesCommand{scanner: scanner, logger: logger, Options: opts}
}

// Execute runs the list batches command. An empty root yields no batches.
func (c *ListBatchesCommand) Execute(ctx context.Context) (*ListBatchesResult, error) {
	res, err := scan(ctx, c.scanner, c.Options, c.logger)
	if err != nil {
		return nil, err
	}
	return &ListBatchesResult{
		Root:    res.root,
		Batches: res.batches,
		Files:   len(res.records),
	}, nil
}

// describe renders a short human label for a batch, used in messages
func describe(b domain.Batch) string {
	return fmt.Sprintf("batch %d (%d files)", b.Index, len(b.Files))
}
