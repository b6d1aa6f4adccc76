package commands

import (
	"context"

	"go.uber.org/zap"

	"relapse/internal/application"
	"relapse/internal/ports"
)

// SummarizeResult contains the extracted context for a batch
type SummarizeResult struct {
	Selection *application.Selection
	Text      string
}

// SummarizeCommand pipes the files of a resolved batch through the
// context-extraction tool
type SummarizeCommand struct {
	scanner    ports.FileScanner
	summarizer ports.Summarizer
	logger     *zap.Logger
	Options    ScanOptions
	Address    application.Address
}

// NewSummarizeCommand creates a new SummarizeCommand
func NewSummarizeCommand(scanner ports.FileScanner, summarizer ports.Summarizer, logger *zap.Logger, opts ScanOptions, addr application.Address) *SummarizeCommand {
	return &SummarizeCommand{
		scanner:    scanner,
		summarizer: summarizer,
		logger:     logger,
		Options:    opts,
		Address:    addr,
	}
}

// Execute runs the summarize command
func (c *SummarizeCommand) Execute(ctx context.Context) (*SummarizeResult, error) {
	sel, err := NewSelectBatchCommand(c.scanner, c.logger, c.Options, c.Address).Execute(ctx)
	if err != nil {
		return nil, err
	}

	text, err := c.summarizer.Summarize(ctx, sel.Root, sel.Batch.Paths())
	if err != nil {
		return nil, asToolError("code2prompt", err)
	}

	c.logger.Debug("summary produced", zap.Int("bytes", len(text)))
	return &SummarizeResult{Selection: sel, Text: text}, nil
}
