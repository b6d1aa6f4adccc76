package commands

import (
	"context"

	"go.uber.org/zap"

	"relapse/internal/application"
	"relapse/internal/domain"
	"relapse/internal/ports"
)

// TimelineResult contains the histogram and the batches it spans.
// Batches keep the indices the selector uses; only batches with at least
// one file passing the filter are listed.
type TimelineResult struct {
	Root     string
	Timeline domain.Timeline
	Batches  []domain.Batch
}

// TimelineCommand bins modification times across the whole root
type TimelineCommand struct {
	scanner ports.FileScanner
	logger  *zap.Logger
	Options ScanOptions
	Bins    int
	Filter  string
}

// NewTimelineCommand creates a new TimelineCommand
func NewTimelineCommand(scanner ports.FileScanner, logger *zap.Logger, opts ScanOptions, bins int, filter string) *TimelineCommand {
	return &TimelineCommand{
		scanner: scanner,
		logger:  logger,
		Options: opts,
		Bins:    bins,
		Filter:  filter,
	}
}

// Validate checks the timeline parameters
func (c *TimelineCommand) Validate() error {
	return application.ValidateBins(c.Bins)
}

// Execute runs the timeline command. An empty scan or a filter that
// matches nothing yields an empty timeline, not an error.
func (c *TimelineCommand) Execute(ctx context.Context) (*TimelineResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	res, err := scan(ctx, c.scanner, c.Options, c.logger)
	if err != nil {
		return nil, err
	}

	filter := domain.PathFilter{Pattern: c.Filter}
	records := filter.Apply(res.records)
	tl := domain.BuildTimeline(records, c.Bins)

	c.logger.Debug("timeline built",
		zap.String("filter", c.Filter),
		zap.Int("matched", len(records)),
		zap.Int("bins", len(tl.Bins)),
		zap.Duration("width", tl.Width),
	)

	return &TimelineResult{
		Root:     res.root,
		Timeline: tl,
		Batches:  matchingBatches(res.batches, filter),
	}, nil
}

// matchingBatches keeps the batches holding at least one filtered file
func matchingBatches(batches []domain.Batch, filter domain.PathFilter) []domain.Batch {
	if filter.Pattern == "" {
		return batches
	}
	var kept []domain.Batch
	for _, b := range batches {
		for _, f := range b.Files {
			if filter.Match(f.Path) {
				kept = append(kept, b)
				break
			}
		}
	}
	return kept
}
