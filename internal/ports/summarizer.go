package ports

import "context"

// Summarizer turns a set of files into a single prompt-ready text by
// invoking an external context-extraction tool
type Summarizer interface {
	Summarize(ctx context.Context, root string, files []string) (string, error)

	// IsAvailable returns true if the underlying tool can be found
	IsAvailable() bool
}
