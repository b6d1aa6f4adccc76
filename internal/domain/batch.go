package domain

import (
	"sort"
	"time"
)

// DefaultGap is the idle time that separates two work sessions.
const DefaultGap = 120 * time.Second

// Batch is a time-contiguous cluster of file modifications.
// Files are ordered most recent first.
type Batch struct {
	Index int
	Start time.Time // Oldest modification in the batch
	End   time.Time // Newest modification in the batch
	Files []FileRecord
}

// Duration returns the span between the first and last modification
func (b Batch) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// Contains reports whether t falls inside [Start, End]
func (b Batch) Contains(t time.Time) bool {
	return !t.Before(b.Start) && !t.After(b.End)
}

// Paths returns the relative paths of the batch in batch order
func (b Batch) Paths() []string {
	paths := make([]string, len(b.Files))
	for i, f := range b.Files {
		paths[i] = f.Path
	}
	return paths
}

// SortRecords orders records most recent first. Records with identical
// timestamps are ordered by relative path so the result never depends on
// the order the scanner produced them in.
func SortRecords(records []FileRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.ModifiedAt.Equal(b.ModifiedAt) {
			return a.ModifiedAt.After(b.ModifiedAt)
		}
		return a.Path < b.Path
	})
}

// BuildBatches partitions records into sessions. A new batch starts
// whenever the distance to the previous (more recent) record is at least
// gap. Batch 0 is the most recent session. The input slice is not modified.
func BuildBatches(records []FileRecord, gap time.Duration) []Batch {
	if len(records) == 0 {
		return nil
	}

	sorted := make([]FileRecord, len(records))
	copy(sorted, records)
	SortRecords(sorted)

	var batches []Batch
	for i, rec := range sorted {
		if i == 0 || sorted[i-1].ModifiedAt.Sub(rec.ModifiedAt) >= gap {
			batches = append(batches, Batch{
				Index: len(batches),
				Start: rec.ModifiedAt,
				End:   rec.ModifiedAt,
			})
		}
		current := &batches[len(batches)-1]
		current.Files = append(current.Files, rec)
		current.Start = rec.ModifiedAt
	}

	return batches
}

// Span returns the oldest start and newest end across all batches
func Span(batches []Batch) (start, end time.Time) {
	if len(batches) == 0 {
		return time.Time{}, time.Time{}
	}
	return batches[len(batches)-1].Start, batches[0].End
}
