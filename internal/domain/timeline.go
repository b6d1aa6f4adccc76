package domain

import (
	"path"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	// DefaultBins is the number of histogram bins when none is given
	DefaultBins = 60

	// minBinWidth keeps a single-instant timeline renderable
	minBinWidth = time.Second
)

// Bin is one fixed-width slot of the timeline
type Bin struct {
	Start time.Time
	Count int
}

// Timeline is a histogram of modification times
type Timeline struct {
	Start time.Time
	End   time.Time
	Width time.Duration
	Bins  []Bin
	Total int
}

// Empty reports whether no records fell into the timeline
func (t Timeline) Empty() bool {
	return t.Total == 0
}

// MaxCount returns the largest bin count
func (t Timeline) MaxCount() int {
	max := 0
	for _, b := range t.Bins {
		if b.Count > max {
			max = b.Count
		}
	}
	return max
}

// BinIndex returns the bin holding ts, clamped to the timeline bounds
func (t Timeline) BinIndex(ts time.Time) int {
	if len(t.Bins) == 0 {
		return -1
	}
	idx := int(ts.Sub(t.Start) / t.Width)
	if idx < 0 {
		return 0
	}
	if idx >= len(t.Bins) {
		return len(t.Bins) - 1
	}
	return idx
}

// BuildTimeline buckets records into bins equal-width slots spanning the
// oldest and newest modification. A zero span collapses onto one bin.
func BuildTimeline(records []FileRecord, bins int) Timeline {
	if len(records) == 0 || bins <= 0 {
		return Timeline{}
	}

	start, end := records[0].ModifiedAt, records[0].ModifiedAt
	for _, r := range records[1:] {
		if r.ModifiedAt.Before(start) {
			start = r.ModifiedAt
		}
		if r.ModifiedAt.After(end) {
			end = r.ModifiedAt
		}
	}

	width := end.Sub(start) / time.Duration(bins)
	if width < minBinWidth {
		width = minBinWidth
		// Only as many bins as the span needs; at least one.
		needed := int(end.Sub(start)/width) + 1
		if needed < bins {
			bins = needed
		}
	}

	tl := Timeline{
		Start: start,
		End:   end,
		Width: width,
		Bins:  make([]Bin, bins),
		Total: len(records),
	}
	for i := range tl.Bins {
		tl.Bins[i].Start = start.Add(time.Duration(i) * width)
	}
	for _, r := range records {
		tl.Bins[tl.BinIndex(r.ModifiedAt)].Count++
	}
	return tl
}

// PathFilter keeps records whose path matches a pattern. Patterns with glob
// metacharacters are matched against the relative path and the base name;
// anything else is a plain substring test.
type PathFilter struct {
	Pattern string
}

// Match reports whether relPath passes the filter
func (f PathFilter) Match(relPath string) bool {
	if f.Pattern == "" {
		return true
	}
	if !strings.ContainsAny(f.Pattern, "*?[{") {
		return strings.Contains(relPath, f.Pattern)
	}
	if ok, _ := doublestar.Match(f.Pattern, relPath); ok {
		return true
	}
	ok, _ := doublestar.Match(f.Pattern, path.Base(relPath))
	return ok
}

// Apply returns the records that pass the filter
func (f PathFilter) Apply(records []FileRecord) []FileRecord {
	if f.Pattern == "" {
		return records
	}
	var kept []FileRecord
	for _, r := range records {
		if f.Match(r.Path) {
			kept = append(kept, r)
		}
	}
	return kept
}
