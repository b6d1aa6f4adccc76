package render

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"relapse/internal/adapters/tui/styles"
	"relapse/internal/domain"
)

// DefaultBarWidth is the length of the longest histogram bar
const DefaultBarWidth = 50

// NoData is printed when nothing matched
const NoData = "no data"

// ramp shades a sparkline from empty to full
const ramp = " .:-=+*#%@"

// HistogramOptions controls timeline drawing
type HistogramOptions struct {
	Width    int            // Longest bar, in cells
	Batches  []domain.Batch // Marked next to the bin holding each batch's end
	Location *time.Location // Display zone for bin labels
}

// Histogram writes one row per bin: start time, bar, count
func Histogram(w io.Writer, tl domain.Timeline, opts HistogramOptions) error {
	if tl.Empty() {
		_, err := fmt.Fprintln(w, styles.MutedText.Render(NoData))
		return err
	}

	width := opts.Width
	if width <= 0 {
		width = DefaultBarWidth
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	markers := batchMarkers(tl, opts.Batches)
	max := tl.MaxCount()
	layout := binLayout(tl.Width)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", styles.Title.Render(fmt.Sprintf("File mtime timeline (%s)", fileCount(tl.Total))))
	for i, bin := range tl.Bins {
		bar := strings.Repeat("█", scale(bin.Count, max, width))
		line := fmt.Sprintf("%s │%s %d",
			styles.BinLabel.Render(bin.Start.In(loc).Format(layout)),
			styles.Bar.Render(bar),
			bin.Count,
		)
		if m, ok := markers[i]; ok {
			line += " " + styles.Marker.Render(m)
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%s\n", styles.MutedText.Render(fmt.Sprintf("bin width %s, oldest %s -> newest %s",
		tl.Width, tl.Start.In(loc).Format(time.DateTime), tl.End.In(loc).Format(time.DateTime))))

	_, err := io.WriteString(w, sb.String())
	return err
}

// Sparkline writes a one-line density ramp between the oldest and newest
// timestamps
func Sparkline(w io.Writer, tl domain.Timeline, loc *time.Location) error {
	if tl.Empty() {
		_, err := fmt.Fprintln(w, NoData)
		return err
	}
	if loc == nil {
		loc = time.Local
	}

	max := tl.MaxCount()
	var line strings.Builder
	for _, bin := range tl.Bins {
		line.WriteByte(ramp[bin.Count*(len(ramp)-1)/max])
	}

	_, err := fmt.Fprintf(w, "%s |%s| %s\n",
		tl.Start.In(loc).Format("2006-01-02T15:04:05"),
		line.String(),
		tl.End.In(loc).Format("2006-01-02T15:04:05"))
	return err
}

// scale maps count onto [0, width], never hiding a non-empty bin
func scale(count, max, width int) int {
	if count == 0 || max == 0 {
		return 0
	}
	n := count * width / max
	if n == 0 {
		n = 1
	}
	return n
}

// batchMarkers labels the bin containing each batch's newest file
func batchMarkers(tl domain.Timeline, batches []domain.Batch) map[int]string {
	byBin := map[int][]int{}
	for _, b := range batches {
		i := tl.BinIndex(b.End)
		byBin[i] = append(byBin[i], b.Index)
	}

	markers := make(map[int]string, len(byBin))
	for bin, indices := range byBin {
		sort.Ints(indices)
		labels := make([]string, len(indices))
		for i, idx := range indices {
			labels[i] = fmt.Sprintf("#%d", idx)
		}
		markers[bin] = "◀ " + strings.Join(labels, " ")
	}
	return markers
}

// binLayout picks a label precision that distinguishes adjacent bins
func binLayout(width time.Duration) string {
	switch {
	case width >= 24*time.Hour:
		return time.DateOnly
	case width >= time.Minute:
		return "2006-01-02 15:04"
	default:
		return time.DateTime
	}
}
