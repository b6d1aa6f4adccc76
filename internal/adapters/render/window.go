package render

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"relapse/internal/adapters/tui/styles"
	"relapse/internal/domain"
)

// HumanTime formats t for display, dropping the year when it matches now
func HumanTime(t, now time.Time) string {
	t = t.In(now.Location())
	if t.Year() != now.Year() {
		return t.Format("Jan 02 2006 15:04")
	}
	return t.Format("Jan 02 15:04")
}

// Ago describes t relative to now, e.g. "3 hours ago"
func Ago(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

// Duration renders a batch length; zero-length batches are "instant"
func Duration(d time.Duration) string {
	if d < time.Second {
		return "instant"
	}
	return d.Round(time.Second).String()
}

// Window renders the time range of a batch, e.g.
// "Jan 20 10:00–10:05 (5m0s; 3 hours ago to 3 hours ago)"
func Window(b domain.Batch, now time.Time) string {
	start := b.Start.In(now.Location())
	end := b.End.In(now.Location())

	startLabel := HumanTime(start, now)
	endLabel := end.Format("15:04")
	if start.YearDay() != end.YearDay() || start.Year() != end.Year() {
		endLabel = HumanTime(end, now)
	}

	return fmt.Sprintf("%s–%s (%s; %s to %s)",
		startLabel, endLabel, Duration(b.Duration()), Ago(b.Start, now), Ago(b.End, now))
}

// Header is the --pretty line printed above a batch's files
func Header(b domain.Batch, now time.Time) string {
	return fmt.Sprintf("%s %s %s",
		styles.BatchIndex.Render(fmt.Sprintf("Batch #%d:", b.Index)),
		styles.BatchWindow.Render(Window(b, now)),
		styles.MutedText.Render(fmt.Sprintf("(%s)", fileCount(len(b.Files)))),
	)
}

// BatchLine is one row of the batch listing
func BatchLine(b domain.Batch, now time.Time) string {
	return fmt.Sprintf("%s  %s  %s",
		styles.BatchIndex.Render(fmt.Sprintf("#%-3d", b.Index)),
		styles.BatchWindow.Render(Window(b, now)),
		styles.MutedText.Render(fileCount(len(b.Files))),
	)
}

func fileCount(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}
