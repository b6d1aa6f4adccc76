package render

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relapse/internal/application"
	"relapse/internal/domain"
)

var t0 = time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)

func scenario() []domain.Batch {
	return domain.BuildBatches([]domain.FileRecord{
		{Path: "src/a.go", Absolute: "/work/src/a.go", ModifiedAt: t0},
		{Path: "src/b.go", Absolute: "/work/src/b.go", ModifiedAt: t0.Add(30 * time.Second)},
		{Path: "docs/c.md", Absolute: "/work/docs/c.md", ModifiedAt: t0.Add(5 * time.Minute)},
	}, domain.DefaultGap)
}

func TestFormatPaths(t *testing.T) {
	sel := &application.Selection{Root: "/work", Batch: scenario()[1], Total: 2}

	tests := []struct {
		format PathFormat
		want   []string
	}{
		{FormatRelative, []string{filepath.FromSlash("src/b.go"), filepath.FromSlash("src/a.go")}},
		{FormatAbsolute, []string{"/work/src/b.go", "/work/src/a.go"}},
		{FormatName, []string{"b.go", "a.go"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, FormatPaths(&buf, sel, tt.format))
			assert.Equal(t, strings.Join(tt.want, "\n")+"\n", buf.String())
		})
	}
}

func TestFormatPath_AbsoluteFallsBackToRoot(t *testing.T) {
	rec := domain.FileRecord{Path: "x/y.go"}
	assert.Equal(t, filepath.Join("/work", "x", "y.go"), FormatPath("/work", rec, FormatAbsolute))
}

func TestParsePathFormat(t *testing.T) {
	f, err := ParsePathFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatRelative, f)

	f, err = ParsePathFormat("ABSOLUTE")
	require.NoError(t, err)
	assert.Equal(t, FormatAbsolute, f)

	_, err = ParsePathFormat("json")
	var verr *application.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestWindow(t *testing.T) {
	now := t0.Add(3 * time.Hour)
	b := scenario()[1]

	got := Window(b, now)
	assert.Equal(t, "Jan 20 10:00–10:00 (30s; 3 hours ago to 2 hours ago)", got)

	single := scenario()[0]
	assert.Contains(t, Window(single, now), "instant")

	lastYear := now.AddDate(1, 0, 0)
	assert.Contains(t, Window(b, lastYear), "Jan 20 2025 10:00")
}

func TestHistogram(t *testing.T) {
	var records []domain.FileRecord
	for _, b := range scenario() {
		records = append(records, b.Files...)
	}
	tl := domain.BuildTimeline(records, 5)

	var buf bytes.Buffer
	require.NoError(t, Histogram(&buf, tl, HistogramOptions{Width: 10, Batches: scenario(), Location: time.UTC}))
	out := buf.String()

	assert.Contains(t, out, "File mtime timeline (3 files)")
	assert.Contains(t, out, "2025-01-20 10:00 │██████████ 2 ◀ #1")
	assert.Contains(t, out, "2025-01-20 10:04 │█████ 1 ◀ #0")
	assert.Contains(t, out, "2025-01-20 10:01 │ 0")
}

func TestHistogram_NoData(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Histogram(&buf, domain.Timeline{}, HistogramOptions{}))
	assert.Equal(t, NoData, strings.TrimSpace(buf.String()))
}

func TestSparkline(t *testing.T) {
	tl := domain.BuildTimeline([]domain.FileRecord{
		{Path: "a", ModifiedAt: t0},
		{Path: "b", ModifiedAt: t0},
		{Path: "c", ModifiedAt: t0.Add(10 * time.Minute)},
	}, 10)

	var buf bytes.Buffer
	require.NoError(t, Sparkline(&buf, tl, time.UTC))
	assert.Equal(t, "2025-01-20T10:00:00 |@        =| 2025-01-20T10:10:00\n", buf.String())

	buf.Reset()
	require.NoError(t, Sparkline(&buf, domain.Timeline{}, time.UTC))
	assert.Equal(t, NoData+"\n", buf.String())
}

func TestScale(t *testing.T) {
	assert.Equal(t, 0, scale(0, 10, 50))
	assert.Equal(t, 1, scale(1, 1000, 50))
	assert.Equal(t, 50, scale(10, 10, 50))
	assert.Equal(t, 25, scale(5, 10, 50))
}
