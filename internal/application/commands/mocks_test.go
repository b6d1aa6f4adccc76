package commands

import (
	"context"
	"time"

	"relapse/internal/domain"
)

var t0 = time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)

type fakeScanner struct {
	records []domain.FileRecord
	err     error
	gotRoot string
}

func (f *fakeScanner) Scan(_ context.Context, root string) ([]domain.FileRecord, error) {
	f.gotRoot = root
	return f.records, f.err
}

// scenarioScanner returns the 10:00:00 / 10:00:30 / 10:05:00 layout
func scenarioScanner() *fakeScanner {
	return &fakeScanner{records: []domain.FileRecord{
		{Path: "src/a.go", Absolute: "/work/src/a.go", ModifiedAt: t0},
		{Path: "src/b.go", Absolute: "/work/src/b.go", ModifiedAt: t0.Add(30 * time.Second)},
		{Path: "docs/c.md", Absolute: "/work/docs/c.md", ModifiedAt: t0.Add(5 * time.Minute)},
	}}
}

type fakeArchiver struct {
	root  string
	files []string
	out   string
	err   error
}

func (f *fakeArchiver) Archive(_ context.Context, root string, files []string) (string, error) {
	f.root, f.files = root, files
	return f.out, f.err
}

type fakeSummarizer struct {
	files []string
	text  string
	err   error
}

func (f *fakeSummarizer) Summarize(_ context.Context, _ string, files []string) (string, error) {
	f.files = files
	return f.text, f.err
}

func (f *fakeSummarizer) IsAvailable() bool { return f.err == nil }

type fakeCopier struct {
	files []string
	dest  string
}

func (f *fakeCopier) Copy(_ context.Context, _ string, files []string, dest string) (int, error) {
	f.files, f.dest = files, dest
	return len(files), nil
}
