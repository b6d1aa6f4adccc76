package domain

import (
	"fmt"
	"math/rand"
	"testing"
	"time"
)

var base = time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)

func rec(path string, offset time.Duration) FileRecord {
	return FileRecord{Path: path, Absolute: "/root/" + path, ModifiedAt: base.Add(offset)}
}

func TestBuildBatches_Scenario(t *testing.T) {
	records := []FileRecord{
		rec("a.go", 0),
		rec("b.go", 30*time.Second),
		rec("c.go", 5*time.Minute),
	}

	batches := BuildBatches(records, 120*time.Second)

	if len(batches) != 2 {
		t.Fatalf("expected 2 batches, got %d", len(batches))
	}
	if got := batches[0].Paths(); len(got) != 1 || got[0] != "c.go" {
		t.Errorf("batch 0 = %v, want [c.go]", got)
	}
	if got := batches[1].Paths(); len(got) != 2 || got[0] != "b.go" || got[1] != "a.go" {
		t.Errorf("batch 1 = %v, want [b.go a.go]", got)
	}
	if !batches[1].Start.Equal(base) || !batches[1].End.Equal(base.Add(30*time.Second)) {
		t.Errorf("batch 1 span = %v..%v", batches[1].Start, batches[1].End)
	}
	for i, b := range batches {
		if b.Index != i {
			t.Errorf("batch %d has index %d", i, b.Index)
		}
	}
}

func TestBuildBatches_EdgeCases(t *testing.T) {
	tests := []struct {
		name      string
		records   []FileRecord
		gap       time.Duration
		wantSizes []int
	}{
		{
			name:      "empty input",
			records:   nil,
			gap:       DefaultGap,
			wantSizes: nil,
		},
		{
			name:      "single file",
			records:   []FileRecord{rec("only.txt", 0)},
			gap:       DefaultGap,
			wantSizes: []int{1},
		},
		{
			name: "all within threshold",
			records: []FileRecord{
				rec("a", 0), rec("b", 100*time.Second), rec("c", 200*time.Second), rec("d", 300*time.Second),
			},
			gap:       DefaultGap,
			wantSizes: []int{4},
		},
		{
			name:      "gap exactly at threshold splits",
			records:   []FileRecord{rec("a", 0), rec("b", 120*time.Second)},
			gap:       DefaultGap,
			wantSizes: []int{1, 1},
		},
		{
			name:      "gap just under threshold joins",
			records:   []FileRecord{rec("a", 0), rec("b", 119*time.Second)},
			gap:       DefaultGap,
			wantSizes: []int{2},
		},
		{
			name:      "non-positive gap isolates every record",
			records:   []FileRecord{rec("a", 0), rec("b", 0), rec("c", time.Second)},
			gap:       0,
			wantSizes: []int{1, 1, 1},
		},
		{
			name:      "future timestamps accepted",
			records:   []FileRecord{rec("future", 24 * 365 * time.Hour), rec("now", 0)},
			gap:       DefaultGap,
			wantSizes: []int{1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batches := BuildBatches(tt.records, tt.gap)
			if len(batches) != len(tt.wantSizes) {
				t.Fatalf("got %d batches, want %d", len(batches), len(tt.wantSizes))
			}
			for i, b := range batches {
				if len(b.Files) != tt.wantSizes[i] {
					t.Errorf("batch %d has %d files, want %d", i, len(b.Files), tt.wantSizes[i])
				}
			}
		})
	}
}

func TestBuildBatches_SingleFileSpan(t *testing.T) {
	batches := BuildBatches([]FileRecord{rec("x", 0)}, DefaultGap)
	if !batches[0].Start.Equal(batches[0].End) {
		t.Errorf("expected start == end, got %v and %v", batches[0].Start, batches[0].End)
	}
	if batches[0].Duration() != 0 {
		t.Errorf("expected zero duration, got %v", batches[0].Duration())
	}
}

func TestBuildBatches_TiesOrderedByPath(t *testing.T) {
	forward := []FileRecord{rec("b.go", 0), rec("a.go", 0), rec("c.go", 0)}
	reverse := []FileRecord{rec("c.go", 0), rec("a.go", 0), rec("b.go", 0)}

	first := BuildBatches(forward, DefaultGap)
	second := BuildBatches(reverse, DefaultGap)

	want := []string{"a.go", "b.go", "c.go"}
	for _, batches := range [][]Batch{first, second} {
		got := batches[0].Paths()
		if fmt.Sprint(got) != fmt.Sprint(want) {
			t.Errorf("tie order = %v, want %v", got, want)
		}
	}
}

func TestBuildBatches_DoesNotMutateInput(t *testing.T) {
	records := []FileRecord{rec("a", 0), rec("b", time.Minute)}
	BuildBatches(records, DefaultGap)
	if records[0].Path != "a" || records[1].Path != "b" {
		t.Errorf("input was reordered: %v", records)
	}
}

// randomRecords builds a reproducible, clustered set of records
func randomRecords(seed int64, n int) []FileRecord {
	r := rand.New(rand.NewSource(seed))
	records := make([]FileRecord, n)
	offset := time.Duration(0)
	for i := range records {
		switch r.Intn(4) {
		case 0:
			offset += time.Duration(r.Intn(3600)) * time.Second
		case 1:
			// identical timestamp
		default:
			offset += time.Duration(r.Intn(90)) * time.Second
		}
		records[i] = rec(fmt.Sprintf("f%03d", r.Intn(1000)), offset)
	}
	r.Shuffle(len(records), func(i, j int) { records[i], records[j] = records[j], records[i] })
	return records
}

func TestBuildBatches_Properties(t *testing.T) {
	gap := DefaultGap
	for seed := int64(1); seed <= 25; seed++ {
		records := randomRecords(seed, 200)
		batches := BuildBatches(records, gap)
		again := BuildBatches(records, gap)

		total := 0
		for i, b := range batches {
			if len(b.Files) == 0 {
				t.Fatalf("seed %d: batch %d is empty", seed, i)
			}
			total += len(b.Files)

			if fmt.Sprint(b.Paths()) != fmt.Sprint(again[i].Paths()) || !b.Start.Equal(again[i].Start) {
				t.Errorf("seed %d: batch %d differs between runs", seed, i)
			}

			for j := 1; j < len(b.Files); j++ {
				if d := b.Files[j-1].ModifiedAt.Sub(b.Files[j].ModifiedAt); d >= gap || d < 0 {
					t.Errorf("seed %d: batch %d has internal gap %v", seed, i, d)
				}
			}
			if !b.Start.Equal(b.Files[len(b.Files)-1].ModifiedAt) || !b.End.Equal(b.Files[0].ModifiedAt) {
				t.Errorf("seed %d: batch %d span does not match its files", seed, i)
			}

			if i+1 < len(batches) {
				if d := b.Start.Sub(batches[i+1].End); d < gap {
					t.Errorf("seed %d: batches %d/%d separated by %v", seed, i, i+1, d)
				}
			}
		}

		if total != len(records) {
			t.Errorf("seed %d: batches hold %d files, input had %d", seed, total, len(records))
		}
	}
}
