package application

import (
	"time"

	"relapse/internal/domain"
)

// Re-export domain types for use by adapters
type (
	FileRecord = domain.FileRecord
	Batch      = domain.Batch
	Timeline   = domain.Timeline
	Bin        = domain.Bin
	Kind       = domain.Kind
)

// Selection is a resolved batch together with the context it came from
type Selection struct {
	Root  string
	Batch domain.Batch
	Total int // Number of batches in the scan
}

// Addressing modes for picking a batch
type Mode int

const (
	ModeLatest Mode = iota
	ModeIndex
	ModeMoment
)

// Address identifies one batch by position or by wall-clock time
type Address struct {
	Mode   Mode
	Index  int
	Moment time.Time
}

// Latest addresses the most recent batch
func Latest() Address {
	return Address{Mode: ModeLatest}
}

// AtIndex addresses batch i (0 = most recent)
func AtIndex(i int) Address {
	return Address{Mode: ModeIndex, Index: i}
}

// AtMoment addresses the batch active at moment
func AtMoment(moment time.Time) Address {
	return Address{Mode: ModeMoment, Moment: moment}
}
