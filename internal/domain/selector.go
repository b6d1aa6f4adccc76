package domain

import (
	"fmt"
	"time"
)

// SelectByIndex returns the batch at position index (0 = most recent).
func SelectByIndex(batches []Batch, index int) (Batch, error) {
	if index < 0 || index >= len(batches) {
		return Batch{}, &NotFoundError{
			Request: fmt.Sprintf("batch %d", index),
			Detail:  indexRange(len(batches)),
		}
	}
	return batches[index], nil
}

// SelectByMoment returns the batch whose span contains moment. When no batch
// contains it, the nearest batch that ended before moment is returned.
// Moments older than every batch do not resolve.
func SelectByMoment(batches []Batch, moment time.Time) (Batch, error) {
	request := fmt.Sprintf("datetime %s", moment.Format(time.RFC3339))
	if len(batches) == 0 {
		return Batch{}, &NotFoundError{Request: request, Detail: "no batches"}
	}

	// Batches are ordered newest first, so the first one that contains or
	// precedes moment is the closest.
	for _, b := range batches {
		if b.Contains(moment) || b.End.Before(moment) {
			return b, nil
		}
	}

	start, end := Span(batches)
	return Batch{}, &NotFoundError{
		Request: request,
		Detail: fmt.Sprintf("available span %s .. %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339)),
	}
}

func indexRange(n int) string {
	switch n {
	case 0:
		return "no batches"
	case 1:
		return "valid index: 0"
	default:
		return fmt.Sprintf("valid indices: 0..%d", n-1)
	}
}
