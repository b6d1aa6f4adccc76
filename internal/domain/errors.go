package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an address does not resolve to a batch
var ErrNotFound = errors.New("not found")

// NotFoundError describes which request failed and what would have worked
type NotFoundError struct {
	Request string
	Detail  string
}

func (e *NotFoundError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: no matching batch", e.Request)
	}
	return fmt.Sprintf("%s: no matching batch (%s)", e.Request, e.Detail)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
