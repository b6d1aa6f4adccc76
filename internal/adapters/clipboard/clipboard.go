package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// System implements ports.Clipboard using the OS clipboard
type System struct{}

// NewSystem creates a new system clipboard writer
func NewSystem() *System {
	return &System{}
}

// WriteAll replaces the clipboard contents with text
func (s *System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}
