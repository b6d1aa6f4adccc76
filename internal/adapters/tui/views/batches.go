package views

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"relapse/internal/adapters/render"
	"relapse/internal/adapters/tui/styles"
	"relapse/internal/domain"
)

// OpenBatchMsg asks the app to show the files of a batch
type OpenBatchMsg struct {
	Batch domain.Batch
}

// CopyBatchMsg asks the app to copy a batch's paths to the clipboard
type CopyBatchMsg struct {
	Batch domain.Batch
}

// BatchListModel lists every batch of a scan, most recent first
type BatchListModel struct {
	ViewState
	root    string
	batches []domain.Batch
	cursor  int
	now     func() time.Time
}

// NewBatchListModel creates a new batch list view
func NewBatchListModel(root string, batches []domain.Batch) *BatchListModel {
	return &BatchListModel{root: root, batches: batches, now: time.Now}
}

// Init initializes the view
func (m *BatchListModel) Init() tea.Cmd {
	return nil
}

// Selected returns the batch under the cursor
func (m *BatchListModel) Selected() (domain.Batch, bool) {
	if m.cursor >= 0 && m.cursor < len(m.batches) {
		return m.batches[m.cursor], true
	}
	return domain.Batch{}, false
}

// Update handles messages for the batch list
func (m *BatchListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.ClearMessage()

	switch {
	case key.Matches(keyMsg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, Keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, Keys.Down):
		if m.cursor < len(m.batches)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, Keys.Enter):
		if b, ok := m.Selected(); ok {
			return m, func() tea.Msg { return OpenBatchMsg{Batch: b} }
		}

	case key.Matches(keyMsg, Keys.Copy):
		if b, ok := m.Selected(); ok {
			return m, func() tea.Msg { return CopyBatchMsg{Batch: b} }
		}
	}

	return m, nil
}

// View renders the batch list
func (m *BatchListModel) View() string {
	v := NewViewBuilder().Title("relapse", fmt.Sprintf("%d batches under %s", len(m.batches), m.root))

	if len(m.batches) == 0 {
		v.Line(styles.MutedText.Render(render.NoData))
	}

	now := m.now()
	start, end := visibleRange(m.cursor, len(m.batches), m.Height-8)
	for i := start; i < end; i++ {
		b := m.batches[i]
		if i == m.cursor {
			line := fmt.Sprintf("#%-3d %s  %d files", b.Index, render.Window(b, now), len(b.Files))
			v.Line(styles.BatchSelected.Render(line))
			continue
		}
		v.Line(render.BatchLine(b, now))
	}

	return v.Message(m.Message, m.MessageErr).
		Help(Keys.Up, Keys.Down, Keys.Enter, Keys.Copy, Keys.Quit).
		String()
}
