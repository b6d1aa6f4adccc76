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

// BackMsg returns to the batch list
type BackMsg struct{}

// FileListModel shows the files of one batch
type FileListModel struct {
	ViewState
	batch  domain.Batch
	cursor int
	now    func() time.Time
}

// NewFileListModel creates a new file list view
func NewFileListModel() *FileListModel {
	return &FileListModel{now: time.Now}
}

// SetBatch replaces the batch being shown
func (m *FileListModel) SetBatch(b domain.Batch) {
	m.batch = b
	m.cursor = 0
	m.ClearMessage()
}

// Init initializes the view
func (m *FileListModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the file list
func (m *FileListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.ClearMessage()

	switch {
	case key.Matches(keyMsg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, Keys.Back):
		return m, func() tea.Msg { return BackMsg{} }

	case key.Matches(keyMsg, Keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, Keys.Down):
		if m.cursor < len(m.batch.Files)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, Keys.Copy):
		b := m.batch
		return m, func() tea.Msg { return CopyBatchMsg{Batch: b} }
	}

	return m, nil
}

// View renders the file list
func (m *FileListModel) View() string {
	now := m.now()
	v := NewViewBuilder().Title(
		fmt.Sprintf("Batch #%d", m.batch.Index),
		render.Window(m.batch, now),
	)

	start, end := visibleRange(m.cursor, len(m.batch.Files), m.Height-8)
	for i := start; i < end; i++ {
		f := m.batch.Files[i]
		line := fmt.Sprintf("%s  %s", f.ModifiedAt.In(now.Location()).Format(time.TimeOnly), f.Path)
		if i == m.cursor {
			v.Line(styles.BatchSelected.Render(line))
			continue
		}
		v.Line(styles.FilePath.Render(line))
	}

	return v.Message(m.Message, m.MessageErr).
		Help(Keys.Up, Keys.Down, Keys.Back, Keys.Copy, Keys.Quit).
		String()
}
