package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"relapse/internal/adapters/tui/views"
	"relapse/internal/domain"
	"relapse/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBatches ViewState = iota
	ViewFiles
)

// App is the main TUI application model
type App struct {
	clipboard ports.Clipboard

	state ViewState
	list  *views.BatchListModel
	files *views.FileListModel
}

// NewApp creates a new TUI application over an already computed scan
func NewApp(root string, batches []domain.Batch, clipboard ports.Clipboard) *App {
	return &App{
		clipboard: clipboard,
		state:     ViewBatches,
		list:      views.NewBatchListModel(root, batches),
		files:     views.NewFileListModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.list.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.list.SetSize(msg.Width, msg.Height)
		a.files.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.OpenBatchMsg:
		a.files.SetBatch(msg.Batch)
		a.state = ViewFiles
		return a, nil

	case views.BackMsg:
		a.state = ViewBatches
		return a, nil

	case views.CopyBatchMsg:
		a.copyBatch(msg.Batch)
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewFiles:
		_, cmd = a.files.Update(msg)
	default:
		_, cmd = a.list.Update(msg)
	}
	return a, cmd
}

func (a *App) copyBatch(b domain.Batch) {
	target := &a.list.ViewState
	if a.state == ViewFiles {
		target = &a.files.ViewState
	}

	if a.clipboard == nil {
		target.SetMessage("clipboard unavailable", true)
		return
	}
	if err := a.clipboard.WriteAll(strings.Join(b.Paths(), "\n")); err != nil {
		target.SetMessage(err.Error(), true)
		return
	}
	target.SetMessage(fmt.Sprintf("Copied %d paths from batch #%d", len(b.Files), b.Index), false)
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// View renders the current view
func (a *App) View() string {
	if a.state == ViewFiles {
		return a.files.View()
	}
	return a.list.View()
}
