package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/inkwell-md/inkwell/pkg/files"
	"github.com/inkwell-md/inkwell/pkg/models"
	"github.com/inkwell-md/inkwell/pkg/workspace"
)

// StatusMsg sets the status line text. Any command can emit one.
type StatusMsg string

// App is the top-level bubbletea model. It owns the window size and routes
// everything else to the editor view.
type App struct {
	editor *EditorModel
	width  int
	height int
}

// NewApp assembles the editor from its collaborators.
func NewApp(
	store *workspace.Store,
	syncer *workspace.Synchronizer,
	autosave *workspace.Scheduler,
	recents *workspace.RecentFiles,
	watcher *files.Watcher,
	settings *models.Settings,
	workDir string,
	logger zerolog.Logger,
) *App {
	return &App{
		editor: NewEditor(store, syncer, autosave, recents, watcher, settings, workDir, logger),
	}
}

func (a *App) Init() tea.Cmd {
	return a.editor.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = size.Width
		a.height = size.Height
	}

	model, cmd := a.editor.Update(msg)
	if editor, ok := model.(*EditorModel); ok {
		a.editor = editor
	}
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}
	return a.editor.View()
}
