package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/inkwell-md/inkwell/pkg/files"
	"github.com/inkwell-md/inkwell/pkg/models"
	"github.com/inkwell-md/inkwell/pkg/search"
	"github.com/inkwell-md/inkwell/pkg/workspace"
)

const (
	sidebarWidth = 32
	// tab bar plus status line
	chromeRows = 2
)

type promptMode int

const (
	promptNone promptMode = iota
	promptOpen
	promptSaveAs
	promptFind
	promptNewFile
	promptRename
)

type (
	autosaveTickMsg struct{}
	syncTickMsg     struct{}
	docEventMsg     files.DocumentEvent
)

// EditorModel is the main editing view: tab bar, optional sidebar and
// preview panes, the text surface, and the status line. All workspace
// mutations happen here, on the update loop.
type EditorModel struct {
	store    *workspace.Store
	sync     *workspace.Synchronizer
	autosave *workspace.Scheduler
	recents  *workspace.RecentFiles
	watcher  *files.Watcher
	settings *models.Settings
	logger   zerolog.Logger

	theme  Theme
	layout LayoutEngine
	width  int
	height int

	textarea textarea.Model

	sidebar      *SidebarModel
	sidebarFocus bool
	showSidebar  bool
	showPreview  bool

	prompt       textinput.Model
	promptMode   promptMode
	renameSource string
	confirm      *ConfirmationModel

	undo []undoState
	redo []undoState

	searchQuery   string
	searchResults []search.Result
	resultCursor  int
	showResults   bool

	status    string
	statusErr bool
}

// NewEditor wires the editor to its collaborators. The watcher may be nil,
// in which case external file changes are not tracked.
func NewEditor(
	store *workspace.Store,
	syncer *workspace.Synchronizer,
	autosave *workspace.Scheduler,
	recents *workspace.RecentFiles,
	watcher *files.Watcher,
	settings *models.Settings,
	workDir string,
	logger zerolog.Logger,
) *EditorModel {
	m := &EditorModel{
		store:       store,
		sync:        syncer,
		autosave:    autosave,
		recents:     recents,
		watcher:     watcher,
		settings:    settings,
		logger:      logger.With().Str("component", "editor").Logger(),
		theme:       ThemeByName(settings.UI.Theme),
		sidebar:     NewSidebar(workDir),
		showSidebar: settings.UI.ShowSidebar,
		showPreview: settings.UI.ShowPreview,
		confirm:     NewConfirmation(),
		textarea:    newSurface(),
		prompt:      textinput.New(),
	}
	m.prompt.CharLimit = 0
	m.attachActive()
	return m
}

func (m *EditorModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.autosaveTickCmd(), m.watchCmd())
}

// SetSize records the window size and recomputes the layout.
func (m *EditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.recalcLayout()
}

func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case StatusMsg:
		m.setStatus(string(msg))
		return m, nil

	case CommandMsg:
		return m, m.dispatch(msg)

	case autosaveTickMsg:
		if m.autosave.Stopped() {
			return m, nil
		}
		if err := m.autosave.Tick(); err != nil {
			m.setError("autosave failed: " + err.Error())
		}
		return m, m.autosaveTickCmd()

	case syncTickMsg:
		if m.sync.Due(time.Now()) {
			m.sync.Flush()
			return m, nil
		}
		return m, m.scheduleFlush()

	case docEventMsg:
		m.handleDocEvent(files.DocumentEvent(msg))
		return m, m.watchCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.updateSurface(msg)
}

func (m *EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm.Active() {
		return m, m.confirm.Update(msg)
	}

	if m.promptMode != promptNone {
		return m, m.handlePromptKey(msg)
	}

	if m.showResults {
		return m, m.handleResultsKey(msg)
	}

	if msg.String() == "ctrl+c" {
		return m, m.requestQuit()
	}

	if m.sidebarFocus {
		return m, m.handleSidebarKey(msg)
	}

	if binding, ok := keyBindings[msg.String()]; ok {
		return m, m.dispatch(binding)
	}

	switch msg.String() {
	case "alt+right":
		m.cycleDocument(1)
		return m, nil
	case "alt+left":
		m.cycleDocument(-1)
		return m, nil
	}

	return m, m.updateSurface(msg)
}

// updateSurface forwards a message to the textarea and records the edit
// with the synchronizer when the content changed.
func (m *EditorModel) updateSurface(msg tea.Msg) tea.Cmd {
	if m.store.ActiveDocument() == nil {
		return nil
	}

	before := m.textarea.Value()
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)

	after := m.textarea.Value()
	if after != before {
		m.sync.NoteEdit(after)
		return tea.Batch(cmd, m.scheduleFlush())
	}
	return cmd
}

// dispatch executes one command from the shared vocabulary. Unknown
// commands are dropped; document commands without an active document
// report and do nothing.
func (m *EditorModel) dispatch(msg CommandMsg) tea.Cmd {
	if !knownCommands[msg.Command] {
		m.logger.Debug().Str("command", string(msg.Command)).Msg("unknown command dropped")
		return nil
	}
	if documentCommands[msg.Command] && m.store.ActiveDocument() == nil {
		m.setStatus("no open document")
		return nil
	}

	switch msg.Command {
	case CmdBold, CmdItalic, CmdStrike, CmdInlineCode,
		CmdParagraph, CmdHeading, CmdBulletList, CmdOrderedList,
		CmdBlockquote, CmdCodeBlock, CmdHorizontalRule:
		return m.applyFormat(msg)

	case CmdUndo:
		return m.undoEdit()
	case CmdRedo:
		return m.redoEdit()

	case CmdCopy:
		return m.copyLine(false)
	case CmdCut:
		return m.copyLine(true)
	case CmdPaste:
		return m.pasteClipboard()

	case CmdNewFile:
		m.sync.Flush()
		m.store.NewDocument()
		m.attachActive()
		return nil

	case CmdOpenFile:
		m.openPrompt(promptOpen)
		return nil

	case CmdSaveFile:
		m.saveActive()
		return nil

	case CmdSaveAs:
		m.openPrompt(promptSaveAs)
		return nil

	case CmdCloseDocument:
		return m.requestClose()

	case CmdToggleSidebar:
		m.toggleSidebar()
		return nil

	case CmdTogglePreview:
		m.showPreview = !m.showPreview
		m.settings.UI.ShowPreview = m.showPreview
		m.persistSettings()
		m.recalcLayout()
		return nil

	case CmdToggleTheme:
		if m.theme.Name == "dark" {
			m.theme = LightTheme()
		} else {
			m.theme = DarkTheme()
		}
		m.settings.UI.Theme = m.theme.Name
		m.persistSettings()
		return nil

	case CmdFindInFiles:
		m.openPrompt(promptFind)
		return nil
	}

	return nil
}

// applyFormat runs a pure text transform against the surface content and
// commits the result as an edit.
func (m *EditorModel) applyFormat(msg CommandMsg) tea.Cmd {
	value := m.textarea.Value()
	line := m.textarea.Line()
	col := m.textarea.LineInfo().ColumnOffset

	inline := func(marker string) string {
		return replaceLine(value, line, func(l string) string {
			return WrapInlineMarker(l, col, marker)
		})
	}

	var next string
	switch msg.Command {
	case CmdBold:
		next = inline("**")
	case CmdItalic:
		next = inline("*")
	case CmdStrike:
		next = inline("~~")
	case CmdInlineCode:
		next = inline("`")
	case CmdParagraph:
		next = replaceLine(value, line, func(l string) string { return SetHeadingLevel(l, 0) })
	case CmdHeading:
		next = replaceLine(value, line, func(l string) string { return SetHeadingLevel(l, msg.Level) })
	case CmdBulletList:
		next = replaceLine(value, line, ToggleBulletList)
	case CmdOrderedList:
		next = replaceLine(value, line, ToggleOrderedList)
	case CmdBlockquote:
		next = replaceLine(value, line, ToggleBlockquote)
	case CmdCodeBlock:
		next = strings.Join(WrapCodeFence(strings.Split(value, "\n"), line), "\n")
	case CmdHorizontalRule:
		next = strings.Join(InsertHorizontalRule(strings.Split(value, "\n"), line), "\n")
	}

	if next == value {
		return nil
	}
	m.snapshotUndo()
	return m.applyEdit(next)
}

// applyEdit replaces the surface content programmatically. The change goes
// through the same edit notification as keystrokes so it reaches the store
// on the usual debounce.
func (m *EditorModel) applyEdit(content string) tea.Cmd {
	m.textarea.SetValue(content)
	m.sync.NoteEdit(content)
	return m.scheduleFlush()
}

func (m *EditorModel) snapshotUndo() {
	m.undo = pushUndo(m.undo, undoState{content: m.textarea.Value(), line: m.textarea.Line()})
	m.redo = nil
}

func (m *EditorModel) undoEdit() tea.Cmd {
	if len(m.undo) == 0 {
		m.setStatus("nothing to undo")
		return nil
	}
	m.redo = pushUndo(m.redo, undoState{content: m.textarea.Value(), line: m.textarea.Line()})
	last := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	return m.applyEdit(last.content)
}

func (m *EditorModel) redoEdit() tea.Cmd {
	if len(m.redo) == 0 {
		m.setStatus("nothing to redo")
		return nil
	}
	m.undo = pushUndo(m.undo, undoState{content: m.textarea.Value(), line: m.textarea.Line()})
	last := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	return m.applyEdit(last.content)
}

// copyLine puts the current line on the system clipboard. With cut it is
// also removed from the document.
func (m *EditorModel) copyLine(cut bool) tea.Cmd {
	value := m.textarea.Value()
	lines := strings.Split(value, "\n")
	idx := m.textarea.Line()
	if idx < 0 || idx >= len(lines) {
		return nil
	}

	if err := clipboard.WriteAll(lines[idx]); err != nil {
		m.setError("clipboard unavailable")
		return nil
	}

	if !cut {
		m.setStatus("line copied")
		return nil
	}

	m.snapshotUndo()
	if len(lines) == 1 {
		lines[0] = ""
	} else {
		lines = append(lines[:idx], lines[idx+1:]...)
	}
	m.setStatus("line cut")
	return m.applyEdit(strings.Join(lines, "\n"))
}

func (m *EditorModel) pasteClipboard() tea.Cmd {
	text, err := clipboard.ReadAll()
	if err != nil {
		m.setError("clipboard unavailable")
		return nil
	}
	if text == "" {
		return nil
	}
	m.snapshotUndo()
	m.textarea.InsertString(text)
	m.sync.NoteEdit(m.textarea.Value())
	return m.scheduleFlush()
}

// saveActive persists the active document. A document that has never been
// given a path falls through to the save-as prompt.
func (m *EditorModel) saveActive() {
	m.sync.Flush()
	doc := m.store.ActiveDocument()
	if doc == nil {
		return
	}

	err := m.store.SaveDocument(doc.ID)
	switch {
	case errors.Is(err, workspace.ErrNoPath):
		m.openPrompt(promptSaveAs)
	case err != nil:
		m.setError(err.Error())
	default:
		m.watchPath(doc.Path)
		m.setStatus("saved " + doc.Title())
	}
}

func (m *EditorModel) saveActiveAs(path string) {
	m.sync.Flush()
	doc := m.store.ActiveDocument()
	if doc == nil {
		return
	}

	previous := doc.Path
	if err := m.store.SaveDocumentAs(doc.ID, path); err != nil {
		m.setError(err.Error())
		return
	}
	if previous != "" && previous != doc.Path && m.watcher != nil {
		m.watcher.Remove(previous)
	}
	m.watchPath(doc.Path)
	m.setStatus("saved " + doc.Title())
}

func (m *EditorModel) loadPath(path string) {
	m.sync.Flush()
	doc, err := m.store.LoadDocument(path)
	if err != nil {
		m.setError(err.Error())
		return
	}
	m.watchPath(doc.Path)
	m.attachActive()
	m.setStatus("opened " + doc.Title())
}

func (m *EditorModel) requestClose() tea.Cmd {
	m.sync.Flush()
	doc := m.store.ActiveDocument()
	if doc == nil {
		return nil
	}
	if doc.Dirty {
		id := doc.ID
		m.confirm.Show("Close "+doc.Title()+" without saving?",
			func() tea.Cmd { m.closeDocument(id); return nil }, nil)
		return nil
	}
	m.closeDocument(doc.ID)
	return nil
}

func (m *EditorModel) closeDocument(id string) {
	if doc := m.store.Get(id); doc != nil && doc.HasPath() && m.watcher != nil {
		m.watcher.Remove(doc.Path)
	}
	m.store.CloseDocument(id)
	m.attachActive()
}

func (m *EditorModel) requestQuit() tea.Cmd {
	m.sync.Flush()

	dirty := 0
	for _, doc := range m.store.Documents() {
		if doc.Dirty {
			dirty++
		}
	}
	if dirty == 0 {
		m.autosave.Stop()
		return tea.Quit
	}

	m.confirm.Show(fmt.Sprintf("%d unsaved document(s). Quit anyway?", dirty),
		func() tea.Cmd {
			m.autosave.Stop()
			return tea.Quit
		}, nil)
	return nil
}

// attachActive binds the synchronizer to the active document through a
// fresh surface. Surfaces are never reused across documents.
func (m *EditorModel) attachActive() {
	m.sync.Flush()
	m.undo = nil
	m.redo = nil

	doc := m.store.ActiveDocument()
	if doc == nil {
		m.sync.Detach()
		m.textarea = newSurface()
		m.recalcLayout()
		return
	}

	m.textarea = newSurface()
	m.recalcLayout()
	m.sync.Attach(doc.ID, &surfaceAdapter{ta: &m.textarea})
	m.sync.PushContent(doc.Content)
	m.textarea.Focus()
}

func (m *EditorModel) cycleDocument(delta int) {
	docs := m.store.Documents()
	if len(docs) < 2 {
		return
	}
	idx := 0
	for i, doc := range docs {
		if doc.ID == m.store.ActiveID() {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(docs)) % len(docs)

	m.sync.Flush()
	if err := m.store.SetActiveDocument(docs[idx].ID); err != nil {
		return
	}
	m.attachActive()
}

// handleDocEvent reacts to a file changing outside the editor. Clean
// documents reload silently; dirty ones keep their edits and report the
// conflict instead.
func (m *EditorModel) handleDocEvent(ev files.DocumentEvent) {
	for _, doc := range m.store.Documents() {
		if doc.Path != ev.Path {
			continue
		}

		if ev.Op == files.DocumentRemoved {
			m.setError(doc.Title() + " was removed on disk")
			return
		}

		if doc.Dirty {
			m.setError(doc.Title() + " changed on disk; local edits kept")
			return
		}

		if err := m.store.ReloadDocument(doc.ID); err != nil {
			m.setError(err.Error())
			return
		}
		if doc.ID == m.store.ActiveID() {
			m.sync.PushContent(doc.Content)
		}
		m.setStatus(doc.Title() + " reloaded from disk")
		return
	}
}

func (m *EditorModel) toggleSidebar() {
	m.showSidebar = !m.showSidebar
	m.sidebarFocus = m.showSidebar
	if m.showSidebar {
		m.sidebar.Reload()
	}
	m.settings.UI.ShowSidebar = m.showSidebar
	m.persistSettings()
	m.recalcLayout()
}

func (m *EditorModel) handleSidebarKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		m.sidebar.MoveUp()
	case "down", "j":
		m.sidebar.MoveDown()
	case "esc":
		m.sidebarFocus = false
	case "enter":
		path, isDir, ok := m.sidebar.Select()
		if !ok {
			return nil
		}
		if isDir {
			m.sidebar.Descend(path)
			return nil
		}
		if !files.IsMarkdown(path) {
			m.setStatus("not a markdown file")
			return nil
		}
		m.sidebarFocus = false
		m.loadPath(path)
	case "n":
		m.openPrompt(promptNewFile)
	case "d":
		path, isDir, ok := m.sidebar.Select()
		if !ok || isDir {
			return nil
		}
		m.confirm.Show("Delete "+filepath.Base(path)+"?",
			func() tea.Cmd { m.deleteEntry(path); return nil }, nil)
	case "r":
		path, isDir, ok := m.sidebar.Select()
		if !ok || isDir {
			return nil
		}
		m.renameSource = path
		m.openPrompt(promptRename)
	default:
		if binding, ok := keyBindings[msg.String()]; ok {
			return m.dispatch(binding)
		}
	}
	return nil
}

// entryPath resolves a prompt value against the sidebar's directory.
func (m *EditorModel) entryPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(m.sidebar.Dir(), name)
}

// createFile makes a new empty markdown file and lists it in the sidebar.
// The file is not opened; enter on its row does that.
func (m *EditorModel) createFile(path string) {
	if files.Exists(path) {
		m.setError(filepath.Base(path) + " already exists")
		return
	}
	if err := files.CreateDocument(path); err != nil {
		m.setError(err.Error())
		return
	}
	m.sidebar.Reload()
	m.setStatus("created " + filepath.Base(path))
}

func (m *EditorModel) deleteEntry(path string) {
	if err := files.DeleteDocument(path); err != nil {
		m.setError(err.Error())
		return
	}
	m.sidebar.Reload()
	m.setStatus("deleted " + filepath.Base(path))
}

// renameEntry moves a file on disk and repoints any open document, and its
// watch registration, at the new path.
func (m *EditorModel) renameEntry(oldPath, newPath string) {
	if files.Exists(newPath) {
		m.setError(filepath.Base(newPath) + " already exists")
		return
	}
	if err := files.RenameDocument(oldPath, newPath); err != nil {
		m.setError(err.Error())
		return
	}
	for _, doc := range m.store.Documents() {
		if doc.Path == oldPath {
			doc.Path = newPath
			if m.watcher != nil {
				m.watcher.Remove(oldPath)
				m.watchPath(newPath)
			}
		}
	}
	m.sidebar.Reload()
	m.setStatus("renamed to " + filepath.Base(newPath))
}

// Prompt line handling. An empty submission, like escape, cancels.

func (m *EditorModel) openPrompt(mode promptMode) {
	m.promptMode = mode
	m.prompt = textinput.New()
	m.prompt.CharLimit = 0
	m.prompt.Width = m.width - 16
	m.prompt.Focus()
}

func (m *EditorModel) promptLabel() string {
	switch m.promptMode {
	case promptOpen:
		return "open"
	case promptSaveAs:
		return "save as"
	case promptFind:
		return "find"
	case promptNewFile:
		return "new file"
	case promptRename:
		return "rename to"
	}
	return ""
}

func (m *EditorModel) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.promptMode = promptNone
		m.renameSource = ""
		return nil
	case "enter":
		mode := m.promptMode
		value := strings.TrimSpace(m.prompt.Value())
		m.promptMode = promptNone
		if value == "" {
			m.renameSource = ""
			return nil
		}
		switch mode {
		case promptOpen:
			m.loadPath(value)
		case promptSaveAs:
			m.saveActiveAs(value)
		case promptFind:
			m.runSearch(value)
		case promptNewFile:
			m.createFile(m.entryPath(value))
		case promptRename:
			source := m.renameSource
			m.renameSource = ""
			m.renameEntry(source, m.entryPath(value))
		}
		return nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return cmd
}

// Cross-file search results.

func (m *EditorModel) runSearch(query string) {
	results, err := search.Search(m.sidebar.Dir(), query, search.Options{})
	if err != nil {
		m.setError(err.Error())
		return
	}
	if len(results) == 0 {
		m.setStatus("no matches for " + query)
		return
	}
	m.searchQuery = query
	m.searchResults = results
	m.resultCursor = 0
	m.showResults = true
	m.setStatus(fmt.Sprintf("%d match(es)", len(results)))
}

func (m *EditorModel) handleResultsKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q":
		m.showResults = false
	case "up", "k":
		if m.resultCursor > 0 {
			m.resultCursor--
		}
	case "down", "j":
		if m.resultCursor < len(m.searchResults)-1 {
			m.resultCursor++
		}
	case "enter":
		result := m.searchResults[m.resultCursor]
		m.showResults = false
		m.loadPath(result.Path)
		m.setStatus(fmt.Sprintf("%s line %d", result.Path, result.LineNumber))
	}
	return nil
}

// Timers and subscriptions.

func (m *EditorModel) autosaveTickCmd() tea.Cmd {
	return tea.Tick(m.autosave.Interval(), func(time.Time) tea.Msg {
		return autosaveTickMsg{}
	})
}

// scheduleFlush arms a tick for the synchronizer's current deadline. Each
// edit restarts the deadline, so a stale tick finds the flush not yet due
// and re-arms.
func (m *EditorModel) scheduleFlush() tea.Cmd {
	if !m.sync.Pending() {
		return nil
	}
	wait := time.Until(m.sync.Deadline())
	if wait < 0 {
		wait = 0
	}
	return tea.Tick(wait, func(time.Time) tea.Msg {
		return syncTickMsg{}
	})
}

func (m *EditorModel) watchCmd() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-m.watcher.Events()
		if !ok {
			return nil
		}
		return docEventMsg(ev)
	}
}

func (m *EditorModel) watchPath(path string) {
	if m.watcher == nil || path == "" {
		return
	}
	if err := m.watcher.Add(path); err != nil {
		m.logger.Warn().Str("path", path).Err(err).Msg("failed to watch document")
	}
}

func (m *EditorModel) persistSettings() {
	if err := files.SaveSettings(m.settings); err != nil {
		m.logger.Warn().Err(err).Msg("failed to persist settings")
	}
}

func (m *EditorModel) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *EditorModel) setError(msg string) {
	m.status = msg
	m.statusErr = true
	m.logger.Warn().Msg(msg)
}

// recalcLayout measures the editor container and resizes the surface when
// the derived metrics changed.
func (m *EditorModel) recalcLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	w := m.width
	if m.showSidebar {
		w -= sidebarWidth
	}
	if m.showPreview {
		w /= 2
	}
	h := m.height - chromeRows

	lines := strings.Split(m.textarea.Value(), "\n")
	longest := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > longest {
			longest = n
		}
	}

	metrics, changed := m.layout.Measure(ContainerSize{
		Width:        w,
		Height:       h,
		ScrollWidth:  longest,
		ScrollHeight: len(lines),
	})
	if !changed {
		return
	}

	m.textarea.SetWidth(metrics.ContentWidth)
	m.textarea.SetHeight(metrics.AvailableHeight)
	m.sidebar.SetSize(sidebarWidth, h)
}
