package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *EditorModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var rows []string
	rows = append(rows, m.tabBarView())

	body := m.bodyView()
	rows = append(rows, body)

	switch {
	case m.confirm.Active():
		rows = append(rows, m.confirm.View(m.width))
	case m.promptMode != promptNone:
		rows = append(rows, m.promptView())
	default:
		rows = append(rows, m.statusBarView())
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// tabBarView renders one tab per open document, dirty documents marked
// with a bullet.
func (m *EditorModel) tabBarView() string {
	docs := m.store.Documents()
	if len(docs) == 0 {
		return m.theme.TabBar.Render("no open documents")
	}

	tabs := make([]string, 0, len(docs))
	for _, doc := range docs {
		label := doc.Title()
		if doc.Dirty {
			label = "● " + label
		}
		if doc.ID == m.store.ActiveID() {
			tabs = append(tabs, m.theme.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.theme.TabInactive.Render(label))
		}
	}
	return m.theme.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m *EditorModel) bodyView() string {
	if m.showResults {
		return m.resultsView()
	}

	var panes []string
	if m.showSidebar {
		panes = append(panes, m.sidebar.View(m.theme))
	}

	if m.store.ActiveDocument() == nil {
		panes = append(panes, m.emptyView())
	} else {
		panes = append(panes, m.textarea.View())
		if m.showPreview {
			width := m.layout.Current().ContentWidth
			if width <= 0 {
				width = 60
			}
			panes = append(panes, renderPreview(m.textarea.Value(), width, m.theme))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, panes...)
}

// emptyView fills the editor pane when the workspace has no documents.
func (m *EditorModel) emptyView() string {
	lines := []string{
		"",
		"  ctrl+n  new document",
		"  ctrl+o  open file",
		"  ctrl+e  browse files",
		"  ctrl+f  find in files",
		"  ctrl+c  quit",
	}
	if recent := m.recents.Paths(); len(recent) > 0 {
		lines = append(lines, "", "  recent:")
		for _, path := range recent {
			lines = append(lines, "    "+path)
		}
	}
	return strings.Join(lines, "\n")
}

func (m *EditorModel) resultsView() string {
	var b strings.Builder
	b.WriteString(m.theme.Heading.Render(fmt.Sprintf("results for %q", m.searchQuery)))
	b.WriteString("\n\n")

	visible := m.height - chromeRows - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.resultCursor >= visible {
		start = m.resultCursor - visible + 1
	}
	end := start + visible
	if end > len(m.searchResults) {
		end = len(m.searchResults)
	}

	for i := start; i < end; i++ {
		result := m.searchResults[i]
		row := truncateTail(fmt.Sprintf("%s:%d: %s", result.Path, result.LineNumber,
			strings.TrimSpace(result.LineContent)), m.width-2)
		if i == m.resultCursor {
			b.WriteString(m.theme.SidebarSelected.Render(row))
		} else {
			b.WriteString(row)
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m *EditorModel) promptView() string {
	label := m.theme.PromptLabel.Render(m.promptLabel() + ":")
	return label + " " + m.prompt.View()
}

func (m *EditorModel) statusBarView() string {
	left := m.status
	if left == "" {
		if doc := m.store.ActiveDocument(); doc != nil {
			left = doc.Title()
			if doc.Dirty {
				left += " (modified)"
			}
		} else {
			left = "inkwell"
		}
	}

	right := ""
	if doc := m.store.ActiveDocument(); doc != nil {
		total := len(strings.Split(m.textarea.Value(), "\n"))
		right = lineRange(m.textarea.Line(), total)
	}

	style := m.theme.StatusBar
	if m.statusErr {
		style = m.theme.StatusError
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return style.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}
