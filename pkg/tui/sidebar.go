package tui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/inkwell-md/inkwell/pkg/files"
)

// SidebarModel is the directory browser pane. Enter on a markdown file
// emits its path for opening; enter on a directory descends into it.
type SidebarModel struct {
	dir     string
	entries []files.DirEntry
	cursor  int
	offset  int
	width   int
	height  int
	err     error
}

// NewSidebar creates a sidebar rooted at dir.
func NewSidebar(dir string) *SidebarModel {
	s := &SidebarModel{dir: dir, width: 30, height: 20}
	s.Reload()
	return s
}

// Reload re-reads the current directory.
func (s *SidebarModel) Reload() {
	entries, err := files.ListDirectory(s.dir)
	s.err = err
	s.entries = entries
	if s.cursor >= len(s.entries) {
		s.cursor = 0
	}
	s.offset = 0
}

// SetSize updates the pane dimensions.
func (s *SidebarModel) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Dir returns the directory currently listed.
func (s *SidebarModel) Dir() string {
	return s.dir
}

// MoveUp moves the cursor one row up.
func (s *SidebarModel) MoveUp() {
	if s.cursor > 0 {
		s.cursor--
	}
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
}

// MoveDown moves the cursor one row down.
func (s *SidebarModel) MoveDown() {
	if s.cursor < len(s.entries) {
		s.cursor++
	}
	if max := len(s.entries); s.cursor > max {
		s.cursor = max
	}
	visible := s.visibleRows()
	if s.cursor-s.offset >= visible {
		s.offset = s.cursor - visible + 1
	}
}

// Select returns the action for the row under the cursor. The first row
// is always the parent directory.
func (s *SidebarModel) Select() (path string, isDir bool, ok bool) {
	if s.cursor == 0 {
		return filepath.Dir(s.dir), true, true
	}
	idx := s.cursor - 1
	if idx < 0 || idx >= len(s.entries) {
		return "", false, false
	}
	entry := s.entries[idx]
	return entry.Path, entry.IsDir, true
}

// Descend switches the listing to dir.
func (s *SidebarModel) Descend(dir string) {
	s.dir = dir
	s.cursor = 0
	s.Reload()
}

func (s *SidebarModel) visibleRows() int {
	rows := s.height - 3 // border and directory header
	if rows < 1 {
		rows = 1
	}
	return rows
}

// View renders the pane.
func (s *SidebarModel) View(theme Theme) string {
	var b strings.Builder

	header := s.dir
	innerWidth := s.width - 4
	if innerWidth < 8 {
		innerWidth = 8
	}
	header = truncateHead(header, innerWidth)
	b.WriteString(theme.SidebarDir.Render(header))
	b.WriteString("\n")

	rows := []string{"../"}
	for _, entry := range s.entries {
		name := entry.Name
		if entry.IsDir {
			name += "/"
		}
		rows = append(rows, name)
	}

	visible := s.visibleRows()
	end := s.offset + visible
	if end > len(rows) {
		end = len(rows)
	}

	for i := s.offset; i < end; i++ {
		row := truncateTail(rows[i], innerWidth)
		switch {
		case i == s.cursor:
			b.WriteString(theme.SidebarSelected.Render(row))
		case strings.HasSuffix(row, "/"):
			b.WriteString(theme.SidebarDir.Render(row))
		default:
			b.WriteString(row)
		}
		b.WriteString("\n")
	}

	if s.err != nil {
		b.WriteString(theme.StatusError.Render("unreadable directory"))
	}

	content := strings.TrimRight(b.String(), "\n")
	return theme.SidebarBorder.
		Width(s.width - 2).
		Height(s.height - 2).
		Render(lipgloss.NewStyle().MaxWidth(s.width - 2).Render(content))
}
