package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationModel is a modal yes/no prompt rendered over the status
// line. While active it captures key input ahead of the editor.
type ConfirmationModel struct {
	active    bool
	message   string
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
}

// NewConfirmation creates an inactive confirmation prompt.
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the prompt with the given message and callbacks.
func (m *ConfirmationModel) Show(message string, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.message = message
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

// Active reports whether the prompt is showing.
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update consumes a key while the prompt is active.
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
	}
	return nil
}

// View renders the prompt centered within width.
func (m *ConfirmationModel) View(width int) string {
	if !m.active {
		return ""
	}

	text := fmt.Sprintf("%s (y/n)", m.message)
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214"))
	if width > lipgloss.Width(text) {
		style = style.Width(width).Align(lipgloss.Center)
	}
	return style.Render(text)
}
