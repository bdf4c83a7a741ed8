package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
)

// newSurface constructs a fresh textarea for one document. A new surface
// is built every time the active document changes; surfaces are never
// shared between documents.
func newSurface() textarea.Model {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.Prompt = "  "
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(20)
	return ta
}

// surfaceAdapter exposes the textarea to the synchronizer as an opaque
// serializable buffer.
type surfaceAdapter struct {
	ta *textarea.Model
}

func (s *surfaceAdapter) Value() string {
	return s.ta.Value()
}

func (s *surfaceAdapter) SetValue(content string) {
	s.ta.SetValue(content)
}

// undoState is one entry on the editor's undo stack.
type undoState struct {
	content string
	line    int
}

const maxUndoLevels = 10

// pushUndo records a state, bounding the stack depth.
func pushUndo(stack []undoState, state undoState) []undoState {
	stack = append(stack, state)
	if len(stack) > maxUndoLevels {
		stack = stack[len(stack)-maxUndoLevels:]
	}
	return stack
}
