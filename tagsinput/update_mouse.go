package tagsinput

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// updateMouse handles left clicks: a chip selects its tag, the "×" removes
// it, the input places the caret, and any click inside focuses the
// component.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.interactive() {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	h := m.hitTest(msg.X, msg.Y)
	if h.kind == hitNone {
		return m, nil
	}
	m.focused = true

	ed := m.st.ed
	switch h.kind {
	case hitDelete:
		if tags := ed.Tags(); h.index < len(tags) {
			ed.Remove(tags[h.index].ID)
		}
	case hitChip:
		if tags := ed.Tags(); h.index < len(tags) {
			ed.Select(tags[h.index].ID)
		}
	case hitInput:
		ed.Select(uuid.Nil)
		ed.Input().SetCaret(h.caret)
	}
	return m, nil
}
