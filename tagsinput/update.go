package tagsinput

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tagfield/tags"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetWidth(msg.Width), nil
	case pasteCommitMsg:
		if msg.id == m.id && m.interactive() {
			m.st.ed.CommitPending()
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || !m.interactive() {
		return m, nil
	}
	ed := m.st.ed

	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		return m, m.paste(string(msg.Runes))
	}
	if cb := m.cfg.Clipboard; cb != nil && key.Matches(msg, m.cfg.KeyMap.Paste) {
		text, err := cb.ReadText()
		if err != nil || text == "" {
			return m, nil
		}
		return m, m.paste(text)
	}

	a := ed.HandleKey(m.classify(msg))
	if a.EditsInput() {
		m.editInputWith(func() { m.editInput(msg) })
	}
	return m, nil
}

// paste inserts text into the input now and commits it on the next
// update, so the pasted text is complete before it is split into tags.
func (m Model) paste(text string) tea.Cmd {
	ed := m.st.ed
	ed.HandleKey(tags.KeyOther)
	m.editInputWith(func() { ed.Input().InsertText(text) })
	id := m.id
	return func() tea.Msg { return pasteCommitMsg{id: id} }
}

// classify maps a key press onto the editor's key classes.
func (m Model) classify(msg tea.KeyMsg) tags.Key {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Commit):
		return tags.KeyEnter
	case key.Matches(msg, km.Next):
		return tags.KeyTab
	case key.Matches(msg, km.Delete):
		return tags.KeyDelete
	case key.Matches(msg, km.Backspace):
		return tags.KeyBackspace
	case key.Matches(msg, km.Left):
		return tags.KeyLeft
	case key.Matches(msg, km.Right):
		return tags.KeyRight
	}

	r, ok := typedRune(msg)
	switch {
	case !ok:
		return tags.KeyOther
	case r == ',':
		return tags.KeyComma
	case r == m.st.ed.Delimiter():
		return tags.KeyDelimiter
	default:
		return tags.KeyOther
	}
}

func typedRune(msg tea.KeyMsg) (rune, bool) {
	switch {
	case msg.Type == tea.KeySpace:
		return ' ', true
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt:
		return msg.Runes[0], true
	default:
		return 0, false
	}
}

func (m Model) editInput(msg tea.KeyMsg) {
	in := m.st.ed.Input()
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Backspace):
		in.DeleteBackward()
	case key.Matches(msg, km.Delete):
		in.DeleteForward()
	case key.Matches(msg, km.Left):
		in.Move(tags.CaretLeft)
	case key.Matches(msg, km.Right):
		in.Move(tags.CaretRight)
	case key.Matches(msg, km.Home):
		in.Move(tags.CaretHome)
	case key.Matches(msg, km.End):
		in.Move(tags.CaretEnd)
	case msg.Type == tea.KeySpace:
		in.InsertText(" ")
	case msg.Type == tea.KeyRunes && !msg.Alt:
		in.InsertText(string(msg.Runes))
	}
}

// editInputWith runs edit and reports an InputEvent if the pending text
// changed. Caret-only moves are not reported.
func (m Model) editInputWith(edit func()) {
	in := m.st.ed.Input()
	before := in.Text()
	edit()
	if m.cfg.OnInput == nil || in.Text() == before {
		return
	}
	m.cfg.OnInput(InputEvent{Text: in.Text(), Value: m.st.ed.Serialize()})
}
