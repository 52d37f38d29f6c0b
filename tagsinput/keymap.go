package tagsinput

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the tags input key bindings. The delimiter and comma are
// matched as typed characters, not through bindings.
type KeyMap struct {
	Commit, Next      key.Binding
	Left, Right       key.Binding
	Home, End         key.Binding
	Backspace, Delete key.Binding
	Paste             key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add tag")),
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "add tag")),

		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous tag")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next tag")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "input start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "input end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "select/remove tag")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "remove tag")),

		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste tags")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Commit, km.Left, km.Right, km.Backspace}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Commit, km.Next},
		{km.Left, km.Right, km.Home, km.End},
		{km.Backspace, km.Delete, km.Paste},
	}
}

func normalizeKeyMap(km KeyMap) KeyMap {
	if len(km.Commit.Keys()) == 0 && len(km.Backspace.Keys()) == 0 {
		return DefaultKeyMap()
	}
	return km
}
