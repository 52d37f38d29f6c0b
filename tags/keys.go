package tags

import "github.com/google/uuid"

// Key is a keyboard input class relevant to tag editing.
type Key uint8

const (
	KeyOther Key = iota
	KeyEnter
	KeyTab
	// KeyDelimiter is the configured delimiter when it is not a comma.
	KeyDelimiter
	// KeyComma is the comma key, whatever the configured delimiter.
	KeyComma
	KeyDelete
	KeyBackspace
	KeyLeft
	KeyRight
)

func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "enter"
	case KeyTab:
		return "tab"
	case KeyDelimiter:
		return "delimiter"
	case KeyComma:
		return "comma"
	case KeyDelete:
		return "delete"
	case KeyBackspace:
		return "backspace"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "other"
	}
}

// Action is what a key press does to the tag list.
type Action uint8

const (
	// ActionPassthrough leaves tags alone; the key edits the pending input.
	ActionPassthrough Action = iota
	ActionCommit
	ActionRemoveSelected
	ActionSelectLast
	ActionSelectPrevious
	ActionSelectNext
	// ActionClearSelection clears the selection, then the key edits the
	// pending input.
	ActionClearSelection
)

func (a Action) String() string {
	switch a {
	case ActionCommit:
		return "commit"
	case ActionRemoveSelected:
		return "remove-selected"
	case ActionSelectLast:
		return "select-last"
	case ActionSelectPrevious:
		return "select-previous"
	case ActionSelectNext:
		return "select-next"
	case ActionClearSelection:
		return "clear-selection"
	default:
		return "passthrough"
	}
}

// EditsInput reports whether the key should still reach the pending input
// after the action ran.
func (a Action) EditsInput() bool {
	return a == ActionPassthrough || a == ActionClearSelection
}

// KeyState is the editor state a key is resolved against.
type KeyState struct {
	Selected     bool
	PendingEmpty bool
	CaretAtStart bool
	HasTags      bool
}

type cond uint8

const (
	anyState cond = iota
	yes
	no
)

func (c cond) match(v bool) bool {
	return c == anyState || (c == yes) == v
}

type keyRule struct {
	key      Key
	selected cond
	empty    cond
	atStart  cond
	hasTags  cond
	action   Action
}

// keyTable is evaluated top to bottom; the first matching row wins.
//
// Comma commits even with an empty pending input while a non-comma
// delimiter does not. Both commits of an empty buffer are no-ops on the
// list; the difference is whether the key still reaches the input.
var keyTable = []keyRule{
	{key: KeyEnter, empty: no, action: ActionCommit},
	{key: KeyEnter, empty: yes, action: ActionPassthrough},
	{key: KeyTab, empty: no, action: ActionCommit},
	{key: KeyTab, empty: yes, action: ActionPassthrough},
	{key: KeyComma, action: ActionCommit},
	{key: KeyDelimiter, empty: no, action: ActionCommit},
	{key: KeyDelimiter, empty: yes, action: ActionPassthrough},

	{key: KeyDelete, selected: yes, action: ActionRemoveSelected},
	{key: KeyDelete, selected: no, action: ActionClearSelection},

	{key: KeyBackspace, selected: yes, action: ActionRemoveSelected},
	{key: KeyBackspace, selected: no, atStart: yes, hasTags: yes, action: ActionSelectLast},
	{key: KeyBackspace, action: ActionPassthrough},

	{key: KeyLeft, selected: yes, action: ActionSelectPrevious},
	{key: KeyLeft, selected: no, atStart: yes, action: ActionSelectLast},
	{key: KeyLeft, action: ActionPassthrough},

	{key: KeyRight, selected: yes, action: ActionSelectNext},
	{key: KeyRight, action: ActionPassthrough},

	{key: KeyOther, action: ActionClearSelection},
}

// Resolve maps a key and the current state to an action.
func Resolve(k Key, s KeyState) Action {
	for _, r := range keyTable {
		if r.key != k {
			continue
		}
		if r.selected.match(s.Selected) &&
			r.empty.match(s.PendingEmpty) &&
			r.atStart.match(s.CaretAtStart) &&
			r.hasTags.match(s.HasTags) {
			return r.action
		}
	}
	return ActionPassthrough
}

// KeyState snapshots the state keys are resolved against.
func (e *Editor) KeyState() KeyState {
	_, selected := e.Selected()
	return KeyState{
		Selected:     selected,
		PendingEmpty: e.input.Empty(),
		CaretAtStart: e.input.AtStart(),
		HasTags:      len(e.tags) > 0,
	}
}

// HandleKey resolves k and applies the tag side of the action. The caller
// forwards the key to the pending input when the returned action
// EditsInput.
//
// A keyboard commit leaves no tag selected.
func (e *Editor) HandleKey(k Key) Action {
	a := Resolve(k, e.KeyState())
	switch a {
	case ActionCommit:
		cb := e.beginChange()
		e.commitPending(nil)
		e.sel = -1
		e.commitChange(cb)
	case ActionRemoveSelected:
		e.RemoveSelected()
	case ActionSelectLast:
		e.SelectLast()
	case ActionSelectPrevious:
		e.Navigate(Previous)
	case ActionSelectNext:
		e.Navigate(Next)
	case ActionClearSelection:
		e.Select(uuid.Nil)
	}
	return a
}
