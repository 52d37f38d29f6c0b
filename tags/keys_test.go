package tags

import (
	"slices"
	"testing"
)

func TestResolve_Table(t *testing.T) {
	empty := KeyState{PendingEmpty: true, CaretAtStart: true, HasTags: true}
	typing := KeyState{CaretAtStart: false, HasTags: true}
	selected := KeyState{Selected: true, PendingEmpty: true, CaretAtStart: true, HasTags: true}

	cases := []struct {
		name string
		key  Key
		st   KeyState
		want Action
	}{
		{name: "enter commits text", key: KeyEnter, st: typing, want: ActionCommit},
		{name: "enter on empty input", key: KeyEnter, st: empty, want: ActionPassthrough},
		{name: "tab commits text", key: KeyTab, st: typing, want: ActionCommit},
		{name: "tab on empty input", key: KeyTab, st: empty, want: ActionPassthrough},
		{name: "delimiter commits text", key: KeyDelimiter, st: typing, want: ActionCommit},
		{name: "delete removes selected", key: KeyDelete, st: selected, want: ActionRemoveSelected},
		{name: "delete without selection", key: KeyDelete, st: typing, want: ActionClearSelection},
		{name: "backspace removes selected", key: KeyBackspace, st: selected, want: ActionRemoveSelected},
		{name: "backspace at start selects last", key: KeyBackspace, st: empty, want: ActionSelectLast},
		{name: "backspace at start without tags", key: KeyBackspace, st: KeyState{PendingEmpty: true, CaretAtStart: true}, want: ActionPassthrough},
		{name: "backspace inside text", key: KeyBackspace, st: typing, want: ActionPassthrough},
		{name: "left with selection", key: KeyLeft, st: selected, want: ActionSelectPrevious},
		{name: "left at start", key: KeyLeft, st: empty, want: ActionSelectLast},
		{name: "left inside text", key: KeyLeft, st: typing, want: ActionPassthrough},
		{name: "right with selection", key: KeyRight, st: selected, want: ActionSelectNext},
		{name: "right without selection", key: KeyRight, st: empty, want: ActionPassthrough},
		{name: "other key", key: KeyOther, st: selected, want: ActionClearSelection},
	}
	for _, tc := range cases {
		if got := Resolve(tc.key, tc.st); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

// Comma attempts a commit on an empty input; a configured non-comma
// delimiter does not. Pinned so a change to either row is deliberate.
func TestResolve_CommaDelimiterAsymmetry(t *testing.T) {
	empty := KeyState{PendingEmpty: true, CaretAtStart: true}

	if got := Resolve(KeyComma, empty); got != ActionCommit {
		t.Fatalf("comma on empty input: got %v, want %v", got, ActionCommit)
	}
	if got := Resolve(KeyDelimiter, empty); got != ActionPassthrough {
		t.Fatalf("delimiter on empty input: got %v, want %v", got, ActionPassthrough)
	}

	e := New(Options{Delimiter: ';', Duplicates: true})
	v := e.Version()
	if a := e.HandleKey(KeyComma); a != ActionCommit {
		t.Fatalf("handle comma: got %v, want %v", a, ActionCommit)
	}
	if got := e.Version(); got != v {
		t.Fatalf("empty comma commit changed the list: version %d -> %d", v, got)
	}
}

func TestHandleKey_CommitClearsTransientSelection(t *testing.T) {
	e := New(DefaultOptions())
	e.Input().SetText("go")

	if a := e.HandleKey(KeyEnter); a != ActionCommit {
		t.Fatalf("action: got %v, want %v", a, ActionCommit)
	}
	if got, want := e.Texts(), []string{"go"}; !slices.Equal(got, want) {
		t.Fatalf("tags: got %q, want %q", got, want)
	}
	if _, ok := e.Selected(); ok {
		t.Fatalf("expected no selection after keyboard commit")
	}
}

func TestHandleKey_BackspaceTwiceRemovesLast(t *testing.T) {
	e := New(DefaultOptions())
	e.Add("x", "y")
	e.HandleKey(KeyOther)

	if a := e.HandleKey(KeyBackspace); a != ActionSelectLast {
		t.Fatalf("first backspace: got %v, want %v", a, ActionSelectLast)
	}
	if a := e.HandleKey(KeyBackspace); a != ActionRemoveSelected {
		t.Fatalf("second backspace: got %v, want %v", a, ActionRemoveSelected)
	}
	if got, want := e.Texts(), []string{"x"}; !slices.Equal(got, want) {
		t.Fatalf("tags: got %q, want %q", got, want)
	}
	if got, want := selectedText(e), "x"; got != want {
		t.Fatalf("selected: got %q, want %q", got, want)
	}
}

func TestHandleKey_ArrowNavigation(t *testing.T) {
	e := New(DefaultOptions())
	e.Add("x", "y", "z")
	e.HandleKey(KeyOther)

	e.HandleKey(KeyLeft)
	e.HandleKey(KeyLeft)
	if got, want := selectedText(e), "y"; got != want {
		t.Fatalf("after two lefts: got %q, want %q", got, want)
	}
	e.HandleKey(KeyRight)
	e.HandleKey(KeyRight)
	if got, want := selectedText(e), "z"; got != want {
		t.Fatalf("after rights past the end: got %q, want %q", got, want)
	}
	if a := e.HandleKey(KeyOther); !a.EditsInput() {
		t.Fatalf("other key should reach the input")
	}
	if _, ok := e.Selected(); ok {
		t.Fatalf("expected selection cleared by other key")
	}
}
