package tags

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func newEditor(t *testing.T, mutate func(*Options)) *Editor {
	t.Helper()
	opt := DefaultOptions()
	if mutate != nil {
		mutate(&opt)
	}
	return New(opt)
}

func idOf(t *testing.T, e *Editor, text string) uuid.UUID {
	t.Helper()
	for _, tag := range e.Tags() {
		if tag.Text == text {
			return tag.ID
		}
	}
	t.Fatalf("tag %q not found in %q", text, e.Texts())
	return uuid.Nil
}

func selectedText(e *Editor) string {
	if t, ok := e.Selected(); ok {
		return t.Text
	}
	return ""
}

func TestAdd_DuplicatesDisabled_Idempotent(t *testing.T) {
	e := newEditor(t, func(o *Options) { o.Duplicates = false })

	if !e.Add("go") {
		t.Fatalf("first add: got false, want true")
	}
	if e.Add("go") {
		t.Fatalf("second add: got true, want false")
	}
	if got, want := e.Texts(), []string{"go"}; !slices.Equal(got, want) {
		t.Fatalf("tags: got %q, want %q", got, want)
	}
}

func TestAdd_SplitsOnDelimiterAndPreservesOrder(t *testing.T) {
	e := newEditor(t, nil)

	e.Add("b", "a,b", "c")
	if got, want := e.Texts(), []string{"b", "a", "b", "c"}; !slices.Equal(got, want) {
		t.Fatalf("tags: got %q, want %q", got, want)
	}
	if got, want := e.Serialize(), "b,a,b,c"; got != want {
		t.Fatalf("serialize: got %q, want %q", got, want)
	}
	if got, want := selectedText(e), "c"; got != want {
		t.Fatalf("selected: got %q, want %q", got, want)
	}
}

func TestAdd_CustomDelimiter(t *testing.T) {
	e := newEditor(t, func(o *Options) { o.Delimiter = ';' })

	e.Add(" x ; y;;z ")
	if got, want := e.Texts(), []string{"x", "y", "z"}; !slices.Equal(got, want) {
		t.Fatalf("tags: got %q, want %q", got, want)
	}
	if got, want := e.Serialize(), "x;y;z"; got != want {
		t.Fatalf("serialize: got %q, want %q", got, want)
	}
}

func TestAdd_CaseComposition(t *testing.T) {
	cases := []struct {
		name         string
		lower, upper bool
		want         string
	}{
		{name: "none", want: "MixedCase"},
		{name: "lower", lower: true, want: "mixedcase"},
		{name: "upper", upper: true, want: "MIXEDCASE"},
		{name: "both", lower: true, upper: true, want: "MIXEDCASE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEditor(t, func(o *Options) {
				o.Lowercase = tc.lower
				o.Uppercase = tc.upper
			})
			e.Add("MixedCase")
			if got := e.Texts(); len(got) != 1 || got[0] != tc.want {
				t.Fatalf("tags: got %q, want [%q]", got, tc.want)
			}
		})
	}
}

func TestAdd_DuplicateCheckUsesNormalizedText(t *testing.T) {
	e := newEditor(t, func(o *Options) {
		o.Duplicates = false
		o.Lowercase = true
	})
	e.Add("Go")
	e.Add("GO")
	if got, want := e.Texts(), []string{"go"}; !slices.Equal(got, want) {
		t.Fatalf("tags: got %q, want %q", got, want)
	}
}

func TestAdd_WhitespaceIsNoOp(t *testing.T) {
	changes := 0
	e := newEditor(t, func(o *Options) {
		o.OnChange = func(Change) { changes++ }
	})

	if e.Add("   ") {
		t.Fatalf("add whitespace: got true, want false")
	}
	if got := e.Len(); got != 0 {
		t.Fatalf("len: got %d, want 0", got)
	}
	if changes != 0 {
		t.Fatalf("change events: got %d, want 0", changes)
	}
	if got := e.Version(); got != 0 {
		t.Fatalf("version: got %d, want 0", got)
	}
}

func TestRemove_PrefersPreviousNeighbor(t *testing.T) {
	e := newEditor(t, nil)
	e.Add("x", "y", "z")
	e.Select(idOf(t, e, "y"))

	if !e.Remove(idOf(t, e, "y")) {
		t.Fatalf("remove: got false, want true")
	}
	if got, want := e.Texts(), []string{"x", "z"}; !slices.Equal(got, want) {
		t.Fatalf("tags: got %q, want %q", got, want)
	}
	if got, want := selectedText(e), "x"; got != want {
		t.Fatalf("selected: got %q, want %q", got, want)
	}
}

func TestRemove_FirstTagSelectsNext(t *testing.T) {
	e := newEditor(t, nil)
	e.Add("x", "y")

	e.Remove(idOf(t, e, "x"))
	if got, want := selectedText(e), "y"; got != want {
		t.Fatalf("selected: got %q, want %q", got, want)
	}

	e.Remove(idOf(t, e, "y"))
	if _, ok := e.Selected(); ok {
		t.Fatalf("expected no selection after removing the last tag")
	}
	if got := e.SelectedIndex(); got != -1 {
		t.Fatalf("selected index: got %d, want -1", got)
	}
}

func TestRemove_DuplicatesRemoveOnlyTheTarget(t *testing.T) {
	e := newEditor(t, nil)
	e.Add("a", "a", "b")
	second := e.Tags()[1].ID

	e.Remove(second)
	tags := e.Tags()
	if len(tags) != 2 || tags[0].Text != "a" || tags[1].Text != "b" {
		t.Fatalf("tags: got %v", tags)
	}
	if tags[0].ID == second {
		t.Fatalf("removed the wrong duplicate")
	}
}

func TestRemove_VetoedByOnDelete(t *testing.T) {
	var asked []string
	e := newEditor(t, func(o *Options) {
		o.OnDelete = func(tag Tag) bool {
			asked = append(asked, tag.Text)
			return tag.Text != "y"
		}
	})
	e.Add("x", "y", "z")
	e.Select(idOf(t, e, "z"))
	v := e.Version()

	if e.Remove(idOf(t, e, "y")) {
		t.Fatalf("vetoed remove: got true, want false")
	}
	if got, want := e.Texts(), []string{"x", "y", "z"}; !slices.Equal(got, want) {
		t.Fatalf("tags: got %q, want %q", got, want)
	}
	if got, want := selectedText(e), "z"; got != want {
		t.Fatalf("selected: got %q, want %q", got, want)
	}
	if got := e.Version(); got != v {
		t.Fatalf("version: got %d, want %d", got, v)
	}
	if !slices.Equal(asked, []string{"y"}) {
		t.Fatalf("hook calls: got %q, want [y]", asked)
	}

	if !e.Remove(idOf(t, e, "x")) {
		t.Fatalf("allowed remove: got false, want true")
	}
}

func TestRemove_NilTargetSelectsLastWhenCaretAtStart(t *testing.T) {
	e := newEditor(t, nil)
	e.Add("x", "y")
	e.Select(uuid.Nil)

	if e.Remove(uuid.Nil) {
		t.Fatalf("remove nil: got true, want false")
	}
	if got, want := selectedText(e), "y"; got != want {
		t.Fatalf("selected: got %q, want %q", got, want)
	}
	if got := e.Len(); got != 2 {
		t.Fatalf("len: got %d, want 2", got)
	}

	e.Select(uuid.Nil)
	e.Input().SetText("ab")
	e.Remove(uuid.Nil)
	if _, ok := e.Selected(); ok {
		t.Fatalf("caret not at start: expected no selection")
	}
}

func TestSelect_AtMostOne(t *testing.T) {
	var events []SelectEvent
	e := newEditor(t, func(o *Options) {
		o.OnSelect = func(ev SelectEvent) { events = append(events, ev) }
	})
	e.Add("x", "y")
	events = nil

	e.Select(idOf(t, e, "x"))
	e.Select(idOf(t, e, "y"))
	if got, want := selectedText(e), "y"; got != want {
		t.Fatalf("selected: got %q, want %q", got, want)
	}
	if e.Select(uuid.New()) {
		t.Fatalf("select unknown: got true, want false")
	}
	e.Select(uuid.Nil)

	if len(events) != 3 {
		t.Fatalf("select events: got %d, want 3", len(events))
	}
	if !events[0].Active || events[0].Tag.Text != "x" {
		t.Fatalf("event 0: got %+v", events[0])
	}
	if events[2].Active {
		t.Fatalf("event 2: got active, want cleared")
	}
}

func TestNavigate(t *testing.T) {
	e := newEditor(t, nil)
	e.Add("x", "y")

	if e.Navigate(Next) {
		t.Fatalf("next at last tag: got true, want false")
	}
	if got, want := selectedText(e), "y"; got != want {
		t.Fatalf("selected: got %q, want %q", got, want)
	}

	e.Navigate(Previous)
	if got, want := selectedText(e), "x"; got != want {
		t.Fatalf("selected after previous: got %q, want %q", got, want)
	}
	if e.Navigate(Previous) {
		t.Fatalf("previous at first tag: got true, want false")
	}

	e.Navigate(Next)
	if got, want := selectedText(e), "y"; got != want {
		t.Fatalf("selected after next: got %q, want %q", got, want)
	}
}

func TestNavigate_WithoutSelection(t *testing.T) {
	e := newEditor(t, nil)
	e.Add("x", "y")
	e.Select(uuid.Nil)

	if e.Navigate(Next) {
		t.Fatalf("next without selection: got true, want false")
	}

	e.Input().SetText("ab")
	if e.Navigate(Previous) {
		t.Fatalf("previous with caret inside input: got true, want false")
	}

	e.Input().Move(CaretHome)
	if !e.Navigate(Previous) {
		t.Fatalf("previous with caret at start: got false, want true")
	}
	if got, want := selectedText(e), "y"; got != want {
		t.Fatalf("selected: got %q, want %q", got, want)
	}
}

func TestCommitPending_ClearsInputAndEmitsOnce(t *testing.T) {
	var changes []Change
	e := newEditor(t, func(o *Options) {
		o.OnChange = func(ch Change) { changes = append(changes, ch) }
	})

	e.Input().SetText("a,b,c")
	if !e.CommitPending() {
		t.Fatalf("commit: got false, want true")
	}
	if got := e.Input().Text(); got != "" {
		t.Fatalf("input after commit: got %q, want empty", got)
	}
	if len(changes) != 1 {
		t.Fatalf("change events: got %d, want 1", len(changes))
	}
	ch := changes[0]
	if ch.Value != "a,b,c" || len(ch.Added) != 3 || len(ch.Removed) != 0 {
		t.Fatalf("change: got %+v", ch)
	}
	if ch.VersionAfter <= ch.VersionBefore {
		t.Fatalf("versions: before=%d after=%d", ch.VersionBefore, ch.VersionAfter)
	}
}

func TestCommitPending_BlankKeepsInput(t *testing.T) {
	e := newEditor(t, nil)
	e.Input().SetText("   ")
	if e.CommitPending() {
		t.Fatalf("commit blank: got true, want false")
	}
	if got := e.Input().Text(); got != "   " {
		t.Fatalf("input: got %q, want %q", got, "   ")
	}
}

func TestCommitPending_DuplicateClearsInput(t *testing.T) {
	e := newEditor(t, func(o *Options) { o.Duplicates = false })
	e.Add("go")
	e.Input().SetText("go")

	if e.CommitPending() {
		t.Fatalf("commit duplicate: got true, want false")
	}
	if got := e.Input().Text(); got != "" {
		t.Fatalf("input: got %q, want empty", got)
	}
}

func TestCommitPending_ExplicitValues(t *testing.T) {
	e := newEditor(t, nil)
	e.Input().SetText("typed")
	e.CommitPending("one", "two")
	if got, want := e.Texts(), []string{"one", "two"}; !slices.Equal(got, want) {
		t.Fatalf("tags: got %q, want %q", got, want)
	}
	if got := e.Input().Text(); got != "" {
		t.Fatalf("input: got %q, want empty", got)
	}
}

func TestSetValue_ReplacesTags(t *testing.T) {
	var changes []Change
	e := newEditor(t, func(o *Options) {
		o.OnChange = func(ch Change) { changes = append(changes, ch) }
	})
	e.Add("old")
	changes = nil

	e.SetValue("new,newer")
	if got, want := e.Texts(), []string{"new", "newer"}; !slices.Equal(got, want) {
		t.Fatalf("tags: got %q, want %q", got, want)
	}
	if len(changes) != 1 {
		t.Fatalf("change events: got %d, want 1", len(changes))
	}
	if len(changes[0].Removed) != 1 || changes[0].Removed[0].Text != "old" {
		t.Fatalf("removed: got %+v", changes[0].Removed)
	}
}

func TestReset_Silent(t *testing.T) {
	changes := 0
	e := newEditor(t, func(o *Options) {
		o.OnChange = func(Change) { changes++ }
	})
	e.Add("x", "y")
	changes = 0

	e.Reset()
	if e.Len() != 0 || e.Serialize() != "" {
		t.Fatalf("after reset: tags=%q", e.Texts())
	}
	if _, ok := e.Selected(); ok {
		t.Fatalf("after reset: expected no selection")
	}
	if changes != 0 {
		t.Fatalf("change events: got %d, want 0", changes)
	}
}

func TestSerialize_RoundTrip(t *testing.T) {
	lists := [][]string{
		nil,
		{"solo"},
		{"a", "b", "a"},
		{"with space", "x", "ünïcödé"},
	}
	for _, delim := range []rune{',', ';', '|'} {
		for _, list := range lists {
			src := New(Options{Delimiter: delim, Duplicates: true})
			for _, s := range list {
				src.Add(s)
			}

			dst := New(Options{Delimiter: delim, Duplicates: true})
			for _, s := range strings.Split(src.Serialize(), string(delim)) {
				dst.Add(s)
			}
			if !slices.Equal(src.Texts(), dst.Texts()) {
				t.Fatalf("round trip with %q: got %q, want %q", delim, dst.Texts(), src.Texts())
			}
		}
	}
}

func TestNew_ZeroDelimiterDefaultsToComma(t *testing.T) {
	e := New(Options{})
	if got := e.Delimiter(); got != ',' {
		t.Fatalf("delimiter: got %q, want ','", got)
	}
}
