package tags

import (
	"slices"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Editor is the tag collection state: committed tags, the pending input
// and the current selection.
//
// Editor is not safe for concurrent use; it is owned by one component and
// mutated from that component's Update.
type Editor struct {
	opt   Options
	delim string

	lower cases.Caser
	upper cases.Caser

	tags    []Tag
	sel     int
	input   *Input
	version uint64

	newID func() uuid.UUID
}

func New(opt Options) *Editor {
	if opt.Delimiter == 0 {
		opt.Delimiter = DefaultDelimiter
	}
	return &Editor{
		opt:   opt,
		delim: string(opt.Delimiter),
		lower: cases.Lower(language.Und),
		upper: cases.Upper(language.Und),
		sel:   -1,
		input: NewInput(""),
		newID: uuid.New,
	}
}

func (e *Editor) Options() Options { return e.opt }

func (e *Editor) Delimiter() rune { return e.opt.Delimiter }

// Input returns the pending input buffer. Callers edit it directly for
// text entry; CommitPending turns its content into tags.
func (e *Editor) Input() *Input { return e.input }

// Version increments on every tag list mutation.
func (e *Editor) Version() uint64 { return e.version }

func (e *Editor) Len() int { return len(e.tags) }

// Tags returns a copy of the committed tags in commit order.
func (e *Editor) Tags() []Tag { return append([]Tag(nil), e.tags...) }

// Texts returns the committed tag texts in commit order.
func (e *Editor) Texts() []string {
	out := make([]string, len(e.tags))
	for i, t := range e.tags {
		out[i] = t.Text
	}
	return out
}

func (e *Editor) Selected() (Tag, bool) {
	if e.sel < 0 || e.sel >= len(e.tags) {
		return Tag{}, false
	}
	return e.tags[e.sel], true
}

// SelectedIndex returns the selected position or -1.
func (e *Editor) SelectedIndex() int { return e.sel }

func (e *Editor) IndexOf(id uuid.UUID) int {
	for i, t := range e.tags {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Serialize joins the tags with the delimiter.
func (e *Editor) Serialize() string {
	return strings.Join(e.Texts(), e.delim)
}

// Add commits raw fragments in order. A fragment containing the delimiter
// is split first. It reports whether at least one tag was appended; the
// last appended tag becomes the selection.
func (e *Editor) Add(raw ...string) bool {
	cb := e.beginChange()
	added, _ := e.add(raw)
	e.commitChange(cb)
	return added > 0
}

// Remove deletes the tag with id after consulting OnDelete. The selection
// moves to the previous tag, else the next, else clears.
//
// With uuid.Nil and the caret at the start of the pending input, the last
// tag is selected instead and nothing is removed.
func (e *Editor) Remove(id uuid.UUID) bool {
	cb := e.beginChange()
	ok := e.remove(id)
	e.commitChange(cb)
	return ok
}

// RemoveSelected removes the selected tag, if any.
func (e *Editor) RemoveSelected() bool {
	t, ok := e.Selected()
	if !ok {
		return false
	}
	return e.Remove(t.ID)
}

// Select makes id the only selected tag. uuid.Nil clears the selection;
// unknown ids are ignored.
func (e *Editor) Select(id uuid.UUID) bool {
	next := -1
	if id != uuid.Nil {
		next = e.IndexOf(id)
		if next < 0 {
			return false
		}
	}
	cb := e.beginChange()
	e.sel = next
	e.commitChange(cb)
	return true
}

// SelectLast selects the last tag if there is one.
func (e *Editor) SelectLast() bool {
	if len(e.tags) == 0 {
		return false
	}
	return e.Select(e.tags[len(e.tags)-1].ID)
}

// Navigate moves the selection one step. It reports whether the selection
// changed; stepping past either end is a no-op.
func (e *Editor) Navigate(dir Direction) bool {
	next := e.sel
	switch dir {
	case Previous:
		switch {
		case e.sel > 0:
			next = e.sel - 1
		case e.sel < 0 && e.input.AtStart():
			next = len(e.tags) - 1
		}
	case Next:
		if e.sel >= 0 && e.sel+1 < len(e.tags) {
			next = e.sel + 1
		}
	}
	if next == e.sel {
		return false
	}
	cb := e.beginChange()
	e.sel = next
	e.commitChange(cb)
	return true
}

// CommitPending adds values, or the pending input when none are given,
// then clears the pending input unless the text was blank. It reports
// whether a tag was appended.
func (e *Editor) CommitPending(values ...string) bool {
	cb := e.beginChange()
	added := e.commitPending(values)
	e.commitChange(cb)
	return added > 0
}

// SetValue replaces every tag with the ones parsed from v.
func (e *Editor) SetValue(v string) {
	cb := e.beginChange()
	e.clear()
	e.commitPending([]string{v})
	e.commitChange(cb)
}

// Reset drops all tags and the selection without publishing events.
// Mirroring the empty list into a host field is up to the caller.
func (e *Editor) Reset() {
	e.clear()
}

func (e *Editor) clear() {
	if len(e.tags) > 0 {
		e.tags = nil
		e.version++
	}
	e.sel = -1
}

func (e *Editor) commitPending(values []string) int {
	if len(values) == 0 {
		values = []string{e.input.Text()}
	}
	added, blank := e.add(values)
	if !blank {
		e.input.Clear()
	}
	return added
}

// add appends fragments and reports how many tags were added. blank is set
// only when raw was a single fragment that trimmed to nothing.
func (e *Editor) add(raw []string) (added int, blank bool) {
	if len(raw) != 1 {
		for _, r := range raw {
			n, _ := e.add([]string{r})
			added += n
		}
		return added, false
	}

	text := raw[0]
	if strings.Contains(text, e.delim) {
		return e.add(strings.Split(text, e.delim))
	}

	tag := strings.TrimSpace(text)
	if tag == "" {
		return 0, true
	}
	tag = e.normalize(tag)
	if !e.opt.Duplicates && e.indexOfText(tag) >= 0 {
		return 0, false
	}

	e.tags = append(e.tags, Tag{ID: e.newID(), Text: tag})
	e.sel = len(e.tags) - 1
	e.version++
	return 1, false
}

func (e *Editor) remove(id uuid.UUID) bool {
	if id == uuid.Nil {
		if e.input.AtStart() && len(e.tags) > 0 {
			e.sel = len(e.tags) - 1
		}
		return false
	}

	i := e.IndexOf(id)
	if i < 0 {
		return false
	}
	if e.opt.OnDelete != nil && !e.opt.OnDelete(e.tags[i]) {
		return false
	}

	// Pick the replacement before removing; the successor shifts into i.
	next := -1
	switch {
	case i > 0:
		next = i - 1
	case i+1 < len(e.tags):
		next = i
	}
	e.tags = slices.Delete(e.tags, i, i+1)
	e.sel = next
	e.version++
	return true
}

func (e *Editor) normalize(tag string) string {
	if e.opt.Lowercase {
		tag = e.lower.String(tag)
	}
	if e.opt.Uppercase {
		tag = e.upper.String(tag)
	}
	return tag
}

func (e *Editor) indexOfText(text string) int {
	for i, t := range e.tags {
		if t.Text == text {
			return i
		}
	}
	return -1
}

func (e *Editor) selectedID() uuid.UUID {
	if t, ok := e.Selected(); ok {
		return t.ID
	}
	return uuid.Nil
}
