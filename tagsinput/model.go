package tagsinput

import (
	"errors"
	"fmt"
	"reflect"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/iw2rmb/tagfield/form"
	"github.com/iw2rmb/tagfield/tags"
)

var (
	// ErrInvalidHost is returned when a Model is constructed without a host.
	ErrInvalidHost = errors.New("tagsinput: invalid host")
	// ErrHostNotFound is returned when a named host cannot be resolved.
	ErrHostNotFound = errors.New("tagsinput: host not found")
)

var lastID atomic.Int64

func nextID() int { return int(lastID.Add(1)) }

// state is shared by all copies of a Model; tea passes Models by value.
type state struct {
	host        Host
	ed          *tags.Editor
	allowDelete bool
	placeholder string
	enabled     bool
	destroyed   bool
	seeding     bool
}

// Model is a Bubble Tea component that edits a host field as a list of
// tags.
type Model struct {
	id  int
	cfg Config
	st  *state

	focused bool
	width   int
}

// New binds a Model to host and seeds its tags from the host value.
func New(host Host, cfg Config) (Model, error) {
	if isNilHost(host) {
		return Model{}, ErrInvalidHost
	}

	cfg.KeyMap = normalizeKeyMap(cfg.KeyMap)
	st := &state{host: host}
	m := Model{id: nextID(), cfg: cfg, st: st, focused: true}
	if cfg.Disabled {
		return m, nil
	}

	opt := resolveOptions(host, cfg)
	onChange := cfg.OnChange
	opt.OnChange = func(ch tags.Change) {
		if st.host != nil {
			st.host.SetValue(ch.Value)
		}
		if onChange != nil {
			onChange(ch)
		}
	}
	if onSelect := cfg.OnSelect; onSelect != nil {
		opt.OnSelect = func(ev tags.SelectEvent) {
			if !st.seeding {
				onSelect(ev)
			}
		}
	}

	st.ed = tags.New(opt)
	st.allowDelete = cfg.AllowDelete != Off
	st.placeholder = resolvePlaceholder(host, cfg)
	m.seed()
	if !cfg.DisableEvents {
		st.enabled = true
	}
	return m, nil
}

// NewFromForm resolves the field called name and binds a Model to it.
func NewFromForm(f *form.Form, name string, cfg Config) (Model, error) {
	if f == nil {
		return Model{}, ErrInvalidHost
	}
	fd := f.Lookup(name)
	if fd == nil {
		return Model{}, fmt.Errorf("%w: %q", ErrHostNotFound, name)
	}
	return New(fd, cfg)
}

// Attach binds one independent Model to every field matching selector.
// An empty selector means form.DefaultSelector.
func Attach(f *form.Form, selector string, cfg Config) ([]Model, error) {
	if f == nil {
		return nil, ErrInvalidHost
	}
	fields, err := f.Query(selector)
	if err != nil {
		return nil, fmt.Errorf("attach: %w", err)
	}
	out := make([]Model, 0, len(fields))
	for _, fd := range fields {
		m, err := New(fd, cfg)
		if err != nil {
			return nil, fmt.Errorf("attach %q: %w", fd.Name, err)
		}
		out = append(out, m)
	}
	return out, nil
}

func isNilHost(h Host) bool {
	if h == nil {
		return true
	}
	v := reflect.ValueOf(h)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// seed loads the host value. The selection left by the commit is dropped
// without reporting it.
func (m Model) seed() {
	ed := m.st.ed
	m.st.seeding = true
	defer func() { m.st.seeding = false }()
	if ed.CommitPending(m.st.host.Value()) {
		ed.Select(uuid.Nil)
	}
}

func (m Model) Init() tea.Cmd { return nil }

// ID identifies the Model in messages it schedules for itself.
func (m Model) ID() int { return m.id }

func (m Model) Host() Host {
	if m.st == nil {
		return nil
	}
	return m.st.host
}

// Editor returns the underlying tag editor, or nil for a disabled Model.
func (m Model) Editor() *tags.Editor {
	if m.st == nil {
		return nil
	}
	return m.st.ed
}

func (m Model) Enabled() bool { return m.st != nil && m.st.enabled }

func (m Model) Destroyed() bool { return m.st != nil && m.st.destroyed }

// Enable turns interactive handling back on. Tags dropped by Disable are
// reseeded from the host value.
func (m Model) Enable() {
	st := m.st
	if st == nil || st.ed == nil || st.destroyed || st.enabled || m.cfg.DisableEvents {
		return
	}
	if st.ed.Len() == 0 {
		m.seed()
	}
	st.enabled = true
}

// Disable stops interactive handling and drops the tags. The host value
// keeps the last serialized list.
func (m Model) Disable() {
	st := m.st
	if st == nil || st.ed == nil || !st.enabled {
		return
	}
	st.ed.Reset()
	st.ed.Input().Clear()
	st.enabled = false
}

// Destroy tears the Model down and releases the host. Every later call is
// a no-op.
func (m Model) Destroy() {
	st := m.st
	if st == nil || st.destroyed {
		return
	}
	m.Disable()
	if st.ed != nil {
		st.ed.Reset()
	}
	st.host = nil
	st.destroyed = true
}

func (m Model) managed() bool { return m.st != nil && m.st.ed != nil && !m.st.destroyed }

func (m Model) interactive() bool { return m.managed() && m.st.enabled }

// Value returns the serialized tag list.
func (m Model) Value() string {
	switch {
	case m.st == nil || m.st.destroyed:
		return ""
	case m.st.ed == nil:
		return m.st.host.Value()
	default:
		return m.st.ed.Serialize()
	}
}

// SetValue replaces all tags with the ones parsed from v.
func (m Model) SetValue(v string) {
	if !m.managed() {
		return
	}
	m.st.ed.SetValue(v)
}

// Add commits raw fragments as tags, see tags.Editor.Add.
func (m Model) Add(raw ...string) bool {
	if !m.managed() {
		return false
	}
	return m.st.ed.Add(raw...)
}

// Remove removes the tag with id, see tags.Editor.Remove.
func (m Model) Remove(id uuid.UUID) bool {
	if !m.managed() {
		return false
	}
	return m.st.ed.Remove(id)
}

func (m Model) Tags() []tags.Tag {
	if !m.managed() {
		return nil
	}
	return m.st.ed.Tags()
}

func (m Model) Selected() (tags.Tag, bool) {
	if !m.managed() {
		return tags.Tag{}, false
	}
	return m.st.ed.Selected()
}

// Pending returns the typed but uncommitted text.
func (m Model) Pending() string {
	if !m.managed() {
		return ""
	}
	return m.st.ed.Input().Text()
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur unfocuses the Model and commits the pending input.
func (m Model) Blur() Model {
	if !m.focused {
		return m
	}
	m.focused = false
	if m.interactive() {
		m.st.ed.CommitPending()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// SetWidth sets the wrap width in cells. Zero disables wrapping.
func (m Model) SetWidth(width int) Model {
	if width < 0 {
		width = 0
	}
	m.width = width
	return m
}

func (m Model) Width() int { return m.width }
