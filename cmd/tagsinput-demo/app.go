package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tagfield/form"
	"github.com/iw2rmb/tagfield/internal/logging"
	"github.com/iw2rmb/tagfield/tagsinput"
)

const (
	labelWidth  = 12
	headerLines = 2
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	labelStyle      = lipgloss.NewStyle().Width(labelWidth).Foreground(lipgloss.Color("245"))
	focusLabelStyle = labelStyle.Foreground(lipgloss.Color("212")).Bold(true)
	staticStyle     = lipgloss.NewStyle().Faint(true)
)

// field is a tags input bound to the named form field.
type field struct {
	name  string
	model tagsinput.Model
}

type appKeyMap struct {
	Prev, NextField key.Binding
	Submit, Quit    key.Binding
	Help            key.Binding

	Field tagsinput.KeyMap
}

func defaultAppKeyMap(field tagsinput.KeyMap) appKeyMap {
	return appKeyMap{
		Prev:      key.NewBinding(key.WithKeys("up", "shift+tab"), key.WithHelp("↑", "previous field")),
		NextField: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next field")),
		Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		Quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
		Help:      key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "more keys")),
		Field:     field,
	}
}

func (km appKeyMap) ShortHelp() []key.Binding {
	return append([]key.Binding{km.Submit, km.Quit, km.Help}, km.Field.ShortHelp()...)
}

func (km appKeyMap) FullHelp() [][]key.Binding {
	return append(km.Field.FullHelp(),
		[]key.Binding{km.Prev, km.NextField},
		[]key.Binding{km.Submit, km.Quit, km.Help},
	)
}

// app is the demo program: a form with one tags input per matching field.
type app struct {
	form   *form.Form
	fields []field
	focus  int

	keys appKeyMap
	help help.Model
	log  *logging.Logger

	width     int
	submitted bool
}

func newApp(f *form.Form, fields []field, log *logging.Logger) app {
	for i := range fields {
		if i == 0 {
			fields[i].model = fields[i].model.Focus()
			continue
		}
		fields[i].model = fields[i].model.Blur()
	}
	return app{
		form:   f,
		fields: fields,
		keys:   defaultAppKeyMap(tagsinput.DefaultKeyMap()),
		help:   help.New(),
		log:    log,
	}
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.help.Width = msg.Width
		for i := range a.fields {
			a.fields[i].model = a.fields[i].model.SetWidth(max(msg.Width-labelWidth, 0))
		}
		return a, nil

	case tea.KeyMsg:
		a.log.Debug().Str("key", msg.String()).Int("focus", a.focus).Msg("key")
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Submit):
			a = a.blurAll()
			a.submitted = true
			a.log.Info().Str("body", a.form.Encode()).Msg("submit")
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			return a, nil
		case key.Matches(msg, a.keys.Prev):
			return a.move(-1), nil
		case key.Matches(msg, a.keys.NextField):
			return a.move(1), nil
		case key.Matches(msg, a.keys.Field.Next) && a.current().model.Pending() == "":
			return a.move(1), nil
		}
		return a.updateFocused(msg)

	case tea.MouseMsg:
		return a.updateMouse(msg)
	}

	// Anything else, pending paste commits included, goes to every field.
	var cmds []tea.Cmd
	for i := range a.fields {
		var cmd tea.Cmd
		a.fields[i].model, cmd = a.fields[i].model.Update(msg)
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

func (a app) current() field {
	if len(a.fields) == 0 {
		return field{}
	}
	return a.fields[a.focus]
}

func (a app) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(a.fields) == 0 {
		return a, nil
	}
	var cmd tea.Cmd
	a.fields[a.focus].model, cmd = a.fields[a.focus].model.Update(msg)
	return a, cmd
}

// move focuses the field delta steps away, wrapping around.
func (a app) move(delta int) app {
	n := len(a.fields)
	if n == 0 {
		return a
	}
	a.fields[a.focus].model = a.fields[a.focus].model.Blur()
	a.focus = ((a.focus+delta)%n + n) % n
	a.fields[a.focus].model = a.fields[a.focus].model.Focus()
	return a
}

func (a app) blurAll() app {
	for i := range a.fields {
		a.fields[i].model = a.fields[i].model.Blur()
	}
	return a
}

// block is one rendered form row.
type block struct {
	field int // index into app.fields, -1 for static rows
	top   int
	text  string
}

func (a app) blocks() []block {
	index := make(map[string]int, len(a.fields))
	for i, fd := range a.fields {
		index[fd.name] = i
	}

	var out []block
	top := headerLines
	for _, fd := range a.form.Fields {
		b := block{field: -1, top: top}
		if i, ok := index[fd.Name]; ok {
			ls := labelStyle
			if i == a.focus {
				ls = focusLabelStyle
			}
			b.field = i
			b.text = lipgloss.JoinHorizontal(lipgloss.Top, ls.Render(fd.Name), a.fields[i].model.View())
		} else {
			b.text = labelStyle.Render(fd.Name) + staticStyle.Render(fd.Value())
		}
		out = append(out, b)
		top += lipgloss.Height(b.text)
	}
	return out
}

// updateMouse routes a click to the field under it, translated into that
// field's coordinates.
func (a app) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	for _, b := range a.blocks() {
		if b.field < 0 || msg.Y < b.top || msg.Y >= b.top+lipgloss.Height(b.text) {
			continue
		}
		if msg.X < labelWidth {
			return a, nil
		}
		if msg.Action == tea.MouseActionPress && b.field != a.focus {
			a = a.move(b.field - a.focus)
		}
		msg.X -= labelWidth
		msg.Y -= b.top
		var cmd tea.Cmd
		a.fields[b.field].model, cmd = a.fields[b.field].model.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a app) View() string {
	var sb strings.Builder
	title := "tagsinput-demo"
	if a.form.Action != "" {
		title += " → " + a.form.Action
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString(strings.Repeat("\n", headerLines))
	for _, b := range a.blocks() {
		sb.WriteString(b.text)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(a.help.View(a.keys))
	return sb.String()
}
