package tagsinput

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tagfield/internal/grapheme"
	"github.com/iw2rmb/tagfield/tags"
)

const (
	deleteGlyph = "×"
	ellipsis    = "…"
	itemGap     = 1
)

// chipBox is a rendered tag placed on the component grid.
type chipBox struct {
	index int
	row   int
	x     int

	label string // rendered tag text
	del   string // rendered delete target, empty when deletes are off

	labelW int
	delW   int
}

func (c chipBox) width() int { return c.labelW + c.delW }

// inputBox is the rendered pending input.
type inputBox struct {
	row int
	x   int

	text  string
	width int

	// cells[i] is the starting cell of cluster i relative to x.
	cells []int
}

type layout struct {
	chips []chipBox
	input inputBox
	rows  int
}

// computeLayout places chips then the input left to right, wrapping at the
// model width. A zero width never wraps.
func (m Model) computeLayout() layout {
	var lay layout
	if !m.managed() {
		return lay
	}
	ed := m.st.ed
	st := m.cfg.Style
	sel := ed.SelectedIndex()

	row, x := 0, 0
	place := func(w int) (int, int) {
		if m.width > 0 && x > 0 && x+w > m.width {
			row++
			x = 0
		}
		r, c := row, x
		x += w + itemGap
		return r, c
	}

	for i, t := range ed.Tags() {
		tagStyle, delStyle := st.Tag, st.Delete
		if i == sel {
			tagStyle, delStyle = st.TagActive, st.DeleteActive
		}

		box := chipBox{index: i}
		if m.st.allowDelete {
			box.del = delStyle.Render(deleteGlyph)
			box.delW = lipgloss.Width(box.del)
		}
		box.label = tagStyle.Render(m.fitLabel(t, tagStyle, box.delW))
		box.labelW = lipgloss.Width(box.label)
		box.row, box.x = place(box.width())
		lay.chips = append(lay.chips, box)
	}

	lay.input = m.renderInput()
	lay.input.row, lay.input.x = place(lay.input.width)
	lay.rows = row + 1
	return lay
}

// fitLabel truncates a tag so that its chip fits the model width.
func (m Model) fitLabel(t tags.Tag, st lipgloss.Style, delW int) string {
	if m.width <= 0 {
		return t.Text
	}
	room := m.width - st.GetHorizontalFrameSize() - delW
	if room < 1 {
		room = 1
	}
	return grapheme.Truncate(t.Text, room, ellipsis)
}

func (m Model) renderInput() inputBox {
	st := m.cfg.Style
	in := m.st.ed.Input()
	showCursor := m.focused && m.st.enabled

	if in.Empty() {
		ph := m.st.placeholder
		if !showCursor {
			r := st.Placeholder.Render(ph)
			return inputBox{text: r, width: lipgloss.Width(r)}
		}
		clusters := grapheme.Split(ph)
		head, rest := " ", ""
		if len(clusters) > 0 {
			head, rest = clusters[0], grapheme.Join(clusters[1:])
		}
		r := st.Cursor.Render(head) + st.Placeholder.Render(rest)
		return inputBox{text: r, width: lipgloss.Width(r), cells: []int{0}}
	}

	clusters := in.Clusters()
	caret := in.Caret()
	cells := make([]int, 0, len(clusters)+1)
	var out string
	w := 0
	for i, c := range clusters {
		cells = append(cells, w)
		w += grapheme.Width(c)
		if showCursor && i == caret {
			out += st.Cursor.Render(c)
			continue
		}
		out += st.Text.Render(c)
	}
	cells = append(cells, w)
	if showCursor && caret >= len(clusters) {
		out += st.Cursor.Render(" ")
		w++
	}
	return inputBox{text: out, width: w, cells: cells}
}

// caretForCell maps a cell offset inside the input to a caret position.
func (b inputBox) caretForCell(cell int) int {
	if len(b.cells) == 0 {
		return 0
	}
	for i := 1; i < len(b.cells); i++ {
		if cell < b.cells[i] {
			return i - 1
		}
	}
	return len(b.cells) - 1
}
