package tagsinput

import "strings"

func (m Model) View() string {
	switch {
	case m.st == nil || m.st.destroyed:
		return ""
	case m.st.ed == nil:
		return m.cfg.Style.Disabled.Render(m.st.host.Value())
	}

	lay := m.computeLayout()
	rows := make([][]string, lay.rows)
	for _, c := range lay.chips {
		rows[c.row] = append(rows[c.row], c.label+c.del)
	}
	rows[lay.input.row] = append(rows[lay.input.row], lay.input.text)

	lines := make([]string, len(rows))
	for i, items := range rows {
		lines[i] = strings.Join(items, strings.Repeat(" ", itemGap))
	}
	return strings.Join(lines, "\n")
}
