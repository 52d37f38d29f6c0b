package tagsinput

type hitKind uint8

const (
	hitNone hitKind = iota
	hitBlank
	hitChip
	hitDelete
	hitInput
)

type hit struct {
	kind  hitKind
	index int // chip index for hitChip and hitDelete
	caret int // caret position for hitInput
}

// hitTest maps component-local cell coordinates to what was clicked.
//
// (0,0) is the top-left cell of View(). Hosts that place the component
// elsewhere translate mouse coordinates before calling Update.
func (m Model) hitTest(x, y int) hit {
	if x < 0 || y < 0 || (m.width > 0 && x >= m.width) {
		return hit{}
	}
	lay := m.computeLayout()
	if y >= lay.rows {
		return hit{}
	}

	for _, c := range lay.chips {
		if c.row != y || x < c.x || x >= c.x+c.width() {
			continue
		}
		if c.delW > 0 && x >= c.x+c.labelW {
			return hit{kind: hitDelete, index: c.index}
		}
		return hit{kind: hitChip, index: c.index}
	}

	in := lay.input
	if in.row == y && x >= in.x {
		return hit{kind: hitInput, caret: in.caretForCell(x - in.x)}
	}
	return hit{kind: hitBlank}
}
