package layout

import (
	"nematode/pkg/css"
)

// collapseOffset returns how far a block child is pulled up when its top
// margin adjoins a reference margin (the parent's top margin, or the
// previous sibling's bottom margin). Adjoining margins collapse to the
// larger of the two: when the reference is at least as large the child's
// margin is absorbed whole, otherwise only the excess over the reference
// survives.
func collapseOffset(reference, childTop float64) float64 {
	if reference >= childTop {
		return childTop
	}
	return childTop - reference
}

// RelativizeMargins reduces each side of m by the matching side of other,
// flooring at zero. The flow pass does not use it.
func RelativizeMargins(m *css.BoxEdge, other css.BoxEdge) {
	m.Top = relativizeSide(m.Top, other.Top)
	m.Right = relativizeSide(m.Right, other.Right)
	m.Bottom = relativizeSide(m.Bottom, other.Bottom)
	m.Left = relativizeSide(m.Left, other.Left)
}

func relativizeSide(side, other float64) float64 {
	if other >= side {
		return 0
	}
	return side - other
}
