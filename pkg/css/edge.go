package css

import "fmt"

// BoxEdge represents the four sides of a box (top, right, bottom, left).
// The same type carries margins and paddings; the zero value is all-zero.
type BoxEdge struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// NewBoxEdge returns an edge in CSS order: top, right, bottom, left.
func NewBoxEdge(top, right, bottom, left float64) BoxEdge {
	return BoxEdge{Top: top, Right: right, Bottom: bottom, Left: left}
}

// Uniform returns an edge with every side set to v.
func Uniform(v float64) BoxEdge {
	return BoxEdge{Top: v, Right: v, Bottom: v, Left: v}
}

// EdgeFromValues expands one to four values with the margin/padding
// shorthand rule. It reports false for any other count.
func EdgeFromValues(values []float64) (BoxEdge, bool) {
	top, right, bottom, left, ok := expandSides(values)
	if !ok {
		return BoxEdge{}, false
	}
	return NewBoxEdge(top, right, bottom, left), true
}

// Horizontal returns left + right.
func (e BoxEdge) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns top + bottom.
func (e BoxEdge) Vertical() float64 {
	return e.Top + e.Bottom
}

func (e BoxEdge) String() string {
	return fmt.Sprintf("{T:%g R:%g B:%g L:%g}", e.Top, e.Right, e.Bottom, e.Left)
}
