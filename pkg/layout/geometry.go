package layout

// X returns the screen-space x of the element's border edge: its relative x
// plus the relative x of every ancestor. For a root it equals RelativeX.
func (e *Element) X() float64 {
	x := 0.0
	for n := e; n != nil; n = n.parent {
		x += n.RelativeX()
	}
	return x
}

// Y is the vertical counterpart of X.
func (e *Element) Y() float64 {
	y := 0.0
	for n := e; n != nil; n = n.parent {
		y += n.RelativeY()
	}
	return y
}

// RelativeX returns the border-edge x relative to the parent: the stored
// margin-edge position plus the left margin.
func (e *Element) RelativeX() float64 {
	return e.props.x + e.props.margin.Left
}

// RelativeY returns the stored y plus the top margin.
func (e *Element) RelativeY() float64 {
	return e.props.y + e.props.margin.Top
}

// ContentX returns the screen-space x where content starts.
func (e *Element) ContentX() float64 {
	return e.X() + e.props.padding.Left
}

// ContentY is measured from RelativeY, not Y, so for a child it is relative
// to the parent. ContentX is screen-space.
func (e *Element) ContentY() float64 {
	return e.RelativeY() + e.props.padding.Top
}

// Width returns content width plus horizontal padding. Margin is excluded;
// see EffectiveWidth.
func (e *Element) Width() float64 {
	return e.props.width + e.props.padding.Horizontal()
}

// EffectiveWidth is Width plus horizontal margin.
func (e *Element) EffectiveWidth() float64 {
	return e.Width() + e.props.margin.Horizontal()
}

// Height returns content height plus vertical padding.
func (e *Element) Height() float64 {
	return e.props.height + e.props.padding.Vertical()
}

// EffectiveHeight is Height plus vertical margin.
func (e *Element) EffectiveHeight() float64 {
	return e.Height() + e.props.margin.Vertical()
}
