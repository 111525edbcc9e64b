package layout

// Snapshot captures the geometry of root and its subtree.
func Snapshot(root *Element) Geometry {
	g := geometryOf(root)
	if len(root.children) > 0 {
		g.Children = make([]Geometry, len(root.children))
		for i, c := range root.children {
			g.Children[i] = Snapshot(c)
		}
	}
	return g
}

func geometryOf(e *Element) Geometry {
	return Geometry{
		Tag:             e.tagName,
		Block:           e.block,
		X:               e.X(),
		Y:               e.Y(),
		RelativeX:       e.RelativeX(),
		RelativeY:       e.RelativeY(),
		ContentX:        e.ContentX(),
		ContentY:        e.ContentY(),
		Width:           e.Width(),
		Height:          e.Height(),
		EffectiveWidth:  e.EffectiveWidth(),
		EffectiveHeight: e.EffectiveHeight(),
	}
}
