package layout

import (
	"go.uber.org/zap"
)

// flow recomputes the position of every child of e from scratch.
//
// The pen starts at the top-left of e's content area and is not advanced
// between children: block children differ only by their collapsing offset,
// so siblings overlap instead of stacking.
func (e *Element) flow() {
	penX := e.props.padding.Left
	penY := e.props.padding.Top

	// Bottom margin of the previous block child.
	var previousBottom float64
	havePrevious := false

	log := Logger()

	for i, child := range e.children {
		if !child.block {
			// Inline layout is not implemented; the child keeps whatever
			// position it already had.
			log.Debug("flow: inline child left unplaced",
				zap.String("parent", e.tagName),
				zap.String("child", child.tagName),
				zap.Int("index", i))
			continue
		}

		reference := e.props.margin.Top
		if havePrevious {
			reference = previousBottom
		}

		// Horizontal margins never collapse.
		penXOffset := 0.0
		penYOffset := collapseOffset(reference, child.props.margin.Top)

		child.props.setPosition(penX-penXOffset, penY-penYOffset)

		previousBottom = child.props.margin.Bottom
		havePrevious = true

		if ce := log.Check(zap.DebugLevel, "flow: placed block child"); ce != nil {
			ce.Write(
				zap.String("parent", e.tagName),
				zap.String("child", child.tagName),
				zap.Int("index", i),
				zap.Float64("reference", reference),
				zap.Float64("offset", penYOffset),
				zap.Float64("x", child.props.x),
				zap.Float64("y", child.props.y))
		}
	}
}
