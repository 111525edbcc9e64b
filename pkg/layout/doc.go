// Package layout computes screen geometry for a tree of block elements.
//
// Each [Element] owns [Properties]: a margin-edge position relative to its
// parent, a content size, a margin and a padding. Attaching a child with
// [Element.AddChild] reflows every child of the parent, collapsing each
// block child's top margin against the parent's top margin (first child)
// or the previous block sibling's bottom margin.
//
// Coordinates come in four families:
//
//   - relative: border edge relative to the parent ([Element.RelativeX])
//   - absolute: relative offsets summed up to the root ([Element.X])
//   - content: absolute x plus left padding, relative y plus top padding
//   - effective: sizes including margin ([Element.EffectiveWidth])
//
// The flow pass does not stack siblings by height and does not lay out
// inline children.
package layout
