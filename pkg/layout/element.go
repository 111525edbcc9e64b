package layout

import (
	"errors"
	"fmt"
)

var (
	ErrNilElement      = errors.New("layout: nil element")
	ErrAlreadyAttached = errors.New("layout: element already has a parent")
	ErrCycle           = errors.New("layout: element is the parent or one of its ancestors")
)

// NewElement creates a detached block element. A nil props gives all-zero
// geometry.
func NewElement(tagName string, props *Properties) *Element {
	if props == nil {
		props = &Properties{}
	}
	return &Element{
		tagName: tagName,
		props:   props,
		block:   true,
	}
}

func (e *Element) TagName() string {
	return e.tagName
}

func (e *Element) Properties() *Properties {
	return e.props
}

// Parent returns nil for a root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns the children in document order. The slice is a copy.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

func (e *Element) IsBlock() bool {
	return e.block
}

// SetBlock switches between block and inline. Inline children are skipped
// by the flow pass. The change is picked up the next time the parent
// reflows.
func (e *Element) SetBlock(block bool) {
	e.block = block
}

// AddChild sets the child's parent, appends it and reflows every child of e.
func (e *Element) AddChild(child *Element) {
	child.parent = e
	e.children = append(e.children, child)

	e.flow()
}

// Attach is AddChild with the single-parent and acyclic rules checked first.
func Attach(parent, child *Element) error {
	if parent == nil || child == nil {
		return ErrNilElement
	}
	if child.parent != nil {
		return fmt.Errorf("attach <%s> to <%s>: %w", child.tagName, parent.tagName, ErrAlreadyAttached)
	}
	for p := parent; p != nil; p = p.parent {
		if p == child {
			return fmt.Errorf("attach <%s> to <%s>: %w", child.tagName, parent.tagName, ErrCycle)
		}
	}
	parent.AddChild(child)
	return nil
}
