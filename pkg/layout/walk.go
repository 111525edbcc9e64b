package layout

// Walk visits root and its descendants in document order. fn receives the
// depth below root; returning false skips that element's subtree.
func Walk(root *Element, fn func(e *Element, depth int) bool) {
	if root == nil {
		return
	}
	type frame struct {
		e     *Element
		depth int
	}
	stack := []frame{{root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(f.e, f.depth) {
			continue
		}
		// Push in reverse so the first child is visited first.
		for i := len(f.e.children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.e.children[i], f.depth + 1})
		}
	}
}

// Root returns the topmost ancestor of e.
func Root(e *Element) *Element {
	for e.parent != nil {
		e = e.parent
	}
	return e
}

// Depth returns the number of ancestors of e.
func Depth(e *Element) int {
	d := 0
	for p := e.parent; p != nil; p = p.parent {
		d++
	}
	return d
}
