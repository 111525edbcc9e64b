// Package render paints the box areas of a laid-out element tree onto an
// image: margin, padding and content, one fill each, plus an optional
// outline on the border edge. It is a debugging view of the geometry, not
// a page renderer.
package render
