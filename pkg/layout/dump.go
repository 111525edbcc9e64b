package layout

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes one line per element, indented by depth.
func Dump(w io.Writer, root *Element) error {
	var err error
	Walk(root, func(e *Element, depth int) bool {
		if err != nil {
			return false
		}
		kind := ""
		if !e.block {
			kind = " inline"
		}
		_, err = fmt.Fprintf(w, "%s<%s>%s pos=(%g,%g) rel=(%g,%g) content=(%g,%g) size=(%gx%g) effective=(%gx%g)\n",
			strings.Repeat("  ", depth), e.tagName, kind,
			e.X(), e.Y(), e.RelativeX(), e.RelativeY(), e.ContentX(), e.ContentY(),
			e.Width(), e.Height(), e.EffectiveWidth(), e.EffectiveHeight())
		return err == nil
	})
	return err
}
