package css

import (
	"strconv"
	"strings"
)

type Style struct {
	Properties map[string]string
}

func NewStyle() *Style {
	return &Style{Properties: make(map[string]string)}
}

func (s *Style) Get(property string) (string, bool) {
	val, ok := s.Properties[property]
	return val, ok
}

func (s *Style) Set(property, value string) {
	s.Properties[property] = value
}

func (s *Style) GetLength(property string) (float64, bool) {
	val, ok := s.Get(property)
	if !ok {
		return 0, false
	}
	return ParseLength(val)
}

// ParseLength parses a length value (e.g., "100px" or "100")
func ParseLength(val string) (float64, bool) {
	val = strings.TrimSpace(val)
	val = strings.TrimSuffix(val, "px")
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

// GetMargin returns the margin values for all four sides
func (s *Style) GetMargin() BoxEdge {
	return s.edge("margin")
}

// GetPadding returns the padding values for all four sides
func (s *Style) GetPadding() BoxEdge {
	return s.edge("padding")
}

func (s *Style) edge(prefix string) BoxEdge {
	return BoxEdge{
		Top:    s.getLengthOrZero(prefix + "-top"),
		Right:  s.getLengthOrZero(prefix + "-right"),
		Bottom: s.getLengthOrZero(prefix + "-bottom"),
		Left:   s.getLengthOrZero(prefix + "-left"),
	}
}

// getLengthOrZero returns the length value or 0 if not found
func (s *Style) getLengthOrZero(property string) float64 {
	val, ok := s.GetLength(property)
	if !ok {
		return 0
	}
	return val
}

type DisplayType string

const (
	DisplayBlock  DisplayType = "block"
	DisplayInline DisplayType = "inline"
)

// GetDisplay returns the display type (default: block). Values other than
// block and inline are reported as block since nothing else is laid out.
func (s *Style) GetDisplay() DisplayType {
	if d, ok := s.Get("display"); ok && strings.TrimSpace(d) == string(DisplayInline) {
		return DisplayInline
	}
	return DisplayBlock
}

// ParseDisplay validates a display keyword.
func ParseDisplay(val string) (DisplayType, bool) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "", string(DisplayBlock):
		return DisplayBlock, true
	case string(DisplayInline):
		return DisplayInline, true
	}
	return "", false
}

func ParseInlineStyle(styleAttr string) *Style {
	style := NewStyle()
	declarations := strings.Split(styleAttr, ";")
	for _, decl := range declarations {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		property := strings.TrimSpace(strings.ToLower(parts[0]))
		value := strings.TrimSpace(parts[1])

		expandShorthand(style, property, value)
	}
	return style
}

// expandShorthand expands shorthand CSS properties into individual properties
func expandShorthand(style *Style, property, value string) {
	switch property {
	case "margin", "padding":
		expandBoxProperty(style, property, value)
	default:
		style.Set(property, value)
	}
}

// expandBoxProperty expands margin/padding shorthand
// Supports: "10px" (all), "10px 20px" (vertical horizontal),
//
//	"10px 20px 30px" (top h bottom), "10px 20px 30px 40px" (t r b l)
func expandBoxProperty(style *Style, prefix, value string) {
	parts := strings.Fields(value)
	top, right, bottom, left, ok := expandSides(parts)
	if !ok {
		return
	}
	style.Set(prefix+"-top", top)
	style.Set(prefix+"-right", right)
	style.Set(prefix+"-bottom", bottom)
	style.Set(prefix+"-left", left)
}

// expandSides applies the CSS one-to-four value rule.
func expandSides[T any](parts []T) (top, right, bottom, left T, ok bool) {
	switch len(parts) {
	case 1:
		return parts[0], parts[0], parts[0], parts[0], true
	case 2:
		return parts[0], parts[1], parts[0], parts[1], true
	case 3:
		return parts[0], parts[1], parts[2], parts[1], true
	case 4:
		return parts[0], parts[1], parts[2], parts[3], true
	}
	return top, right, bottom, left, false
}
