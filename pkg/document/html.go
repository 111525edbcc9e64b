package document

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// skipped elements never produce boxes.
var skipped = map[atom.Atom]bool{
	atom.Head:     true,
	atom.Script:   true,
	atom.Style:    true,
	atom.Template: true,
	atom.Title:    true,
	atom.Meta:     true,
	atom.Link:     true,
}

// DecodeHTML parses markup and returns the <body> subtree. Geometry comes
// from each element's style attribute; text is ignored.
func DecodeHTML(r io.Reader) (Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Node{}, fmt.Errorf("parse html: %w", err)
	}
	body := findBody(doc)
	if body == nil {
		return Node{}, fmt.Errorf("parse html: no body element")
	}
	return fromHTML(body), nil
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

func fromHTML(n *html.Node) Node {
	out := Node{Tag: strings.ToLower(n.Data)}
	var presentational, style string
	for _, a := range n.Attr {
		switch strings.ToLower(a.Key) {
		case "style":
			style = a.Val
		case "width", "height":
			presentational += a.Key + ": " + a.Val + ";"
		}
	}
	// Later declarations win, so the style attribute overrides.
	out.Style = presentational + style
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || skipped[c.DataAtom] {
			continue
		}
		out.Children = append(out.Children, fromHTML(c))
	}
	return out
}
