package mfm

import (
	"io"
	"sort"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// WriteHTML serializes fragments as HTML, text and attribute values are escaped.
func WriteHTML(w io.Writer, fragments []Fragment) error {
	for _, f := range fragments {
		node := HTMLNode(f)
		if node == nil {
			continue
		}

		if err := html.Render(w, node); err != nil {
			return err
		}
	}

	return nil
}

// HTMLNode converts fragment into html node tree. Attributes are emitted in key order,
// style goes last.
func HTMLNode(f Fragment) *html.Node {
	switch f := f.(type) {
	case TextFragment:
		return &html.Node{Type: html.TextNode, Data: string(f)}
	case *Element:
		node := &html.Node{Type: html.ElementNode, Data: f.Tag, DataAtom: atom.Lookup([]byte(f.Tag))}

		keys := make([]string, 0, len(f.Attrs))
		for key := range f.Attrs {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		for _, key := range keys {
			node.Attr = append(node.Attr, html.Attribute{Key: key, Val: f.Attrs[key]})
		}

		if len(f.Style) > 0 {
			node.Attr = append(node.Attr, html.Attribute{Key: "style", Val: f.Style.String()})
		}

		for _, child := range f.Children {
			if c := HTMLNode(child); c != nil {
				node.AppendChild(c)
			}
		}

		return node
	default:
		return nil
	}
}
