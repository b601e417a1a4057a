package mfm

// Fragment is a unit of rendered output: TextFragment or *Element.
type Fragment interface {
	fragment()
}

// TextFragment is a plain run of text.
type TextFragment string

// Element is a tag with attributes, inline style and child fragments.
type Element struct {
	Tag      string
	Attrs    map[string]string
	Style    Style
	Children []Fragment
}

func (TextFragment) fragment() {}
func (*Element) fragment()     {}

func el(tag string, children ...Fragment) *Element {
	return &Element{Tag: tag, Children: children}
}

func (e *Element) attr(key, value string) *Element {
	if e.Attrs == nil {
		e.Attrs = map[string]string{}
	}

	e.Attrs[key] = value
	return e
}

func (e *Element) style(property, value string) *Element {
	e.Style = e.Style.Set(property, value)
	return e
}

func (e *Element) Attr(key string) string {
	return e.Attrs[key]
}

func lineBreak() *Element {
	return el("br")
}
