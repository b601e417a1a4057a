// Package term paints rendered fragments for a terminal. Animations and transforms
// have no terminal equivalent and are dropped, their content is kept.
package term

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/eolymp/go-mfm"
)

const DefaultWidth = 80

type Painter struct {
	styles map[string]lipgloss.Style
}

// New creates painter which detects color support of w.
func New(w io.Writer, width int) *Painter {
	if width <= 0 {
		width = DefaultWidth
	}

	r := lipgloss.NewRenderer(w)

	return &Painter{styles: map[string]lipgloss.Style{
		"b":       r.NewStyle().Bold(true),
		"i":       r.NewStyle().Italic(true),
		"del":     r.NewStyle().Strikethrough(true),
		"small":   r.NewStyle().Faint(true),
		"blur":    r.NewStyle().Faint(true),
		"a":       r.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
		"code":    r.NewStyle().Foreground(lipgloss.Color("220")).Background(lipgloss.Color("237")),
		"formula": r.NewStyle().Foreground(lipgloss.Color("141")),
		"center":  r.NewStyle().Width(width).Align(lipgloss.Center),
		"quote": r.NewStyle().
			Foreground(lipgloss.Color("245")).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("245")).
			PaddingLeft(1),
	}}
}

func (p *Painter) Paint(fragments []mfm.Fragment) string {
	var b strings.Builder
	for _, f := range fragments {
		b.WriteString(p.paint(f))
	}

	return b.String()
}

// Write paints fragments into w followed by a newline.
func (p *Painter) Write(w io.Writer, fragments []mfm.Fragment) error {
	_, err := io.WriteString(w, p.Paint(fragments)+"\n")
	return err
}

func (p *Painter) paint(f mfm.Fragment) string {
	e, ok := f.(*mfm.Element)
	if !ok {
		if t, ok := f.(mfm.TextFragment); ok {
			return string(t)
		}

		return ""
	}

	switch e.Tag {
	case "br":
		return "\n"
	case "img":
		return e.Attr("alt")
	case "mk-formula":
		delimiter := "$"
		if e.Attr("block") == "true" {
			delimiter = "$$"
		}

		return p.styles["formula"].Render(delimiter + e.Attr("formula") + delimiter)
	}

	inner := p.Paint(e.Children)
	if style, ok := p.styles[key(e)]; ok {
		return style.Render(inner)
	}

	return inner
}

func key(e *mfm.Element) string {
	for _, class := range strings.Fields(e.Attr("class")) {
		switch class {
		case "quote":
			return "quote"
		case "_mfm_blur_":
			return "blur"
		}
	}

	if e.Style.Get("text-align") == "center" {
		return "center"
	}

	return e.Tag
}
