package mfm

import "strings"

// String extracts text from fragments, line breaks become \n and markup is dropped.
func String(fragments []Fragment) string {
	var b strings.Builder
	for _, f := range fragments {
		writeString(&b, f)
	}

	return b.String()
}

func writeString(b *strings.Builder, f Fragment) {
	switch f := f.(type) {
	case TextFragment:
		b.WriteString(string(f))
	case *Element:
		if f.Tag == "br" {
			b.WriteString("\n")
			return
		}

		for _, child := range f.Children {
			writeString(b, child)
		}
	}
}
