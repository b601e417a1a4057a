package mfm

import "strings"

// Declaration is a single CSS property and value pair.
type Declaration struct {
	Property string
	Value    string
}

// Style is an ordered list of declarations, serialized once by String.
type Style []Declaration

// Set replaces value of the property or appends it.
func (s Style) Set(property, value string) Style {
	for i := range s {
		if s[i].Property == property {
			s[i].Value = value
			return s
		}
	}

	return append(s, Declaration{Property: property, Value: value})
}

func (s Style) Get(property string) string {
	for _, d := range s {
		if d.Property == property {
			return d.Value
		}
	}

	return ""
}

func (s Style) String() string {
	parts := make([]string, 0, len(s))
	for _, d := range s {
		parts = append(parts, d.Property+": "+d.Value+";")
	}

	return strings.Join(parts, " ")
}
