package config

import (
	"fmt"
	"sort"
	"strings"
)

// RenderDefaultTOML renders a TOML config with defaults from GetConfigOptions.
func RenderDefaultTOML() string {
	var b strings.Builder
	b.WriteString("# mfm-render configuration (TOML)\n\n")

	topLevel := make([]ConfigOption, 0)
	sections := make(map[string][]ConfigOption)
	sectionOrder := make([]string, 0)

	for _, o := range GetConfigOptions() {
		if !strings.Contains(o.Key, ".") {
			topLevel = append(topLevel, o)
			continue
		}
		parts := strings.SplitN(o.Key, ".", 2)
		if _, ok := sections[parts[0]]; !ok {
			sectionOrder = append(sectionOrder, parts[0])
		}
		sections[parts[0]] = append(sections[parts[0]], ConfigOption{Key: parts[1], Default: o.Default, Comment: o.Comment})
	}

	// tables must follow plain keys, map options are written as their own tables
	for _, o := range topLevel {
		if _, ok := o.Default.(map[string]any); ok {
			continue
		}
		writeTOMLOption(&b, o.Key, o.Default, o.Comment)
	}

	for _, section := range sectionOrder {
		b.WriteString("[" + section + "]\n")
		for _, o := range sections[section] {
			writeTOMLOption(&b, o.Key, o.Default, o.Comment)
		}
	}

	for _, o := range topLevel {
		m, ok := o.Default.(map[string]any)
		if !ok {
			continue
		}
		if o.Comment != "" {
			b.WriteString("# " + o.Comment + "\n")
		}
		b.WriteString("[" + o.Key + "]\n")
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf("%s = \"%v\"\n", k, m[k]))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeTOMLOption(b *strings.Builder, key string, value any, comment string) {
	if comment != "" {
		b.WriteString("# " + comment + "\n")
	}
	switch v := value.(type) {
	case string:
		b.WriteString(fmt.Sprintf("%s = %q\n\n", key, v))
	case bool, int, int64, float64:
		b.WriteString(fmt.Sprintf("%s = %v\n\n", key, v))
	}
}
