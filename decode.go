package mfm

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// raw is the serialized shape of a parser node: {"type": ..., "props": {...}, "children": [...]}
type raw struct {
	Type     string         `json:"type" yaml:"type"`
	Props    map[string]any `json:"props" yaml:"props"`
	Children []raw          `json:"children" yaml:"children"`
}

// DecodeJSON reads node tree serialized by the markup parser as JSON.
func DecodeJSON(r io.Reader) ([]Node, error) {
	var nodes []raw
	if err := json.NewDecoder(r).Decode(&nodes); err != nil {
		return nil, fmt.Errorf("decode json tree: %w", err)
	}

	return convert(nodes), nil
}

// DecodeYAML reads node tree serialized as YAML, the shape is the same as for JSON.
func DecodeYAML(r io.Reader) ([]Node, error) {
	var nodes []raw
	if err := yaml.NewDecoder(r).Decode(&nodes); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode yaml tree: %w", err)
	}

	return convert(nodes), nil
}

func convert(nodes []raw) []Node {
	if len(nodes) == 0 {
		return nil
	}

	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.node())
	}

	return out
}

func (n raw) node() Node {
	children := convert(n.Children)

	switch Kind(n.Type) {
	case TextKind:
		return &Text{Text: n.str("text")}
	case BoldKind:
		return &Bold{Children: children}
	case ItalicKind:
		return &Italic{Children: children}
	case StrikeKind:
		return &Strike{Children: children}
	case SmallKind:
		return &Small{Children: children}
	case CenterKind:
		return &Center{Children: children}
	case QuoteKind:
		return &Quote{Children: children}
	case URLKind:
		return &URL{URL: n.str("url")}
	case LinkKind:
		return &Link{URL: n.str("url"), Silent: n.flag("silent"), Children: children}
	case MentionKind:
		return &Mention{Username: n.str("username"), Host: n.str("host"), Acct: n.str("acct")}
	case HashtagKind:
		return &Hashtag{Hashtag: n.str("hashtag")}
	case BlockCodeKind:
		return &BlockCode{Code: n.str("code"), Lang: n.str("lang")}
	case InlineCodeKind:
		return &InlineCode{Code: n.str("code")}
	case EmojiCodeKind:
		return &EmojiCode{Name: n.str("name")}
	case UnicodeEmojiKind:
		return &UnicodeEmoji{Emoji: n.str("emoji")}
	case MathInlineKind:
		return &MathInline{Formula: n.str("formula")}
	case MathBlockKind:
		return &MathBlock{Formula: n.str("formula")}
	case SearchKind:
		return &Search{Query: n.str("query"), Content: n.str("content")}
	case FnKind:
		return &Fn{Name: n.str("name"), Args: args(n.Props["args"]), Children: children}
	default:
		return &Unknown{Type: n.Type, Props: n.Props, Children: children}
	}
}

func (n raw) str(key string) string {
	switch v := n.Props[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func (n raw) flag(key string) bool {
	v, _ := n.Props[key].(bool)
	return v
}

// args accepts either an object (true for flags, strings for values) or textual form.
func args(v any) Args {
	switch v := v.(type) {
	case string:
		return ParseArgs(v)
	case map[string]any:
		out := Args{}
		for key, value := range v {
			switch value := value.(type) {
			case bool:
				if value {
					out[key] = FlagArg()
				}
			case string:
				out[key] = StringArg(value)
			case nil:
				out[key] = FlagArg()
			default:
				out[key] = StringArg(fmt.Sprint(value))
			}
		}

		return out
	default:
		return Args{}
	}
}
