package mfm

import "reflect"

// Kind is the type tag the markup parser assigns to a node.
type Kind string

const (
	TextKind         Kind = "text"
	BoldKind         Kind = "bold"
	ItalicKind       Kind = "italic"
	StrikeKind       Kind = "strike"
	SmallKind        Kind = "small"
	CenterKind       Kind = "center"
	QuoteKind        Kind = "quote"
	URLKind          Kind = "url"
	LinkKind         Kind = "link"
	MentionKind      Kind = "mention"
	HashtagKind      Kind = "hashtag"
	BlockCodeKind    Kind = "blockCode"
	InlineCodeKind   Kind = "inlineCode"
	EmojiCodeKind    Kind = "emojiCode"
	UnicodeEmojiKind Kind = "unicodeEmoji"
	MathInlineKind   Kind = "mathInline"
	MathBlockKind    Kind = "mathBlock"
	SearchKind       Kind = "search"
	FnKind           Kind = "fn"
)

// Node is one parsed unit of the markup tree. The set of implementations is closed,
// anything the parser produces outside of it arrives as *Unknown.
type Node interface {
	Kind() Kind
	node()
}

type Text struct {
	Text string
}

type Bold struct {
	Children []Node
}

type Italic struct {
	Children []Node
}

type Strike struct {
	Children []Node
}

type Small struct {
	Children []Node
}

type Center struct {
	Children []Node
}

type Quote struct {
	Children []Node
}

type URL struct {
	URL string
}

type Link struct {
	URL      string
	Silent   bool
	Children []Node
}

type Mention struct {
	Username string
	Host     string // empty for local users
	Acct     string
}

type Hashtag struct {
	Hashtag string
}

type BlockCode struct {
	Code string
	Lang string
}

type InlineCode struct {
	Code string
}

type EmojiCode struct {
	Name string
}

type UnicodeEmoji struct {
	Emoji string
}

type MathInline struct {
	Formula string
}

type MathBlock struct {
	Formula string
}

type Search struct {
	Query   string
	Content string
}

// Fn applies a named visual effect to its children.
type Fn struct {
	Name     string
	Args     Args
	Children []Node
}

// Unknown carries a node whose type tag is not recognized, it renders to nothing.
type Unknown struct {
	Type     string
	Props    map[string]any
	Children []Node
}

func (*Text) Kind() Kind         { return TextKind }
func (*Bold) Kind() Kind         { return BoldKind }
func (*Italic) Kind() Kind       { return ItalicKind }
func (*Strike) Kind() Kind       { return StrikeKind }
func (*Small) Kind() Kind        { return SmallKind }
func (*Center) Kind() Kind       { return CenterKind }
func (*Quote) Kind() Kind        { return QuoteKind }
func (*URL) Kind() Kind          { return URLKind }
func (*Link) Kind() Kind         { return LinkKind }
func (*Mention) Kind() Kind      { return MentionKind }
func (*Hashtag) Kind() Kind      { return HashtagKind }
func (*BlockCode) Kind() Kind    { return BlockCodeKind }
func (*InlineCode) Kind() Kind   { return InlineCodeKind }
func (*EmojiCode) Kind() Kind    { return EmojiCodeKind }
func (*UnicodeEmoji) Kind() Kind { return UnicodeEmojiKind }
func (*MathInline) Kind() Kind   { return MathInlineKind }
func (*MathBlock) Kind() Kind    { return MathBlockKind }
func (*Search) Kind() Kind       { return SearchKind }
func (*Fn) Kind() Kind           { return FnKind }
func (n *Unknown) Kind() Kind    { return Kind(n.Type) }

func (*Text) node()         {}
func (*Bold) node()         {}
func (*Italic) node()       {}
func (*Strike) node()       {}
func (*Small) node()        {}
func (*Center) node()       {}
func (*Quote) node()        {}
func (*URL) node()          {}
func (*Link) node()         {}
func (*Mention) node()      {}
func (*Hashtag) node()      {}
func (*BlockCode) node()    {}
func (*InlineCode) node()   {}
func (*EmojiCode) node()    {}
func (*UnicodeEmoji) node() {}
func (*MathInline) node()   {}
func (*MathBlock) node()    {}
func (*Search) node()       {}
func (*Fn) node()           {}
func (*Unknown) node()      {}

// Children returns child nodes of container kinds, nil for leaves.
func Children(node Node) []Node {
	if isNil(node) {
		return nil
	}

	switch n := node.(type) {
	case *Bold:
		return n.Children
	case *Italic:
		return n.Children
	case *Strike:
		return n.Children
	case *Small:
		return n.Children
	case *Center:
		return n.Children
	case *Quote:
		return n.Children
	case *Link:
		return n.Children
	case *Fn:
		return n.Children
	case *Unknown:
		return n.Children
	default:
		return nil
	}
}

// Walk visits nodes depth-first, parents before children. Nil nodes are skipped.
func Walk(nodes []Node, visit func(Node)) {
	for _, node := range nodes {
		if isNil(node) {
			continue
		}

		visit(node)
		Walk(Children(node), visit)
	}
}

// isNil reports whether node is nil, including a nil pointer of any variant.
func isNil(node Node) bool {
	if node == nil {
		return true
	}

	v := reflect.ValueOf(node)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
