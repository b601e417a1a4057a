package mfm

import "strconv"

// Parser turns raw markup into nodes. Full mode recognizes all markup, plain mode
// only text and emoji.
type Parser interface {
	Parse(text string) ([]Node, error)
	ParsePlain(text string) ([]Node, error)
}

// FormulaRenderer renders math formula, block formulas are laid out on their own line.
type FormulaRenderer interface {
	RenderFormula(formula string, block bool) Fragment
}

// EmojiRenderer resolves :name: against active custom emoji set, reports false when
// the name is unknown.
type EmojiRenderer interface {
	RenderEmoji(name string, ctx Context) (Fragment, bool)
}

// Router resolves mention and hashtag targets.
type Router interface {
	MentionTarget(username, host string) string
	HashtagTarget(tag string) string
}

type FormulaRendererFunc func(formula string, block bool) Fragment

func (f FormulaRendererFunc) RenderFormula(formula string, block bool) Fragment {
	return f(formula, block)
}

// PlaceholderFormula emits mk-formula element for the host to mount formula component on.
type PlaceholderFormula struct{}

func (PlaceholderFormula) RenderFormula(formula string, block bool) Fragment {
	return el("mk-formula").
		attr("formula", formula).
		attr("block", strconv.FormatBool(block))
}

// CustomEmojiImages resolves emoji from Context.CustomEmojis into img elements.
type CustomEmojiImages struct{}

func (CustomEmojiImages) RenderEmoji(name string, ctx Context) (Fragment, bool) {
	emoji, ok := ctx.emoji(name)
	if !ok || emoji.URL == "" {
		return nil, false
	}

	return el("img").
		attr("class", "custom-emoji").
		attr("src", emoji.URL).
		attr("alt", ":"+name+":").
		attr("title", ":"+name+":"), true
}

// PlaceholderRouter leaves targets for the host to resolve.
type PlaceholderRouter struct{}

func (PlaceholderRouter) MentionTarget(string, string) string { return "#" }
func (PlaceholderRouter) HashtagTarget(string) string         { return "#" }
