package mfm

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const rel = "nofollow noopener noreferrer"

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

var std = NewRenderer(WithLogger(consoleLogger(os.Stderr)))

// Renderer transforms nodes into fragments. It holds no mutable state and is safe for
// concurrent use.
type Renderer struct {
	log     *zap.Logger
	formula FormulaRenderer
	emoji   EmojiRenderer
	router  Router
}

type Option func(*Renderer)

// WithLogger sets diagnostic channel for unrecognized nodes.
func WithLogger(log *zap.Logger) Option {
	return func(r *Renderer) {
		r.log = log
	}
}

func WithFormulaRenderer(f FormulaRenderer) Option {
	return func(r *Renderer) {
		r.formula = f
	}
}

func WithEmojiRenderer(e EmojiRenderer) Option {
	return func(r *Renderer) {
		r.emoji = e
	}
}

func WithRouter(router Router) Option {
	return func(r *Renderer) {
		r.router = router
	}
}

// NewRenderer creates renderer with placeholder collaborators. Diagnostics are discarded
// unless WithLogger is given.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		log:     zap.NewNop(),
		formula: PlaceholderFormula{},
		emoji:   CustomEmojiImages{},
		router:  PlaceholderRouter{},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render renders nodes with default renderer. Its diagnostics go to stderr at warn level,
// use NewRenderer with WithLogger to route them elsewhere.
func Render(nodes []Node, ctx Context) []Fragment {
	return std.Render(nodes, ctx)
}

// Render renders nodes in order, a single node may expand into several sibling fragments.
func (r *Renderer) Render(nodes []Node, ctx Context) []Fragment {
	var out []Fragment
	for _, node := range nodes {
		out = append(out, r.render(node, ctx)...)
	}

	return out
}

// RenderSource parses text and wraps rendered fragments into a single span. Empty text
// produces no element.
func (r *Renderer) RenderSource(text string, p Parser, ctx Context) (*Element, error) {
	if text == "" {
		return nil, nil
	}

	parse := p.Parse
	if ctx.Plain {
		parse = p.ParsePlain
	}

	nodes, err := parse(text)
	if err != nil {
		return nil, err
	}

	return el("span", r.Render(nodes, ctx)...), nil
}

func (r *Renderer) render(node Node, ctx Context) []Fragment {
	if isNil(node) {
		return r.unrecognized("<nil>")
	}

	switch n := node.(type) {
	case *Text:
		return r.renderText(n, ctx)
	case *Bold:
		return r.wrap(el("b"), n.Children, ctx)
	case *Strike:
		return r.wrap(el("del"), n.Children, ctx)
	case *Italic:
		return r.wrap(el("i").style("font-style", "oblique"), n.Children, ctx)
	case *Small:
		return r.wrap(el("small").style("opacity", "0.7"), n.Children, ctx)
	case *Center:
		return r.wrap(el("div").style("text-align", "center"), n.Children, ctx)
	case *Quote:
		tag := "div"
		if ctx.NoWrap {
			tag = "span"
		}

		return r.wrap(el(tag).attr("class", "quote"), n.Children, ctx)
	case *URL:
		return []Fragment{el("a", TextFragment(n.URL)).attr("href", n.URL).attr("rel", rel)}
	case *Link:
		return r.wrap(el("a").attr("href", n.URL).attr("rel", rel), n.Children, ctx)
	case *Mention:
		return []Fragment{r.renderMention(n, ctx)}
	case *Hashtag:
		a := el("a", TextFragment("#"+n.Hashtag)).
			attr("href", r.router.HashtagTarget(n.Hashtag)).
			style("color", "var(--hashtag)")

		return []Fragment{a}
	case *BlockCode:
		return []Fragment{el("code", TextFragment(n.Code)).attr("lang", n.Lang)}
	case *InlineCode:
		return []Fragment{el("code", TextFragment(n.Code)).attr("inline", "true")}
	case *EmojiCode:
		if !ctx.Plain {
			if f, ok := r.emoji.RenderEmoji(n.Name, ctx); ok {
				return []Fragment{f}
			}
		}

		return []Fragment{TextFragment(":" + n.Name + ":")}
	case *UnicodeEmoji:
		return []Fragment{TextFragment(n.Emoji)}
	case *MathInline:
		return []Fragment{r.formula.RenderFormula(n.Formula, false)}
	case *MathBlock:
		return []Fragment{r.formula.RenderFormula(n.Formula, true)}
	case *Search:
		return []Fragment{TextFragment(n.Query)}
	case *Fn:
		return []Fragment{r.renderFn(n, ctx)}
	case *Unknown:
		return r.unrecognized(n.Type)
	default:
		return r.unrecognized("<nil>")
	}
}

func (r *Renderer) renderText(node *Text, ctx Context) []Fragment {
	text := newlines.Replace(node.Text)

	if ctx.Plain {
		return []Fragment{TextFragment(strings.ReplaceAll(text, "\n", " "))}
	}

	var out []Fragment
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			out = append(out, lineBreak())
		}

		if line != "" {
			out = append(out, TextFragment(line))
		}
	}

	return out
}

func (r *Renderer) renderMention(node *Mention, ctx Context) *Element {
	class := "mention"
	if ctx.isViewer(node.Username, node.Host) {
		class += " me"
	}

	e := el("a", TextFragment("@"+node.Username)).
		attr("href", r.router.MentionTarget(node.Username, node.Host)).
		attr("class", class)

	// remote host stays out of the visible text
	if node.Host != "" {
		e.attr("title", "@"+node.Username+"@"+node.Host)
	}

	return e
}

// wrap renders children first and then places them into the element.
func (r *Renderer) wrap(e *Element, children []Node, ctx Context) []Fragment {
	e.Children = r.Render(children, ctx)
	return []Fragment{e}
}

func (r *Renderer) unrecognized(kind string) []Fragment {
	r.log.Warn("unrecognized node type", zap.String("type", kind))
	return nil
}

func consoleLogger(w io.Writer) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.WarnLevel))
}
