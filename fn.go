package mfm

// effect translates fn arguments into style declarations, false means arguments do not
// describe any effect and fn should render literally.
type effect func(args Args) (Style, bool)

var effects = map[string]effect{
	"tada": func(Args) (Style, bool) {
		return Style{{"font-size", "150%"}}.animation("tada", "1s", "linear", "both"), true
	},
	"jelly": func(args Args) (Style, bool) {
		return Style{}.animation("mfm-rubberBand", speed(args, "1s"), "linear", "both"), true
	},
	"twitch": func(args Args) (Style, bool) {
		return Style{}.animation("mfm-twitch", speed(args, "0.5s"), "ease", ""), true
	},
	"shake": func(args Args) (Style, bool) {
		return Style{}.animation("mfm-shake", speed(args, "0.5s"), "ease", ""), true
	},
	"spin": func(args Args) (Style, bool) {
		name := "mfm-spin"
		switch {
		case args.Flag("x"):
			name = "mfm-spinX"
		case args.Flag("y"):
			name = "mfm-spinY"
		}

		direction := "normal"
		switch {
		case args.Flag("left"):
			direction = "reverse"
		case args.Flag("alternate"):
			direction = "alternate"
		}

		return Style{}.animation(name, speed(args, "1.5s"), "linear", "").Set("animation-direction", direction), true
	},
	"jump": func(Args) (Style, bool) {
		return Style{}.animation("mfm-jump", "0.75s", "linear", ""), true
	},
	"bounce": func(Args) (Style, bool) {
		return Style{}.animation("mfm-bounce", "0.75s", "linear", "").Set("transform-origin", "center bottom"), true
	},
	"flip": func(args Args) (Style, bool) {
		transform := "scaleX(-1)"
		switch {
		case args.Flag("h") && args.Flag("v"):
			transform = "scale(-1, -1)"
		case args.Flag("v"):
			transform = "scaleY(-1)"
		}

		return Style{{"transform", transform}}, true
	},
	"x2": func(Args) (Style, bool) {
		return Style{{"font-size", "200%"}}, true
	},
	"x3": func(Args) (Style, bool) {
		return Style{{"font-size", "400%"}}, true
	},
	"x4": func(Args) (Style, bool) {
		return Style{{"font-size", "600%"}}, true
	},
	"font": func(args Args) (Style, bool) {
		for _, family := range []string{"serif", "monospace", "cursive", "fantasy", "emoji", "math"} {
			if args.Flag(family) {
				return Style{{"font-family", family}}, true
			}
		}

		return nil, false
	},
	"rainbow": func(Args) (Style, bool) {
		return Style{}.animation("mfm-rainbow", "1s", "linear", ""), true
	},
	"scale": func(args Args) (Style, bool) {
		x := numberArg(args, "x", -5, 5, 1)
		y := numberArg(args, "y", -5, 5, 1)

		return Style{{"transform", "scale(" + x + ", " + y + ")"}}, true
	},
	"rotate": func(args Args) (Style, bool) {
		deg := numberArg(args, "deg", -360, 360, 90)

		return Style{{"transform", "rotate(" + deg + "deg)"}, {"transform-origin", "center center"}}, true
	},
	"position": func(args Args) (Style, bool) {
		x := numberArg(args, "x", -50, 50, 0)
		y := numberArg(args, "y", -50, 50, 0)

		return Style{{"transform", "translate(" + x + "em, " + y + "em)"}}, true
	},
	"fg": func(args Args) (Style, bool) {
		return Style{{"color", "#" + colorArg(args)}}, true
	},
	"bg": func(args Args) (Style, bool) {
		return Style{{"background-color", "#" + colorArg(args)}}, true
	},
}

func (r *Renderer) renderFn(node *Fn, ctx Context) *Element {
	children := r.Render(node.Children, ctx)

	// blur is driven by a stylesheet class, not inline style
	if node.Name == "blur" {
		return el("span", children...).attr("class", "_mfm_blur_")
	}

	if fx, ok := effects[node.Name]; ok {
		if style, ok := fx(node.Args); ok {
			e := el("span", children...)
			e.Style = append(Style{{"display", "inline-block"}}, style...)
			return e
		}
	}

	literal := append([]Fragment{TextFragment("[" + node.Name + " ")}, children...)
	return el("span", append(literal, TextFragment("]"))...)
}

// animation appends longhand animation declarations, infinite iteration is implied.
func (s Style) animation(name, duration, timing, fill string) Style {
	s = append(s,
		Declaration{"animation-name", name},
		Declaration{"animation-duration", duration},
		Declaration{"animation-timing-function", timing},
		Declaration{"animation-iteration-count", "infinite"},
	)

	if fill != "" {
		s = append(s, Declaration{"animation-fill-mode", fill})
	}

	return s
}

func speed(args Args, fallback string) string {
	raw, ok := args.String("speed")
	if !ok {
		return fallback
	}

	if v, ok := Duration(raw); ok {
		return v
	}

	return fallback
}

func numberArg(args Args, name string, min, max, fallback float64) string {
	raw, ok := args.String(name)
	if !ok {
		return formatNumber(fallback)
	}

	v, ok := Number(raw, min, max)
	if !ok {
		return formatNumber(fallback)
	}

	return formatNumber(v)
}

func colorArg(args Args) string {
	if raw, ok := args.String("color"); ok {
		if v, ok := Color(raw); ok {
			return v
		}
	}

	return "f00"
}
