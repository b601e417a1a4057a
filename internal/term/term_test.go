package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/eolymp/go-mfm"
)

func TestPaint(t *testing.T) {
	fragments := mfm.Render([]mfm.Node{
		&mfm.Text{Text: "one\ntwo "},
		&mfm.Bold{Children: []mfm.Node{&mfm.Text{Text: "bold"}}},
		&mfm.Fn{Name: "spin", Children: []mfm.Node{&mfm.Text{Text: "spinning"}}},
		&mfm.MathInline{Formula: "x^2"},
		&mfm.MathBlock{Formula: "y"},
		&mfm.URL{URL: "https://example.com"},
	}, mfm.DefaultContext())

	out := New(bytes.NewBuffer(nil), 40).Paint(fragments)

	for _, want := range []string{"one\ntwo ", "bold", "spinning", "$x^2$", "$$y$$", "https://example.com"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestPaintQuote(t *testing.T) {
	fragments := mfm.Render([]mfm.Node{
		&mfm.Quote{Children: []mfm.Node{&mfm.Text{Text: "quoted"}}},
	}, mfm.DefaultContext())

	out := New(bytes.NewBuffer(nil), 40).Paint(fragments)

	if !strings.Contains(out, "│") || !strings.Contains(out, "quoted") {
		t.Errorf("expected bordered quote, got %q", out)
	}
}

func TestPaintCustomEmoji(t *testing.T) {
	ctx := mfm.DefaultContext()
	ctx.CustomEmojis = []mfm.CustomEmoji{{Name: "blobcat", URL: "https://example.com/b.png"}}

	out := New(bytes.NewBuffer(nil), 0).Paint(mfm.Render([]mfm.Node{&mfm.EmojiCode{Name: "blobcat"}}, ctx))
	if out != ":blobcat:" {
		t.Errorf("Paint() = %q, want :blobcat:", out)
	}
}

func TestKey(t *testing.T) {
	tt := []struct {
		name string
		node mfm.Node
		key  string
	}{
		{name: "bold", node: &mfm.Bold{}, key: "b"},
		{name: "quote", node: &mfm.Quote{}, key: "quote"},
		{name: "blur", node: &mfm.Fn{Name: "blur"}, key: "blur"},
		{name: "center", node: &mfm.Center{}, key: "center"},
		{name: "hashtag", node: &mfm.Hashtag{Hashtag: "go"}, key: "a"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			out := mfm.Render([]mfm.Node{tc.node}, mfm.DefaultContext())
			if got := key(out[0].(*mfm.Element)); got != tc.key {
				t.Errorf("key() = %q, want %q", got, tc.key)
			}
		})
	}
}
