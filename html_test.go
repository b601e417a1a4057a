package mfm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/eolymp/go-mfm"
)

func renderHTML(t *testing.T, nodes []mfm.Node, ctx mfm.Context) (string, *goquery.Document) {
	t.Helper()

	buf := bytes.NewBuffer(nil)
	if err := mfm.WriteHTML(buf, mfm.Render(nodes, ctx)); err != nil {
		t.Fatal(err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatal(err)
	}

	return buf.String(), doc
}

func TestWriteHTML(t *testing.T) {
	tt := []struct {
		name   string
		nodes  []mfm.Node
		render string
	}{
		{
			name:   "text with line breaks",
			nodes:  []mfm.Node{text("a\nb")},
			render: "a<br/>b",
		},
		{
			name:   "escaped text",
			nodes:  []mfm.Node{text("<script>alert(1)</script>")},
			render: "&lt;script&gt;alert(1)&lt;/script&gt;",
		},
		{
			name:   "bold",
			nodes:  []mfm.Node{&mfm.Bold{Children: []mfm.Node{text("x")}}},
			render: "<b>x</b>",
		},
		{
			name:   "styled",
			nodes:  []mfm.Node{&mfm.Fn{Name: "x2", Children: []mfm.Node{text("big")}}},
			render: `<span style="display: inline-block; font-size: 200%;">big</span>`,
		},
		{
			name:   "sorted attributes",
			nodes:  []mfm.Node{&mfm.URL{URL: "https://example.com/"}},
			render: `<a href="https://example.com/" rel="nofollow noopener noreferrer">https://example.com/</a>`,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := renderHTML(t, tc.nodes, mfm.DefaultContext())
			if got != tc.render {
				t.Errorf("WriteHTML() = %q, want %q", got, tc.render)
			}
		})
	}
}

func TestWriteHTMLLinks(t *testing.T) {
	_, doc := renderHTML(t, []mfm.Node{
		&mfm.URL{URL: "https://example.com/"},
		text(" and "),
		&mfm.Link{URL: "https://example.org/", Children: []mfm.Node{text("caption")}},
	}, mfm.DefaultContext())

	links := doc.Find("a")
	if links.Length() != 2 {
		t.Fatalf("expected 2 links, got %d", links.Length())
	}

	links.Each(func(i int, s *goquery.Selection) {
		rel, _ := s.Attr("rel")
		for _, marker := range []string{"nofollow", "noopener", "noreferrer"} {
			if !strings.Contains(rel, marker) {
				t.Errorf("link %d rel %q misses %s", i, rel, marker)
			}
		}
	})

	if got := links.Eq(1).Text(); got != "caption" {
		t.Errorf("link text = %q, want caption", got)
	}
}

func TestWriteHTMLEscapesAttributes(t *testing.T) {
	href := `https://example.com/"onmouseover="alert(1)`

	_, doc := renderHTML(t, []mfm.Node{&mfm.Link{URL: href, Children: []mfm.Node{text("x")}}}, mfm.DefaultContext())

	a := doc.Find("a")
	if got, _ := a.Attr("href"); got != href {
		t.Errorf("href = %q, want %q", got, href)
	}

	if _, ok := a.Attr("onmouseover"); ok {
		t.Errorf("attribute value escaped into a new attribute")
	}
}

func TestWriteHTMLStructure(t *testing.T) {
	_, doc := renderHTML(t, []mfm.Node{
		&mfm.Center{Children: []mfm.Node{
			&mfm.Quote{Children: []mfm.Node{text("quoted "), &mfm.Hashtag{Hashtag: "go"}}},
			&mfm.MathBlock{Formula: "x<y"},
			&mfm.BlockCode{Code: "if a < b {}", Lang: "go"},
		}},
	}, mfm.DefaultContext())

	if doc.Find("div div.quote").Length() != 1 {
		t.Errorf("expected quote nested in centered block")
	}

	if got := doc.Find("div.quote a").Text(); got != "#go" {
		t.Errorf("hashtag text = %q, want #go", got)
	}

	formula, _ := doc.Find("mk-formula").Attr("formula")
	if formula != "x<y" {
		t.Errorf("formula = %q, want x<y", formula)
	}

	code := doc.Find("code")
	if lang, _ := code.Attr("lang"); lang != "go" {
		t.Errorf("lang = %q, want go", lang)
	}

	if code.Text() != "if a < b {}" {
		t.Errorf("code = %q", code.Text())
	}
}

func TestWriteHTMLEmpty(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := mfm.WriteHTML(buf, mfm.Render(nil, mfm.DefaultContext())); err != nil {
		t.Fatal(err)
	}

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
