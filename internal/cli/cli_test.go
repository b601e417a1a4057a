package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const tree = `[
	{"type": "text", "props": {"text": "hi\nthere "}},
	{"type": "bold", "children": [{"type": "text", "props": {"text": "bold"}}]},
	{"type": "marquee", "children": [{"type": "text", "props": {"text": "lost"}}]},
	{"type": "fn", "props": {"name": "jelly", "args": {"speed": "2s"}}, "children": [{"type": "text", "props": {"text": "wobble"}}]},
	{"type": "url", "props": {"url": "https://example.com"}}
]`

// run executes root command with isolated config locations.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	stdout := bytes.NewBuffer(nil)
	stderr := bytes.NewBuffer(nil)

	root := NewRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRenderHTML(t *testing.T) {
	out, stderr, err := run(t, tree, "render")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(out, "<span>hi<br/>there <b>bold</b>"), out)
	require.Contains(t, out, "animation-duration: 2s;")
	require.Contains(t, out, `rel="nofollow noopener noreferrer"`)
	require.NotContains(t, out, "lost")

	require.Contains(t, stderr, "unrecognized node type")
	require.Contains(t, stderr, "marquee")
}

func TestRenderPlainText(t *testing.T) {
	out, _, err := run(t, tree, "render", "--plain", "--output", "text", "--log-level", "error")
	require.NoError(t, err)
	require.Equal(t, "hi there boldwobblehttps://example.com\n", out)
}

func TestRenderYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- type: quote
  children:
    - type: text
      props: {text: quoted}
`), 0o600))

	out, _, err := run(t, "", "render", "--input", "yaml", "--nowrap", path)
	require.NoError(t, err)
	require.Equal(t, "<span><span class=\"quote\">quoted</span></span>\n", out)
}

func TestRenderANSI(t *testing.T) {
	out, _, err := run(t, tree, "render", "--output", "ansi", "--width", "40", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "hi\nthere ")
	require.Contains(t, out, "wobble")
}

func TestRenderTree(t *testing.T) {
	out, _, err := run(t, tree, "render", "--output", "tree", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "wobble")
}

func TestRenderEmpty(t *testing.T) {
	out, _, err := run(t, "[]", "render")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestRenderInvalidInput(t *testing.T) {
	_, _, err := run(t, "{", "render")
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode json tree")
}

func TestRenderInvalidFormat(t *testing.T) {
	_, _, err := run(t, tree, "render", "--output", "pdf")
	require.Error(t, err)
	require.Contains(t, err.Error(), "output.format")
}

func TestRenderConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[output]
format = "text"

[emojis]
blobcat = "https://example.com/blobcat.png"
`), 0o600))

	in := `[{"type": "emojiCode", "props": {"name": "blobcat"}}, {"type": "emojiCode", "props": {"name": "other"}}]`

	out, _, err := run(t, in, "--config", path, "render", "--output", "html")
	require.NoError(t, err)
	require.Contains(t, out, `src="https://example.com/blobcat.png"`)
	require.Contains(t, out, ":other:")
}

func TestFlagOverridesInvalidConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nformat = \"pdf\"\n"), 0o600))

	in := `[{"type": "bold", "children": [{"type": "text", "props": {"text": "hi"}}]}]`

	out, _, err := run(t, in, "--config", path, "render", "--output", "html")
	require.NoError(t, err)
	require.Contains(t, out, "<b>hi</b>")

	_, _, err = run(t, in, "--config", path, "render")
	require.ErrorContains(t, err, `output.format "pdf"`)
}

func TestStats(t *testing.T) {
	out, _, err := run(t, tree, "stats", "--log-level", "error")
	require.NoError(t, err)

	require.Regexp(t, `(?m)^nodes\s+8$`, out)
	require.Regexp(t, `(?m)^\s*text\s+4$`, out)
	require.Regexp(t, `(?m)^\s*marquee\s+1$`, out)
	require.Contains(t, out, "html")
	require.Contains(t, out, " B")
}

func TestConfigGenerate(t *testing.T) {
	out, _, err := run(t, "", "config", "generate")
	require.NoError(t, err)
	require.Contains(t, out, "[render]")

	path := filepath.Join(t.TempDir(), "mfm", "config.toml")
	_, _, err = run(t, "", "config", "generate", "-f", path)
	require.NoError(t, err)
	require.FileExists(t, path)

	_, _, err = run(t, "", "config", "generate", "-f", path)
	require.Error(t, err)
}
