package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestClean_RemovesScriptStyle(t *testing.T) {
	html := `
<body>
    <div id="main">Hello</div>
    <script>alert("hi")</script>
    <style>.x {}</style>
</body>`

	out, err := Clean(html, &DefaultCleanConfig)
	require.NoError(t, err)

	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "<style")
	assert.Contains(t, out, `id="main"`)
}

func TestClean_RemovesComments(t *testing.T) {
	out, err := Clean(`<body><!-- comment --><div>Text</div></body>`, nil)
	require.NoError(t, err)

	assert.NotContains(t, out, "comment")
	assert.Contains(t, out, "Text")
}

func TestClean_KeepsUsefulAttributes(t *testing.T) {
	html := `
<body>
    <a href="https://example.com" class="link" id="x" data-x="1" aria-hidden="true" onclick="go()">Go</a>
</body>`

	out, err := Clean(html, &DefaultCleanConfig)
	require.NoError(t, err)

	assert.Contains(t, out, `href="https://example.com"`)
	assert.Contains(t, out, `class="link"`)
	assert.Contains(t, out, `id="x"`)
	assert.NotContains(t, out, "data-x")
	assert.NotContains(t, out, "aria-hidden")
	assert.NotContains(t, out, "onclick")
}

func TestClean_KeepsTables(t *testing.T) {
	html := `<body><table style="width:100%"><tr><td tabindex="1">42</td></tr></table></body>`

	out, err := Clean(html, nil)
	require.NoError(t, err)

	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>42</td>")
}

func TestClean_RemovesHeadMetaLink(t *testing.T) {
	html := `
<html>
<head>
    <meta charset="utf-8">
    <link rel="stylesheet" href="x.css">
</head>
<body>
    <p>Hi</p>
</body>
</html>`

	out, err := Clean(html, &DefaultCleanConfig)
	require.NoError(t, err)

	assert.NotContains(t, out, "<head")
	assert.NotContains(t, out, "<meta")
	assert.NotContains(t, out, "<link")
	assert.Contains(t, out, "<p>")
}

func TestClean_CustomAttrFilter(t *testing.T) {
	cfg := DefaultCleanConfig
	cfg.CustomAttrFilter = func(attr html.Attribute) bool { return attr.Key == "class" }

	out, err := Clean(`<body><div class="tab" id="t1">x</div></body>`, &cfg)
	require.NoError(t, err)

	assert.NotContains(t, out, "class=")
	assert.Contains(t, out, `id="t1"`)
}

func TestClean_Truncation(t *testing.T) {
	var big strings.Builder
	big.WriteString("<body>")
	for i := 0; i < 20000; i++ {
		big.WriteString("<div>test</div>")
	}
	big.WriteString("</body>")

	out, err := Clean(big.String(), &DefaultCleanConfig)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(out), DefaultCleanConfig.MaxOutputSize+len(truncationNotice))
	assert.Contains(t, out, "HTML truncated")
}
