package ansiup_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bengarrett/ansiup"
	"github.com/nalgeon/be"
)

func TestCSS(t *testing.T) {
	t.Parallel()
	css, err := ansiup.CSS(ansiup.CGA16, "")
	be.Err(t, err, nil)
	for _, rule := range []string{
		"pre.ansiup{color:#aaa;background-color:#000;}",
		".console-color-red-fg{color:#a00;}",
		".console-color-red-fg.bright-fg{color:#f55;}",
		".console-color-blue-bg{background-color:#00a;}",
		".console-color-blue-bg.bright-bg{background-color:#55f;}",
		".underline{text-decoration:underline;}",
		".double-strike{text-decoration:line-through double;}",
		"@keyframes ansiup-blink",
	} {
		be.True(t, strings.Contains(css, rule))
	}
	for _, d := range ansiup.Decorations() {
		be.True(t, strings.Contains(css, "."+string(d)+"{"))
	}

	css, err = ansiup.CSS(ansiup.Xterm16, ansiup.StylePrefix)
	be.Err(t, err, nil)
	be.True(t, strings.Contains(css, ".console-color-red-fg{color:#800000;}"))
	be.True(t, strings.Contains(css, ".console-style-italic{font-style:italic;}"))

	_, err = ansiup.CSS(ansiup.Palette(9), "")
	be.Err(t, err, ansiup.ErrPalette)
}

func TestDocument(t *testing.T) {
	t.Parallel()
	var b bytes.Buffer
	frag := ansiup.New(ansiup.WithText(ansiup.EscapeForHTML)).HTML("\x1b[31mred & <done>")
	err := ansiup.Document(&b, frag, ansiup.CGA16, "")
	be.Err(t, err, nil)
	s := b.String()
	be.True(t, strings.HasPrefix(s, "<!DOCTYPE html>"))
	be.True(t, strings.Contains(s,
		`<pre class="ansiup"><span class="console-color-red-fg">red &amp; &lt;done&gt;</span></pre>`))
	be.True(t, strings.Contains(s, ".console-color-red-fg{color:#a00;}"))

	err = ansiup.Document(nil, frag, ansiup.CGA16, "")
	be.Err(t, err, ansiup.ErrWriter)
	err = ansiup.Document(&b, frag, ansiup.Palette(9), "")
	be.Err(t, err, ansiup.ErrPalette)
}
