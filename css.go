package ansiup

import (
	"fmt"
	"html/template"
	"io"
	"strings"
)

// Root is the class of the pre element written by [Document].
const Root = "ansiup"

var decorationCSS = map[Decoration]string{
	StyleItalic:          "font-style:italic;",
	StyleUnderline:       "text-decoration:underline;",
	StyleDoubleUnderline: "text-decoration:underline double;",
	StyleBlinkSlow:       "animation:ansiup-blink 1s step-end infinite;",
	StyleBlinkFast:       "animation:ansiup-blink 0.3s step-end infinite;",
	StyleStrike:          "text-decoration:line-through;",
	StyleDoubleStrike:    "text-decoration:line-through double;",
	StyleOverline:        "text-decoration:overline;",
}

// CSS returns a stylesheet for the classes created by an Engine, using the
// colors of the palette. The prefix must match the decoration prefix
// given to the Engine with [WithPrefix].
func CSS(pal Palette, prefix string) (string, error) {
	if pal.Colors() == nil {
		return "", fmt.Errorf("%w: %d", ErrPalette, pal)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "pre.%s{%s%s}\n", Root,
		pal.Hex(White, false).FG(), pal.Hex(Black, false).BG())
	for i := range hues {
		h := HueOf(i)
		fg, bg := h.Class(true), h.Class(false)
		fmt.Fprintf(&b, ".%s{%s}\n", fg, pal.Hex(h, false).FG())
		fmt.Fprintf(&b, ".%s.%s{%s}\n", fg, BrightFG, pal.Hex(h, true).FG())
		fmt.Fprintf(&b, ".%s{%s}\n", bg, pal.Hex(h, false).BG())
		fmt.Fprintf(&b, ".%s.%s{%s}\n", bg, BrightBG, pal.Hex(h, true).BG())
	}
	for _, d := range Decorations() {
		fmt.Fprintf(&b, ".%s%s{%s}\n", prefix, d, decorationCSS[d])
	}
	b.WriteString("@keyframes ansiup-blink{50%{visibility:hidden;}}\n")
	return b.String(), nil
}

const page = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>{{.CSS}}</style>
</head>
<body>
<pre class="{{.Root}}">{{.HTML}}</pre>
</body>
</html>
`

// Document writes to w a standalone HTML page containing the fragment
// created by an Engine and the stylesheet of the palette.
// The fragment is written unchanged, it should have been escaped or sanitized.
func Document(w io.Writer, fragment string, pal Palette, prefix string) error {
	if w == nil {
		return ErrWriter
	}
	css, err := CSS(pal, prefix)
	if err != nil {
		return err
	}
	t, err := template.New(Root).Parse(page)
	if err != nil {
		return fmt.Errorf("document template parse: %w", err)
	}
	data := struct {
		CSS  template.CSS
		Root string
		HTML template.HTML
	}{
		CSS:  template.CSS(css),
		Root: Root,
		HTML: template.HTML(fragment),
	}
	if err := t.Execute(w, data); err != nil { //nolint:gosec
		return fmt.Errorf("document template execute: %w", err)
	}
	return nil
}
