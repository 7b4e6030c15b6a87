package ansiup_test

import (
	"testing"

	"github.com/bengarrett/ansiup"
	"github.com/nalgeon/be"
)

func TestHue(t *testing.T) {
	t.Parallel()
	be.Equal(t, ansiup.HueOf(0), ansiup.Black)
	be.Equal(t, ansiup.HueOf(7), ansiup.White)
	be.Equal(t, ansiup.HueOf(8), ansiup.NoHue)
	be.Equal(t, ansiup.HueOf(-1), ansiup.NoHue)
	be.Equal(t, ansiup.Red.Index(), 1)
	be.Equal(t, ansiup.NoHue.Index(), -1)
	be.Equal(t, ansiup.Magenta.String(), "magenta")
	be.Equal(t, ansiup.NoHue.String(), "")
	be.Equal(t, ansiup.Cyan.Class(true), "console-color-cyan-fg")
	be.Equal(t, ansiup.Cyan.Class(false), "console-color-cyan-bg")
	be.Equal(t, ansiup.NoHue.Class(true), "")
}

func TestClassName(t *testing.T) {
	t.Parallel()
	names := []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}
	for i, name := range names {
		be.Equal(t, ansiup.ClassName(i, true), "console-color-"+name+"-fg")
		be.Equal(t, ansiup.ClassName(i, false), "console-color-"+name+"-bg")
		// a pure function
		be.Equal(t, ansiup.ClassName(i, true), ansiup.ClassName(i, true))
	}
	be.Equal(t, ansiup.ClassName(8, true), "")
	be.Equal(t, ansiup.ClassName(-1, false), "")
}

func TestColor(t *testing.T) {
	t.Parallel()
	const cga = ansiup.CGA16
	const xtm = ansiup.Xterm16
	blk := cga.Hex(ansiup.Black, false)
	be.Equal(t, blk.BG(), "background-color:#000;")
	be.Equal(t, blk.FG(), "color:#000;")
	be.Equal(t, cga.Hex(ansiup.Black, true), ansiup.Color("555"))
	be.Equal(t, cga.Hex(ansiup.Red, false), ansiup.Color("a00"))
	be.Equal(t, cga.Hex(ansiup.Green, true), ansiup.Color("5f5"))
	be.Equal(t, xtm.Hex(ansiup.Red, false), ansiup.Color("800000"))
	be.Equal(t, xtm.Hex(ansiup.White, true), ansiup.Color("fff"))
	be.Equal(t, cga.Hex(ansiup.NoHue, false), ansiup.Color(""))
	be.Equal(t, ansiup.Palette(9).Hex(ansiup.Red, false), ansiup.Color(""))
	be.Equal(t, ansiup.Color("").FG(), "")
	be.Equal(t, ansiup.Color("").BG(), "")
	be.Equal(t, len(cga.Colors()), 16)
	be.Equal(t, len(xtm.Colors()), 16)
}

func TestParsePalette(t *testing.T) {
	t.Parallel()
	p, err := ansiup.ParsePalette("cga")
	be.Err(t, err, nil)
	be.Equal(t, p, ansiup.CGA16)
	p, err = ansiup.ParsePalette("")
	be.Err(t, err, nil)
	be.Equal(t, p, ansiup.CGA16)
	p, err = ansiup.ParsePalette("XTERM")
	be.Err(t, err, nil)
	be.Equal(t, p, ansiup.Xterm16)
	_, err = ansiup.ParsePalette("vga")
	be.Err(t, err, ansiup.ErrPalette)
}
