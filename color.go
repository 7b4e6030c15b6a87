package ansiup

import (
	"fmt"
	"strings"
)

// Hue is one of the eight base ANSI colors.
// The zero Hue means that no color is set.
type Hue uint8

const (
	NoHue   Hue = iota // no color, the terminal default
	Black              // SGR color index 0
	Red                // SGR color index 1
	Green              // SGR color index 2
	Yellow             // SGR color index 3
	Blue               // SGR color index 4
	Magenta            // SGR color index 5
	Cyan               // SGR color index 6
	White              // SGR color index 7
)

const (
	// BrightFG is the class that marks a bright (high intensity) foreground.
	BrightFG = "bright-fg"
	// BrightBG is the class that marks a bright (high intensity) background.
	BrightBG = "bright-bg"

	colorPrefix = "console-color-"
	hues        = 8
)

var hueNames = [hues]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// HueOf returns the Hue of an SGR color index between 0 and 7.
// Any other index returns NoHue.
func HueOf(index int) Hue {
	if index < 0 || index >= hues {
		return NoHue
	}
	return Hue(index + 1)
}

// Index returns the SGR color index of the hue, or -1 for NoHue.
func (h Hue) Index() int {
	if h == NoHue || h > White {
		return -1
	}
	return int(h) - 1
}

func (h Hue) String() string {
	i := h.Index()
	if i < 0 {
		return ""
	}
	return hueNames[i]
}

// Class returns the class identifier of the hue used as a foreground
// or a background color, for example "console-color-red-fg".
// NoHue returns an empty string.
func (h Hue) Class(fg bool) string {
	name := h.String()
	if name == "" {
		return ""
	}
	if fg {
		return colorPrefix + name + "-fg"
	}
	return colorPrefix + name + "-bg"
}

// ClassName returns the class identifier for the SGR color index
// between 0 and 7, either as a foreground or a background.
// Invalid indexes return an empty string.
func ClassName(index int, fg bool) string {
	return HueOf(index).Class(fg)
}

// Palette sets the ANSI 4-bit color codes to a colorset of RGB values.
// The ANSI standard never formalized color values and it was left to the system to determine.
// Wikipedia has a [useful table] of the common palettes.
//
// [useful table]: https://en.wikipedia.org/wiki/ANSI_escape_code#3-bit_and_4-bit
type Palette uint

const (
	CGA16   Palette = iota // Color Graphics Adapter colorset defined by IBM for the PC in 1981
	Xterm16                // Xterm terminal emulator program for the X Window System colorset from the mid-1980s
)

// ParsePalette returns the Palette matching the name "cga" or "xterm".
func ParsePalette(name string) (Palette, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "cga", "cga16":
		return CGA16, nil
	case "xterm", "xterm16":
		return Xterm16, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrPalette, name)
}

// Color code represented as hexadecimal numeric value.
// These are often 6 digit values RRGGBB (red, green, blue),
// however, certain values can be shortened to 3 digit values.
//
// For example, the code of CGA red "aa0000" can shortened to "a00".
type Color string

// BG returns the CSS background-color property and color value.
func (c Color) BG() string {
	if c == "" {
		return ""
	}
	return "background-color:#" + string(c) + ";"
}

// FG returns the CSS color property and color value.
func (c Color) FG() string {
	if c == "" {
		return ""
	}
	return "color:#" + string(c) + ";"
}

// Colors returns the 16 colors of the palette, the eight base colors
// followed by their bright variants. An unknown palette returns nil.
func (p Palette) Colors() []Color {
	switch p {
	case CGA16:
		return []Color{
			"000", "a00", "0a0", "a50", "00a", "a0a", "0aa", "aaa",
			"555", "f55", "5f5", "ff5", "55f", "f5f", "5ff", "fff",
		}
	case Xterm16:
		return []Color{
			"000", "800000", "008000", "808000", "000080", "800080", "008080", "c0c0c0",
			"808080", "f00", "0f0", "ff0", "00f", "f0f", "0ff", "fff",
		}
	}
	return nil
}

// Hex returns the color of the hue within the palette.
// When bright is toggled, the lighter color variant is used.
// NoHue and unknown palettes return an empty Color.
func (p Palette) Hex(h Hue, bright bool) Color {
	colors := p.Colors()
	i := h.Index()
	if colors == nil || i < 0 {
		return ""
	}
	if bright {
		i += hues
	}
	return colors[i]
}
