package ansiup

import (
	"slices"
	"strconv"
	"strings"
)

// Select Graphic Rendition parameter codes.
const (
	Reset           = 0
	Bold            = 1
	Faint           = 2
	Italic          = 3
	Underline       = 4
	BlinkSlow       = 5
	BlinkFast       = 6
	Invert          = 7
	Conceal         = 8
	Strike          = 9
	Font1st         = 10
	FontEnd         = 20
	DoubleUnderline = 21
	NotBoldFaint    = 22
	NotItalic       = 23
	NotUnderline    = 24
	NotBlink        = 25
	NotInvert       = 27
	Reveal          = 28
	NotStrike       = 29
	FG1st           = 30
	FGEnd           = 37
	SetFG           = 38
	DefaultFG       = 39
	BG1st           = 40
	BGEnd           = 47
	SetBG           = 48
	DefaultBG       = 49
	Overline        = 53
	NotOverline     = 55
	DoubleStrike    = 64
	NotIdeogram     = 65
	BrightFG1st     = 90
	BrightFGEnd     = 97
	BrightBG1st     = 100
	BrightBGEnd     = 107
)

// Decoration is a text decoration class name.
type Decoration string

const (
	StyleItalic          Decoration = "italic"
	StyleUnderline       Decoration = "underline"
	StyleDoubleUnderline Decoration = "double-underline"
	StyleBlinkSlow       Decoration = "blink-slow"
	StyleBlinkFast       Decoration = "blink-fast"
	StyleStrike          Decoration = "strike"
	StyleDoubleStrike    Decoration = "double-strike"
	StyleOverline        Decoration = "overline"
)

// Decorations lists every decoration the engine can set.
func Decorations() []Decoration {
	return []Decoration{
		StyleItalic, StyleUnderline, StyleDoubleUnderline, StyleBlinkSlow,
		StyleBlinkFast, StyleStrike, StyleDoubleStrike, StyleOverline,
	}
}

// State is the persistent style of an Engine.
// The zero value is the default state with no colors or decorations.
type State struct {
	FG       Hue  // FG is the foreground color or NoHue
	BG       Hue  // BG is the background color or NoHue
	BrightFG bool // BrightFG toggles the bright foreground, only meaningful when FG is set
	BrightBG bool // BrightBG toggles the bright background, only meaningful when BG is set

	decorations []Decoration
}

// Decorations returns a copy of the active decorations in the order they were added.
func (s State) Decorations() []Decoration {
	return slices.Clone(s.decorations)
}

// Has reports whether the decoration is active.
func (s State) Has(d Decoration) bool {
	return slices.Contains(s.decorations, d)
}

// Empty reports whether the state is the default state.
func (s State) Empty() bool {
	return s.FG == NoHue && s.BG == NoHue && !s.BrightFG && !s.BrightBG &&
		len(s.decorations) == 0
}

// Reset returns the state to the default.
func (s *State) Reset() {
	*s = State{}
}

// Apply applies a single SGR code to the state.
// Unknown codes and the codes that are recognized but unsupported are ignored.
func (s *State) Apply(code int) {
	if fn, ok := transitions[code]; ok {
		fn(s)
	}
}

// Classes returns the class list of the state, decorations in insertion order,
// then the foreground and its bright modifier, then the background and its bright modifier.
// The prefix is applied to the decoration names.
func (s State) Classes(prefix string) []string {
	classes := make([]string, 0, len(s.decorations)+4) //nolint:mnd
	for _, d := range s.decorations {
		classes = append(classes, prefix+string(d))
	}
	if s.FG != NoHue {
		classes = append(classes, s.FG.Class(true))
		if s.BrightFG {
			classes = append(classes, BrightFG)
		}
	}
	if s.BG != NoHue {
		classes = append(classes, s.BG.Class(false))
		if s.BrightBG {
			classes = append(classes, BrightBG)
		}
	}
	return classes
}

func (s State) clone() State {
	s.decorations = slices.Clone(s.decorations)
	return s
}

// add appends the decoration unless it is already active.
func (s *State) add(d Decoration) {
	if !s.Has(d) {
		s.decorations = append(s.decorations, d)
	}
}

// remove drops every listed decoration.
func (s *State) remove(ds ...Decoration) {
	s.decorations = slices.DeleteFunc(s.decorations, func(d Decoration) bool {
		return slices.Contains(ds, d)
	})
}

// swap removes the exclusive decoration before adding d.
func (s *State) swap(exclusive, d Decoration) {
	s.remove(exclusive)
	s.add(d)
}

type transition func(*State)

var transitions = sgrTable()

// sgrTable maps each recognized SGR code to its transition.
//
//nolint:mnd
func sgrTable() map[int]transition {
	noop := func(*State) {}
	t := map[int]transition{
		Reset:           (*State).Reset,
		Bold:            func(s *State) { s.BrightFG = true },
		Faint:           func(s *State) { s.BrightFG = false },
		NotBoldFaint:    func(s *State) { s.BrightFG = false },
		Italic:          func(s *State) { s.add(StyleItalic) },
		NotItalic:       func(s *State) { s.remove(StyleItalic) },
		Underline:       func(s *State) { s.swap(StyleDoubleUnderline, StyleUnderline) },
		DoubleUnderline: func(s *State) { s.swap(StyleUnderline, StyleDoubleUnderline) },
		NotUnderline:    func(s *State) { s.remove(StyleUnderline, StyleDoubleUnderline) },
		BlinkSlow:       func(s *State) { s.swap(StyleBlinkFast, StyleBlinkSlow) },
		BlinkFast:       func(s *State) { s.swap(StyleBlinkSlow, StyleBlinkFast) },
		NotBlink:        func(s *State) { s.remove(StyleBlinkSlow, StyleBlinkFast) },
		Strike:          func(s *State) { s.swap(StyleDoubleStrike, StyleStrike) },
		DoubleStrike:    func(s *State) { s.swap(StyleStrike, StyleDoubleStrike) },
		NotStrike:       func(s *State) { s.remove(StyleStrike, StyleDoubleStrike) },
		NotIdeogram:     func(s *State) { s.remove(StyleStrike, StyleDoubleStrike) },
		Overline:        func(s *State) { s.add(StyleOverline) },
		NotOverline:     func(s *State) { s.remove(StyleOverline) },
		DefaultFG:       func(s *State) { s.FG = NoHue },
		DefaultBG:       func(s *State) { s.BG = NoHue },
		// reverse video, conceal and the extended colors are not supported
		Invert:    noop,
		Conceal:   noop,
		NotInvert: noop,
		Reveal:    noop,
		SetFG:     noop,
		SetBG:     noop,
	}
	for code := Font1st; code <= FontEnd; code++ {
		t[code] = noop
	}
	for i := range hues {
		h := HueOf(i)
		t[FG1st+i] = func(s *State) { s.FG = h }
		t[BG1st+i] = func(s *State) { s.BG, s.BrightBG = h, false }
		t[BrightFG1st+i] = func(s *State) { s.FG, s.BrightFG = h, true }
		t[BrightBG1st+i] = func(s *State) { s.BG, s.BrightBG = h, false }
	}
	return t
}

// Params splits the parameters of an SGR sequence, the text between
// the introducer and the final "m", into codes.
// An empty parameter is returned as Reset and a parameter that
// cannot be represented as an int is returned as -1.
func Params(s string) []int {
	fields := strings.Split(s, ";")
	codes := make([]int, 0, len(fields))
	for _, field := range fields {
		if field == "" {
			codes = append(codes, Reset)
			continue
		}
		code, err := strconv.Atoi(field)
		if err != nil {
			codes = append(codes, -1)
			continue
		}
		codes = append(codes, code)
	}
	return codes
}
