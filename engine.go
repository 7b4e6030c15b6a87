package ansiup

import (
	"regexp"
	"strings"
)

// StylePrefix is the decoration class prefix used by the ansi_up JavaScript library,
// for example "console-style-underline".
const StylePrefix = "console-style-"

// sgr matches the parameters and the trailing text of a chunk.
// It is not anchored, the text in front of the match is dropped.
var sgr = regexp.MustCompile(`(?s)([0-9;]*)m(.*)`)

// Engine converts the SGR escape sequences of text into HTML span elements.
// The style state persists between calls to HTML, so text that was cut into pieces
// renders as one continuous stream.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	state  State
	prefix string
	text   []func(string) string
}

// Option configures an Engine.
type Option func(*Engine)

// WithPrefix sets the prefix of the decoration class names, such as [StylePrefix].
// The color and bright classes are never prefixed.
func WithPrefix(prefix string) Option {
	return func(e *Engine) {
		e.prefix = prefix
	}
}

// WithText applies the funcs, in order, to every run of literal text before it is
// written to the output. The inserted span elements are never passed to the funcs,
// which makes it the place to call [EscapeForHTML] and then [Linkify].
func WithText(funcs ...func(string) string) Option {
	return func(e *Engine) {
		for _, fn := range funcs {
			if fn != nil {
				e.text = append(e.text, fn)
			}
		}
	}
}

// New creates an Engine in the default state.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ToHTML converts the SGR escape sequences in text into HTML using a new Engine.
// The text itself is not escaped, see [EscapeForHTML].
func ToHTML(text string) string {
	return New().HTML(text)
}

// HTML converts the SGR escape sequences in text into HTML span elements.
//
// A chunk without an "m" terminator is written without its introducer and leaves
// the style unchanged. Its text is still passed to the [WithText] funcs,
// the same as the text that follows an SGR sequence.
func (e *Engine) HTML(text string) string {
	chunks := Chunks(text)
	var b strings.Builder
	b.Grow(len(text))
	b.WriteString(e.literal(chunks[0]))
	for _, chunk := range chunks[1:] {
		e.chunk(&b, chunk)
	}
	return b.String()
}

// Reset returns the Engine to the default state.
func (e *Engine) Reset() {
	e.state.Reset()
}

// State returns a copy of the current style state.
func (e *Engine) State() State {
	return e.state.clone()
}

// Classes returns the class list that would be applied to the next text.
func (e *Engine) Classes() []string {
	return e.state.Classes(e.prefix)
}

// chunk applies the SGR parameters that end at the first "m" of the chunk
// and writes the trailing text. A chunk without an "m" is written as is
// and does not change the state.
func (e *Engine) chunk(b *strings.Builder, chunk string) {
	m := sgr.FindStringSubmatch(chunk)
	if m == nil {
		b.WriteString(e.literal(chunk))
		return
	}
	for _, code := range Params(m[1]) {
		e.state.Apply(code)
	}
	text := e.literal(m[2])
	classes := e.Classes()
	if len(classes) == 0 {
		b.WriteString(text)
		return
	}
	b.WriteString(`<span class="`)
	b.WriteString(strings.Join(classes, " "))
	b.WriteString(`">`)
	b.WriteString(text)
	b.WriteString(`</span>`)
}

func (e *Engine) literal(s string) string {
	for _, fn := range e.text {
		s = fn(s)
	}
	return s
}
