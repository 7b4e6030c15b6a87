// Package ansiup converts the ANSI SGR (Select Graphic Rendition) escape sequences
// of terminal output, such as colors and text decorations, into HTML span elements
// annotated with class names.
//
// Other escape sequences, such as cursor movements, are not interpreted.
package ansiup

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var (
	ErrReader  = errors.New("reader is nil")
	ErrWriter  = errors.New("writer is nil")
	ErrCharset = errors.New("unsupported charset")
	ErrPalette = errors.New("unknown palette")
)

// BOM is the UTF-8 byte order mark.
const BOM = "\xef\xbb\xbf"

// Charset returns the character map for the named charset.
// The names "utf8" and "utf-8" return nil, which means no decoding is required.
func Charset(name string) (*charmap.Charmap, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf8", "utf-8":
		return nil, nil
	case "cp437", "ibm437":
		return charmap.CodePage437, nil
	case "cp850", "ibm850":
		return charmap.CodePage850, nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrCharset, name)
}

// Decode reads all of r and converts the text from the charset to UTF-8.
// A nil charset or [charmap.XUserDefined] reads r as UTF-8.
// A leading UTF-8 byte order mark is removed.
func Decode(r io.Reader, charset *charmap.Charmap) (string, error) {
	if r == nil {
		return "", ErrReader
	}
	if charset != nil && charset != charmap.XUserDefined {
		r = transform.NewReader(r, charset.NewDecoder())
	}
	p, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("decode read all: %w", err)
	}
	return strings.TrimPrefix(string(p), BOM), nil
}

// Buffer creates a new Buffer containing the HTML elements of the ANSI encoded text
// found in the Reader. The text is decoded using the charset, see [Decode],
// and converted by a new [Engine] created with the options.
func Buffer(r io.Reader, charset *charmap.Charmap, opts ...Option) (*bytes.Buffer, error) {
	s, err := Decode(r, charset)
	if err != nil {
		return nil, err
	}
	return bytes.NewBufferString(New(opts...).HTML(s)), nil
}

// Bytes returns the HTML elements of the ANSI encoded text found in the Reader.
// It assumes the Reader is using UTF-8 encoding and escapes the HTML special
// characters of the text.
func Bytes(r io.Reader) ([]byte, error) {
	buf, err := Buffer(r, nil, WithText(EscapeForHTML))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String returns the HTML elements of the ANSI encoded text found in the Reader.
// It assumes the Reader is using UTF-8 encoding and escapes the HTML special
// characters of the text.
func String(r io.Reader) (string, error) {
	buf, err := Buffer(r, nil, WithText(EscapeForHTML))
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteTo writes to w the HTML elements of the ANSI encoded text found in the Reader.
// It assumes the Reader is using UTF-8 encoding and escapes the HTML special
// characters of the text.
//
// The return int64 is the number of bytes written.
func WriteTo(r io.Reader, w io.Writer) (int64, error) {
	if w == nil {
		return 0, ErrWriter
	}
	buf, err := Buffer(r, nil, WithText(EscapeForHTML))
	if err != nil {
		return 0, err
	}
	i, err := buf.WriteTo(w)
	if err != nil {
		return 0, fmt.Errorf("buffer write to: %w", err)
	}
	return i, nil
}
