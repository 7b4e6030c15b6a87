package ansiup

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/microcosm-cc/bluemonday"
)

var (
	escaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	link = regexp.MustCompile(`https?://\S+`)

	policy = sanitizer()
)

// EscapeForHTML replaces the HTML special characters & < > " ' with their entities.
// Existing entities are escaped again, so "&amp;" becomes "&amp;amp;".
func EscapeForHTML(text string) string {
	return escaper.Replace(text)
}

// Linkify replaces every http or https URL with an anchor element.
// A URL runs until the next whitespace character.
//
// The URL is used as is for both the href attribute and the link text,
// so when both are wanted, the text should be passed to [EscapeForHTML] first
// and then to Linkify. Escaping after Linkify breaks the anchor elements.
func Linkify(text string) string {
	return link.ReplaceAllStringFunc(text, func(url string) string {
		return `<a href="` + url + `">` + url + `</a>`
	})
}

// Sanitize removes everything from the HTML fragment except text,
// span elements with class attributes and anchor elements linking to
// absolute http or https URLs. No rel attribute is added to the links.
// Class names may use letters, digits, "_" and "-", which covers any
// [WithPrefix] value made of those characters.
func Sanitize(fragment string) string {
	return policy.Sanitize(fragment)
}

func sanitizer() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^[A-Za-z0-9_ -]+$`)).OnElements("span")
	p.RequireParseableURLs(true)
	p.AllowURLSchemes("http", "https")
	p.AllowRelativeURLs(false)
	p.AllowAttrs("href").OnElements("a")
	return p
}

// Plain removes every escape sequence from the text, including the
// cursor and screen sequences that are otherwise left in place.
func Plain(text string) string {
	return ansi.Strip(text)
}
