package ansiup

import "strings"

// CSI is the Control Sequence Introducer, the escape character followed by "[".
const CSI = "\x1b["

// Chunks splits the text at every Control Sequence Introducer.
// The first chunk is the text before the first introducer, which may be empty
// or the whole text. Every other chunk is the text that follows an introducer,
// up to the next introducer or the end of the text.
// No chunk contains an introducer.
func Chunks(text string) []string {
	return strings.Split(text, CSI)
}
