package unescape

import (
	"fmt"
	"unicode/utf8"
)

// Fragment is a piece of unescaped text as produced by [Unescaper.NextFragment].
// It is either a [Raw] run of input text or a single [Escaped] character.
type Fragment interface {
	fmt.Stringer

	// AppendTo appends the text of the fragment to dst and returns the extended buffer.
	AppendTo(dst []byte) []byte

	fragment()
}

// Raw is the longest run of input text before the next escape sequence. It is never
// empty and shares its memory with the input string.
type Raw string

// Escaped is a character decoded from an escape sequence.
type Escaped rune

var _ Fragment = Raw("")
var _ Fragment = Escaped(0)

func (r Raw) String() string {
	return string(r)
}

func (r Raw) AppendTo(dst []byte) []byte {
	return append(dst, r...)
}

func (Raw) fragment() {}

func (e Escaped) String() string {
	return string(rune(e))
}

func (e Escaped) AppendTo(dst []byte) []byte {
	return utf8.AppendRune(dst, rune(e))
}

func (Escaped) fragment() {}
