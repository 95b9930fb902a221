// Package unescape decodes C-style backslash escape sequences in strings. It aims to
// support the escape dialects of a variety of languages, though it mainly follows C.
//
// The supported escape sequences are:
//   - `\a`, `\b`, `\f`, `\n`, `\r`, `\t` and `\v` to bell, backspace, form feed, line feed,
//     carriage return, tab and vertical tab.
//   - `\\`, `\'`, `\"` and `\/` to the character itself. `\/` follows ECMAScript.
//   - A backslash followed by a carriage return or line feed keeps that character.
//   - `\xNN`, `\uNNNN` and `\UNNNNNNNN` to the Unicode character with the given two,
//     four or eight hex digits.
//   - `\u{N...}` to the Unicode character with any number of hex digits.
//   - Up to three octal digits, e.g. `\101`, to the Unicode character with that code.
//
// [Unescape] decodes a whole string. It only allocates if at least one escape sequence
// was found and returns the input unchanged otherwise.
//
// An [Unescaper] decodes lazily. [Unescaper.NextFragment] yields raw slices of the input
// between escape sequences and single decoded characters, so consumers writing the result
// somewhere else never need to build an intermediate string.
//
// Decoding stops at the first invalid escape sequence. The error is one of
// [ErrIncompleteSequence], [ErrIncompleteUnicode], [InvalidUnicodeError],
// [UnknownSequenceError] or [ParseIntError].
//
// [Escape] is the inverse of [Unescape], for any valid UTF-8 string s:
//
//	unescape.Unescape(unescape.Escape(s)) == s
package unescape
