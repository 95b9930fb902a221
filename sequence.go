package unescape

import (
	"golang.org/x/exp/constraints"
	"strconv"
	"strings"
	"unicode/utf8"
)

// decodeSequence decodes the escape sequence at the start of s, the text directly
// following a backslash. It returns the decoded character and the part of s that
// was not consumed by the sequence.
func decodeSequence(s string) (rune, string, error) {
	next, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return 0, "", ErrIncompleteSequence
	}

	rest := s[size:]

	switch next {
	case 'a':
		return '\a', rest, nil
	case 'b':
		return '\b', rest, nil
	case 'f':
		return '\f', rest, nil
	case 'n':
		return '\n', rest, nil
	case 'r':
		return '\r', rest, nil
	case 't':
		return '\t', rest, nil
	case 'v':
		return '\v', rest, nil

	case '\\', '\'', '"', '/':
		return next, rest, nil

	// an escaped line break keeps the line break
	case '\r', '\n':
		return next, rest, nil

	case 'x':
		return fixedWidth(rest, 2)

	case 'u':
		if braced, ok := strings.CutPrefix(rest, "{"); ok {
			return variableWidth(braced)
		}

		return fixedWidth(rest, 4)

	case 'U':
		return fixedWidth(rest, 8)
	}

	if n := octalPrefix(s); n > 0 {
		return parseScalar(s[:n], s[n:], 8)
	}

	return 0, "", UnknownSequenceError{Char: next}
}

// fixedWidth decodes a hex code point of exactly n characters.
func fixedWidth(s string, n int) (rune, string, error) {
	end := 0
	for range n {
		if end >= len(s) {
			return 0, "", ErrIncompleteUnicode
		}

		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
	}

	return parseScalar(s[:end], s[end:], 16)
}

// variableWidth decodes the hex code point of a `\u{...}` sequence. s starts after the
// opening brace and must contain the closing one.
func variableWidth(s string) (rune, string, error) {
	digits, rest, ok := strings.Cut(s, "}")
	if !ok {
		return 0, "", ErrIncompleteUnicode
	}

	return parseScalar(digits, rest, 16)
}

// octalPrefix returns the number of octal digits at the start of s, at most three.
func octalPrefix(s string) int {
	n := 0
	for n < len(s) && n < 3 && '0' <= s[n] && s[n] <= '7' {
		n++
	}

	return n
}

func parseScalar(digits, rest string, base int) (rune, string, error) {
	code, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, "", ParseIntError{Digits: digits, Base: base, Err: err}
	}

	ch, err := scalar(code)
	if err != nil {
		return 0, "", err
	}

	return ch, rest, nil
}

// scalar converts code to a rune if it is a Unicode scalar value, that is,
// in range and not a surrogate.
func scalar[N constraints.Unsigned](code N) (rune, error) {
	if uint64(code) > utf8.MaxRune || !utf8.ValidRune(rune(code)) {
		return 0, InvalidUnicodeError{Code: uint32(code)}
	}

	return rune(code), nil
}
