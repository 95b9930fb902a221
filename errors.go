package unescape

import (
	"errors"
	"fmt"
)

// ErrIncompleteSequence is returned for input that ends in a backslash
// without a following escape sequence.
var ErrIncompleteSequence = errors.New("unexpected end of string after `\\`")

// ErrIncompleteUnicode is returned for a Unicode escape sequence (e.g. `\x`)
// without the required amount of hex digits, or a `\u{` without its closing brace.
var ErrIncompleteUnicode = errors.New("unexpected end of string in Unicode escape sequence")

// InvalidUnicodeError is returned when the digits of an escape sequence parse to a
// number that is not a Unicode scalar value.
type InvalidUnicodeError struct {
	Code uint32
}

func (e InvalidUnicodeError) Error() string {
	return fmt.Sprintf("invalid Unicode character code %d", e.Code)
}

// UnknownSequenceError is returned for a backslash followed by a character
// that does not start any known escape sequence.
type UnknownSequenceError struct {
	Char rune
}

func (e UnknownSequenceError) Error() string {
	return fmt.Sprintf("unknown escape sequence starting with `%c`", e.Char)
}

// ParseIntError wraps the strconv error for digits that could not be parsed in
// the base of their escape sequence.
type ParseIntError struct {
	Digits string
	Base   int
	Err    error
}

func (e ParseIntError) Error() string {
	return fmt.Sprintf("error parsing integer: %s", e.Err)
}

func (e ParseIntError) Unwrap() error {
	return e.Err
}
