package unescape

import (
	"github.com/creachadair/mds/value"
	"io"
	"iter"
	"strings"
	"unicode/utf8"
)

// Unescaper decodes the escape sequences of a string lazily, one character or one
// [Fragment] at a time. Decoding does not allocate.
//
// The input is split on backslashes. Every segment after a backslash starts with an
// escape sequence. Text of a segment that follows its escape sequence is kept
// as pending raw text and is emitted before splitting continues.
//
// An Unescaper is single pass. Once it returned an error or reached the end of the
// input, all further calls return [io.EOF].
type Unescaper struct {
	// input not yet split, starting directly after the last backslash taken off it
	segments string

	// false once the last segment was taken off
	more bool

	// raw text to emit before the next escape sequence. Never empty if present.
	pending value.Maybe[string]

	done bool
}

// New returns an Unescaper over s.
func New(s string) *Unescaper {
	u := &Unescaper{segments: s, more: true}

	// text before the first backslash is not an escape sequence
	head, _ := u.nextSegment()
	u.setPending(head)

	return u
}

// NextRune returns the next character of the unescaped text, either a character of the
// input or one decoded from an escape sequence. Bytes of the input that are not valid
// UTF-8 are returned as [utf8.RuneError].
// It returns [io.EOF] at the end of the input.
func (u *Unescaper) NextRune() (rune, error) {
	if u.done {
		return 0, io.EOF
	}

	if pending, ok := u.pending.GetOK(); ok {
		ch, size := utf8.DecodeRuneInString(pending)
		u.setPending(pending[size:])
		return ch, nil
	}

	ch, err := u.nextEscaped()
	if err != nil {
		u.done = true
		return 0, err
	}

	return ch, nil
}

// NextFragment returns the next fragment of the unescaped text: all raw text up to
// the next escape sequence as [Raw], or the character of the next escape sequence
// as [Escaped].
// It returns [io.EOF] at the end of the input.
func (u *Unescaper) NextFragment() (Fragment, error) {
	if u.done {
		return nil, io.EOF
	}

	if pending, ok := u.pending.GetOK(); ok {
		u.pending = value.Absent[string]()
		return Raw(pending), nil
	}

	ch, err := u.nextEscaped()
	if err != nil {
		u.done = true
		return nil, err
	}

	return Escaped(ch), nil
}

// Runes iterates over the remaining characters as returned by [Unescaper.NextRune].
// A decoding error is yielded once, together with a zero rune, and ends the iteration.
func (u *Unescaper) Runes() iter.Seq2[rune, error] {
	return func(yield func(rune, error) bool) {
		for {
			ch, err := u.NextRune()
			if err == io.EOF {
				return
			}

			if !yield(ch, err) || err != nil {
				return
			}
		}
	}
}

// Fragments iterates over the remaining fragments as returned by [Unescaper.NextFragment].
// A decoding error is yielded once, together with a nil Fragment, and ends the iteration.
func (u *Unescaper) Fragments() iter.Seq2[Fragment, error] {
	return func(yield func(Fragment, error) bool) {
		for {
			frag, err := u.NextFragment()
			if err == io.EOF {
				return
			}

			if !yield(frag, err) || err != nil {
				return
			}
		}
	}
}

// nextEscaped decodes the escape sequence of the next segment. It returns io.EOF
// if there are no segments left.
func (u *Unescaper) nextEscaped() (rune, error) {
	segment, ok := u.nextSegment()
	if !ok {
		return 0, io.EOF
	}

	if segment != "" {
		ch, rest, err := decodeSequence(segment)
		if err != nil {
			return 0, err
		}

		u.setPending(rest)
		return ch, nil
	}

	// an empty segment: the backslash is followed by a second one, or ends the input
	following, ok := u.nextSegment()
	if !ok {
		return 0, ErrIncompleteSequence
	}

	u.setPending(following)
	return '\\', nil
}

// nextSegment takes the text up to the next backslash off the input, consuming the backslash.
func (u *Unescaper) nextSegment() (string, bool) {
	if !u.more {
		return "", false
	}

	idx := strings.IndexByte(u.segments, '\\')
	if idx < 0 {
		segment := u.segments
		u.segments, u.more = "", false
		return segment, true
	}

	segment := u.segments[:idx]
	u.segments = u.segments[idx+1:]
	return segment, true
}

func (u *Unescaper) setPending(s string) {
	if s == "" {
		u.pending = value.Absent[string]()
		return
	}

	u.pending = value.Just(s)
}
