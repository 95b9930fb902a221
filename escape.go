package unescape

import (
	"go4.org/mem"
	"golang.org/x/exp/constraints"
)

var letterEsc = [...]byte{
	'\t': 't',
	'\n': 'n',
	'\r': 'r',
	'"':  '"',
	'\'': '\'',
	'\\': '\\',
}

var hexDigit = []byte("0123456789abcdef")

// Escape is the inverse of [Unescape]. Tabs, line feeds and carriage returns are
// written as letter escapes, backslashes and quotes are prefixed with a backslash.
// Printable ASCII is kept and every other character is written as `\u{X}` in
// lowercase hex. Bytes that are not valid UTF-8 are written as `\u{fffd}`.
//
// If nothing needs escaping, s is returned unchanged.
func Escape(s string) string {
	src := mem.S(s)
	if !needsEscape(src) {
		return s
	}

	return string(appendEscaped(make([]byte, 0, len(s)+len(s)/4), src))
}

// AppendEscaped appends the escaped form of src, as produced by [Escape], to dst
// and returns the extended buffer.
func AppendEscaped(dst, src []byte) []byte {
	return appendEscaped(dst, mem.B(src))
}

func needsEscape(src mem.RO) bool {
	for i := 0; i < src.Len(); i++ {
		c := src.At(i)
		if c < ' ' || c > '~' || c == '\\' || c == '"' || c == '\'' {
			return true
		}
	}

	return false
}

func appendEscaped(dst []byte, src mem.RO) []byte {
	for src.Len() > 0 {
		r, n := mem.DecodeRune(src)

		switch {
		case int(r) < len(letterEsc) && letterEsc[r] != 0:
			dst = append(dst, '\\', letterEsc[r])

		case ' ' <= r && r <= '~':
			dst = append(dst, byte(r))

		default:
			dst = append(dst, '\\', 'u', '{')
			dst = appendHex(dst, uint32(r))
			dst = append(dst, '}')
		}

		src = src.SliceFrom(n)
	}

	return dst
}

// appendHex appends n in lowercase hex without leading zeros.
func appendHex[N constraints.Unsigned](dst []byte, n N) []byte {
	if n == 0 {
		return append(dst, '0')
	}

	var buf [16]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = hexDigit[int(n&15)]
		n >>= 4
	}

	return append(dst, buf[i:]...)
}
