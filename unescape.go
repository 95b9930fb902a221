package unescape

import "strings"

// Unescape returns s with all escape sequences decoded. If s contains no escape
// sequence, s itself is returned and nothing is allocated.
//
// Decoding stops at the first invalid escape sequence and its error is returned.
func Unescape(s string) (string, error) {
	var borrowed string
	var b strings.Builder

	for frag, err := range New(s).Fragments() {
		if err != nil {
			return "", err
		}

		if raw, ok := frag.(Raw); ok && borrowed == "" && b.Len() == 0 {
			borrowed = string(raw)
			continue
		}

		if b.Len() == 0 {
			b.Grow(len(s))
			b.WriteString(borrowed)
		}

		switch frag := frag.(type) {
		case Raw:
			b.WriteString(string(frag))
		case Escaped:
			b.WriteRune(rune(frag))
		}
	}

	if b.Len() == 0 {
		return borrowed, nil
	}

	return b.String(), nil
}

// AppendUnescaped appends s with all escape sequences decoded to dst and returns
// the extended buffer. On error, dst is returned with its original length.
func AppendUnescaped(dst []byte, s string) ([]byte, error) {
	n := len(dst)

	for frag, err := range New(s).Fragments() {
		if err != nil {
			return dst[:n], err
		}

		dst = frag.AppendTo(dst)
	}

	return dst, nil
}
