package unescape

import (
	"github.com/stretchr/testify/require"
	"strconv"
	"testing"
	"unsafe"
)

func TestEscape(t *testing.T) {
	type testCase struct {
		Input string
		Want  string
	}

	cases := []testCase{
		{Input: "a\tb", Want: `a\tb`},
		{Input: "\r\n", Want: `\r\n`},
		{Input: `"'\`, Want: `\"\'\\`},
		{Input: "café", Want: `caf\u{e9}`},
		{Input: "\x00", Want: `\u{0}`},
		{Input: "\x1b[0m", Want: `\u{1b}[0m`},
		{Input: "\x7f", Want: `\u{7f}`},
		{Input: "\U0010FFFF", Want: `\u{10ffff}`},
		{Input: "\xff", Want: `\u{fffd}`},
		{Input: "/", Want: "/"},
	}

	for _, tc := range cases {
		t.Run(strconv.Quote(tc.Input), func(t *testing.T) {
			require.Equal(t, tc.Want, Escape(tc.Input))
		})
	}
}

func TestEscapeKeepsPlainString(t *testing.T) {
	input := "nothing to escape here: ~!@#$%^&*()"

	got := Escape(input)
	require.Equal(t, input, got)
	require.Same(t, unsafe.StringData(input), unsafe.StringData(got))
}

func TestAppendEscaped(t *testing.T) {
	require.Equal(t, []byte(`x=\n`), AppendEscaped([]byte("x="), []byte("\n")))
	require.Equal(t, []byte(`plain`), AppendEscaped(nil, []byte("plain")))
	require.Empty(t, AppendEscaped(nil, nil))
}

func TestAppendHex(t *testing.T) {
	require.Equal(t, "0", string(appendHex(nil, uint8(0))))
	require.Equal(t, "ff", string(appendHex(nil, uint8(255))))
	require.Equal(t, "10ffff", string(appendHex(nil, uint32(0x10FFFF))))
	require.Equal(t, "ffffffffffffffff", string(appendHex(nil, uint64(1<<64-1))))
}
