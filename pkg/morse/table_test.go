package morse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupFoldsCase(t *testing.T) {
	for c := byte('a'); c <= 'z'; c++ {
		upper := c - ('a' - 'A')
		require.Equalf(t, Lookup(c), Lookup(upper), "entry mismatch for %q/%q", c, upper)
	}
}

func TestLookupTotal(t *testing.T) {
	for code := 0; code < 256; code++ {
		e := Lookup(byte(code))
		require.LessOrEqual(t, e.Len, uint8(7), "code %#x", code)
		// Bit 7 of the code must be ignored.
		require.Equal(t, Lookup(byte(code&0x7f)), e, "code %#x", code)
	}
}

func TestLookupPatterns(t *testing.T) {
	testCases := []struct {
		code    byte
		pattern string
	}{
		{'e', "."},
		{'t', "-"},
		{'s', "..."},
		{'o', "---"},
		{'a', ".-"},
		{'q', "--.-"},
		{'0', "-----"},
		{'5', "....."},
		{'9', "----."},
		{'?', "..--.."},
		{'/', "-..-."},
		{'=', "-...-"},
		{'@', ".--.-."},
	}
	for _, tc := range testCases {
		t.Run(string(tc.code), func(t *testing.T) {
			e := Lookup(tc.code)
			require.Equal(t, uint8(len(tc.pattern)), e.Len)
			require.False(t, e.Silent)
			for i, sym := range tc.pattern {
				bit := e.Pattern >> uint(i) & 1
				if sym == '-' {
					require.Equalf(t, uint8(1), bit, "symbol %d should be a dash", i)
				} else {
					require.Equalf(t, uint8(0), bit, "symbol %d should be a dot", i)
				}
			}
		})
	}
}

func TestLookupDigitsLength(t *testing.T) {
	for c := byte('0'); c <= '9'; c++ {
		require.Equalf(t, uint8(5), Lookup(c).Len, "digit %q", c)
	}
}

func TestLookupSpace(t *testing.T) {
	e := Lookup(' ')
	require.True(t, e.Silent)
	require.Equal(t, uint8(WordGapUnits), e.Len)
	require.Equal(t, uint8(0), e.Pattern)
}

func TestLookupUnsupported(t *testing.T) {
	for _, code := range []byte{0x00, 0x07, '\n', '\t', '#', '%', '*', '<', '>', '[', '`', '{', 0x7f} {
		e := Lookup(code)
		require.Equalf(t, uint8(0), e.Len, "code %#x should be unmapped", code)
	}
}
