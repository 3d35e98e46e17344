// Package morse provides the symbol table mapping 7-bit character
// codes to Morse keying patterns.
package morse

// Timing ratios in Morse units. A dot keys the carrier for one unit,
// a dash for three. The gap between symbols of one character is one
// unit, the gap between characters is three. The word gap is realized
// by the space entry: seven silent units ahead of the normal
// character gap.
const (
	DotUnits       = 1
	DashUnits      = 3
	SymbolGapUnits = 1
	LetterGapUnits = 3
	WordGapUnits   = 7
)

// Entry is the keying pattern for one input code. Pattern holds up to
// 7 symbols, least significant bit first, 0 = dot, 1 = dash. Len is
// the number of valid bits; Len 0 marks an unsupported code which
// must be consumed without producing any signal. Silent entries
// occupy their symbol time with the carrier suppressed.
type Entry struct {
	Pattern uint8
	Len     uint8
	Silent  bool
}

// patterns lists the supported codes in dot/dash notation. Letters
// are entered lowercase; Lookup folds case.
var patterns = map[byte]string{
	'a': ".-", 'b': "-...", 'c': "-.-.", 'd': "-..",
	'e': ".", 'f': "..-.", 'g': "--.", 'h': "....",
	'i': "..", 'j': ".---", 'k': "-.-", 'l': ".-..",
	'm': "--", 'n': "-.", 'o': "---", 'p': ".--.",
	'q': "--.-", 'r': ".-.", 's': "...", 't': "-",
	'u': "..-", 'v': "...-", 'w': ".--", 'x': "-..-",
	'y': "-.--", 'z': "--..",

	'0': "-----", '1': ".----", '2': "..---", '3': "...--",
	'4': "....-", '5': ".....", '6': "-....", '7': "--...",
	'8': "---..", '9': "----.",

	'!': "-.-.--", '"': ".-..-.", '$': "...-.-", '&': ".-...",
	'\'': ".----.", '(': "-.--.", ')': "-.--.-", '+': ".-.-.",
	',': "--..--", '-': "-....-", '.': ".-.-.-", '/': "-..-.",
	':': "---...", ';': "-.-.-.", '=': "-...-", '?': "..--..",
	'@': ".--.-.", '_': "..--.-",
}

var table [128]Entry

func init() {
	for code, pat := range patterns {
		table[code] = compile(pat)
	}
	// Space is a timed gap, not an audible symbol: seven silent
	// dot-length units.
	table[' '] = Entry{Pattern: 0, Len: WordGapUnits, Silent: true}
}

func compile(pat string) Entry {
	var e Entry
	for i := 0; i < len(pat); i++ {
		if pat[i] == '-' {
			e.Pattern |= 1 << uint(i)
		}
	}
	e.Len = uint8(len(pat))
	return e
}

// Lookup returns the entry for a 7-bit code. It is total: uppercase
// and lowercase letters fold to the same entry, and any unsupported
// code yields a zero-length entry.
func Lookup(code byte) Entry {
	code &= 0x7f
	if code >= 'A' && code <= 'Z' {
		code += 'a' - 'A'
	}
	return table[code]
}
