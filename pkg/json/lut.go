package json

// Flags describes the lexical classes a byte belongs to.
type Flags uint8

const (
	FlagWhitespace Flags = 1 << iota
	FlagFloatMarker
	FlagWord
	FlagStructural
	FlagNumber
	// FlagStringTerminator marks bytes that stop the plain-text fast path
	// inside a quoted string: the quote, the backslash and 0x09-0x0D.
	FlagStringTerminator
)

const (
	ws  = FlagWhitespace
	ws2 = FlagWhitespace | FlagStringTerminator
	fm  = FlagNumber | FlagFloatMarker
	dg  = FlagNumber | FlagWord
	ex  = FlagNumber | FlagFloatMarker | FlagWord
	wd  = FlagWord
	st  = FlagStructural
	tm  = FlagStringTerminator
)

// lut is indexed by raw byte value. Bytes 0x80-0xFF have no class.
var lut = [256]Flags{
	'\t': ws2, '\n': ws2, '\v': ws2, '\f': ws2, '\r': ws2,
	' ': ws,

	'"': tm, '\\': tm,

	'{': st, '}': st, '[': st, ']': st, ':': st, ',': st,

	'+': fm, '-': fm, '.': fm,

	'0': dg, '1': dg, '2': dg, '3': dg, '4': dg,
	'5': dg, '6': dg, '7': dg, '8': dg, '9': dg,

	'A': wd, 'B': wd, 'C': wd, 'D': wd, 'E': ex, 'F': wd, 'G': wd,
	'H': wd, 'I': wd, 'J': wd, 'K': wd, 'L': wd, 'M': wd, 'N': wd,
	'O': wd, 'P': wd, 'Q': wd, 'R': wd, 'S': wd, 'T': wd, 'U': wd,
	'V': wd, 'W': wd, 'X': wd, 'Y': wd, 'Z': wd,

	'_': wd,

	'a': wd, 'b': wd, 'c': wd, 'd': wd, 'e': ex, 'f': wd, 'g': wd,
	'h': wd, 'i': wd, 'j': wd, 'k': wd, 'l': wd, 'm': wd, 'n': wd,
	'o': wd, 'p': wd, 'q': wd, 'r': wd, 's': wd, 't': wd, 'u': wd,
	'v': wd, 'w': wd, 'x': wd, 'y': wd, 'z': wd,
}

// Classify returns the lexical classes of c.
func Classify(c byte) Flags {
	return lut[c]
}

// Has reports whether all bits of want are set.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}

func findStructuralChar(buf []byte) (offset int, char byte) {
	for i, c := range buf {
		if lut[c]&FlagStructural != 0 {
			return i, c
		}
	}
	return -1, 0
}

func skipWhitespace(buf []byte) (offset int) {
	for i, c := range buf {
		if lut[c]&FlagWhitespace == 0 {
			return i
		}
	}
	return len(buf)
}
