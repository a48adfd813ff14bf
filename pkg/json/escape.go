package json

import (
	"bytes"
)

// escapeChars is every byte Escape rewrites.
const escapeChars = "\b\f\n\r\t\v\"\\/"

// decodeEscape maps the letter following a backslash to the byte it stands
// for. The apostrophe is accepted on input but never produced by Escape.
func decodeEscape(letter byte) (byte, bool) {
	switch letter {
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case 'v':
		return '\v', true
	case '"', '\\', '/', '\'':
		return letter, true
	}
	return 0, false
}

// encodeEscape is the inverse of decodeEscape restricted to escapeChars.
func encodeEscape(c byte) (byte, bool) {
	switch c {
	case '\b':
		return 'b', true
	case '\f':
		return 'f', true
	case '\n':
		return 'n', true
	case '\r':
		return 'r', true
	case '\t':
		return 't', true
	case '\v':
		return 'v', true
	case '"', '\\', '/':
		return c, true
	}
	return 0, false
}

// Escape returns src with control characters, quotes, backslashes and slashes
// replaced by their backslash escapes, ready to be placed between double
// quotes. If nothing needs escaping src itself is returned. All other bytes,
// including non-ASCII, are copied as is.
func Escape(src []byte) []byte {
	i := bytes.IndexAny(src, escapeChars)
	if i < 0 {
		return src
	}

	dst := make([]byte, 0, 2*len(src))
	dst = append(dst, src[:i]...)
	for _, c := range src[i:] {
		if letter, ok := encodeEscape(c); ok {
			dst = append(dst, '\\', letter)
			continue
		}
		dst = append(dst, c)
	}
	return dst
}

// EscapeString is Escape for strings.
func EscapeString(s string) string {
	escaped := Escape([]byte(s))
	return string(escaped)
}

// Quote returns the escaped form of src enclosed in double quotes.
func Quote(src []byte) []byte {
	escaped := Escape(src)
	dst := make([]byte, 0, len(escaped)+2)
	dst = append(dst, '"')
	dst = append(dst, escaped...)
	return append(dst, '"')
}
