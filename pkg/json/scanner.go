package json

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Span is a non-owning reference into the buffer a token was scanned from.
// It is only meaningful together with that buffer, which must stay unmodified
// for as long as the span is used.
type Span struct {
	Start int
	Len   int
}

// End is the index one past the last byte of the span.
func (s Span) End() int {
	return s.Start + s.Len
}

// Bytes returns the spanned bytes of buf without copying.
func (s Span) Bytes(buf []byte) []byte {
	end := s.End()
	return buf[s.Start:end:end]
}

// Text returns a copy of the spanned bytes of buf.
func (s Span) Text(buf []byte) string {
	return string(s.Bytes(buf))
}

// Number is the result of ScanNumber. The literal is not converted.
type Number struct {
	Span
	Float  bool // a '.', 'e', 'E', '+' or inner '-' occurred
	Signed bool // the literal starts with '-'
}

// Parsing state inside a quoted string
type stringState uint8

const (
	stateNormal stringState = iota
	stateEscaped
)

// ScanString decodes the quoted string whose opening quote is at buf[pos].
// It returns the decoded bytes, which do not alias buf, and the index of the
// closing quote.
//
// Unknown escapes such as `\q` are not an error: the letter is kept and a
// warning is written to the global zerolog logger.
func ScanString(buf []byte, pos int) (value []byte, end int, err error) {
	return scanString(buf, pos, &log.Logger)
}

func scanString(buf []byte, pos int, logger *zerolog.Logger) ([]byte, int, error) {
	if pos < 0 || pos >= len(buf) || buf[pos] != '"' {
		return nil, pos, newScanError(ErrUnexpectedByte, buf, pos)
	}

	// Copy the leading run of plain text in one go
	start := pos + 1
	i := start
	for i < len(buf) && lut[buf[i]]&FlagStringTerminator == 0 {
		i++
	}
	value := make([]byte, 0, i-start+8)
	value = append(value, buf[start:i]...)

	state := stateNormal
	for ; i < len(buf); i++ {
		c := buf[i]

		if state == stateEscaped {
			state = stateNormal

			if c == 'u' {
				// buf[i-1] is the backslash
				if len(buf)-i-1 < 4 {
					return nil, pos, newScanError(ErrInvalidUnicodeEscape, buf, i-1)
				}
				cp, ok := parseHex4(buf[i+1 : i+5])
				if !ok {
					return nil, pos, newScanError(ErrInvalidUnicodeEscape, buf, i-1)
				}
				var err error
				if value, err = appendCodePoint(value, cp); err != nil {
					return nil, pos, newScanError(err, buf, i-1)
				}
				i += 4
				continue
			}

			if d, ok := decodeEscape(c); ok {
				value = append(value, d)
				continue
			}

			logger.Warn().
				Str("sequence", "\\"+string(c)).
				Int("position", i-1).
				Msg("Unknown escape sequence")
			value = append(value, c)
			continue
		}

		switch c {
		case '"':
			return value, i, nil
		case '\\':
			state = stateEscaped
		default:
			value = append(value, c)
		}
	}

	return nil, pos, newScanError(ErrUnterminatedString, buf, pos)
}

// parseHex4 decodes exactly four hex digits of either case.
func parseHex4(digits []byte) (uint32, bool) {
	var v uint32
	for _, b := range digits[:4] {
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v |= uint32(b - '0')
		case 'a' <= b && b <= 'f':
			v |= uint32(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v |= uint32(b - 'A' + 10)
		default:
			return 0, false
		}
	}
	return v, true
}

// appendCodePoint writes cp as UTF-8 by range alone. Surrogate halves are
// written as their 3-byte form, they are not paired.
func appendCodePoint(dst []byte, cp uint32) ([]byte, error) {
	switch {
	case cp <= 0x7f:
		return append(dst, byte(cp)), nil
	case cp <= 0x7ff:
		return append(dst,
			0xc0|byte(cp>>6),
			0x80|byte(cp&0x3f),
		), nil
	case cp <= 0xffff:
		return append(dst,
			0xe0|byte(cp>>12),
			0x80|byte((cp>>6)&0x3f),
			0x80|byte(cp&0x3f),
		), nil
	}
	return dst, ErrEncoding
}

// ScanNumber consumes the numeric literal starting at buf[pos], an optional
// '-' followed by a maximal run of number characters. It returns the index of
// the last byte consumed.
func ScanNumber(buf []byte, pos int) (Number, int, error) {
	if pos < 0 || pos >= len(buf) {
		return Number{}, pos, newScanError(ErrInvalidNumber, buf, pos)
	}

	num := Number{Span: Span{Start: pos}}
	i := pos
	if buf[i] == '-' {
		num.Signed = true
		i++
	}

	digits := i
	var seen Flags
	for ; i < len(buf); i++ {
		flags := lut[buf[i]]
		if flags&FlagNumber == 0 {
			break
		}
		seen |= flags
	}
	if i == digits {
		return Number{}, pos, newScanError(ErrInvalidNumber, buf, pos)
	}

	num.Len = i - pos
	num.Float = seen&FlagFloatMarker != 0
	return num, i - 1, nil
}

// ScanWord consumes the run of word characters starting at buf[pos], as used
// by true, false, null and bare identifiers. It returns the index of the last
// byte consumed.
func ScanWord(buf []byte, pos int) (Span, int, error) {
	if pos < 0 || pos > len(buf) {
		return Span{}, pos, newScanError(ErrInvalidWord, buf, pos)
	}

	i := pos
	for i < len(buf) && lut[buf[i]]&FlagWord != 0 {
		i++
	}
	if i == pos {
		return Span{}, pos, newScanError(ErrInvalidWord, buf, pos)
	}

	return Span{Start: pos, Len: i - pos}, i - 1, nil
}
