package json

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminatedString   = errors.New("unterminated string")
	ErrInvalidUnicodeEscape = errors.New("invalid unicode escape sequence")
	ErrEncoding             = errors.New("unicode code point out of range")
	ErrInvalidNumber        = errors.New("invalid number")
	ErrInvalidWord          = errors.New("invalid word")
	ErrUnexpectedByte       = errors.New("unexpected character")

	// Lexer policy violations.
	ErrMaxDepth       = errors.New("maximum depth exceeded")
	ErrUnmatchedClose = errors.New("unmatched closing bracket")
	ErrStringTooLong  = errors.New("string exceeds maximum length")
)

// maxExcerpt bounds how much of the input a ScanError quotes.
const maxExcerpt = 32

// ScanError reports where in the buffer a token failed to scan. Kind is one of
// the Err* values above.
type ScanError struct {
	Kind    error
	Offset  int
	Excerpt string
}

func (e *ScanError) Error() string {
	if e.Excerpt == "" {
		return fmt.Sprintf("%v at position %d", e.Kind, e.Offset)
	}
	return fmt.Sprintf("%v at position %d: %q", e.Kind, e.Offset, e.Excerpt)
}

func (e *ScanError) Unwrap() error { return e.Kind }

// newScanError quotes the input from offset up to the next structural
// character, capped at maxExcerpt bytes.
func newScanError(kind error, buf []byte, offset int) error {
	if offset < 0 || offset > len(buf) {
		return &ScanError{Kind: kind, Offset: offset}
	}

	rest := buf[offset:]
	n := len(rest)
	// The offending byte itself may be structural, so search after it.
	if len(rest) > 1 {
		if i, _ := findStructuralChar(rest[1:]); i >= 0 {
			n = i + 1
		}
	}
	if n > maxExcerpt {
		n = maxExcerpt
	}

	return &ScanError{Kind: kind, Offset: offset, Excerpt: string(rest[:n])}
}
