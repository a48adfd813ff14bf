package json

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Kind identifies the type of a Token.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindObjectStart
	KindObjectEnd
	KindArrayStart
	KindArrayEnd
	KindColon
	KindComma
	KindString
	KindNumber
	KindWord
	KindEOF
)

var kindNames = [...]string{
	KindInvalid:     "invalid",
	KindObjectStart: "{",
	KindObjectEnd:   "}",
	KindArrayStart:  "[",
	KindArrayEnd:    "]",
	KindColon:       ":",
	KindComma:       ",",
	KindString:      "string",
	KindNumber:      "number",
	KindWord:        "word",
	KindEOF:         "eof",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Token is one lexical unit. Span always covers the source bytes of the
// token, including the quotes of a string. Value holds the decoded contents
// of a string and is nil for every other kind.
type Token struct {
	Kind   Kind
	Span   Span
	Value  []byte
	Float  bool
	Signed bool
}

// Offset is the index of the first byte of the token.
func (t Token) Offset() int {
	return t.Span.Start
}

// Lexer splits a fully buffered JSON-like document into tokens.
// It does not assemble values: a caller that wants a tree drives Next and
// checks the grammar itself. The only structure tracked is nesting depth.
type Lexer struct {
	logger zerolog.Logger

	buffer []byte
	cursor int // Points to the first byte not yet tokenized
	depth  int

	// Parsing policy
	maxDepth        int
	maxStringLength int
}

// Create a new Lexer over buffer. The buffer must not be modified while
// tokens referring to it are in use.
func NewLexer(buffer []byte) *Lexer {
	return &Lexer{
		logger: log.Logger.With().Str("component", "json").Logger(),
		buffer: buffer,

		maxDepth:        20,
		maxStringLength: 9999,
	}
}

func (l *Lexer) SetLogger(logger zerolog.Logger) {
	l.logger = logger
}

// SetMaxDepth limits how deeply objects and arrays may nest.
func (l *Lexer) SetMaxDepth(n int) {
	l.maxDepth = n
}

// SetMaxStringLength limits the decoded length of a string token.
func (l *Lexer) SetMaxStringLength(n int) {
	l.maxStringLength = n
}

func (l *Lexer) Cursor() int       { return l.cursor }
func (l *Lexer) Depth() int        { return l.depth }
func (l *Lexer) BufferLength() int { return len(l.buffer) }
func (l *Lexer) Buffer() []byte    { return l.buffer }

// BufferContent returns the untokenized remainder of the buffer, truncated
// for logging.
func (l *Lexer) BufferContent() string {
	rest := l.buffer[l.cursor:]
	if len(rest) > 256 {
		return string(rest[:256]) + "..."
	}
	return string(rest)
}

// Next returns the next token. At the end of the buffer it returns a
// KindEOF token and io.EOF. After an error the cursor is left on the
// offending byte.
func (l *Lexer) Next() (Token, error) {
	l.cursor += skipWhitespace(l.buffer[l.cursor:])
	if l.cursor >= len(l.buffer) {
		return Token{Kind: KindEOF, Span: Span{Start: l.cursor}}, io.EOF
	}

	start := l.cursor
	c := l.buffer[start]
	flags := lut[c]

	switch {
	case flags&FlagStructural != 0:
		return l.structural(c, start)

	case c == '"':
		value, end, err := scanString(l.buffer, start, &l.logger)
		if err != nil {
			return Token{}, err
		}
		if len(value) > l.maxStringLength {
			return Token{}, newScanError(ErrStringTooLong, l.buffer, start)
		}
		l.cursor = end + 1
		return Token{
			Kind:  KindString,
			Span:  Span{Start: start, Len: end - start + 1},
			Value: value,
		}, nil

	case c == '-' || ('0' <= c && c <= '9'):
		num, end, err := ScanNumber(l.buffer, start)
		if err != nil {
			return Token{}, err
		}
		l.cursor = end + 1
		return Token{
			Kind:   KindNumber,
			Span:   num.Span,
			Float:  num.Float,
			Signed: num.Signed,
		}, nil

	case flags&FlagWord != 0:
		span, end, err := ScanWord(l.buffer, start)
		if err != nil {
			return Token{}, err
		}
		l.cursor = end + 1
		return Token{Kind: KindWord, Span: span}, nil
	}

	return Token{}, newScanError(ErrUnexpectedByte, l.buffer, start)
}

func (l *Lexer) structural(c byte, start int) (Token, error) {
	var kind Kind
	switch c {
	case '{', '[':
		l.depth++
		if l.depth > l.maxDepth {
			l.depth--
			return Token{}, newScanError(ErrMaxDepth, l.buffer, start)
		}
		kind = KindObjectStart
		if c == '[' {
			kind = KindArrayStart
		}
	case '}', ']':
		if l.depth == 0 {
			return Token{}, newScanError(ErrUnmatchedClose, l.buffer, start)
		}
		l.depth--
		kind = KindObjectEnd
		if c == ']' {
			kind = KindArrayEnd
		}
	case ':':
		kind = KindColon
	case ',':
		kind = KindComma
	}

	l.cursor = start + 1
	return Token{Kind: kind, Span: Span{Start: start, Len: 1}}, nil
}

// DecodeAll calls cb for every token up to the end of the buffer. The first
// error is passed to errCb and stops the walk.
func (l *Lexer) DecodeAll(cb func(Token), errCb func(error)) {
	for {
		tok, err := l.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			l.logger.Debug().Err(err).Int("cursor", l.cursor).Msg("Tokenizing stopped")
			errCb(err)
			return
		}
		cb(tok)
	}
}

// Tokenize returns all tokens of buf using the default policy.
func Tokenize(buf []byte) ([]Token, error) {
	var (
		tokens []Token
		failed error
	)
	NewLexer(buf).DecodeAll(func(tok Token) {
		tokens = append(tokens, tok)
	}, func(err error) {
		failed = err
	})
	if failed != nil {
		return tokens, failed
	}
	return tokens, nil
}
