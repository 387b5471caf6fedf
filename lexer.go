package flatyaml

import (
	"bufio"
	"fmt"
	"io"
)

// lexer tokenizes flat document input from an io.Reader.
//
// It produces a sequence of role-tagged tokens (TokenKey, TokenString,
// TokenNumber, TokenListItem) that a builder consumes in source order.
// The lexer carries one bit of grammar context: after a key's ':' it is in
// value position, where '-' reads as a numeric sign rather than a list item
// marker and bare words are restricted to letters.
type lexer struct {
	r *bufio.Reader

	line    []byte // Current line being processed.
	lineBuf []byte // Reusable buffer for reading lines.
	lineNum int    // Current line number (1-based).
	pos     int    // Position within current line.
	eof     bool   // True if EOF reached.
	err     error  // First read error encountered.
	inValue bool   // True between a property's ':' and its scalar.
}

// newLexer creates a new lexer that reads from r.
func newLexer(r io.Reader) *lexer {
	return &lexer{
		r:       bufio.NewReader(r),
		lineBuf: make([]byte, 0, 256),
	}
}

// next returns the next token, consuming it.
func (l *lexer) next() (Token, error) {
	if l.err != nil {
		return Token{Type: TokenError, Value: l.err.Error()}, l.err
	}

	if err := l.skipSpace(); err != nil {
		if err == io.EOF {
			if l.inValue {
				serr := l.errorf("unexpected end of input, expected a value")
				return Token{Type: TokenError, Value: serr.Error()}, serr
			}
			return Token{Type: TokenEOF, Line: l.lineNum}, nil
		}
		l.err = err
		return Token{Type: TokenError, Value: err.Error()}, err
	}

	if l.inValue {
		return l.scanScalar()
	}

	c := l.line[l.pos]
	switch {
	case c == '-':
		return l.scanListItem()
	case isAlphaNum(c):
		return l.scanKey()
	default:
		err := l.errorf("unexpected character '%c'", c)
		return Token{Type: TokenError, Value: err.Error()}, err
	}
}

// skipSpace advances past insignificant whitespace, reading new lines as
// needed. Newlines carry no meaning beyond being whitespace. Returns io.EOF
// when the input is exhausted.
func (l *lexer) skipSpace() error {
	for {
		for l.pos < len(l.line) && isSpace(l.line[l.pos]) {
			l.pos++
		}
		if l.pos < len(l.line) {
			return nil
		}
		if l.eof {
			return io.EOF
		}
		if err := l.readLine(); err != nil {
			if err == io.EOF {
				l.eof = true
			}
			return err
		}
	}
}

// readLine reads the next line from input, reusing the internal buffer.
func (l *lexer) readLine() error {
	l.lineBuf = l.lineBuf[:0]

	for {
		b, err := l.r.ReadByte()
		if err != nil {
			if err == io.EOF {
				if len(l.lineBuf) == 0 {
					return io.EOF
				}
				// EOF with data - process as final line.
				l.eof = true
				break
			}
			return err
		}
		if b == '\n' {
			break
		}
		l.lineBuf = append(l.lineBuf, b)
	}

	l.lineNum++
	l.line = l.lineBuf
	l.pos = 0

	return nil
}

// scanKey scans a property identifier and its ':' indicator.
// The ':' may be separated from the identifier by insignificant whitespace.
func (l *lexer) scanKey() (Token, error) {
	var (
		startLine = l.lineNum
		startCol  = l.pos
		start     = l.pos
	)
	for l.pos < len(l.line) && isAlphaNum(l.line[l.pos]) {
		l.pos++
	}
	key := string(l.line[start:l.pos])

	if err := l.skipSpace(); err != nil || l.line[l.pos] != ':' {
		if err != nil && err != io.EOF {
			l.err = err
			return Token{Type: TokenError, Value: err.Error()}, err
		}
		serr := l.errorf("expected ':' after key '%s'", key)
		return Token{Type: TokenError, Value: serr.Error()}, serr
	}
	l.pos++
	l.inValue = true

	return Token{
		Type:   TokenKey,
		Value:  key,
		Line:   startLine,
		Column: startCol,
	}, nil
}

// scanScalar scans a property value: a numeric literal first, else a
// letters-only string. Anything else fails the parse.
func (l *lexer) scanScalar() (Token, error) {
	startCol := l.pos
	c := l.line[l.pos]

	if c == '-' || isDigit(c) {
		return l.scanNumber()
	}

	if isAlpha(c) {
		start := l.pos
		for l.pos < len(l.line) && isAlpha(l.line[l.pos]) {
			l.pos++
		}
		l.inValue = false
		return Token{
			Type:   TokenString,
			Value:  string(l.line[start:l.pos]),
			Line:   l.lineNum,
			Column: startCol,
		}, nil
	}

	err := l.errorf("unexpected character '%c' when parsing value", c)
	return Token{Type: TokenError, Value: err.Error()}, err
}

// scanNumber scans a numeric literal: optional '-', digits, and an optional
// fraction. The fraction's dot is consumed only when digits follow it.
func (l *lexer) scanNumber() (Token, error) {
	var (
		startCol = l.pos
		start    = l.pos
	)
	if l.line[l.pos] == '-' {
		l.pos++
		if l.pos >= len(l.line) || !isDigit(l.line[l.pos]) {
			err := l.errorf("invalid character after '-'")
			return Token{Type: TokenError, Value: err.Error()}, err
		}
	}
	for l.pos < len(l.line) && isDigit(l.line[l.pos]) {
		l.pos++
	}
	if l.pos+1 < len(l.line) && l.line[l.pos] == '.' && isDigit(l.line[l.pos+1]) {
		l.pos++
		for l.pos < len(l.line) && isDigit(l.line[l.pos]) {
			l.pos++
		}
	}
	l.inValue = false

	return Token{
		Type:   TokenNumber,
		Value:  string(l.line[start:l.pos]),
		Line:   l.lineNum,
		Column: startCol,
	}, nil
}

// scanListItem scans a '-' marker and its item text: zero or more
// alphanumeric characters, possibly separated from the marker by
// insignificant whitespace.
func (l *lexer) scanListItem() (Token, error) {
	var (
		startLine = l.lineNum
		startCol  = l.pos
	)
	l.pos++ // Consume '-'.

	if err := l.skipSpace(); err != nil {
		if err == io.EOF {
			// '-' at end of input is an empty item.
			return Token{Type: TokenListItem, Line: startLine, Column: startCol}, nil
		}
		l.err = err
		return Token{Type: TokenError, Value: err.Error()}, err
	}

	start := l.pos
	for l.pos < len(l.line) && isAlphaNum(l.line[l.pos]) {
		l.pos++
	}

	return Token{
		Type:   TokenListItem,
		Value:  string(l.line[start:l.pos]),
		Line:   startLine,
		Column: startCol,
	}, nil
}

// errorf creates a syntax error at the lexer's current position.
func (l *lexer) errorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Line:   l.lineNum,
		Column: l.pos,
		Msg:    fmt.Sprintf(format, args...),
	}
}

// Helper functions for character classification.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
