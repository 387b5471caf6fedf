package flatyaml

import "fmt"

// TokenType represents the syntactic role of a lexical token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenError

	// Key token.
	TokenKey // Property identifier: alphanumeric, followed by ':'.

	// Value tokens.
	TokenString // Letters-only string scalar.
	TokenNumber // Numeric scalar (raw text, integer or real form).

	// Collection token.
	TokenListItem // '-' list item; Value carries the item text.
)

// Token represents a lexical token from flat document input.
type Token struct {
	Type   TokenType
	Value  string // Raw string value (key name, scalar text, item text).
	Line   int    // Line number (1-based).
	Column int    // Column position (0-based).
}

// String returns a human-readable representation of the token.
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return fmt.Sprintf("Error(%s)", t.Value)
	case TokenKey:
		return fmt.Sprintf("Key(%s)", t.Value)
	case TokenString:
		return fmt.Sprintf("String(%q)", t.Value)
	case TokenNumber:
		return fmt.Sprintf("Number(%s)", t.Value)
	case TokenListItem:
		return fmt.Sprintf("ListItem(%q)", t.Value)
	default:
		return fmt.Sprintf("Unknown(%d)", t.Type)
	}
}
