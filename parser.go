package flatyaml

import (
	"fmt"
	"strconv"
	"strings"
)

// builder consumes the lexer's token stream and applies each token's
// semantic action to the document. One builder instance owns the parse-time
// cursor for the duration of one parse call; it is not reentrant and is
// discarded afterwards.
type builder struct {
	lex *lexer
	doc *Document

	// currentKey names the mapping slot the next scalar or list-item
	// action writes to. Property keys set it explicitly; list items
	// synthesize it.
	currentKey string

	// listSeq numbers synthesized list keys within this parse.
	listSeq int
}

// newBuilder creates a builder that populates doc from lex.
func newBuilder(doc *Document, lex *lexer) *builder {
	return &builder{lex: lex, doc: doc}
}

// run drives the lexer to end of input, applying semantic actions in source
// order. Actions mutate the document before the next token is scanned, so a
// failed parse leaves whatever was already written in place.
func (b *builder) run() error {
	for {
		tk, err := b.lex.next()
		if err != nil {
			return err
		}

		switch tk.Type {
		case TokenEOF:
			return nil
		case TokenKey:
			b.onKey(tk.Value)
		case TokenString:
			b.onString(tk.Value)
		case TokenNumber:
			if err := b.onNumber(tk); err != nil {
				return err
			}
		case TokenListItem:
			b.onListItem(tk.Value)
		default:
			return &SyntaxError{
				Line:   tk.Line,
				Column: tk.Column,
				Msg:    fmt.Sprintf("unexpected token %s", tk),
			}
		}
	}
}

// onKey moves the cursor to the named slot. No entry is created yet.
func (b *builder) onKey(name string) {
	b.currentKey = name
}

// onString stores a string scalar at the cursor, overwriting any prior value.
func (b *builder) onString(text string) {
	b.doc.values[b.currentKey] = stringValue(text)
}

// onNumber stores an integer scalar at the cursor. The grammar admits real
// lexical forms but only the integer magnitude is retained: the fraction is
// truncated, matching the narrow numeric contract.
func (b *builder) onNumber(tk Token) error {
	text := tk.Value
	if i := strings.IndexByte(text, '.'); i >= 0 {
		text = text[:i]
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return &SyntaxError{
			Line:   tk.Line,
			Column: tk.Column,
			Msg:    fmt.Sprintf("invalid number %q: %v", tk.Value, err),
		}
	}
	b.doc.values[b.currentKey] = intValue(n)
	return nil
}

// onListItem appends a string item to the list at the cursor, creating it
// under a synthesized key first if the cursor's slot does not hold a list.
func (b *builder) onListItem(text string) {
	l := b.getOrCreateList()
	l.add(stringValue(text))
}

// getOrCreateList returns the list at the cursor's slot. When the slot holds
// anything else, it synthesizes a fresh key, moves the cursor there, and
// creates an empty list under it. Synthesized keys are "list-<n>" with a
// per-parse counter: user identifiers are alphanumeric only, so a key
// containing '-' cannot collide with them, and the counter keeps synthesized
// keys distinct from each other within one parse.
func (b *builder) getOrCreateList() *List {
	if v, ok := b.doc.values[b.currentKey]; ok && v.Kind() == KindList {
		return v.list
	}

	key := fmt.Sprintf("list-%d", b.listSeq)
	b.listSeq++
	b.currentKey = key

	l := &List{}
	b.doc.values[key] = listValue(l)
	return l
}
