package flatyaml

import "fmt"

// SyntaxError reports input that does not match the grammar. Line and Column
// locate the point the parse was consumed to before failing; entries written
// before that point remain in the document (parsing is not atomic).
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// KeyNotFoundError reports a query for a mapping key that does not exist.
// A List query on a document with no list-typed entry reports an empty Key.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	if e.Key == "" {
		return "document has no list"
	}
	return fmt.Sprintf("key %q not found in document", e.Key)
}

// TypeMismatchError reports a query whose requested kind does not match the
// stored value's dynamic kind. Key is set for document queries, Index for
// list queries.
type TypeMismatchError struct {
	Key   string
	Index int
	Want  Kind
	Got   Kind
}

func (e *TypeMismatchError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("key %q holds %s, not %s", e.Key, e.Got, e.Want)
	}
	return fmt.Sprintf("list index %d holds %s, not %s", e.Index, e.Got, e.Want)
}

// IndexOutOfRangeError reports a list index query beyond the current count.
type IndexOutOfRangeError struct {
	Index int
	Count int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("list index %d out of range [0:%d)", e.Index, e.Count)
}
