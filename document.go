// Package flatyaml parses a restricted, flat subset of a YAML-like text
// format: unnested key/value mappings with string or integer scalars, and
// simple unordered lists of string items. Parsed documents are queried by
// key or list index with run-time type recovery.
package flatyaml

import (
	"bytes"
	"io"
	"sort"
)

// Document is the root value store populated by one parse invocation.
// It maps string keys to dynamically typed values; list entries live under
// synthesized keys (see the builder's key synthesis in parser.go).
//
// A Document is not safe for concurrent use and has no mutation API beyond
// the parse that populates it.
type Document struct {
	values map[string]Value
}

// newDocument creates an empty document.
func newDocument() *Document {
	return &Document{values: make(map[string]Value, 8)}
}

// Parse parses data into a new Document.
//
// On failure the error is a *SyntaxError carrying the position the input was
// consumed to, and the returned Document holds whatever entries were
// populated before the failure point: parsing is single-pass and not atomic.
func Parse(data []byte) (*Document, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseReader parses a document from r. See Parse.
func ParseReader(r io.Reader) (*Document, error) {
	d := newDocument()
	b := newBuilder(d, newLexer(r))
	return d, b.run()
}

// Len returns the number of entries in the document, synthesized list keys
// included.
func (d *Document) Len() int {
	return len(d.values)
}

// Has reports whether key exists in the document.
func (d *Document) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Keys returns all mapping keys in sorted order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.values))
	for k := range d.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the raw dynamic value stored at key.
func (d *Document) Get(key string) (Value, bool) {
	v, ok := d.values[key]
	return v, ok
}

// StringValue returns the string stored at key.
func (d *Document) StringValue(key string) (string, error) {
	return ValueAs[string](d, key)
}

// IntValue returns the integer stored at key.
func (d *Document) IntValue(key string) (int64, error) {
	return ValueAs[int64](d, key)
}

// List returns the document's list. A document is expected to hold at most
// one list; with several, which one is returned is undefined (mapping
// iteration order). It fails with *KeyNotFoundError when no list-typed
// entry exists.
func (d *Document) List() (*List, error) {
	for _, v := range d.values {
		if v.Kind() == KindList {
			return v.list, nil
		}
	}
	return nil, &KeyNotFoundError{}
}

// ValueAs returns the scalar stored at key as type T. It fails with
// *KeyNotFoundError when the key is absent and with *TypeMismatchError when
// the stored value is not of kind T.
func ValueAs[T Scalar](d *Document, key string) (T, error) {
	var zero T
	v, ok := d.values[key]
	if !ok {
		return zero, &KeyNotFoundError{Key: key}
	}
	out, ok := scalarAs[T](v)
	if !ok {
		return zero, &TypeMismatchError{Key: key, Want: kindOf[T](), Got: v.Kind()}
	}
	return out, nil
}

// iface returns the document as a plain map of Go values: string, int64,
// and []any for lists.
func (d *Document) iface() map[string]any {
	out := make(map[string]any, len(d.values))
	for k, v := range d.values {
		out[k] = v.iface()
	}
	return out
}
