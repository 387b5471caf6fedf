package flatyaml

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"sync"
)

// Marshal returns the flat document encoding of v.
//
// The top-level value must be a map with string keys, a struct, a slice, or
// a *Document. Map and struct entries become `key: value` property lines in
// sorted key order; one entry (or the top-level value itself) may be a slice,
// which becomes `- item` list lines after the properties. The format is
// flat: nested maps, structs, and slices of slices are not representable.
//
// Scalars must fit the restricted grammar: keys are alphanumeric, string
// values are letters only, list items are alphanumeric, and numbers are
// integers. Anything else fails with an error rather than emitting text the
// parser would reject.
//
// Struct fields can be renamed or skipped with `flatyaml` tags:
//
//	Field int `flatyaml:"count"`
//	Field int `flatyaml:"-"`
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// An Encoder writes flat documents to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the flat document encoding of v to the stream. See the
// documentation for Marshal for details about the conversion.
func (enc *Encoder) Encode(v any) error {
	if d, ok := v.(*Document); ok {
		v = d.iface()
	}

	s := newState(enc.w)
	s.marshalDocument(reflect.ValueOf(v))
	err := s.err
	putState(s)
	return err
}

// state holds the encoding state for a single Marshal or Encode call.
type state struct {
	w   io.Writer
	err error
}

var statePool = sync.Pool{
	New: func() any {
		return new(state)
	},
}

// newState retrieves a new state from the pool.
func newState(w io.Writer) *state {
	s := statePool.Get().(*state)
	s.w = w
	return s
}

// putState returns a state to the pool.
func putState(s *state) {
	s.w = nil
	s.err = nil
	statePool.Put(s)
}

// write is a helper to write a string to the output writer, stopping
// immediately if an error has occurred.
func (s *state) write(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, str)
}

// entry is one named document slot gathered from a map or struct.
type entry struct {
	key   string
	value reflect.Value
}

// marshalDocument dispatches on the top-level value's kind.
func (s *state) marshalDocument(v reflect.Value) {
	v = indirect(v, &s.err)
	if s.err != nil {
		return
	}
	if !v.IsValid() {
		s.err = fmt.Errorf("flatyaml: cannot marshal nil value")
		return
	}

	switch v.Kind() {
	case reflect.Map:
		s.marshalEntries(s.mapEntries(v))
	case reflect.Struct:
		s.marshalEntries(s.structEntries(v))
	case reflect.Slice, reflect.Array:
		s.marshalListItems(v)
	default:
		s.err = fmt.Errorf("flatyaml: top-level value must be a map, struct, or slice, not %s", v.Kind())
	}
}

// mapEntries gathers a map's entries in sorted key order.
func (s *state) mapEntries(v reflect.Value) []entry {
	if v.Type().Key().Kind() != reflect.String {
		s.err = fmt.Errorf("flatyaml: map key type must be a string, not %s", v.Type().Key())
		return nil
	}

	keys := v.MapKeys()
	// Sort keys to make the output deterministic.
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})

	entries := make([]entry, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, entry{key: key.String(), value: v.MapIndex(key)})
	}
	return entries
}

// structEntries gathers a struct's exported fields, honoring flatyaml tags.
func (s *state) structEntries(v reflect.Value) []entry {
	var entries []entry
	for i := 0; i < v.NumField(); i++ {
		field := v.Type().Field(i)
		if !field.IsExported() {
			continue
		}
		name := getFieldName(field)
		if name == "-" {
			continue
		}
		entries = append(entries, entry{key: name, value: v.Field(i)})
	}
	return entries
}

// marshalEntries writes property lines for the scalar entries and list lines
// for the single list entry, if any.
func (s *state) marshalEntries(entries []entry) {
	if s.err != nil {
		return
	}

	var listVal reflect.Value
	for _, e := range entries {
		val := indirect(e.value, &s.err)
		if s.err != nil {
			return
		}
		if !val.IsValid() {
			s.err = fmt.Errorf("flatyaml: key %q holds a nil value", e.key)
			return
		}

		if val.Kind() == reflect.Slice || val.Kind() == reflect.Array {
			// Lists are anonymous in the format; the key is dropped and at
			// most one list can round-trip through a document.
			if listVal.IsValid() {
				s.err = fmt.Errorf("flatyaml: a document can hold at most one list")
				return
			}
			listVal = val
			continue
		}

		s.writeProperty(e.key, val)
		if s.err != nil {
			return
		}
	}

	if listVal.IsValid() {
		s.marshalListItems(listVal)
	}
}

// writeProperty writes one `key: value` line.
func (s *state) writeProperty(key string, val reflect.Value) {
	if !bareKeyRegex.MatchString(key) {
		s.err = fmt.Errorf("flatyaml: key %q is not alphanumeric", key)
		return
	}

	text, err := s.scalarText(val)
	if err != nil {
		s.err = fmt.Errorf("flatyaml: key %q: %w", key, err)
		return
	}

	s.write(key)
	s.write(": ")
	s.write(text)
	s.write("\n")
}

// scalarText renders a property value, enforcing the grammar's scalar rules.
func (s *state) scalarText(val reflect.Value) (string, error) {
	switch val.Kind() {
	case reflect.String:
		str := val.String()
		if !letterValueRegex.MatchString(str) {
			return "", fmt.Errorf("string value %q must be letters only", str)
		}
		return str, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(val.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(val.Uint(), 10), nil
	default:
		return "", fmt.Errorf("unsupported value type %s", val.Kind())
	}
}

// marshalListItems writes `- item` lines for each element.
func (s *state) marshalListItems(v reflect.Value) {
	for i := 0; i < v.Len(); i++ {
		elem := indirect(v.Index(i), &s.err)
		if s.err != nil {
			return
		}
		if !elem.IsValid() {
			s.err = fmt.Errorf("flatyaml: list item %d is nil", i)
			return
		}

		var text string
		switch elem.Kind() {
		case reflect.String:
			text = elem.String()
			if !listItemRegex.MatchString(text) {
				s.err = fmt.Errorf("flatyaml: list item %q must be alphanumeric", text)
				return
			}
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n := elem.Int()
			if n < 0 {
				s.err = fmt.Errorf("flatyaml: list item %d must not be negative", n)
				return
			}
			text = strconv.FormatInt(n, 10)
		default:
			s.err = fmt.Errorf("flatyaml: unsupported list item type %s", elem.Kind())
			return
		}

		s.write("- ")
		s.write(text)
		s.write("\n")
	}
}

// Patterns for text the restricted grammar can represent: bare keys are
// alphanumeric, string values are letters only, list items are alphanumeric
// (and may be empty).
var (
	bareKeyRegex     = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	letterValueRegex = regexp.MustCompile(`^[a-zA-Z]+$`)
	listItemRegex    = regexp.MustCompile(`^[a-zA-Z0-9]*$`)
)

// indirect walks down pointers and interfaces to the concrete value. A nil
// pointer yields an invalid reflect.Value. The loop limit guards against
// circular structures.
func indirect(v reflect.Value, err *error) reflect.Value {
	for i := 0; i < 1000; i++ {
		if !v.IsValid() {
			return v
		}
		kind := v.Kind()
		if kind != reflect.Pointer && kind != reflect.Interface {
			return v
		}
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	*err = fmt.Errorf("flatyaml: encountered a circular or excessively deep data structure")
	return reflect.Value{}
}
