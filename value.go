package flatyaml

import "fmt"

// Kind identifies the dynamic kind held by a Value.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindInt
	KindList
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindList:
		return "list"
	default:
		return "invalid"
	}
}

// Value is a tagged union holding exactly one of a string, an integer, or a
// list. The zero Value holds nothing (KindInvalid). Values are owned by
// their Document mapping slot or List sequence slot and are never shared.
type Value struct {
	kind Kind
	str  string
	num  int64
	list *List
}

func stringValue(s string) Value { return Value{kind: KindString, str: s} }
func intValue(n int64) Value     { return Value{kind: KindInt, num: n} }
func listValue(l *List) Value    { return Value{kind: KindList, list: l} }

// Kind returns the dynamic kind held by the value.
func (v Value) Kind() Kind {
	return v.kind
}

// String returns a human-readable representation of the value.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return fmt.Sprintf("String(%q)", v.str)
	case KindInt:
		return fmt.Sprintf("Integer(%d)", v.num)
	case KindList:
		return fmt.Sprintf("List(%d items)", v.list.Count())
	default:
		return "Invalid"
	}
}

// iface returns the plain Go value: string, int64, or []any for lists.
func (v Value) iface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.num
	case KindList:
		return v.list.iface()
	default:
		return nil
	}
}

// Scalar constrains the result kinds recoverable from a typed query.
type Scalar interface {
	string | int64
}

// kindOf maps a Scalar type parameter to its Kind tag.
func kindOf[T Scalar]() Kind {
	var zero T
	if _, ok := any(zero).(string); ok {
		return KindString
	}
	return KindInt
}

// scalarAs recovers a typed scalar from a value. The second return is false
// when the value's dynamic kind does not match T.
func scalarAs[T Scalar](v Value) (T, bool) {
	var zero T
	switch any(zero).(type) {
	case string:
		if v.kind == KindString {
			return any(v.str).(T), true
		}
	case int64:
		if v.kind == KindInt {
			return any(v.num).(T), true
		}
	}
	return zero, false
}

// List is an ordered, append-only sequence of dynamic values. Indices are
// 0-based and stable once assigned. The grammar only ever inserts string
// items during parsing.
type List struct {
	items []Value
}

// add appends an item to the list.
func (l *List) add(v Value) {
	l.items = append(l.items, v)
}

// Count returns the number of items in the list.
func (l *List) Count() int {
	return len(l.items)
}

// At returns the item at index.
func (l *List) At(index int) (Value, error) {
	if index < 0 || index >= len(l.items) {
		return Value{}, &IndexOutOfRangeError{Index: index, Count: len(l.items)}
	}
	return l.items[index], nil
}

// StringAt returns the string item at index.
func (l *List) StringAt(index int) (string, error) {
	return ListValueAs[string](l, index)
}

// iface returns the list as a plain []any of Go values.
func (l *List) iface() []any {
	out := make([]any, len(l.items))
	for i, item := range l.items {
		out[i] = item.iface()
	}
	return out
}

// ListValueAs returns the item at index as type T. It fails with
// *IndexOutOfRangeError when index is beyond Count, and with
// *TypeMismatchError when the stored item is not of kind T.
func ListValueAs[T Scalar](l *List, index int) (T, error) {
	var zero T
	v, err := l.At(index)
	if err != nil {
		return zero, err
	}
	out, ok := scalarAs[T](v)
	if !ok {
		return zero, &TypeMismatchError{Index: index, Want: kindOf[T](), Got: v.Kind()}
	}
	return out, nil
}
