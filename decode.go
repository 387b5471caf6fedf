package flatyaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"
)

// Decoder reads and decodes a flat document from an input stream.
type Decoder struct {
	lex *lexer
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{lex: newLexer(r)}
}

// Decode reads the document from the input stream and stores the result in
// the pointer v.
func (dec *Decoder) Decode(v any) error {
	doc := newDocument()
	if err := newBuilder(doc, dec.lex).run(); err != nil {
		return err
	}

	return setValue(v, doc.iface())
}

// Unmarshal parses flat document data and stores the result in the value
// pointed to by v. If v is nil or not a pointer, it returns an error.
//
// It converts document entries into Go values with the following mappings:
//   - letters-only scalars become string
//   - numeric scalars become int64 (fractions are truncated by the grammar)
//   - list items become []any of strings, stored under the synthesized
//     list key ("list-0" for the first list)
//
// The whole document becomes a map[string]any, or populates struct fields
// matched by name or by a `flatyaml:"..."` tag.
//
// If the data contains a syntax error, a *SyntaxError with the line number
// is returned.
func Unmarshal(data []byte, v any) error {
	dec := NewDecoder(bytes.NewReader(data))
	return dec.Decode(v)
}

// setValue sets the destination value from the parsed source value.
func setValue(dst, src any) error {
	if dst == nil {
		return errors.New("cannot unmarshal into a nil value")
	}

	val := reflect.ValueOf(dst)
	if val.Kind() != reflect.Ptr {
		return errors.New("destination is not a pointer")
	}
	if val.IsNil() {
		return errors.New("destination pointer is nil")
	}

	return setValueReflect(val.Elem(), src)
}

// setValueReflect recursively sets values to dst from src using reflection.
func setValueReflect(dst reflect.Value, src any) error {
	if src == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}

	s := reflect.ValueOf(src)

	// If the destination is an interface, set it directly.
	if dst.Kind() == reflect.Interface {
		dst.Set(s)
		return nil
	}

	// Assign directly if types are compatible.
	if s.Type().AssignableTo(dst.Type()) {
		dst.Set(s)
		return nil
	}

	// Handle type conversions.
	switch dst.Kind() {
	case reflect.Struct:
		return setStruct(dst, src)
	case reflect.Slice:
		return setSlice(dst, src)
	case reflect.Map:
		return setMap(dst, src)
	case reflect.Ptr:
		return setPtr(dst, src)
	case reflect.String:
		return setString(dst, src)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return setInt(dst, src)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return setUint(dst, src)
	case reflect.Float32, reflect.Float64:
		return setFloat(dst, src)
	default:
		return fmt.Errorf("cannot unmarshal %T into %s", src, dst.Type())
	}
}

// setStruct unmarshals a map into a struct.
func setStruct(dst reflect.Value, src any) error {
	srcMap, ok := src.(map[string]any)
	if !ok {
		return fmt.Errorf("cannot unmarshal %T into struct", src)
	}

	structType := dst.Type()
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldValue := dst.Field(i)

		// Skip unexported fields.
		if !fieldValue.CanSet() {
			continue
		}

		fieldName := getFieldName(field)
		if fieldName == "-" {
			continue
		}

		if srcValue, exists := srcMap[fieldName]; exists {
			if err := setValueReflect(fieldValue, srcValue); err != nil {
				return fmt.Errorf("error setting field %s: %w", field.Name, err)
			}
		}
	}

	return nil
}

// getFieldName returns the field name to use for mapping, checking for a
// `flatyaml` struct tag first.
func getFieldName(field reflect.StructField) string {
	if tag, ok := field.Tag.Lookup("flatyaml"); ok && tag != "" {
		return tag
	}
	return field.Name
}

// setSlice unmarshals a list into a slice.
func setSlice(dst reflect.Value, src any) error {
	srcSlice, ok := src.([]any)
	if !ok {
		return fmt.Errorf("cannot unmarshal %T into slice", src)
	}

	newSlice := reflect.MakeSlice(dst.Type(), len(srcSlice), len(srcSlice))
	for i, srcElem := range srcSlice {
		if err := setValueReflect(newSlice.Index(i), srcElem); err != nil {
			return fmt.Errorf("error setting slice element %d: %w", i, err)
		}
	}

	dst.Set(newSlice)
	return nil
}

// setMap unmarshals a src map into a dest map.
func setMap(dst reflect.Value, src any) error {
	srcMap, ok := src.(map[string]any)
	if !ok {
		return fmt.Errorf("cannot unmarshal %T into map", src)
	}

	mapType := dst.Type()
	if mapType.Key().Kind() != reflect.String {
		return fmt.Errorf("maps with non-string keys are not supported")
	}
	valueType := mapType.Elem()

	newMap := reflect.MakeMap(mapType)
	for key, srcValue := range srcMap {
		valueValue := reflect.New(valueType).Elem()
		if err := setValueReflect(valueValue, srcValue); err != nil {
			return fmt.Errorf("error setting map value for key %s: %w", key, err)
		}
		newMap.SetMapIndex(reflect.ValueOf(key), valueValue)
	}

	dst.Set(newMap)
	return nil
}

// setPtr unmarshals into a pointer.
func setPtr(dst reflect.Value, src any) error {
	newPtr := reflect.New(dst.Type().Elem())
	if err := setValueReflect(newPtr.Elem(), src); err != nil {
		return err
	}

	dst.Set(newPtr)
	return nil
}

// setString converts source values to string.
func setString(dst reflect.Value, src any) error {
	if v, ok := src.(string); ok {
		dst.SetString(v)
		return nil
	}
	return fmt.Errorf("cannot unmarshal %T into string", src)
}

// setInt converts source values to int.
func setInt(dst reflect.Value, src any) error {
	v, ok := src.(int64)
	if !ok {
		return fmt.Errorf("cannot unmarshal %T into integer", src)
	}
	if dst.OverflowInt(v) {
		return fmt.Errorf("value %d overflows %s", v, dst.Type())
	}
	dst.SetInt(v)
	return nil
}

// setUint converts source values to uint.
func setUint(dst reflect.Value, src any) error {
	v, ok := src.(int64)
	if !ok {
		return fmt.Errorf("cannot unmarshal %T into unsigned integer", src)
	}
	if v < 0 {
		return fmt.Errorf("cannot unmarshal negative value %d into unsigned integer", v)
	}
	uintVal := uint64(v)
	if dst.OverflowUint(uintVal) {
		return fmt.Errorf("value %d overflows %s", v, dst.Type())
	}
	dst.SetUint(uintVal)
	return nil
}

// setFloat converts source values to float.
func setFloat(dst reflect.Value, src any) error {
	v, ok := src.(int64)
	if !ok {
		return fmt.Errorf("cannot unmarshal %T into float", src)
	}
	floatVal := float64(v)
	if dst.OverflowFloat(floatVal) {
		return fmt.Errorf("value %d overflows %s", v, dst.Type())
	}
	dst.SetFloat(floatVal)
	return nil
}
