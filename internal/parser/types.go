package parser

import (
	"fmt"
	"strconv"
)

// FieldKind is the declared type of a captured field
type FieldKind int

const (
	KindString FieldKind = iota
	KindUint8
	KindUint16
	KindUint32
	KindInt
)

// String returns the kind name
func (k FieldKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindInt:
		return "int"
	default:
		return "unknown"
	}
}

// convert turns captured text into the kind's value.
func (k FieldKind) convert(text string) (any, error) {
	switch k {
	case KindString:
		return text, nil
	case KindUint8:
		return parseUint(text, 8)
	case KindUint16:
		return parseUint(text, 16)
	case KindUint32:
		return parseUint(text, 32)
	case KindInt:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, err
		}
		return int(v), nil
	default:
		return nil, fmt.Errorf("unsupported field kind %d", int(k))
	}
}

func parseUint(text string, bits int) (any, error) {
	v, err := strconv.ParseUint(text, 10, bits)
	if err != nil {
		return nil, err
	}
	return int(v), nil
}

// Field declares a named capture group and its type
type Field struct {
	Name string
	Kind FieldKind
}

// Str declares a string field
func Str(name string) Field { return Field{Name: name, Kind: KindString} }

// U8 declares an unsigned 8-bit field
func U8(name string) Field { return Field{Name: name, Kind: KindUint8} }

// U16 declares an unsigned 16-bit field
func U16(name string) Field { return Field{Name: name, Kind: KindUint16} }

// U32 declares an unsigned 32-bit field
func U32(name string) Field { return Field{Name: name, Kind: KindUint32} }

// Int declares a signed integer field
func Int(name string) Field { return Field{Name: name, Kind: KindInt} }

// Record holds the converted fields of one parsed line
type Record struct {
	values map[string]any
}

// Int returns a numeric field. It panics if the field was not declared numeric,
// which is a programming error in the pattern definition.
func (r Record) Int(name string) int {
	v, ok := r.values[name].(int)
	if !ok {
		panic(fmt.Sprintf("parser: field %q is not a numeric field", name))
	}
	return v
}

// String returns a string field. It panics if the field was not declared as a string.
func (r Record) String(name string) string {
	v, ok := r.values[name].(string)
	if !ok {
		panic(fmt.Sprintf("parser: field %q is not a string field", name))
	}
	return v
}

// Has reports whether the record carries the named field
func (r Record) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}
