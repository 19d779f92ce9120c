package resp

import (
	"errors"
	"strconv"
)

var (
	//ErrInvalidValue indicates an accessor was used against the wrong kind
	ErrInvalidValue = errors.New("invalid value kind")
)

// Kind enumerates the variants a command reply can take
type Kind int

// Reply kinds produced by the command core
const (
	Null Kind = iota
	Ok
	Int
	Float
	Bool
	String
	Array
	Set
	Map
	Error
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Ok:
		return "ok"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case String:
		return "string"
	case Array:
		return "array"
	case Set:
		return "set"
	case Map:
		return "map"
	case Error:
		return "error"
	}
	return ""
}

// Value is a decoded reply from the command core. It is a tagged union:
// exactly one payload field is meaningful for a given kind. Map replies
// keep their key/value pairs flattened into elems in order.
type Value struct {
	kind    Kind
	integer int64
	float   float64
	boolean bool
	bytes   []byte
	elems   []Value
}

// NullValue builds a null reply
func NullValue() Value { return Value{kind: Null} }

// OkValue builds a simple-string OK status reply
func OkValue() Value { return Value{kind: Ok} }

// IntValue builds an integer reply
func IntValue(v int64) Value { return Value{kind: Int, integer: v} }

// FloatValue builds a double reply
func FloatValue(v float64) Value { return Value{kind: Float, float: v} }

// BoolValue builds a boolean reply
func BoolValue(v bool) Value { return Value{kind: Bool, boolean: v} }

// BytesValue builds a bulk-string reply
func BytesValue(b []byte) Value { return Value{kind: String, bytes: b} }

// StringValue builds a bulk-string reply from a string
func StringValue(s string) Value { return Value{kind: String, bytes: []byte(s)} }

// ArrayValue builds an array reply
func ArrayValue(elems ...Value) Value { return Value{kind: Array, elems: elems} }

// SetValue builds a set reply
func SetValue(elems ...Value) Value { return Value{kind: Set, elems: elems} }

// MapValue builds a map reply from alternating key/value elements
func MapValue(pairs ...Value) Value { return Value{kind: Map, elems: pairs} }

// ErrorValue builds an error reply carrying the server message
func ErrorValue(msg string) Value { return Value{kind: Error, bytes: []byte(msg)} }

// Kind reports the variant of the value
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is the null reply
func (v Value) IsNull() bool { return v.kind == Null }

// Int64 returns the integer payload
func (v Value) Int64() (int64, error) {
	if v.kind != Int {
		return 0, ErrInvalidValue
	}
	return v.integer, nil
}

// Float64 returns the double payload. The core emits doubles either as a
// native double or as a decimal bulk string, both are accepted here.
func (v Value) Float64() (float64, error) {
	switch v.kind {
	case Float:
		return v.float, nil
	case String:
		f, err := strconv.ParseFloat(string(v.bytes), 64)
		if err != nil {
			return 0, ErrInvalidValue
		}
		return f, nil
	}
	return 0, ErrInvalidValue
}

// Bool returns the boolean payload, treating OK status as true
func (v Value) Bool() (bool, error) {
	switch v.kind {
	case Bool:
		return v.boolean, nil
	case Ok:
		return true, nil
	}
	return false, ErrInvalidValue
}

// Bytes returns the bulk-string payload
func (v Value) Bytes() ([]byte, error) {
	if v.kind != String {
		return nil, ErrInvalidValue
	}
	return v.bytes, nil
}

// Str returns the bulk-string payload as a string
func (v Value) Str() (string, error) {
	b, err := v.Bytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Elems returns the elements of an array, set or map reply
func (v Value) Elems() ([]Value, error) {
	switch v.kind {
	case Array, Set, Map:
		return v.elems, nil
	}
	return nil, ErrInvalidValue
}

// ErrMsg returns the message of an error reply
func (v Value) ErrMsg() (string, error) {
	if v.kind != Error {
		return "", ErrInvalidValue
	}
	return string(v.bytes), nil
}
