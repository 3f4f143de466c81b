// Package event models the loosely typed request mapping handed to the
// handler by its host as a tagged union with checked accessors.
package event

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	Null Kind = iota
	Bool
	Int
	Float
	String
	Object
	Array
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Object:
		return "object"
	case Array:
		return "array"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

var (
	// ErrMissingField is wrapped by FieldError when an object lacks a key.
	ErrMissingField = errors.New("missing field")
	// ErrWrongType is wrapped by FieldError when a value has another kind.
	ErrWrongType = errors.New("wrong type")
	// ErrMalformed is returned by Decode for input that is not a single JSON document.
	ErrMalformed = errors.New("malformed document")
)

// FieldError reports an accessor failure at a path inside an event.
type FieldError struct {
	Path string
	Want Kind
	Got  Kind
	Err  error
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrMissingField) {
		return fmt.Sprintf("field %q is missing", e.Path)
	}
	return fmt.Sprintf("field %q is %s, want %s", e.Path, e.Got, e.Want)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Value is one node of an event document. The zero Value is Null.
type Value struct {
	kind Kind
	path string
	b    bool
	i    int64
	f    float64
	s    string
	obj  map[string]Value
	arr  []Value
}

// NullValue returns a Null value.
func NullValue() Value { return Value{kind: Null} }

// BoolValue wraps b.
func BoolValue(b bool) Value { return Value{kind: Bool, b: b} }

// IntValue wraps i.
func IntValue(i int64) Value { return Value{kind: Int, i: i} }

// FloatValue wraps f.
func FloatValue(f float64) Value { return Value{kind: Float, f: f} }

// StringValue wraps s.
func StringValue(s string) Value { return Value{kind: String, s: s} }

// ObjectValue wraps fields. The map is copied.
func ObjectValue(fields map[string]Value) Value {
	obj := make(map[string]Value, len(fields))
	for k, v := range fields {
		obj[k] = v
	}
	return Value{kind: Object, obj: obj}
}

// ArrayValue wraps items. The slice is copied.
func ArrayValue(items ...Value) Value {
	return Value{kind: Array, arr: append([]Value(nil), items...)}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// Path is the dotted location of v inside the document it was read from.
func (v Value) Path() string {
	if v.path == "" {
		return "$"
	}
	return v.path
}

// IsNull reports whether v is Null.
func (v Value) IsNull() bool {
	return v.kind == Null
}

// Field returns the named member of an Object value.
func (v Value) Field(name string) (Value, error) {
	path := v.childPath(name)
	if v.kind != Object {
		return Value{}, &FieldError{Path: v.Path(), Want: Object, Got: v.kind, Err: ErrWrongType}
	}

	child, ok := v.obj[name]
	if !ok {
		return Value{}, &FieldError{Path: path, Err: ErrMissingField}
	}
	child.path = path
	return child, nil
}

// Has reports whether v is an Object containing name.
func (v Value) Has(name string) bool {
	if v.kind != Object {
		return false
	}
	_, ok := v.obj[name]
	return ok
}

// Keys returns the sorted member names of an Object value.
func (v Value) Keys() []string {
	keys := make([]string, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, error) {
	if v.kind != Bool {
		return false, v.wrongType(Bool)
	}
	return v.b, nil
}

// AsInt returns the integer held by v.
func (v Value) AsInt() (int64, error) {
	if v.kind != Int {
		return 0, v.wrongType(Int)
	}
	return v.i, nil
}

// AsFloat returns the number held by v. Int values are widened.
func (v Value) AsFloat() (float64, error) {
	switch v.kind {
	case Float:
		return v.f, nil
	case Int:
		return float64(v.i), nil
	default:
		return 0, v.wrongType(Float)
	}
}

// AsString returns the string held by v.
func (v Value) AsString() (string, error) {
	if v.kind != String {
		return "", v.wrongType(String)
	}
	return v.s, nil
}

// AsObject returns a copy of the members of an Object value.
func (v Value) AsObject() (map[string]Value, error) {
	if v.kind != Object {
		return nil, v.wrongType(Object)
	}
	out := make(map[string]Value, len(v.obj))
	for _, k := range v.Keys() {
		child, _ := v.Field(k)
		out[k] = child
	}
	return out, nil
}

// AsArray returns a copy of the items of an Array value.
func (v Value) AsArray() ([]Value, error) {
	if v.kind != Array {
		return nil, v.wrongType(Array)
	}
	out := make([]Value, len(v.arr))
	for i, item := range v.arr {
		item.path = v.Path() + "[" + strconv.Itoa(i) + "]"
		out[i] = item
	}
	return out, nil
}

func (v Value) wrongType(want Kind) error {
	return &FieldError{Path: v.Path(), Want: want, Got: v.kind, Err: ErrWrongType}
}

func (v Value) childPath(name string) string {
	if v.path == "" {
		return name
	}
	return v.path + "." + name
}

// Decode parses exactly one JSON document into a Value.
func Decode(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("%w: trailing data after document", ErrMalformed)
	}

	return fromAny(raw)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.toAny())
}

func fromAny(raw any) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return NullValue(), nil
	case bool:
		return BoolValue(t), nil
	case string:
		return StringValue(t), nil
	case json.Number:
		return fromNumber(t)
	case map[string]any:
		obj := make(map[string]Value, len(t))
		for k, item := range t {
			child, err := fromAny(item)
			if err != nil {
				return Value{}, err
			}
			obj[k] = child
		}
		return Value{kind: Object, obj: obj}, nil
	case []any:
		arr := make([]Value, len(t))
		for i, item := range t {
			child, err := fromAny(item)
			if err != nil {
				return Value{}, err
			}
			arr[i] = child
		}
		return Value{kind: Array, arr: arr}, nil
	default:
		return Value{}, fmt.Errorf("%w: unsupported json type %T", ErrMalformed, raw)
	}
}

func fromNumber(n json.Number) (Value, error) {
	lit := n.String()
	if !strings.ContainsAny(lit, ".eE") {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return IntValue(i), nil
		}
	}

	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: number %s out of range", ErrMalformed, lit)
	}
	return FloatValue(f), nil
}

func (v Value) toAny() any {
	switch v.kind {
	case Bool:
		return v.b
	case Int:
		return v.i
	case Float:
		return v.f
	case String:
		return v.s
	case Object:
		out := make(map[string]any, len(v.obj))
		for k, child := range v.obj {
			out[k] = child.toAny()
		}
		return out
	case Array:
		out := make([]any, len(v.arr))
		for i, child := range v.arr {
			out[i] = child.toAny()
		}
		return out
	default:
		return nil
	}
}
