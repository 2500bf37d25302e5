// pkg/value/value.go
package value

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
)

// Value is a decoded JSON-like tree: nil, bool, numbers, string, Array or Object.
type Value = any

// Object is a string-keyed mapping of Values.
type Object = map[string]any

// Array is an ordered sequence of Values.
type Array = []any

type Kind string

const (
	KindInvalid Kind = "invalid"
	KindNull    Kind = "null"
	KindBool    Kind = "bool"
	KindNumber  Kind = "number"
	KindString  Kind = "string"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
)

// KindOf classifies v. Go values outside the JSON vocabulary report KindInvalid.
func KindOf(v Value) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case string:
		return KindString
	case json.Number, float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return KindNumber
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return KindInvalid
	}
}

// Clone deep-copies arrays and objects; scalars are returned as-is.
func Clone(v Value) Value {
	switch t := v.(type) {
	case []any:
		return cloneArray(t)
	case map[string]any:
		return cloneObject(t)
	default:
		return v
	}
}

func cloneArray(a Array) Array {
	out := make(Array, len(a))
	for i, x := range a {
		out[i] = Clone(x)
	}
	return out
}

func cloneObject(o Object) Object {
	out := make(Object, len(o))
	for k, x := range o {
		out[k] = Clone(x)
	}
	return out
}

// Of converts an arbitrary Go value into the Value vocabulary.
// Primitives pass through (integers widen to int64), NaN and ±Inf become nil,
// slices and string-keyed maps are converted element-wise, and everything else
// takes a JSON round trip. Numbers inside round-tripped structs come back as
// json.Number. Values that cannot be encoded become nil.
func Of(v any) Value {
	switch t := v.(type) {
	case nil:
		return nil
	case bool, string, int64, json.Number:
		return t
	case float64:
		return finite(t)
	case float32:
		return finite(float64(t))
	case int:
		return int64(t)
	case int8:
		return int64(t)
	case int16:
		return int64(t)
	case int32:
		return int64(t)
	case uint:
		return fromUint(uint64(t))
	case uint8:
		return int64(t)
	case uint16:
		return int64(t)
	case uint32:
		return int64(t)
	case uint64:
		return fromUint(t)
	case []any:
		out := make(Array, len(t))
		for i, x := range t {
			out[i] = Of(x)
		}
		return out
	case map[string]any:
		out := make(Object, len(t))
		for k, x := range t {
			out[k] = Of(x)
		}
		return out
	default:
		return ofReflect(t)
	}
}

func finite(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return f
}

// ofReflect walks typed slices, arrays and string-keyed maps so their elements
// get the same representation as top-level values. []byte keeps its JSON
// (base64 string) form.
func ofReflect(v any) Value {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return viaJSON(v)
		}
		fallthrough
	case reflect.Array:
		out := make(Array, rv.Len())
		for i := range out {
			out[i] = Of(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return viaJSON(v)
		}
		if rv.IsNil() {
			return nil
		}
		out := make(Object, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = Of(iter.Value().Interface())
		}
		return out
	default:
		return viaJSON(v)
	}
}

func fromUint(u uint64) Value {
	if u <= math.MaxInt64 {
		return int64(u)
	}
	return float64(u)
}

func viaJSON(v any) Value {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil
	}
	return out
}
