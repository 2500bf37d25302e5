// pkg/core/input.go
package core

import "github.com/joeydtaylor/steeze-lite/pkg/value"

// Input wraps the decoded fields of one request. Every accessor is total: a
// missing key or a type mismatch yields the documented zero value, never an error.
type Input struct {
	fields map[string]value.Value
}

// NewInput takes ownership of fields. A nil map behaves as an empty one.
func NewInput(fields map[string]value.Value) Input {
	if fields == nil {
		fields = map[string]value.Value{}
	}
	return Input{fields: fields}
}

// Str returns the field if it is a string, else "".
func (in Input) Str(key string) string {
	s, _ := in.fields[key].(string)
	return s
}

// I64 returns the field if it is a number with an exact integer value, else 0.
func (in Input) I64(key string) int64 {
	i, _ := value.AsInt64(in.fields[key])
	return i
}

// F64 returns the field if it is numeric, else 0.
func (in Input) F64(key string) float64 {
	f, _ := value.AsFloat64(in.fields[key])
	return f
}

// Bool returns the field if it is a bool, else false.
func (in Input) Bool(key string) bool {
	b, _ := in.fields[key].(bool)
	return b
}

// Array returns a copy of the field if it is an array, else an empty array.
func (in Input) Array(key string) value.Array {
	a, ok := in.fields[key].([]any)
	if !ok {
		return value.Array{}
	}
	return value.Clone(a).(value.Array)
}

// Object returns a copy of the field if it is an object, else an empty object.
func (in Input) Object(key string) value.Object {
	o, ok := in.fields[key].(map[string]any)
	if !ok {
		return value.Object{}
	}
	return value.Clone(o).(value.Object)
}

// Value returns the raw field. ok is false only when the key is absent; a JSON
// null is present with a nil Value.
func (in Input) Value(key string) (v value.Value, ok bool) {
	v, ok = in.fields[key]
	return v, ok
}

func (in Input) Has(key string) bool {
	_, ok := in.fields[key]
	return ok
}

// Raw exposes the whole mapping. Callers must treat it as read-only.
func (in Input) Raw() map[string]value.Value { return in.fields }

func (in Input) Len() int { return len(in.fields) }
