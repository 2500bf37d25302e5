package core

import "github.com/joeydtaylor/steeze-lite/pkg/value"

type Field struct {
	Key   string
	Value any
}

func F(key string, v any) Field { return Field{Key: key, Value: v} }

// Response builds an object Output from fields in order; a repeated key keeps
// the last value. Values are converted with value.Of.
func Response(fields ...Field) Output {
	out := make(value.Object, len(fields))
	for _, f := range fields {
		out[f.Key] = value.Of(f.Value)
	}
	return out
}
