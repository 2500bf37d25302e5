package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/joeydtaylor/steeze-lite/pkg/value"
)

func hello(in Input) Output {
	return Response(
		F("message", "Hello, "+in.Str("name")),
		F("success", true),
	)
}

func echo(in Input) Output { return in.Raw() }

func testRoutes() Routes {
	return Routes{
		"hello": hello,
		"echo":  echo,
	}
}

func TestDispatch_Hello(t *testing.T) {
	r := NewRouter(testRoutes())
	out := r.Dispatch("hello", NewInput(map[string]value.Value{"name": "World"}))

	assert.Equal(t, value.Object{"message": "Hello, World", "success": true}, out)
}

func TestDispatch_NotFound(t *testing.T) {
	r := NewRouter(testRoutes())
	out := r.Dispatch("missing", NewInput(nil))

	assert.Equal(t, value.Object{"error": "Route not found: missing", "success": false}, out)
}

func TestDispatch_ExactMatchOnly(t *testing.T) {
	r := NewRouter(testRoutes())
	for _, key := range []string{"Hello", "hello ", "hell", "", "hello/"} {
		out := r.Dispatch(key, NewInput(nil)).(value.Object)
		assert.Equal(t, false, out["success"], key)
		assert.Contains(t, out["error"], key)
		assert.Len(t, out, 2)
	}
}

func TestDispatch_PassesOutputThrough(t *testing.T) {
	fields := map[string]value.Value{"a": 1.0}
	r := NewRouter(testRoutes())
	out := r.Dispatch("echo", NewInput(fields))

	// same map, not a copy or wrapper
	out.(map[string]value.Value)["b"] = 2.0
	assert.Equal(t, 2.0, fields["b"])

	r = NewRouter(Routes{"nil": func(Input) Output { return nil }})
	assert.Nil(t, r.Dispatch("nil", NewInput(nil)))
}

func TestDispatch_Idempotent(t *testing.T) {
	r := NewRouter(testRoutes())
	mk := func() Input { return NewInput(map[string]value.Value{"name": "x"}) }

	assert.Equal(t, r.Dispatch("hello", mk()), r.Dispatch("hello", mk()))
	assert.Equal(t, r.Dispatch("nope", mk()), r.Dispatch("nope", mk()))
}

func TestNewRouter_TableIsFixed(t *testing.T) {
	routes := testRoutes()
	routes["skip"] = nil
	r := NewRouter(routes)

	routes["late"] = hello
	assert.Equal(t, []string{"echo", "hello"}, r.Routes())

	out := r.Dispatch("late", NewInput(nil)).(value.Object)
	assert.Equal(t, false, out["success"])
	out = r.Dispatch("skip", NewInput(nil)).(value.Object)
	assert.Equal(t, false, out["success"])

	keys := r.Routes()
	keys[0] = "mutated"
	assert.Equal(t, []string{"echo", "hello"}, r.Routes())
}

func TestDispatch_LogsMiss(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	r := NewRouter(testRoutes(), WithLogger(zap.New(obs)))

	r.Dispatch("hello", NewInput(nil))
	require.Equal(t, 0, logs.Len())

	r.Dispatch("missing", NewInput(nil))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "route not found", entry.Message)
	assert.Equal(t, "missing", entry.ContextMap()["route"])
}
