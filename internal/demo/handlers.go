// Package demo is a small handler set used by the CLI and as a reference for
// wiring a generated router.
package demo

//go:generate go run ../../cmd/steeze-lite gen -m routes.toml -o router_gen.go

import (
	"github.com/joeydtaylor/steeze-lite/pkg/core"
	"github.com/joeydtaylor/steeze-lite/pkg/core/decimalx"
	"github.com/joeydtaylor/steeze-lite/pkg/value"
)

func Hello(in core.Input) core.Output {
	fields := []core.Field{
		core.F("message", "Hello, "+in.Str("name")),
		core.F("success", true),
	}
	if in.Has("price") {
		fields = append(fields, core.F("price", decimalx.Get(in, "price")))
	}
	return core.Response(fields...)
}

// Sum adds the numeric elements of "values"; anything else is skipped.
func Sum(in core.Input) core.Output {
	var (
		total float64
		count int
	)
	for _, v := range in.Array("values") {
		if f, ok := value.AsFloat64(v); ok {
			total += f
			count++
		}
	}
	return core.Response(
		core.F("sum", total),
		core.F("count", count),
		core.F("success", true),
	)
}
