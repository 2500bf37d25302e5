// Package decimalx adds a fixed-point accessor to core.Input. It lives in its
// own package so only deployments that import it depend on shopspring/decimal.
package decimalx

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/joeydtaylor/steeze-lite/pkg/core"
	"github.com/joeydtaylor/steeze-lite/pkg/value"
)

// Get returns the field as a decimal. Numbers are converted through their
// float64 form, strings are parsed as decimal literals; anything else, and any
// failed conversion, yields decimal.Zero.
func Get(in core.Input, key string) decimal.Decimal {
	v, _ := in.Value(key)
	switch value.KindOf(v) {
	case value.KindNumber:
		f := in.F64(key)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(f)
	case value.KindString:
		d, err := decimal.NewFromString(in.Str(key))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}
