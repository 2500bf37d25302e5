// pkg/core/handlers.go
package core

import "github.com/joeydtaylor/steeze-lite/pkg/value"

// Output is what a handler returns; by convention an object.
type Output = value.Value

// Handler is the signature for user-defined in-process handlers.
type Handler func(in Input) Output

// Routes is the static route table. Declare it as a composite literal so the
// compiler rejects duplicate keys:
//
//	var routes = core.Routes{
//		"hello": hello,
//	}
type Routes map[string]Handler

// Dispatcher is implemented by Router and by generated switch-based routers.
type Dispatcher interface {
	Dispatch(route string, in Input) Output
	Routes() []string
}
