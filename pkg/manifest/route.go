package manifest

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
)

// Route binds one route key to a handler function.
// Handler is either a function in the generated package ("Hello") or a
// qualified reference into one of Config.Imports ("greet.Hello").
type Route struct {
	Key     string   `toml:"key" yaml:"key"`
	Handler string   `toml:"handler" yaml:"handler"`
	Tags    []string `toml:"tags" yaml:"tags"`
}

// Qualifier returns the package part of a qualified handler, or "".
func (r Route) Qualifier() string {
	if i := strings.IndexByte(r.Handler, '.'); i >= 0 {
		return r.Handler[:i]
	}
	return ""
}

func (r *Route) normalize() {
	r.Handler = strings.TrimSpace(r.Handler)
	for i := range r.Tags {
		r.Tags[i] = strings.TrimSpace(r.Tags[i])
	}
}

// validate fields that are independent of the rest of the manifest.
// The key is matched byte-for-byte at dispatch, so it is not trimmed.
func (r *Route) validate() error {
	if r.Key == "" {
		return errors.New("key is required")
	}
	if r.Handler == "" {
		return errors.New("handler is required")
	}
	parts := strings.Split(r.Handler, ".")
	if len(parts) > 2 {
		return fmt.Errorf("handler %q must be Func or pkg.Func", r.Handler)
	}
	for _, p := range parts {
		if !token.IsIdentifier(p) {
			return fmt.Errorf("handler %q is not a valid Go reference", r.Handler)
		}
	}
	return nil
}
