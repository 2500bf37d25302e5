// Package routegen turns a route manifest into a static, switch-based
// dispatcher. Duplicate keys are rejected here, and again by the compiler,
// which refuses duplicate string cases in a switch.
package routegen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"text/template"

	"github.com/joeydtaylor/steeze-lite/pkg/manifest"
)

const corePath = "github.com/joeydtaylor/steeze-lite/pkg/core"

var tmpl = template.Must(template.New("router").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(`// Code generated by steeze-lite gen. DO NOT EDIT.
{{- if .Source }}
// Source: {{ .Source }}
{{- end }}

package {{ .Package }}

import (
	{{ quote .CorePath }}
{{- range .Specs }}
	{{ if .Aliased }}{{ .Name }} {{ end }}{{ quote .Path }}
{{- end }}
)

// {{ .Type }} dispatches the routes declared in the manifest.
type {{ .Type }} struct{}

var _ core.Dispatcher = {{ .Type }}{}

func ({{ .Type }}) Dispatch(route string, in core.Input) core.Output {
	switch route {
{{- range .Routes }}
	case {{ quote .Key }}:
		return {{ .Handler }}(in)
{{- end }}
	}
	return core.NotFound(route)
}

// Routes returns the route keys in declaration order.
func ({{ .Type }}) Routes() []string {
	return []string{
{{- range .Routes }}
		{{ quote .Key }},
{{- end }}
	}
}
`))

type data struct {
	manifest.Config
	Specs    []manifest.Import
	CorePath string
	Source   string
}

// Identifiers the generated file binds itself: the core import and the
// Dispatch parameters, which shadow package-level names inside the switch.
var reserved = map[string]string{
	"core":  "the core import",
	"in":    "the Dispatch input parameter",
	"route": "the Dispatch route parameter",
}

// Generate validates cfg and renders gofmt'ed Go source. source, when set, is
// recorded in the header.
func Generate(cfg manifest.Config, source string) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkNames(cfg); err != nil {
		return nil, err
	}
	specs, err := cfg.ImportSpecs()
	if err != nil {
		return nil, err
	}
	used := make(map[string]bool, len(specs))
	for _, rt := range cfg.Routes {
		used[rt.Qualifier()] = true
	}
	for _, imp := range specs {
		if imp.Path == corePath {
			return nil, fmt.Errorf("import %q is added by the generator", imp.Path)
		}
		if what, ok := reserved[imp.Name]; ok {
			return nil, fmt.Errorf("import %q: package name %q collides with %s", imp.Path, imp.Name, what)
		}
		if imp.Name == cfg.Type {
			return nil, fmt.Errorf("import %q: package name %q collides with the router type", imp.Path, imp.Name)
		}
		if !used[imp.Name] {
			return nil, fmt.Errorf("import %q is not used by any route", imp.Path)
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data{Config: cfg, Specs: specs, CorePath: corePath, Source: source}); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gofmt: %w", err)
	}
	return out, nil
}

// checkNames rejects a router type or unqualified handler that the generated
// file cannot refer to.
func checkNames(cfg manifest.Config) error {
	if cfg.Type == "core" {
		return fmt.Errorf("type %q collides with the core import", cfg.Type)
	}
	for _, rt := range cfg.Routes {
		if rt.Qualifier() != "" {
			continue
		}
		if what, ok := reserved[rt.Handler]; ok {
			return fmt.Errorf("route %q: handler %q collides with %s", rt.Key, rt.Handler, what)
		}
		if rt.Handler == cfg.Type {
			return fmt.Errorf("route %q: handler %q is the router type", rt.Key, rt.Handler)
		}
		if rt.Handler == "_" {
			return fmt.Errorf("route %q: handler %q is the blank identifier", rt.Key, rt.Handler)
		}
	}
	return nil
}
