package routegen

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeydtaylor/steeze-lite/pkg/manifest"
)

func sample() manifest.Config {
	return manifest.Config{
		Package: "demo",
		Imports: []string{"github.com/acme/greet"},
		Routes: []manifest.Route{
			{Key: "zeta", Handler: "Zeta"},
			{Key: "alpha", Handler: "greet.Alpha"},
			{Key: `we"ird`, Handler: "Weird"},
		},
	}
}

func TestGenerate_ParsesAndKeepsOrder(t *testing.T) {
	src, err := Generate(sample(), "routes.toml")
	require.NoError(t, err)

	f, err := parser.ParseFile(token.NewFileSet(), "router_gen.go", src, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "demo", f.Name.Name)

	s := string(src)
	assert.True(t, strings.HasPrefix(s, "// Code generated by steeze-lite gen. DO NOT EDIT.\n// Source: routes.toml\n"))
	assert.Contains(t, s, "type Router struct{}")
	assert.Contains(t, s, `"github.com/acme/greet"`)
	assert.Contains(t, s, `"github.com/joeydtaylor/steeze-lite/pkg/core"`)
	assert.Contains(t, s, "return greet.Alpha(in)")
	assert.Contains(t, s, `case "we\"ird":`)
	assert.Contains(t, s, "return core.NotFound(route)")

	zeta := strings.Index(s, `case "zeta":`)
	alpha := strings.Index(s, `case "alpha":`)
	require.True(t, zeta > 0 && alpha > 0)
	assert.Less(t, zeta, alpha)
}

func TestGenerate_CustomTypeNoSource(t *testing.T) {
	cfg := sample()
	cfg.Type = "Table"
	src, err := Generate(cfg, "")
	require.NoError(t, err)

	s := string(src)
	assert.NotContains(t, s, "// Source:")
	assert.Contains(t, s, "func (Table) Dispatch(route string, in core.Input) core.Output {")
	assert.Contains(t, s, "var _ core.Dispatcher = Table{}")
}

func TestGenerate_RejectsInvalidManifest(t *testing.T) {
	cfg := sample()
	cfg.Routes = append(cfg.Routes, manifest.Route{Key: "zeta", Handler: "Other"})
	_, err := Generate(cfg, "")
	require.ErrorIs(t, err, manifest.ErrDuplicateRoute)
}

func TestGenerate_RejectsCoreCollisions(t *testing.T) {
	cfg := sample()
	cfg.Imports = append(cfg.Imports, corePath)
	_, err := Generate(cfg, "")
	require.ErrorContains(t, err, "added by the generator")

	cfg = manifest.Config{
		Package: "demo",
		Imports: []string{"example.com/x/core"},
		Routes:  []manifest.Route{{Key: "a", Handler: "core.A"}},
	}
	_, err = Generate(cfg, "")
	require.ErrorContains(t, err, "collides")
}

func TestGenerate_VersionedAndAliasedImports(t *testing.T) {
	cfg := manifest.Config{
		Package: "demo",
		Imports: []string{"github.com/acme/greet/v2", "gopkg.in/acme/echo.v1", "plain=github.com/acme/greet"},
		Routes: []manifest.Route{
			{Key: "a", Handler: "greet.A"},
			{Key: "b", Handler: "echo.B"},
			{Key: "c", Handler: "plain.C"},
		},
	}
	src, err := Generate(cfg, "")
	require.NoError(t, err)

	f, err := parser.ParseFile(token.NewFileSet(), "router_gen.go", src, parser.ImportsOnly)
	require.NoError(t, err)
	got := map[string]string{}
	for _, imp := range f.Imports {
		name := ""
		if imp.Name != nil {
			name = imp.Name.Name
		}
		got[strings.Trim(imp.Path.Value, `"`)] = name
	}
	assert.Equal(t, map[string]string{
		corePath:                   "",
		"github.com/acme/greet/v2": "greet",
		"gopkg.in/acme/echo.v1":    "echo",
		"github.com/acme/greet":    "plain",
	}, got)
	assert.Contains(t, string(src), "return greet.A(in)")
}

func TestGenerate_RejectsNamesTheFileBinds(t *testing.T) {
	cases := []struct {
		name string
		cfg  manifest.Config
		want string
	}{
		{"handler in", manifest.Config{Routes: []manifest.Route{{Key: "a", Handler: "in"}}}, "input parameter"},
		{"handler route", manifest.Config{Routes: []manifest.Route{{Key: "a", Handler: "route"}}}, "route parameter"},
		{"handler core", manifest.Config{Routes: []manifest.Route{{Key: "a", Handler: "core"}}}, "core import"},
		{"handler is type", manifest.Config{Routes: []manifest.Route{{Key: "a", Handler: "Router"}}}, "router type"},
		{"handler blank", manifest.Config{Routes: []manifest.Route{{Key: "a", Handler: "_"}}}, "blank identifier"},
		{"type core", manifest.Config{Type: "core", Routes: []manifest.Route{{Key: "a", Handler: "A"}}}, "core import"},
		{
			"import named in",
			manifest.Config{Imports: []string{"example.com/x/in"}, Routes: []manifest.Route{{Key: "a", Handler: "in.A"}}},
			"input parameter",
		},
		{
			"import named like type",
			manifest.Config{Type: "greet", Imports: []string{"github.com/acme/greet"}, Routes: []manifest.Route{{Key: "a", Handler: "greet.A"}}},
			"router type",
		},
		{
			"unused import",
			manifest.Config{Imports: []string{"github.com/acme/greet"}, Routes: []manifest.Route{{Key: "a", Handler: "A"}}},
			"not used by any route",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			c.cfg.Package = "demo"
			_, err := Generate(c.cfg, "")
			require.ErrorContains(t, err, c.want)
		})
	}
}
