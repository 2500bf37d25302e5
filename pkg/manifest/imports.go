package manifest

import (
	"errors"
	"fmt"
	"go/token"
	"path"
	"strings"
)

// Import is one parsed entry of Config.Imports.
type Import struct {
	// Name is the identifier handlers qualify with.
	Name string
	Path string
}

// Aliased reports whether the import needs an explicit name in generated code,
// i.e. Name differs from the last element of Path.
func (i Import) Aliased() bool { return i.Name != path.Base(i.Path) }

// ParseImport reads "path" or "name=path". Without a name, the package name is
// the last path element, skipping a trailing major version ("/v2") and a
// gopkg.in style suffix ("yaml.v3"). Paths whose name cannot be inferred as an
// identifier need the explicit form.
func ParseImport(s string) (Import, error) {
	s = strings.TrimSpace(s)
	if name, p, ok := strings.Cut(s, "="); ok {
		name, p = strings.TrimSpace(name), strings.TrimSpace(p)
		if p == "" {
			return Import{}, fmt.Errorf("import %q: empty path", s)
		}
		if !token.IsIdentifier(name) || name == "_" {
			return Import{}, fmt.Errorf("import %q: name %q is not a usable Go identifier", s, name)
		}
		return Import{Name: name, Path: p}, nil
	}
	if s == "" {
		return Import{}, errors.New("empty import path")
	}
	name := packageName(s)
	if !token.IsIdentifier(name) || name == "_" {
		return Import{}, fmt.Errorf("import %q: package name %q is not a Go identifier, use name=path", s, name)
	}
	return Import{Name: name, Path: s}, nil
}

func packageName(p string) string {
	elems := strings.Split(strings.TrimSuffix(p, "/"), "/")
	name := elems[len(elems)-1]
	if len(elems) > 1 && isMajor(name) {
		name = elems[len(elems)-2]
	}
	if strings.HasPrefix(p, "gopkg.in/") {
		if i := strings.LastIndex(name, "."); i > 0 && isMajor(name[i+1:]) {
			name = name[:i]
		}
	}
	return name
}

// isMajor matches "v" followed by one or more digits.
func isMajor(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ImportSpecs parses Imports and rejects two entries that bind the same name or
// repeat a path.
func (c *Config) ImportSpecs() ([]Import, error) {
	out := make([]Import, 0, len(c.Imports))
	byName := make(map[string]int, len(c.Imports))
	byPath := make(map[string]int, len(c.Imports))
	for i, raw := range c.Imports {
		imp, err := ParseImport(raw)
		if err != nil {
			return nil, fmt.Errorf("imports[%d]: %w", i, err)
		}
		if first, dup := byName[imp.Name]; dup {
			return nil, fmt.Errorf("imports[%d]: package name %q already used by imports[%d]", i, imp.Name, first)
		}
		if first, dup := byPath[imp.Path]; dup {
			return nil, fmt.Errorf("imports[%d]: path %q already imported by imports[%d]", i, imp.Path, first)
		}
		byName[imp.Name] = i
		byPath[imp.Path] = i
		out = append(out, imp)
	}
	return out, nil
}
