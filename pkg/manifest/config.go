package manifest

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
)

// DefaultType is the generated router type name when the manifest omits one.
const DefaultType = "Router"

var (
	ErrNoRoutes       = errors.New("no routes defined")
	ErrDuplicateRoute = errors.New("duplicate route key")
)

// Config is the route manifest consumed by the code generator.
type Config struct {
	Package string   `toml:"package" yaml:"package"`
	Type    string   `toml:"type" yaml:"type"`
	Imports []string `toml:"imports" yaml:"imports"`
	Routes  []Route  `toml:"route" yaml:"route"`
}

// Validate normalizes the manifest in place and rejects malformed manifests:
// bad identifiers, unparsable or clashing imports, and invalid or duplicate
// routes. Checks that depend on the generated file's layout live in routegen.
func (c *Config) Validate() error {
	c.Package = strings.TrimSpace(c.Package)
	c.Type = strings.TrimSpace(c.Type)
	if c.Type == "" {
		c.Type = DefaultType
	}
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("package %q is not a valid Go identifier", c.Package)
	}
	if !token.IsIdentifier(c.Type) {
		return fmt.Errorf("type %q is not a valid Go identifier", c.Type)
	}
	for i, imp := range c.Imports {
		imp = strings.TrimSpace(imp)
		if imp == "" {
			return fmt.Errorf("imports[%d]: empty import path", i)
		}
		c.Imports[i] = imp
	}
	specs, err := c.ImportSpecs()
	if err != nil {
		return err
	}
	if len(c.Routes) == 0 {
		return ErrNoRoutes
	}
	return c.validateRoutes(specs)
}
