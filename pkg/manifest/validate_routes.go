package manifest

import "fmt"

// validateRoutes runs per-route checks plus the cross-route ones: keys are
// unique and qualified handlers point at a declared import.
func (c *Config) validateRoutes(specs []Import) error {
	seen := make(map[string]int, len(c.Routes))
	imports := make(map[string]bool, len(specs))
	for _, imp := range specs {
		imports[imp.Name] = true
	}
	for i := range c.Routes {
		c.Routes[i].normalize()
		if err := c.Routes[i].validate(); err != nil {
			return fmt.Errorf("route %d: %w", i, err)
		}
		rt := c.Routes[i]
		if first, dup := seen[rt.Key]; dup {
			return fmt.Errorf("route %d (%s): %w, first declared at route %d", i, rt.Key, ErrDuplicateRoute, first)
		}
		seen[rt.Key] = i
		if q := rt.Qualifier(); q != "" {
			if !imports[q] {
				return fmt.Errorf("route %d (%s): handler %q references undeclared import %q", i, rt.Key, rt.Handler, q)
			}
		}
	}
	return nil
}
