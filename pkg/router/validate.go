package router

import (
	"fmt"
	"strings"
)

// Conflict describes a set of route files that compile to the same verb
// and URL pattern.
type Conflict struct {
	// Method is the HTTP method of the conflicting routes.
	Method string

	// Pattern is the compiled pattern both files claim.
	Pattern string

	// Sources are the route-file paths involved.
	Sources []string
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s %s claimed by %s", c.Method, c.Pattern, strings.Join(c.Sources, ", "))
}

// TableError aggregates every conflict found in a route table so callers
// see the full picture in one failure.
type TableError struct {
	Conflicts []Conflict
}

func (e *TableError) Error() string {
	if len(e.Conflicts) == 1 {
		return "duplicate route: " + e.Conflicts[0].String()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d duplicate routes:\n", len(e.Conflicts))
	for i, c := range e.Conflicts {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, c.String())
	}
	return sb.String()
}

// validateTable rejects tables where two definitions share a verb and
// pattern. Discovery order is deterministic, so conflicts are reported in
// a stable order.
func validateTable(defs []RouteDefinition) error {
	type key struct {
		method  string
		pattern string
	}

	byKey := make(map[key][]string)
	var order []key
	for _, def := range defs {
		k := key{method: def.Verb.Method(), pattern: def.Pattern.String()}
		if _, seen := byKey[k]; !seen {
			order = append(order, k)
		}
		byKey[k] = append(byKey[k], def.Source)
	}

	var conflicts []Conflict
	for _, k := range order {
		sources := byKey[k]
		if len(sources) > 1 {
			conflicts = append(conflicts, Conflict{
				Method:  k.method,
				Pattern: k.pattern,
				Sources: sources,
			})
		}
	}

	if len(conflicts) > 0 {
		return &TableError{Conflicts: conflicts}
	}
	return nil
}
