package router

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// logRoute emits one structured diagnostic line describing a registered
// route: verb, compiled pattern, which schema members are declared, and
// whether a pre-hook exists.
func logRoute(log zerolog.Logger, def RouteDefinition) {
	log.Info().
		Str("method", def.Verb.Method()).
		Str("pattern", def.Pattern.String()).
		Str("source", def.Source).
		Strs("schema", schemaMembers(def)).
		Bool("hook", def.Before != nil).
		Msg("route registered")
}

// schemaMembers lists the declared composite members of a definition.
func schemaMembers(def RouteDefinition) []string {
	if def.Schema == nil {
		return nil
	}
	var members []string
	if def.Schema.Params != nil {
		members = append(members, "params")
	}
	if def.Schema.Query != nil {
		members = append(members, "query")
	}
	if def.Schema.Body != nil {
		members = append(members, "body")
	}
	return members
}

// FormatRoute renders a definition as one human-readable table line, used
// by the CLI route dump.
func FormatRoute(def RouteDefinition) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-7s %-40s %s", def.Verb.Method(), def.Pattern.String(), def.Source)
	if members := schemaMembers(def); len(members) > 0 {
		fmt.Fprintf(&sb, "  [%s]", strings.Join(members, " "))
	}
	if def.Before != nil {
		sb.WriteString("  +hook")
	}
	return sb.String()
}
