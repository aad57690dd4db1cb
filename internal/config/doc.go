// Package config reads and writes routefs.json, the project-level
// configuration file. The file is optional: every field has a default,
// and tooling falls back to New() when no file is present.
package config
