// Package util holds small helpers shared by blogmesh packages that are not
// part of the public API.
package util

import (
	"strings"
	"text/template"
)

var funcs = template.FuncMap{
	"join": func(sep string, items []string) string {
		return strings.Join(items, sep)
	},
}

// MustParse parses a prompt template at init time, panicking on syntax errors.
// Prompt text is never HTML-escaped, and missing map keys fail execution
// instead of rendering "<no value>".
func MustParse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Option("missingkey=error").Parse(text))
}
