// Package scaffold renders selected template files and materializes them
// into the destination project.
package scaffold

import (
	"bytes"
	"fmt"
	"regexp"
	"text/template"

	"github.com/hayeah/dropkick/internal/interp"
)

// placeholderPattern matches the single-brace placeholder dialect template
// files are written in: `{name}`, with optional internal whitespace. Braces
// not wrapping a bare identifier pass through untouched.
var placeholderPattern = regexp.MustCompile(`\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}`)

// Rewrite translates the placeholder dialect into native template syntax.
func Rewrite(src string) string {
	return placeholderPattern.ReplaceAllString(src, "{{.$1}}")
}

// Render substitutes placeholders in src from ctx. A placeholder with no
// matching context field fails, and the error names the missing field.
func Render(src string, ctx *interp.Context) (string, error) {
	tmpl, err := template.New("template").Option("missingkey=error").Parse(Rewrite(src))
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx.Map()); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}
