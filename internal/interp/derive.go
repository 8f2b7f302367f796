// Package interp builds the interpolation context templates render against:
// a bundle of casing variants derived from the project name plus identity and
// domain values resolved from local git configuration.
package interp

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Derived holds every name variant computed from one project name. The rules
// are load-bearing: published templates depend on their exact output.
type Derived struct {
	Name             string
	Title            string
	UnprefixedName   string
	UnprefixedPascal string
	UnderscoredName  string
	PascalName       string
	CamelName        string
	ScreamcaseName   string
	NamespacedPath   string
	MakefilePath     string
	ConstantName     string
	ConstantArray    []string
}

// Derive computes all name variants for name. prefix, when the name starts
// with it, is stripped to form the unprefixed variants.
func Derive(name, prefix string) Derived {
	underscored := strings.ReplaceAll(name, "-", "_")

	unprefixed := name
	if prefix != "" && strings.HasPrefix(name, prefix) {
		unprefixed = name[len(prefix):]
	}

	// ConstantName is a two-pass rule: underscore tokens are fused first, and
	// any remaining dashes split the result into :: namespace segments.
	constant := joinCapitalized(splitNonEmpty(name, "_"), "")
	if strings.Contains(constant, "-") {
		constant = joinCapitalized(strings.Split(constant, "-"), "::")
	}

	pascal := joinCapitalized(strings.Split(underscored, "_"), "")

	return Derived{
		Name:             name,
		Title:            joinCapitalized(strings.Split(underscored, "_"), " "),
		UnprefixedName:   unprefixed,
		UnprefixedPascal: joinCapitalized(strings.Split(strings.ReplaceAll(unprefixed, "-", "_"), "_"), ""),
		UnderscoredName:  underscored,
		PascalName:       pascal,
		CamelName:        decapitalize(pascal),
		ScreamcaseName:   strings.ToUpper(underscored),
		NamespacedPath:   strings.ReplaceAll(name, "-", "/"),
		MakefilePath:     underscored + "/" + underscored,
		ConstantName:     constant,
		ConstantArray:    strings.Split(constant, "::"),
	}
}

func splitNonEmpty(s, sep string) []string {
	var out []string
	for _, p := range strings.Split(s, sep) {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func joinCapitalized(parts []string, sep string) string {
	capped := make([]string, len(parts))
	for i, p := range parts {
		capped[i] = capitalize(p)
	}
	return strings.Join(capped, sep)
}

// capitalize upper-cases the first rune. Runes without a case mapping (CJK,
// digits, symbols) pass through unchanged.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func decapitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
