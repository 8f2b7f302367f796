// Package highlight implements the browser's Highlighter collaborator on top
// of chroma. Lookup goes through the filename with the template marker suffix
// stripped, so "Dockerfile.tt" highlights as a Dockerfile and "main.go.tt"
// as Go.
package highlight

import (
	"path"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/hayeah/dropkick/internal/browser"
	"github.com/hayeah/dropkick/internal/tree"
)

// Service highlights file content with a fixed style.
type Service struct {
	style *chroma.Style
}

// New returns a Service using the github style, the closest match to the
// light theme the picker shipped with.
func New() *Service {
	s := styles.Get("github")
	if s == nil {
		s = styles.Fallback
	}
	return &Service{style: s}
}

// Highlight tokenizes content and returns one styled Line per source line.
// Unknown file types degrade to plain text; tabs are expanded to two spaces.
func (s *Service) Highlight(content, p string) ([]browser.Line, error) {
	lexer := lexerFor(p)

	it, err := lexer.Tokenise(nil, content)
	if err != nil {
		return nil, err
	}

	lines := []browser.Line{{}}
	for tok := it(); tok != chroma.EOF; tok = it() {
		color := ""
		if entry := s.style.Get(tok.Type); entry.Colour.IsSet() {
			color = entry.Colour.String()
		}
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, browser.Line{})
			}
			if part == "" {
				continue
			}
			part = strings.ReplaceAll(part, "\t", "  ")
			last := len(lines) - 1
			lines[last] = append(lines[last], browser.Span{Text: part, Color: color})
		}
	}

	// Tokenising "a\nb\n" leaves a trailing empty line; drop it so the line
	// count matches the file.
	if last := len(lines) - 1; last > 0 && len(lines[last]) == 0 {
		lines = lines[:last]
	}
	if len(content) == 0 {
		return nil, nil
	}
	return lines, nil
}

// lexerFor picks a lexer for the given path, special-casing the well-known
// extension-less filenames before falling back to chroma's own matching.
func lexerFor(p string) chroma.Lexer {
	name := strings.TrimSuffix(path.Base(p), tree.MarkerSuffix)

	var lexer chroma.Lexer
	switch strings.ToLower(name) {
	case "dockerfile":
		lexer = lexers.Get("docker")
	case "gemfile", "rakefile", "guardfile", "capfile", "vagrantfile":
		lexer = lexers.Get("ruby")
	case "makefile":
		lexer = lexers.Get("make")
	case "cmakelists.txt":
		lexer = lexers.Get("cmake")
	case "justfile":
		lexer = lexers.Get("just")
	}
	if lexer == nil {
		lexer = lexers.Match(name)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}
