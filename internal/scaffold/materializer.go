package scaffold

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/hayeah/dropkick/internal/interp"
	"github.com/hayeah/dropkick/internal/tree"
)

// Status classifies the outcome for one selected file.
type Status int

const (
	StatusImported Status = iota
	StatusSkippedExists
	StatusFailed
)

// FileResult records what happened to one selected file.
type FileResult struct {
	Source string // root-relative template path
	Dest   string // destination-relative path
	Status Status
	Err    error
}

// Report summarizes one export run.
type Report struct {
	Results  []FileResult
	Imported int
	Total    int
}

// Write prints the per-file progress lines and summary totals.
func (r *Report) Write(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", 50))
	for _, res := range r.Results {
		switch res.Status {
		case StatusImported:
			fmt.Fprintf(w, "  • %s -> %s\n", res.Source, res.Dest)
		case StatusSkippedExists:
			fmt.Fprintf(w, "  • %s: skipped, %s already exists\n", res.Source, res.Dest)
		case StatusFailed:
			fmt.Fprintf(w, "  • %s: %v\n", res.Source, res.Err)
		}
	}
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Imported %d of %d file(s)\n", r.Imported, r.Total)
}

// Materializer copies selected template files into the destination project,
// rendering placeholders on the way. It never writes inside the template
// root and never overwrites an existing destination file.
type Materializer struct {
	TemplateRoot string // absolute template root
	DestDir      string // destination project directory
	Name         string // project name
	Prefix       string // name prefix for the unprefixed variants
	Git          interp.GitConfig
}

// Extract materializes the selected files (root-relative template paths).
// Missing mandatory git metadata aborts before anything is written; per-file
// render or I/O failures are recorded and the run continues.
func (m *Materializer) Extract(selected []string) (*Report, error) {
	// Resolve mandatory metadata up front so a misconfigured git identity
	// aborts with zero files materialized.
	if _, err := interp.NewBuilder(m.Name, m.Prefix, m.Git).Build(); err != nil {
		return nil, err
	}

	report := &Report{Total: len(selected)}
	for _, src := range selected {
		res := m.extractOne(src)
		if res.Status == StatusImported {
			report.Imported++
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}

func (m *Materializer) extractOne(src string) FileResult {
	dest := DestinationPath(src)
	res := FileResult{Source: src, Dest: dest}

	destPath := filepath.Join(m.DestDir, filepath.FromSlash(dest))
	if _, err := os.Stat(destPath); err == nil {
		res.Status = StatusSkippedExists
		return res
	}

	data, err := os.ReadFile(filepath.Join(m.TemplateRoot, filepath.FromSlash(src)))
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		return res
	}

	bin := !utf8.Valid(data)
	ctx, err := m.contextFor(src, bin)
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		return res
	}

	out := data
	if !bin {
		rendered, err := Render(string(data), ctx)
		if err != nil {
			res.Status = StatusFailed
			res.Err = err
			return res
		}
		out = []byte(rendered)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		res.Status = StatusFailed
		res.Err = err
		return res
	}
	if err := os.WriteFile(destPath, out, 0o644); err != nil {
		res.Status = StatusFailed
		res.Err = err
		return res
	}

	res.Status = StatusImported
	return res
}

// Preview renders one template file without writing anything.
func (m *Materializer) Preview(src string) (string, error) {
	data, err := os.ReadFile(filepath.Join(m.TemplateRoot, filepath.FromSlash(src)))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: binary content", src)
	}
	ctx, err := m.contextFor(src, false)
	if err != nil {
		return "", err
	}
	return Render(string(data), ctx)
}

// contextFor builds the per-file interpolation context. Git metadata is
// resolved fresh on every call; the simplicity is deliberate.
func (m *Materializer) contextFor(src string, bin bool) (*interp.Context, error) {
	dest := DestinationPath(src)
	return interp.NewBuilder(m.Name, m.Prefix, m.Git).
		Template(templateFolder(src)).
		Test(isTestPath(dest)).
		Ext(strings.TrimPrefix(path.Ext(dest), ".")).
		Bin(bin).
		Build()
}

// DestinationPath maps a root-relative template path to its destination:
// the leading template-folder segment is dropped and the marker suffix
// stripped.
func DestinationPath(src string) string {
	rel := src
	if i := strings.IndexByte(rel, '/'); i >= 0 {
		rel = rel[i+1:]
	}
	return strings.TrimSuffix(rel, tree.MarkerSuffix)
}

// templateFolder is the leading segment of a selected path, naming the
// template the file belongs to.
func templateFolder(src string) string {
	if i := strings.IndexByte(src, '/'); i >= 0 {
		return src[:i]
	}
	return ""
}

// isTestPath flags destinations that look like test sources, either by a
// test/spec directory segment or a conventional test filename.
func isTestPath(dest string) bool {
	for _, seg := range strings.Split(path.Dir(dest), "/") {
		switch seg {
		case "test", "tests", "spec", "specs":
			return true
		}
	}
	base := path.Base(dest)
	return strings.Contains(base, "_test.") || strings.Contains(base, "_spec.") ||
		strings.HasSuffix(base, "_test") || strings.HasSuffix(base, "_spec")
}
