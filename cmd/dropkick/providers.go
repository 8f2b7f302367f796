package main

import (
	"os"

	"github.com/hayeah/dropkick/internal/browser"
	"github.com/hayeah/dropkick/internal/highlight"
	"github.com/hayeah/dropkick/internal/interp"
	"github.com/hayeah/dropkick/internal/scaffold"
	"github.com/hayeah/dropkick/internal/tree"
)

// TemplateRoot is the absolute template root directory.
type TemplateRoot string

// DestDir is the directory materialized files are written under.
type DestDir string

// ProvideTemplateRoot resolves the template root from the flag or home dir.
func ProvideTemplateRoot(args PickCmd) (TemplateRoot, error) {
	root, err := templateRoot(args.Root)
	return TemplateRoot(root), err
}

// ProvideDestDir targets the working directory.
func ProvideDestDir() (DestDir, error) {
	wd, err := os.Getwd()
	return DestDir(wd), err
}

// ProvideProject resolves the project identity: flags win over .dropkickrc,
// which falls back to the default project name.
func ProvideProject(args PickCmd, dest DestDir) *Project {
	cfg := loadRepoConfig(string(dest))
	p := &Project{
		Name:     cfg.Project.Name,
		Template: cfg.Project.Template,
	}
	if args.Name != "" {
		p.Name = args.Name
	}
	p.Prefix = args.Prefix
	return p
}

// ProvideGitConfig constructs the subprocess-backed git config resolver.
func ProvideGitConfig() interp.GitConfig {
	return interp.NewGitConfig()
}

// ProvideHighlighter constructs the syntax highlighting service.
func ProvideHighlighter() *highlight.Service {
	return highlight.New()
}

// ProvideTree builds the template tree once, from a filesystem snapshot at
// startup.
func ProvideTree(root TemplateRoot) (*tree.Tree, error) {
	return tree.Build(string(root))
}

// ProvideBrowser constructs the picker state machine over the tree.
func ProvideBrowser(t *tree.Tree, root TemplateRoot, hl browser.Highlighter) *browser.Browser {
	return browser.New(t, os.DirFS(string(root)), hl)
}

// ProvideMaterializer constructs the export pipeline.
func ProvideMaterializer(root TemplateRoot, dest DestDir, p *Project, git interp.GitConfig) *scaffold.Materializer {
	return &scaffold.Materializer{
		TemplateRoot: string(root),
		DestDir:      string(dest),
		Name:         p.Name,
		Prefix:       p.Prefix,
		Git:          git,
	}
}
