package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hayeah/dropkick/internal/interp"
	"github.com/hayeah/dropkick/internal/scaffold"
)

// RenderCmd renders a single template file to stdout.
type RenderCmd struct {
	File   string `arg:"positional,required" help:"root-relative template path (as printed by ls)"`
	Name   string `arg:"--name" help:"project name (overrides .dropkickrc)"`
	Prefix string `arg:"--prefix" help:"prefix stripped from the name"`
	Root   string `arg:"--root" help:"template root (default ~/.bundlegem/templates)"`
}

// RenderRunner renders one template with the current interpolation context.
type RenderRunner struct {
	Args         RenderCmd
	Materializer *scaffold.Materializer
	Out          io.Writer
}

// NewRenderRunner resolves the root and project identity.
func NewRenderRunner(args RenderCmd) (*RenderRunner, error) {
	root, err := templateRoot(args.Root)
	if err != nil {
		return nil, err
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	name := args.Name
	if name == "" {
		name = loadRepoConfig(wd).Project.Name
	}

	return &RenderRunner{
		Args: args,
		Materializer: &scaffold.Materializer{
			TemplateRoot: root,
			DestDir:      wd,
			Name:         name,
			Prefix:       args.Prefix,
			Git:          interp.NewGitConfig(),
		},
		Out: os.Stdout,
	}, nil
}

// Run renders the template and writes the result to Out.
func (r *RenderRunner) Run() error {
	rendered, err := r.Materializer.Preview(r.Args.File)
	if err != nil {
		return err
	}
	fmt.Fprint(r.Out, rendered)
	return nil
}
