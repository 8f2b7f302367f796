package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sahilm/fuzzy"

	"github.com/hayeah/dropkick/internal/tree"
)

// LsCmd lists visible template files.
type LsCmd struct {
	Filter string `arg:"--filter" help:"fuzzy-filter paths"`
	Root   string `arg:"--root" help:"template root (default ~/.bundlegem/templates)"`
}

// LsRunner prints the visible template files, optionally fuzzy-filtered.
type LsRunner struct {
	Args LsCmd
	Root string
	Out  io.Writer
}

// NewLsRunner creates a runner with the resolved template root.
func NewLsRunner(args LsCmd) (*LsRunner, error) {
	root, err := templateRoot(args.Root)
	if err != nil {
		return nil, err
	}
	return &LsRunner{Args: args, Root: root, Out: os.Stdout}, nil
}

// Run builds the tree and prints file paths in tree order. With --filter the
// paths are fuzzy-matched and printed in match-rank order.
func (r *LsRunner) Run() error {
	t, err := tree.Build(r.Root)
	if err != nil {
		return err
	}

	files := t.Files()
	if r.Args.Filter != "" {
		matches := fuzzy.Find(r.Args.Filter, files)
		ranked := make([]string, 0, len(matches))
		for _, match := range matches {
			ranked = append(ranked, files[match.Index])
		}
		files = ranked
	}

	for _, f := range files {
		fmt.Fprintln(r.Out, f)
	}
	return nil
}
