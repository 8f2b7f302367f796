package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/alexflint/go-arg"
)

// Args defines the command-line arguments with subcommands. Running with no
// subcommand opens the interactive picker.
type Args struct {
	Pick   *PickCmd   `arg:"subcommand:pick" help:"Pick template files interactively and export them"`
	Ls     *LsCmd     `arg:"subcommand:ls" help:"List visible template files"`
	Render *RenderCmd `arg:"subcommand:render" help:"Render one template file to stdout"`
}

// PickCmd configures the interactive picker.
type PickCmd struct {
	Name   string `arg:"--name" help:"project name (overrides .dropkickrc)"`
	Prefix string `arg:"--prefix" help:"prefix stripped from the name for the unprefixed variants"`
	Root   string `arg:"--root" help:"template root (default ~/.bundlegem/templates)"`
}

// Runner dispatches to the appropriate subcommand.
type Runner struct {
	Args Args
}

// NewRunner creates and initializes a new Runner.
func NewRunner(args Args) *Runner {
	return &Runner{Args: args}
}

// Run dispatches to the appropriate subcommand.
func (r *Runner) Run() error {
	switch {
	case r.Args.Ls != nil:
		lsRunner, err := NewLsRunner(*r.Args.Ls)
		if err != nil {
			return err
		}
		return lsRunner.Run()
	case r.Args.Render != nil:
		renderRunner, err := NewRenderRunner(*r.Args.Render)
		if err != nil {
			return err
		}
		return renderRunner.Run()
	default:
		pickRunner, err := BuildPickRunner(*r.Args.Pick)
		if err != nil {
			return err
		}
		return pickRunner.Run()
	}
}

// templateRoot resolves the template root: an explicit flag wins, otherwise
// ~/.bundlegem/templates. An unresolved home directory is a fatal setup
// error.
func templateRoot(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".bundlegem", "templates"), nil
}

// main is our entrypoint: parse args and run the application.
func main() {
	var args Args
	arg.MustParse(&args)

	// No subcommand means pick.
	if args.Pick == nil && args.Ls == nil && args.Render == nil {
		args.Pick = &PickCmd{}
	}

	runner := NewRunner(args)
	if err := runner.Run(); err != nil {
		log.Fatal(err)
	}
}
