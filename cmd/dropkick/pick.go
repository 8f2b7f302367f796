package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hayeah/dropkick/internal/browser"
	"github.com/hayeah/dropkick/internal/scaffold"
)

// Project is the resolved project identity the interpolation context is
// built from.
type Project struct {
	Name     string
	Prefix   string
	Template string
}

// PickRunner owns the interactive session: it runs the TUI over the template
// tree and, on export, drives the materializer over the final selection.
type PickRunner struct {
	Root         TemplateRoot
	Browser      *browser.Browser
	Materializer *scaffold.Materializer
}

// Run starts the TUI and materializes the selection afterwards. The TUI
// paints to stderr so report output composes with shell pipelines.
func (r *PickRunner) Run() error {
	ui := newUIModel(r.Browser, string(r.Root))
	p := tea.NewProgram(ui, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	if _, err := p.Run(); err != nil {
		return err
	}

	if r.Browser.Exit() != browser.ExitExport {
		return nil
	}

	selected := r.Browser.Selection().Values()
	if len(selected) == 0 {
		fmt.Println("\nNo files selected.")
		return nil
	}

	report, err := r.Materializer.Extract(selected)
	if err != nil {
		return err
	}
	report.Write(os.Stdout)
	return nil
}
