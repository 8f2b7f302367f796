//go:build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/hayeah/dropkick/internal/browser"
	"github.com/hayeah/dropkick/internal/highlight"
)

func BuildPickRunner(args PickCmd) (*PickRunner, error) {
	wire.Build(
		ProvideTemplateRoot,
		ProvideDestDir,
		ProvideProject,
		ProvideGitConfig,
		ProvideHighlighter,
		ProvideTree,
		ProvideBrowser,
		ProvideMaterializer,
		wire.Bind(new(browser.Highlighter), new(*highlight.Service)),
		wire.Struct(new(PickRunner), "Root", "Browser", "Materializer"),
	)
	return nil, nil
}
