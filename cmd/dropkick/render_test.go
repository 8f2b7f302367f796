package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hayeah/dropkick/internal/scaffold"
)

// fakeGit serves lookups from a fixed map; absent keys read as unset.
type fakeGit map[string]string

func (g fakeGit) Lookup(key string) (string, error) { return g[key], nil }

func TestRenderRunner(t *testing.T) {
	assert := assert.New(t)

	root := t.TempDir()
	writeTemplate(t, root, "webapp/main.go.tt", "package {underscored_name}\n")

	var buf bytes.Buffer
	r := &RenderRunner{
		Args: RenderCmd{File: "webapp/main.go.tt"},
		Materializer: &scaffold.Materializer{
			TemplateRoot: root,
			DestDir:      t.TempDir(),
			Name:         "my-app",
			Git:          fakeGit{"user.name": "alice"},
		},
		Out: &buf,
	}
	assert.NoError(r.Run())
	assert.Equal("package my_app\n", buf.String())
}

func TestRenderRunnerMissingFile(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	r := &RenderRunner{
		Args: RenderCmd{File: "webapp/nope.tt"},
		Materializer: &scaffold.Materializer{
			TemplateRoot: t.TempDir(),
			DestDir:      t.TempDir(),
			Name:         "my-app",
			Git:          fakeGit{"user.name": "alice"},
		},
		Out: &buf,
	}
	assert.Error(r.Run())
}
