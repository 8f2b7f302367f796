package interp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	dassert "github.com/hayeah/dropkick/internal/assert"
)

// fakeGit serves lookups from a fixed map; absent keys read as unset.
type fakeGit map[string]string

func (g fakeGit) Lookup(key string) (string, error) { return g[key], nil }

// brokenGit models a machine with no usable git binary.
type brokenGit struct{}

func (brokenGit) Lookup(key string) (string, error) {
	return "", errors.New("exec: \"git\": executable file not found in $PATH")
}

func TestBuildMissingUserName(t *testing.T) {
	assert := assert.New(t)

	_, err := NewBuilder("my-app", "", fakeGit{}).Build()
	assert.ErrorIs(err, ErrUserNameMissing)
}

func TestBuildWithoutGitBinary(t *testing.T) {
	assert := assert.New(t)

	// A lookup failure is not the same as an empty user.name: the build
	// degrades to placeholders instead of aborting.
	ctx, err := NewBuilder("my-app", "", brokenGit{}).Build()
	assert.NoError(err)
	assert.Equal("TODO: Write your name", ctx.Author)
	assert.Equal("TODO: Write your email address", ctx.Email)
	assert.Equal("github.com", ctx.GitRepoDomain)
}

func TestBuildDefaults(t *testing.T) {
	assert := assert.New(t)

	ctx, err := NewBuilder("My-App", "", fakeGit{"user.name": "Alice"}).Build()
	assert.NoError(err)

	assert.Equal("Alice", ctx.Author)
	assert.Equal("TODO: Write your email address", ctx.Email)
	assert.Equal("github.com", ctx.GitRepoDomain)
	assert.Equal("https://github.com/Alice/My-App", ctx.GitRepoURL)
	assert.Equal("github.com/alice/my-app", ctx.GitRepoPath)
	assert.Equal("alice/my-app", ctx.ImagePath)
	assert.Equal("", ctx.RegistryDomain)
	assert.Equal("k8s.domain.missing.from.gitconfig.local", ctx.K8sDomain)
}

func TestBuildContext(t *testing.T) {
	assert := dassert.New(t)

	git := fakeGit{
		"user.name":            "Alice",
		"user.email":           "alice@example.com",
		"user.registry-domain": "Registry.Example.com",
		"user.k8s-domain":      "k8s.example.com",
		"user.repo-domain":     "GitLab.com",
	}
	ctx, err := NewBuilder("my-cool_app", "my-", git).
		Template("webapp").
		Ext("go").
		Build()
	assert.NoError(err)
	assert.EqualToJSONFixture("full", ctx)
}

func TestBuildPerFileFlags(t *testing.T) {
	assert := assert.New(t)

	ctx, err := NewBuilder("my-app", "", fakeGit{"user.name": "alice"}).
		Template("cli").
		Test(true).
		Ext("rb").
		Bin(true).
		Build()
	assert.NoError(err)

	assert.Equal("cli", ctx.Template)
	assert.True(ctx.Test)
	assert.Equal("rb", ctx.Ext)
	assert.True(ctx.Bin)
}

func TestContextMap(t *testing.T) {
	assert := assert.New(t)

	ctx, err := NewBuilder("my-app", "", fakeGit{"user.name": "alice"}).Build()
	assert.NoError(err)

	m := ctx.Map()
	assert.Len(m, 25)
	assert.Equal(ctx.Name, m["name"])
	assert.Equal(ctx.ScreamcaseName, m["screamcase_name"])
	assert.Equal(ctx.GitRepoURL, m["git_repo_url"])
	assert.Equal(ctx.Test, m["test"])
}
