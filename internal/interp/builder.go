package interp

import (
	"errors"
	"fmt"
	"strings"
)

// Context is the full interpolation context: name variants, git-derived
// identity and domains, and per-file flags. It is rebuilt fresh for each
// render; git lookups are deliberately not cached across builds.
type Context struct {
	Name             string   `json:"name"`
	Title            string   `json:"title"`
	UnprefixedName   string   `json:"unprefixed_name"`
	UnprefixedPascal string   `json:"unprefixed_pascal"`
	UnderscoredName  string   `json:"underscored_name"`
	PascalName       string   `json:"pascal_name"`
	CamelName        string   `json:"camel_name"`
	ScreamcaseName   string   `json:"screamcase_name"`
	NamespacedPath   string   `json:"namespaced_path"`
	MakefilePath     string   `json:"makefile_path"`
	ConstantName     string   `json:"constant_name"`
	ConstantArray    []string `json:"constant_array"`
	Author           string   `json:"author"`
	Email            string   `json:"email"`
	GitRepoDomain    string   `json:"git_repo_domain"`
	GitRepoURL       string   `json:"git_repo_url"`
	GitRepoPath      string   `json:"git_repo_path"`
	ImagePath        string   `json:"image_path"`
	RegistryDomain   string   `json:"registry_domain"`
	RegistryRepoPath string   `json:"registry_repo_path"`
	K8sDomain        string   `json:"k8s_domain"`
	Template         string   `json:"template"`
	Test             bool     `json:"test"`
	Ext              string   `json:"ext"`
	Bin              bool     `json:"bin"`
}

// Map exposes the context under the snake_case keys templates use.
func (c *Context) Map() map[string]any {
	return map[string]any{
		"name":               c.Name,
		"title":              c.Title,
		"unprefixed_name":    c.UnprefixedName,
		"unprefixed_pascal":  c.UnprefixedPascal,
		"underscored_name":   c.UnderscoredName,
		"pascal_name":        c.PascalName,
		"camel_name":         c.CamelName,
		"screamcase_name":    c.ScreamcaseName,
		"namespaced_path":    c.NamespacedPath,
		"makefile_path":      c.MakefilePath,
		"constant_name":      c.ConstantName,
		"constant_array":     c.ConstantArray,
		"author":             c.Author,
		"email":              c.Email,
		"git_repo_domain":    c.GitRepoDomain,
		"git_repo_url":       c.GitRepoURL,
		"git_repo_path":      c.GitRepoPath,
		"image_path":         c.ImagePath,
		"registry_domain":    c.RegistryDomain,
		"registry_repo_path": c.RegistryRepoPath,
		"k8s_domain":         c.K8sDomain,
		"template":           c.Template,
		"test":               c.Test,
		"ext":                c.Ext,
		"bin":                c.Bin,
	}
}

// ErrUserNameMissing aborts a build when git config returns an explicitly
// empty user.name. Optional keys degrade; this one is mandatory.
var ErrUserNameMissing = errors.New(
	"git config user.name didn't return a value. You'll probably want to make sure " +
		"that's configured with your github username:\n\ngit config --global user.name YOUR_GH_NAME")

const (
	todoAuthor    = "TODO: Write your name"
	todoEmail     = "TODO: Write your email address"
	k8sSentinel   = "k8s.domain.missing.from.gitconfig.local"
	defaultRepo   = "github.com"
	userNameKey   = "user.name"
	emailKey      = "user.email"
	registryKey   = "user.registry-domain"
	k8sKey        = "user.k8s-domain"
	repoDomainKey = "user.repo-domain"
)

// Builder assembles a Context for one rendered file.
type Builder struct {
	name     string
	prefix   string
	template string
	test     bool
	ext      string
	bin      bool
	git      GitConfig
}

// NewBuilder starts a builder for the given project name and prefix.
func NewBuilder(name, prefix string, git GitConfig) *Builder {
	return &Builder{name: name, prefix: prefix, git: git}
}

// Template records the template folder the file came from.
func (b *Builder) Template(t string) *Builder { b.template = t; return b }

// Test flags the file as a test source.
func (b *Builder) Test(t bool) *Builder { b.test = t; return b }

// Ext records the destination file extension.
func (b *Builder) Ext(e string) *Builder { b.ext = e; return b }

// Bin flags the file as binary content.
func (b *Builder) Bin(v bool) *Builder { b.bin = v; return b }

// Build resolves git metadata and assembles the context. It fails only when
// a working git reports an empty user.name; a broken or missing git binary
// degrades to placeholders, and every optional key degrades to a placeholder
// or default.
func (b *Builder) Build() (*Context, error) {
	d := Derive(b.name, b.prefix)

	user, err := b.git.Lookup(userNameKey)
	if err == nil && user == "" {
		return nil, ErrUserNameMissing
	}

	email := lookupOptional(b.git, emailKey)
	registry := lookupOptional(b.git, registryKey)
	k8s := lookupOptional(b.git, k8sKey)
	repoDomain := lookupOptional(b.git, repoDomainKey)
	if repoDomain == "" {
		repoDomain = defaultRepo
	}

	author := user
	if author == "" {
		author = todoAuthor
	}
	if email == "" {
		email = todoEmail
	}
	if k8s == "" {
		k8s = k8sSentinel
	}

	imagePath := strings.ToLower(fmt.Sprintf("%s/%s", user, b.name))

	return &Context{
		Name:             d.Name,
		Title:            d.Title,
		UnprefixedName:   d.UnprefixedName,
		UnprefixedPascal: d.UnprefixedPascal,
		UnderscoredName:  d.UnderscoredName,
		PascalName:       d.PascalName,
		CamelName:        d.CamelName,
		ScreamcaseName:   d.ScreamcaseName,
		NamespacedPath:   d.NamespacedPath,
		MakefilePath:     d.MakefilePath,
		ConstantName:     d.ConstantName,
		ConstantArray:    d.ConstantArray,
		Author:           author,
		Email:            email,
		GitRepoDomain:    repoDomain,
		GitRepoURL:       fmt.Sprintf("https://%s/%s/%s", repoDomain, user, b.name),
		GitRepoPath:      strings.ToLower(fmt.Sprintf("%s/%s/%s", repoDomain, user, b.name)),
		ImagePath:        imagePath,
		RegistryDomain:   registry,
		RegistryRepoPath: strings.ToLower(fmt.Sprintf("%s/%s", registry, imagePath)),
		K8sDomain:        k8s,
		Template:         b.template,
		Test:             b.test,
		Ext:              b.ext,
		Bin:              b.bin,
	}, nil
}

// lookupOptional reads a key whose absence never fails a build.
func lookupOptional(git GitConfig, key string) string {
	v, err := git.Lookup(key)
	if err != nil {
		return ""
	}
	return v
}
