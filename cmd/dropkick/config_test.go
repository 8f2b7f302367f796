package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadRepoConfig(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	// No file yields the default project name.
	cfg := loadRepoConfig(dir)
	assert.Equal("Repo Name", cfg.Project.Name)

	raw := "project:\n  name: widget\n  template: webapp\n"
	assert.NoError(os.WriteFile(filepath.Join(dir, ".dropkickrc"), []byte(raw), 0o644))

	cfg = loadRepoConfig(dir)
	assert.Equal("widget", cfg.Project.Name)
	assert.Equal("webapp", cfg.Project.Template)
}

func TestLoadRepoConfigInvalid(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	assert.NoError(os.WriteFile(filepath.Join(dir, ".dropkickrc"), []byte(":::not yaml"), 0o644))
	cfg := loadRepoConfig(dir)
	assert.Equal("Repo Name", cfg.Project.Name)
}

func TestLoadRepoConfigEmptyName(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	assert.NoError(os.WriteFile(filepath.Join(dir, ".dropkickrc"), []byte("project:\n  template: webapp\n"), 0o644))
	cfg := loadRepoConfig(dir)
	assert.Equal("Repo Name", cfg.Project.Name)
}
