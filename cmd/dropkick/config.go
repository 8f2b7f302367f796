package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	repoConfigFile     = ".dropkickrc"
	defaultProjectName = "Repo Name"
)

// RepoConfig is the optional per-repo config file.
type RepoConfig struct {
	Project ProjectConfig `yaml:"project"`
}

// ProjectConfig names the project and, optionally, a preferred template.
type ProjectConfig struct {
	Name     string `yaml:"name"`
	Template string `yaml:"template"`
}

// loadRepoConfig reads .dropkickrc from dir. An absent, unreadable or invalid
// file yields the default project rather than an error.
func loadRepoConfig(dir string) RepoConfig {
	fallback := RepoConfig{Project: ProjectConfig{Name: defaultProjectName}}

	raw, err := os.ReadFile(filepath.Join(dir, repoConfigFile))
	if err != nil {
		return fallback
	}

	var cfg RepoConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil || cfg.Project.Name == "" {
		return fallback
	}
	return cfg
}
