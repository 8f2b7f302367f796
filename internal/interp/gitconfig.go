package interp

import (
	"errors"
	"os/exec"
	"strings"
)

// GitConfig looks up a single git configuration key. An unset key is
// ("", nil); a non-nil error means the lookup machinery itself failed and the
// value could not be determined at all.
type GitConfig interface {
	Lookup(key string) (string, error)
}

// execGitConfig shells out to `git config <key>`, matching the semantics of
// the git binary's own scope merging (system, global, local). A non-zero exit
// means the key is unset; only a failure to run git at all surfaces as an
// error.
type execGitConfig struct{}

// NewGitConfig returns the subprocess-backed resolver.
func NewGitConfig() GitConfig { return execGitConfig{} }

func (execGitConfig) Lookup(key string) (string, error) {
	out, err := exec.Command("git", "config", key).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
