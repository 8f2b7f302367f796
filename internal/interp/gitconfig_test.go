package interp

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGitConfigUnsetKey(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	assert := assert.New(t)

	// An unset key reads as empty without an error; git exiting non-zero is
	// not a lookup failure.
	g := NewGitConfig()
	v, err := g.Lookup("user.dropkick-test-key-that-is-never-set")
	assert.NoError(err)
	assert.Equal("", v)
}
