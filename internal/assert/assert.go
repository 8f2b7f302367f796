// Package assert wraps testify with a couple of project conveniences.
package assert

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Assert bundles testify assertions with the owning *testing.T.
type Assert struct {
	*assert.Assertions
	T *testing.T
}

// New creates an Assert for t.
func New(t *testing.T) *Assert {
	return &Assert{
		Assertions: assert.New(t),
		T:          t,
	}
}

// EqualToJSONFixture marshals result to indented JSON and compares it against
// testdata/<TestName>_<name>.json. Run with GEN_FIXTURE=true to (re)write the
// fixture instead of comparing.
func (a *Assert) EqualToJSONFixture(name string, result any) {
	data, err := json.MarshalIndent(result, "", "  ")
	a.NoError(err, "marshal result")

	fixturePath := filepath.Join("testdata", a.T.Name()+"_"+name+".json")

	if os.Getenv("GEN_FIXTURE") == "true" {
		a.NoError(os.MkdirAll(filepath.Dir(fixturePath), 0o755))
		a.NoError(os.WriteFile(fixturePath, data, 0o644))
		return
	}

	expected, err := os.ReadFile(fixturePath)
	a.NoError(err, "read fixture "+fixturePath)
	a.Equal(string(expected), string(data), "result does not match fixture")
}
