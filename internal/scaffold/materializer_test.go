package scaffold

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hayeah/dropkick/internal/interp"
)

func newTestMaterializer(t *testing.T, files map[string]string) (*Materializer, string) {
	assert := assert.New(t)

	root := t.TempDir()
	dest := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		assert.NoError(os.MkdirAll(filepath.Dir(p), 0o755))
		assert.NoError(os.WriteFile(p, []byte(content), 0o644))
	}
	m := &Materializer{
		TemplateRoot: root,
		DestDir:      dest,
		Name:         "my-app",
		Git:          fakeGit{"user.name": "alice"},
	}
	return m, dest
}

func TestExtract(t *testing.T) {
	assert := assert.New(t)

	m, dest := newTestMaterializer(t, map[string]string{
		"webapp/src/main.go.tt": "package {underscored_name}\n",
		"webapp/README.md.tt":   "# {title}\n",
	})

	report, err := m.Extract([]string{"webapp/README.md.tt", "webapp/src/main.go.tt"})
	assert.NoError(err)
	assert.Equal(2, report.Imported)
	assert.Equal(2, report.Total)

	data, err := os.ReadFile(filepath.Join(dest, "src", "main.go"))
	assert.NoError(err)
	assert.Equal("package my_app\n", string(data))

	data, err = os.ReadFile(filepath.Join(dest, "README.md"))
	assert.NoError(err)
	assert.Equal("# My App\n", string(data))
}

func TestExtractNeverOverwrites(t *testing.T) {
	assert := assert.New(t)

	m, dest := newTestMaterializer(t, map[string]string{
		"webapp/README.md.tt": "# {title}\n",
	})
	existing := filepath.Join(dest, "README.md")
	assert.NoError(os.WriteFile(existing, []byte("original\n"), 0o644))

	report, err := m.Extract([]string{"webapp/README.md.tt"})
	assert.NoError(err)
	assert.Equal(0, report.Imported)
	assert.Equal(StatusSkippedExists, report.Results[0].Status)

	data, err := os.ReadFile(existing)
	assert.NoError(err)
	assert.Equal("original\n", string(data))
}

func TestExtractBinaryCopiedRaw(t *testing.T) {
	assert := assert.New(t)

	raw := "\x89PNG{name}\xff\x00"
	m, dest := newTestMaterializer(t, map[string]string{
		"webapp/logo.png.tt": raw,
	})

	report, err := m.Extract([]string{"webapp/logo.png.tt"})
	assert.NoError(err)
	assert.Equal(1, report.Imported)

	// Placeholders inside binary content are left alone.
	data, err := os.ReadFile(filepath.Join(dest, "logo.png"))
	assert.NoError(err)
	assert.Equal([]byte(raw), data)
}

func TestExtractMissingUserName(t *testing.T) {
	assert := assert.New(t)

	m, dest := newTestMaterializer(t, map[string]string{
		"webapp/README.md.tt": "# {title}\n",
	})
	m.Git = fakeGit{}

	_, err := m.Extract([]string{"webapp/README.md.tt"})
	assert.ErrorIs(err, interp.ErrUserNameMissing)

	// The preflight aborts before anything is written.
	entries, err := os.ReadDir(dest)
	assert.NoError(err)
	assert.Empty(entries)
}

func TestExtractRenderFailureContinues(t *testing.T) {
	assert := assert.New(t)

	m, dest := newTestMaterializer(t, map[string]string{
		"webapp/good.txt.tt": "{name}\n",
		"webapp/bad.txt.tt":  "{no_such_field}\n",
	})

	report, err := m.Extract([]string{"webapp/bad.txt.tt", "webapp/good.txt.tt"})
	assert.NoError(err)
	assert.Equal(1, report.Imported)
	assert.Equal(2, report.Total)
	assert.Equal(StatusFailed, report.Results[0].Status)
	assert.Error(report.Results[0].Err)
	assert.Equal(StatusImported, report.Results[1].Status)

	_, err = os.Stat(filepath.Join(dest, "bad.txt"))
	assert.True(os.IsNotExist(err))
}

func TestPreview(t *testing.T) {
	assert := assert.New(t)

	m, dest := newTestMaterializer(t, map[string]string{
		"webapp/main.go.tt": "package {underscored_name}\n",
	})

	out, err := m.Preview("webapp/main.go.tt")
	assert.NoError(err)
	assert.Equal("package my_app\n", out)

	// Preview is read-only.
	entries, err := os.ReadDir(dest)
	assert.NoError(err)
	assert.Empty(entries)
}

func TestDestinationPath(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("src/main.go", DestinationPath("webapp/src/main.go.tt"))
	assert.Equal("Dockerfile", DestinationPath("webapp/Dockerfile.tt"))
	assert.Equal("notes.md", DestinationPath("notes.md.tt"))
}

func TestIsTestPath(t *testing.T) {
	assert := assert.New(t)

	assert.True(isTestPath("tests/helper.rb"))
	assert.True(isTestPath("spec/models/user_spec.rb"))
	assert.True(isTestPath("pkg/foo_test.go"))
	assert.False(isTestPath("src/main.go"))
	assert.False(isTestPath("contest/entry.go"))
}

func TestReportWrite(t *testing.T) {
	assert := assert.New(t)

	r := &Report{
		Total:    2,
		Imported: 1,
		Results: []FileResult{
			{Source: "webapp/a.tt", Dest: "a", Status: StatusImported},
			{Source: "webapp/b.tt", Dest: "b", Status: StatusSkippedExists},
		},
	}

	var buf bytes.Buffer
	r.Write(&buf)
	out := buf.String()
	assert.Contains(out, "webapp/a.tt -> a")
	assert.Contains(out, "skipped, b already exists")
	assert.Contains(out, "Imported 1 of 2 file(s)")
}
