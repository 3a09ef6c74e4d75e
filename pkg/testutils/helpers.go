package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Roots is a temporary forms/instances pair.
type Roots struct {
	Forms     string
	Instances string
}

// NewRoots creates empty forms and instances directories under t.TempDir().
func NewRoots(t *testing.T) Roots {
	t.Helper()
	base := t.TempDir()
	r := Roots{
		Forms:     filepath.Join(base, "forms"),
		Instances: filepath.Join(base, "instances"),
	}
	require.NoError(t, os.MkdirAll(r.Forms, 0755))
	require.NoError(t, os.MkdirAll(r.Instances, 0755))
	return r
}

// CreateTestFilesWithContent creates test files with specific content
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		require.NoError(t, err)
	}
}

// AddForms writes minimal form definitions into the forms root.
func (r Roots) AddForms(t *testing.T, names ...string) {
	t.Helper()
	files := make(map[string]string, len(names))
	for _, n := range names {
		files[n] = "<h:html><h:head><h:title>" + n + "</h:title></h:head></h:html>"
	}
	CreateTestFilesWithContent(t, r.Forms, files)
}

// AddInstances creates instance folders, each holding one saved submission.
func (r Roots) AddInstances(t *testing.T, names ...string) {
	t.Helper()
	for _, n := range names {
		dir := filepath.Join(r.Instances, n)
		require.NoError(t, os.MkdirAll(dir, 0755))
		CreateTestFilesWithContent(t, dir, map[string]string{n + ".xml": "<data/>"})
	}
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	var result []rune
	inEscape := false
	for _, r := range str {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		result = append(result, r)
	}
	return string(result)
}
