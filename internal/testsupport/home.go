package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// Home is an isolated home and working directory for a single test.
type Home struct {
	Dir     string
	WorkDir string
}

// NewHome points HOME at a fresh temp directory and changes into a sibling
// working directory, so neither the user configuration nor a project
// configuration in the caller's directory can leak into the test.
func NewHome(t *testing.T) *Home {
	t.Helper()

	base := t.TempDir()
	h := &Home{
		Dir:     filepath.Join(base, "home"),
		WorkDir: filepath.Join(base, "work"),
	}
	for _, dir := range []string{h.Dir, h.WorkDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	t.Setenv("HOME", h.Dir)
	t.Chdir(h.WorkDir)
	return h
}

// ConfigPath is where the default configuration document lives for this home.
func (h *Home) ConfigPath() string {
	return filepath.Join(h.Dir, ".config", "wordfreq", "config.toml")
}

// WriteConfig writes doc to the default configuration path.
func (h *Home) WriteConfig(t testing.TB, doc string) string {
	t.Helper()
	return WriteFile(t, h.ConfigPath(), doc)
}
