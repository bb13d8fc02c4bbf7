//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/norareidy/i-need-a-reference/internal/apperr"
	"github.com/norareidy/i-need-a-reference/internal/candidate"
)

// testEnv holds paths to an isolated docs workspace.
type testEnv struct {
	BaseDir string   // holds the sibling repositories
	Repos   []string // repository directory names, in search order
}

// setupTestEnv creates an empty base directory and points config at a
// throwaway home so user settings never leak into a test.
func setupTestEnv(t *testing.T, repos ...string) *testEnv {
	t.Helper()

	env := &testEnv{
		BaseDir: filepath.Join(t.TempDir(), "Repositories"),
		Repos:   repos,
	}
	t.Setenv("INEEDAREF_HOME", t.TempDir())

	for _, repo := range repos {
		if err := os.MkdirAll(filepath.Join(env.BaseDir, repo, "source"), 0755); err != nil {
			t.Fatalf("creating %s: %v", repo, err)
		}
	}
	return env
}

// writeDoc creates a docs source file at <base>/<repo>/source/<rel>.
func writeDoc(t *testing.T, env *testEnv, repo, rel, content string) string {
	t.Helper()
	path := filepath.Join(env.BaseDir, repo, "source", filepath.FromSlash(rel))
	writeFile(t, path, content)
	return path
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// timeline is a Stater whose creation and modification times are set per
// path; sizes come from the real files. Filesystems do not let tests set
// creation times.
type timeline map[string]struct {
	created  time.Time
	modified time.Time
}

func (tl timeline) Stat(path string) (candidate.Meta, error) {
	info, err := os.Stat(path)
	if err != nil {
		return candidate.Meta{}, apperr.IO("reading metadata", path, err)
	}
	ts, ok := tl[path]
	if !ok {
		return candidate.Meta{}, apperr.IO("reading creation time", path, candidate.ErrNoBirthTime)
	}
	return candidate.Meta{Size: info.Size(), Created: ts.created, Modified: ts.modified}, nil
}

// set records the times of path.
func (tl timeline) set(path string, created, modified time.Time) {
	tl[path] = struct {
		created  time.Time
		modified time.Time
	}{created, modified}
}
