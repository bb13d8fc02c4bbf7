package candidate

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/norareidy/i-need-a-reference/internal/apperr"
	"github.com/norareidy/i-need-a-reference/internal/category"
	"github.com/norareidy/i-need-a-reference/internal/logging"
)

// fakeStater serves metadata from a map so tests control creation times.
type fakeStater struct {
	meta  map[string]Meta
	calls int
}

func (f *fakeStater) Stat(path string) (Meta, error) {
	f.calls++
	m, ok := f.meta[path]
	if !ok {
		return Meta{}, apperr.IO("reading metadata", path, os.ErrNotExist)
	}
	return m, nil
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func setupRepos(t *testing.T) string {
	t.Helper()
	base := t.TempDir()

	writeFile(t, filepath.Join(base, "docs-a", "source", "fundamentals", "crud", "foo.txt"), "a\n")
	writeFile(t, filepath.Join(base, "docs-b", "source", "fundamentals", "foo.txt"), "b\n")
	writeFile(t, filepath.Join(base, "docs-b", "source", "fundamentals", "bar.txt"), "bar\n")
	writeFile(t, filepath.Join(base, "docs-b", "source", "fundamentals", "foo.md"), "md\n")
	writeFile(t, filepath.Join(base, "docs-c", "source", "usage-examples", "foo.txt"), "c\n")
	writeFile(t, filepath.Join(base, "docs-c", "source", "index.txt"), "index\n")

	return base
}

func TestLocateMatchesBasenameWithinCategory(t *testing.T) {
	base := setupRepos(t)
	loc := NewLocator([]string{"docs-a", "docs-b", "docs-c", "docs-missing"}, "", nil)

	got, err := loc.Locate(base, "foo.txt", category.Fundamentals)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "docs-a", got[0].Repo)
	assert.Equal(t, filepath.Join(base, "docs-a", "source", "fundamentals", "crud", "foo.txt"), got[0].Path)
	assert.Equal(t, "docs-b", got[1].Repo)
	for _, c := range got {
		assert.Equal(t, "foo.txt", c.Name)
		assert.True(t, filepath.IsAbs(c.Path))
	}
}

func TestLocateOtherSearchesWholeSourceTree(t *testing.T) {
	base := setupRepos(t)
	loc := NewLocator([]string{"docs-a", "docs-b", "docs-c"}, ".txt", nil)

	got, err := loc.Locate(base, "foo.txt", category.Other)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"docs-a", "docs-b", "docs-c"}, []string{got[0].Repo, got[1].Repo, got[2].Repo})
}

func TestLocateNoMatches(t *testing.T) {
	base := setupRepos(t)
	loc := NewLocator([]string{"docs-a"}, "", nil)

	got, err := loc.Locate(base, "nothing.txt", category.Other)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLocateBadPatternIsLoggedAndSkipped(t *testing.T) {
	base := setupRepos(t)
	var buf bytes.Buffer
	loc := NewLocator([]string{"docs-a", "docs-b"}, ".txt[", logging.New("warn", "json", &buf))

	got, err := loc.Locate(base, "foo.txt", category.Fundamentals)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Contains(t, buf.String(), "skipping repository")
	assert.Contains(t, buf.String(), `"repo":"docs-a"`)
	assert.Contains(t, buf.String(), `"repo":"docs-b"`)
}

func TestLocateUnreadableTreeIsLoggedAndSkipped(t *testing.T) {
	base := setupRepos(t)
	// docs-d/source is a file, so its fundamentals tree cannot be stat'ed.
	writeFile(t, filepath.Join(base, "docs-d", "source"), "not a dir\n")
	var buf bytes.Buffer
	loc := NewLocator([]string{"docs-b", "docs-d", "docs-missing"}, "", logging.New("debug", "json", &buf))

	got, err := loc.Locate(base, "foo.txt", category.Fundamentals)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "docs-b", got[0].Repo)

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"repo":"docs-d"`)
	assert.NotContains(t, out, `"repo":"docs-missing"`)
	assert.Contains(t, out, "no source/fundamentals tree in docs-missing")
}

func TestLocateFileAsTreeIsLoggedAndSkipped(t *testing.T) {
	base := setupRepos(t)
	// For "other" the root is source/ itself, which here is a plain file.
	writeFile(t, filepath.Join(base, "docs-d", "source"), "not a dir\n")
	var buf bytes.Buffer
	loc := NewLocator([]string{"docs-d"}, "", logging.New("warn", "json", &buf))

	got, err := loc.Locate(base, "foo.txt", category.Other)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Contains(t, buf.String(), "not a directory")
}

func TestWalkListsEveryFile(t *testing.T) {
	base := setupRepos(t)
	loc := NewLocator([]string{"docs-b"}, "", nil)

	var names []string
	err := loc.Walk(base, "docs-b", category.Fundamentals, func(path string) error {
		names = append(names, filepath.Base(path))
		return nil
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"foo.txt", "bar.txt"}, names)
}

func TestSelectRecentNeedsTwoCandidates(t *testing.T) {
	st := &fakeStater{}
	for _, cands := range [][]Candidate{nil, {{Path: "/a/foo.txt"}}} {
		_, err := SelectRecent(cands, st)
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.KindInsufficientData))
		assert.Contains(t, err.Error(), "aren't enough matching files")
	}
	assert.Zero(t, st.calls, "no metadata should be read when selection is impossible")
}

func TestSelectRecentOrdersByCreation(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	st := &fakeStater{meta: map[string]Meta{
		"/a": {Created: t0},
		"/b": {Created: t0.Add(2 * time.Hour)},
		"/c": {Created: t0.Add(time.Hour)},
	}}
	cands := []Candidate{{Path: "/a"}, {Path: "/b"}, {Path: "/c"}}

	pair, err := SelectRecent(cands, st)
	require.NoError(t, err)
	assert.Equal(t, "/b", pair.MostRecent.Path)
	assert.Equal(t, "/c", pair.SecondMostRecent.Path)
	assert.False(t, pair.MostRecent.Meta.Created.Before(pair.SecondMostRecent.Meta.Created))
	assert.Equal(t, "/a", cands[0].Path, "input slice must not be reordered")
}

func TestSelectRecentTiesKeepDiscoveryOrder(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	st := &fakeStater{meta: map[string]Meta{
		"/first":  {Created: t0},
		"/second": {Created: t0},
		"/third":  {Created: t0},
	}}

	pair, err := SelectRecent([]Candidate{{Path: "/first"}, {Path: "/second"}, {Path: "/third"}}, st)
	require.NoError(t, err)
	assert.Equal(t, "/first", pair.MostRecent.Path)
	assert.Equal(t, "/second", pair.SecondMostRecent.Path)
}

func TestSelectRecentStatFailureIsIO(t *testing.T) {
	st := &fakeStater{meta: map[string]Meta{"/a": {}}}

	_, err := SelectRecent([]Candidate{{Path: "/a"}, {Path: "/gone"}}, st)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindIO))
	assert.Contains(t, err.Error(), "/gone")
}

func TestResolve(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := func(size int64, mod time.Time) Candidate {
		return Candidate{Path: "/recent", Meta: Meta{Size: size, Modified: mod}}
	}
	older := func(size int64, mod time.Time) Candidate {
		return Candidate{Path: "/older", Meta: Meta{Size: size, Modified: mod}}
	}

	tests := []struct {
		name string
		pair Pair
		want string
	}{
		{"older larger and newer edit wins", Pair{recent(100, t0), older(200, t0.Add(time.Minute))}, "/older"},
		{"older larger but stale edit", Pair{recent(100, t0), older(200, t0.Add(-time.Minute))}, "/recent"},
		{"older newer edit but smaller", Pair{recent(100, t0), older(50, t0.Add(time.Minute))}, "/recent"},
		{"equal size", Pair{recent(100, t0), older(100, t0.Add(time.Minute))}, "/recent"},
		{"equal modified", Pair{recent(100, t0), older(200, t0)}, "/recent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(tt.pair)
			assert.Equal(t, tt.want, res.Reference.Path)
			assert.NotEqual(t, res.Reference.Path, res.Baseline.Path)
			assert.Equal(t, res, Resolve(tt.pair), "resolution must be deterministic")
		})
	}
}

func TestFSStater(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "foo.txt")
	writeFile(t, p, "hello\n")

	meta, err := FSStater{}.Stat(p)
	if errors.Is(err, ErrNoBirthTime) {
		t.Skip("filesystem does not record creation time")
	}
	require.NoError(t, err)
	assert.Equal(t, int64(6), meta.Size)
	assert.False(t, meta.Created.IsZero())
	assert.False(t, meta.Modified.IsZero())

	_, err = FSStater{}.Stat(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindIO))
}
