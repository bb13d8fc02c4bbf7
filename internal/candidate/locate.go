package candidate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/norareidy/i-need-a-reference/internal/apperr"
	"github.com/norareidy/i-need-a-reference/internal/category"
	"github.com/norareidy/i-need-a-reference/internal/logging"
)

// DefaultExtension is the extension every docs source file carries.
const DefaultExtension = ".txt"

// DefaultRepos are the sibling docs repositories searched when no list is
// configured.
var DefaultRepos = []string{
	"docs-kotlin",
	"docs-golang",
	"docs-node",
	"docs-java",
	"docs-csharp",
	"docs-rust",
}

// Locator collects files named like the target across sibling repositories.
type Locator struct {
	Repos     []string // repository directory names under the base directory
	Extension string   // file extension including the dot; DefaultExtension if empty
	Logger    *logging.Logger
}

// NewLocator returns a Locator over repos. A nil or empty repos uses
// DefaultRepos.
func NewLocator(repos []string, ext string, logger *logging.Logger) *Locator {
	if len(repos) == 0 {
		repos = DefaultRepos
	}
	if ext == "" {
		ext = DefaultExtension
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Locator{Repos: repos, Extension: ext, Logger: logger}
}

// Pattern returns the doublestar pattern, relative to a category root,
// that matches every docs source file.
func (l *Locator) Pattern() string {
	ext := l.Extension
	if ext == "" {
		ext = DefaultExtension
	}
	return "**/*" + ext
}

// Root returns the directory searched in repo for cat.
func (l *Locator) Root(baseDir, repo string, cat category.Category) string {
	return filepath.Join(baseDir, repo, filepath.FromSlash(cat.SubDir()))
}

// Locate returns every file under baseDir's repositories whose base name is
// exactly filename, in repository order. A repository whose tree cannot be
// read or globbed is logged and skipped; missing repositories contribute
// nothing.
func (l *Locator) Locate(baseDir, filename string, cat category.Category) ([]Candidate, error) {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, apperr.IO("resolving base directory", baseDir, err)
	}

	var result []Candidate
	for _, repo := range l.Repos {
		matches, err := l.globRepo(absBase, repo, cat)
		if err != nil {
			l.logger().With("repo", repo).Warn("skipping repository", err)
			continue
		}
		for _, m := range matches {
			if filepath.Base(m) != filename {
				continue
			}
			result = append(result, Candidate{Path: m, Name: filename, Repo: repo})
		}
	}

	l.logger().Debugf("found %d candidate(s) named %s", len(result), filename)
	return result, nil
}

// Walk calls fn for every docs source file in repo's category tree. It is
// used by the survey to enumerate anchor files.
func (l *Locator) Walk(baseDir, repo string, cat category.Category, fn func(path string) error) error {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return apperr.IO("resolving base directory", baseDir, err)
	}
	matches, err := l.globRepo(absBase, repo, cat)
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := fn(m); err != nil {
			return err
		}
	}
	return nil
}

// globRepo expands the source pattern under one repository and returns
// absolute paths of regular files.
func (l *Locator) globRepo(absBase, repo string, cat category.Category) ([]string, error) {
	root := l.Root(absBase, repo, cat)
	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger().Debugf("no %s tree in %s", cat.SubDir(), repo)
		return nil, nil
	}
	if err != nil {
		return nil, apperr.IO("reading source tree", root, err)
	}
	if !info.IsDir() {
		return nil, apperr.IO("reading source tree", root, fmt.Errorf("not a directory"))
	}

	pattern := l.Pattern()
	rel, err := doublestar.Glob(os.DirFS(root), pattern,
		doublestar.WithFilesOnly(),
		doublestar.WithFailOnIOErrors(),
	)
	if err != nil {
		return nil, apperr.Glob(path.Join(filepath.ToSlash(root), pattern), err)
	}

	abs := make([]string, len(rel))
	for i, r := range rel {
		abs[i] = filepath.Join(root, filepath.FromSlash(r))
	}
	return abs, nil
}

func (l *Locator) logger() *logging.Logger {
	if l.Logger == nil {
		return logging.Nop()
	}
	return l.Logger
}
