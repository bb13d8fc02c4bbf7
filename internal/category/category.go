// Package category defines the coarse documentation categories a new file
// can belong to and where each one lives inside a docs repository.
package category

import (
	"fmt"
	"path"
	"strings"
)

// Category selects the source sub-directory to search and the statistical
// profile used to classify a difference.
type Category string

const (
	Fundamentals  Category = "fundamentals"
	UsageExamples Category = "usage-examples"
	// Other is the catch-all; it searches the whole source tree.
	Other Category = "other"
)

// SourceDir is the directory under each repository root that holds docs.
const SourceDir = "source"

// All returns the recognized categories in display order.
func All() []Category {
	return []Category{Fundamentals, UsageExamples, Other}
}

// Parse returns the category named s. Matching is exact, as typed on the
// command line.
func Parse(s string) (Category, error) {
	for _, c := range All() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (want one of %s)", s, strings.Join(Names(), ", "))
}

// Names returns the category names as strings.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, c := range all {
		names[i] = string(c)
	}
	return names
}

// SubDir returns the slash-separated path, relative to a repository root,
// that is searched for candidates: "source/<category>", or "source" for
// Other.
func (c Category) SubDir() string {
	if c == Other {
		return SourceDir
	}
	return path.Join(SourceDir, string(c))
}

func (c Category) String() string { return string(c) }
