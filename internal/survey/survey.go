// Package survey measures the line-set difference for every file in one
// docs repository against its most recent siblings. Its summary is how the
// fixed category profiles were derived; running it never changes them.
package survey

import (
	"math"
	"path/filepath"

	"github.com/norareidy/i-need-a-reference/internal/apperr"
	"github.com/norareidy/i-need-a-reference/internal/candidate"
	"github.com/norareidy/i-need-a-reference/internal/category"
	"github.com/norareidy/i-need-a-reference/internal/linediff"
	"github.com/norareidy/i-need-a-reference/internal/logging"
)

// Entry is the measured difference for one file name.
type Entry struct {
	Name       string  `json:"name"`
	Candidates int     `json:"candidates"`
	MostRecent string  `json:"most_recent"`
	Second     string  `json:"second_most_recent"`
	Percent    float64 `json:"percent"`
}

// Result is a finished survey.
type Result struct {
	Anchor   string            `json:"anchor"`
	Category category.Category `json:"category"`
	Entries  []Entry           `json:"entries"`
	Skipped  []string          `json:"skipped,omitempty"` // names with fewer than two candidates
	Mean     float64           `json:"mean"`
	StdDev   float64           `json:"std_dev"`
}

// Surveyor runs surveys with a shared locator and stater.
type Surveyor struct {
	Locator *candidate.Locator
	Stater  candidate.Stater
	Logger  *logging.Logger
}

// Run surveys every file of anchor's cat tree under baseDir. Names seen
// more than once in the anchor are measured once. Metadata and read
// failures abort the survey.
func (s *Surveyor) Run(baseDir, anchor string, cat category.Category) (*Result, error) {
	logger := s.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	var names []string
	seen := make(map[string]bool)
	err := s.Locator.Walk(baseDir, anchor, cat, func(path string) error {
		name := filepath.Base(path)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	res := &Result{Anchor: anchor, Category: cat}
	for _, name := range names {
		cands, err := s.Locator.Locate(baseDir, name, cat)
		if err != nil {
			return nil, err
		}
		pair, err := candidate.SelectRecent(cands, s.Stater)
		if apperr.Is(err, apperr.KindInsufficientData) {
			res.Skipped = append(res.Skipped, name)
			continue
		}
		if err != nil {
			return nil, err
		}

		percent, err := linediff.CompareFiles(pair.MostRecent.Path, pair.SecondMostRecent.Path)
		if err != nil {
			return nil, err
		}
		logger.Debugf("%s: %.2f%%", name, percent)
		res.Entries = append(res.Entries, Entry{
			Name:       name,
			Candidates: len(cands),
			MostRecent: pair.MostRecent.Path,
			Second:     pair.SecondMostRecent.Path,
			Percent:    percent,
		})
	}

	res.Mean, res.StdDev = meanStdDev(res.Entries)
	return res, nil
}

// meanStdDev returns the mean and sample standard deviation of the
// entries' percentages. Fewer than two entries have no spread.
func meanStdDev(entries []Entry) (float64, float64) {
	n := len(entries)
	if n == 0 {
		return 0, 0
	}

	var sum float64
	for _, e := range entries {
		sum += e.Percent
	}
	mean := sum / float64(n)
	if n < 2 {
		return mean, 0
	}

	var sq float64
	for _, e := range entries {
		d := e.Percent - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / float64(n-1))
}
