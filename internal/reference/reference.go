// Package reference runs a full lookup: it validates the request, finds
// the candidates, picks the reference, and scores how much of it a writer
// should expect to replace.
package reference

import (
	"fmt"
	"os"
	"strings"

	"github.com/norareidy/i-need-a-reference/internal/apperr"
	"github.com/norareidy/i-need-a-reference/internal/candidate"
	"github.com/norareidy/i-need-a-reference/internal/category"
	"github.com/norareidy/i-need-a-reference/internal/linediff"
	"github.com/norareidy/i-need-a-reference/internal/logging"
	"github.com/norareidy/i-need-a-reference/internal/tier"
)

// Corrective messages for usage errors.
const (
	msgBadFilename = "Please provide the full name of your new file as an argument, in <file name>%s format."
	msgBadCategory = "Please provide either 'fundamentals', 'usage-examples', or 'other' as your file category."
	msgBadBase     = "Double check the name of your repo's base directory and make sure it lives in the same directory as this app."
	msgNoMatches   = "Looks like there isn't a good reference file for you. You might be writing about an entirely new concept, or you mistyped your file name."
)

// Request is one lookup as typed by the user.
type Request struct {
	Filename string // name of the new file, e.g. "connection-guide.txt"
	Category string // one of category.Names()
	BaseDir  string // directory holding the sibling repositories
}

// Report is everything the presentation layer shows.
type Report struct {
	Filename    string              `json:"filename"`
	Category    category.Category   `json:"category"`
	Reference   candidate.Candidate `json:"reference"`
	Baseline    candidate.Candidate `json:"baseline"`
	Candidates  int                 `json:"candidates"`
	Percent     float64             `json:"percent"`
	Tier        tier.Tier           `json:"tier"`
	Description string              `json:"description"`
	Mean        float64             `json:"mean"`
	StdDev      float64             `json:"std_dev"`
}

// Finder wires the lookup stages together.
type Finder struct {
	Locator    *candidate.Locator
	Stater     candidate.Stater
	Classifier *tier.Classifier
	Logger     *logging.Logger
}

// New returns a Finder with the filesystem stater and built-in profiles.
func New(loc *candidate.Locator, logger *logging.Logger) *Finder {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Finder{
		Locator:    loc,
		Stater:     candidate.FSStater{},
		Classifier: tier.NewClassifier(nil),
		Logger:     logger,
	}
}

// Validate checks req before any scan. ext is the required filename
// extension.
func Validate(req Request, ext string) (category.Category, error) {
	if ext == "" {
		ext = candidate.DefaultExtension
	}
	if !strings.HasSuffix(req.Filename, ext) || len(req.Filename) == len(ext) {
		return "", apperr.Usage(fmt.Sprintf(msgBadFilename, ext))
	}

	cat, err := category.Parse(req.Category)
	if err != nil {
		return "", apperr.Usage(msgBadCategory)
	}

	info, err := os.Stat(req.BaseDir)
	if err != nil || !info.IsDir() {
		return "", apperr.Usage(msgBadBase)
	}
	return cat, nil
}

// Find runs the lookup for req.
func (f *Finder) Find(req Request) (*Report, error) {
	cat, err := Validate(req, f.Locator.Extension)
	if err != nil {
		return nil, err
	}

	cands, err := f.Locator.Locate(req.BaseDir, req.Filename, cat)
	if err != nil {
		return nil, err
	}
	if len(cands) == 0 {
		return nil, apperr.Insufficient(msgNoMatches)
	}

	pair, err := candidate.SelectRecent(cands, f.Stater)
	if err != nil {
		return nil, err
	}
	res := candidate.Resolve(pair)
	f.Logger.Debugf("reference %s (over %s)", res.Reference.Path, res.Baseline.Path)

	percent, err := linediff.CompareFiles(pair.MostRecent.Path, pair.SecondMostRecent.Path)
	if err != nil {
		return nil, err
	}

	t, profile := f.Classifier.Classify(cat, percent)
	return &Report{
		Filename:    req.Filename,
		Category:    cat,
		Reference:   res.Reference,
		Baseline:    res.Baseline,
		Candidates:  len(cands),
		Percent:     percent,
		Tier:        t,
		Description: t.Description(),
		Mean:        profile.Mean,
		StdDev:      profile.StdDev,
	}, nil
}
