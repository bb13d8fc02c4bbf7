package candidate

import (
	"slices"

	"github.com/norareidy/i-need-a-reference/internal/apperr"
)

// InsufficientMessage is reported when fewer than two candidates exist.
const InsufficientMessage = "Looks like there aren't enough matching files to compute replacement stats. Sorry!"

// SelectRecent stats every candidate and returns the two most recently
// created. Candidates with equal creation times keep discovery order.
// Fewer than two candidates is an insufficient-data error and nothing is
// stat'ed.
func SelectRecent(cands []Candidate, st Stater) (Pair, error) {
	if len(cands) < 2 {
		return Pair{}, apperr.Insufficient(InsufficientMessage)
	}

	ranked := make([]Candidate, len(cands))
	for i, c := range cands {
		meta, err := st.Stat(c.Path)
		if err != nil {
			return Pair{}, err
		}
		c.Meta = meta
		ranked[i] = c
	}

	slices.SortStableFunc(ranked, func(a, b Candidate) int {
		return b.Meta.Created.Compare(a.Meta.Created)
	})

	return Pair{MostRecent: ranked[0], SecondMostRecent: ranked[1]}, nil
}
