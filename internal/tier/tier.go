// Package tier turns a difference percentage into one of four rewrite
// tiers using a per-category mean and standard deviation.
package tier

import (
	"math"
	"strconv"
	"strings"

	"github.com/norareidy/i-need-a-reference/internal/category"
)

// Tier is the expected rewrite magnitude, 1 (least) through 4 (most).
type Tier int

const (
	Below       Tier = 1
	LowAverage  Tier = 2
	HighAverage Tier = 3
	Above       Tier = 4
)

// Band edges are rounded to the precision of the profile, at least
// minBandDecimals (the built-in constants) and at most maxBandDecimals.
const (
	minBandDecimals = 3
	maxBandDecimals = 12
)

var descriptions = map[Tier]string{
	Below:       "less text than average",
	LowAverage:  "an average, or slightly below average, amount of text",
	HighAverage: "an average, or slightly above average, amount of text",
	Above:       "more text than average",
}

// Description is the phrase completing "you'll replace ...".
func (t Tier) Description() string {
	if d, ok := descriptions[t]; ok {
		return d
	}
	return descriptions[Above]
}

// Classifier maps percentages to tiers.
type Classifier struct {
	Profiles Profiles
}

// NewClassifier returns a Classifier over ps, or the built-in profiles
// when ps is nil.
func NewClassifier(ps Profiles) *Classifier {
	if ps == nil {
		ps = DefaultProfiles()
	}
	return &Classifier{Profiles: ps}
}

// Classify returns the tier of percent for cat along with the profile
// used. Each band's upper edge is inclusive.
func (c *Classifier) Classify(cat category.Category, percent float64) (Tier, Profile) {
	p := c.Profiles.For(cat)
	d := max(minBandDecimals, decimals(p.Mean), decimals(p.StdDev))
	low := round(p.Mean-p.StdDev, d)
	high := round(p.Mean+p.StdDev, d)

	switch {
	case percent <= low:
		return Below, p
	case percent <= p.Mean:
		return LowAverage, p
	case percent <= high:
		return HighAverage, p
	default:
		return Above, p
	}
}

// round snaps a band edge to d decimals so that float error in mean±std
// cannot move a boundary.
func round(v float64, d int) float64 {
	scale := math.Pow10(d)
	return math.Round(v*scale) / scale
}

// decimals returns how many fractional digits v is written with.
func decimals(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return min(len(s)-i-1, maxBandDecimals)
}
