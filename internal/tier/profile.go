package tier

import (
	_ "embed"
	"fmt"
	"sync"

	"go.yaml.in/yaml/v3"

	"github.com/norareidy/i-need-a-reference/internal/category"
)

//go:embed profiles.yaml
var rawProfiles []byte

// Profile is the distribution of difference percentages observed for a
// category.
type Profile struct {
	Mean   float64 `yaml:"mean" json:"mean"`
	StdDev float64 `yaml:"std_dev" json:"std_dev"`
}

// Profiles maps a category to its profile. The Other entry is the
// fallback for categories without one.
type Profiles map[category.Category]Profile

var (
	defaultsOnce sync.Once
	defaults     Profiles
	defaultsErr  error
)

// DefaultProfiles returns the built-in profiles. The returned map is a
// copy and may be modified by the caller.
func DefaultProfiles() Profiles {
	defaultsOnce.Do(func() {
		defaults, defaultsErr = ParseProfiles(rawProfiles)
	})
	if defaultsErr != nil {
		panic(fmt.Sprintf("embedded profiles.yaml: %v", defaultsErr))
	}
	out := make(Profiles, len(defaults))
	for k, v := range defaults {
		out[k] = v
	}
	return out
}

// ParseProfiles decodes a YAML document of category → {mean, std_dev}.
// It must contain an "other" entry.
func ParseProfiles(data []byte) (Profiles, error) {
	var raw map[string]Profile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing profiles: %w", err)
	}

	out := make(Profiles, len(raw))
	for name, p := range raw {
		cat, err := category.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("parsing profiles: %w", err)
		}
		if p.StdDev < 0 {
			return nil, fmt.Errorf("parsing profiles: %s has negative std_dev %v", name, p.StdDev)
		}
		out[cat] = p
	}
	if _, ok := out[category.Other]; !ok {
		return nil, fmt.Errorf("parsing profiles: missing %q profile", category.Other)
	}
	return out, nil
}

// For returns the profile of cat, falling back to Other.
func (ps Profiles) For(cat category.Category) Profile {
	if p, ok := ps[cat]; ok {
		return p
	}
	return ps[category.Other]
}
