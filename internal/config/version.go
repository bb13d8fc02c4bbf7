package config

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DevVersion is the version string of builds without ldflags.
const DevVersion = "dev"

// CheckVersion returns an error if version does not satisfy the semver
// constraint. An empty constraint or a dev build always passes.
func CheckVersion(constraint, version string) error {
	if constraint == "" || version == DevVersion {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing %s %q: %w", KeyRequiredVersion, constraint, err)
	}
	v, err := parseSemver(version)
	if err != nil {
		return fmt.Errorf("parsing version %q: %w", version, err)
	}

	if ok, errs := c.Validate(v); !ok {
		reasons := make([]string, len(errs))
		for i, e := range errs {
			reasons[i] = e.Error()
		}
		return fmt.Errorf("version %s does not satisfy %s %q: %s",
			v, KeyRequiredVersion, constraint, strings.Join(reasons, "; "))
	}
	return nil
}

// NormalizeVersion returns version in canonical semver form, or version
// unchanged when it does not parse.
func NormalizeVersion(version string) string {
	v, err := parseSemver(version)
	if err != nil {
		return version
	}
	return v.String()
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
