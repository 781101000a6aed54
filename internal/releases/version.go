package releases

import (
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"
)

// Latest selects the greatest version in the catalog.
const Latest = "latest"

// NormalizeTag strips the leading run of non-digit characters from a release
// tag, so "v3.2.3" and "release-3.2.3" both become "3.2.3".
func NormalizeTag(tag string) string {
	return strings.TrimLeftFunc(strings.TrimSpace(tag), func(r rune) bool {
		return !unicode.IsDigit(r)
	})
}

// parseTag normalizes a tag and parses it as a strict semantic version.
// Partial versions such as "3.2" are rejected.
func parseTag(tag string) (*semver.Version, error) {
	return semver.StrictNewVersion(NormalizeTag(tag))
}

// parseSpecifier validates a specifier without touching the network.
// It returns nil constraints for "latest".
func parseSpecifier(specifier string) (*semver.Constraints, error) {
	if specifier == Latest {
		return nil, nil
	}
	if strings.TrimSpace(specifier) == "" {
		return nil, &InvalidSpecifierError{Specifier: specifier}
	}
	c, err := semver.NewConstraint(specifier)
	if err != nil {
		return nil, &InvalidSpecifierError{Specifier: specifier, Err: err}
	}
	return c, nil
}

// ValidateSpecifier reports whether specifier can be passed to Resolve.
func ValidateSpecifier(specifier string) error {
	_, err := parseSpecifier(specifier)
	return err
}
