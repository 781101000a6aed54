package releases

import (
	"errors"
	"fmt"
)

// SemverSpecURL is referenced by invalid specifier errors.
const SemverSpecURL = "https://semver.org/spec/v2.0.0.html"

var (
	// ErrInvalidSpecifier is matched by every *InvalidSpecifierError.
	ErrInvalidSpecifier = errors.New("input version cannot be used")

	// ErrFetchFailed wraps transport failures and non-success responses
	// from the GitHub fetcher.
	ErrFetchFailed = errors.New("fetching releases failed")

	// ErrCatalogEmpty means the fetch succeeded but returned no entries.
	ErrCatalogEmpty = errors.New("no tenv releases found, please contact tofuutils")

	// ErrNoMatch means no parsed release satisfies the specifier.
	ErrNoMatch = errors.New("no matching version found")

	// ErrNoBuild means a release was found but has no asset for the
	// requested platform and architecture. Resolve never returns it; callers
	// wrap it when Release.Build reports absence.
	ErrNoBuild = errors.New("no build available for platform")
)

// InvalidSpecifierError reports a specifier that is neither "latest" nor a
// valid semantic version range.
type InvalidSpecifierError struct {
	Specifier string
	Err       error
}

func (e *InvalidSpecifierError) Error() string {
	return fmt.Sprintf("input version %q cannot be used, see semver: %s", e.Specifier, SemverSpecURL)
}

// Unwrap exposes both ErrInvalidSpecifier and the underlying parse error.
func (e *InvalidSpecifierError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidSpecifier}
	}
	return []error{ErrInvalidSpecifier, e.Err}
}
