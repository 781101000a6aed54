package releases

import "context"

// Fetcher retrieves the raw release catalog. A nil or empty result with a
// nil error is an empty catalog, not a failure.
type Fetcher func(ctx context.Context, credential string) ([]RawRelease, error)

// Resolve selects one release for specifier, which is either "latest" or a
// semantic version range such as "3.2.3", "~3.2", or ">=3.0.0 <4.0.0".
//
// The specifier is validated before fetch is called. Errors from fetch are
// returned unchanged. Catalog entries that are malformed or whose tags are
// not valid semantic versions are skipped. A nil fetch uses the default GitHub fetcher.
func Resolve(ctx context.Context, specifier, credential string, fetch Fetcher) (*Release, error) {
	constraints, err := parseSpecifier(specifier)
	if err != nil {
		return nil, err
	}

	if fetch == nil {
		fetch = NewGitHubFetcher().Fetch
	}

	catalog, err := fetch(ctx, credential)
	if err != nil {
		return nil, err
	}
	if len(catalog) == 0 {
		return nil, ErrCatalogEmpty
	}

	var best *Release
	for _, raw := range catalog {
		rel, err := NewRelease(raw)
		if err != nil {
			continue
		}
		if constraints != nil && !constraints.Check(rel.version) {
			continue
		}
		if best == nil || rel.version.GreaterThan(best.version) {
			best = rel
		}
	}

	if best == nil {
		return nil, ErrNoMatch
	}
	return best, nil
}
