// Package releases resolves a version specifier against the tenv release
// catalog published on GitHub and locates the platform-specific build of the
// selected release. The catalog comes from a pluggable Fetcher; the default
// one calls the GitHub "list releases" endpoint once, with no retries and no
// caching.
package releases
