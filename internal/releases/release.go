package releases

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// RawRelease is a catalog entry as returned by the GitHub releases API.
// Fields other than the tag and assets are ignored.
type RawRelease struct {
	TagName string     `json:"tag_name"`
	Assets  []RawAsset `json:"assets"`
}

// RawAsset is a downloadable file attached to a RawRelease.
type RawAsset struct {
	Name        string `json:"name"`
	DownloadURL string `json:"browser_download_url"`
}

// Release is a catalog entry whose tag parsed as a semantic version.
type Release struct {
	Version string  `json:"version" yaml:"version"`
	Assets  []Asset `json:"assets" yaml:"assets"`

	version *semver.Version
}

// Asset is one platform/architecture build of a Release.
type Asset struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// Build identifies the artifact selected for a platform and architecture.
type Build struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// NewRelease validates a raw entry and converts it into a Release.
func NewRelease(raw RawRelease) (*Release, error) {
	v, err := parseTag(raw.TagName)
	if err != nil {
		return nil, fmt.Errorf("parsing release tag %q: %w", raw.TagName, err)
	}

	assets := make([]Asset, 0, len(raw.Assets))
	for _, a := range raw.Assets {
		assets = append(assets, Asset{Name: a.Name, URL: a.DownloadURL})
	}

	return &Release{
		Version: v.String(),
		Assets:  assets,
		version: v,
	}, nil
}

// SemVer returns the parsed version.
func (r *Release) SemVer() *semver.Version {
	return r.version
}

// Build returns the first asset whose name contains both the platform and
// the architecture token. Matching is case-sensitive and follows asset order,
// so the earliest listed asset wins when names overlap.
func (r *Release) Build(platform, arch string) (Build, bool) {
	for _, a := range r.Assets {
		if strings.Contains(a.Name, platform) && strings.Contains(a.Name, arch) {
			return Build{Name: a.Name, URL: a.URL}, true
		}
	}
	return Build{}, false
}
