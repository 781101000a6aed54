package releases

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tofuutils/setup-tenv/internal/branding"
)

// maxCatalogBytes bounds the release list response body.
const maxCatalogBytes = 32 << 20

// GitHubFetcher lists releases through the GitHub REST API.
type GitHubFetcher struct {
	httpClient *http.Client
	apiURL     string
	repo       string
	userAgent  string
	mirror     string
}

// Option configures a GitHubFetcher.
type Option func(*GitHubFetcher)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(f *GitHubFetcher) {
		f.httpClient = c
	}
}

// WithAPIURL points the fetcher at another API base, such as GitHub
// Enterprise or a test server.
func WithAPIURL(apiURL string) Option {
	return func(f *GitHubFetcher) {
		f.apiURL = strings.TrimRight(apiURL, "/")
	}
}

// WithRepository overrides the "owner/repo" whose releases are listed.
func WithRepository(repo string) Option {
	return func(f *GitHubFetcher) {
		f.repo = repo
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *GitHubFetcher) {
		f.userAgent = ua
	}
}

// WithMirror rewrites asset download URLs to <mirror>/<tag>/<asset name>.
func WithMirror(mirror string) Option {
	return func(f *GitHubFetcher) {
		f.mirror = mirror
	}
}

// NewGitHubFetcher creates a fetcher for the branded repository.
func NewGitHubFetcher(opts ...Option) *GitHubFetcher {
	f := &GitHubFetcher{
		httpClient: http.DefaultClient,
		apiURL:     branding.GitHubAPIURL(),
		repo:       branding.GitHubRepo(),
		userAgent:  branding.CLIName(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// URL returns the release list endpoint.
func (f *GitHubFetcher) URL() string {
	return fmt.Sprintf("%s/repos/%s/releases?per_page=100", f.apiURL, f.repo)
}

// Fetch issues one request for the release list. An empty credential sends
// the request unauthenticated.
func (f *GitHubFetcher) Fetch(ctx context.Context, credential string) ([]RawRelease, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", f.userAgent)
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %w", ErrFetchFailed, err)
	}

	if err := validateCatalog(body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	catalog, err := decodeCatalog(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	if f.mirror != "" {
		base := strings.TrimRight(f.mirror, "/")
		for i := range catalog {
			for j := range catalog[i].Assets {
				a := &catalog[i].Assets[j]
				a.DownloadURL = base + "/" + catalog[i].TagName + "/" + a.Name
			}
		}
	}

	return catalog, nil
}

// decodeCatalog decodes a validated release list. An entry that does not
// match the release schema becomes a zero RawRelease, which Resolve skips
// like any other unparseable tag.
func decodeCatalog(body []byte) ([]RawRelease, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("parsing release JSON: %w", err)
	}

	catalog := make([]RawRelease, 0, len(entries))
	for _, entry := range entries {
		var raw RawRelease
		if validateRelease(entry) == nil {
			if err := json.Unmarshal(entry, &raw); err != nil {
				raw = RawRelease{}
			}
		}
		catalog = append(catalog, raw)
	}
	return catalog, nil
}

// checkResponse maps non-success statuses to errors wrapping ErrFetchFailed.
func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	if resp.StatusCode == http.StatusTooManyRequests ||
		(resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0") {
		msg := "GitHub API rate limit exceeded, provide a github token for higher limits"
		if reset, err := strconv.ParseInt(resp.Header.Get("X-RateLimit-Reset"), 10, 64); err == nil {
			msg += fmt.Sprintf(" (resets at %s)", time.Unix(reset, 0).UTC().Format(time.RFC3339))
		}
		return fmt.Errorf("%w: %s", ErrFetchFailed, msg)
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: repository not found", ErrFetchFailed)
	}
	return fmt.Errorf("%w: GitHub API returned status %d", ErrFetchFailed, resp.StatusCode)
}
