//go:build integration

package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

// fakeGitHub is an httptest double of the GitHub releases API.
type fakeGitHub struct {
	Server   *httptest.Server
	Requests atomic.Int32
	LastAuth atomic.Value // string
}

// release is the subset of the GitHub release object the fixtures need.
type release struct {
	TagName    string  `json:"tag_name"`
	Prerelease bool    `json:"prerelease"`
	Assets     []asset `json:"assets"`
}

type asset struct {
	Name string `json:"name"`
	URL  string `json:"browser_download_url"`
}

// goreleaserAssets returns the asset list tenv publishes for tag.
func goreleaserAssets(base, tag string) []asset {
	names := []string{
		"tenv_%s_Darwin_arm64.tar.gz",
		"tenv_%s_Darwin_amd64.tar.gz",
		"tenv_%s_Linux_386.tar.gz",
		"tenv_%s_Linux_amd64.tar.gz",
		"tenv_%s_Linux_arm64.tar.gz",
		"tenv_%s_Windows_386.zip",
		"tenv_%s_Windows_amd64.zip",
		"tenv_%s_Windows_arm64.zip",
		"tenv_%s_arm64.deb",
		"tenv_%s_checksums.txt",
	}
	out := make([]asset, 0, len(names))
	for _, n := range names {
		name := fmt.Sprintf(n, tag)
		out = append(out, asset{Name: name, URL: base + "/download/" + tag + "/" + name})
	}
	return out
}

// setupFakeGitHub serves the given tags as the tofuutils/tenv release list.
func setupFakeGitHub(t *testing.T, tags ...string) *fakeGitHub {
	t.Helper()
	t.Setenv("SETUP_TENV_HOME", t.TempDir())

	fake := &fakeGitHub{}
	fake.LastAuth.Store("")
	fake.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fake.Requests.Add(1)
		fake.LastAuth.Store(r.Header.Get("Authorization"))

		if r.URL.Path != "/repos/tofuutils/tenv/releases" {
			http.NotFound(w, r)
			return
		}

		list := make([]release, 0, len(tags))
		for _, tag := range tags {
			list = append(list, release{
				TagName:    tag,
				Prerelease: strings.Contains(tag, "-"),
				Assets:     goreleaserAssets("https://github.com/tofuutils/tenv/releases", tag),
			})
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(list); err != nil {
			t.Errorf("encoding releases: %v", err)
		}
	}))
	t.Cleanup(fake.Server.Close)
	return fake
}
