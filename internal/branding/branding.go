// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml sits next to this file and is baked into the binary with
// //go:embed. Forks that publish tenv builds from another repository only
// need to edit github_repo there.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	HomeDir      string `yaml:"home_dir"`
	EnvPrefix    string `yaml:"env_prefix"`
	GitHubRepo   string `yaml:"github_repo"`
	GitHubAPIURL string `yaml:"github_api_url"`
	ProductName  string `yaml:"product_name"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:      "setup-tenv",
			DisplayName:  "setup-tenv",
			Description:  "Resolve and locate tenv release builds for CI runners",
			HomeDir:      ".setup-tenv",
			EnvPrefix:    "SETUP_TENV",
			GitHubRepo:   "tofuutils/tenv",
			GitHubAPIURL: "https://api.github.com",
			ProductName:  "tenv",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "setup-tenv").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".setup-tenv").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "SETUP_TENV").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GitHubRepo returns the "owner/repo" that publishes tenv releases.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// GitHubAPIURL returns the base URL of the GitHub REST API.
func GitHubAPIURL() string { load(); return defaults.GitHubAPIURL }

// ProductName returns the name of the tool being resolved (e.g., "tenv").
func ProductName() string { load(); return defaults.ProductName }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("MIRROR") → "SETUP_TENV_MIRROR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
