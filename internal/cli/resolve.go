package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/tofuutils/setup-tenv/internal/branding"
	"github.com/tofuutils/setup-tenv/internal/config"
	"github.com/tofuutils/setup-tenv/internal/platform"
	"github.com/tofuutils/setup-tenv/internal/releases"
	"go.yaml.in/yaml/v3"
)

// resolveOptions are the inputs of one resolution after flags and config
// have been merged.
type resolveOptions struct {
	Version string
	Token   string
	OS      string
	Arch    string
	APIURL  string
	Mirror  string
	Output  string
	Timeout time.Duration
}

// resolveResult is what the command prints.
type resolveResult struct {
	Version  string `json:"version" yaml:"version"`
	Platform string `json:"platform" yaml:"platform"`
	Arch     string `json:"arch" yaml:"arch"`
	Asset    string `json:"asset" yaml:"asset"`
	URL      string `json:"url" yaml:"url"`
}

var (
	resolveVersion string
	resolveToken   string
	resolveOS      string
	resolveArch    string
	resolveAPIURL  string
	resolveMirror  string
	resolveOutput  string
	resolveTimeout string
)

func init() {
	addResolveFlags(resolveCmd)
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a tenv version and print its download URL",
	Long: `Resolves a version specifier against the tenv GitHub releases and prints
the build matching this platform.

  setup-tenv resolve                          # latest release
  setup-tenv resolve --tenv-version 3.2.3     # exact version
  setup-tenv resolve --tenv-version "~3.2"    # newest 3.2.x
  setup-tenv resolve --os linux --arch x64 --output json`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

// addResolveFlags registers the resolve flags on cmd. The root command and
// the resolve subcommand share the same variables.
func addResolveFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&resolveVersion, "tenv-version", "latest", `Version specifier: "latest" or a semver range`)
	cmd.Flags().StringVar(&resolveToken, "github-token", "", "GitHub token for the releases API (defaults to GITHUB_TOKEN on GitHub Actions)")
	cmd.Flags().StringVar(&resolveOS, "os", runtime.GOOS, "Platform to select the build for (e.g., linux, darwin, win32)")
	cmd.Flags().StringVar(&resolveArch, "arch", runtime.GOARCH, "Architecture to select the build for (e.g., amd64, x64, arm64)")
	cmd.Flags().StringVar(&resolveAPIURL, "api-url", "", "GitHub API base URL")
	cmd.Flags().StringVar(&resolveMirror, "mirror", "", "Rewrite download URLs to <mirror>/<tag>/<asset>")
	cmd.Flags().StringVarP(&resolveOutput, "output", "o", "text", "Output format: text, json, or yaml")
	cmd.Flags().StringVar(&resolveTimeout, "timeout", "", "Time limit for the resolution (e.g., 30s)")
}

func runResolve(cmd *cobra.Command, args []string) error {
	config.Load()

	opts, err := mergeResolveOptions(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), debugEnabled())
	return resolve(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), logger, opts)
}

// mergeResolveOptions layers explicitly set flags over config values.
func mergeResolveOptions(cmd *cobra.Command) (resolveOptions, error) {
	pick := func(flag, value, key string) string {
		if cmd.Flags().Changed(flag) {
			return value
		}
		if v := config.Get(key); v != "" {
			return v
		}
		return value
	}

	opts := resolveOptions{
		Version: pick("tenv-version", resolveVersion, config.KeyTenvVersion),
		Token:   githubToken(pick("github-token", resolveToken, config.KeyGitHubToken), os.Getenv),
		OS:      resolveOS,
		Arch:    resolveArch,
		APIURL:  pick("api-url", resolveAPIURL, config.KeyAPIURL),
		Mirror:  pick("mirror", resolveMirror, config.KeyMirror),
		Output:  resolveOutput,
	}

	timeout, err := mergeTimeout(cmd)
	if err != nil {
		return resolveOptions{}, err
	}
	opts.Timeout = timeout

	return opts, nil
}

// mergeTimeout prefers an explicit --timeout, then the timeout config key.
func mergeTimeout(cmd *cobra.Command) (time.Duration, error) {
	if cmd.Flags().Changed("timeout") || config.Get(config.KeyTimeout) == "" {
		return parseTimeout(resolveTimeout)
	}
	d, err := config.GetDuration(config.KeyTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid timeout %s: must not be negative", d)
	}
	return d, nil
}

// parseTimeout parses a duration; empty means no limit.
func parseTimeout(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid timeout %q: must not be negative", raw)
	}
	return d, nil
}

// resolve runs one resolution and writes the result to stdout. Progress
// lines go to stderr.
func resolve(ctx context.Context, stdout, stderr io.Writer, logger *slog.Logger, opts resolveOptions) error {
	switch opts.Output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format %q (want text, json, or yaml)", opts.Output)
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	var fetchOpts []releases.Option
	if opts.APIURL != "" {
		fetchOpts = append(fetchOpts, releases.WithAPIURL(opts.APIURL))
	}
	if opts.Mirror != "" {
		fetchOpts = append(fetchOpts, releases.WithMirror(opts.Mirror))
	}
	if buildVersion != "" {
		fetchOpts = append(fetchOpts, releases.WithUserAgent(branding.CLIName()+"/"+buildVersion))
	}
	gh := releases.NewGitHubFetcher(fetchOpts...)

	fetch := func(ctx context.Context, credential string) ([]releases.RawRelease, error) {
		logger.Debug("fetching release catalog", "url", gh.URL(), "authenticated", credential != "")
		catalog, err := gh.Fetch(ctx, credential)
		if err != nil {
			return nil, err
		}
		logger.Debug("fetched release catalog", "entries", len(catalog))
		return catalog, nil
	}

	fmt.Fprintf(stderr, "Finding releases for %s version %s...\n", branding.ProductName(), opts.Version)
	rel, err := releases.Resolve(ctx, opts.Version, opts.Token, fetch)
	if err != nil {
		return err
	}
	logger.Debug("resolved release", "specifier", opts.Version, "version", rel.Version, "assets", len(rel.Assets))

	platformName := platform.OS(opts.OS)
	archName := platform.Arch(opts.Arch)
	build, ok := rel.Build(platformName, archName)
	if !ok {
		return fmt.Errorf("%s version %s not available for %s and %s: %w",
			branding.ProductName(), rel.Version, platformName, archName, releases.ErrNoBuild)
	}
	logger.Debug("selected build", "asset", build.Name, "url", build.URL)

	return writeResult(stdout, opts.Output, resolveResult{
		Version:  rel.Version,
		Platform: platformName,
		Arch:     archName,
		Asset:    build.Name,
		URL:      build.URL,
	})
}

func writeResult(w io.Writer, format string, res resolveResult) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "yaml":
		data, err := yaml.Marshal(res)
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}
		fmt.Fprint(w, string(data))
	default:
		fmt.Fprintf(w, "%s %s (%s/%s)\n", branding.ProductName(), res.Version, res.Platform, res.Arch)
		fmt.Fprintf(w, "asset: %s\n", res.Asset)
		fmt.Fprintf(w, "url:   %s\n", res.URL)
	}
	return nil
}
