package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"github.com/tofuutils/setup-tenv/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by the resolve command.
const (
	KeyTenvVersion = "tenv_version"
	KeyGitHubToken = "github_token"
	KeyAPIURL      = "api_url"
	KeyMirror      = "mirror"
	KeyTimeout     = "timeout"
	KeyDebug       = "debug"
)

// DefaultTimeout bounds a whole resolution, including the catalog fetch.
const DefaultTimeout = 30 * time.Second

// Dir returns the path to the config directory (~/.setup-tenv/).
// SETUP_TENV_HOME overrides it.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.setup-tenv/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyTenvVersion, "latest")
	viper.SetDefault(KeyAPIURL, branding.GitHubAPIURL())
	viper.SetDefault(KeyTimeout, DefaultTimeout.String())

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetBool returns a boolean config value; unset keys are false.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a duration config value such as "45s".
func GetDuration(key string) (time.Duration, error) {
	raw := viper.GetString(key)
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parsing %s %q: %w", key, raw, err)
	}
	return d, nil
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
