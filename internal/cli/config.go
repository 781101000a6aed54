package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tofuutils/setup-tenv/internal/config"
	"github.com/tofuutils/setup-tenv/internal/releases"
)

var configKeys = []string{
	config.KeyTenvVersion,
	config.KeyGitHubToken,
	config.KeyAPIURL,
	config.KeyMirror,
	config.KeyTimeout,
	config.KeyDebug,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/.setup-tenv/config.yaml.

Keys: ` + strings.Join(configKeys, ", "),
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		key, value := args[0], args[1]
		if err := validateConfigValue(key, value); err != nil {
			return err
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		if key == config.KeyGitHubToken {
			value = "***"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

// validateConfigValue rejects unknown keys and values the resolve command
// would fail on later.
func validateConfigValue(key, value string) error {
	if !slices.Contains(configKeys, key) {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(configKeys, ", "))
	}
	switch key {
	case config.KeyTenvVersion:
		return releases.ValidateSpecifier(value)
	case config.KeyTimeout:
		if _, err := parseTimeout(value); err != nil {
			return err
		}
	}
	return nil
}
