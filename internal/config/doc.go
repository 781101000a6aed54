// Package config manages user-level settings stored at ~/.setup-tenv/config.yaml.
// Values can also come from SETUP_TENV_* environment variables. Command-line
// flags take precedence over both; that layering happens in the cli package.
package config
