// Package cli defines the Cobra command tree for the setup-tenv CLI. Each file
// in this package registers one top-level command (resolve, config, version)
// with the root command. Command implementations delegate to internal packages
// for the resolution logic and only handle flag parsing, credential sourcing,
// and output formatting.
package cli
