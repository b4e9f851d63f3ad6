// Package extension provides the plugin architecture for finder-tags.
// Extensions bundle related CLI commands and register at init time, so new
// command groups can be added without touching the root command.
package extension

import "github.com/spf13/cobra"

// Extension defines the contract for finder-tags extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command
}

// Initializable extensions receive the shared Context before their
// commands run.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Storeless is an optional interface for extensions with commands that
// never touch file attributes (config, guide, version). Commands returned
// by NoStoreCommands() skip extension initialisation in PersistentPreRunE,
// so they work even when the configuration file is broken.
type Storeless interface {
	NoStoreCommands() []string
}
