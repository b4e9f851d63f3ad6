// Package core provides the core extension for finder-tags.
// It registers commands: config, guide, serve, log, version.
package core

import (
	"github.com/rs/zerolog"
	"github.com/scooby/osx-tags/extension"
	"github.com/scooby/osx-tags/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct {
	open   store.Opener
	logger zerolog.Logger
}

// Compile-time interface compliance.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
	_ extension.Storeless     = (*Extension)(nil)
)

// Name returns "core".
func (e *Extension) Name() string { return "core" }

// Init keeps the opener and logger for the MCP server.
func (e *Extension) Init(ctx extension.Context) error {
	e.open = ctx.Opener()
	e.logger = ctx.Logger()
	return nil
}

// Commands returns all core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		e.newServeCmd(),
		newGuideCmd(),
		newLogCmd(),
		newVersionCmd(),
	}
}

// NoStoreCommands returns commands that never touch file attributes.
// serve is absent: it needs the configured store opener.
func (e *Extension) NoStoreCommands() []string {
	return []string{"config", "guide", "log", "version"}
}
