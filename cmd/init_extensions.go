/*
Copyright © 2026 scooby (osx-tags)
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Extensions register during init() but aren't initialised until a command
// that needs them runs. Initialisation loads configuration, builds the
// diagnostics logger and the store opener, and hands all three to every
// Initializable extension through one shared Context.

package cmd

import (
	"fmt"
	"os"
	"sync"

	"github.com/scooby/osx-tags/extension"
	"github.com/scooby/osx-tags/internal/config"
	"github.com/scooby/osx-tags/internal/log"
	"github.com/scooby/osx-tags/internal/logging"
	"github.com/scooby/osx-tags/internal/store"
)

// noStoreCommands lists commands that bypass extension initialisation.
// Built dynamically from bootstrap commands plus extension-declared storeless commands.
var noStoreCommands map[string]bool

// buildNoStoreCommands creates the set of commands that skip initialisation.
// Core commands add themselves through extension.Storeless.
func buildNoStoreCommands() map[string]bool {
	cmds := map[string]bool{
		"help":       true,
		"completion": true,
	}
	for _, ext := range extension.All() {
		if s, ok := ext.(extension.Storeless); ok {
			for _, name := range s.NoStoreCommands() {
				cmds[name] = true
			}
		}
	}
	return cmds
}

var (
	// cfg is the configuration loaded by initExtensions.
	cfg *config.Config

	// opener, when set, replaces the filesystem opener. Tests use it to
	// run commands against in-memory attributes.
	opener store.Opener
)

// SetOpener overrides the store opener handed to extensions (for testing).
// Pass nil to restore the filesystem opener.
func SetOpener(o store.Opener) { opener = o }

// initExtensions loads configuration and injects the shared context into
// extensions.
func initExtensions() error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	cfg = c

	logger := logging.NewCLI(cfg.LogLevel(), verbose)

	if !cfg.Audit() {
		log.Close()
	} else if wd, err := os.Getwd(); err == nil {
		log.SetProject(wd)
	}

	open := opener
	if open == nil {
		opts := []store.Option{store.WithLogger(logger)}
		if prefix, ok := cfg.Prefix(); ok {
			opts = append(opts, store.WithPrefix(prefix))
		}
		open = store.NewOpener(opts...)
	}

	ctx := extension.NewContext(open, cfg, logger)
	for _, ext := range extension.All() {
		if init, ok := ext.(extension.Initializable); ok {
			if err := init.Init(ctx); err != nil {
				return fmt.Errorf("init extension %s: %w", ext.Name(), err)
			}
		}
	}
	return nil
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
		noStoreCommands = buildNoStoreCommands()
	})
}
