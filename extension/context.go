// context.go defines the Context interface through which extensions reach
// shared resources.
//
// Extensions receive Context during Init(), not at construction, because
// they register during init() before configuration has been loaded.

package extension

import (
	"github.com/rs/zerolog"
	"github.com/scooby/osx-tags/internal/config"
	"github.com/scooby/osx-tags/internal/store"
)

// Context provides extensions controlled access to finder-tags internals.
type Context interface {
	// Opener builds a tag store for a path, configured with the attribute
	// prefix and diagnostics logger.
	Opener() store.Opener

	// Config returns user configuration for respecting user preferences.
	Config() *config.Config

	// Logger returns the diagnostics logger.
	Logger() zerolog.Logger
}

// extContext implements Context.
type extContext struct {
	open   store.Opener
	cfg    *config.Config
	logger zerolog.Logger
}

// NewContext creates a new extension context.
func NewContext(open store.Opener, cfg *config.Config, logger zerolog.Logger) Context {
	return &extContext{
		open:   open,
		cfg:    cfg,
		logger: logger,
	}
}

func (c *extContext) Opener() store.Opener   { return c.open }
func (c *extContext) Config() *config.Config { return c.cfg }
func (c *extContext) Logger() zerolog.Logger { return c.logger }
