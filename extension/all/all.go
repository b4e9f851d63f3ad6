// Package all imports all built-in finder-tags extensions.
// Import this package to register all built-in commands.
package all

import (
	// Each registers itself via init()
	_ "github.com/scooby/osx-tags/extension/core"
	_ "github.com/scooby/osx-tags/extension/tags"
)
