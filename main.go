/*
Copyright © 2026 scooby (osx-tags)
*/
package main

import (
	"github.com/scooby/osx-tags/cmd"

	// Import extensions - each registers itself via init()
	_ "github.com/scooby/osx-tags/extension/all"
)

func main() {
	cmd.Execute()
}
