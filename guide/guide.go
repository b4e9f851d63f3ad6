// Package guide provides access to the embedded help pages behind the guide
// command and the tags_guide MCP tool.
package guide

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var files embed.FS

// Get returns the content of a guide page by name. If name is empty the
// index page ("guide") is returned.
func Get(name string) (string, error) {
	if name == "" {
		name = "guide"
	}
	data, err := files.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("guide %q: %w", name, fs.ErrNotExist)
	}
	return string(data), nil
}

// List returns the available topic names (without the .md suffix), sorted,
// excluding the index page.
func List() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name != "guide" {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}
