// Package samples bundles the example programs shipped with the tool.
package samples

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
)

// Default is the program analyzed when no file is given.
const Default = "first.js"

//go:embed programs/*.js
var programs embed.FS

// Names lists the bundled programs.
func Names() []string {
	entries, err := fs.ReadDir(programs, "programs")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	slices.Sort(names)
	return names
}

// Source returns the text of a bundled program.
func Source(name string) (string, error) {
	data, err := programs.ReadFile("programs/" + name)
	if err != nil {
		return "", fmt.Errorf("no bundled program %q: %w", name, err)
	}
	return string(data), nil
}
