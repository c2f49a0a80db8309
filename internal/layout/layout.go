// Package layout holds the static description of the generated project: the
// base and extended directory maps, the literal payload registry and the
// placeholder body given to shell scripts.
package layout

import (
	"fmt"
	"path"
	"strings"
)

// ShellScriptExt is the file extension that marks a generated file as an
// executable shell script.
const ShellScriptExt = ".sh"

// DirectoryEntry is a relative directory paired with the files to create in it.
type DirectoryEntry struct {
	// Dir is a slash-separated path relative to the project root.
	Dir string

	// Files are created in declaration order. A name may carry a nested
	// segment (e.g. "runs/.gitkeep").
	Files []string
}

// Paths returns the root-relative path of every file in the entry, in order.
func (e DirectoryEntry) Paths() []string {
	paths := make([]string, 0, len(e.Files))
	for _, f := range e.Files {
		paths = append(paths, path.Join(e.Dir, f))
	}
	return paths
}

// FilePayload is a file path with literal content written verbatim.
type FilePayload struct {
	Path    string
	Content string
}

// IsShellScript reports whether name denotes a shell script.
func IsShellScript(name string) bool {
	return strings.HasSuffix(name, ShellScriptExt)
}

// ScriptPlaceholder returns the one-line body given to a shell script found in
// an extended-module directory. name is the file name as listed in the entry.
func ScriptPlaceholder(name string) string {
	return fmt.Sprintf("#!/usr/bin/env bash\necho 'Running %s'", name)
}

// ValidatePath checks that p is a clean relative path that stays under the
// project root.
func ValidatePath(p string) error {
	if p == "" {
		return fmt.Errorf("empty path")
	}
	if strings.Contains(p, `\`) {
		return fmt.Errorf("path %q must use forward slashes", p)
	}
	if path.IsAbs(p) {
		return fmt.Errorf("path %q must be relative to the project root", p)
	}
	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "":
			return fmt.Errorf("path %q has an empty segment", p)
		case ".", "..":
			return fmt.Errorf("path %q must not contain %q segments", p, seg)
		}
	}
	return nil
}

// Validate checks every directory and file path of the given entries.
func Validate(entries []DirectoryEntry) error {
	for _, e := range entries {
		if err := ValidatePath(e.Dir); err != nil {
			return fmt.Errorf("directory entry: %w", err)
		}
		for _, p := range e.Paths() {
			if err := ValidatePath(p); err != nil {
				return fmt.Errorf("directory entry %s: %w", e.Dir, err)
			}
		}
	}
	return nil
}

// ValidatePayloads checks every payload path.
func ValidatePayloads(payloads []FilePayload) error {
	for _, p := range payloads {
		if err := ValidatePath(p.Path); err != nil {
			return fmt.Errorf("payload: %w", err)
		}
	}
	return nil
}
