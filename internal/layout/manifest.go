package layout

import (
	"path"
	"sort"
)

// Origin names the table that produced the final content of a path.
type Origin string

const (
	// OriginBase is the base directory map.
	OriginBase Origin = "base"

	// OriginExtended is the extended-modules directory map.
	OriginExtended Origin = "extended"

	// OriginPayload is the literal payload registry.
	OriginPayload Origin = "payload"
)

// ManifestEntry describes the final state of one generated file.
type ManifestEntry struct {
	Path       string `json:"path" yaml:"path"`
	Origin     Origin `json:"origin" yaml:"origin"`
	Executable bool   `json:"executable" yaml:"executable"`
	Size       int    `json:"size" yaml:"size"`
}

// Manifest is the flattened result of applying base, extended and payload
// tables in order, with later tables winning on the same path.
type Manifest struct {
	Project string          `json:"project" yaml:"project"`
	Entries []ManifestEntry `json:"files" yaml:"files"`
}

// BuildManifest computes the manifest of the static tables, sorted by path.
func BuildManifest() Manifest {
	final := make(map[string]ManifestEntry)

	for _, e := range base {
		for _, p := range e.Paths() {
			final[p] = ManifestEntry{Path: p, Origin: OriginBase}
		}
	}
	for _, e := range extended {
		for i, p := range e.Paths() {
			entry := ManifestEntry{Path: p, Origin: OriginExtended}
			if IsShellScript(e.Files[i]) {
				entry.Size = len(ScriptPlaceholder(e.Files[i]))
			}
			final[p] = entry
		}
	}
	for _, pl := range payloads {
		final[pl.Path] = ManifestEntry{Path: pl.Path, Origin: OriginPayload, Size: len(pl.Content)}
	}

	m := Manifest{Project: ProjectName, Entries: make([]ManifestEntry, 0, len(final))}
	for p, entry := range final {
		entry.Executable = IsShellScript(p)
		m.Entries = append(m.Entries, entry)
	}
	sort.Slice(m.Entries, func(i, j int) bool {
		return m.Entries[i].Path < m.Entries[j].Path
	})
	return m
}

// Filter returns a manifest holding only the entries whose path matches.
func (m Manifest) Filter(match func(path string) bool) Manifest {
	out := Manifest{Project: m.Project, Entries: make([]ManifestEntry, 0, len(m.Entries))}
	for _, e := range m.Entries {
		if match(e.Path) {
			out.Entries = append(out.Entries, e)
		}
	}
	return out
}

// Paths returns the file paths of the manifest in order.
func (m Manifest) Paths() []string {
	paths := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		paths = append(paths, e.Path)
	}
	return paths
}

// Dirs returns every directory implied by the manifest, sorted.
func (m Manifest) Dirs() []string {
	seen := make(map[string]bool)
	for _, e := range m.Entries {
		for d := path.Dir(e.Path); d != "."; d = path.Dir(d) {
			seen[d] = true
		}
	}
	dirs := make([]string, 0, len(seen))
	for d := range seen {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}
