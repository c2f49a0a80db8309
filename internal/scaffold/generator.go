package scaffold

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	oerrors "github.com/smartclimate/scaffold/internal/errors"
	"github.com/smartclimate/scaffold/internal/layout"
	"github.com/smartclimate/scaffold/internal/output"
)

// Phase identifies one of the three ordered generation passes.
type Phase string

const (
	// PhaseBase writes every base file empty.
	PhaseBase Phase = "base"

	// PhaseExtended writes the extended modules; shell scripts get a placeholder.
	PhaseExtended Phase = "extended"

	// PhasePayload writes literal content over whatever the earlier phases left.
	PhasePayload Phase = "payload"
)

// Options configures a generation run.
type Options struct {
	// Root is the project root. Relative roots resolve against the working
	// directory. Defaults to ".".
	Root string

	// Fs is the filesystem to write to. Defaults to the OS filesystem, or to
	// an in-memory filesystem when DryRun is set.
	Fs afero.Fs

	// DryRun runs every phase against a throwaway in-memory filesystem.
	DryRun bool
}

// PhaseResult lists the paths written by one phase, in write order.
type PhaseResult struct {
	Phase   Phase
	Written []string
}

// Result describes a completed run.
type Result struct {
	// RunID identifies the run in log output.
	RunID string

	// Root is the absolute project root.
	Root string

	// DryRun reports whether the disk was left untouched.
	DryRun bool

	// Phases holds the per-phase write log in execution order.
	Phases []PhaseResult
}

// Files returns every distinct path written during the run, sorted.
func (r *Result) Files() []string {
	seen := make(map[string]bool)
	var files []string
	for _, p := range r.Phases {
		for _, f := range p.Written {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}
	sort.Strings(files)
	return files
}

// Message is the confirmation printed after a successful run.
func (r *Result) Message() string {
	if r.DryRun {
		return fmt.Sprintf("%s project structure (extended version) planned: %d files (dry run, nothing written)",
			layout.ProjectName, len(r.Files()))
	}
	return fmt.Sprintf("%s project structure (extended version) created successfully!", layout.ProjectName)
}

// tables is the layout a generator writes, in phase order.
type tables struct {
	base     []layout.DirectoryEntry
	extended []layout.DirectoryEntry
	payloads []layout.FilePayload
}

func projectTables() tables {
	return tables{
		base:     layout.Base(),
		extended: layout.Extended(),
		payloads: layout.Payloads(),
	}
}

// Generator runs the base, extended and payload phases against a project root.
type Generator struct {
	opts   Options
	tables tables
}

// NewGenerator creates a generator for the project layout.
func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts, tables: projectTables()}
}

// Generate writes the whole layout. Phases run strictly in order and the first
// I/O error aborts the run; files written before the failure stay in place.
func (g *Generator) Generate() (*Result, error) {
	if err := g.tables.validate(); err != nil {
		return nil, err
	}

	root := g.opts.Root
	if root == "" {
		root = "."
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, oerrors.NewIOError("resolve", root, err)
	}

	base := g.opts.Fs
	switch {
	case base != nil:
	case g.opts.DryRun:
		base = afero.NewMemMapFs()
	default:
		base = afero.NewOsFs()
	}

	result := &Result{
		RunID:  uuid.NewString(),
		Root:   absRoot,
		DryRun: g.opts.DryRun,
	}
	w := NewWriter(afero.NewBasePathFs(base, absRoot))

	output.Debug("generating project",
		"run", result.RunID,
		"root", absRoot,
		"dry_run", g.opts.DryRun)

	phases := []struct {
		phase Phase
		run   func(*Writer) ([]string, error)
	}{
		{PhaseBase, func(w *Writer) ([]string, error) { return writeBase(w, g.tables.base) }},
		{PhaseExtended, func(w *Writer) ([]string, error) { return writeExtended(w, g.tables.extended) }},
		{PhasePayload, func(w *Writer) ([]string, error) { return writePayloads(w, g.tables.payloads) }},
	}

	for _, p := range phases {
		written, err := p.run(w)
		result.Phases = append(result.Phases, PhaseResult{Phase: p.phase, Written: written})
		if err != nil {
			return result, fmt.Errorf("%s phase: %w", p.phase, err)
		}
		output.Debug("phase complete", "run", result.RunID, "phase", p.phase, "files", len(written))
	}

	return result, nil
}

func writeBase(w *Writer, entries []layout.DirectoryEntry) ([]string, error) {
	var written []string
	for _, e := range entries {
		for _, p := range e.Paths() {
			if err := w.Write(p, ""); err != nil {
				return written, err
			}
			output.Debug("created file", "path", p)
			written = append(written, p)
		}
	}
	return written, nil
}

func writeExtended(w *Writer, entries []layout.DirectoryEntry) ([]string, error) {
	var written []string
	for _, e := range entries {
		for i, p := range e.Paths() {
			content := ""
			if name := e.Files[i]; layout.IsShellScript(name) {
				content = layout.ScriptPlaceholder(name)
			}
			if err := w.Write(p, content); err != nil {
				return written, err
			}
			output.Debug("created file", "path", p, "bytes", len(content))
			written = append(written, p)
		}
	}
	return written, nil
}

func writePayloads(w *Writer, payloads []layout.FilePayload) ([]string, error) {
	var written []string
	for _, pl := range payloads {
		if err := w.Write(pl.Path, pl.Content); err != nil {
			return written, err
		}
		output.Debug("wrote payload", "path", pl.Path, "bytes", len(pl.Content))
		written = append(written, pl.Path)
	}
	return written, nil
}

func (t tables) validate() error {
	if err := layout.Validate(t.base); err != nil {
		return fmt.Errorf("base layout: %w: %w", oerrors.ErrValidation, err)
	}
	if err := layout.Validate(t.extended); err != nil {
		return fmt.Errorf("extended layout: %w: %w", oerrors.ErrValidation, err)
	}
	if err := layout.ValidatePayloads(t.payloads); err != nil {
		return fmt.Errorf("payload registry: %w: %w", oerrors.ErrValidation, err)
	}
	return nil
}
