// Package scaffold materializes the project layout on a filesystem.
package scaffold

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/smartclimate/scaffold/internal/errors"
	"github.com/smartclimate/scaffold/internal/layout"
)

// File modes applied by the writer.
const (
	DirMode    os.FileMode = 0o755
	FileMode   os.FileMode = 0o644
	ScriptMode os.FileMode = 0o755
)

// Writer creates files on an afero filesystem, overwriting existing content.
type Writer struct {
	fs afero.Fs
}

// NewWriter returns a writer backed by fsys.
func NewWriter(fsys afero.Fs) *Writer {
	return &Writer{fs: fsys}
}

// Write creates the missing parent directories of path, then creates or
// truncates the file and writes content verbatim. Shell scripts get
// ScriptMode once the content is on disk.
//
// path is slash-separated and relative to the filesystem root.
func (w *Writer) Write(path, content string) error {
	target := filepath.FromSlash(path)

	if dir := filepath.Dir(target); dir != "." {
		if err := w.fs.MkdirAll(dir, DirMode); err != nil {
			return oerrors.NewIOError("mkdir", filepath.ToSlash(dir), err)
		}
	}

	if err := afero.WriteFile(w.fs, target, []byte(content), FileMode); err != nil {
		return oerrors.NewIOError("write", path, err)
	}

	if layout.IsShellScript(path) {
		if err := w.fs.Chmod(target, ScriptMode); err != nil {
			return oerrors.NewIOError("chmod", path, err)
		}
	}

	return nil
}
