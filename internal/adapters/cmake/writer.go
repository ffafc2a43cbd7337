// Package cmake emits the build file that includes every package in build order.
package cmake

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/risteon/ic-workspace/internal/core/domain"
	"github.com/risteon/ic-workspace/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildFileWriter = (*Writer)(nil)

// Writer implements ports.BuildFileWriter for CMake.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Render returns the build file content for order.
func Render(order []domain.InternedString) []byte {
	var buf bytes.Buffer
	for _, name := range order {
		buf.WriteString("ADD_SUBDIRECTORY(")
		buf.WriteString(name.String())
		buf.WriteString(")\n")
	}
	return buf.Bytes()
}

// Write replaces the build file of the layout. The file is written to a
// temporary sibling first so readers never observe a partial file.
func (w *Writer) Write(layout domain.Layout, order []domain.InternedString) error {
	path := layout.BuildFilePath()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrBuildFileWriteFailed, err.Error()), "path", path)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrBuildFileWriteFailed, err.Error()), "path", path)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // no-op after a successful rename

	if _, err := tmp.Write(Render(order)); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(domain.ErrBuildFileWriteFailed, err.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrBuildFileWriteFailed, err.Error()), "path", path)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrBuildFileWriteFailed, err.Error()), "path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrBuildFileWriteFailed, err.Error()), "path", path)
	}
	return nil
}
