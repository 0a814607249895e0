// Package fs implements file system adapters.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// AtomicFileWriter implements ports.FileWriter.
// It writes to a temp file in the target directory and renames it into
// place, so readers never observe a partially written file.
type AtomicFileWriter struct {
	perm os.FileMode
}

// NewAtomicFileWriter creates a writer producing files with the given permissions.
func NewAtomicFileWriter(perm os.FileMode) *AtomicFileWriter {
	if perm == 0 {
		perm = 0o644
	}
	return &AtomicFileWriter{perm: perm}
}

// WriteFile replaces path with data.
// The directory of path must already exist; it is not created.
func (w *AtomicFileWriter) WriteFile(ctx context.Context, path string, data []byte) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	// Remove the temp file on any failure below
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmpName, w.perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	// Atomic rename
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
