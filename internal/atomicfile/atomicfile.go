// Package atomicfile replaces files without leaving partial writes behind.
package atomicfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFile replaces path with data. See Write.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	return Write(path, perm, func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(data))
		return err
	})
}

// Write streams fill into a temp file next to path and renames it into
// place once fill and the sync succeed. If fill fails, path is untouched.
//
// A zero perm keeps the mode of an existing file, or 0644 for a new one.
func Write(path string, perm os.FileMode, fill func(w io.Writer) error) error {
	if perm == 0 {
		perm = 0o644
		if st, err := os.Stat(path); err == nil {
			perm = st.Mode().Perm()
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	// Not every filesystem honours chmod.
	_ = tmp.Chmod(perm)

	if err := fill(tmp); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := replace(tmpPath, path); err != nil {
		return err
	}
	committed = true
	return nil
}

// replace renames src over dst. Windows refuses to rename onto an existing
// file, so the target is removed and the rename retried.
func replace(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	_ = os.Remove(dst)
	if err2 := os.Rename(src, dst); err2 != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
