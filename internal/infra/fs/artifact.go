package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteAtomic streams content produced by write into path through a temporary
// file in the same directory and renames it into place. The temporary file is
// closed and, on failure, removed on every return path.
func WriteAtomic(path string, write func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	if werr := write(tmp); werr != nil {
		tmp.Close()
		return werr
	}
	if cerr := tmp.Close(); cerr != nil {
		return fmt.Errorf("failed to close temporary file: %w", cerr)
	}
	if rerr := os.Rename(tmpPath, path); rerr != nil {
		return fmt.Errorf("failed to rename temporary file to %s: %w", path, rerr)
	}
	return nil
}

// EnsureNonEmpty stats path and removes it if it turned out empty.
func EnsureNonEmpty(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.Size() == 0 {
		os.Remove(path)
		return 0, fmt.Errorf("file %s is empty after writing", path)
	}
	return info.Size(), nil
}
