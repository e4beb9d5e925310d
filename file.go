package invindex

import (
	"fmt"
	"os"
	"path/filepath"
)

// writeFile replaces path with data. The data goes to a temporary file in the
// same directory first, so path is either left as it was or fully written.
func writeFile(path string, data []byte) error {
	f, tmp, err := createTemp(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing %s: %w", tmp, err)
	}
	return replaceFile(tmp, path)
}

func createTemp(path string) (*os.File, string, error) {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, "", fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	// CreateTemp uses 0600.
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, "", fmt.Errorf("chmod %s: %w", f.Name(), err)
	}
	return f, f.Name(), nil
}

func replaceFile(tmp, path string) error {
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming %s to %s: %w", tmp, path, err)
	}
	return nil
}
