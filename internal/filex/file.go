// Package filex holds small filesystem helpers for the CLI.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the directory that will hold path, with perm for
// any directory it has to create.
func EnsureParentDir(path string, perm os.FileMode) error {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, perm); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return nil
}

// WriteFilePrivate writes data to path readable by the owner only, creating
// parent directories as needed.
func WriteFilePrivate(path string, data []byte) error {
	if err := EnsureParentDir(path, 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
