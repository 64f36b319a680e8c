// SPDX-FileCopyrightText: 2026 The treefab authors
//
// SPDX-License-Identifier: MIT

package mirror

import (
	"fmt"
	"os"
)

const (
	dirMode  = 0o755
	fileMode = 0o644
)

var _ Mirror = (*OS)(nil)

// OS mirrors onto the real filesystem. Paths are used as given; the shell
// hands over mount-joined physical paths.
type OS struct{}

// NewOS returns a filesystem-backed mirror.
func NewOS() *OS {
	return &OS{}
}

// Mkdir creates a single empty directory.
func (*OS) Mkdir(path string) error {
	err := os.Mkdir(path, dirMode)
	if err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	return nil
}

// EnsureDir creates the directory along with missing parents.
func (*OS) EnsureDir(path string) error {
	err := os.MkdirAll(path, dirMode)
	if err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}

	return nil
}

// RemoveIfPresent removes the entry and anything below it.
func (*OS) RemoveIfPresent(path string) error {
	err := os.RemoveAll(path)
	if err != nil {
		return fmt.Errorf("remove: %w", err)
	}

	return nil
}

// WriteTextFile writes content to the file at path.
func (*OS) WriteTextFile(path string, content string) error {
	err := os.WriteFile(path, []byte(content), fileMode)
	if err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// Symlink creates a symbolic link at path pointing to target.
func (*OS) Symlink(path string, target string) error {
	err := os.Symlink(target, path)
	if err != nil {
		return fmt.Errorf("symlink: %w", err)
	}

	return nil
}

// Exists reports whether an entry is present at path. Symlinks count even
// when dangling.
func (*OS) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
