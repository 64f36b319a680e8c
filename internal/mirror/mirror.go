// SPDX-FileCopyrightText: 2026 The treefab authors
//
// SPDX-License-Identifier: MIT

// Package mirror replays virtual tree mutations onto physical storage. The
// build engine never reads file content back; the only query is a plain
// existence check.
package mirror

// Mirror is the physical storage a build is replayed onto.
type Mirror interface {
	// Mkdir creates a single empty directory.
	Mkdir(path string) error

	// EnsureDir creates the directory along with missing parents. It does
	// nothing if the directory exists.
	EnsureDir(path string) error

	// RemoveIfPresent removes the entry and anything below it. A missing
	// entry is not an error.
	RemoveIfPresent(path string) error

	// WriteTextFile writes content to a file, replacing prior content.
	WriteTextFile(path string, content string) error

	// Symlink creates a symbolic link at path pointing to target.
	Symlink(path string, target string) error

	// Exists reports whether an entry of any kind is present at path.
	Exists(path string) bool
}
