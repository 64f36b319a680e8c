// SPDX-FileCopyrightText: 2026 The treefab authors
//
// SPDX-License-Identifier: MIT

package vfs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned if a path component does not exist and
	// creation was not requested.
	ErrNotFound = errors.New("no such entry")

	// ErrNotADirectory is returned if a path component resolves through a
	// file.
	ErrNotADirectory = errors.New("not a directory")

	// ErrNotDirectory is returned if a fully resolved node is not a
	// directory where one is required.
	ErrNotDirectory = errors.New("resolved to non-directory")

	// ErrEscapedRoot is returned if a path requests more up levels than
	// the current directory has components.
	ErrEscapedRoot = errors.New("path escapes the root")

	// ErrNameConflict is returned if an entry is created over an existing
	// name in timid mode.
	ErrNameConflict = errors.New("name already exists")

	// ErrSymlinkLoop is returned if symlink substitution does not
	// terminate within the resolution depth limit.
	ErrSymlinkLoop = errors.New("too many levels of symbolic links")

	// ErrInvalidMode is returned for an unknown conflict mode name.
	ErrInvalidMode = errors.New("invalid conflict mode")
)

// WalkError records a failed walk or create operation: the offending path,
// the path it was resolved from, and the origin of the node that blocked
// it, if any.
type WalkError struct {
	Op     string
	Path   string
	From   string
	Origin string
	Err    error
}

// Error formats the failure as a single human-readable diagnostic line.
func (e *WalkError) Error() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %s", e.Op, e.Path)

	if e.From != "" {
		fmt.Fprintf(&sb, " (from %s)", e.From)
	}

	fmt.Fprintf(&sb, ": %v", e.Err)

	if e.Origin != "" {
		fmt.Fprintf(&sb, " (created at %s)", e.Origin)
	}

	return sb.String()
}

// Is reports whether other is a WalkError as well, so tests can match on
// the error shape.
func (e *WalkError) Is(other error) bool {
	_, ok := other.(*WalkError)
	return ok
}

// Unwrap returns the underlying sentinel error.
func (e *WalkError) Unwrap() error {
	return e.Err
}
