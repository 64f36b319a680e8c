// SPDX-FileCopyrightText: 2026 The treefab authors
//
// SPDX-License-Identifier: MIT

// Package vfs provides the virtual filesystem the build engine works
// against: a tree of directory, file and symlink nodes, a shell holding the
// current directory, a resolver that follows symlinks, scoped current
// directory changes, and the conflict policy applied when a name is already
// taken.
//
// The virtual tree is the source of truth. Physical storage only ever
// receives replayed mutations and is never read back, except for the
// existence checks symlink creation depends on.
package vfs
