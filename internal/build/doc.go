// SPDX-FileCopyrightText: 2026 The treefab authors
//
// SPDX-License-Identifier: MIT

// Package build evaluates a declarative build tree of Dir, File, Symlink
// and Cd operations against a [vfs.Shell], mirroring every mutation onto
// physical storage.
//
// Evaluation is a single cursor walking the operations in declared order. A
// later sibling observes the tree and shell mutations of all earlier
// siblings. Any failure halts the whole evaluation; scopes still unwind and
// restore the current directory on the way out.
package build
