// SPDX-FileCopyrightText: 2026 The treefab authors
//
// SPDX-License-Identifier: MIT

package vfs

import (
	"fmt"
)

// Scope changes the shell's current directory for a nested block of
// operations and restores the prior value when the block is done. The
// restore runs on every exit path, so nested scopes keep a strict stack
// discipline even when evaluation fails half-way.
//
// A Scope is single-use: one Enter, one Exit.
type Scope struct {
	shell  *Shell
	prior  []string
	exited bool
}

// NewScope captures the shell's current directory as the value [Scope.Exit]
// will restore.
func NewScope(shell *Shell) *Scope {
	return &Scope{
		shell: shell,
		prior: shell.CWD(),
	}
}

// Enter computes the new current directory from path and validates it.
//
// An absolute path resets the current directory to the root first. Up
// levels pop one component each; running out of components fails with
// [ErrEscapedRoot] and leaves the current directory at the root until Exit
// restores it. The remaining components are appended and the result is
// resolved with the given create flag and required to be a directory.
//
// On failure the scope must not have its children evaluated; Exit still
// restores the prior current directory.
func (sc *Scope) Enter(path Path, create bool, origin string) error {
	cwd := sc.shell.CWD()
	if path.IsAbs() {
		cwd = cwd[:0]
	}

	for consumed := 0; consumed < path.Up(); consumed++ {
		if len(cwd) == 0 {
			sc.shell.cwd = cwd

			return &WalkError{
				Op:   "cd",
				Path: path.String(),
				From: Abs(sc.prior...).String(),
				Err: fmt.Errorf(
					"%w: %d levels up requested, %d available",
					ErrEscapedRoot, path.Up(), consumed,
				),
			}
		}

		cwd = cwd[:len(cwd)-1]
	}

	sc.shell.cwd = append(cwd, path.Names()...)

	_, err := sc.shell.ResolveDir(create, origin)
	if err != nil {
		return err
	}

	return nil
}

// Exit restores the current directory captured at construction. Calls after
// the first are no-ops.
func (sc *Scope) Exit() {
	if sc.exited {
		return
	}

	sc.exited = true
	sc.shell.cwd = sc.prior
}
