// SPDX-FileCopyrightText: 2026 The treefab authors
//
// SPDX-License-Identifier: MIT

package vfs

import (
	"path/filepath"
	"slices"
)

// Shell is the build context all operations run against. It owns the
// virtual tree's root, the current directory as an absolute list of names
// from the root, and the physical mount point the root corresponds to.
//
// A Shell is a single evaluation cursor. It must not be shared between
// concurrent walkers.
type Shell struct {
	root  *Node
	cwd   []string
	mount string
}

// NewShell returns a shell with an empty root directory and the current
// directory at the root. The mount is fixed for the shell's lifetime.
func NewShell(mount string) *Shell {
	return &Shell{
		root:  NewDirectory("root"),
		mount: mount,
	}
}

// Root returns the root directory node.
func (s *Shell) Root() *Node {
	return s.root
}

// Mount returns the physical directory the root corresponds to.
func (s *Shell) Mount() string {
	return s.mount
}

// CWD returns a copy of the current directory's names.
func (s *Shell) CWD() []string {
	return slices.Clone(s.cwd)
}

// Current returns the current directory as an absolute path.
func (s *Shell) Current() Path {
	return Abs(s.cwd...)
}

// Phys maps absolute virtual names onto a physical path below the mount.
func (s *Shell) Phys(names ...string) string {
	return filepath.Join(append([]string{s.mount}, names...)...)
}

// PhysCWD returns the physical path of name inside the current directory.
func (s *Shell) PhysCWD(name string) string {
	return s.Phys(append(s.CWD(), name)...)
}
