// SPDX-FileCopyrightText: 2026 The treefab authors
//
// SPDX-License-Identifier: MIT

package vfs

import (
	"fmt"
	"slices"
)

// maxSymlinkHops bounds symlink substitution during resolution. A cycle of
// symlinks would otherwise restart resolution forever.
const maxSymlinkHops = 16

// Resolve walks the shell's current directory down from the root and
// returns the node it denotes.
//
// A file in the middle of the walk fails with [ErrNotADirectory]. A symlink
// replaces the unconsumed suffix of the current directory with its stored
// target, writes the rewritten path back into the shell, and restarts the
// walk from the root. If a component is missing it is created as an empty
// directory stamped with origin when createMissing is set, otherwise the
// walk fails with [ErrNotFound].
func (s *Shell) Resolve(createMissing bool, origin string) (*Node, error) {
	for hops := 0; hops <= maxSymlinkHops; hops++ {
		node, restarted, err := s.walk(createMissing, origin)
		if err != nil {
			return nil, err
		}

		if !restarted {
			return node, nil
		}
	}

	return nil, &WalkError{
		Op:   "resolve",
		Path: s.Current().String(),
		Err:  ErrSymlinkLoop,
	}
}

// ResolveDir resolves the current directory and requires the result to be a
// directory, failing with [ErrNotDirectory] otherwise. It is the gate every
// entry builder and scope change passes before mutating the tree.
func (s *Shell) ResolveDir(createMissing bool, origin string) (*Node, error) {
	node, err := s.Resolve(createMissing, origin)
	if err != nil {
		return nil, err
	}

	if !node.IsDir() {
		return nil, &WalkError{
			Op:     "resolve",
			Path:   s.Current().String(),
			Origin: node.Origin,
			Err:    ErrNotDirectory,
		}
	}

	return node, nil
}

// walk performs a single resolution pass over the current directory. It
// reports whether a symlink substitution rewrote the current directory and
// the walk must be restarted from the root.
func (s *Shell) walk(createMissing bool, origin string) (*Node, bool, error) {
	node := s.root

	for idx, name := range s.cwd {
		switch node.Kind {
		case KindSymlink:
			s.cwd = append(slices.Clone(node.Target), s.cwd[idx:]...)
			return nil, true, nil
		case KindFile:
			return nil, false, &WalkError{
				Op:     "resolve",
				Path:   Abs(s.cwd[:idx]...).String(),
				From:   s.Current().String(),
				Origin: node.Origin,
				Err:    ErrNotADirectory,
			}
		case KindDirectory:
		default:
			return nil, false, fmt.Errorf(
				"resolve %s: unknown node kind %d",
				s.Current(), node.Kind,
			)
		}

		child, exists := node.Child(name)
		if !exists {
			if !createMissing {
				return nil, false, &WalkError{
					Op:   "resolve",
					Path: Abs(s.cwd[:idx+1]...).String(),
					From: Abs(s.cwd[:idx]...).String(),
					Err:  ErrNotFound,
				}
			}

			child = NewDirectory(origin)
			node.put(name, child)
		}

		node = child
	}

	return node, false, nil
}
