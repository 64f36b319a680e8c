// SPDX-FileCopyrightText: 2026 The treefab authors
//
// SPDX-License-Identifier: MIT

package vfs

import "fmt"

// Mode is the conflict policy applied when a new entry's name is already
// taken in its directory.
type Mode int

const (
	// Timid reports a conflict and halts the build. It is the default.
	Timid Mode = iota
	// Placid keeps the existing entry and skips the new one.
	Placid
	// Assertive replaces the existing entry unconditionally, whatever its
	// kind.
	Assertive
)

// String returns the mode's name.
func (m Mode) String() string {
	switch m {
	case Timid:
		return "timid"
	case Placid:
		return "placid"
	case Assertive:
		return "assertive"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name. The empty string is [Timid].
func ParseMode(name string) (Mode, error) {
	switch name {
	case "", "timid":
		return Timid, nil
	case "placid":
		return Placid, nil
	case "assertive":
		return Assertive, nil
	default:
		return Timid, fmt.Errorf("%w: unknown mode %q", ErrInvalidMode, name)
	}
}

// Apply inserts node at name in parent according to mode. It returns the
// entry now present at name and reports whether node was inserted. A false
// report with a nil error is a placid skip: the existing entry stays and
// the rejected entry's descendants must not be evaluated.
func Apply(parent *Node, name string, node *Node, mode Mode) (*Node, bool, error) {
	existing, exists := parent.Child(name)
	if exists {
		switch mode {
		case Timid:
			return nil, false, &WalkError{
				Op:     "create",
				Path:   name,
				Origin: existing.Origin,
				Err:    ErrNameConflict,
			}
		case Placid:
			return existing, false, nil
		case Assertive:
		}
	}

	parent.put(name, node)

	return node, true, nil
}
