// SPDX-FileCopyrightText: 2026 The treefab authors
//
// SPDX-License-Identifier: MIT

package vfs

import (
	"slices"
	"strings"
)

// Path is a filesystem path with explicit relativity. It is either absolute
// or relative with some number of "up" levels followed by components. An
// absolute path never carries up levels.
//
// Path is a pure value. Constructors copy their inputs and [Path.Clone]
// returns an independent value.
type Path struct {
	absolute bool
	up       int
	names    []string
}

// Abs returns an absolute path with the given components.
func Abs(names ...string) Path {
	return Path{
		absolute: true,
		names:    slices.Clone(names),
	}
}

// Rel returns a relative path with the given components and no up levels.
func Rel(names ...string) Path {
	return Path{
		names: slices.Clone(names),
	}
}

// RelUp returns a relative path that first moves up the given number of
// levels and then descends into the given components. Negative up counts
// are treated as zero.
func RelUp(up int, names ...string) Path {
	return Path{
		up:    max(up, 0),
		names: slices.Clone(names),
	}
}

// ParsePath parses a slash-separated string into a [Path]. A leading slash
// makes the path absolute. Leading ".." segments become up levels, a ".."
// after regular components removes the preceding component, and "." and
// empty segments are ignored. It is total over all inputs.
func ParsePath(path string) Path {
	var parsed Path

	rest, absolute := strings.CutPrefix(path, "/")
	parsed.absolute = absolute

	for _, segment := range strings.Split(rest, "/") {
		switch segment {
		case "", ".":
		case "..":
			switch {
			case len(parsed.names) > 0:
				parsed.names = parsed.names[:len(parsed.names)-1]
			case !parsed.absolute:
				parsed.up++
			}
		default:
			parsed.names = append(parsed.names, segment)
		}
	}

	return parsed
}

// IsAbs reports whether the path is absolute.
func (p Path) IsAbs() bool {
	return p.absolute
}

// Up returns the number of up levels of a relative path. It is always zero
// for absolute paths.
func (p Path) Up() int {
	return p.up
}

// Names returns a copy of the path's components.
func (p Path) Names() []string {
	return slices.Clone(p.names)
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	return Path{
		absolute: p.absolute,
		up:       p.up,
		names:    slices.Clone(p.names),
	}
}

// Equal reports whether both paths have the same relativity and components.
func (p Path) Equal(other Path) bool {
	return p.absolute == other.absolute &&
		p.up == other.up &&
		slices.Equal(p.names, other.names)
}

// String renders the path canonically: absolute paths with a leading slash,
// up levels as ".." segments, and the empty relative path as ".".
func (p Path) String() string {
	if p.absolute {
		return "/" + strings.Join(p.names, "/")
	}

	segments := make([]string, 0, p.up+len(p.names))
	for i := 0; i < p.up; i++ {
		segments = append(segments, "..")
	}

	segments = append(segments, p.names...)
	if len(segments) == 0 {
		return "."
	}

	return strings.Join(segments, "/")
}
