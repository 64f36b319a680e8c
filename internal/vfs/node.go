// SPDX-FileCopyrightText: 2026 The treefab authors
//
// SPDX-License-Identifier: MIT

package vfs

import (
	"fmt"
	"slices"
	"strings"
)

// Kind is the type tag of a [Node].
type Kind int

const (
	// KindFile is a plain file. The virtual tree records existence only;
	// content lives on physical storage.
	KindFile Kind = iota
	// KindDirectory holds named children, ordered by insertion.
	KindDirectory
	// KindSymlink stores an absolute target as a list of names from the
	// root.
	KindSymlink
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// Node is a single virtual filesystem node.
type Node struct {
	// Kind of this node.
	Kind Kind

	// Origin describes where the node was created. It is used in
	// diagnostics only.
	Origin string

	// Target is the symlink target, as names from the root.
	Target []string

	children map[string]*Node
	order    []string
}

// NewDirectory returns a new empty directory node.
func NewDirectory(origin string) *Node {
	return &Node{
		Kind:   KindDirectory,
		Origin: origin,
	}
}

// NewFile returns a new file node.
func NewFile(origin string) *Node {
	return &Node{
		Kind:   KindFile,
		Origin: origin,
	}
}

// NewSymlink returns a new symlink node pointing at the given absolute
// target names.
func NewSymlink(target []string, origin string) *Node {
	return &Node{
		Kind:   KindSymlink,
		Origin: origin,
		Target: slices.Clone(target),
	}
}

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool {
	return n.Kind == KindDirectory
}

// Child returns the child with the given name.
func (n *Node) Child(name string) (*Node, bool) {
	child, exists := n.children[name]
	return child, exists
}

// Names returns the names of the node's children in insertion order.
func (n *Node) Names() []string {
	return slices.Clone(n.order)
}

// String returns a string representation of the node.
func (n *Node) String() string {
	switch n.Kind {
	case KindFile:
		return "file"
	case KindDirectory:
		return fmt.Sprintf("directory [%s]", strings.Join(n.order, " "))
	case KindSymlink:
		return "symlink (/" + strings.Join(n.Target, "/") + ")"
	default:
		return "invalid kind"
	}
}

// put inserts child at name, replacing any prior entry. A replaced entry
// keeps its position in the insertion order.
func (n *Node) put(name string, child *Node) {
	if n.children == nil {
		n.children = make(map[string]*Node)
	}

	if _, exists := n.children[name]; !exists {
		n.order = append(n.order, name)
	}

	n.children[name] = child
}
