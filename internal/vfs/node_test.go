// SPDX-FileCopyrightText: 2026 The treefab authors
//
// SPDX-License-Identifier: MIT

package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeKinds(t *testing.T) {
	dir := NewDirectory("here")
	file := NewFile("there")
	link := NewSymlink([]string{"a", "b"}, "elsewhere")

	assert.True(t, dir.IsDir())
	assert.False(t, file.IsDir())
	assert.False(t, link.IsDir())

	assert.Equal(t, "here", dir.Origin)
	assert.Equal(t, []string{"a", "b"}, link.Target)
}

func TestNodePutKeepsInsertionOrder(t *testing.T) {
	dir := NewDirectory("test")
	dir.put("zebra", NewFile("test"))
	dir.put("alpha", NewFile("test"))
	dir.put("middle", NewFile("test"))

	assert.Equal(t, []string{"zebra", "alpha", "middle"}, dir.Names())
}

func TestNodePutOverwriteKeepsPosition(t *testing.T) {
	dir := NewDirectory("test")
	dir.put("first", NewFile("one"))
	dir.put("second", NewFile("two"))

	replacement := NewDirectory("three")
	dir.put("first", replacement)

	assert.Equal(t, []string{"first", "second"}, dir.Names())

	child, exists := dir.Child("first")
	require.True(t, exists)
	assert.Equal(t, replacement, child)
}

func TestNodeSymlinkTargetIsCopied(t *testing.T) {
	target := []string{"a", "b"}
	link := NewSymlink(target, "test")

	target[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, link.Target)
}

func TestNodeString(t *testing.T) {
	dir := NewDirectory("test")
	dir.put("a", NewFile("test"))
	dir.put("b", NewFile("test"))

	assert.Equal(t, "directory [a b]", dir.String())
	assert.Equal(t, "file", NewFile("test").String())
	assert.Equal(t, "symlink (/x/y)",
		NewSymlink([]string{"x", "y"}, "test").String())
}
